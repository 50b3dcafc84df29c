package export

import (
	"image/color"
	"io"
	"math"

	"github.com/phanxgames/sunflower"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
)

// writePDF draws on a tdewolff canvas. The canvas is y-up like the world, so
// rotations keep their sign.
func writePDF(w io.Writer, shapes []drawable, f frame, opt Options) error {
	fw, fh := f.size()
	c := canvas.New(fw, fh)
	ctx := canvas.NewContext(c)
	if opt.Background.A > 0 {
		ctx.SetFillColor(fillColor(opt.Background))
		ctx.DrawPath(0, 0, canvas.Rectangle(fw, fh))
	}
	for _, s := range shapes {
		x, y := f.yUp(s.x, s.y)
		ellipse := canvas.Ellipse(s.rx*f.scale, s.ry*f.scale).
			Transform(canvas.Identity.Rotate(s.rot * 180 / math.Pi))
		ctx.SetFillColor(fillColor(s.color))
		ctx.DrawPath(x, y, ellipse)
	}
	return pdf.Writer(w, c)
}

func fillColor(c sunflower.Color) color.Color {
	return c.RGBA()
}
