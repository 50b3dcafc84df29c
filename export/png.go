package export

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/phanxgames/sunflower"
)

func setColor(dc *gg.Context, c sunflower.Color) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func writePNG(w io.Writer, shapes []drawable, f frame, opt Options) error {
	fw, fh := f.size()
	dc := gg.NewContext(max(int(fw+0.5), 1), max(int(fh+0.5), 1))
	if opt.Background.A > 0 {
		setColor(dc, opt.Background)
		dc.Clear()
	}
	for _, s := range shapes {
		x, y := f.yDown(s.x, s.y)
		dc.Push()
		dc.Translate(x, y)
		// the surface is y-down, so world rotation flips sign
		dc.Rotate(-s.rot)
		dc.DrawEllipse(0, 0, s.rx*f.scale, s.ry*f.scale)
		setColor(dc, s.color)
		dc.Fill()
		dc.Pop()
	}
	return dc.EncodePNG(w)
}
