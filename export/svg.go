package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/phanxgames/sunflower"
)

// svgPrecision is the number of integer SVG units per output unit. svgo
// takes integer coordinates, so radii are drawn scaled up and the group
// transform scales them back.
const svgPrecision = 100

func svgFill(c sunflower.Color) string {
	rgba := c.RGBA()
	return fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%.3f", rgba.R, rgba.G, rgba.B, c.A)
}

func writeSVG(w io.Writer, shapes []drawable, f frame, opt Options) error {
	fw, fh := f.size()
	width, height := max(int(math.Ceil(fw)), 1), max(int(math.Ceil(fh)), 1)

	canvas := svg.New(w)
	canvas.Start(width, height)
	if opt.Background.A > 0 {
		canvas.Rect(0, 0, width, height, svgFill(opt.Background))
	}
	for _, s := range shapes {
		x, y := f.yDown(s.x, s.y)
		deg := -s.rot * 180 / math.Pi
		canvas.Gtransform(fmt.Sprintf("translate(%.3f,%.3f) rotate(%.4f) scale(%g)", x, y, deg, 1.0/svgPrecision))
		canvas.Ellipse(0, 0,
			int(math.Round(s.rx*f.scale*svgPrecision)),
			int(math.Round(s.ry*f.scale*svgPrecision)),
			svgFill(s.color))
		canvas.Gend()
	}
	canvas.End()
	return nil
}
