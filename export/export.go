// Package export renders a single sunflower pass to PNG, SVG or PDF.
//
// The pattern is framed by its bounds plus a margin. Elements are painted in
// ascending world z, so inner petal ellipses land on top of their outer
// ellipse.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jbeda/geom"
	"github.com/phanxgames/sunflower"
)

// Format selects an output backend.
type Format uint8

const (
	FormatPNG Format = iota // rasterized with fogleman/gg
	FormatSVG               // ajstarks/svgo
	FormatPDF               // tdewolff/canvas
)

// String returns the file extension of the format, without the dot.
func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatPDF:
		return "pdf"
	default:
		return "png"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return FormatPNG, fmt.Errorf("export: unsupported file format %q", ext)
}

// Options controls framing and background.
type Options struct {
	// Margin is the world-space padding around the pattern bounds.
	Margin float64
	// Scale is output units per world unit (pixels for PNG). Zero means 1.
	Scale float64
	// Background fills the frame first. A zero alpha leaves it transparent.
	Background sunflower.Color
}

// DefaultOptions pads by 20 world units on a white background.
func DefaultOptions() Options {
	return Options{Margin: 20, Scale: 1, Background: sunflower.ColorWhite}
}

// drawable is one element flattened to world space.
type drawable struct {
	x, y   float64
	rot    float64 // radians, counter-clockwise in world space
	z      float64
	rx, ry float64
	color  sunflower.Color
}

// flatten walks elements and returns their shapes ordered by z; equal z keeps
// traversal order.
func flatten(elements []sunflower.Element) []drawable {
	out := make([]drawable, 0, sunflower.CountElements(elements))
	sunflower.Walk(elements, func(e *sunflower.Element, pos sunflower.Vec2, rot, z float64) {
		g := e.Shape.Geometry
		if g == nil {
			return
		}
		col := sunflower.ColorWhite
		if e.Shape.Material != nil {
			col = e.Shape.Material.Color
		}
		out = append(out, drawable{x: pos.X, y: pos.Y, rot: rot, z: z, rx: g.RadiusX, ry: g.RadiusY, color: col})
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].z < out[j].z })
	return out
}

// frame maps world coordinates into the output surface.
type frame struct {
	bounds geom.Rect // world bounds including margin
	scale  float64
}

func newFrame(elements []sunflower.Element, opt Options) frame {
	b := sunflower.Bounds(elements)
	if b.Width() == 0 && b.Height() == 0 {
		b = geom.Rect{Min: geom.Coord{X: -1, Y: -1}, Max: geom.Coord{X: 1, Y: 1}}
	}
	m := opt.Margin
	b.Min.X -= m
	b.Min.Y -= m
	b.Max.X += m
	b.Max.Y += m
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	return frame{bounds: b, scale: scale}
}

// size returns the output width and height.
func (f frame) size() (float64, float64) {
	return f.bounds.Width() * f.scale, f.bounds.Height() * f.scale
}

// yDown maps a world point to a top-left origin surface.
func (f frame) yDown(x, y float64) (float64, float64) {
	return (x - f.bounds.Min.X) * f.scale, (f.bounds.Max.Y - y) * f.scale
}

// yUp maps a world point to a bottom-left origin surface.
func (f frame) yUp(x, y float64) (float64, float64) {
	return (x - f.bounds.Min.X) * f.scale, (y - f.bounds.Min.Y) * f.scale
}

type backend func(w io.Writer, shapes []drawable, f frame, opt Options) error

func backendFor(format Format) backend {
	switch format {
	case FormatSVG:
		return writeSVG
	case FormatPDF:
		return writePDF
	default:
		return writePNG
	}
}

// Encode renders elements in the given format to w.
func Encode(w io.Writer, format Format, elements []sunflower.Element, opt Options) error {
	f := newFrame(elements, opt)
	if err := backendFor(format)(w, flatten(elements), f, opt); err != nil {
		return fmt.Errorf("export: encode %s: %w", format, err)
	}
	return nil
}

// Write renders elements to path, choosing the format from its extension.
// The file is written to a temporary name and renamed into place.
func Write(path string, elements []sunflower.Element, opt Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return safeWrite(path, func(w io.Writer) error {
		return Encode(w, format, elements, opt)
	})
}
