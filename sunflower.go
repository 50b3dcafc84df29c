package sunflower

import (
	"image/color"
	"math"
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorGreen matches the CSS "green" keyword (#008000), the default fill of
// both pattern modes.
var ColorGreen = Color{R: 0, G: 128.0 / 255.0, B: 0, A: 1}

// ColorWhite is the neutral tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a non-premultiplied 8-bit color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and outline points.
type Vec2 struct {
	X, Y float64
}

// Fract returns the fractional part of v. Negative inputs keep their sign,
// matching truncation toward zero.
func Fract(v float64) float64 {
	_, f := math.Modf(v)
	return f
}
