package sunflower

import "fmt"

// Mode selects the generation formula and the parameter caps.
type Mode uint8

const (
	ModeSeed  Mode = iota // disks on a Vogel spiral
	ModePetal             // nested ellipses on a fixed-radius ring
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeSeed:
		return "seed"
	case ModePetal:
		return "petal"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "seed" or "petal".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "seed", "Seed":
		return ModeSeed, nil
	case "petal", "Petal":
		return ModePetal, nil
	}
	return ModeSeed, fmt.Errorf("sunflower: unknown mode %q", s)
}

// MaxAmount is the upper bound for Params.Count in this mode.
func (m Mode) MaxAmount() int {
	if m == ModePetal {
		return 40
	}
	return 500
}

// MaxDensity is the advisory upper bound for Params.Spacing. Nothing enforces it.
func (m Mode) MaxDensity() float64 {
	if m == ModePetal {
		return 100
	}
	return 30
}

// Params is the full parameter record of a pattern.
type Params struct {
	Mode Mode

	// Rotation is the fractional turn applied per element index.
	Rotation float64
	// Spacing is the base radial distance unit.
	Spacing float64
	// ElementRadius scales the drawn primitive. Not validated here.
	ElementRadius float64
	// Count is the number of elements, kept in [0, Mode.MaxAmount()].
	Count int
	Color Color
}

// DefaultParams returns the documented default set for the mode.
func DefaultParams(m Mode) Params {
	if m == ModePetal {
		return Params{
			Mode:          ModePetal,
			Rotation:      0,
			Spacing:       50,
			ElementRadius: 4,
			Count:         1,
			Color:         ColorGreen,
		}
	}
	return Params{
		Mode:          ModeSeed,
		Rotation:      Fract(Phi),
		Spacing:       20,
		ElementRadius: 10,
		Count:         100,
		Color:         ColorGreen,
	}
}

// Clamp returns p with Count clamped to [0, Mode.MaxAmount()].
func (p Params) Clamp() Params {
	p.Count = ClampInt(p.Count, 0, p.Mode.MaxAmount())
	return p
}

// ClampInt returns cur limited to [low, high].
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Clamp returns cur limited to [low, high].
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}
