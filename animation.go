package sunflower

import "math"

// Step-size slider bounds. The slider is logarithmic; position 0 maps to 0.
const (
	MaxStepSize     = 0.1
	minPositiveStep = 1e-6
	DefaultStepSize = 0.0025
)

// Animator advances Params.Rotation over time while enabled.
//
// There is no global animation manager; the frame loop calls Tick itself.
type Animator struct {
	Enabled bool
	// StepSize is the rotation added per second, in [0, MaxStepSize].
	StepSize float64
}

// NewAnimator returns a disabled animator with the default step size.
func NewAnimator() *Animator {
	return &Animator{StepSize: DefaultStepSize}
}

// Tick adds StepSize*dt to the controller's rotation and runs a pass right
// away. Returns false without touching anything when disabled.
func (a *Animator) Tick(dt float64, c *Controller) bool {
	if !a.Enabled {
		return false
	}
	c.AdvanceRotation(a.StepSize * dt)
	c.Regenerate()
	return true
}

// SetStepSize stores v clamped to [0, MaxStepSize].
func (a *Animator) SetStepSize(v float64) {
	a.StepSize = Clamp(v, 0, MaxStepSize)
}

// StepSizeFromSlider maps a slider position t in [0, 1] to a step size on a
// logarithmic scale between minPositiveStep and MaxStepSize. t <= 0 maps to 0.
func StepSizeFromSlider(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return MaxStepSize
	}
	return minPositiveStep * math.Pow(MaxStepSize/minPositiveStep, t)
}

// SliderFromStepSize is the inverse of StepSizeFromSlider. Values below
// minPositiveStep map to 0.
func SliderFromStepSize(v float64) float64 {
	if v < minPositiveStep {
		return 0
	}
	if v >= MaxStepSize {
		return 1
	}
	return math.Log(v/minPositiveStep) / math.Log(MaxStepSize/minPositiveStep)
}
