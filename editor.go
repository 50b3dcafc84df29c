package sunflower

import "math"

// Constant names a shortcut that sets the rotation to a constant's
// fractional part.
type Constant uint8

const (
	ConstantPhi Constant = iota // golden ratio
	ConstantPi
	ConstantE
)

// Value returns the full constant.
func (k Constant) Value() float64 {
	switch k {
	case ConstantPi:
		return math.Pi
	case ConstantE:
		return math.E
	default:
		return Phi
	}
}

// String returns the constant's symbol.
func (k Constant) String() string {
	switch k {
	case ConstantPi:
		return "π"
	case ConstantE:
		return "e"
	default:
		return "φ"
	}
}

// Editor is the input boundary: every UI control maps to one method. Each
// successful edit marks the controller dirty; failed edits change nothing.
type Editor struct {
	ctrl *Controller
	anim *Animator
}

// NewEditor binds an editor to a controller and animator.
func NewEditor(ctrl *Controller, anim *Animator) *Editor {
	return &Editor{ctrl: ctrl, anim: anim}
}

// Params returns the current parameters.
func (ed *Editor) Params() Params {
	return ed.ctrl.Params()
}

// SetRotation stores v as the rotation.
func (ed *Editor) SetRotation(v float64) {
	ed.ctrl.Update(func(p *Params) { p.Rotation = v })
}

// NudgeRotation moves the rotation by steps times the animation step size,
// like dragging the rotation field.
func (ed *Editor) NudgeRotation(steps float64) {
	d := steps * ed.anim.StepSize
	ed.ctrl.Update(func(p *Params) { p.Rotation += d })
}

// SetRotationExpr evaluates s and stores the result. An invalid expression is
// discarded and the rotation keeps its value; the result reports which
// happened.
func (ed *Editor) SetRotationExpr(s string) bool {
	v, err := EvalRotation(s)
	if err != nil {
		return false
	}
	ed.SetRotation(v)
	return true
}

// UseConstant sets the rotation to the fractional part of k.
func (ed *Editor) UseConstant(k Constant) {
	ed.SetRotation(Fract(k.Value()))
}

// SetCount stores n clamped to [0, max amount], like the amount slider.
func (ed *Editor) SetCount(n int) {
	ed.ctrl.Update(func(p *Params) { p.Count = n })
}

// IncrementCount adds one, capped at the mode's max amount.
func (ed *Editor) IncrementCount() {
	ed.ctrl.Update(func(p *Params) { p.Count = min(p.Count+1, p.Mode.MaxAmount()) })
}

// DecrementCount subtracts one but never goes below 1.
func (ed *Editor) DecrementCount() {
	ed.ctrl.Update(func(p *Params) { p.Count = max(p.Count-1, 1) })
}

// SetSpacing stores the spacing distance.
func (ed *Editor) SetSpacing(v float64) {
	ed.ctrl.Update(func(p *Params) { p.Spacing = v })
}

// SetElementRadius stores the element radius. Non-positive values are kept.
func (ed *Editor) SetElementRadius(v float64) {
	ed.ctrl.Update(func(p *Params) { p.ElementRadius = v })
}

// SetColor stores the fill color.
func (ed *Editor) SetColor(c Color) {
	ed.ctrl.Update(func(p *Params) { p.Color = c })
}

// SetMode switches pattern mode, resetting parameters to its defaults and
// stopping animation. No-op if m is the current mode.
func (ed *Editor) SetMode(m Mode) {
	if ed.ctrl.SetMode(m) {
		ed.anim.Enabled = false
	}
}

// ToggleMode switches between Seed and Petal.
func (ed *Editor) ToggleMode() {
	if ed.ctrl.Params().Mode == ModeSeed {
		ed.SetMode(ModePetal)
		return
	}
	ed.SetMode(ModeSeed)
}

// Reset restores the current mode's defaults.
func (ed *Editor) Reset() {
	ed.ctrl.Reset()
}

// ToggleAnimate starts or stops animation. Animation is only offered in Seed
// mode; in Petal mode this does nothing. Returns the new state.
func (ed *Editor) ToggleAnimate() bool {
	if ed.ctrl.Params().Mode != ModeSeed {
		return ed.anim.Enabled
	}
	ed.anim.Enabled = !ed.anim.Enabled
	return ed.anim.Enabled
}

// Animating reports whether animation is on.
func (ed *Editor) Animating() bool {
	return ed.anim.Enabled
}

// SetStepSize stores the animation step size clamped to [0, MaxStepSize].
func (ed *Editor) SetStepSize(v float64) {
	ed.anim.SetStepSize(v)
}

// StepSize returns the animation step size.
func (ed *Editor) StepSize() float64 {
	return ed.anim.StepSize
}

// SetStepSlider positions the logarithmic step-size slider at t in [0, 1].
func (ed *Editor) SetStepSlider(t float64) {
	ed.anim.SetStepSize(StepSizeFromSlider(Clamp(t, 0, 1)))
}

// StepSlider returns the slider position of the current step size.
func (ed *Editor) StepSlider() float64 {
	return SliderFromStepSize(ed.anim.StepSize)
}
