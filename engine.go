package sunflower

// Engine bundles the controller, animator and editor that a frame loop drives.
//
// Per frame the host first applies input through Editor (phase 1), then
// calls Tick, which runs the animator (phase 2) and the controller check
// (phase 3) in that order.
type Engine struct {
	Controller *Controller
	Animator   *Animator
	Editor     *Editor
}

// NewEngine creates an engine starting from p. r may be nil.
func NewEngine(p Params, r Renderer) *Engine {
	ctrl := NewController(p, r)
	anim := NewAnimator()
	return &Engine{
		Controller: ctrl,
		Animator:   anim,
		Editor:     NewEditor(ctrl, anim),
	}
}

// Tick advances animation by dt seconds and regenerates if anything changed.
// Returns the new pass and true if a pass ran this tick.
func (e *Engine) Tick(dt float64) ([]Element, bool) {
	animated := e.Animator.Tick(dt, e.Controller)
	elements, ran := e.Controller.MaybeRegenerate()
	if animated {
		return e.Controller.Last(), true
	}
	return elements, ran
}
