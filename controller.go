package sunflower

import "time"

// Renderer receives each completed pass. Implementations discard every
// element they received before and draw the new sequence (full replace).
type Renderer interface {
	Replace(elements []Element)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(elements []Element)

// Replace calls f(elements).
func (f RendererFunc) Replace(elements []Element) { f(elements) }

// Renderers fans one pass out to several renderers, in order.
type Renderers []Renderer

// Replace forwards elements to every renderer.
func (rs Renderers) Replace(elements []Element) {
	for _, r := range rs {
		r.Replace(elements)
	}
}

// Controller owns the pattern parameters and the shape cache and decides
// when a generation pass runs. It is either clean (the last pass reflects the
// current parameters) or dirty (a pass is pending).
//
// A new Controller is dirty so the first MaybeRegenerate renders the defaults.
type Controller struct {
	params   Params
	cache    *ShapeCache
	renderer Renderer

	dirty  bool
	passes int
	last   []Element
	debug  bool
}

// NewController creates a controller for p. r may be nil.
func NewController(p Params, r Renderer) *Controller {
	return &Controller{
		params:   p.Clamp(),
		cache:    NewShapeCache(),
		renderer: r,
		dirty:    true,
	}
}

// Params returns a copy of the current parameters.
func (c *Controller) Params() Params {
	return c.params
}

// SetParams replaces the parameters (Count clamped) and marks the controller dirty.
func (c *Controller) SetParams(p Params) {
	c.params = p.Clamp()
	c.dirty = true
}

// Update applies fn to the parameters, clamps Count and marks the controller dirty.
func (c *Controller) Update(fn func(p *Params)) {
	fn(&c.params)
	c.params = c.params.Clamp()
	c.dirty = true
}

// SetMode switches to mode m: parameters are reset wholesale to that mode's
// defaults and the cached geometry is dropped. Returns false (and does
// nothing) if m is already the current mode.
func (c *Controller) SetMode(m Mode) bool {
	if m == c.params.Mode {
		return false
	}
	c.params = DefaultParams(m)
	c.cache.InvalidateGeometry()
	c.dirty = true
	return true
}

// Reset restores the current mode's defaults and drops the cached geometry.
func (c *Controller) Reset() {
	c.params = DefaultParams(c.params.Mode)
	c.cache.InvalidateGeometry()
	c.dirty = true
}

// AdvanceRotation adds delta to the rotation and marks the controller dirty.
func (c *Controller) AdvanceRotation(delta float64) {
	c.params.Rotation += delta
	c.dirty = true
}

// MarkDirty schedules a pass.
func (c *Controller) MarkDirty() {
	c.dirty = true
}

// Dirty reports whether a pass is pending.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// MaybeRegenerate runs a pass if one is pending and returns its elements.
// The second result is false when the controller was clean.
func (c *Controller) MaybeRegenerate() ([]Element, bool) {
	if !c.dirty {
		return nil, false
	}
	return c.Regenerate(), true
}

// Regenerate runs a pass unconditionally: the layout is generated, handed to
// the renderer, and the controller becomes clean.
func (c *Controller) Regenerate() []Element {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}
	elements := Generate(c.params, c.cache)
	if c.renderer != nil {
		c.renderer.Replace(elements)
	}
	c.last = elements
	c.passes++
	c.dirty = false
	if c.debug {
		c.debugLog(passStats(elements, c.cache, c.passes, time.Since(t0)))
	}
	return elements
}

// Last returns the elements of the most recent pass.
func (c *Controller) Last() []Element {
	return c.last
}

// Passes returns how many passes have run.
func (c *Controller) Passes() int {
	return c.passes
}

// Cache returns the shape cache.
func (c *Controller) Cache() *ShapeCache {
	return c.cache
}

// SetRenderer replaces the render boundary. r may be nil.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

// SetDebug enables per-pass stats on stderr.
func (c *Controller) SetDebug(enabled bool) {
	c.debug = enabled
}
