package view

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits applied by ZoomAt, ZoomTo and FitBounds.
const (
	MinZoom = 0.01
	MaxZoom = 100.0
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the world: position, zoom and viewport.
// The world is y-up; the camera flips it onto the y-down screen.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera at the origin with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetViewport resizes the viewport, keeping the world center.
func (c *Camera) SetViewport(v Rect) {
	if c.Viewport == v {
		return
	}
	c.Viewport = v
	c.dirty = true
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A non-positive duration jumps there immediately.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.scrollTween = nil
		c.X, c.Y = x, y
		c.dirty = true
		return
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom towards z over duration seconds.
func (c *Camera) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	z = clampZoom(z)
	if duration <= 0 {
		c.zoomTween = nil
		c.Zoom = z
		c.dirty = true
		return
	}
	c.zoomTween = gween.New(float32(c.Zoom), float32(z), duration, easeFn)
}

// FitBounds animates the camera so b plus margin screen pixels on every side
// fills the viewport. An empty rect only re-centers.
func (c *Camera) FitBounds(b geom.Rect, margin float64, duration float32) {
	cx := (b.Min.X + b.Max.X) / 2
	cy := (b.Min.Y + b.Max.Y) / 2
	c.ScrollTo(cx, cy, duration, ease.OutCubic)
	if z, ok := fitZoom(b, c.Viewport, margin); ok {
		c.ZoomTo(z, duration, ease.OutCubic)
	}
}

// fitZoom returns the zoom that fits b into vp with margin pixels to spare.
func fitZoom(b geom.Rect, vp Rect, margin float64) (float64, bool) {
	w, h := b.Width(), b.Height()
	aw, ah := vp.Width-2*margin, vp.Height-2*margin
	if w <= 0 || h <= 0 || aw <= 0 || ah <= 0 {
		return 0, false
	}
	return clampZoom(math.Min(aw/w, ah/h)), true
}

// Animating reports whether a scroll or zoom tween is running.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// Pan moves the view by a screen-space delta, so the world follows a drag.
// Cancels running scroll and zoom tweens.
func (c *Camera) Pan(dx, dy float64) {
	c.scrollTween = nil
	c.zoomTween = nil
	c.X -= dx / c.Zoom
	c.Y += dy / c.Zoom
	c.dirty = true
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	if factor <= 0 {
		return
	}
	c.zoomTween = nil
	c.scrollTween = nil
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = clampZoom(c.Zoom * factor)
	cx, cy := c.viewportCenter()
	c.X = wx - (sx-cx)/c.Zoom
	c.Y = wy + (sy-cy)/c.Zoom
	c.dirty = true
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(z, MaxZoom))
}

func (c *Camera) viewportCenter() (float64, float64) {
	return c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2
}

// update advances scroll and zoom tweens. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		c.dirty = true
	}
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.Zoom = float64(val)
		if done {
			c.zoomTween = nil
		}
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom, -zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx, cy := c.viewportCenter()
	z := c.Zoom
	c.viewMatrix = [6]float64{z, 0, 0, -z, cx - z*c.X, cy + z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
