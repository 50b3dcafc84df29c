package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/sunflower"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 24
	repeatInterval = 4
)

// wheelZoomBase is the zoom factor of one wheel notch.
const wheelZoomBase = 1.1

type keyBinding struct {
	key    ebiten.Key
	action Action
	repeat bool
}

var defaultKeymap = []keyBinding{
	{ebiten.KeyTab, ActionToggleMode, false},
	{ebiten.KeyDigit1, ActionSeedMode, false},
	{ebiten.KeyDigit2, ActionPetalMode, false},
	{ebiten.KeyArrowLeft, ActionRotateLeft, true},
	{ebiten.KeyArrowRight, ActionRotateRight, true},
	{ebiten.KeyArrowUp, ActionCountUp, true},
	{ebiten.KeyArrowDown, ActionCountDown, true},
	{ebiten.KeyPageUp, ActionCountUp10, true},
	{ebiten.KeyPageDown, ActionCountDown10, true},
	{ebiten.KeyR, ActionReset, false},
	{ebiten.KeySpace, ActionToggleAnimate, false},
	{ebiten.KeyBracketLeft, ActionStepDown, true},
	{ebiten.KeyBracketRight, ActionStepUp, true},
	{ebiten.KeyP, ActionPhi, false},
	{ebiten.KeyI, ActionPi, false},
	{ebiten.KeyE, ActionE, false},
	{ebiten.KeyH, ActionToggleHUD, false},
	{ebiten.KeyF, ActionFit, false},
	{ebiten.KeyC, ActionCenter, false},
	{ebiten.KeyF12, ActionScreenshot, false},
	{ebiten.KeyEnter, ActionBeginExpr, false},
}

// repeatingKeyPressed reports a press on the first tick and then every
// repeatInterval ticks once the key has been held for repeatDelay ticks.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return repeatTick(d)
}

func repeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// exprInput is the rotation expression line. While active it captures the
// keyboard and shortcuts are blocked.
type exprInput struct {
	active bool
	buf    []rune
	// rejected is set when the last commit failed to evaluate.
	rejected bool
}

func (in *exprInput) begin() {
	in.active = true
	in.buf = in.buf[:0]
	in.rejected = false
}

func (in *exprInput) cancel() {
	in.active = false
	in.buf = in.buf[:0]
}

func (in *exprInput) typeRunes(rs []rune) {
	for _, r := range rs {
		if r >= 0x20 && r != 0x7f {
			in.buf = append(in.buf, r)
		}
	}
}

func (in *exprInput) backspace() {
	if len(in.buf) > 0 {
		in.buf = in.buf[:len(in.buf)-1]
	}
}

// commit evaluates the line and closes it. A failed evaluation leaves the
// rotation unchanged.
func (in *exprInput) commit(ed *sunflower.Editor) bool {
	ok := ed.SetRotationExpr(string(in.buf))
	in.rejected = !ok
	in.active = false
	in.buf = in.buf[:0]
	return ok
}

func (in *exprInput) text() string {
	return string(in.buf)
}

// pointerState tracks a drag pan in progress.
type pointerState struct {
	dragging bool
	lastX    int
	lastY    int
}

// processInput applies one frame of keyboard and mouse input to the app.
func (a *App) processInput() {
	if a.expr.active {
		a.processExprInput()
		return
	}
	for _, b := range defaultKeymap {
		pressed := inpututil.IsKeyJustPressed(b.key)
		if b.repeat {
			pressed = repeatingKeyPressed(b.key)
		}
		if pressed {
			a.perform(b.action)
			if b.action == ActionBeginExpr {
				return
			}
		}
	}
	a.processPointer()
}

func (a *App) processExprInput() {
	a.charBuf = ebiten.AppendInputChars(a.charBuf[:0])
	a.expr.typeRunes(a.charBuf)
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		a.expr.backspace()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		a.expr.commit(a.engine.Editor)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.expr.cancel()
	}
}

// processPointer pans on left or middle drag and zooms on the wheel.
func (a *App) processPointer() {
	mx, my := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	switch {
	case held && a.pointer.dragging:
		dx, dy := mx-a.pointer.lastX, my-a.pointer.lastY
		if dx != 0 || dy != 0 {
			a.scene.camera.Pan(float64(dx), float64(dy))
		}
	case held:
		a.pointer.dragging = true
	default:
		a.pointer.dragging = false
	}
	a.pointer.lastX, a.pointer.lastY = mx, my

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.scene.camera.ZoomAt(math.Pow(wheelZoomBase, wy), float64(mx), float64(my))
	}
}
