package view

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
	"github.com/tanema/gween/ease"
)

// Camera animation settings for fit and center.
const (
	fitDuration = 0.6
	fitMargin   = 40
)

// Preset is a parameter set delivered from outside the frame loop, such as a
// reloaded settings file. It is applied at the start of the next tick.
type Preset struct {
	Params   sunflower.Params
	Animate  bool
	StepSize float64
}

// App is the ebiten.Game driving an engine. Each tick runs input (presets,
// scripted steps, keyboard and mouse), then the engine's animation and
// regeneration phases, then camera tweens.
type App struct {
	engine *sunflower.Engine
	scene  *Scene
	hud    *HUD

	expr    exprInput
	pointer pointerState
	charBuf []rune

	runner       *TestRunner
	exitWhenDone bool
	presets      <-chan Preset

	// fitPending frames the first pass once it exists.
	fitPending bool
}

// NewApp wires eng to a new scene. The scene becomes the controller's
// renderer, alongside cfg.Renderer when set.
func NewApp(eng *sunflower.Engine, cfg RunConfig) (*App, error) {
	cfg = cfg.withDefaults()
	scene := NewScene(cfg.Width, cfg.Height)
	scene.ClearColor = cfg.ClearColor
	scene.ScreenshotDir = cfg.ScreenshotDir
	scene.SetDebugMode(cfg.Debug)

	hud, err := NewHUD(hudFontSize)
	if err != nil {
		return nil, err
	}
	hud.Visible = !cfg.HideHUD

	var r sunflower.Renderer = scene
	if cfg.Renderer != nil {
		r = sunflower.Renderers{scene, cfg.Renderer}
	}
	eng.Controller.SetRenderer(r)
	eng.Controller.SetDebug(cfg.Debug)

	return &App{
		engine:       eng,
		scene:        scene,
		hud:          hud,
		runner:       cfg.TestRunner,
		exitWhenDone: cfg.ExitWhenDone,
		presets:      cfg.Presets,
		fitPending:   true,
	}, nil
}

// Scene returns the app's scene.
func (a *App) Scene() *Scene {
	return a.scene
}

// Engine returns the driven engine.
func (a *App) Engine() *sunflower.Engine {
	return a.engine
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	a.drainPresets()
	if a.runner != nil {
		a.runner.step(a)
	}
	a.processInput()

	if _, ran := a.engine.Tick(dt); ran && a.fitPending {
		a.fitPending = false
		a.fit(0)
	}
	a.scene.Update(dt)

	// a shot requested on the last step still needs one Draw
	if a.runner != nil && a.exitWhenDone && a.runner.Done() && !a.scene.ShotsPending() {
		for _, path := range a.runner.Shots() {
			_, _ = fmt.Fprintf(os.Stderr, "[sunflower] script screenshot: %s\n", path)
		}
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
	ed := a.engine.Editor
	a.hud.Draw(screen, hudLines(ed.Params(), ed.Animating(), ed.StepSize(), &a.expr, ebiten.ActualFPS()))
	a.scene.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The camera viewport follows the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// perform runs one action.
func (a *App) perform(act Action) {
	if applyEditorAction(a.engine.Editor, act) {
		return
	}
	switch act {
	case ActionToggleHUD:
		a.hud.Visible = !a.hud.Visible
	case ActionFit:
		a.fit(fitDuration)
	case ActionCenter:
		a.scene.camera.ScrollTo(0, 0, fitDuration, ease.OutCubic)
	case ActionScreenshot:
		a.screenshot("manual")
	case ActionBeginExpr:
		a.expr.begin()
	}
}

func (a *App) fit(duration float32) {
	a.scene.camera.FitBounds(sunflower.Bounds(a.engine.Controller.Last()), fitMargin, duration)
}

func (a *App) drainPresets() {
	for {
		select {
		case p, ok := <-a.presets:
			if !ok {
				a.presets = nil
				return
			}
			a.applyPreset(p)
		default:
			return
		}
	}
}

func (a *App) applyPreset(p Preset) {
	a.engine.Controller.SetParams(p.Params)
	a.engine.Animator.SetStepSize(p.StepSize)
	a.engine.Animator.Enabled = p.Animate && p.Params.Mode == sunflower.ModeSeed
}

// --- scriptTarget ---

func (a *App) editor() *sunflower.Editor { return a.engine.Editor }

// screenshot prefixes label with the current mode.
func (a *App) screenshot(label string) string {
	return a.scene.Screenshot(a.engine.Editor.Params().Mode.String() + "_" + label)
}

func (a *App) pan(dx, dy float64) { a.scene.camera.Pan(dx, dy) }

func (a *App) zoomAt(factor, x, y float64) { a.scene.camera.ZoomAt(factor, x, y) }
