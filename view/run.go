package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the background. The zero value selects DefaultClearColor.
	ClearColor sunflower.Color
	HideHUD    bool
	Debug      bool
	// ScreenshotDir defaults to "screenshots".
	ScreenshotDir string

	// TestRunner, when set, drives the app from a script. With ExitWhenDone
	// the window closes once the script finishes.
	TestRunner   *TestRunner
	ExitWhenDone bool

	// Presets delivers parameter sets applied at the start of a tick.
	Presets <-chan Preset
	// Renderer also receives every pass, after the scene.
	Renderer sunflower.Renderer
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Sunflower"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.ClearColor == (sunflower.Color{}) {
		c.ClearColor = DefaultClearColor
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Run opens a window and drives eng until the window is closed.
func Run(eng *sunflower.Engine, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	app, err := NewApp(eng, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("view: run: %w", err)
	}
	return nil
}
