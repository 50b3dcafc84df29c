// Package config loads sunflower settings from a YAML file and watches it
// for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/sunflower"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk settings file. Pattern fields left out keep the
// defaults of the selected mode.
type Config struct {
	Window      Window    `yaml:"window"`
	Pattern     Pattern   `yaml:"pattern"`
	Animation   Animation `yaml:"animation"`
	Debug       bool      `yaml:"debug"`
	HUD         *bool     `yaml:"hud,omitempty"`
	Screenshots string    `yaml:"screenshots,omitempty"`
}

// Window sizes and titles the viewer window. Zero values keep the defaults.
type Window struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Pattern overrides the defaults of the selected mode.
type Pattern struct {
	Mode string `yaml:"mode"`
	// Rotation is a number or an expression such as "1/3+1/5" or "phi".
	Rotation string   `yaml:"rotation,omitempty"`
	Spacing  *float64 `yaml:"spacing,omitempty"`
	Radius   *float64 `yaml:"radius,omitempty"`
	Count    *int     `yaml:"count,omitempty"`
	// Color is a hex string, "#rgb", "#rrggbb" or "#rrggbbaa".
	Color string `yaml:"color,omitempty"`
}

// Animation sets the initial animation state and step size.
type Animation struct {
	Enabled bool     `yaml:"enabled"`
	Step    *float64 `yaml:"step,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Window:  Window{Title: "Sunflower", Width: 1280, Height: 800},
		Pattern: Pattern{Mode: sunflower.ModeSeed.String()},
	}
}

// Load reads path. A missing file yields Default. Malformed YAML, unknown
// keys and invalid values are errors.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := c.Params(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Mode returns the configured pattern mode.
func (c Config) Mode() (sunflower.Mode, error) {
	if c.Pattern.Mode == "" {
		return sunflower.ModeSeed, nil
	}
	m, err := sunflower.ParseMode(strings.TrimSpace(c.Pattern.Mode))
	if err != nil {
		return m, fmt.Errorf("config: pattern.mode: %w", err)
	}
	return m, nil
}

// Params resolves the pattern section against the mode defaults. Count is
// clamped to the mode's max amount.
func (c Config) Params() (sunflower.Params, error) {
	m, err := c.Mode()
	if err != nil {
		return sunflower.Params{}, err
	}
	p := sunflower.DefaultParams(m)
	pat := c.Pattern
	if pat.Rotation != "" {
		v, err := sunflower.EvalRotation(pat.Rotation)
		if err != nil {
			return p, fmt.Errorf("config: pattern.rotation: %w", err)
		}
		p.Rotation = v
	}
	if pat.Spacing != nil {
		p.Spacing = *pat.Spacing
	}
	if pat.Radius != nil {
		p.ElementRadius = *pat.Radius
	}
	if pat.Count != nil {
		p.Count = *pat.Count
	}
	if pat.Color != "" {
		col, err := ParseColor(pat.Color)
		if err != nil {
			return p, err
		}
		p.Color = col
	}
	return p.Clamp(), nil
}

// Animate reports whether animation starts enabled. Only Seed mode animates.
func (c Config) Animate() bool {
	m, err := c.Mode()
	return err == nil && m == sunflower.ModeSeed && c.Animation.Enabled
}

// StepSize returns the animation step size, clamped to [0, MaxStepSize].
func (c Config) StepSize() float64 {
	if c.Animation.Step == nil {
		return sunflower.DefaultStepSize
	}
	return sunflower.Clamp(*c.Animation.Step, 0, sunflower.MaxStepSize)
}

// ShowHUD reports whether the control panel starts visible. Defaults to true.
func (c Config) ShowHUD() bool {
	return c.HUD == nil || *c.HUD
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading # is
// optional.
func ParseColor(s string) (sunflower.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return sunflower.Color{}, fmt.Errorf("config: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return sunflower.Color{}, fmt.Errorf("config: invalid color %q", s)
	}
	return sunflower.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
