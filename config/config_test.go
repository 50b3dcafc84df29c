package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/sunflower"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := c.Params()
	if err != nil {
		t.Fatal(err)
	}
	if p != sunflower.DefaultParams(sunflower.ModeSeed) {
		t.Errorf("Params = %+v, want seed defaults", p)
	}
	if c.Window.Width != 1280 || c.Window.Height != 800 {
		t.Errorf("window = %dx%d", c.Window.Width, c.Window.Height)
	}
	if !c.ShowHUD() {
		t.Error("HUD should default to visible")
	}
	if c.StepSize() != sunflower.DefaultStepSize {
		t.Errorf("StepSize = %v", c.StepSize())
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Pattern.Mode != "seed" {
		t.Errorf("mode = %q", c.Pattern.Mode)
	}
}

func TestParseOverrides(t *testing.T) {
	c, err := Parse([]byte(`
window:
  title: Test
pattern:
  mode: petal
  rotation: 1/3+1/5
  spacing: 60
  radius: 2.5
  count: 12
  color: "#ff0000"
animation:
  step: 0.01
debug: true
hud: false
screenshots: shots
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := c.Params()
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode != sunflower.ModePetal {
		t.Errorf("mode = %v", p.Mode)
	}
	if !approxEqual(p.Rotation, 1.0/3+1.0/5, epsilon) {
		t.Errorf("rotation = %v", p.Rotation)
	}
	if p.Spacing != 60 || p.ElementRadius != 2.5 || p.Count != 12 {
		t.Errorf("params = %+v", p)
	}
	if p.Color != (sunflower.Color{R: 1, A: 1}) {
		t.Errorf("color = %+v", p.Color)
	}
	if c.Window.Title != "Test" || c.Window.Width != 1280 {
		t.Errorf("window = %+v", c.Window)
	}
	if !c.Debug || c.ShowHUD() || c.Screenshots != "shots" {
		t.Errorf("flags = debug %v hud %v shots %q", c.Debug, c.ShowHUD(), c.Screenshots)
	}
	if c.StepSize() != 0.01 {
		t.Errorf("step = %v", c.StepSize())
	}
}

func TestParseNumericRotation(t *testing.T) {
	c, err := Parse([]byte("pattern:\n  rotation: 0.25\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := c.Params()
	if !approxEqual(p.Rotation, 0.25, epsilon) {
		t.Errorf("rotation = %v", p.Rotation)
	}
}

func TestParseClampsCount(t *testing.T) {
	c, err := Parse([]byte("pattern:\n  mode: petal\n  count: 1000\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := c.Params()
	if p.Count != 40 {
		t.Errorf("count = %d, want 40", p.Count)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "pattern: [unclosed"},
		{"unknown key", "patern:\n  mode: seed\n"},
		{"bad mode", "pattern:\n  mode: spiral\n"},
		{"bad rotation", "pattern:\n  rotation: 1/+\n"},
		{"bad color", "pattern:\n  color: green\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "config:") {
				t.Errorf("error %q lacks config: prefix", err)
			}
		})
	}
}

func TestAnimateOnlyInSeedMode(t *testing.T) {
	c := Default()
	c.Animation.Enabled = true
	if !c.Animate() {
		t.Error("seed mode should animate")
	}
	c.Pattern.Mode = "petal"
	if c.Animate() {
		t.Error("petal mode should not animate")
	}
}

func TestStepSizeClamped(t *testing.T) {
	c := Default()
	v := 5.0
	c.Animation.Step = &v
	if c.StepSize() != sunflower.MaxStepSize {
		t.Errorf("StepSize = %v", c.StepSize())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want sunflower.Color
		ok   bool
	}{
		{"#008000", sunflower.Color{G: 128.0 / 255, A: 1}, true},
		{"fff", sunflower.Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"#00000000", sunflower.Color{}, true},
		{"#12345", sunflower.Color{}, false},
		{"#zzzzzz", sunflower.Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestWatchDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunflower.yaml")
	writeFile(t, path, "pattern:\n  count: 10\n")
	first, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path, first)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, path, "pattern:\n  count: 20\n")
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-w.Changes:
			if c.Pattern.Count != nil && *c.Pattern.Count == 20 {
				return
			}
		case err := <-w.Errors:
			t.Logf("watch error: %v", err)
		case <-timeout:
			t.Fatal("no reload within timeout")
		}
	}
}

func TestWatchReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunflower.yaml")
	writeFile(t, path, "")
	w, err := Watch(path, Default())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, path, "pattern: [")
	select {
	case err := <-w.Errors:
		if !strings.HasPrefix(err.Error(), "config:") {
			t.Errorf("error = %v", err)
		}
	case c := <-w.Changes:
		t.Fatalf("unexpected change %+v", c)
	case <-time.After(5 * time.Second):
		t.Fatal("no error within timeout")
	}
}

func TestWatchClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunflower.yaml")
	w, err := Watch(path, Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Changes; ok {
		t.Error("Changes should be closed")
	}
	// second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
