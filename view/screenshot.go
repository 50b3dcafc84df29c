package view

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved and returns the file
// it will be written to. The name records which regeneration pass is on
// screen and how many top-level elements it has, for example
// 20261014_101500_p0003_n100_seed_golden.png.
func (s *Scene) Screenshot(label string) string {
	name := fmt.Sprintf("%s_p%04d_n%d_%s.png",
		time.Now().Format("20060102_150405"), s.passes, s.pattern.NumChildren(), fileLabel(label))
	path := filepath.Join(s.ScreenshotDir, name)
	s.shots = append(s.shots, path)
	return path
}

// ShotsPending reports whether a screenshot is waiting for the next Draw.
func (s *Scene) ShotsPending() bool {
	return len(s.shots) > 0
}

// flushScreenshots saves the finished frame to every requested path.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.shots) == 0 {
		return
	}
	defer func() { s.shots = s.shots[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sunflower] screenshot: %v\n", err)
		return
	}
	img := capture(screen)
	for _, path := range s.shots {
		if err := gg.SavePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sunflower] screenshot %s: %v\n", path, err)
		}
	}
}

// capture copies the frame into an image.RGBA. Ebitengine hands out
// premultiplied pixels, which is the layout image.RGBA stores.
func capture(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// fileLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "shot"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
