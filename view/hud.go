package view

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/sunflower"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize = 14
	hudPadding  = 10
	hudMargin   = 8
)

var hudBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 170}

// HUD is the control panel overlay: current parameters, animation state,
// the expression line and key help.
type HUD struct {
	Visible bool

	face       *text.GoTextFace
	lineHeight float64
}

// NewHUD loads the Go Regular face at the given size.
func NewHUD(size float64) (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("view: load hud font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &HUD{
		Visible:    true,
		face:       face,
		lineHeight: m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// Draw renders lines in a translucent panel at the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if !h.Visible || len(lines) == 0 {
		return
	}
	width := 0.0
	for _, l := range lines {
		width = max(width, text.Advance(l, h.face))
	}
	height := h.lineHeight * float64(len(lines))

	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(width+2*hudPadding, height+2*hudPadding)
	bg.GeoM.Translate(hudMargin, hudMargin)
	bg.ColorScale.ScaleWithColor(hudBackground)
	screen.DrawImage(ensureWhitePixel(), bg)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin+hudPadding, hudMargin+hudPadding+float64(i)*h.lineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, h.face, op)
	}
}

var hudHelp = []string{
	"Tab/1/2 mode   Left/Right rotate   Up/Down amount   PgUp/PgDn amount ±10",
	"P/I/E φ/π/e   Space animate   [ ] step   R reset   F fit   C center",
	"Drag pan   Wheel zoom   H hide   F12 screenshot",
}

// hudLines formats the panel content.
func hudLines(p sunflower.Params, animating bool, step float64, in *exprInput, fps float64) []string {
	lines := []string{
		fmt.Sprintf("Mode: %s", p.Mode),
		fmt.Sprintf("Rotation: %.14f", p.Rotation),
		fmt.Sprintf("Amount: %d / %d", p.Count, p.Mode.MaxAmount()),
		fmt.Sprintf("Spacing: %.2f (max %.0f)", p.Spacing, p.Mode.MaxDensity()),
		fmt.Sprintf("Element radius: %.2f", p.ElementRadius),
	}
	if p.Mode == sunflower.ModeSeed {
		state := "off"
		if animating {
			state = "on"
		}
		lines = append(lines, fmt.Sprintf("Animate: %s   step %.6f", state, step))
	}
	switch {
	case in.active:
		lines = append(lines, "Expression: "+in.text()+"_")
	case in.rejected:
		lines = append(lines, "Expression: invalid, rotation kept (Enter to retry)")
	default:
		lines = append(lines, "Enter: type a rotation expression")
	}
	lines = append(lines, "")
	lines = append(lines, hudHelp...)
	lines = append(lines, fmt.Sprintf("FPS: %.1f", fps))
	return lines
}
