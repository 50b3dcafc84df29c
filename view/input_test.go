package view

import (
	"testing"

	"github.com/phanxgames/sunflower"
)

func TestRepeatTick(t *testing.T) {
	tests := []struct {
		d    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
	}
	for _, tt := range tests {
		if got := repeatTick(tt.d); got != tt.want {
			t.Errorf("repeatTick(%d) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestExprInputCommit(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	var in exprInput
	in.begin()
	in.typeRunes([]rune("1/3+1/5x"))
	in.backspace()
	if in.text() != "1/3+1/5" {
		t.Fatalf("text = %q", in.text())
	}
	if !in.commit(eng.Editor) {
		t.Fatal("commit rejected a valid expression")
	}
	if in.active || in.rejected {
		t.Error("input should close cleanly")
	}
	if !approxEqual(eng.Editor.Params().Rotation, 1.0/3+1.0/5, 1e-12) {
		t.Errorf("Rotation = %v", eng.Editor.Params().Rotation)
	}
}

func TestExprInputRejectKeepsRotation(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	before := eng.Editor.Params().Rotation
	var in exprInput
	in.begin()
	in.typeRunes([]rune("2*"))
	if in.commit(eng.Editor) {
		t.Fatal("commit accepted an invalid expression")
	}
	if !in.rejected {
		t.Error("rejected flag should be set")
	}
	if eng.Editor.Params().Rotation != before {
		t.Error("rotation changed on a failed expression")
	}
}

func TestExprInputFiltersControlRunes(t *testing.T) {
	var in exprInput
	in.begin()
	in.typeRunes([]rune{'1', '\n', 0x7f, '\t', '2'})
	if in.text() != "12" {
		t.Errorf("text = %q, want %q", in.text(), "12")
	}
	in.cancel()
	if in.active || in.text() != "" {
		t.Error("cancel should clear and close")
	}
	in.backspace() // empty: no-op
}
