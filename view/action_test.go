package view

import (
	"testing"

	"github.com/phanxgames/sunflower"
)

func TestParseActionRoundTrip(t *testing.T) {
	for i := range actionNames {
		a := Action(i)
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("explode"); err == nil {
		t.Error("unknown action should fail")
	}
}

func TestApplyEditorActionCounts(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	ed := eng.Editor
	applyEditorAction(ed, ActionCountUp10)
	if ed.Params().Count != 110 {
		t.Errorf("Count = %d, want 110", ed.Params().Count)
	}
	ed.SetCount(5)
	applyEditorAction(ed, ActionCountDown10)
	if ed.Params().Count != 0 {
		t.Errorf("slider step below zero = %d, want 0", ed.Params().Count)
	}
	applyEditorAction(ed, ActionCountDown)
	if ed.Params().Count != 1 {
		t.Errorf("stepper at 0 = %d, want 1", ed.Params().Count)
	}
}

func TestApplyEditorActionModes(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	ed := eng.Editor
	applyEditorAction(ed, ActionPetalMode)
	if ed.Params() != sunflower.DefaultParams(sunflower.ModePetal) {
		t.Errorf("Params = %+v", ed.Params())
	}
	applyEditorAction(ed, ActionToggleMode)
	if ed.Params().Mode != sunflower.ModeSeed {
		t.Errorf("Mode = %v, want seed", ed.Params().Mode)
	}
}

func TestApplyEditorActionRotation(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	ed := eng.Editor
	applyEditorAction(ed, ActionPi)
	start := ed.Params().Rotation
	applyEditorAction(ed, ActionRotateRight)
	if !approxEqual(ed.Params().Rotation, start+ed.StepSize(), 1e-12) {
		t.Errorf("Rotation = %v, want %v", ed.Params().Rotation, start+ed.StepSize())
	}
}

func TestApplyEditorActionStepSlider(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	ed := eng.Editor
	before := ed.StepSlider()
	applyEditorAction(ed, ActionStepUp)
	if !approxEqual(ed.StepSlider(), before+stepSliderIncrement, 1e-9) {
		t.Errorf("StepSlider = %v, want %v", ed.StepSlider(), before+stepSliderIncrement)
	}
}

func TestApplyEditorActionViewerActions(t *testing.T) {
	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
	for _, a := range []Action{ActionToggleHUD, ActionFit, ActionCenter, ActionScreenshot, ActionBeginExpr, ActionNone} {
		if applyEditorAction(eng.Editor, a) {
			t.Errorf("%v should not be an editor action", a)
		}
	}
}
