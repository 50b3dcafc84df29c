package view

import (
	"fmt"

	"github.com/phanxgames/sunflower"
)

// Action is one discrete viewer command, bound to a key and usable from
// test scripts.
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleMode
	ActionSeedMode
	ActionPetalMode
	ActionRotateLeft
	ActionRotateRight
	ActionCountUp
	ActionCountDown
	ActionCountUp10
	ActionCountDown10
	ActionReset
	ActionToggleAnimate
	ActionStepDown
	ActionStepUp
	ActionPhi
	ActionPi
	ActionE
	ActionToggleHUD
	ActionFit
	ActionCenter
	ActionScreenshot
	ActionBeginExpr
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionToggleMode:    "toggleMode",
	ActionSeedMode:      "seedMode",
	ActionPetalMode:     "petalMode",
	ActionRotateLeft:    "rotateLeft",
	ActionRotateRight:   "rotateRight",
	ActionCountUp:       "countUp",
	ActionCountDown:     "countDown",
	ActionCountUp10:     "countUp10",
	ActionCountDown10:   "countDown10",
	ActionReset:         "reset",
	ActionToggleAnimate: "toggleAnimate",
	ActionStepDown:      "stepDown",
	ActionStepUp:        "stepUp",
	ActionPhi:           "phi",
	ActionPi:            "pi",
	ActionE:             "e",
	ActionToggleHUD:     "toggleHUD",
	ActionFit:           "fit",
	ActionCenter:        "center",
	ActionScreenshot:    "screenshot",
	ActionBeginExpr:     "beginExpr",
}

// String returns the action's script name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction looks up an action by its script name.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("view: unknown action %q", s)
}

// stepSliderIncrement is how far one StepUp/StepDown moves the step slider.
const stepSliderIncrement = 0.05

// applyEditorAction performs the actions that only touch pattern state.
// Returns false for viewer-level actions, which the caller handles.
func applyEditorAction(ed *sunflower.Editor, a Action) bool {
	switch a {
	case ActionToggleMode:
		ed.ToggleMode()
	case ActionSeedMode:
		ed.SetMode(sunflower.ModeSeed)
	case ActionPetalMode:
		ed.SetMode(sunflower.ModePetal)
	case ActionRotateLeft:
		ed.NudgeRotation(-1)
	case ActionRotateRight:
		ed.NudgeRotation(1)
	case ActionCountUp:
		ed.IncrementCount()
	case ActionCountDown:
		ed.DecrementCount()
	case ActionCountUp10:
		ed.SetCount(ed.Params().Count + 10)
	case ActionCountDown10:
		ed.SetCount(ed.Params().Count - 10)
	case ActionReset:
		ed.Reset()
	case ActionToggleAnimate:
		ed.ToggleAnimate()
	case ActionStepDown:
		ed.SetStepSlider(ed.StepSlider() - stepSliderIncrement)
	case ActionStepUp:
		ed.SetStepSlider(ed.StepSlider() + stepSliderIncrement)
	case ActionPhi:
		ed.UseConstant(sunflower.ConstantPhi)
	case ActionPi:
		ed.UseConstant(sunflower.ConstantPi)
	case ActionE:
		ed.UseConstant(sunflower.ConstantE)
	default:
		return false
	}
	return true
}
