package view

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/sunflower"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	Text   string  `json:"text,omitempty"`
	Field  string  `json:"field,omitempty"`
	Value  float64 `json:"value,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key Action
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptTarget is what a TestRunner drives. App implements it.
type scriptTarget interface {
	perform(a Action)
	editor() *sunflower.Editor
	screenshot(label string) string
	pan(dx, dy float64)
	zoomAt(factor, x, y float64)
}

// TestRunner sequences editor actions, camera moves and screenshots across
// frames for automated visual checks.
//
// Steps:
//
//	{"action": "key", "name": "countUp"}           perform a bound action
//	{"action": "expr", "text": "1/3+1/5"}          commit a rotation expression
//	{"action": "set", "field": "count", "value": 250}
//	{"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "frames": 10}
//	{"action": "zoom", "x": 640, "y": 400, "value": 2}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "golden"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// drag in progress: per-frame screen delta and frames left
	dragDX, dragDY float64
	dragLeft       int

	// shots are the files requested by screenshot steps
	shots []string
}

var setFields = map[string]bool{
	"rotation": true, "count": true, "spacing": true, "radius": true,
	"step": true, "slider": true,
}

// LoadTestScript parses and validates a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "screenshot", "wait", "expr", "drag", "zoom":
		case "key":
			a, err := ParseAction(st.Name)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			st.key = a
		case "set":
			if !setFields[st.Field] {
				return nil, fmt.Errorf("parse test script: step %d: unknown field %q", i, st.Field)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Shots returns the screenshot paths requested so far, in step order.
func (r *TestRunner) Shots() []string {
	return r.shots
}

// step advances the runner by one frame. Called during input handling.
func (r *TestRunner) step(t scriptTarget) {
	if r.done {
		return
	}
	if r.dragLeft > 0 {
		t.pan(r.dragDX, r.dragDY)
		r.dragLeft--
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		r.shots = append(r.shots, t.screenshot(st.Label))
	case "key":
		t.perform(st.key)
	case "expr":
		t.editor().SetRotationExpr(st.Text)
	case "set":
		applySet(t.editor(), st.Field, st.Value)
	case "zoom":
		t.zoomAt(st.Value, st.X, st.Y)
	case "drag":
		frames := max(st.Frames, 1)
		r.dragDX = (st.ToX - st.FromX) / float64(frames)
		r.dragDY = (st.ToY - st.FromY) / float64(frames)
		t.pan(r.dragDX, r.dragDY)
		r.dragLeft = frames - 1
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	r.checkDone()
}

func (r *TestRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.dragLeft == 0 {
		r.done = true
	}
}

func applySet(ed *sunflower.Editor, field string, v float64) {
	switch field {
	case "rotation":
		ed.SetRotation(v)
	case "count":
		ed.SetCount(int(v))
	case "spacing":
		ed.SetSpacing(v)
	case "radius":
		ed.SetElementRadius(v)
	case "step":
		ed.SetStepSize(v)
	case "slider":
		ed.SetStepSlider(v)
	}
}
