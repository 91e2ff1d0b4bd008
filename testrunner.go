package easel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownSteps = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true,
	"click": true, "drag": true, "wait": true, "action": true,
	"screenshot": true,
}

// ActionHandler applies named control changes. Editor implements it.
type ActionHandler interface {
	HandleAction(name string) error
}

// TestRunner sequences injected pointer events, control actions and
// screenshots across frames for automated visual testing. Pointer
// coordinates in the script are screen coordinates.
type TestRunner struct {
	// ScreenshotDir is where screenshot steps write PNGs.
	ScreenshotDir string

	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownSteps[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, ScreenshotDir: "screenshots"}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the action and screenshot failures seen so far, joined.
func (r *TestRunner) Err() error {
	return errors.Join(r.errs...)
}

func (r *TestRunner) fail(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[easel] script: %v\n", err)
	r.errs = append(r.errs, err)
}

// Step advances the runner by one frame. Pointer steps are queued on in;
// action steps go to actions (ignored when nil); screenshot steps capture
// surf.
func (r *TestRunner) Step(in *Input, actions ActionHandler, surf *Surface) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var mods KeyModifiers
	if st.Shift {
		mods = ModShift
	}
	switch st.Action {
	case "screenshot":
		if surf == nil {
			break
		}
		if _, err := surf.Screenshot(r.ScreenshotDir, st.Label); err != nil {
			r.fail(err)
		}
	case "press":
		in.InjectPressMods(st.X, st.Y, mods)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "hover":
		in.InjectHover(st.X, st.Y, mods)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "action":
		if actions == nil {
			break
		}
		if err := actions.HandleAction(st.Name); err != nil {
			r.fail(fmt.Errorf("step %d: %w", r.cursor-1, err))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
