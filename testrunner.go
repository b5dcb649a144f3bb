package kestrel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a test script. Coordinates are viewport
// pixels.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type testScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"press":      true,
	"release":    true,
	"hover":      true,
	"wait":       true,
	"pause":      true,
	"resume":     true,
}

// TestRunner sequences injected input, pauses and screenshots across
// frames for automated visual testing. Attach it with Engine.SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML test script:
//
//	steps:
//	  - {action: click, x: 320, y: 240}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: after-click}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step runs from Engine.Update
// before input is processed.
func (e *Engine) SetTestRunner(r *TestRunner) {
	e.testRunner = r
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
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

	switch st.Action {
	case "screenshot":
		e.Screenshot(st.Label)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "press":
		e.InjectPress(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "hover":
		e.InjectHover(st.X, st.Y)
	case "pause":
		e.Pause()
	case "resume":
		e.Resume()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
