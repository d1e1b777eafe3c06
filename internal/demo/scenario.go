// Package demo drives the IDE shell through scripted scenarios and records
// the rendered frames. It runs on the offline compiler and an in-memory
// preference store, so recordings are deterministic and need no API key.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/project"
	"github.com/zhubert/dotide/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick presses and releases the left button at a cell.
	StepClick
	// StepDrag presses at one cell, moves to another and releases.
	StepDrag
	// StepBuild starts a build and delivers its result, capturing the
	// in-progress frame in between.
	StepBuild
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
	// StepFlash shows a footer flash message.
	StepFlash
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepClick (X, Y) and StepDrag (X, Y to ToX, ToY)
	X, Y     int
	ToX, ToY int

	// For StepBuild; nil uses the offline compiler's canned run
	Result *build.Result

	// For StepAnnotate
	Annotation string

	// For StepFlash
	FlashText string
	FlashType ui.FlashType
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Template opens a project before the first frame; empty starts on
	// the welcome screen.
	Template project.TemplateKind

	// Theme and FontSize seed the stored preferences.
	Theme    string
	FontSize int

	// Logs seed the activity log shown on the dashboard.
	Logs []activity.Entry

	// Start is the demo clock's initial time.
	Start time.Time
}

// DefaultStart is the demo clock's default starting point.
var DefaultStart = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{Start: DefaultStart}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Start.IsZero() {
		s.Setup.Start = DefaultStart
	}
	if s.Setup.Template != "" && project.GetTemplate(s.Setup.Template) == nil {
		return &ValidationError{Field: "Setup.Template", Message: "unknown template " + string(s.Setup.Template)}
	}
	for i, step := range s.Steps {
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: "Steps", Message: fmt.Sprintf("key step %d has no key", i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{Type: StepTypeText, Text: text, Description: description}
}

// Click creates a left click at a cell.
func Click(x, y int) Step {
	return Step{Type: StepClick, X: x, Y: y}
}

// Drag creates a press-move-release gesture.
func Drag(fromX, fromY, toX, toY int) Step {
	return Step{Type: StepDrag, X: fromX, Y: fromY, ToX: toX, ToY: toY}
}

// Build creates a build step that runs the offline compiler's canned program.
func Build() Step {
	return Step{Type: StepBuild}
}

// BuildResult creates a build step that returns res.
func BuildResult(res build.Result) Step {
	return Step{Type: StepBuild, Result: &res}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Flash creates a footer flash step.
func Flash(text string, flashType ui.FlashType) Step {
	return Step{Type: StepFlash, FlashText: text, FlashType: flashType}
}
