package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/app"
	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/prefs"
	"github.com/zhubert/dotide/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// BuildDelay is how long the in-progress frame of a build is shown (default: 1.5s)
	BuildDelay time.Duration

	// CommandTimeout bounds how long a command returned by the model may
	// run before its message is dropped. Timers never fire within it.
	CommandTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		BuildDelay:       1500 * time.Millisecond,
		CommandTimeout:   20 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config   ExecutorConfig
	model    *app.Model
	compiler *build.MockCompiler
	prefs    *prefs.Preferences
	now      time.Time
	frames   []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	log := logger.WithComponent("demo")
	log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	log.Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup creates the model on the offline compiler and a seeded in-memory store.
func (e *Executor) setup(scenario *Scenario) error {
	setup := scenario.Setup
	e.now = setup.Start
	e.frames = []Frame{}
	e.compiler = build.NewMockCompiler()
	e.prefs = prefs.New(prefs.NewMemoryStore())

	if setup.Theme != "" {
		if !ui.IsTheme(setup.Theme) {
			return fmt.Errorf("unknown theme %q", setup.Theme)
		}
		if err := e.prefs.SetTheme(setup.Theme); err != nil {
			return err
		}
	}
	if setup.FontSize != 0 {
		if err := e.prefs.SetFontSize(setup.FontSize); err != nil {
			return err
		}
	}
	if len(setup.Logs) > 0 {
		if err := e.prefs.SaveActivityLogs(setup.Logs); err != nil {
			return err
		}
	}

	e.model = app.New(config.Default(), e.prefs, e.compiler, "demo")
	e.model.SetClock(func() time.Time { return e.now })
	e.model.SetNotifier(func(string, bool) error { return nil })
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})

	if setup.Template != "" {
		e.update(ui.CreateProjectMsg{Kind: setup.Template})
	}
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.advance(step.Duration)
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		e.advance(e.config.KeyDelay)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.update(keyPress(string(ch)))
			e.advance(e.config.TypeDelay)
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClick:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.update(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.advance(e.config.KeyDelay)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepDrag:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.update(tea.MouseMotionMsg{X: step.ToX, Y: step.ToY, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}
		e.update(tea.MouseReleaseMsg{X: step.ToX, Y: step.ToY, Button: tea.MouseLeft})
		e.advance(e.config.KeyDelay)
		e.captureFrame(index, 200*time.Millisecond)

	case StepBuild:
		if err := e.runBuild(index, step.Result); err != nil {
			return err
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	case StepFlash:
		// The dismiss timer is not run; the flash stays until replaced
		e.model.ShowFlash(step.FlashText, step.FlashType)
		e.captureFrame(index, 100*time.Millisecond)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// runBuild presses the build shortcut, records the in-progress frame and
// then delivers the compiler's result.
func (e *Executor) runBuild(index int, result *build.Result) error {
	if e.model.Project() == nil {
		return fmt.Errorf("no project open for build")
	}
	if result != nil {
		e.compiler.Queue(*result)
	}

	_, cmd := e.model.Update(keyPress(keys.CtrlR))
	if cmd == nil || !e.model.Building() {
		return fmt.Errorf("build did not start")
	}
	e.captureFrame(index, e.config.BuildDelay)
	e.advance(e.config.BuildDelay)

	e.update(cmd())
	e.captureFrame(index, 500*time.Millisecond)
	return nil
}

// update delivers msg and then the messages of any command that completes
// within the timeout.
func (e *Executor) update(msg tea.Msg) {
	pending := []tea.Msg{msg}
	for n := 0; len(pending) > 0 && n < 256; n++ {
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		_, cmd := e.model.Update(next)
		pending = append(pending, e.resolve(cmd)...)
	}
}

// resolve runs cmd, expanding batches. Commands still running after the
// timeout are abandoned.
func (e *Executor) resolve(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(e.config.CommandTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, e.resolve(c)...)
		}
		return out
	case tea.QuitMsg:
		return nil
	}
	return []tea.Msg{msg}
}

func (e *Executor) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})
	e.currentAnnotation = ""
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space, " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "\n":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case keys.CtrlQ:
		return tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlE:
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	default:
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
