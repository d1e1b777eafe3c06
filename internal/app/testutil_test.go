package app

import (
	"os"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/prefs"
	"github.com/zhubert/dotide/internal/project"
	"github.com/zhubert/dotide/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	ui.SetTheme(ui.DefaultTheme)
	logger.Reset()
	os.Exit(code)
}

// testClock is a settable time source.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// testEnv bundles a model with its fakes.
type testEnv struct {
	m        *Model
	compiler *build.MockCompiler
	prefs    *prefs.Preferences
	clock    *testClock
}

// newTestEnv creates a sized model backed by an in-memory store and the
// offline compiler.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ui.SetTheme(ui.DefaultTheme)

	env := &testEnv{
		compiler: build.NewMockCompiler(),
		prefs:    prefs.New(prefs.NewMemoryStore()),
		clock:    newTestClock(),
	}
	env.m = New(config.Default(), env.prefs, env.compiler, "0.0.0-test")
	env.m.SetClock(env.clock.Now)
	env.m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return env
}

// withProject creates a project from the template and returns the env.
func (e *testEnv) withProject(t *testing.T, kind project.TemplateKind) *testEnv {
	t.Helper()
	e.m.Update(ui.CreateProjectMsg{Kind: kind})
	if e.m.Screen() != ScreenEditor {
		t.Fatalf("expected editor screen after creating %s, got %v", kind, e.m.Screen())
	}
	return e
}

// build presses ctrl+r and runs the compiler command synchronously,
// returning the result message without delivering it.
func (e *testEnv) build(t *testing.T) BuildFinishedMsg {
	t.Helper()
	_, cmd := e.m.Update(keyPress(keys.CtrlR))
	if cmd == nil {
		t.Fatal("expected a build command")
	}
	msg, ok := cmd().(BuildFinishedMsg)
	if !ok {
		t.Fatalf("expected BuildFinishedMsg, got %T", msg)
	}
	return msg
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
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
	case keys.CtrlE:
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func mouseMotion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func mouseRelease(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}
