package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/layout"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/notification"
	"github.com/zhubert/dotide/internal/prefs"
	"github.com/zhubert/dotide/internal/project"
	"github.com/zhubert/dotide/internal/ui"
)

// Screen is the top-level view the shell shows.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenEditor
	ScreenStats
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "Welcome"
	case ScreenEditor:
		return "Editor"
	case ScreenStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

// Focus represents which editor screen panel receives keys
type Focus int

const (
	FocusEditor Focus = iota
	FocusExplorer
	FocusTerminal
)

// focusOrder is the tab cycle on the editor screen
var focusOrder = []Focus{FocusExplorer, FocusEditor, FocusTerminal}

// Model is the main Bubble Tea model. Every field is owned by Update;
// asynchronous work reports back through messages.
type Model struct {
	config   *config.Config
	prefs    *prefs.Preferences
	recorder *activity.Recorder
	compiler build.Compiler
	notify   func(project string, success bool) error
	version  string
	log      *slog.Logger

	header      *ui.Header
	footer      *ui.Footer
	activityBar *ui.ActivityBar
	explorer    *ui.Explorer
	editor      *ui.Editor
	terminal    *ui.Terminal
	preview     *ui.Preview
	welcome     *ui.Welcome
	stats       *ui.Stats
	modal       *ui.Modal

	width  int
	height int
	screen Screen
	focus  Focus
	layout layout.State

	project      *project.Project
	activeFileID string

	// Build state. screenGen is bumped on every screen change; a build
	// result carrying an older generation is dropped. building stays set
	// until the result of buildSeq arrives, stale or not.
	building  bool
	buildSeq  int
	screenGen int

	// Activity sampling. Only the tick carrying tickGen is live.
	tickGen   int
	lastInput time.Time
	now       func() time.Time

	windowFocused bool

	// notice is written to the output panel of every new project, e.g. to
	// say builds run offline.
	notice string
}

// New creates the shell. Preferences supply the persisted theme, font size
// and activity log; the compiler serves every build.
func New(cfg *config.Config, p *prefs.Preferences, compiler build.Compiler, version string) *Model {
	theme := p.Theme()
	if theme == "" {
		theme = cfg.GetTheme()
	}
	if theme != "" {
		ui.SetThemeByName(theme)
	}

	m := &Model{
		config:        cfg,
		prefs:         p,
		recorder:      activity.NewRecorder(cfg.ActivityPolicy(), p),
		compiler:      compiler,
		notify:        notification.BuildFinished,
		version:       version,
		log:           logger.WithComponent("app"),
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		activityBar:   ui.NewActivityBar(),
		explorer:      ui.NewExplorer(),
		editor:        ui.NewEditor(),
		terminal:      ui.NewTerminal(),
		preview:       ui.NewPreview(),
		welcome:       ui.NewWelcome(),
		stats:         ui.NewStats(),
		modal:         ui.NewModal(),
		screen:        ScreenWelcome,
		focus:         FocusEditor,
		layout:        layout.New(layout.CellBounds),
		now:           time.Now,
		windowFocused: true,
	}

	m.editor.SetFontSize(p.FontSize())
	m.header.SetCompiler(compiler.Name())
	m.refreshAppearance()
	m.footer.SetBindings(ui.WelcomeBindings)

	return m
}

// SetClock replaces the time source for input tracking and activity entries.
// SetNotifier replaces the desktop notification sent after a build.
func (m *Model) SetNotifier(fn func(project string, success bool) error) {
	m.notify = fn
}

func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.recorder.SetClock(now)
}

// SetNotice sets a line written to the output panel of each new project.
func (m *Model) SetNotice(notice string) {
	m.notice = notice
}

// Screen returns the visible screen
func (m *Model) Screen() Screen {
	return m.screen
}

// Project returns the open project, or nil on the welcome screen
func (m *Model) Project() *project.Project {
	return m.project
}

// ActiveFileID returns the file shown in the editor
func (m *Model) ActiveFileID() string {
	return m.activeFileID
}

// Building reports whether a build is in flight
func (m *Model) Building() bool {
	return m.building
}

// Layout returns the current split state
func (m *Model) Layout() layout.State {
	return m.layout
}

// Recorder returns the activity recorder
func (m *Model) Recorder() *activity.Recorder {
	return m.recorder
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// hasPreview reports whether the editor screen shows the preview column
func (m *Model) hasPreview() bool {
	return m.project != nil && m.project.IsWeb()
}

// refreshAppearance updates the header's theme and font summary
func (m *Model) refreshAppearance() {
	m.header.SetAppearance(ui.CurrentTheme().Name, prefs.FontLabel(m.editor.FontSize()))
}
