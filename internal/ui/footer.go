package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/layout"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Key hints per screen
var (
	WelcomeBindings = []KeyBinding{
		{Key: "←/→", Desc: "template"},
		{Key: "enter", Desc: "create"},
		{Key: "s", Desc: "stats"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}

	EditorBindings = []KeyBinding{
		{Key: "ctrl+r", Desc: "run"},
		{Key: "ctrl+e", Desc: "explorer"},
		{Key: "tab", Desc: "focus"},
		{Key: "ctrl+l", Desc: "clear"},
		{Key: "ctrl+y", Desc: "copy"},
		{Key: "ctrl+t", Desc: "appearance"},
		{Key: "ctrl+g", Desc: "stats"},
		{Key: "ctrl+q", Desc: "close"},
	}

	StatsBindings = []KeyBinding{
		{Key: "esc", Desc: "back"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "q", Desc: "quit"},
	}
)

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays up
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient status bar message
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg asks the footer to drop an expired flash
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer is the status bar: build status, project info, cursor position and
// key hints.
type Footer struct {
	width    int
	bindings []KeyBinding

	status   string
	template string
	language string
	line     int
	col      int
	cursor   string

	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: WelcomeBindings,
		status:   "READY",
		cursor:   layout.CursorDefault,
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetStatus sets the leftmost status word, e.g. READY.
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// Status returns the status word
func (f *Footer) Status() string {
	return f.status
}

// SetProjectInfo sets the template and language badges. Empty values hide them.
func (f *Footer) SetProjectInfo(template, language string) {
	f.template = strings.ToUpper(template)
	f.language = language
}

// SetPosition sets the 1-based editor cursor position. Zero hides it.
func (f *Footer) SetPosition(line, col int) {
	f.line = line
	f.col = col
}

// SetDragCursor shows the layout's drag glyph while a split is dragged.
func (f *Footer) SetDragCursor(cursor string) {
	f.cursor = cursor
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, t FlashType) {
	f.SetFlashWithDuration(text, t, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for d
func (f *Footer) SetFlashWithDuration(text string, t FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      t,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func flashIcon(t FlashType) string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

// View renders the footer
func (f *Footer) View() string {
	sep := FooterDescStyle.Render("  ")

	left := []string{FooterKeyStyle.Render(f.status)}
	if f.template != "" {
		left = append(left, FooterDescStyle.Render(f.template))
	}
	if f.language != "" {
		left = append(left, FooterDescStyle.Render(f.language))
	}
	if f.line > 0 {
		left = append(left, FooterDescStyle.Render(fmt.Sprintf("Ln %d, Col %d", f.line, f.col)))
	}
	if f.cursor != layout.CursorDefault && f.cursor != "" {
		left = append(left, FooterDragStyle.Render("⇔ "+f.cursor))
	}
	leftText := strings.Join(left, sep)

	var rightText string
	if f.flashMessage != nil {
		rightText = FooterKeyStyle.Render(flashIcon(f.flashMessage.Type) + " " + f.flashMessage.Text)
	} else {
		var parts []string
		for _, b := range f.bindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		rightText = strings.Join(parts, FooterDescStyle.Render(" | "))
	}

	// FooterStyle pads one cell on each side.
	inner := max(f.width-2, 0)
	gap := max(inner-lipgloss.Width(leftText)-lipgloss.Width(rightText), 1)
	content := leftText + FooterDescStyle.Render(strings.Repeat(" ", gap)) + rightText

	return FooterStyle.Width(f.width).MaxWidth(f.width).Render(content)
}
