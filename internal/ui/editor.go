package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/dotide/internal/prefs"
)

// EditorChangedMsg is sent when the user changes the open file's text.
type EditorChangedMsg struct {
	ID      string
	Content string
}

// Editor shows the active file. While focused it edits through a textarea;
// otherwise it shows a syntax highlighted read view.
type Editor struct {
	width   int
	height  int
	focused bool

	textarea textarea.Model

	fileID   string
	fileName string
	filePath string
	language string
	content  string

	fontSize int

	// Read view cache, keyed by content and style
	highlighted  []string
	highlightKey string
	readScroll   int
}

// NewEditor creates an editor with no file open
func NewEditor() *Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.MaxHeight = 0
	ta.CharLimit = 0
	ta.Prompt = ""
	e := &Editor{textarea: ta, fontSize: prefs.DefaultFontSize}
	e.applyStyles()
	return e
}

// SetSize sets the panel size including borders
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	vc := GetViewContext()
	e.textarea.SetWidth(vc.InnerWidth(width))
	e.textarea.SetHeight(e.bodyHeight())
	e.ensureReadVisible()
}

func (e *Editor) bodyHeight() int {
	return max(GetViewContext().InnerHeight(e.height)-TabBarHeight, 1)
}

// SetFocused switches between the textarea and the read view
func (e *Editor) SetFocused(focused bool) tea.Cmd {
	e.focused = focused
	if focused && e.fileID != "" {
		return e.textarea.Focus()
	}
	e.textarea.Blur()
	e.ensureReadVisible()
	return nil
}

// IsFocused returns the focus state
func (e *Editor) IsFocused() bool {
	return e.focused
}

// Open shows a file. Reopening the same id with new content replaces the
// text; reopening it unchanged keeps the cursor.
func (e *Editor) Open(id, name, path, content string) {
	same := id == e.fileID && content == e.content
	e.fileID = id
	e.fileName = name
	e.filePath = path
	e.language = LanguageFor(name)
	if same {
		return
	}
	e.content = content
	e.textarea.SetValue(content)
	e.textarea.MoveToBegin()
	e.readScroll = 0
}

// Close clears the editor
func (e *Editor) Close() {
	e.fileID, e.fileName, e.filePath, e.language, e.content = "", "", "", "", ""
	e.textarea.SetValue("")
	e.textarea.Blur()
	e.highlighted = nil
	e.highlightKey = ""
	e.readScroll = 0
}

// FileID returns the open file's id
func (e *Editor) FileID() string {
	return e.fileID
}

// Language returns the open file's editor language
func (e *Editor) Language() string {
	return e.language
}

// Value returns the current text
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetFontSize picks the editor density: 12 compact, 14 normal, 18 roomy.
func (e *Editor) SetFontSize(size int) {
	e.fontSize = size
	e.applyStyles()
}

// FontSize returns the editor density setting
func (e *Editor) FontSize() int {
	return e.fontSize
}

// RefreshTheme rebuilds theme dependent styles after SetTheme.
func (e *Editor) RefreshTheme() {
	e.applyStyles()
	e.highlightKey = ""
}

func (e *Editor) gutterPad() string {
	switch {
	case e.fontSize <= prefs.FontSmall:
		return ""
	case e.fontSize >= prefs.FontLarge:
		return "  "
	default:
		return " "
	}
}

func (e *Editor) applyStyles() {
	e.textarea.Prompt = e.gutterPad()

	s := e.textarea.Styles()
	base := lipgloss.NewStyle()
	text := lipgloss.NewStyle().Foreground(ColorText)
	gutter := lipgloss.NewStyle().Foreground(ColorTextMuted)

	s.Focused.Base = base
	s.Focused.Text = text
	s.Focused.CursorLine = text.Background(ColorBorder)
	s.Focused.LineNumber = gutter
	s.Focused.CursorLineNumber = lipgloss.NewStyle().Foreground(ColorAccent)
	s.Focused.Prompt = gutter
	s.Focused.Placeholder = gutter

	s.Blurred = s.Focused
	s.Blurred.CursorLine = text
	s.Blurred.CursorLineNumber = gutter

	e.textarea.SetStyles(s)
}

// Position returns the 1-based cursor line and column. Columns count
// grapheme clusters, so combined characters and emoji count as one.
func (e *Editor) Position() (line, col int) {
	if e.fileID == "" {
		return 0, 0
	}
	row := e.textarea.Line()
	li := e.textarea.LineInfo()
	runeCol := li.StartColumn + li.ColumnOffset

	lines := strings.Split(e.textarea.Value(), "\n")
	if row >= len(lines) {
		return row + 1, 1
	}
	r := []rune(lines[row])
	runeCol = min(runeCol, len(r))
	return row + 1, uniseg.GraphemeClusterCount(string(r[:runeCol])) + 1
}

// Update forwards input to the textarea and reports content changes
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	if wheel, ok := msg.(tea.MouseWheelMsg); ok && !e.focused {
		switch wheel.Button {
		case tea.MouseWheelUp:
			e.scrollRead(-3)
		case tea.MouseWheelDown:
			e.scrollRead(3)
		}
		return e, nil
	}

	if !e.focused || e.fileID == "" {
		return e, nil
	}

	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)

	if v := e.textarea.Value(); v != e.content {
		e.content = v
		id := e.fileID
		changed := func() tea.Msg { return EditorChangedMsg{ID: id, Content: v} }
		return e, tea.Batch(cmd, changed)
	}
	return e, cmd
}

func (e *Editor) readLines() []string {
	style := CurrentTheme().ChromaStyle
	key := style + "\x00" + e.language + "\x00" + e.content
	if key != e.highlightKey {
		out := highlightCode(e.content, e.language, style)
		lines := strings.Split(out, "\n")
		// The lexer may end on a styled newline; keep one row per source line
		n := strings.Count(e.content, "\n") + 1
		if len(lines) > n {
			lines = lines[:n]
		}
		e.highlighted = lines
		e.highlightKey = key
	}
	return e.highlighted
}

// rowsPerLine is how many screen rows one source line takes in the read view.
func (e *Editor) rowsPerLine() int {
	if e.fontSize >= prefs.FontLarge {
		return 2
	}
	return 1
}

func (e *Editor) scrollRead(delta int) {
	total := strings.Count(e.content, "\n") + 1
	visible := max(e.bodyHeight()/e.rowsPerLine(), 1)
	e.readScroll = max(min(e.readScroll+delta, total-visible), 0)
}

// ensureReadVisible keeps the textarea cursor line inside the read view.
func (e *Editor) ensureReadVisible() {
	visible := max(e.bodyHeight()/e.rowsPerLine(), 1)
	row := e.textarea.Line()
	if row < e.readScroll {
		e.readScroll = row
	}
	if row >= e.readScroll+visible {
		e.readScroll = row - visible + 1
	}
}

func (e *Editor) tabBar(width int) string {
	if e.fileID == "" {
		return MutedStyle.Render("")
	}
	marker := "○ "
	if e.focused {
		marker = "● "
	}
	tab := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render(marker + e.fileName)
	crumb := MutedStyle.Render("  " + strings.ReplaceAll(e.filePath, "/", " › "))
	return ansi.Truncate(tab+crumb, width, "…")
}

func (e *Editor) readView(width, height int) string {
	lines := e.readLines()
	gutterWidth := len(fmt.Sprint(len(lines)))
	pad := e.gutterPad()
	activeRow := e.textarea.Line()

	var out []string
	for i := e.readScroll; i < len(lines) && len(out) < height; i++ {
		num := fmt.Sprintf("%*d", gutterWidth, i+1)
		gutter := EditorGutterStyle.Render(num + pad + " ")
		if i == activeRow {
			gutter = lipgloss.NewStyle().Foreground(ColorAccent).Render(num + pad + " ")
		}
		out = append(out, ansi.Truncate(gutter+lines[i], width, ""))
		if e.rowsPerLine() > 1 && len(out) < height {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// View renders the editor
func (e *Editor) View() string {
	vc := GetViewContext()
	innerWidth := vc.InnerWidth(e.width)
	bodyHeight := e.bodyHeight()

	style := PanelStyle
	if e.focused {
		style = PanelFocusedStyle
	}

	var body string
	switch {
	case e.fileID == "":
		body = lipgloss.Place(innerWidth, bodyHeight, lipgloss.Center, lipgloss.Center,
			TerminalIdleStyle.Render("Select a file to start coding"))
	case e.focused:
		body = e.textarea.View()
	default:
		body = e.readView(innerWidth, bodyHeight)
	}

	return style.
		Width(e.width).
		Height(e.height).
		MaxHeight(e.height).
		Render(e.tabBar(innerWidth) + "\n" + body)
}
