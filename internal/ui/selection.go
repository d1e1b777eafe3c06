package ui

// Selection coordinates are relative to the output viewport: (0,0) is the
// first visible cell under the panel title. Columns are terminal cells, so
// wide characters take two.

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/dotide/internal/clipboard"
	"github.com/zhubert/dotide/internal/logger"
)

// ClipboardErrorMsg is sent when the native clipboard write fails
type ClipboardErrorMsg struct {
	Error error
}

// SelectionCopiedMsg reports text placed on the clipboard
type SelectionCopiedMsg struct {
	Text string
}

// SelectionFlashTickMsg ends the copy highlight
type SelectionFlashTickMsg time.Time

// SelectionFlashTick schedules the end of the copy highlight
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

type selection struct {
	startCol, startLine int
	endCol, endLine     int
	active              bool

	// 0 while the copy flash shows, -1 otherwise
	flashFrame int

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int
}

func (s *selection) clear() {
	s.startCol, s.startLine = -1, -1
	s.endCol, s.endLine = -1, -1
	s.active = false
}

// area returns the selection in reading order.
func (s *selection) area() (startCol, startLine, endCol, endLine int) {
	startCol, startLine = s.startCol, s.startLine
	endCol, endLine = s.endCol, s.endLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// StartSelection begins a selection at a viewport cell
func (t *Terminal) StartSelection(col, line int) {
	s := &t.selection
	s.startCol, s.startLine = col, line
	s.endCol, s.endLine = col, line
	s.active = true
}

// EndSelection moves the end of an in-progress selection
func (t *Terminal) EndSelection(col, line int) {
	if !t.selection.active {
		return
	}
	t.selection.endCol = col
	t.selection.endLine = line
}

// SelectionStop ends the drag and keeps the highlight
func (t *Terminal) SelectionStop() {
	t.selection.active = false
}

// SelectionClear drops the selection
func (t *Terminal) SelectionClear() {
	t.selection.clear()
}

// HasTextSelection reports whether a non-empty range is selected
func (t *Terminal) HasTextSelection() bool {
	s := t.selection
	return s.startCol >= 0 && s.startLine >= 0 &&
		(s.endCol != s.startCol || s.endLine != s.startLine)
}

// handleMouseClick starts a selection, or selects a word on double click
// and a paragraph on triple click.
func (t *Terminal) handleMouseClick(x, y int) tea.Cmd {
	s := &t.selection
	now := time.Now()

	if now.Sub(s.lastClickTime) <= doubleClickThreshold &&
		abs(x-s.lastClickX) <= clickTolerance &&
		abs(y-s.lastClickY) <= clickTolerance {
		s.clickCount++
	} else {
		s.clickCount = 1
	}
	s.lastClickTime = now
	s.lastClickX = x
	s.lastClickY = y

	switch s.clickCount {
	case 1:
		t.StartSelection(x, y)
	case 2:
		t.SelectWord(x, y)
		return t.CopySelectedText()
	case 3:
		t.SelectParagraph(x, y)
		s.clickCount = 0
		return t.CopySelectedText()
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (t *Terminal) visibleLines() []string {
	return strings.Split(t.viewport.View(), "\n")
}

// SelectWord selects the word under a viewport cell
func (t *Terminal) SelectWord(col, line int) {
	lines := t.visibleLines()
	if line < 0 || line >= len(lines) || col < 0 {
		return
	}

	text := ansi.Strip(lines[line])
	pos := 0
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		w := uniseg.StringWidth(word)
		if col < pos+w {
			if strings.TrimSpace(word) == "" {
				return
			}
			t.selection.startCol, t.selection.startLine = pos, line
			t.selection.endCol, t.selection.endLine = pos+w, line
			t.selection.active = false
			return
		}
		pos += w
	}
}

// SelectParagraph selects the block of non-blank lines around a line
func (t *Terminal) SelectParagraph(_, line int) {
	lines := t.visibleLines()
	if line < 0 || line >= len(lines) {
		return
	}

	blank := func(i int) bool { return strings.TrimSpace(ansi.Strip(lines[i])) == "" }

	start, end := line, line
	for start > 0 && !blank(start-1) {
		start--
	}
	for end < len(lines)-1 && !blank(end+1) {
		end++
	}

	t.selection.startCol, t.selection.startLine = 0, start
	t.selection.endCol, t.selection.endLine = ansi.StringWidth(lines[end]), end
	t.selection.active = false
}

// GetSelectedText returns the selected cells as plain text
func (t *Terminal) GetSelectedText() string {
	if !t.HasTextSelection() {
		return ""
	}

	lines := t.visibleLines()
	startCol, startLine, endCol, endLine := t.selection.area()

	var b strings.Builder
	for y := max(startLine, 0); y <= endLine && y < len(lines); y++ {
		from, to := 0, ansi.StringWidth(lines[y])
		if y == startLine {
			from = startCol
		}
		if y == endLine {
			to = min(endCol, to)
		}
		if from < to {
			b.WriteString(strings.TrimRight(ansi.Strip(ansi.Cut(lines[y], from, to)), " "))
		}
		if y < endLine {
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// CopySelectedText puts the selection on the clipboard and flashes it
func (t *Terminal) CopySelectedText() tea.Cmd {
	text := t.GetSelectedText()
	if text == "" {
		return nil
	}
	t.selection.flashFrame = 0
	return tea.Batch(copyText(text), SelectionFlashTick())
}

// CopyAll puts the whole panel text on the clipboard
func (t *Terminal) CopyAll() tea.Cmd {
	text := t.Text()
	if text == "" {
		return nil
	}
	return copyText(text)
}

// copyText writes through OSC 52 and the native clipboard.
func copyText(text string) tea.Cmd {
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				logger.WithComponent("ui").Warn("clipboard write failed", "error", err)
				return ClipboardErrorMsg{Error: err}
			}
			return SelectionCopiedMsg{Text: text}
		},
	)
}

// selectionView paints the selection over the rendered viewport
func (t *Terminal) selectionView(view string) string {
	if !t.HasTextSelection() {
		return view
	}

	width := t.viewport.Width()
	height := t.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := t.selection.area()

	sel := TextSelectionStyle
	if t.selection.flashFrame == 0 {
		sel = TextSelectionFlashStyle
	}
	var bg, fg color.Color = sel.GetBackground(), sel.GetForeground()

	for y := max(startLine, 0); y <= endLine && y < height; y++ {
		xStart, xEnd := 0, width
		if y == startLine {
			xStart = startCol
		}
		if y == endLine {
			xEnd = endCol
		}
		for x := max(xStart, 0); x < xEnd && x < width; x++ {
			if cell := scr.CellAt(x, y); cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = bg
				cell.Style.Fg = fg
				scr.SetCell(x, y, cell)
			}
		}
	}
	return scr.Render()
}
