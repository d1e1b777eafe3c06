package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/keys"
)

// Lines written when a build starts.
const (
	BuildStartLine  = "Starting build process..."
	BuildEngineLine = "Microsoft (R) Build Engine version 17.4.0+18d5aef85 for .NET"
)

// Placeholder text in the output panel.
const (
	TerminalIdleText     = "IDE Terminal is ready"
	TerminalBuildingText = "Compilation in progress..."
	TerminalErrorsTitle  = "Build failed with errors:"
)

// Terminal is the OUTPUT panel: build logs, the diagnostics box of the
// last failed build, and mouse selection for copying.
type Terminal struct {
	width   int
	height  int
	focused bool

	viewport viewport.Model
	logs     []string
	result   *build.Result
	building bool

	selection selection
}

// NewTerminal creates an empty output panel
func NewTerminal() *Terminal {
	t := &Terminal{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
	}
	t.selection.clear()
	t.selection.flashFrame = -1
	return t
}

// SetSize sets the panel size including borders
func (t *Terminal) SetSize(width, height int) {
	t.width = width
	t.height = height
	vc := GetViewContext()
	t.viewport.SetWidth(vc.InnerWidth(width))
	t.viewport.SetHeight(max(vc.InnerHeight(height)-TitleHeight, 1))
	t.selection.clear()
	t.refresh(false)
}

// SetFocused sets the focus state
func (t *Terminal) SetFocused(focused bool) {
	t.focused = focused
}

// IsFocused returns the focus state
func (t *Terminal) IsFocused() bool {
	return t.focused
}

// Clear empties the log and drops the last result
func (t *Terminal) Clear() {
	t.logs = nil
	t.result = nil
	t.selection.clear()
	t.refresh(true)
}

// AppendLine adds a line to the log
func (t *Terminal) AppendLine(line string) {
	t.logs = append(t.logs, strings.Split(line, "\n")...)
	if over := len(t.logs) - MaxTerminalLines; over > 0 {
		t.logs = t.logs[over:]
	}
	t.refresh(true)
}

// AppendBuildStart writes the build banner and shows the building state.
func (t *Terminal) AppendBuildStart(now time.Time) {
	t.building = true
	t.result = nil
	t.AppendLine(fmt.Sprintf("[%s] %s", now.Format("15:04:05"), BuildStartLine))
	t.AppendLine(BuildEngineLine)
}

// SetResult appends the build output and keeps the result for the
// diagnostics box.
func (t *Terminal) SetResult(r build.Result) {
	t.building = false
	t.result = &r
	if r.Output != "" {
		t.AppendLine(r.Output)
	} else {
		t.refresh(true)
	}
}

// StopBuilding drops the building state without a result. Used when the
// screen changes under a running build.
func (t *Terminal) StopBuilding() {
	t.building = false
	t.refresh(true)
}

// Building reports whether the panel shows a build in progress
func (t *Terminal) Building() bool {
	return t.building
}

// Logs returns the raw log lines
func (t *Terminal) Logs() []string {
	return t.logs
}

// Text returns the plain text of the whole panel for copying.
func (t *Terminal) Text() string {
	return strings.TrimSpace(ansi.Strip(t.content()))
}

func (t *Terminal) content() string {
	var lines []string
	for _, l := range t.logs {
		if strings.HasPrefix(l, "[") {
			lines = append(lines, TerminalPromptStyle.Render(l))
		} else {
			lines = append(lines, l)
		}
	}

	if t.building {
		lines = append(lines, StatusLoadingStyle.Render(TerminalBuildingText))
	}

	if t.result != nil && len(t.result.Errors) > 0 {
		lines = append(lines, "", t.errorBox())
	}

	if len(lines) == 0 {
		return TerminalIdleStyle.Render(TerminalIdleText)
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) errorBox() string {
	width := max(t.viewport.Width()-BorderSize, 10)
	rows := []string{TerminalErrorStyle.Render(TerminalErrorsTitle)}
	for _, d := range t.result.Errors {
		loc := fmt.Sprintf("%s(%d,%d): ", d.File, d.Line, d.Column)
		rows = append(rows,
			MutedStyle.Render(loc)+TerminalCodeStyle.Render(d.Code)+" "+d.Message)
	}
	return TerminalErrorBoxStyle.Width(width).Render(strings.Join(rows, "\n"))
}

// refresh rebuilds the viewport content, following the tail when asked
// and the view was already at the bottom.
func (t *Terminal) refresh(follow bool) {
	atBottom := t.viewport.AtBottom()
	content := t.content()
	t.viewport.SetContent(lipgloss.NewStyle().Width(t.viewport.Width()).Render(content))
	if follow || atBottom {
		t.viewport.GotoBottom()
	}
}

// Update handles scrolling, selection and flash ticks. Mouse coordinates
// are relative to the panel's top-left corner.
func (t *Terminal) Update(msg tea.Msg) (*Terminal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return t, nil
		}
		x, y := t.toViewport(msg.X, msg.Y)
		return t, t.handleMouseClick(x, y)

	case tea.MouseMotionMsg:
		if t.selection.active {
			x, y := t.toViewport(msg.X, msg.Y)
			t.EndSelection(x, y)
		}
		return t, nil

	case tea.MouseReleaseMsg:
		if t.selection.active {
			x, y := t.toViewport(msg.X, msg.Y)
			t.EndSelection(x, y)
			t.SelectionStop()
			return t, t.CopySelectedText()
		}
		return t, nil

	case tea.MouseWheelMsg:
		t.selection.clear()
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return t, cmd

	case SelectionFlashTickMsg:
		if t.selection.flashFrame >= 0 {
			t.selection.flashFrame = -1
			t.selection.clear()
		}
		return t, nil

	case tea.KeyPressMsg:
		if !t.focused {
			return t, nil
		}
		switch msg.String() {
		case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End:
			t.selection.clear()
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}
	}
	return t, nil
}

// toViewport converts panel coordinates to viewport coordinates: one cell
// of border on each side and the title row above.
func (t *Terminal) toViewport(x, y int) (int, int) {
	return x - 1, y - 1 - TitleHeight
}

// View renders the output panel
func (t *Terminal) View() string {
	style := PanelStyle
	if t.focused {
		style = PanelFocusedStyle
	}

	title := PanelTitleStyle.Render("OUTPUT")
	if t.building {
		title += " " + StatusLoadingStyle.Render("●")
	}

	body := t.selectionView(t.viewport.View())

	return style.
		Width(t.width).
		Height(t.height).
		MaxHeight(t.height).
		Background(ColorTerminalBg).
		Render(title + "\n" + body)
}
