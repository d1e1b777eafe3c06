package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/ui"
)

// updateSizes recalculates the layout after a window or screen change
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)
	m.layout = m.layout.Fit(ctx.Viewport())
	m.arrange()
}

// arrange applies the split state to every panel
func (m *Model) arrange() {
	ctx := ui.GetViewContext()
	ctx.Arrange(m.layout, m.hasPreview())

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.welcome.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.stats.SetSize(ctx.TerminalWidth, ctx.ContentHeight)

	m.activityBar.SetSize(ctx.ActivityBar.Width, ctx.ActivityBar.Height)
	m.explorer.SetSize(ctx.Explorer.Width, ctx.Explorer.Height)
	m.editor.SetSize(ctx.Editor.Width, ctx.Editor.Height)
	m.terminal.SetSize(ctx.Output.Width, ctx.Output.Height)
	if ctx.HasPreview {
		m.preview.SetSize(ctx.Preview.Width, ctx.Preview.Height)
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.render())
	return v
}

// RenderToString renders the current frame as a plain string
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

func (m *Model) render() string {
	// A modal replaces the frame, centered
	if m.modal.IsVisible() {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.modal.View(m.width, m.height),
		)
	}

	var body string
	switch m.screen {
	case ScreenWelcome:
		body = m.welcome.View()
	case ScreenStats:
		body = m.stats.View()
	default:
		body = m.editorBody()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}

// editorBody lays out activity bar, explorer, the editor over the output
// panel, and the preview column for web projects.
func (m *Model) editorBody() string {
	center := lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), m.terminal.View())
	columns := []string{m.activityBar.View(), m.explorer.View(), center}
	if m.hasPreview() {
		columns = append(columns, m.preview.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
