package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/layout"
	"github.com/zhubert/dotide/internal/ui"
)

// handleMouse routes pointer events. On the editor screen a press on a
// split boundary starts a resize drag; while the drag lasts, motion resizes
// the panels and text selection is off.
func (m *Model) handleMouse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		// A pointer-up anywhere ends a drag, even over a modal
		if _, ok := msg.(tea.MouseReleaseMsg); ok && m.layout.Dragging() {
			m.releaseDrag()
			m.arrange()
		}
		return m, nil
	}

	switch m.screen {
	case ScreenWelcome:
		if click, ok := msg.(tea.MouseClickMsg); ok && click.Button == tea.MouseLeft {
			return m, m.welcome.Click(click.X, click.Y-ui.HeaderHeight)
		}
		return m, nil
	case ScreenStats:
		switch msg := msg.(type) {
		case tea.MouseClickMsg:
			if msg.Button == tea.MouseLeft {
				return m, m.stats.Click(msg.X, msg.Y-ui.HeaderHeight)
			}
		case tea.MouseWheelMsg:
			var cmd tea.Cmd
			m.stats, cmd = m.stats.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleEditorClick(msg)

	case tea.MouseMotionMsg:
		if m.layout.Dragging() {
			m.layout = m.layout.Move(msg.X, msg.Y, ui.GetViewContext().Viewport())
			m.arrange()
			return m, nil
		}
		r := ui.GetViewContext().Output
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.Update(tea.MouseMotionMsg{X: msg.X - r.X, Y: msg.Y - r.Y, Button: msg.Button, Mod: msg.Mod})
		return m, cmd

	case tea.MouseReleaseMsg:
		if m.layout.Dragging() {
			m.releaseDrag()
			m.arrange()
			return m, nil
		}
		r := ui.GetViewContext().Output
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.Update(tea.MouseReleaseMsg{X: msg.X - r.X, Y: msg.Y - r.Y, Button: msg.Button, Mod: msg.Mod})
		return m, cmd

	case tea.MouseWheelMsg:
		return m.handleEditorWheel(msg)
	}
	return m, nil
}

// handleEditorClick starts a drag on a boundary or activates the panel
// under the pointer.
func (m *Model) handleEditorClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	vc := ui.GetViewContext()
	if msg.Y < vc.HeaderHeight {
		return m, m.header.Click(msg.X)
	}
	inContent := msg.Y < vc.HeaderHeight+vc.ContentHeight

	if inContent {
		preview := m.hasPreview()
		if target := m.layout.HitTest(msg.X, msg.Y, vc.Viewport(), preview); target != layout.None {
			m.layout = m.layout.Press(target, preview)
			m.footer.SetDragCursor(m.layout.Cursor())
			m.terminal.SelectionClear()
			m.log.Debug("drag started", "target", target)
			return m, nil
		}
	}

	switch {
	case vc.ActivityBar.Contains(msg.X, msg.Y):
		return m, m.activityBar.Click(msg.Y - vc.ActivityBar.Y)

	case vc.Explorer.Contains(msg.X, msg.Y):
		m.lastInput = m.now()
		focus := m.setFocus(FocusExplorer)
		return m, tea.Batch(focus, m.explorer.Click(msg.Y-vc.Explorer.Y))

	case vc.Editor.Contains(msg.X, msg.Y):
		m.lastInput = m.now()
		return m, m.setFocus(FocusEditor)

	case vc.Output.Contains(msg.X, msg.Y):
		focus := m.setFocus(FocusTerminal)
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.Update(tea.MouseClickMsg{
			X:      msg.X - vc.Output.X,
			Y:      msg.Y - vc.Output.Y,
			Button: msg.Button,
			Mod:    msg.Mod,
		})
		return m, tea.Batch(focus, cmd)

	case vc.HasPreview && vc.Preview.Contains(msg.X, msg.Y):
		return m, m.preview.Click(msg.X-vc.Preview.X, msg.Y-vc.Preview.Y)
	}
	return m, nil
}

// handleEditorWheel scrolls the panel under the pointer, focused or not
func (m *Model) handleEditorWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	vc := ui.GetViewContext()
	var cmd tea.Cmd
	switch {
	case vc.Output.Contains(msg.X, msg.Y):
		m.terminal, cmd = m.terminal.Update(msg)
	case vc.HasPreview && vc.Preview.Contains(msg.X, msg.Y):
		m.preview, cmd = m.preview.Update(msg)
	case vc.Editor.Contains(msg.X, msg.Y):
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}
