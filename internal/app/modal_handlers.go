package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/ui"
	"github.com/zhubert/dotide/internal/ui/modals"
)

// showModal opens a modal. Pointer events stop reaching the panels, so a
// drag in progress ends here.
func (m *Model) showModal(state ui.ModalState) {
	m.releaseDrag()
	m.arrange()
	m.modal.Show(state)
}

// handleModalKey routes key events to the handler of the visible modal.
// Keys never reach the screen behind a modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.AppearanceState:
		return m.handleAppearanceModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.ConfirmCloseState:
		return m.handleConfirmCloseModal(key, msg, s)
	}
	return m.forwardToModal(msg)
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleAppearanceModal applies the picked theme and font size on enter.
// Both are persisted; a failed write keeps the change for this run only.
func (m *Model) handleAppearanceModal(key string, msg tea.KeyPressMsg, state *modals.AppearanceState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		var cmd tea.Cmd
		if state.ThemeChanged() {
			name := state.SelectedTheme()
			ui.SetThemeByName(name)
			m.editor.RefreshTheme()
			m.preview.RefreshTheme()
			m.log.Info("theme changed", "theme", name)
			if err := m.prefs.SetTheme(name); err != nil {
				m.log.Warn("failed to save theme", "error", err)
				cmd = m.ShowFlashWarning("Theme applied but not saved")
			}
		}
		if state.FontChanged() {
			size := state.SelectedFontSize()
			m.editor.SetFontSize(size)
			m.log.Info("font size changed", "size", size)
			if err := m.prefs.SetFontSize(size); err != nil {
				m.log.Warn("failed to save font size", "error", err)
				cmd = m.ShowFlashWarning("Font size applied but not saved")
			}
		}
		m.modal.Hide()
		m.refreshAppearance()
		m.updateSizes()
		return m, cmd
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, every key belongs to the filter input
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}
	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	}
	// Enter is turned into a HelpShortcutTriggeredMsg by the modal itself
	return m.forwardToModal(msg)
}

func (m *Model) handleConfirmCloseModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmCloseState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if state.Confirmed() {
			return m.exitToWelcome()
		}
		return m, nil
	}
	return m.forwardToModal(msg)
}
