package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/ui"
	"github.com/zhubert/dotide/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred", "dragging", m.layout.Dragging())
		m.releaseDrag()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to the screen

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m.handleMouse(msg)

	case ui.CreateProjectMsg:
		return m.createProject(msg.Kind)

	case ui.OpenStatsMsg:
		return m.openStats()

	case ui.CloseStatsMsg:
		return m.closeStats()

	case ui.FocusExplorerMsg:
		if m.screen != ScreenEditor {
			return m, nil
		}
		return m, m.setFocus(FocusExplorer)

	case ui.RunRequestedMsg:
		return m.startBuild()

	case ui.OpenAppearanceMsg:
		return shortcutAppearance(m)

	case ui.FileSelectedMsg:
		return m.selectFile(msg.ID)

	case ui.EditorChangedMsg:
		return m.handleEditorChanged(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case BuildFinishedMsg:
		return m.handleBuildFinished(msg)

	case activityTickMsg:
		return m.handleActivityTick(msg)

	case NotificationErrorMsg:
		return m, m.ShowFlashWarning("Desktop notification failed")
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Handle tick messages regardless of focus
	if cmd, handled := m.handleTickMessages(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	if m.modal.IsVisible() {
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.updateScreen(msg))
	return m, tea.Batch(cmds...)
}

// updateScreen forwards a message to the visible screen, and on the editor
// screen to the focused panel.
func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case ScreenStats:
		m.stats, cmd = m.stats.Update(msg)
	case ScreenEditor:
		switch m.focus {
		case FocusExplorer:
			m.explorer, cmd = m.explorer.Update(msg)
		case FocusTerminal:
			m.terminal, cmd = m.terminal.Update(msg)
		default:
			m.editor, cmd = m.editor.Update(msg)
			m.footer.SetPosition(m.editor.Position())
		}
	}
	return cmd
}

// handleKeyPress handles global keys.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the visible screen for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "screen", m.screen, "focus", m.focus, "modal", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.screen == ScreenEditor {
		m.lastInput = m.now()
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return nil, nil
}

// handleTickMessages handles timer messages. The bool reports whether msg
// was a tick at all.
func (m *Model) handleTickMessages(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return nil, true
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return ui.FlashTick(), true
		}
		return nil, true
	case ui.SelectionFlashTickMsg:
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.Update(msg)
		return cmd, true
	case ui.ClipboardErrorMsg:
		return m.ShowFlashError("Failed to copy to clipboard"), true
	case ui.SelectionCopiedMsg:
		return m.ShowFlashInfo("Copied to clipboard"), true
	}
	return nil, false
}

// handleHelpShortcutTrigger runs the shortcut picked in the help modal
func (m *Model) handleHelpShortcutTrigger(displayKey string) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	key := normalizeHelpDisplayKey(displayKey)
	m.log.Debug("help shortcut triggered", "display", displayKey, "key", key)
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}
