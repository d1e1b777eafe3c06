package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/project"
	"github.com/zhubert/dotide/internal/ui"
)

// setScreen switches screens. Changing screens orphans the running
// activity tick and any build in flight.
func (m *Model) setScreen(s Screen) {
	if m.screen != s {
		m.log.Info("screen transition", "from", m.screen, "to", s)
	}
	m.screen = s
	m.screenGen++
	m.tickGen++
	m.releaseDrag()
	m.resetBuildView()

	switch s {
	case ScreenEditor:
		m.footer.SetBindings(ui.EditorBindings)
	case ScreenStats:
		m.footer.SetBindings(ui.StatsBindings)
		m.footer.SetPosition(0, 0)
	default:
		m.footer.SetBindings(ui.WelcomeBindings)
		m.footer.SetPosition(0, 0)
	}
	m.updateSizes()
}

// resetBuildView clears the panels waiting on a build whose result will
// now be discarded. The header and footer keep showing a pending build,
// since new requests are ignored until it returns.
func (m *Model) resetBuildView() {
	m.terminal.StopBuilding()
	m.preview.SetLoading(false)
	m.header.SetBuilding(m.building)
	if m.building {
		m.footer.SetStatus(StatusBuilding)
	} else {
		m.footer.SetStatus(StatusReady)
	}
}

// releaseDrag ends any split drag
func (m *Model) releaseDrag() {
	if m.layout.Dragging() {
		m.log.Debug("drag released", "target", m.layout.Active)
	}
	m.layout = m.layout.Release()
	m.footer.SetDragCursor(m.layout.Cursor())
}

// createProject replaces any open project with a fresh copy of a template
// and shows the editor.
func (m *Model) createProject(kind project.TemplateKind) (tea.Model, tea.Cmd) {
	p, err := project.New(kind)
	if err != nil {
		m.log.Error("failed to create project", "template", kind, "error", err)
		return m, m.ShowFlashError(fmt.Sprintf("Unknown template %q", kind))
	}
	m.log.Info("project created", "template", kind, "name", p.Name, "id", p.ID)

	m.project = p
	m.activeFileID = project.DefaultFileID

	m.terminal.Clear()
	if m.notice != "" {
		m.terminal.AppendLine(m.notice)
	}
	m.preview.SetContent("")
	m.explorer.SetProject(p)
	m.explorer.SetActive(m.activeFileID)
	m.header.SetProject(p.Name)

	m.setScreen(ScreenEditor)
	m.openActiveFile()
	m.lastInput = m.now()

	return m, tea.Batch(m.setFocus(FocusEditor), m.armActivityTick())
}

// exitToWelcome closes the project and returns to the start screen
func (m *Model) exitToWelcome() (tea.Model, tea.Cmd) {
	if m.project != nil {
		m.log.Info("project closed", "name", m.project.Name)
	}
	m.project = nil
	m.activeFileID = ""
	m.explorer.SetProject(nil)
	m.editor.Close()
	m.terminal.Clear()
	m.preview.SetContent("")
	m.header.SetProject("")
	m.footer.SetProjectInfo("", "")
	m.setScreen(ScreenWelcome)
	return m, m.setFocus(FocusEditor)
}

// openStats shows the dashboard over the current screen's state
func (m *Model) openStats() (tea.Model, tea.Cmd) {
	if m.screen == ScreenStats {
		return m, nil
	}
	m.stats.SetLogs(m.recorder.Entries())
	if m.project != nil {
		m.stats.SetBackTarget(ScreenEditor.String())
	} else {
		m.stats.SetBackTarget(ScreenWelcome.String())
	}
	m.setScreen(ScreenStats)
	return m, m.setFocus(FocusEditor)
}

// closeStats returns to the editor when a project is open, otherwise to
// the welcome screen.
func (m *Model) closeStats() (tea.Model, tea.Cmd) {
	if m.screen != ScreenStats {
		return m, nil
	}
	if m.project == nil {
		m.setScreen(ScreenWelcome)
		return m, nil
	}
	m.setScreen(ScreenEditor)
	m.footer.SetPosition(m.editor.Position())
	return m, tea.Batch(m.setFocus(m.focus), m.armActivityTick())
}

// setFocus moves keyboard focus between the editor screen panels
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	editorScreen := m.screen == ScreenEditor
	m.explorer.SetFocused(editorScreen && f == FocusExplorer)
	m.terminal.SetFocused(editorScreen && f == FocusTerminal)
	m.activityBar.SetExplorerActive(f == FocusExplorer)
	return m.editor.SetFocused(editorScreen && f == FocusEditor)
}

// cycleFocus moves focus delta steps through focusOrder
func (m *Model) cycleFocus(delta int) tea.Cmd {
	i := 0
	for j, f := range focusOrder {
		if f == m.focus {
			i = j
			break
		}
	}
	n := len(focusOrder)
	return m.setFocus(focusOrder[((i+delta)%n+n)%n])
}

// openActiveFile loads the active file into the editor
func (m *Model) openActiveFile() {
	node := m.project.Get(m.activeFileID)
	if node == nil || node.IsFolder() {
		m.editor.Close()
		m.footer.SetProjectInfo(string(m.project.Template), "")
		m.footer.SetPosition(0, 0)
		return
	}
	m.editor.Open(node.ID, node.Name, m.project.Path(node.ID), node.Content)
	m.footer.SetProjectInfo(string(m.project.Template), m.editor.Language())
	m.footer.SetPosition(m.editor.Position())
}

// selectFile makes a file the active one. Folders are toggled by the
// explorer and never reach here as a selection.
func (m *Model) selectFile(id string) (tea.Model, tea.Cmd) {
	if m.project == nil || !m.project.Selectable(id) {
		return m, nil
	}
	m.lastInput = m.now()
	m.activeFileID = id
	m.explorer.SetActive(id)
	m.openActiveFile()
	return m, m.setFocus(FocusEditor)
}

// handleEditorChanged stores an edit in a new project snapshot
func (m *Model) handleEditorChanged(msg ui.EditorChangedMsg) (tea.Model, tea.Cmd) {
	if m.project == nil || msg.ID != m.activeFileID {
		return m, nil
	}
	m.lastInput = m.now()
	m.project = m.project.Edit(msg.ID, msg.Content)
	m.explorer.SetProject(m.project)
	return m, nil
}
