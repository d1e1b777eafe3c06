package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// startBuild sends a snapshot of the project to the compiler. Only one
// build runs at a time; a request while building is dropped, not queued.
func (m *Model) startBuild() (tea.Model, tea.Cmd) {
	if m.project == nil || m.screen != ScreenEditor {
		return m, nil
	}
	if m.building {
		m.log.Info("build already in progress, ignoring request", "project", m.project.Name)
		return m, nil
	}

	snapshot := m.project
	gen := m.screenGen
	compiler := m.compiler

	m.building = true
	m.buildSeq++
	seq := m.buildSeq
	m.recorder.RecordBuildStarted(snapshot.Name)
	m.terminal.AppendBuildStart(m.now())
	m.header.SetBuilding(true)
	m.footer.SetStatus(StatusBuilding)
	if snapshot.IsWeb() {
		m.preview.SetLoading(true)
	}
	m.log.Info("build started", "project", snapshot.Name, "compiler", compiler.Name(), "generation", gen)

	return m, func() tea.Msg {
		res := compiler.Build(context.Background(), snapshot)
		return BuildFinishedMsg{Seq: seq, ProjectID: snapshot.ID, Generation: gen, Result: res}
	}
}

// handleBuildFinished applies a build result if it still belongs to the
// visible project.
func (m *Model) handleBuildFinished(msg BuildFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq == m.buildSeq {
		m.building = false
		m.header.SetBuilding(false)
		m.footer.SetStatus(StatusReady)
	}
	if m.project == nil || msg.ProjectID != m.project.ID || msg.Generation != m.screenGen {
		m.log.Info("discarding stale build result",
			"project", msg.ProjectID,
			"generation", msg.Generation,
			"current", m.screenGen,
		)
		return m, nil
	}

	res := msg.Result
	m.log.Info("build finished", "project", m.project.Name, "success", res.Success, "errors", len(res.Errors))

	m.terminal.SetResult(res)
	m.preview.SetLoading(false)
	if m.project.IsWeb() {
		m.preview.SetContent(res.PreviewContent)
	}

	var cmds []tea.Cmd
	if res.Success {
		m.recorder.RecordRunSucceeded(m.project.Name)
		cmds = append(cmds, m.ShowFlashSuccess("Build succeeded"))
	} else {
		cmds = append(cmds, m.ShowFlashError(fmt.Sprintf("Build failed with %d error(s)", len(res.Errors))))
	}

	if m.config.NotificationsEnabled() {
		cmds = append(cmds, notifyBuildFinished(m.notify, m.project.Name, res.Success))
	}
	return m, tea.Batch(cmds...)
}

// notifyBuildFinished raises a desktop notification off the event loop
func notifyBuildFinished(notify func(string, bool) error, projectName string, success bool) tea.Cmd {
	return func() tea.Msg {
		if err := notify(projectName, success); err != nil {
			return NotificationErrorMsg{Error: err}
		}
		return nil
	}
}

// armActivityTick starts a new sampling timer, orphaning any earlier one.
// It only runs on the editor screen with a project open.
func (m *Model) armActivityTick() tea.Cmd {
	if m.screen != ScreenEditor || m.project == nil {
		return nil
	}
	m.tickGen++
	gen := m.tickGen
	return tea.Tick(m.recorder.Policy().TickPeriod, func(t time.Time) tea.Msg {
		return activityTickMsg{gen: gen, at: t}
	})
}

// handleActivityTick credits editing time if the user was recently active
func (m *Model) handleActivityTick(msg activityTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen || m.screen != ScreenEditor || m.project == nil {
		return m, nil
	}
	if m.recorder.Tick(msg.at, m.lastInput, m.project.Name) {
		m.log.Debug("activity recorded", "project", m.project.Name)
	}
	return m, m.armActivityTick()
}
