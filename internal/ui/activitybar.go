package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FocusExplorerMsg asks the shell to focus the file tree.
type FocusExplorerMsg struct{}

// OpenAppearanceMsg asks the shell to open the theme and font picker.
type OpenAppearanceMsg struct{}

type activityItem struct {
	icon string
	msg  tea.Msg
}

// Rows are 2 apart; the first row is under the top border.
var activityItems = []activityItem{
	{icon: "≡", msg: FocusExplorerMsg{}},
	{icon: "◔", msg: OpenStatsMsg{}},
	{icon: "◐", msg: OpenAppearanceMsg{}},
}

// ActivityBar is the narrow icon column left of the explorer.
type ActivityBar struct {
	width  int
	height int
	active int
}

// NewActivityBar creates the icon column
func NewActivityBar() *ActivityBar {
	return &ActivityBar{}
}

// SetSize sets the column size
func (a *ActivityBar) SetSize(width, height int) {
	a.width = width
	a.height = height
}

// SetExplorerActive highlights the explorer icon
func (a *ActivityBar) SetExplorerActive(active bool) {
	if active {
		a.active = 0
	} else {
		a.active = -1
	}
}

// Click handles a press at y relative to the column's top.
func (a *ActivityBar) Click(y int) tea.Cmd {
	if y < 1 || (y-1)%2 != 0 {
		return nil
	}
	i := (y - 1) / 2
	if i >= len(activityItems) {
		return nil
	}
	msg := activityItems[i].msg
	return func() tea.Msg { return msg }
}

// View renders the column
func (a *ActivityBar) View() string {
	lines := []string{""}
	for i, item := range activityItems {
		style := lipgloss.NewStyle().Foreground(ColorTextMuted)
		if i == a.active {
			style = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		}
		lines = append(lines, " "+style.Render(item.icon)+" ", "")
	}
	return ActivityBarStyle.
		Width(a.width).
		Height(a.height).
		MaxHeight(a.height).
		Render(strings.Join(lines, "\n"))
}
