package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/keys"
)

// helpKeyWidth is the key column width of a shortcut row
const helpKeyWidth = 16

// helpOverhead is the title and footer lines around the list
const helpOverhead = 4

// shortcutRow is a selectable entry in the shortcuts list
type shortcutRow struct {
	HelpShortcut
}

func (r shortcutRow) FilterValue() string {
	return r.Key + " " + r.Desc
}

// headingRow titles a category. Headings never match a filter.
type headingRow string

func (headingRow) FilterValue() string { return "" }

type helpDelegate struct{}

func (helpDelegate) Height() int                             { return 1 }
func (helpDelegate) Spacing() int                            { return 0 }
func (helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch row := item.(type) {
	case headingRow:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(string(row)))
	case shortcutRow:
		keyStyle, descStyle := rowStyles(index == m.Index(), row.Info)
		cursor := "  "
		if index == m.Index() {
			cursor = "> "
		}
		fmt.Fprint(w, cursor+keyStyle.Width(helpKeyWidth).Render(row.Key)+descStyle.Render(row.Desc))
	}
}

// rowStyles picks the key and description styles for a row
func rowStyles(selected, info bool) (lipgloss.Style, lipgloss.Style) {
	key := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	desc := lipgloss.NewStyle().Foreground(ColorText)
	if info {
		key = key.Foreground(ColorTextMuted)
		desc = desc.Foreground(ColorTextMuted)
	}
	if selected {
		key = key.Foreground(ColorTextInverse).Background(ColorPrimary)
		desc = desc.Foreground(ColorTextInverse).Background(ColorPrimary)
	}
	return key, desc
}

// HelpState lists the shortcuts that apply on the current screen. Enter on
// a triggerable row emits HelpShortcutTriggeredMsg.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == keys.Enter && !s.list.SettingFilter() {
		sc := s.GetSelectedShortcut()
		if sc == nil || sc.Info {
			return s, nil
		}
		triggered := HelpShortcutTriggeredMsg{Key: sc.Key}
		return s, func() tea.Msg { return triggered }
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list between the title and the footer line.
func (s *HelpState) SetSize(width, height int) {
	s.list.SetSize(width, max(height-helpOverhead, 1))
}

// GetSelectedShortcut returns the highlighted row, or nil on a heading or
// an empty list.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	row, ok := s.list.SelectedItem().(shortcutRow)
	if !ok {
		return nil
	}
	return &row.HelpShortcut
}

// IsFiltering reports whether the filter input has focus.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections lays sections out as a heading followed by its
// rows. The cursor starts on the first row.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	first := -1
	for _, section := range sections {
		items = append(items, headingRow(section.Title))
		for _, sc := range section.Shortcuts {
			if first < 0 {
				first = len(items)
			}
			items = append(items, shortcutRow{sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	if first >= 0 {
		l.Select(first)
	}
	return &HelpState{list: l}
}
