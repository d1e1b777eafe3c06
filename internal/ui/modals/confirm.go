package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/keys"
)

// ConfirmCloseState asks before closing the open project. Projects live
// only in memory, so closing discards every edit.
type ConfirmCloseState struct {
	ProjectName   string
	Options       []string
	SelectedIndex int
}

func (*ConfirmCloseState) modalState() {}

func (s *ConfirmCloseState) Title() string { return "Close Project?" }

func (s *ConfirmCloseState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmCloseState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	name := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(TruncateString(s.ProjectName, ModalWidth-8))

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalWidth - 8).
		MarginBottom(1).
		Render("Unsaved changes are lost. Your activity history is kept.")

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, name, message,
		RenderSelectableList(s.Options, s.SelectedIndex), help)
}

func (s *ConfirmCloseState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed reports whether the close option is highlighted
func (s *ConfirmCloseState) Confirmed() bool {
	return s.SelectedIndex == 0
}

// NewConfirmCloseState creates the dialog with "keep editing" highlighted.
func NewConfirmCloseState(projectName string) *ConfirmCloseState {
	return &ConfirmCloseState{
		ProjectName:   projectName,
		Options:       []string{"Close project", "Keep editing"},
		SelectedIndex: 1,
	}
}
