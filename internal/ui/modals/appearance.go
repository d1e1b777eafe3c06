package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// FontOption is one editor font size choice.
type FontOption struct {
	Label string
	Size  int
}

// AppearanceState is the theme and font size picker.
type AppearanceState struct {
	selectedTheme string
	selectedFont  int

	OriginalTheme string
	OriginalFont  int

	form *huh.Form
}

func (*AppearanceState) modalState() {}

func (s *AppearanceState) Title() string { return "Appearance" }

func (s *AppearanceState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *AppearanceState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AppearanceState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// SelectedTheme returns the highlighted theme id
func (s *AppearanceState) SelectedTheme() string {
	return s.selectedTheme
}

// SelectedFontSize returns the highlighted font size
func (s *AppearanceState) SelectedFontSize() int {
	return s.selectedFont
}

// ThemeChanged reports whether the theme differs from when the modal opened
func (s *AppearanceState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// FontChanged reports whether the font size differs from when the modal opened
func (s *AppearanceState) FontChanged() bool {
	return s.selectedFont != s.OriginalFont
}

// NewAppearanceState creates the picker. themes and themeDisplayNames are
// parallel slices.
func NewAppearanceState(themes, themeDisplayNames []string, currentTheme string,
	fonts []FontOption, currentFont int) *AppearanceState {

	s := &AppearanceState{
		selectedTheme: currentTheme,
		selectedFont:  currentFont,
		OriginalTheme: currentTheme,
		OriginalFont:  currentFont,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	fontOptions := make([]huh.Option[int], len(fonts))
	for i, f := range fonts {
		fontOptions[i] = huh.NewOption(f.Label, f.Size)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewSelect[int]().
			Title("Font size").
			Description("Editor density").
			Options(fontOptions...).
			Value(&s.selectedFont),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	// Init eagerly so the first render shows the options.
	s.form.Init()
	return s
}
