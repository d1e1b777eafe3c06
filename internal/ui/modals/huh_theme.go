package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/keys"
)

// updateForm forwards msg to a huh form. Enter and Escape are left to the
// app, which decides between applying and discarding the picker.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && (key.String() == keys.Enter || key.String() == keys.Escape) {
		return form, nil
	}
	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		return f, cmd
	}
	return form, cmd
}

// ModalTheme styles huh fields with the active palette. Forms read it once
// at construction, so a picker opened after a theme change uses new colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		focused := &t.Focused
		focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorPrimary)
		focused.Card = focused.Base
		focused.Title = fg(ColorText).Bold(true)
		focused.Description = fg(ColorTextMuted)
		focused.ErrorIndicator = fg(ColorWarning).SetString(" !")
		focused.ErrorMessage = fg(ColorWarning)
		focused.SelectSelector = fg(ColorPrimary).SetString("▸ ")
		focused.NextIndicator = fg(ColorPrimary).MarginLeft(1).SetString("›")
		focused.PrevIndicator = fg(ColorPrimary).MarginRight(1).SetString("‹")
		focused.Option = fg(ColorText)
		focused.SelectedOption = fg(ColorSecondary).Bold(true)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = fg(ColorTextMuted)
		t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
