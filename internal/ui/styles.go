package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, rebuilt by SetTheme
var (
	ColorActivityBar color.Color
	ColorSidebarBg   color.Color
	ColorEditorBg    color.Color
	ColorTerminalBg  color.Color
	ColorTopBarBg    color.Color
	ColorStatusBarBg color.Color
	ColorStatusBarFg color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorBorder      color.Color
	ColorAccent      color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
)

// Top bar styles
var (
	HeaderStyle      lipgloss.Style
	HeaderBadgeStyle lipgloss.Style
	HeaderCrumbStyle lipgloss.Style
	HeaderRunStyle   lipgloss.Style
	HeaderBusyStyle  lipgloss.Style
)

// Status bar styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterDragStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	ActivityBarStyle  lipgloss.Style
)

// Explorer styles
var (
	ExplorerItemStyle     lipgloss.Style
	ExplorerSelectedStyle lipgloss.Style
	ExplorerFolderStyle   lipgloss.Style
)

// Editor styles
var (
	EditorTabStyle       lipgloss.Style
	EditorGutterStyle    lipgloss.Style
	EditorCursorRowStyle lipgloss.Style
)

// Output panel styles
var (
	TerminalPromptStyle   lipgloss.Style
	TerminalErrorBoxStyle lipgloss.Style
	TerminalErrorStyle    lipgloss.Style
	TerminalCodeStyle     lipgloss.Style
	TerminalIdleStyle     lipgloss.Style

	// TextSelectionStyle highlights selected output text
	TextSelectionStyle lipgloss.Style
	// TextSelectionFlashStyle is shown briefly after a copy
	TextSelectionFlashStyle lipgloss.Style
)

// Card styles used by the welcome screen and dashboard
var (
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardTitleStyle    lipgloss.Style
	CardValueStyle    lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	MutedStyle         lipgloss.Style
)

// Bar colors of the activity kinds on the dashboard
var (
	ColorEditing   = lipgloss.Color("#3b82f6")
	ColorBuilding  = lipgloss.Color("#10b981")
	ColorRunning   = lipgloss.Color("#f59e0b")
	ColorDebugging = lipgloss.Color("#ef4444")
)

func init() {
	SetTheme(DefaultTheme)
}

// buildStyles recreates every style from the color variables.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorTopBarBg)

	HeaderBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(ColorAccent).
		Padding(0, 1)

	HeaderCrumbStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Background(ColorTopBarBg).
		Bold(true)

	HeaderRunStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(ColorSuccess).
		Padding(0, 1)

	HeaderBusyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted).
		Background(ColorBorder).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorStatusBarFg).
		Background(ColorStatusBarBg).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorStatusBarFg).
		Background(ColorStatusBarBg)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorStatusBarFg).
		Background(ColorStatusBarBg)

	FooterDragStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorStatusBarBg).
		Background(ColorStatusBarFg).
		Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	ActivityBarStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorActivityBar)

	ExplorerItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ExplorerSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(ColorAccent).
		Bold(true)

	ExplorerFolderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	EditorTabStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(ColorAccent).
		Padding(0, 1)

	EditorGutterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	EditorCursorRowStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	TerminalPromptStyle = lipgloss.NewStyle().
		Foreground(ColorAccent)

	TerminalErrorBoxStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorError).
		PaddingLeft(1)

	TerminalErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TerminalCodeStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	TerminalIdleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(ColorAccent).
		Foreground(lipgloss.Color("#ffffff"))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(lipgloss.Color("#ffffff"))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	CardValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
}
