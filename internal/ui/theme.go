package ui

import "charm.land/lipgloss/v2"

// Theme defines the color palette of every IDE surface.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Surface backgrounds
	ActivityBarBg string
	SidebarBg     string
	EditorBg      string
	TerminalBg    string
	TopBarBg      string
	StatusBarBg   string
	StatusBarFg   string

	// Text colors
	Text      string // Main text
	TextMuted string // Secondary text, gutters, hints

	Border string
	Accent string // Focus, active tab, selection

	// Semantic colors
	Error   string
	Success string
	Warning string

	// ChromaStyle names the chroma style used for the read view
	ChromaStyle string

	// Dark is false for light palettes
	Dark bool
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeVSCodeDark  ThemeName = "vscode_dark"
	ThemeDracula     ThemeName = "dracula"
	ThemeMonokai     ThemeName = "monokai"
	ThemeOneDark     ThemeName = "one_dark"
	ThemeGitHubLight ThemeName = "github_light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeVSCodeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeVSCodeDark: {
		Name:          "Visual Studio Dark",
		ActivityBarBg: "#333333",
		SidebarBg:     "#252526",
		EditorBg:      "#1e1e1e",
		TerminalBg:    "#1e1e1e",
		TopBarBg:      "#323233",
		StatusBarBg:   "#007acc",
		StatusBarFg:   "#ffffff",
		Text:          "#d4d4d4",
		TextMuted:     "#858585",
		Border:        "#2b2b2b",
		Accent:        "#0e639c",
		Error:         "#f48771",
		Success:       "#16a34a",
		Warning:       "#cca700",
		ChromaStyle:   "github-dark",
		Dark:          true,
	},
	ThemeDracula: {
		Name:          "Dracula",
		ActivityBarBg: "#282a36",
		SidebarBg:     "#21222c",
		EditorBg:      "#282a36",
		TerminalBg:    "#282a36",
		TopBarBg:      "#191a21",
		StatusBarBg:   "#6272a4",
		StatusBarFg:   "#ffffff",
		Text:          "#f8f8f2",
		TextMuted:     "#6272a4",
		Border:        "#44475a",
		Accent:        "#bd93f9",
		Error:         "#ff5555",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		ChromaStyle:   "dracula",
		Dark:          true,
	},
	ThemeMonokai: {
		Name:          "Monokai",
		ActivityBarBg: "#272822",
		SidebarBg:     "#1e1f1c",
		EditorBg:      "#272822",
		TerminalBg:    "#272822",
		TopBarBg:      "#1e1f1c",
		StatusBarBg:   "#a6e22e",
		StatusBarFg:   "#1e1f1c",
		Text:          "#f8f8f2",
		TextMuted:     "#75715e",
		Border:        "#3e3d32",
		Accent:        "#f92672",
		Error:         "#f92672",
		Success:       "#a6e22e",
		Warning:       "#e6db74",
		ChromaStyle:   "monokai",
		Dark:          true,
	},
	ThemeOneDark: {
		Name:          "One Dark Pro",
		ActivityBarBg: "#21252b",
		SidebarBg:     "#21252b",
		EditorBg:      "#282c34",
		TerminalBg:    "#282c34",
		TopBarBg:      "#21252b",
		StatusBarBg:   "#21252b",
		StatusBarFg:   "#ffffff",
		Text:          "#abb2bf",
		TextMuted:     "#5c6370",
		Border:        "#181a1f",
		Accent:        "#61afef",
		Error:         "#e06c75",
		Success:       "#98c379",
		Warning:       "#e5c07b",
		ChromaStyle:   "onedark",
		Dark:          true,
	},
	ThemeGitHubLight: {
		Name:          "GitHub Light",
		ActivityBarBg: "#f6f8fa",
		SidebarBg:     "#f6f8fa",
		EditorBg:      "#ffffff",
		TerminalBg:    "#f6f8fa",
		TopBarBg:      "#ffffff",
		StatusBarBg:   "#24292f",
		StatusBarFg:   "#ffffff",
		Text:          "#24292f",
		TextMuted:     "#57606a",
		Border:        "#d0d7de",
		Accent:        "#0969da",
		Error:         "#cf222e",
		Success:       "#1a7f37",
		Warning:       "#9a6700",
		ChromaStyle:   "github",
		Dark:          false,
	},
}

// ThemeNames returns the theme ids in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeVSCodeDark,
		ThemeDracula,
		ThemeMonokai,
		ThemeOneDark,
		ThemeGitHubLight,
	}
}

// IsTheme reports whether name is a built-in theme id.
func IsTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Visual Studio Dark if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the id of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown names select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string id
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorActivityBar = lipgloss.Color(t.ActivityBarBg)
	ColorSidebarBg = lipgloss.Color(t.SidebarBg)
	ColorEditorBg = lipgloss.Color(t.EditorBg)
	ColorTerminalBg = lipgloss.Color(t.TerminalBg)
	ColorTopBarBg = lipgloss.Color(t.TopBarBg)
	ColorStatusBarBg = lipgloss.Color(t.StatusBarBg)
	ColorStatusBarFg = lipgloss.Color(t.StatusBarFg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorAccent = lipgloss.Color(t.Accent)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)

	buildStyles()
}
