package app

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/prefs"
	"github.com/zhubert/dotide/internal/ui"
	"github.com/zhubert/dotide/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key               string                              // The key binding (e.g., "tab", "ctrl+r")
	DisplayKey        string                              // Display name in help (e.g., "ctrl-r"); defaults to Key
	Description       string                              // Human-readable description
	Category          string                              // Section for help modal grouping
	Screens           []Screen                            // Screens the shortcut works on; empty means all
	RequiresProject   bool                                // Must have a project open
	RequiresNotTyping bool                                // Must not have the editor focused
	Handler           func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition         func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryBuild      = "Build & Run"
	CategoryOutput     = "Output"
	CategoryAppearance = "Appearance"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryBuild,
	CategoryOutput,
	CategoryAppearance,
	CategoryGeneral,
}

var editorOnly = []Screen{ScreenEditor}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Focus next panel",
		Category:    CategoryNavigation,
		Screens:     editorOnly,
		Handler:     shortcutNextFocus,
	},
	{
		Key:         keys.ShiftTab,
		DisplayKey:  "Shift-Tab",
		Description: "Focus previous panel",
		Category:    CategoryNavigation,
		Screens:     editorOnly,
		Handler:     shortcutPrevFocus,
	},
	{
		Key:         keys.CtrlE,
		DisplayKey:  "ctrl-e",
		Description: "Focus file explorer",
		Category:    CategoryNavigation,
		Screens:     editorOnly,
		Handler:     shortcutFocusExplorer,
	},
	{
		Key:         keys.CtrlG,
		DisplayKey:  "ctrl-g",
		Description: "Open usage statistics",
		Category:    CategoryNavigation,
		Screens:     []Screen{ScreenWelcome, ScreenEditor},
		Handler:     shortcutStats,
	},

	// Build & Run
	{
		Key:             keys.CtrlR,
		DisplayKey:      "ctrl-r",
		Description:     "Build and run project",
		Category:        CategoryBuild,
		Screens:         editorOnly,
		RequiresProject: true,
		Handler:         shortcutBuild,
	},
	{
		Key:             keys.CtrlQ,
		DisplayKey:      "ctrl-q",
		Description:     "Close project",
		Category:        CategoryBuild,
		Screens:         editorOnly,
		RequiresProject: true,
		Handler:         shortcutCloseProject,
	},

	// Output
	{
		Key:         keys.CtrlL,
		DisplayKey:  "ctrl-l",
		Description: "Clear output",
		Category:    CategoryOutput,
		Screens:     editorOnly,
		Handler:     shortcutClearOutput,
	},
	{
		Key:         keys.CtrlY,
		DisplayKey:  "ctrl-y",
		Description: "Copy output to clipboard",
		Category:    CategoryOutput,
		Screens:     editorOnly,
		Handler:     shortcutCopyOutput,
	},

	// Appearance
	{
		Key:         keys.CtrlT,
		DisplayKey:  "ctrl-t",
		Description: "Change theme and font size",
		Category:    CategoryAppearance,
		Handler:     shortcutAppearance,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "q",
		Description: "Quit application",
		Category:    CategoryGeneral,
		Screens:     []Screen{ScreenWelcome, ScreenStats},
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:               "?",
	Description:       "Show this help",
	Category:          CategoryGeneral,
	RequiresNotTyping: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "←/→ or 1-3", Description: "Pick a project template", Category: CategoryNavigation, Screens: []Screen{ScreenWelcome}},
	{DisplayKey: "Enter", Description: "Create project from template", Category: CategoryNavigation, Screens: []Screen{ScreenWelcome}},
	{DisplayKey: "s", Description: "Open usage statistics", Category: CategoryNavigation, Screens: []Screen{ScreenWelcome}},
	{DisplayKey: "↑/↓", Description: "Move in file tree / scroll output", Category: CategoryNavigation, Screens: editorOnly},
	{DisplayKey: "Enter/Space", Description: "Open file or toggle folder", Category: CategoryNavigation, Screens: editorOnly},
	{DisplayKey: "Esc", Description: "Back from statistics", Category: CategoryNavigation, Screens: []Screen{ScreenStats}},
	{DisplayKey: "Mouse drag", Description: "Resize panels by their borders", Category: CategoryNavigation, Screens: editorOnly},
	{DisplayKey: "Click ▶ / ↻", Description: "Run from header or reload preview", Category: CategoryBuild, Screens: editorOnly},
	{DisplayKey: "Mouse drag", Description: "Select output text (auto-copies)", Category: CategoryOutput, Screens: editorOnly},
	{DisplayKey: "Double click", Description: "Select word in output", Category: CategoryOutput, Screens: editorOnly},
}

// onScreen reports whether s applies to the visible screen
func (m *Model) onScreen(s Shortcut) bool {
	return len(s.Screens) == 0 || slices.Contains(s.Screens, m.screen)
}

// typing reports whether keys go to the code editor
func (m *Model) typing() bool {
	return m.screen == ScreenEditor && m.focus == FocusEditor && m.editor.FileID() != ""
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if !m.onScreen(s) {
		return false
	}
	if s.RequiresProject && m.project == nil {
		return false
	}
	if s.RequiresNotTyping && m.typing() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false // Guard failed, let key propagate to the editor
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "screen", m.screen, "focus", m.focus)
			return m, nil, false
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}

	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut, info bool) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
			Info: info,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s, false)
		}
	}
	for _, s := range displayOnly {
		if m.onScreen(s) {
			add(s, true)
		}
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// normalizeHelpDisplayKey maps a help display key back to the key string
// the runtime reports, e.g. "ctrl-r" to "ctrl+r" and "Tab" to "tab".
func normalizeHelpDisplayKey(displayKey string) string {
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if s.DisplayKey == displayKey && s.Key != "" {
			return s.Key
		}
	}
	key := strings.ToLower(displayKey)
	key = strings.ReplaceAll(key, "ctrl-", "ctrl+")
	key = strings.ReplaceAll(key, "shift-", "shift+")
	return key
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNextFocus(m *Model) (tea.Model, tea.Cmd) {
	return m, m.cycleFocus(1)
}

func shortcutPrevFocus(m *Model) (tea.Model, tea.Cmd) {
	return m, m.cycleFocus(-1)
}

func shortcutFocusExplorer(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(FocusExplorer)
}

func shortcutStats(m *Model) (tea.Model, tea.Cmd) {
	return m.openStats()
}

func shortcutBuild(m *Model) (tea.Model, tea.Cmd) {
	return m.startBuild()
}

func shortcutCloseProject(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(modals.NewConfirmCloseState(m.project.Name))
	return m, nil
}

func shortcutClearOutput(m *Model) (tea.Model, tea.Cmd) {
	m.terminal.Clear()
	return m, nil
}

func shortcutCopyOutput(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.terminal.CopyAll()
	if cmd == nil {
		return m, m.ShowFlashInfo("Output is empty")
	}
	return m, cmd
}

func shortcutAppearance(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		display[i] = ui.BuiltinThemes[n].Name
	}

	sizes := prefs.FontSizes
	if current := m.editor.FontSize(); !slices.Contains(sizes, current) {
		// Keep a stored size the picker doesn't offer selectable
		sizes = append(slices.Clone(sizes), current)
		slices.Sort(sizes)
	}
	fonts := make([]modals.FontOption, len(sizes))
	for i, size := range sizes {
		fonts[i] = modals.FontOption{Label: prefs.FontLabel(size), Size: size}
	}

	m.showModal(modals.NewAppearanceState(themes, display,
		string(ui.CurrentThemeName()), fonts, m.editor.FontSize()))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(slices.Clone(ShortcutRegistry), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.showModal(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
