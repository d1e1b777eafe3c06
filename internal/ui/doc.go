// Package ui provides the view components of the dotide terminal IDE.
//
// # Layout System
//
// The editor screen is arranged as follows:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                              │
//	├──┬───────────┬──────────────────────────────┬────────────────┤
//	│  │           │ Editor (tab bar + body)      │                │
//	│A │ Explorer  │                              │   Preview      │
//	│  │           ├──────────────────────────────┤   (web only)   │
//	│  │           │ Output                       │                │
//	├──┴───────────┴──────────────────────────────┴────────────────┤
//	│ Footer (1 line)                                              │
//	└──────────────────────────────────────────────────────────────┘
//
// The split positions come from layout.State. ViewContext.Arrange turns a
// state into panel rectangles so rendering and mouse routing agree on
// where each panel starts.
//
// # Components
//
// ViewContext: singleton holding the window size and the panel rectangles.
//
// Header: project name, build status and the Run button.
//
// Footer: Ready/Building status, key hints, flash messages and the cursor
// position of the editor.
//
// ActivityBar, Explorer: the icon column and the file tree.
//
// Editor: a bubbles textarea while focused and a chroma-highlighted read
// view otherwise. Font size maps to gutter padding and line spacing.
//
// Terminal: the OUTPUT panel. Build logs, a diagnostics box for failed
// builds, and mouse selection with copy to clipboard.
//
// Preview: the served page of a web project, markup flattened to text.
//
// Welcome, Stats: the start screen and the time tracking dashboard.
//
// Modal: wraps the dialogs in the modals subpackage.
//
// # Styles
//
// Colors come from the active Theme. SetTheme regenerates every style
// variable, so components read styles at render time rather than caching
// them.
package ui
