package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/project"
)

// explorerHeaderLines are the title and project name lines above the tree.
const explorerHeaderLines = 2

// explorerFooterLines is the branch line under the tree.
const explorerFooterLines = 1

// FileSelectedMsg is sent when a file row is activated.
type FileSelectedMsg struct {
	ID string
}

// Explorer is the file tree panel. Only the root folder starts open;
// activating a folder toggles it, activating a file selects it.
type Explorer struct {
	width   int
	height  int
	focused bool

	project   *project.Project
	projectID string
	open      map[string]bool
	rows      []project.Row

	activeID     string
	cursor       int
	scrollOffset int
}

// NewExplorer creates an empty explorer
func NewExplorer() *Explorer {
	return &Explorer{open: map[string]bool{}}
}

// SetSize sets the panel size including borders
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.ensureVisible()
}

// SetFocused sets the focus state
func (e *Explorer) SetFocused(focused bool) {
	e.focused = focused
}

// IsFocused returns the focus state
func (e *Explorer) IsFocused() bool {
	return e.focused
}

// SetProject shows p. Open folders survive edits to the same project and
// reset to just the root when a different project is shown.
func (e *Explorer) SetProject(p *project.Project) {
	e.project = p
	if p == nil {
		e.projectID = ""
		e.open = map[string]bool{}
		e.rows = nil
		e.cursor, e.scrollOffset = 0, 0
		return
	}
	if p.ID != e.projectID {
		e.projectID = p.ID
		e.open = map[string]bool{p.RootID: true}
		e.cursor, e.scrollOffset = 0, 0
	}
	e.refresh()
}

// SetActive marks the file shown in the editor and moves the cursor to it.
func (e *Explorer) SetActive(id string) {
	e.activeID = id
	for i, r := range e.rows {
		if r.Node.ID == id {
			e.cursor = i
			e.ensureVisible()
			return
		}
	}
}

// ActiveID returns the highlighted file id
func (e *Explorer) ActiveID() string {
	return e.activeID
}

// IsOpen reports whether folder id is expanded
func (e *Explorer) IsOpen(id string) bool {
	return e.open[id]
}

// Toggle expands or collapses folder id
func (e *Explorer) Toggle(id string) {
	if e.project == nil {
		return
	}
	n := e.project.Get(id)
	if n == nil || !n.IsFolder() {
		return
	}
	if e.open[id] {
		delete(e.open, id)
	} else {
		e.open[id] = true
	}
	e.refresh()
}

// Rows returns the visible tree rows
func (e *Explorer) Rows() []project.Row {
	return e.rows
}

// Cursor returns the keyboard cursor row
func (e *Explorer) Cursor() int {
	return e.cursor
}

func (e *Explorer) refresh() {
	e.rows = e.project.Walk(func(id string) bool { return e.open[id] })
	if e.cursor >= len(e.rows) {
		e.cursor = max(len(e.rows)-1, 0)
	}
	e.ensureVisible()
}

func (e *Explorer) treeHeight() int {
	return max(GetViewContext().InnerHeight(e.height)-explorerHeaderLines-explorerFooterLines, 1)
}

func (e *Explorer) ensureVisible() {
	h := e.treeHeight()
	if e.cursor < e.scrollOffset {
		e.scrollOffset = e.cursor
	}
	if e.cursor >= e.scrollOffset+h {
		e.scrollOffset = e.cursor - h + 1
	}
	e.scrollOffset = max(e.scrollOffset, 0)
}

// activate opens a folder or selects a file at row i.
func (e *Explorer) activate(i int) tea.Cmd {
	if i < 0 || i >= len(e.rows) {
		return nil
	}
	e.cursor = i
	n := e.rows[i].Node
	if n.IsFolder() {
		e.Toggle(n.ID)
		return nil
	}
	id := n.ID
	return func() tea.Msg { return FileSelectedMsg{ID: id} }
}

// RowAt maps a y offset relative to the panel's top border to a row index,
// or -1.
func (e *Explorer) RowAt(y int) int {
	i := e.scrollOffset + y - 1 - explorerHeaderLines
	if y-1-explorerHeaderLines < 0 || y-1-explorerHeaderLines >= e.treeHeight() || i >= len(e.rows) {
		return -1
	}
	return i
}

// Click handles a pointer press at y relative to the panel's top border.
func (e *Explorer) Click(y int) tea.Cmd {
	return e.activate(e.RowAt(y))
}

// Update handles keyboard navigation
func (e *Explorer) Update(msg tea.Msg) (*Explorer, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !e.focused || e.project == nil {
		return e, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if e.cursor > 0 {
			e.cursor--
			e.ensureVisible()
		}
	case keys.Down, "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
			e.ensureVisible()
		}
	case keys.Left, "h":
		if e.cursor < len(e.rows) {
			n := e.rows[e.cursor].Node
			if n.IsFolder() && e.open[n.ID] {
				e.Toggle(n.ID)
			} else if n.ParentID != "" {
				e.SetActiveCursor(n.ParentID)
			}
		}
	case keys.Right, "l":
		if e.cursor < len(e.rows) {
			if n := e.rows[e.cursor].Node; n.IsFolder() && !e.open[n.ID] {
				e.Toggle(n.ID)
			}
		}
	case keys.Enter, keys.Space:
		return e, e.activate(e.cursor)
	}
	return e, nil
}

// SetActiveCursor moves the cursor to id without selecting it.
func (e *Explorer) SetActiveCursor(id string) {
	for i, r := range e.rows {
		if r.Node.ID == id {
			e.cursor = i
			e.ensureVisible()
			return
		}
	}
}

// View renders the explorer
func (e *Explorer) View() string {
	vc := GetViewContext()

	style := PanelStyle
	if e.focused {
		style = PanelFocusedStyle
	}
	innerWidth := vc.InnerWidth(e.width)
	innerHeight := vc.InnerHeight(e.height)

	lines := []string{PanelTitleStyle.Render("EXPLORER")}
	rootName := "PROJECT"
	if e.project != nil {
		rootName = strings.ToUpper(e.project.Root().Name)
	}
	lines = append(lines, MutedStyle.Render(runewidth.Truncate("▣ "+rootName, innerWidth, "…")))

	h := e.treeHeight()
	end := min(e.scrollOffset+h, len(e.rows))
	for i := e.scrollOffset; i < end; i++ {
		lines = append(lines, e.renderRow(i, innerWidth))
	}
	for len(lines) < innerHeight-explorerFooterLines {
		lines = append(lines, "")
	}
	lines = append(lines, MutedStyle.Render("⎇ MAIN BRANCH"))

	return style.
		Width(e.width).
		Height(e.height).
		MaxHeight(e.height).
		Background(ColorSidebarBg).
		Render(strings.Join(lines, "\n"))
}

func (e *Explorer) renderRow(i, width int) string {
	r := e.rows[i]
	n := r.Node

	var icon string
	switch {
	case n.IsFolder() && r.Open:
		icon = "▾ "
	case n.IsFolder():
		icon = "▸ "
	default:
		icon = "  "
	}
	label := runewidth.Truncate(strings.Repeat("  ", r.Depth)+icon+n.Name, width, "…")

	var style lipgloss.Style
	switch {
	case n.ID == e.activeID:
		style = ExplorerSelectedStyle
	case n.IsFolder():
		style = ExplorerFolderStyle
	default:
		style = ExplorerItemStyle
	}
	if e.focused && i == e.cursor && n.ID != e.activeID {
		style = style.Underline(true).Foreground(ColorAccent)
	}
	return style.Width(width).Render(label)
}
