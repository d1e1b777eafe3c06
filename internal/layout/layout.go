// Package layout implements the resizable split layout of the editor screen:
// the explorer width, the terminal height and the preview width. All
// transitions are pure and return a new State.
package layout

// Target identifies a draggable split boundary.
type Target int

const (
	None Target = iota
	Sidebar
	Terminal
	Preview
)

func (t Target) String() string {
	switch t {
	case Sidebar:
		return "sidebar"
	case Terminal:
		return "terminal"
	case Preview:
		return "preview"
	default:
		return "none"
	}
}

// Cursor glyphs shown while idle or dragging.
const (
	CursorDefault   = "default"
	CursorColResize = "col-resize"
	CursorRowResize = "row-resize"
)

// Bounds are the clamp parameters. The unit is whatever the caller measures
// pointer positions in (pixels or terminal cells).
type Bounds struct {
	ActivityBarWidth     int // Fixed column left of the sidebar
	SidebarMin           int
	SidebarMax           int
	TerminalBottomOffset int // Fixed rows below the terminal (status bar)
	TerminalMin          int
	TerminalReserve      int // Space kept above the terminal for the editor
	PreviewMin           int
	PreviewMax           int

	// Initial dimensions.
	SidebarWidth   int
	TerminalHeight int
	PreviewWidth   int

	// Grab is how far from a boundary a press still hits it.
	Grab int
}

// DefaultBounds are the pixel bounds of the browser layout.
var DefaultBounds = Bounds{
	ActivityBarWidth:     48,
	SidebarMin:           160,
	SidebarMax:           600,
	TerminalBottomOffset: 24,
	TerminalMin:          100,
	TerminalReserve:      200,
	PreviewMin:           300,
	PreviewMax:           800,
	SidebarWidth:         260,
	TerminalHeight:       240,
	PreviewWidth:         500,
	Grab:                 4,
}

// CellBounds scale the layout to terminal cells.
var CellBounds = Bounds{
	ActivityBarWidth:     3,
	SidebarMin:           16,
	SidebarMax:           60,
	TerminalBottomOffset: 1,
	TerminalMin:          4,
	TerminalReserve:      8,
	PreviewMin:           24,
	PreviewMax:           80,
	SidebarWidth:         26,
	TerminalHeight:       10,
	PreviewWidth:         40,
	Grab:                 0,
}

// Viewport is the size of the whole window.
type Viewport struct {
	Width, Height int
}

// State is an immutable snapshot of the split dimensions and the active drag.
type State struct {
	SidebarWidth   int
	TerminalHeight int
	PreviewWidth   int
	Active         Target

	bounds Bounds
}

// New returns the idle state with the bounds' initial dimensions.
func New(b Bounds) State {
	return State{
		SidebarWidth:   b.SidebarWidth,
		TerminalHeight: b.TerminalHeight,
		PreviewWidth:   b.PreviewWidth,
		bounds:         b,
	}
}

// Bounds returns the clamp parameters of s.
func (s State) Bounds() Bounds {
	return s.bounds
}

// Clamp returns v limited to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Dragging reports whether a boundary is being dragged.
func (s State) Dragging() bool {
	return s.Active != None
}

// Press starts dragging target. It is ignored while another drag is active,
// and Preview is unreachable when the preview column is not shown.
func (s State) Press(target Target, previewAvailable bool) State {
	if s.Active != None || target == None {
		return s
	}
	if target == Preview && !previewAvailable {
		return s
	}
	s.Active = target
	return s
}

// Move recomputes the dimension bound to the active target from the pointer
// position. The other dimensions are untouched.
func (s State) Move(x, y int, vp Viewport) State {
	b := s.bounds
	switch s.Active {
	case Sidebar:
		s.SidebarWidth = Clamp(x-b.ActivityBarWidth, b.SidebarMin, b.SidebarMax)
	case Terminal:
		s.TerminalHeight = Clamp(vp.Height-y-b.TerminalBottomOffset, b.TerminalMin, vp.Height-b.TerminalReserve)
	case Preview:
		s.PreviewWidth = Clamp(vp.Width-x, b.PreviewMin, b.PreviewMax)
	}
	return s
}

// Release ends any drag.
func (s State) Release() State {
	s.Active = None
	return s
}

// Fit re-clamps every dimension against the viewport, e.g. after a window resize.
func (s State) Fit(vp Viewport) State {
	b := s.bounds
	s.SidebarWidth = Clamp(s.SidebarWidth, b.SidebarMin, b.SidebarMax)
	s.TerminalHeight = Clamp(s.TerminalHeight, b.TerminalMin, vp.Height-b.TerminalReserve)
	s.PreviewWidth = Clamp(s.PreviewWidth, b.PreviewMin, b.PreviewMax)
	return s
}

// Cursor returns the pointer glyph for the current drag.
func (s State) Cursor() string {
	switch s.Active {
	case Sidebar, Preview:
		return CursorColResize
	case Terminal:
		return CursorRowResize
	default:
		return CursorDefault
	}
}

// SelectionSuppressed reports whether text selection is disabled, which is
// the case for the whole duration of a drag.
func (s State) SelectionSuppressed() bool {
	return s.Dragging()
}

// Boundaries holds the positions of the split boundaries in the viewport.
type Boundaries struct {
	SidebarX  int // Column of the sidebar's right edge
	TerminalY int // Row of the terminal's top edge
	PreviewX  int // Column of the preview's left edge, -1 when absent
}

// Boundaries computes where each split boundary sits for vp.
// They are the inverse of the Move formulas.
func (s State) Boundaries(vp Viewport, previewAvailable bool) Boundaries {
	b := s.bounds
	out := Boundaries{
		SidebarX:  b.ActivityBarWidth + s.SidebarWidth,
		TerminalY: vp.Height - b.TerminalBottomOffset - s.TerminalHeight,
		PreviewX:  -1,
	}
	if previewAvailable {
		out.PreviewX = vp.Width - s.PreviewWidth
	}
	return out
}

// HitTest maps a pointer-down position to the boundary it lands on.
func (s State) HitTest(x, y int, vp Viewport, previewAvailable bool) Target {
	g := s.Boundaries(vp, previewAvailable)
	grab := s.bounds.Grab

	near := func(p, edge int) bool {
		return p >= edge-grab && p <= edge+grab
	}

	if near(x, g.SidebarX) {
		return Sidebar
	}
	if g.PreviewX >= 0 && near(x, g.PreviewX) {
		return Preview
	}

	// The terminal spans only the editor column.
	right := vp.Width
	if g.PreviewX >= 0 {
		right = g.PreviewX
	}
	if x > g.SidebarX && x < right && near(y, g.TerminalY) {
		return Terminal
	}
	return None
}
