package ui

import (
	"sync"

	"github.com/zhubert/dotide/internal/layout"
	"github.com/zhubert/dotide/internal/logger"
)

// Rect is a panel's position and size in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// Panel rectangles of the editor screen
	ActivityBar Rect
	Explorer    Rect
	Editor      Rect
	Output      Rect
	Preview     Rect
	HasPreview  bool

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize records the window size. Call Arrange afterwards to
// recompute the panels.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
}

// Viewport returns the window size in the layout engine's terms.
func (v *ViewContext) Viewport() layout.Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return layout.Viewport{Width: v.TerminalWidth, Height: v.TerminalHeight}
}

// Arrange places the editor screen panels from the split state. The
// rectangles line up with the boundaries layout.State.HitTest reports.
func (v *ViewContext) Arrange(s layout.State, preview bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	vp := layout.Viewport{Width: v.TerminalWidth, Height: v.TerminalHeight}
	b := s.Bounds()
	g := s.Boundaries(vp, preview)
	top := v.HeaderHeight

	v.HasPreview = preview
	v.ActivityBar = Rect{X: 0, Y: top, Width: b.ActivityBarWidth, Height: v.ContentHeight}
	v.Explorer = Rect{X: b.ActivityBarWidth, Y: top, Width: s.SidebarWidth, Height: v.ContentHeight}

	right := v.TerminalWidth
	v.Preview = Rect{}
	if preview {
		v.Preview = Rect{X: g.PreviewX, Y: top, Width: s.PreviewWidth, Height: v.ContentHeight}
		right = g.PreviewX
	}

	colWidth := max(right-g.SidebarX, 0)
	v.Editor = Rect{X: g.SidebarX, Y: top, Width: colWidth, Height: max(g.TerminalY-top, 0)}
	v.Output = Rect{X: g.SidebarX, Y: g.TerminalY, Width: colWidth, Height: s.TerminalHeight}

	logger.WithComponent("ui").Debug("Panels arranged",
		"explorer", v.Explorer.Width,
		"editor", v.Editor.Width,
		"editorHeight", v.Editor.Height,
		"output", v.Output.Height,
		"preview", v.Preview.Width,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
