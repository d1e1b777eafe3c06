package layout

import "testing"

func TestNew_Defaults(t *testing.T) {
	s := New(DefaultBounds)
	if s.SidebarWidth != 260 || s.TerminalHeight != 240 || s.PreviewWidth != 500 {
		t.Errorf("defaults = %+v", s)
	}
	if s.Active != None || s.Cursor() != CursorDefault || s.SelectionSuppressed() {
		t.Error("new state should be idle")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{50, 0, 100, 50},
		{-5, 0, 100, 0},
		{500, 0, 100, 100},
		{50, 100, 80, 100}, // lo wins when hi < lo
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMove_SidebarClampedForAllPositions(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 900}
	s := New(DefaultBounds).Press(Sidebar, false)

	for x := -200; x <= 2000; x += 7 {
		got := s.Move(x, 0, vp).SidebarWidth
		if got < 160 || got > 600 {
			t.Fatalf("x=%d: sidebar width %d outside [160,600]", x, got)
		}
	}
	if got := s.Move(300, 0, vp).SidebarWidth; got != 252 {
		t.Errorf("x=300: sidebar width = %d, want 252", got)
	}
}

func TestMove_TerminalClampedForAllPositions(t *testing.T) {
	for _, vh := range []int{400, 768, 1080} {
		vp := Viewport{Width: 1400, Height: vh}
		s := New(DefaultBounds).Press(Terminal, false)

		for y := -100; y <= vh+100; y += 5 {
			got := s.Move(0, y, vp).TerminalHeight
			if got < 100 || got > vh-200 {
				t.Fatalf("vh=%d y=%d: terminal height %d outside [100,%d]", vh, y, got, vh-200)
			}
		}
	}

	vp := Viewport{Width: 1400, Height: 800}
	s := New(DefaultBounds).Press(Terminal, false)
	if got := s.Move(0, 500, vp).TerminalHeight; got != 276 {
		t.Errorf("y=500: terminal height = %d, want 276", got)
	}
}

func TestMove_TerminalTinyViewportMinWins(t *testing.T) {
	vp := Viewport{Width: 800, Height: 250}
	s := New(DefaultBounds).Press(Terminal, false).Move(0, 0, vp)
	if s.TerminalHeight != 100 {
		t.Errorf("terminal height = %d, want min 100", s.TerminalHeight)
	}
}

func TestMove_PreviewClampedForAllPositions(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 900}
	s := New(DefaultBounds).Press(Preview, true)

	for x := -100; x <= 1800; x += 9 {
		got := s.Move(x, 0, vp).PreviewWidth
		if got < 300 || got > 800 {
			t.Fatalf("x=%d: preview width %d outside [300,800]", x, got)
		}
	}
	if got := s.Move(1000, 0, vp).PreviewWidth; got != 600 {
		t.Errorf("x=1000: preview width = %d, want 600", got)
	}
}

func TestMove_OnlyActiveDimensionChanges(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 900}
	start := New(DefaultBounds)

	tests := []struct {
		target Target
		check  func(before, after State) bool
	}{
		{Sidebar, func(b, a State) bool { return a.TerminalHeight == b.TerminalHeight && a.PreviewWidth == b.PreviewWidth }},
		{Terminal, func(b, a State) bool { return a.SidebarWidth == b.SidebarWidth && a.PreviewWidth == b.PreviewWidth }},
		{Preview, func(b, a State) bool { return a.SidebarWidth == b.SidebarWidth && a.TerminalHeight == b.TerminalHeight }},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			after := start.Press(tt.target, true).Move(400, 400, vp)
			if !tt.check(start, after) {
				t.Errorf("dragging %v changed another dimension: %+v", tt.target, after)
			}
		})
	}
}

func TestMove_IdleIsNoop(t *testing.T) {
	s := New(DefaultBounds)
	if got := s.Move(10, 10, Viewport{Width: 1000, Height: 800}); got != s {
		t.Errorf("idle move changed state: %+v", got)
	}
}

func TestPress_SingleActiveTarget(t *testing.T) {
	s := New(DefaultBounds).Press(Sidebar, true)
	s = s.Press(Terminal, true)
	if s.Active != Sidebar {
		t.Errorf("second press should be ignored, active = %v", s.Active)
	}
}

func TestPress_PreviewUnreachableWithoutPreview(t *testing.T) {
	s := New(DefaultBounds).Press(Preview, false)
	if s.Active != None {
		t.Errorf("preview drag should be unreachable, active = %v", s.Active)
	}
}

func TestRelease_ReturnsToIdleFromAnyState(t *testing.T) {
	for _, target := range []Target{None, Sidebar, Terminal, Preview} {
		s := New(DefaultBounds).Press(target, true)
		if target != None && !s.SelectionSuppressed() {
			t.Errorf("%v: selection should be suppressed while dragging", target)
		}
		s = s.Release()
		if s.Active != None || s.Cursor() != CursorDefault || s.SelectionSuppressed() {
			t.Errorf("%v: release did not return to idle: %+v", target, s)
		}
	}
}

func TestCursor(t *testing.T) {
	tests := map[Target]string{
		Sidebar:  CursorColResize,
		Preview:  CursorColResize,
		Terminal: CursorRowResize,
	}
	for target, want := range tests {
		if got := New(DefaultBounds).Press(target, true).Cursor(); got != want {
			t.Errorf("%v cursor = %q, want %q", target, got, want)
		}
	}
}

func TestFit_ReclampsToViewport(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 1000}
	s := New(DefaultBounds).Press(Terminal, false).Move(0, 100, vp).Release()
	if s.TerminalHeight != 800 {
		t.Fatalf("setup: terminal height = %d", s.TerminalHeight)
	}

	s = s.Fit(Viewport{Width: 1600, Height: 600})
	if s.TerminalHeight != 400 {
		t.Errorf("after shrinking, terminal height = %d, want 400", s.TerminalHeight)
	}
}

func TestHitTest(t *testing.T) {
	vp := Viewport{Width: 120, Height: 40}
	s := New(CellBounds)
	g := s.Boundaries(vp, true)

	tests := []struct {
		name    string
		x, y    int
		preview bool
		want    Target
	}{
		{"sidebar edge", g.SidebarX, 5, true, Sidebar},
		{"preview edge", g.PreviewX, 5, true, Preview},
		{"preview edge absent", vp.Width - s.PreviewWidth, 5, false, None},
		{"terminal edge", g.SidebarX + 5, g.TerminalY, true, Terminal},
		{"terminal edge under sidebar", 1, g.TerminalY, true, None},
		{"editor body", g.SidebarX + 5, 3, true, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitTest(tt.x, tt.y, vp, tt.preview); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundaries_InverseOfMove(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 900}
	s := New(DefaultBounds)
	g := s.Boundaries(vp, true)

	if got := s.Press(Sidebar, true).Move(g.SidebarX, 0, vp).SidebarWidth; got != s.SidebarWidth {
		t.Errorf("sidebar: pressing on the boundary moved it to %d", got)
	}
	if got := s.Press(Terminal, true).Move(0, g.TerminalY, vp).TerminalHeight; got != s.TerminalHeight {
		t.Errorf("terminal: pressing on the boundary moved it to %d", got)
	}
	if got := s.Press(Preview, true).Move(g.PreviewX, 0, vp).PreviewWidth; got != s.PreviewWidth {
		t.Errorf("preview: pressing on the boundary moved it to %d", got)
	}
}
