package ui

import (
	"regexp"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}

	if header.projectName != "" {
		t.Error("Expected empty project name initially")
	}

	if header.building {
		t.Error("Expected header not to be building initially")
	}
}

func TestHeader_SetWidth(t *testing.T) {
	header := NewHeader()

	header.SetWidth(120)

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
}

func TestHeader_View_NoProject(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "dotide") {
		t.Error("Expected title in header")
	}
	if strings.Contains(view, "Run") {
		t.Error("Run button should be hidden without a project")
	}
}

func TestHeader_View_WithProject(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetProject("MyConsoleApp")

	view := stripANSI(header.View())

	for _, want := range []string{"MyConsoleApp", "Debug", "▶ Run"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected header to contain %q, got %q", want, view)
		}
	}
}

func TestHeader_View_Building(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetProject("MyConsoleApp")
	header.SetBuilding(true)

	view := stripANSI(header.View())

	if !strings.Contains(view, "Compiling") {
		t.Errorf("Expected compiling state, got %q", view)
	}
	if strings.Contains(view, "▶ Run") {
		t.Error("Run button should be replaced while building")
	}
}

func TestHeader_View_Appearance(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetAppearance("Dracula", "Medium")
	header.SetCompiler("offline")

	view := stripANSI(header.View())

	if !strings.Contains(view, "Dracula · Medium") {
		t.Errorf("Expected appearance summary, got %q", view)
	}
	if !strings.Contains(view, "offline") {
		t.Errorf("Expected compiler name, got %q", view)
	}
}

func TestHeader_View_FillsWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(90)
	header.SetProject("MyWebApiApp")

	if w := lipgloss.Width(header.View()); w != 90 {
		t.Errorf("Expected header width 90, got %d", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#007acc", 0x00, 0x7a, 0xcc},
		{"#FFFFFF", 255, 255, 255},
		{"bad", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHeader_ClickRunButton(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetProject("MyConsoleApp")
	header.SetCompiler("offline")

	view := stripANSI(header.View())
	idx := strings.Index(view, "▶ Run")
	if idx < 0 {
		t.Fatalf("run button missing from %q", view)
	}
	col := lipgloss.Width(view[:idx])

	cmd := header.Click(col)
	if cmd == nil {
		t.Fatal("expected a command from clicking the run button")
	}
	if _, ok := cmd().(RunRequestedMsg); !ok {
		t.Errorf("expected RunRequestedMsg, got %T", cmd())
	}

	if header.Click(0) != nil {
		t.Error("clicking the title should not request a run")
	}

	header.SetBuilding(true)
	if header.Click(col) != nil {
		t.Error("run button is disabled while compiling")
	}

	header.SetBuilding(false)
	header.SetProject("")
	if header.Click(col) != nil {
		t.Error("no run button without a project")
	}
}
