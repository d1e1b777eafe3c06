package scenarios

import (
	"os"
	"testing"

	"github.com/zhubert/dotide/internal/demo"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	ui.SetTheme(ui.DefaultTheme)
	logger.Reset()
	os.Exit(code)
}

func TestAll(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Description == "" {
			t.Errorf("Scenario %q has no description", s.Name)
		}
		if len(s.Steps) == 0 {
			t.Errorf("Scenario %q has no steps", s.Name)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"overview", true},
		{"webapi", true},
		{"layout", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if found := Get(tt.name) != nil; found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestGet_ReturnsFreshCopy(t *testing.T) {
	a := Get("overview")
	a.Width = 10
	if b := Get("overview"); b.Width != 120 {
		t.Errorf("expected an untouched copy, got width %d", b.Width)
	}
}

func TestScenariosRun(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(s)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(frames) < 2 {
				t.Errorf("expected several frames, got %d", len(frames))
			}
		})
	}
}
