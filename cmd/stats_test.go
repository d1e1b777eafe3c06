package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/prefs"
)

func TestPrintStats_Empty(t *testing.T) {
	var out bytes.Buffer
	p := prefs.New(prefs.NewMemoryStore())

	if err := printStats(&out, config.Default(), p, false, 80); err != nil {
		t.Fatalf("printStats() error = %v", err)
	}
	if got := out.String(); got != "No activity recorded yet.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrintStats_Dashboard(t *testing.T) {
	p := prefs.New(prefs.NewMemoryStore())
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	logs := []activity.Entry{
		{Timestamp: at, Kind: activity.KindEditing, DurationSeconds: 5, ProjectName: "HelloWorld"},
		{Timestamp: at, Kind: activity.KindBuilding, DurationSeconds: 2, ProjectName: "HelloWorld"},
	}
	if err := p.SaveActivityLogs(logs); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printStats(&out, config.Default(), p, false, 80); err != nil {
		t.Fatalf("printStats() error = %v", err)
	}
	if !strings.Contains(out.String(), "HelloWorld") {
		t.Errorf("dashboard should name the project, got:\n%s", out.String())
	}
}

func TestPrintStats_Reset(t *testing.T) {
	p := prefs.New(prefs.NewMemoryStore())
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	if err := p.SaveActivityLogs([]activity.Entry{
		{Timestamp: at, Kind: activity.KindEditing, DurationSeconds: 5, ProjectName: "A"},
	}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printStats(&out, config.Default(), p, true, 80); err != nil {
		t.Fatalf("printStats(reset) error = %v", err)
	}
	if got := out.String(); got != "Removed 1 activity entry.\n" {
		t.Errorf("output = %q", got)
	}
	if n := len(p.ActivityLogs()); n != 0 {
		t.Errorf("ActivityLogs() has %d entries after reset, want 0", n)
	}
}
