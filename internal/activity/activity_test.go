package activity

import (
	"errors"
	"testing"
	"time"
)

type fakeSink struct {
	saved   [][]Entry
	initial []Entry
	err     error
	cleared bool
}

func (f *fakeSink) ActivityLogs() []Entry { return f.initial }

func (f *fakeSink) SaveActivityLogs(logs []Entry) error {
	f.saved = append(f.saved, logs)
	return f.err
}

func (f *fakeSink) ClearActivityLogs() error {
	f.cleared = true
	return nil
}

var epoch = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func TestTick_IdleWindow(t *testing.T) {
	tests := []struct {
		name      string
		sinceLast time.Duration
		wantEntry bool
	}{
		{"recent input", 10 * time.Second, true},
		{"just under threshold", 119 * time.Second, true},
		{"at threshold", 120 * time.Second, false},
		{"idle", 130 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder(DefaultPolicy(), nil)
			now := epoch.Add(time.Hour)

			got := r.Tick(now, now.Add(-tt.sinceLast), "MyConsoleApp")
			if got != tt.wantEntry {
				t.Fatalf("Tick() = %v, want %v", got, tt.wantEntry)
			}

			entries := r.Entries()
			if !tt.wantEntry {
				if len(entries) != 0 {
					t.Errorf("expected no entries, got %d", len(entries))
				}
				return
			}
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			e := entries[0]
			if e.Kind != KindEditing || e.DurationSeconds != 5 || e.ProjectName != "MyConsoleApp" {
				t.Errorf("unexpected entry %+v", e)
			}
		})
	}
}

func TestRecorder_BuildAndRunCredits(t *testing.T) {
	r := NewRecorder(DefaultPolicy(), nil)
	r.RecordBuildStarted("MyWebApi")
	r.RecordRunSucceeded("MyWebApi")

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != KindBuilding || entries[0].DurationSeconds != 2 {
		t.Errorf("build entry = %+v", entries[0])
	}
	if entries[1].Kind != KindRunning || entries[1].DurationSeconds != 5 {
		t.Errorf("run entry = %+v", entries[1])
	}
}

func TestRecorder_PersistsEveryAppend(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(DefaultPolicy(), sink)
	r.SetClock(func() time.Time { return epoch })

	r.Log(KindEditing, 5, "A")
	r.Log(KindBuilding, 2, "A")

	if len(sink.saved) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(sink.saved))
	}
	if len(sink.saved[1]) != 2 {
		t.Errorf("second save should contain full log, got %d entries", len(sink.saved[1]))
	}
	if !sink.saved[0][0].Timestamp.Equal(epoch) {
		t.Errorf("timestamp = %v, want %v", sink.saved[0][0].Timestamp, epoch)
	}
}

func TestRecorder_SaveFailureIsNotFatal(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	r := NewRecorder(DefaultPolicy(), sink)

	r.Log(KindEditing, 5, "A")

	if len(r.Entries()) != 1 {
		t.Error("entry should stay in memory when persistence fails")
	}
}

func TestRecorder_SeededFromSink(t *testing.T) {
	sink := &fakeSink{initial: []Entry{{Timestamp: epoch, Kind: KindEditing, DurationSeconds: 5, ProjectName: "A"}}}
	r := NewRecorder(DefaultPolicy(), sink)

	r.Log(KindRunning, 5, "A")
	if got := len(r.Entries()); got != 2 {
		t.Errorf("expected seeded entry plus new one, got %d", got)
	}
}

func TestRecorder_Reset(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(DefaultPolicy(), sink)
	r.Log(KindEditing, 5, "A")

	if err := r.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(r.Entries()) != 0 {
		t.Error("log should be empty after reset")
	}
	if !sink.cleared {
		t.Error("reset should clear the persisted log")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	r := NewRecorder(DefaultPolicy(), nil)
	r.Log(KindEditing, 5, "A")

	entries := r.Entries()
	entries[0].DurationSeconds = 999

	if r.Entries()[0].DurationSeconds != 5 {
		t.Error("mutating the returned slice must not change the log")
	}
}
