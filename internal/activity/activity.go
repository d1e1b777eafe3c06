// Package activity records how time is spent in the IDE and aggregates the log
// into the numbers shown on the stats dashboard.
package activity

import (
	"sync"
	"time"

	"github.com/zhubert/dotide/internal/logger"
)

// Kind is the category of an activity entry.
type Kind string

const (
	KindEditing   Kind = "editing"
	KindBuilding  Kind = "building"
	KindRunning   Kind = "running"
	KindDebugging Kind = "debugging"
	KindIdle      Kind = "idle"
)

// Kinds lists the non-idle kinds in display order.
var Kinds = []Kind{KindEditing, KindBuilding, KindRunning, KindDebugging}

// Entry is one recorded slice of activity. Entries are append-only.
type Entry struct {
	Timestamp       time.Time `json:"timestamp"`
	Kind            Kind      `json:"type"`
	DurationSeconds int       `json:"duration"`
	ProjectName     string    `json:"projectName"`
}

// Policy holds the sampling heuristics.
type Policy struct {
	TickPeriod      time.Duration
	IdleThreshold   time.Duration
	EditingSeconds  int
	BuildingSeconds int
	RunningSeconds  int
}

// DefaultPolicy samples every 5s and treats two minutes without input as idle.
func DefaultPolicy() Policy {
	return Policy{
		TickPeriod:      5 * time.Second,
		IdleThreshold:   120 * time.Second,
		EditingSeconds:  5,
		BuildingSeconds: 2,
		RunningSeconds:  5,
	}
}

// Sink persists the full log after every append.
type Sink interface {
	ActivityLogs() []Entry
	SaveActivityLogs([]Entry) error
	ClearActivityLogs() error
}

// Recorder owns the in-memory activity log.
type Recorder struct {
	mu     sync.Mutex
	policy Policy
	sink   Sink
	logs   []Entry
	now    func() time.Time
}

// NewRecorder creates a recorder seeded from the sink's persisted log.
// A nil sink keeps the log in memory only.
func NewRecorder(policy Policy, sink Sink) *Recorder {
	r := &Recorder{policy: policy, sink: sink, now: time.Now}
	if sink != nil {
		r.logs = sink.ActivityLogs()
	}
	return r
}

// SetClock replaces the time source used for entry timestamps.
func (r *Recorder) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Policy returns the recorder's sampling policy.
func (r *Recorder) Policy() Policy {
	return r.policy
}

// Log appends an entry and persists the log. Persistence failures are logged, never returned.
func (r *Recorder) Log(kind Kind, seconds int, project string) {
	r.mu.Lock()
	r.logs = append(r.logs, Entry{
		Timestamp:       r.now(),
		Kind:            kind,
		DurationSeconds: seconds,
		ProjectName:     project,
	})
	snapshot := make([]Entry, len(r.logs))
	copy(snapshot, r.logs)
	r.mu.Unlock()

	r.persist(snapshot)
}

func (r *Recorder) persist(logs []Entry) {
	if r.sink == nil {
		return
	}
	if err := r.sink.SaveActivityLogs(logs); err != nil {
		logger.WithComponent("activity").Warn("failed to persist activity log", "error", err, "entries", len(logs))
	}
}

// Tick samples activity at now. An editing entry is recorded only if the last
// input happened within the idle threshold. Reports whether an entry was added.
func (r *Recorder) Tick(now, lastInput time.Time, project string) bool {
	if now.Sub(lastInput) >= r.policy.IdleThreshold {
		return false
	}
	r.Log(KindEditing, r.policy.EditingSeconds, project)
	return true
}

// RecordBuildStarted logs the fixed building credit.
func (r *Recorder) RecordBuildStarted(project string) {
	r.Log(KindBuilding, r.policy.BuildingSeconds, project)
}

// RecordRunSucceeded logs the fixed running credit.
func (r *Recorder) RecordRunSucceeded(project string) {
	r.Log(KindRunning, r.policy.RunningSeconds, project)
}

// Entries returns a copy of the log.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.logs))
	copy(out, r.logs)
	return out
}

// Reset clears the log and removes the persisted copy.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	r.logs = nil
	r.mu.Unlock()

	if r.sink == nil {
		return nil
	}
	return r.sink.ClearActivityLogs()
}
