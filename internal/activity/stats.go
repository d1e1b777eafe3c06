package activity

import (
	"fmt"
	"sort"
	"time"
)

// DailyStats is the per-kind total for one UTC calendar day.
type DailyStats struct {
	Date      string // YYYY-MM-DD
	Editing   int
	Building  int
	Running   int
	Debugging int
}

// Get returns the total for kind.
func (d DailyStats) Get(kind Kind) int {
	switch kind {
	case KindEditing:
		return d.Editing
	case KindBuilding:
		return d.Building
	case KindRunning:
		return d.Running
	case KindDebugging:
		return d.Debugging
	}
	return 0
}

// Total is the sum across all kinds for the day.
func (d DailyStats) Total() int {
	return d.Editing + d.Building + d.Running + d.Debugging
}

func (d *DailyStats) add(kind Kind, seconds int) {
	switch kind {
	case KindEditing:
		d.Editing += seconds
	case KindBuilding:
		d.Building += seconds
	case KindRunning:
		d.Running += seconds
	case KindDebugging:
		d.Debugging += seconds
	}
}

// ProjectShare is the total seconds recorded against one project.
type ProjectShare struct {
	Name    string
	Seconds int
}

// DailyStatsFor groups the log by UTC date. A day with only idle entries
// still appears, with zero totals. Sorted by date ascending.
func DailyStatsFor(logs []Entry) []DailyStats {
	days := make(map[string]*DailyStats)
	for _, e := range logs {
		date := e.Timestamp.UTC().Format(time.DateOnly)
		d, ok := days[date]
		if !ok {
			d = &DailyStats{Date: date}
			days[date] = d
		}
		if e.Kind != KindIdle {
			d.add(e.Kind, e.DurationSeconds)
		}
	}

	out := make([]DailyStats, 0, len(days))
	for _, d := range days {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ProjectDistribution sums durations per project across every kind, idle included.
func ProjectDistribution(logs []Entry) []ProjectShare {
	totals := make(map[string]int)
	for _, e := range logs {
		totals[e.ProjectName] += e.DurationSeconds
	}

	out := make([]ProjectShare, 0, len(totals))
	for name, secs := range totals {
		out = append(out, ProjectShare{Name: name, Seconds: secs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TotalTime is the sum of all non-idle durations.
func TotalTime(logs []Entry) int {
	total := 0
	for _, e := range logs {
		if e.Kind != KindIdle {
			total += e.DurationSeconds
		}
	}
	return total
}

// Totals sums durations by kind.
func Totals(logs []Entry) map[Kind]int {
	out := make(map[Kind]int)
	for _, e := range logs {
		out[e.Kind] += e.DurationSeconds
	}
	return out
}

// FormatDuration renders seconds as "1h 2m 3s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
