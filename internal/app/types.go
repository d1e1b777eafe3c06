package app

import (
	"time"

	"github.com/zhubert/dotide/internal/build"
)

// BuildFinishedMsg carries a build result back to the event loop. It is
// applied only if the project and screen generation still match.
type BuildFinishedMsg struct {
	Seq        int
	ProjectID  string
	Generation int
	Result     build.Result
}

// activityTickMsg samples activity. Ticks from an older generation are dropped.
type activityTickMsg struct {
	gen int
	at  time.Time
}

// NotificationErrorMsg reports a failed desktop notification
type NotificationErrorMsg struct {
	Error error
}

// Footer status words
const (
	StatusReady    = "READY"
	StatusBuilding = "BUILDING"
)
