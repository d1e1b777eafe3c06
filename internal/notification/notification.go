// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/dotide/internal/logger"
)

// AppName is the title of every notification.
const AppName = "dotide"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// send raises a desktop notification with the given title and message.
func send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// BuildFinished announces the end of a build of project.
func BuildFinished(project string, success bool) error {
	if success {
		return send(AppName, project+": build succeeded")
	}
	return send(AppName, project+": build failed")
}
