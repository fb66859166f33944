// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gen2brain/beeep"

	"github.com/zhubert/replywriter/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "replywriter"

// previewWidth caps how much of the reply is shown in the notification body.
const previewWidth = 80

// notifier is swapped out in tests so no real notification is sent.
var notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// ReplyReady announces a finished reply, with the start of its first line
// as a preview.
func ReplyReady(reply string) error {
	return Send(AppName, "Reply ready: "+preview(reply))
}

// GenerationFailed announces a failed request.
func GenerationFailed() error {
	return Send(AppName, "Reply generation failed")
}

func preview(reply string) string {
	line := reply
	for i, r := range reply {
		if r == '\n' {
			line = reply[:i]
			break
		}
	}
	return ansi.Truncate(line, previewWidth, "…")
}
