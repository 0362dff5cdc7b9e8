package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// DesktopTitle is the title of the desktop alert.
const DesktopTitle = "Alarm!"

// AlertFunc shows a desktop alert.
type AlertFunc func(title, message string) error

// Desktop raises a desktop alert with sound when the alarm fires.
type Desktop struct {
	alert AlertFunc
}

// NewDesktop creates a sink backed by the system notification service.
func NewDesktop() *Desktop {
	return NewDesktopWithAlert(func(title, message string) error {
		return beeep.Alert(title, message, "")
	})
}

// NewDesktopWithAlert creates a sink calling alert instead of the system service.
func NewDesktopWithAlert(alert AlertFunc) *Desktop {
	return &Desktop{
		alert: alert,
	}
}

// Notify shows the alert for event. Failures are logged and never
// propagated; a headless machine simply gets no popup.
func (d *Desktop) Notify(ctx context.Context, event scheduler.Event) {
	if err := d.alert(DesktopTitle, DesktopMessage(event)); err != nil {
		logger.WarnKV(ctx, "Desktop notification failed", "error", err)
	}
}

// DesktopMessage returns the body of the desktop alert.
func DesktopMessage(event scheduler.Event) string {
	return fmt.Sprintf("Ring! Ring! Ring!\nAlarm time %s reached!", event.Target)
}
