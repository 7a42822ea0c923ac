package ws

import (
	"encoding/json"
	"sync/atomic"

	"cv-smart-hire/internal/domain/notification"
)

var defaultHub atomic.Pointer[Hub]

// SetDefaultHub installs the hub used by the package-level notify helpers.
// Until it is called those helpers are no-ops, which keeps the usecases
// usable in tests and in setups without a websocket surface.
func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func DefaultHub() *Hub {
	return defaultHub.Load()
}

type notificationEvent struct {
	Type         string                    `json:"type"`
	Notification notification.Notification `json:"notification"`
}

func NotifyNotificationCreated(n notification.Notification) {
	hub := defaultHub.Load()
	if hub == nil {
		return
	}

	payload, err := json.Marshal(notificationEvent{
		Type:         "notification",
		Notification: n,
	})
	if err != nil {
		return
	}

	hub.Broadcast(payload)
}
