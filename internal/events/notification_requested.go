package events

import "time"

const (
	NotificationRequestedTopic = "hr.notification.v1"
	NotificationRequestedType  = "notification.requested"
)

type NotificationRequestedEvent struct {
	EventType  string            `json:"event_type"`
	To         string            `json:"to"`
	Template   string            `json:"template"`
	Data       map[string]string `json:"data"`
	OccurredAt time.Time         `json:"occurred_at"`
}
