package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Topic names the frontend subscribes to.
const (
	TopicSettings = "events:settings"
)

// SettingsEvent is the payload behind every settings notification toast.
type SettingsEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func newEvent(eventType EventType, message string) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info SettingsEvent.
func NewInfo(message string) SettingsEvent {
	return newEvent(EventInfo, message)
}

// NewWarn creates a warn SettingsEvent.
func NewWarn(message string) SettingsEvent {
	return newEvent(EventWarn, message)
}

// NewSuccess creates a success SettingsEvent.
func NewSuccess(message string) SettingsEvent {
	return newEvent(EventSuccess, message)
}

// NewError creates an error SettingsEvent.
func NewError(message string) SettingsEvent {
	return newEvent(EventError, message)
}
