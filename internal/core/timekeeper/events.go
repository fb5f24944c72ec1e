package timekeeper

import (
	"time"

	"focustimer/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventRunChange       EventType = "run_change"
	EventProgress        EventType = "progress"
	EventSessionComplete EventType = "session_complete"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Session  model.SessionState
	Label    string
	Progress float64
	Message  string
	At       time.Time
}
