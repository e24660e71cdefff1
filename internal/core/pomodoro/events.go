package pomodoro

import (
	"time"

	"studydash/internal/core/model"
)

// EventType defines the type of Cycle event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventAwaitingTasks EventType = "awaiting_tasks"
	EventExpired       EventType = "expired"
)

// Snapshot is a consistent copy of the cycle state for rendering.
type Snapshot struct {
	Mode          model.Mode
	TimeLeft      int
	Active        bool
	AwaitingTasks bool
	Tasks         []string
	Quote         string
	RunID         string
	CompletedWork int
}

// Event represents a Cycle update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
