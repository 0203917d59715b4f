package session

import "time"

// Mode selects the countdown length and finish message.
type Mode string

const (
	ModeStudy Mode = "study"
	ModeBreak Mode = "break"
)

// State represents the current controller state.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents a controller update for observers.
type Event struct {
	Type      EventType
	State     State
	Mode      Mode
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}
