package model

import "time"

const (
	DefaultStudyDuration = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
	DefaultTickInterval  = time.Second
)

// Features toggles the optional session controls of a layout variant.
type Features struct {
	// BreakButton exposes the "Break timer" control.
	BreakButton bool
	// NewSessionReveal keeps the "New study session" control hidden until a countdown finishes.
	NewSessionReveal bool
}

// SessionConfig contains runtime settings for the session controller.
type SessionConfig struct {
	Study        time.Duration
	Break        time.Duration
	TickInterval time.Duration
	Features     Features
}

// Normalized returns a copy with non-positive durations replaced by defaults.
func (config SessionConfig) Normalized() SessionConfig {
	if config.Study < time.Second {
		config.Study = DefaultStudyDuration
	}
	if config.Break < time.Second {
		config.Break = DefaultBreakDuration
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	return config
}
