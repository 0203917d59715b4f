package preferences

import (
	"time"

	"studytimer/internal/core/model"
	"studytimer/internal/logging"
)

// Settings defines user preferences read from the settings file.
type Settings struct {
	Variant       model.Variant
	StudyDuration time.Duration
	BreakDuration time.Duration

	// Optional overrides of the variant's controls.
	BreakButton      *bool
	NewSessionReveal *bool

	Language  string
	LogLevel  string
	LogFormat string
}

// DefaultSettings returns default settings for the study timer.
func DefaultSettings() Settings {
	return Settings{
		Variant:       model.VariantClassic,
		StudyDuration: model.DefaultStudyDuration,
		BreakDuration: model.DefaultBreakDuration,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Features resolves the variant's controls and any overrides.
func (settings Settings) Features() model.Features {
	features := settings.Variant.Features()
	if settings.BreakButton != nil {
		features.BreakButton = *settings.BreakButton
	}
	if settings.NewSessionReveal != nil {
		features.NewSessionReveal = *settings.NewSessionReveal
	}
	return features
}

// SessionConfig converts settings to a SessionConfig.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		Study:        settings.StudyDuration,
		Break:        settings.BreakDuration,
		TickInterval: model.DefaultTickInterval,
		Features:     settings.Features(),
	}.Normalized()
}

// Logging converts settings to a logging configuration.
func (settings Settings) Logging() logging.Config {
	return logging.Config{Level: settings.LogLevel, Format: settings.LogFormat}
}
