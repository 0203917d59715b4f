// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config defines logging behavior.
type Config struct {
	Level  string
	Format string
}

// ParseLevel maps a configured level name to a zerolog level. Unknown names
// select info.
func ParseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New configures a logger writing to out, or stderr when out is nil.
func New(config Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(config.Level)

	if strings.EqualFold(config.Format, "json") {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).Level(level).With().Timestamp().Logger()
}
