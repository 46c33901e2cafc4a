package shared

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output
func SetupLogger(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewLogger picks the console or JSON logger by format name.
func NewLogger(w io.Writer, level zerolog.Level, format string, noColor bool) zerolog.Logger {
	if format == "json" {
		return SetupStructuredLogger(w, level)
	}
	return SetupLogger(w, level, noColor)
}
