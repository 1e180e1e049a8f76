// Package logging provides structured diagnostic logging for booktracker using zerolog.
// Diagnostics go to stderr and are separate from the side error log that records
// rejected catalog lines.
//
// Example usage:
//
//	log := logging.Default()
//	log.Debug().Str("path", path).Msg("Loading catalog")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Warn().Err(err).Msg("Save failed")
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger = NewLoggerFromConfig(DefaultConfig())

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a new JSON logger with the given writer.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger()
}
