// Package errlog writes the side error log of a booktracker run.
//
// Each entry is one line appended to a fixed file:
//
//	[2006-01-02 15:04:05] ERROR: <context> - <description>
//
// Logging is best effort. A failure to write the log is reported to the
// diagnostic logger and otherwise ignored; it never fails the caller.
package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/booktracker/pkg/catalogs"
	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
	"github.com/agentstation/booktracker/pkg/logging"
)

// Logger appends error entries to the side log and counts them in the run statistics.
type Logger struct {
	path   string
	stats  *catalogs.Stats
	logger *zerolog.Logger
	now    func() time.Time
}

// Option is a functional option for configuring the Logger.
type Option func(*Logger)

// WithLogger sets the diagnostic logger that mirrors every entry.
func WithLogger(logger *zerolog.Logger) Option {
	return func(l *Logger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock sets the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger writing to path. Every entry increments stats.ErrorCount.
func New(path string, stats *catalogs.Stats, opts ...Option) *Logger {
	if path == "" {
		path = constants.DefaultErrorLog
	}
	l := &Logger{
		path:   path,
		stats:  stats,
		logger: logging.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the side log file path.
func (l *Logger) Path() string {
	return l.path
}

// LogError records err against context. It never fails.
func (l *Logger) LogError(context string, err error) {
	if l.stats != nil {
		l.stats.ErrorCount++
	}

	l.logger.Warn().
		Str("context", context).
		Err(err).
		Msg("Error logged")

	if werr := l.append(FormatEntry(l.now(), context, err)); werr != nil {
		l.logger.Debug().Err(werr).Str("path", l.path).Msg("Failed to write error log")
	}
}

// FormatEntry renders one error log line, including the trailing newline.
func FormatEntry(at time.Time, context string, err error) string {
	return fmt.Sprintf("[%s] ERROR: %s - %s%s",
		at.Format(constants.TimeFormatErrorLog),
		context,
		errors.Describe(err),
		constants.LineTerminator,
	)
}

func (l *Logger) append(entry string) (err error) {
	if err := os.MkdirAll(filepath.Dir(l.path), constants.DirPermissions); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.WriteString(entry)
	return err
}
