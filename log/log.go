// Package log is a small leveled-logging façade in the same shape as the
// teacher's own (unretrieved) github.com/saferwall/pe/log package: a
// Logger interface callers may implement themselves, a Helper with
// printf-style level methods, a level filter, and a stdlib-backed default
// implementation.
package log

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level is a log severity.
type Level int8

// Severity levels, ordered least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is implemented by anything that can record a leveled, keyvalue
// log line. Callers of this module may supply their own implementation via
// Options.Logger to route decoder diagnostics into an existing logging
// pipeline.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes log lines to an io.Writer via the standard library
// logger.
type stdLogger struct {
	mu  sync.Mutex
	std *log.Logger
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{std: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprint(keyvals...)
	l.std.Printf("[%s] %s", level, msg)
	return nil
}

// filter wraps a Logger and drops any line below its minimum level.
type filter struct {
	next Logger
	min  Level
}

// FilterOption configures a level filter constructed by NewFilter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a filtered logger will pass through.
func FilterLevel(l Level) FilterOption {
	return func(f *filter) { f.min = l }
}

// NewFilter returns a Logger that forwards to next only the lines at or
// above the configured minimum level (LevelInfo by default).
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, min: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.min {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

// Debugf logs a formatted message at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) {
	h.logger.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) {
	h.logger.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) {
	h.logger.Log(LevelWarn, fmt.Sprintf(format, args...))
}

// Warn logs args at LevelWarn.
func (h *Helper) Warn(args ...interface{}) {
	h.logger.Log(LevelWarn, args...)
}

// Errorf logs a formatted message at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) {
	h.logger.Log(LevelError, fmt.Sprintf(format, args...))
}
