// Package xlog provides the bridge's injectable logger.
//
// The shape is carried over from go-iecp5's clog package: a thin
// wrapper around a LogProvider interface so callers can swap the
// backing implementation (or silence it) without touching call
// sites. The default provider is charmbracelet/log, giving leveled,
// timestamped, colourised output and a runtime-settable level, which
// is what CONF_LOGLEVEL and the rs485/bridge/config/log_level MQTT
// control topic need.
package xlog

import (
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Level mirrors the three levels the original collector exposes over
// MQTT: debug, info, warn.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

// ParseLevel maps the CONF_LOGLEVEL / log_level string vocabulary to
// a Level. Unrecognised strings fall back to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	default:
		return LevelInfo
	}
}

// Logger logs at a component prefix, with the active level checked
// per call so a live level change (from the MQTT control namespace)
// takes effect immediately without rebuilding the logger chain.
type Logger struct {
	backend *charmlog.Logger
	level   *atomic.Int32
}

// New creates a Logger for component (e.g. "kocombus", "lgac", "mqtt")
// writing to stderr, sharing level with every other Logger derived
// from the same root via With.
func New(component string) *Logger {
	backend := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          component,
		Level:           charmlog.DebugLevel,
	})
	lvl := &atomic.Int32{}
	lvl.Store(int32(LevelInfo))
	return &Logger{backend: backend, level: lvl}
}

// With returns a Logger for a different component that shares this
// Logger's level control, so a single SetLevel call affects the whole
// process.
func (l *Logger) With(component string) *Logger {
	backend := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          component,
		Level:           charmlog.DebugLevel,
	})
	return &Logger{backend: backend, level: l.level}
}

// SetLevel changes the live log level for this Logger and everything
// derived from it via With.
func (l *Logger) SetLevel(lvl Level) {
	l.level.Store(int32(lvl))
}

func (l *Logger) enabled(lvl Level) bool {
	return lvl >= Level(l.level.Load())
}

// Debugf logs a partial-debug-only message (PARTIAL_DEBUG in the
// original).
func (l *Logger) Debugf(format string, args ...any) {
	if l.enabled(LevelDebug) {
		l.backend.Debugf(format, args...)
	}
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	if l.enabled(LevelInfo) {
		l.backend.Infof(format, args...)
	}
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	if l.enabled(LevelWarn) {
		l.backend.Warnf(format, args...)
	}
}

// Errorf always logs, regardless of the configured level — errors are
// never suppressed by CONF_LOGLEVEL.
func (l *Logger) Errorf(format string, args ...any) {
	l.backend.Errorf(format, args...)
}
