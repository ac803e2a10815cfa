package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a logger lets through.
type Level int8

const (
	// DebugLevel logs everything.
	DebugLevel Level = iota
	// InfoLevel is the default level.
	InfoLevel
	// WarningLevel logs warnings and anything more severe.
	WarningLevel
	// ErrorLevel logs errors and critical messages.
	ErrorLevel
	// CriticalLevel logs only critical messages.
	CriticalLevel
)

// String returns the lower-case level name as it appears in log lines.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= CriticalLevel
}

// ParseLevel converts string input to a Level.
// Unknown strings yield InfoLevel and false.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarningLevel, true
	case "err", "error":
		return ErrorLevel, true
	case "critical":
		return CriticalLevel, true
	default:
		return InfoLevel, false
	}
}

// zapLevel maps l onto zap's scale. Critical is DPanic: loggers here are
// never built in development mode, so DPanic only logs.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case CriticalLevel:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// levelFromZap is the inverse of zapLevel; Panic and Fatal fold into Critical.
func levelFromZap(l zapcore.Level) Level {
	switch {
	case l <= zapcore.DebugLevel:
		return DebugLevel
	case l == zapcore.InfoLevel:
		return InfoLevel
	case l == zapcore.WarnLevel:
		return WarningLevel
	case l == zapcore.ErrorLevel:
		return ErrorLevel
	default:
		return CriticalLevel
	}
}
