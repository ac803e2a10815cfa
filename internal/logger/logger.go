package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// global is the console-only logger returned by FromContext when the context carries none.
//
//nolint:gochecknoglobals // Fallback for code paths that run before a Handle exists.
var global *zap.SugaredLogger

func init() { //nolint:gochecknoinits // Fallback logger must exist before any command runs.
	global = New(zap.NewAtomicLevelAt(zapcore.InfoLevel))
}

// New creates a console logger on stdout rendering the same line pattern as
// registry loggers. A nil level defaults to Info.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		newPatternEncoder(newPalette(ColorAuto)),
		newConsoleSink(os.Stdout),
		level,
	)

	return zap.New(core, options...).Sugar()
}

// Debug writes a debug level message using the logger from the context.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

// Debugf writes a formatted debug level message using the logger from the context.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

// DebugKV writes a message and key-value pairs
// at the debug level using the logger from the context.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, kvs...)
}

// Info writes an information level message using the logger from the context.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

// Infof writes a formatted information level message using the logger from the context.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// InfoKV writes a message and key-value pairs
// at the information level using the logger from the context.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, kvs...)
}

// Warn writes a warning level message using the logger from the context.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

// Warnf writes a formatted warning level message using the logger from the context.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

// WarnKV writes a message and key-value pairs
// at the warning level using the logger from the context.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, kvs...)
}

// Error writes an error level message using the logger from the context.
func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Error(args...)
}

// Errorf writes a formatted error level message using the logger from the context.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV writes a message and key-value pairs
// at the error level using the logger from the context.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Errorw(message, kvs...)
}

// Critical writes a critical level message using the logger from the context.
func Critical(ctx context.Context, args ...any) {
	FromContext(ctx).DPanic(args...)
}

// Criticalf writes a formatted critical level message using the logger from the context.
func Criticalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).DPanicf(format, args...)
}

// CriticalKV writes a message and key-value pairs
// at the critical level using the logger from the context.
func CriticalKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).DPanicw(message, kvs...)
}
