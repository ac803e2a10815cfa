package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// coreWithLevel wraps a zapcore.Core with its own level threshold.
type coreWithLevel struct {
	zapcore.Core

	// level decides which entries reach the wrapped core.
	level zapcore.LevelEnabler
}

// Enabled returns true if the provided log level is enabled for logging by the core.
func (c *coreWithLevel) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l)
}

// Check adds the core to a checked entry if the log entry level is enabled for logging.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *coreWithLevel) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// With returns a new core with added fields to the wrapped core.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *coreWithLevel) With(fields []zapcore.Field) zapcore.Core {
	return &coreWithLevel{
		c.Core.With(fields),
		c.level,
	}
}

// WithLevel is an option that puts a logger-wide threshold in front of all sinks.
// Passing a zap.AtomicLevel keeps the threshold adjustable after construction.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.LevelEnabler) zap.Option {
	return zap.WrapCore(
		func(core zapcore.Core) zapcore.Core {
			return &coreWithLevel{core, lvl}
		})
}

// coreWithFlush syncs the wrapped core after every entry at or above level.
type coreWithFlush struct {
	zapcore.Core

	// level is the lowest severity that triggers a flush.
	level zapcore.Level
}

// Check routes enabled entries through this core so Write can flush.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *coreWithFlush) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// Write writes the entry and flushes every sink when its level demands it.
//
//nolint:gocritic // zapcore.Core requires ent to be passed by value.
func (c *coreWithFlush) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if err := c.Core.Write(ent, fields); err != nil {
		return err
	}

	if ent.Level < c.level {
		return nil
	}

	return c.Core.Sync()
}

// With returns a new core with added fields to the wrapped core.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *coreWithFlush) With(fields []zapcore.Field) zapcore.Core {
	return &coreWithFlush{
		c.Core.With(fields),
		c.level,
	}
}

// WithFlushOn is an option that flushes all sinks right after any entry at lvl or above.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithFlushOn(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(
		func(core zapcore.Core) zapcore.Core {
			return &coreWithFlush{core, lvl}
		})
}
