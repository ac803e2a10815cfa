package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogFileExtension is appended to the logger name to form the file sink path.
	LogFileExtension = ".log"

	// DefaultFlushInterval bounds how long buffered file output may lag behind.
	DefaultFlushInterval = time.Second

	// logFilePermissions is the permission set for newly created log files.
	logFilePermissions = 0o644
)

var (
	// ErrEmptyName is returned when a logger is requested without a name.
	ErrEmptyName = errors.New("logger name is empty")
	// ErrInvalidName is returned when the name cannot be used as a file name.
	ErrInvalidName = errors.New("logger name contains a path separator")
	// ErrUnknownLevel is returned for levels outside Debug..Critical.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrAlreadyRegistered is returned when the name is taken in the registry.
	ErrAlreadyRegistered = errors.New("logger with such name already exists")
	// ErrNotRegistered is returned when no logger is registered under the name.
	ErrNotRegistered = errors.New("logger is not registered")
)

// Handle is a named logger writing to the console and to <name>.log.
type Handle struct {
	*zap.SugaredLogger

	// name is the registry key and the [name] token of every line.
	name string
	// path is the file sink location.
	path string
	// level is the logger-wide threshold; sinks stay at Debug.
	level zap.AtomicLevel
	// fileSink buffers writes to file.
	fileSink *zapcore.BufferedWriteSyncer
	// file is the underlying log file.
	file *os.File
}

// Name returns the name the logger was registered under.
func (h *Handle) Name() string {
	return h.name
}

// Path returns the location of the log file.
func (h *Handle) Path() string {
	return h.path
}

// Level returns the current minimum severity.
func (h *Handle) Level() Level {
	return levelFromZap(h.level.Level())
}

// SetLevel changes the minimum severity. It is safe for concurrent use.
func (h *Handle) SetLevel(l Level) {
	h.level.SetLevel(l.zapLevel())
}

// Critical logs at the critical level.
func (h *Handle) Critical(args ...any) {
	h.DPanic(args...)
}

// Criticalf logs a formatted message at the critical level.
func (h *Handle) Criticalf(format string, args ...any) {
	h.DPanicf(format, args...)
}

// Criticalw logs a message and key-value pairs at the critical level.
func (h *Handle) Criticalw(message string, kvs ...any) {
	h.DPanicw(message, kvs...)
}

// close flushes buffered output and releases the file.
func (h *Handle) close() error {
	return multierr.Combine(
		h.Sync(),
		h.fileSink.Stop(),
		h.file.Close(),
	)
}

// consoleWriter never syncs: console writes are unbuffered,
// and fsync on a terminal fails with EINVAL.
type consoleWriter struct {
	io.Writer
}

// Sync is a no-op.
func (consoleWriter) Sync() error {
	return nil
}

func newConsoleSink(w io.Writer) zapcore.WriteSyncer {
	return zapcore.Lock(consoleWriter{w})
}

// Registry owns named loggers for the life of a process.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	// mu protects handles.
	mu sync.RWMutex
	// handles maps logger names to their handles.
	handles map[string]*Handle

	// dir is the directory log files are created in.
	dir string
	// console is the shared console sink.
	console zapcore.WriteSyncer
	// errOutput receives construction failures.
	errOutput io.Writer
	// palette colors level tokens on the console.
	palette palette
	// flushInterval is passed to the buffered file sink.
	flushInterval time.Duration
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDirectory places log files in dir instead of the working directory.
func WithDirectory(dir string) RegistryOption {
	return func(r *Registry) {
		if dir != "" {
			r.dir = dir
		}
	}
}

// WithConsole replaces stdout as the console sink.
func WithConsole(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w != nil {
			r.console = newConsoleSink(w)
		}
	}
}

// WithErrorOutput replaces stderr as the destination of construction failures.
func WithErrorOutput(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w != nil {
			r.errOutput = w
		}
	}
}

// WithColor sets how the console level token is colored.
func WithColor(mode ColorMode) RegistryOption {
	return func(r *Registry) {
		r.palette = newPalette(mode)
	}
}

// WithFlushInterval sets how often buffered file output is flushed in the background.
func WithFlushInterval(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.flushInterval = d
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		handles:       make(map[string]*Handle),
		dir:           ".",
		console:       newConsoleSink(os.Stdout),
		errOutput:     os.Stderr,
		palette:       newPalette(ColorAuto),
		flushInterval: DefaultFlushInterval,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create builds a logger named name with console and file sinks, registers it
// and logs a confirmation message. On failure the error is also reported to
// the registry's error output and the returned handle is nil.
func (r *Registry) Create(level Level, name string) (*Handle, error) {
	h, err := r.create(level, name)
	if err != nil {
		_, _ = fmt.Fprintf(r.errOutput, "Failed to initialize logger: %v\n", err)

		return nil, err
	}

	h.Infof("Logger '%s' initialized successfully", name)

	return h, nil
}

func (r *Registry) create(level Level, name string) (*Handle, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	path := filepath.Join(r.dir, name+LogFileExtension)

	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	//nolint:exhaustruct // Default buffer size and clock are fine.
	fileSink := &zapcore.BufferedWriteSyncer{
		WS:            file,
		FlushInterval: r.flushInterval,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(newPatternEncoder(r.palette), r.console, zapcore.DebugLevel),
		zapcore.NewCore(newPatternEncoder(nil), fileSink, zapcore.DebugLevel),
	)

	atomicLevel := zap.NewAtomicLevelAt(level.zapLevel())
	base := zap.New(core,
		WithFlushOn(zapcore.ErrorLevel),
		WithLevel(atomicLevel),
	).Named(name)

	h := &Handle{
		SugaredLogger: base.Sugar(),
		name:          name,
		path:          path,
		level:         atomicLevel,
		fileSink:      fileSink,
		file:          file,
	}

	r.handles[name] = h

	return h, nil
}

// Get returns the logger registered under name.
func (r *Registry) Get(name string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[name]

	return h, ok
}

// Names returns the registered logger names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Drop flushes and closes the named logger and removes it from the registry.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	h, ok := r.handles[name]
	delete(r.handles, name)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	return h.close()
}

// Close flushes and closes every registered logger and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	handles := r.handles
	r.handles = make(map[string]*Handle)
	r.mu.Unlock()

	var err error
	for _, h := range handles {
		err = multierr.Append(err, h.close())
	}

	return err
}
