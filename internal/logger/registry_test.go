package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRegistry returns a registry writing into a temp dir and in-memory console.
func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var console, errOutput bytes.Buffer

	r := NewRegistry(
		WithDirectory(t.TempDir()),
		WithConsole(&console),
		WithErrorOutput(&errOutput),
		WithColor(ColorNever),
	)

	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})

	return r, &console, &errOutput
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(contents)
}

// TestRegistry_CreateAllLevels ensures every level yields a handle carrying the requested name.
func TestRegistry_CreateAllLevels(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRegistry(t)

	for l := DebugLevel; l <= CriticalLevel; l++ {
		name := "Logger-" + l.String()

		h, err := r.Create(l, name)
		require.NoError(t, err)
		require.NotNil(t, h)
		require.Equal(t, name, h.Name())
		require.Equal(t, l, h.Level())

		got, ok := r.Get(name)
		require.True(t, ok)
		require.Same(t, h, got)
	}

	require.Len(t, r.Names(), 5)
	require.Equal(t, "Logger-critical", r.Names()[0])
}

// TestRegistry_FileContainsMessages checks that info and error messages land in the file
// and that the error flushes buffered output without closing the logger.
func TestRegistry_FileContainsMessages(t *testing.T) {
	t.Parallel()

	r, console, _ := newTestRegistry(t)

	h, err := r.Create(InfoLevel, "FileTest")
	require.NoError(t, err)
	require.Equal(t, "FileTest.log", filepath.Base(h.Path()))

	h.Info("Test message for file logging")
	h.Error("Test error message for file logging")

	content := readFile(t, h.Path())
	require.Contains(t, content, "Test message for file logging")
	require.Contains(t, content, "Test error message for file logging")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)

	pattern := regexp.MustCompile(
		`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[FileTest\] \[info\] Logger 'FileTest' initialized successfully$`)
	require.Regexp(t, pattern, lines[0])
	require.True(t, strings.HasSuffix(lines[2], "[FileTest] [error] Test error message for file logging"))

	require.Contains(t, console.String(), "[FileTest] [error] Test error message for file logging")
}

// TestRegistry_LevelThreshold ensures messages below the logger level reach no sink.
func TestRegistry_LevelThreshold(t *testing.T) {
	t.Parallel()

	r, console, _ := newTestRegistry(t)

	h, err := r.Create(WarningLevel, "WarnLogger")
	require.NoError(t, err)

	h.Debug("hidden debug")
	h.Info("hidden info")
	h.Warn("shown warning")
	h.Criticalf("shown critical %d", 1)

	h.SetLevel(DebugLevel)
	require.Equal(t, DebugLevel, h.Level())
	h.Debug("shown debug")

	require.NoError(t, r.Drop("WarnLogger"))

	_, ok := r.Get("WarnLogger")
	require.False(t, ok)

	for _, out := range []string{readFile(t, h.Path()), console.String()} {
		require.NotContains(t, out, "hidden")
		require.NotContains(t, out, "initialized successfully")
		require.Contains(t, out, "[warning] shown warning")
		require.Contains(t, out, "[critical] shown critical 1")
		require.Contains(t, out, "[debug] shown debug")
	}
}

// TestRegistry_TruncatesExistingFile verifies a rerun starts from an empty file.
func TestRegistry_TruncatesExistingFile(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRegistry(t)

	path := filepath.Join(r.dir, "Truncated"+LogFileExtension)
	require.NoError(t, os.WriteFile(path, []byte("stale line from a previous run\n"), 0o600))

	h, err := r.Create(DebugLevel, "Truncated")
	require.NoError(t, err)
	require.NoError(t, r.Drop(h.Name()))

	content := readFile(t, path)
	require.NotContains(t, content, "stale line")
	require.Contains(t, content, "Logger 'Truncated' initialized successfully")
}

// TestRegistry_CreateFailures covers invalid input, duplicates and unopenable files.
func TestRegistry_CreateFailures(t *testing.T) {
	t.Parallel()

	r, _, errOutput := newTestRegistry(t)

	h, err := r.Create(InfoLevel, "")
	require.ErrorIs(t, err, ErrEmptyName)
	require.Nil(t, h)

	_, err = r.Create(InfoLevel, "../escape")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = r.Create(Level(9), "BadLevel")
	require.ErrorIs(t, err, ErrUnknownLevel)

	_, err = r.Create(InfoLevel, "Twice")
	require.NoError(t, err)

	_, err = r.Create(DebugLevel, "Twice")
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	require.Contains(t, errOutput.String(), "Failed to initialize logger: ")
	require.Equal(t, 4, strings.Count(errOutput.String(), "Failed to initialize logger"))

	missing := NewRegistry(
		WithDirectory(filepath.Join(t.TempDir(), "does", "not", "exist")),
		WithConsole(new(bytes.Buffer)),
		WithErrorOutput(errOutput),
	)

	h, err = missing.Create(InfoLevel, "NoDir")
	require.Error(t, err)
	require.Nil(t, h)
	require.Empty(t, missing.Names())
	require.Contains(t, errOutput.String(), "open log file")

	require.ErrorIs(t, r.Drop("never-created"), ErrNotRegistered)
}
