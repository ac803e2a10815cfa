package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/examples/internal/config"
	"github.com/oshokin/examples/internal/logger"
)

// LogOptions carries the logging inputs shared by the demo commands.
type LogOptions struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Level overrides the configured and default log level when set.
	Level string
	// Dir overrides the configured log directory when set.
	Dir string
	// Stdout receives program output and console log lines. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives logger construction failures. Defaults to os.Stderr.
	Stderr io.Writer
}

// errInvalidLevel is returned when the level override cannot be parsed.
var errInvalidLevel = errors.New("invalid log level")

// OpenRegistry loads settings, applies overrides and returns a logger registry
// together with the level the program should log at. Level precedence is
// opts.Level, then settings, then def.
func OpenRegistry(opts *LogOptions, def logger.Level) (*logger.Registry, logger.Level, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, def, fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.Logging.LevelOr(def)

	if opts.Level != "" {
		var ok bool
		if level, ok = logger.ParseLevel(opts.Level); !ok {
			return nil, def, fmt.Errorf("%w: %q", errInvalidLevel, opts.Level)
		}
	}

	if opts.Dir != "" {
		cfg.Logging.Dir = opts.Dir
	}

	registryOptions := append(cfg.Logging.RegistryOptions(),
		logger.WithConsole(opts.Stdout),
		logger.WithErrorOutput(opts.Stderr),
	)

	return logger.NewRegistry(registryOptions...), level, nil
}
