package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/examples/internal/logger"
)

// Config holds settings shared by the example binaries.
type Config struct {
	// Logging configures the logger registry.
	Logging Logging `yaml:"logging" envPrefix:"EXAMPLES_LOG_"`
}

// Logging holds logger registry settings.
type Logging struct {
	// Level is the minimum severity name. Empty keeps each program's own default.
	Level string `yaml:"level,omitempty" env:"LEVEL"`
	// Dir is the directory <name>.log files are created in.
	Dir string `yaml:"dir" env:"DIR"`
	// Color is one of auto, always or never.
	Color string `yaml:"color" env:"COLOR"`
	// FlushInterval bounds how long buffered file output may lag behind.
	FlushInterval time.Duration `yaml:"flush_interval" env:"FLUSH_INTERVAL"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "examples-settings.yaml"

	// DefaultLogDir is the default directory for log files.
	DefaultLogDir = "."

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLevel is returned for unknown level names.
	errInvalidLevel = errors.New("invalid log level")
	// errInvalidColor is returned for unknown color modes.
	errInvalidColor = errors.New("invalid color mode")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Dir:           DefaultLogDir,
			Color:         string(logger.ColorAuto),
			FlushInterval: logger.DefaultFlushInterval,
		},
	}
}

// Load reads settings from path, applies EXAMPLES_LOG_* environment overrides
// and validates the result. An empty path means DefaultConfigFilename, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, env.Options{})
}

func load(path string, opts env.Options) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks level and color names and fills in defaults.
// An empty level is left empty.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	l := &cfg.Logging

	if l.Level != "" {
		if _, ok := logger.ParseLevel(l.Level); !ok {
			return fmt.Errorf("%w: %q", errInvalidLevel, l.Level)
		}
	}

	if _, ok := logger.ParseColorMode(l.Color); !ok {
		return fmt.Errorf("%w: %q", errInvalidColor, l.Color)
	}

	if l.Dir == "" {
		l.Dir = DefaultLogDir
	}

	if l.FlushInterval <= 0 {
		l.FlushInterval = logger.DefaultFlushInterval
	}

	return nil
}

// LevelOr returns the configured level, or def when none is set.
func (l *Logging) LevelOr(def logger.Level) logger.Level {
	if lvl, ok := logger.ParseLevel(l.Level); ok {
		return lvl
	}

	return def
}

// RegistryOptions translates the settings into logger registry options.
func (l *Logging) RegistryOptions() []logger.RegistryOption {
	mode, _ := logger.ParseColorMode(l.Color)

	return []logger.RegistryOption{
		logger.WithDirectory(l.Dir),
		logger.WithColor(mode),
		logger.WithFlushInterval(l.FlushInterval),
	}
}
