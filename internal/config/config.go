package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// Config holds the tunables of the alarm clock.
type Config struct {
	// TickInterval is the period between two time checks.
	TickInterval time.Duration `yaml:"tick_interval"`
	// LogLevel is the minimum level of diagnostic logs written to stderr.
	LogLevel string `yaml:"log_level"`
	// ConsoleBanner enables the RING! banner on standard output.
	ConsoleBanner bool `yaml:"console_banner"`
	// DesktopNotification enables a desktop alert when the alarm fires.
	DesktopNotification bool `yaml:"desktop_notification"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultTickInterval matches a one-second poll.
	DefaultTickInterval = time.Second

	// MaxTickInterval is the longest period that can still land on every second.
	MaxTickInterval = time.Second

	// DefaultLogLevel is used when the settings do not name one.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for settings files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errTickIntervalTooLong is returned when ticks would skip whole seconds.
	errTickIntervalTooLong = fmt.Errorf("tick interval must not exceed %s", MaxTickInterval)
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		TickInterval:  DefaultTickInterval,
		LogLevel:      DefaultLogLevel,
		ConsoleBanner: true,
	}
}

// Load reads settings from path and validates them.
// Fields absent from the file keep their Default values.
// A missing file is reported with an error wrapping os.ErrNotExist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes settings to path.
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

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.TickInterval > MaxTickInterval {
		return fmt.Errorf("invalid tick interval %s: %w", cfg.TickInterval, errTickIntervalTooLong)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, errUnknownLogLevel)
	}

	return nil
}
