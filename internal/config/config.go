package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	// Zone validation must not depend on the host zoneinfo database.
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// Config holds the user-tunable settings shared by the GUI and the headless commands.
type Config struct {
	// LogLevel is the minimum level written to the log stream.
	LogLevel string `yaml:"log_level"`
	// TickInterval is the cadence of every update loop.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Window is the initial size of the main window.
	Window Window `yaml:"window"`
	// Zones lists the world clocks in display order.
	Zones []Zone `yaml:"zones"`
	// ExitLogFile, when set, receives one line per completed timer.
	ExitLogFile string `yaml:"exit_log_file,omitempty"`
}

// Window is the initial window geometry in device-independent pixels.
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Zone binds a display label to an IANA time zone identifier.
type Zone struct {
	Label    string `yaml:"label"`
	Location string `yaml:"location"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultTickInterval is the polling interval of all update loops.
	DefaultTickInterval = time.Second

	// DefaultFilePermissions is the permission used for files written by the application.
	DefaultFilePermissions = 0o600

	defaultWindowWidth  = 600
	defaultWindowHeight = 400
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNoZones is returned when the world-clock list is empty.
	errNoZones = errors.New("at least one zone must be configured")
	// errBadInterval is returned for a non-positive tick interval.
	errBadInterval = errors.New("tick interval must be positive")
	// errBadWindow is returned for a non-positive window size.
	errBadWindow = errors.New("window size must be positive")
	// errNoLocation is returned for a zone without an IANA identifier.
	errNoLocation = errors.New("zone location must be provided")
	// errBadLogLevel is returned for an unknown log level name.
	errBadLogLevel = errors.New("unknown log level")
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		TickInterval: DefaultTickInterval,
		Window: Window{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Zones: []Zone{
			{Label: "London", Location: "Europe/London"},
			{Label: "USA (New York)", Location: "America/New_York"},
		},
	}
}

// Load reads configuration from path and validates it.
// A missing file yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path.
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

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errBadLogLevel, cfg.LogLevel)
	}

	if cfg.TickInterval <= 0 {
		return errBadInterval
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errBadWindow
	}

	if len(cfg.Zones) == 0 {
		return errNoZones
	}

	for i, zone := range cfg.Zones {
		if zone.Location == "" {
			return fmt.Errorf("zone %d (%q): %w", i, zone.Label, errNoLocation)
		}

		if _, err := time.LoadLocation(zone.Location); err != nil {
			return fmt.Errorf("zone %d (%q): load location: %w", i, zone.Label, err)
		}
	}

	return nil
}
