package tvision

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names.
const (
	BackendTcell = "tcell"
	BackendTerm  = "term"
)

// Config holds the tunables of a Program.
type Config struct {
	// Backend selects the terminal driver: "tcell" or "term".
	Backend string `yaml:"backend"`
	// IdleInterval bounds each input poll; idle work runs when it expires.
	IdleInterval time.Duration `yaml:"idle_interval"`
	// DoubleClick is the longest gap between two clicks of a double click.
	DoubleClick time.Duration `yaml:"double_click"`
	// FlashDuration is how long a screen dump inverts the dumped region.
	FlashDuration time.Duration `yaml:"flash_duration"`
	// DumpDir receives screen dumps.
	DumpDir string `yaml:"dump_dir"`
	// Mouse enables mouse reporting.
	Mouse bool `yaml:"mouse"`
	// LogFile, when set, receives debug logs.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	// AppPalette overrides entries of the application palette, keyed by
	// 1-based index.
	AppPalette map[int]uint8 `yaml:"app_palette"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendTcell,
		IdleInterval:  100 * time.Millisecond,
		DoubleClick:   300 * time.Millisecond,
		FlashDuration: 50 * time.Millisecond,
		DumpDir:       ".",
		Mouse:         true,
		LogLevel:      "info",
	}
}

// LoadConfig reads configuration from path, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, newError("config.Load", KindConfig, fmt.Errorf("read config: %w", err))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, newError("config.Load", KindConfig, fmt.Errorf("parse config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, newError("config.Load", KindConfig, err)
	}
	return cfg, nil
}

// Validate checks value ranges and fills zero durations with defaults.
func (c *Config) Validate() error {
	def := DefaultConfig()
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "":
		c.Backend = def.Backend
	case BackendTcell, BackendTerm:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = def.IdleInterval
	}
	if c.DoubleClick <= 0 {
		c.DoubleClick = def.DoubleClick
	}
	if c.FlashDuration < 0 {
		c.FlashDuration = def.FlashDuration
	}
	if c.DumpDir == "" {
		c.DumpDir = def.DumpDir
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	for i := range c.AppPalette {
		if i < 1 || i > len(AppColor) {
			return fmt.Errorf("app_palette index %d out of range 1-%d", i, len(AppColor))
		}
	}
	return nil
}

// Palette returns the application palette with the configured overrides.
func (c Config) Palette() AppPalette {
	if len(c.AppPalette) == 0 {
		return AppColor
	}
	return AppColor.With(c.AppPalette)
}
