// Package config loads folio settings from <profileDir>/config.yaml (or
// config.toml) with environment overrides, and watches the file for edits.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/miosa/folio/logging"
	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/gallery"
)

// Config holds all folio configuration.
type Config struct {
	API     APIConfig     `yaml:"api" toml:"api"`
	UI      UIConfig      `yaml:"ui" toml:"ui"`
	Gallery GalleryConfig `yaml:"gallery" toml:"gallery"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// APIConfig points at the portfolio API.
type APIConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"`
	Token   string `yaml:"token,omitempty" toml:"token,omitempty"`
	Timeout string `yaml:"timeout" toml:"timeout"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme        string `yaml:"theme" toml:"theme"`
	ReduceMotion bool   `yaml:"reduce_motion" toml:"reduce_motion"`
}

// GalleryConfig configures every collection gallery.
type GalleryConfig struct {
	AutoScroll   bool    `yaml:"autoscroll" toml:"autoscroll"`
	Speed        float64 `yaml:"speed" toml:"speed"` // cells per second
	PauseOnHover bool    `yaml:"pause_on_hover" toml:"pause_on_hover"`
	Loop         bool    `yaml:"loop" toml:"loop"`
	LoopStrategy string  `yaml:"loop_strategy" toml:"loop_strategy"` // recycle, duplicate
	Gap          int     `yaml:"gap" toml:"gap"`
	PaddingX     int     `yaml:"padding_x" toml:"padding_x"`
	CardWidth    int     `yaml:"card_width" toml:"card_width"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Level   string `yaml:"level" toml:"level"`
	File    string `yaml:"file" toml:"file"`
}

const (
	yamlName = "config.yaml"
	tomlName = "config.toml"

	DefaultBaseURL = "http://localhost:8080"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: "15s",
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Gallery: GalleryConfig{
			AutoScroll:   true,
			Speed:        gallery.DefaultSpeed,
			PauseOnHover: true,
			Loop:         true,
			LoopStrategy: string(gallery.StrategyRecycle),
			Gap:          2,
			PaddingX:     1,
			CardWidth:    30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the config file inside profileDir: config.yaml unless only
// config.toml exists.
func Path(profileDir string) string {
	y := filepath.Join(profileDir, yamlName)
	if _, err := os.Stat(y); err == nil {
		return y
	}
	t := filepath.Join(profileDir, tomlName)
	if _, err := os.Stat(t); err == nil {
		return t
	}
	return y
}

// Load reads the config file in profileDir. See LoadFile.
func Load(profileDir string) (*Config, error) {
	cfg, err := LoadFile(Path(profileDir))
	if err != nil {
		return nil, err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(profileDir, "folio.log")
	}
	return cfg, nil
}

// LoadFile reads a YAML or TOML file, chosen by extension. A missing file
// yields the defaults. Environment overrides are applied either way.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", filepath.Base(path), err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Save writes the config to path in the format its extension names.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("FOLIO_URL"); url != "" {
		c.API.BaseURL = url
	}
	if token := os.Getenv("FOLIO_TOKEN"); token != "" {
		c.API.Token = token
	}
	if envSet("REDUCE_MOTION") || envSet("NO_MOTION") {
		c.UI.ReduceMotion = true
	}
}

func envSet(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return v != "" && v != "0" && v != "false"
}

// Validate checks the values a file can get wrong.
func (c *Config) Validate() error {
	var errs []error
	if _, err := time.ParseDuration(c.API.Timeout); c.API.Timeout != "" && err != nil {
		errs = append(errs, fmt.Errorf("api.timeout: %w", err))
	}
	if _, ok := style.Themes[c.UI.Theme]; !ok && c.UI.Theme != "" && c.UI.Theme != "auto" {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q (valid: auto, %s)", c.UI.Theme, strings.Join(style.ThemeNames, ", ")))
	}
	switch gallery.Strategy(c.Gallery.LoopStrategy) {
	case "", gallery.StrategyRecycle, gallery.StrategyDuplicate:
	default:
		errs = append(errs, fmt.Errorf("gallery.loop_strategy: invalid value %q (valid: recycle, duplicate)", c.Gallery.LoopStrategy))
	}
	if c.Gallery.Speed < 0 {
		errs = append(errs, fmt.Errorf("gallery.speed: must not be negative"))
	}
	if c.Gallery.Gap < 0 {
		errs = append(errs, fmt.Errorf("gallery.gap: must not be negative"))
	}
	if c.Gallery.PaddingX < 0 {
		errs = append(errs, fmt.Errorf("gallery.padding_x: must not be negative"))
	}
	if c.Gallery.CardWidth < 0 {
		errs = append(errs, fmt.Errorf("gallery.card_width: must not be negative"))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// GalleryFor builds the gallery configuration for one collection.
func (c *Config) GalleryFor(label string) gallery.Config {
	return gallery.Config{
		AutoScroll:   c.Gallery.AutoScroll,
		Speed:        c.Gallery.Speed,
		PauseOnHover: c.Gallery.PauseOnHover,
		Loop:         c.Gallery.Loop,
		Strategy:     gallery.Strategy(c.Gallery.LoopStrategy),
		Gap:          c.Gallery.Gap,
		PaddingX:     c.Gallery.PaddingX,
		ReduceMotion: c.UI.ReduceMotion,
		AriaLabel:    label,
	}
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Enabled: c.Logging.Enabled,
		Level:   c.Logging.Level,
		File:    c.Logging.File,
	}
}
