// Package config provides configuration loading and defaults for the palette CLI.
//
// Configuration is loaded from a TOML file in the user's data directory.
// The package handles output formatting, user-defined color aliases,
// watch-mode behavior, and remote fetch settings with sensible defaults.
package config

//go:generate go run ../../cmd/genconfig

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/palette/internal/atomicfile"
	"tools.zach/dev/palette/internal/css"
	"tools.zach/dev/palette/internal/paths"
)

// CurrentVersion is the config schema version written to new config files.
const CurrentVersion = 2

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level application configuration.
type Config struct {
	// Version is the config schema version.
	Version int `toml:"version"`
	// Output holds result rendering settings.
	Output OutputConfig `toml:"output"`
	// Watch holds watch-mode behavior settings.
	Watch WatchConfig `toml:"watch"`
	// HTTP holds remote palette fetch settings.
	HTTP HTTPConfig `toml:"http"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
	// Aliases maps user-defined names to color expressions, resolved before
	// parsing (e.g. brand = "#1a2b3c"). Built-in CSS names cannot be shadowed.
	Aliases map[string]string `toml:"aliases,omitempty"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	// Format controls how parsed colors are printed: "channels", "hex", or "css".
	Format string `toml:"format"`
	// Swatch enables an ANSI color swatch next to each result.
	Swatch bool `toml:"swatch"`
}

// WatchConfig holds watch-mode behavior settings.
type WatchConfig struct {
	// PollIntervalSeconds is the stat interval used when fsnotify is unavailable.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	// DebounceMS is the quiet period in milliseconds before a change triggers
	// a re-parse. Zero disables debouncing.
	DebounceMS int `toml:"debounce_ms"`
}

// HTTPConfig holds remote palette fetch settings.
type HTTPConfig struct {
	// TimeoutSeconds is the per-request timeout for remote palette fetches.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// RetryMax is the number of retries after a failed request.
	RetryMax int `toml:"retry_max"`
	// Cache enables the on-disk fallback copy of fetched palettes.
	Cache bool `toml:"cache"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `toml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			Format: "channels",
			Swatch: true,
		},
		Watch: WatchConfig{
			PollIntervalSeconds: 2,
			DebounceMS:          250,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 10,
			RetryMax:       2,
			Cache:          true,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// ExampleConfig returns a Config suitable for generating config.default.toml.
// It extends the defaults with a sample alias so the generated file shows
// the [aliases] table in action.
func ExampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Aliases = map[string]string{
		"brand": "#1a2b3c",
	}
	return cfg
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads and parses the configuration file from dataDir/config.toml.
// If the file doesn't exist, returns DefaultConfig. Files written by older
// releases are migrated to the current schema and rewritten in place.
func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, paths.ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Probe the schema version before full decoding. Files predating the
	// version key are treated as v1. Probe errors are ignored here; the
	// full Unmarshal below reports them with proper context.
	var probe struct {
		Version int `toml:"version"`
	}
	_ = toml.Unmarshal(data, &probe)
	fileVersion := probe.Version
	if fileVersion == 0 {
		fileVersion = 1
	}

	if configRegistry.NeedsMigration(fileVersion) {
		migrated, newVersion, migErr := configRegistry.Run(data, fileVersion)
		if migErr != nil {
			return nil, fmt.Errorf("migrate config: %w", migErr)
		}
		data = migrated
		if writeErr := atomicfile.Write(path, data, 0o644); writeErr != nil {
			slog.Warn("failed to write migrated config", "path", path, "error", writeErr)
		}
		slog.Info("migrated config", "from", fileVersion, "to", newVersion)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk as TOML using atomic file write.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicfile.Write(path, buf.Bytes(), 0o644)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// validLogLevels is the set of accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "channels", "hex", "css":
	default:
		return fmt.Errorf("invalid output.format %q: must be channels, hex, or css", c.Output.Format)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn, or error", c.Log.Level)
	}

	if c.Watch.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds must be > 0, got %d", c.Watch.PollIntervalSeconds)
	}

	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be > 0, got %d", c.HTTP.TimeoutSeconds)
	}

	if c.HTTP.RetryMax < 0 {
		return fmt.Errorf("retry_max must be >= 0, got %d", c.HTTP.RetryMax)
	}

	for name, expr := range c.Aliases {
		if name == "" {
			return fmt.Errorf("alias with empty name")
		}
		if _, builtin := css.LookupName(name); builtin {
			return fmt.Errorf("alias %q shadows a built-in color name", name)
		}
		if _, err := css.Parse(expr); err != nil {
			return fmt.Errorf("alias %q has invalid expression %q: %w", name, expr, err)
		}
	}

	return nil
}

// ///////////////////////////////////////////////
// Alias Resolution
// ///////////////////////////////////////////////

// ResolveAlias returns the expression registered under the given name, or
// the input unchanged when no alias matches. Matching is case-insensitive
// so aliases behave like the built-in named colors.
func (c *Config) ResolveAlias(expr string) string {
	name := strings.ToLower(strings.TrimSpace(expr))
	for alias, replacement := range c.Aliases {
		if strings.ToLower(alias) == name {
			return replacement
		}
	}
	return expr
}

// ///////////////////////////////////////////////
// Formatting Helpers
// ///////////////////////////////////////////////

// FormatColor renders a parsed color according to the configured output
// format: "hex" gives "#1a2b3c", "css" gives "rgb(26, 43, 60)", and the
// default "channels" gives "r: 26, g: 43, b: 60".
func (c *Config) FormatColor(col css.Color) string {
	switch c.Output.Format {
	case "hex":
		return col.Hex()
	case "css":
		return col.String()
	default: // "channels"
		return fmt.Sprintf("r: %d, g: %d, b: %d", col.R, col.G, col.B)
	}
}
