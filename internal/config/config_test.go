// Tests for the config package covering [Load] behavior (defaults,
// overrides, missing files, malformed input), validation
// ([Config.Validate]), alias resolution ([Config.ResolveAlias]), color
// formatting ([Config.FormatColor]), and serialization round-trips
// ([Config.Save]).

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tools.zach/dev/palette/internal/css"
)

// ///////////////////////////////////////////////
// Load
// ///////////////////////////////////////////////

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		config  string // config file content; empty means no file written
		noFile  bool   // if true, skip writing a config file
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:   "defaults from minimal config",
			config: "version = 2\n",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				def := DefaultConfig()
				if cfg.Output.Format != def.Output.Format {
					t.Errorf("Format = %q, want %q", cfg.Output.Format, def.Output.Format)
				}
				if cfg.Watch.PollIntervalSeconds != def.Watch.PollIntervalSeconds {
					t.Errorf("PollIntervalSeconds = %d, want %d",
						cfg.Watch.PollIntervalSeconds, def.Watch.PollIntervalSeconds)
				}
			},
		},
		{
			name: "user overrides applied",
			config: `
version = 2

[output]
format = "hex"
swatch = false

[http]
timeout_seconds = 3
retry_max = 0
cache = true
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Output.Format != "hex" {
					t.Errorf("Format = %q, want hex", cfg.Output.Format)
				}
				if cfg.Output.Swatch {
					t.Error("Swatch = true, want false")
				}
				if cfg.HTTP.TimeoutSeconds != 3 {
					t.Errorf("TimeoutSeconds = %d, want 3", cfg.HTTP.TimeoutSeconds)
				}
			},
		},
		{
			name: "aliases loaded",
			config: `
version = 2

[aliases]
brand = "#1a2b3c"
accent = "hsl(210, 50%, 40%)"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if got := cfg.Aliases["brand"]; got != "#1a2b3c" {
					t.Errorf("Aliases[brand] = %q, want #1a2b3c", got)
				}
				if got := cfg.ResolveAlias("Accent"); got != "hsl(210, 50%, 40%)" {
					t.Errorf("ResolveAlias(Accent) = %q", got)
				}
			},
		},
		{
			name:   "missing file returns defaults",
			noFile: true,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Output.Format != "channels" {
					t.Errorf("Format = %q, want channels", cfg.Output.Format)
				}
			},
		},
		{
			name:    "malformed TOML",
			config:  "version = [not toml",
			wantErr: true,
		},
		{
			name: "invalid output format rejected",
			config: `
version = 2

[output]
format = "rgbagrid"
`,
			wantErr: true,
		},
		{
			name: "alias shadowing builtin rejected",
			config: `
version = 2

[aliases]
red = "#00ff00"
`,
			wantErr: true,
		},
		{
			name: "alias with unparsable expression rejected",
			config: `
version = 2

[aliases]
brand = "#12345"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if !tt.noFile {
				path := filepath.Join(dir, "config.toml")
				if err := os.WriteFile(path, []byte(tt.config), 0o644); err != nil {
					t.Fatalf("write config: %v", err)
				}
			}

			cfg, err := Load(dir)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// ///////////////////////////////////////////////
// Validate
// ///////////////////////////////////////////////

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantIn string // substring expected in the error; empty means valid
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.Output.Format = "yaml" }, "output.format"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"zero poll interval", func(c *Config) { c.Watch.PollIntervalSeconds = 0 }, "poll_interval_seconds"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "debounce_ms"},
		{"zero timeout", func(c *Config) { c.HTTP.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"negative retries", func(c *Config) { c.HTTP.RetryMax = -1 }, "retry_max"},
		{"empty alias name", func(c *Config) { c.Aliases = map[string]string{"": "#fff"} }, "empty name"},
		{"alias shadows grey", func(c *Config) { c.Aliases = map[string]string{"Grey": "#fff"} }, "shadows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantIn == "" {
				if err != nil {
					t.Errorf("Validate: %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Validate error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

// ///////////////////////////////////////////////
// Alias Resolution
// ///////////////////////////////////////////////

func TestResolveAlias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Aliases = map[string]string{"brand": "#1a2b3c"}

	if got := cfg.ResolveAlias("brand"); got != "#1a2b3c" {
		t.Errorf("ResolveAlias(brand) = %q", got)
	}
	if got := cfg.ResolveAlias("  BRAND  "); got != "#1a2b3c" {
		t.Errorf("ResolveAlias with case and whitespace = %q", got)
	}
	// Unknown names pass through untouched so the parser reports them.
	if got := cfg.ResolveAlias("#abcdef"); got != "#abcdef" {
		t.Errorf("ResolveAlias(#abcdef) = %q, want passthrough", got)
	}
}

// ///////////////////////////////////////////////
// Formatting
// ///////////////////////////////////////////////

func TestFormatColor(t *testing.T) {
	col := css.Color{R: 26, G: 43, B: 60}
	tests := []struct {
		format string
		want   string
	}{
		{"channels", "r: 26, g: 43, b: 60"},
		{"hex", "#1a2b3c"},
		{"css", "rgb(26, 43, 60)"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Output.Format = tt.format
		if got := cfg.FormatColor(col); got != tt.want {
			t.Errorf("FormatColor(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

// ///////////////////////////////////////////////
// Save
// ///////////////////////////////////////////////

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Output.Format = "hex"
	cfg.Aliases = map[string]string{"brand": "#1a2b3c"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.Format != "hex" {
		t.Errorf("Format = %q, want hex", loaded.Output.Format)
	}
	if loaded.Aliases["brand"] != "#1a2b3c" {
		t.Errorf("Aliases[brand] = %q", loaded.Aliases["brand"])
	}
}

// ///////////////////////////////////////////////
// ConfigDocs
// ///////////////////////////////////////////////

// TestConfigDocsPathsResolve checks that every documented field path refers
// to a real section or key, catching stale entries when fields are renamed.
func TestConfigDocsPathsResolve(t *testing.T) {
	known := map[string]bool{
		"version":                     true,
		"output.format":               true,
		"output.swatch":               true,
		"watch.poll_interval_seconds": true,
		"watch.debounce_ms":           true,
		"http.timeout_seconds":        true,
		"http.retry_max":              true,
		"http.cache":                  true,
		"log.level":                   true,
		"log.max_size_mb":             true,
		"aliases":                     true,
	}
	for path := range ConfigDocs {
		if !known[path] {
			t.Errorf("ConfigDocs contains unknown path %q", path)
		}
	}
}
