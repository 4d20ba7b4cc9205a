package config

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// The genconfig tool uses [FieldDoc] values to annotate the generated config.default.toml.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "output.format")
// to their [FieldDoc] entries. The genconfig tool uses this map to annotate
// the generated config.default.toml with inline comments and alternatives.
var ConfigDocs = map[string]FieldDoc{
	// ── Root ──────────────────────────────────────────────────────
	"version": {
		Comment: "Config schema version -- do not edit.",
	},

	// ── Output ───────────────────────────────────────────────────
	"output.format": {
		Comment: "How parsed colors are printed.\nchannels = \"r: 26, g: 43, b: 60\", hex = \"#1a2b3c\", css = \"rgb(26, 43, 60)\"",
		Alternatives: []string{
			`format = "hex"`,
			`format = "css"`,
		},
	},
	"output.swatch": {
		Comment: "Print an ANSI color swatch next to each result.\nAutomatically suppressed when stdout is not a terminal.",
	},

	// ── Watch ────────────────────────────────────────────────────
	"watch.debounce_ms": {
		Comment: "Quiet period in milliseconds before a file change triggers a re-parse.\nSet to 0 to react immediately.",
	},
	"watch.poll_interval_seconds": {
		Comment: "Stat interval for watch mode when native file notifications are unavailable.",
	},

	// ── HTTP ─────────────────────────────────────────────────────
	"http.timeout_seconds": {
		Comment: "Per-request timeout when fetching a palette file over HTTP(S).",
	},
	"http.retry_max": {
		Comment: "Retries after a failed request before falling back to the cache.",
	},
	"http.cache": {
		Comment: "Keep an on-disk copy of fetched palettes for offline fallback.",
	},

	// ── Log ──────────────────────────────────────────────────────
	"log.level": {
		Comment: "Minimum log level: debug, info, warn, error.",
	},
	"log.max_size_mb": {
		Comment: "Log file size before rotation.",
	},

	// ── Aliases ──────────────────────────────────────────────────
	"aliases": {
		Comment: "User-defined names resolved before parsing. Values may use any\nsupported expression: hex, rgb(), hsl(), or a built-in name.\nBuilt-in CSS names cannot be shadowed.",
	},
}
