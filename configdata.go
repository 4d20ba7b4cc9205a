// Package palette provides embedded assets for the palette CLI.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML]. The CLI writes this file to the data directory
// on first run to seed defaults.
package palette

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time. The [cmd/palette] binary copies this file to the data
// directory on first run.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
