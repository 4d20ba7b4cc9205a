package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"tools.zach/dev/palette/internal/migrate"
)

// ///////////////////////////////////////////////
// Migration Registry
// ///////////////////////////////////////////////

// configRegistry holds the schema migrations for config.toml. Version 1
// files carried format and swatch as top-level keys; version 2 moved them
// under the [output] table.
var configRegistry = &migrate.Registry{CurrentVersion: CurrentVersion}

func init() {
	configRegistry.Register(migrate.Migration{
		Version:     2,
		Description: "move format and swatch under [output]",
		Upgrade:     upgradeOutputSection,
	})
}

// upgradeOutputSection rewrites a v1 config: the top-level "format" and
// "swatch" keys move into the [output] table. Keys already under [output]
// are left alone so a partially migrated file is not clobbered.
func upgradeOutputSection(data []byte) ([]byte, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	output, _ := raw["output"].(map[string]any)
	if output == nil {
		output = map[string]any{}
	}
	for _, key := range []string{"format", "swatch"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if _, exists := output[key]; !exists {
			output[key] = v
		}
		delete(raw, key)
	}
	raw["output"] = output
	raw["version"] = 2

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return nil, fmt.Errorf("encode migrated config: %w", err)
	}
	return buf.Bytes(), nil
}
