package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the headless configuration.
// It reflects the Config struct from types.go but excludes the 'Extensions'
// field, which stays schemaless so host integrations can add their own
// sections.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extension sections are validated by their own published schemas.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	// A shadow struct without the Extensions field keeps the inline map out
	// of the reflected schema.
	type BaseConfig struct {
		Name     string          `yaml:"name,omitempty" jsonschema:"description=Name of the project"`
		Version  string          `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Defaults *DefaultsConfig `yaml:"defaults,omitempty" jsonschema:"description=Per-primitive behavior defaults"`
		Keymap   *KeymapConfig   `yaml:"keymap,omitempty" jsonschema:"description=Terminal key binding configuration"`
		Bridge   *BridgeConfig   `yaml:"bridge,omitempty" jsonschema:"description=Websocket bridge configuration"`
		TUI      *TUIConfig      `yaml:"tui,omitempty" jsonschema:"description=Terminal host appearance settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Headless Configuration"
	schema.Description = "Schema for headless.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
