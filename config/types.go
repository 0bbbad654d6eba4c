package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator/

// MenuDefaults carries menu behavior defaults applied when a host does not
// set the corresponding option.
type MenuDefaults struct {
	TypeaheadWindowMS int   `yaml:"typeahead_window_ms,omitempty" toml:"typeahead_window_ms,omitempty" jsonschema:"description=Milliseconds between keystrokes that extend a type-ahead query (default: 500)"`
	CloseOnSelect     *bool `yaml:"close_on_select,omitempty" toml:"close_on_select,omitempty" jsonschema:"description=Whether selecting a leaf item closes the menu (default: true)"`
}

// SliderDefaults carries slider behavior defaults.
type SliderDefaults struct {
	PageFraction float64 `yaml:"page_fraction,omitempty" toml:"page_fraction,omitempty" jsonschema:"description=Fraction of the value span moved by PageUp/PageDown (default: 0.1)"`
}

// TabsDefaults carries tabs behavior defaults.
type TabsDefaults struct {
	ActivationMode string `yaml:"activation_mode,omitempty" toml:"activation_mode,omitempty" jsonschema:"description=Tab activation mode: automatic or manual (default: automatic)"`
	Orientation    string `yaml:"orientation,omitempty" toml:"orientation,omitempty" jsonschema:"description=Tab list orientation: horizontal or vertical (default: horizontal)"`
}

// AccordionDefaults carries accordion behavior defaults.
type AccordionDefaults struct {
	Multiple    *bool `yaml:"multiple,omitempty" toml:"multiple,omitempty" jsonschema:"description=Whether several items may be expanded at once (default: false)"`
	Collapsible *bool `yaml:"collapsible,omitempty" toml:"collapsible,omitempty" jsonschema:"description=Whether the last expanded item may be collapsed (default: true)"`
}

// DefaultsConfig groups per-primitive behavior defaults.
type DefaultsConfig struct {
	Menu      *MenuDefaults      `yaml:"menu,omitempty" toml:"menu,omitempty" jsonschema:"description=Menu defaults"`
	Slider    *SliderDefaults    `yaml:"slider,omitempty" toml:"slider,omitempty" jsonschema:"description=Slider defaults"`
	Tabs      *TabsDefaults      `yaml:"tabs,omitempty" toml:"tabs,omitempty" jsonschema:"description=Tabs defaults"`
	Accordion *AccordionDefaults `yaml:"accordion,omitempty" toml:"accordion,omitempty" jsonschema:"description=Accordion defaults"`
}

// KeymapConfig selects and adjusts the key bindings terminal hosts translate
// into DOM-style key names.
type KeymapConfig struct {
	// Preset can be "default" or "vim".
	Preset string `yaml:"preset,omitempty" toml:"preset,omitempty" jsonschema:"description=Key binding preset: default or vim"`
	// Overrides maps an action name (e.g. "up", "select") to key combinations.
	Overrides map[string][]string `yaml:"overrides,omitempty" toml:"overrides,omitempty" jsonschema:"description=Per-action key binding overrides"`
}

// BridgeConfig configures the websocket bridge host.
type BridgeConfig struct {
	Addr           string   `yaml:"addr,omitempty" toml:"addr,omitempty" jsonschema:"description=Listen address for the bridge (default: 127.0.0.1:7440)"`
	Path           string   `yaml:"path,omitempty" toml:"path,omitempty" jsonschema:"description=Websocket endpoint path (default: /ws)"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" toml:"allowed_origins,omitempty" jsonschema:"description=Origins allowed to connect; empty allows same-host only"`
	PingIntervalMS int      `yaml:"ping_interval_ms,omitempty" toml:"ping_interval_ms,omitempty" jsonschema:"description=Websocket keepalive ping interval in milliseconds (default: 30000)"`
}

// TUIConfig configures terminal host appearance.
type TUIConfig struct {
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme name for terminal hosts"`
}

// Config represents the headless.yml configuration
type Config struct {
	Name    string `yaml:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Name of the project"`
	Version string `yaml:"version" toml:"version" jsonschema:"description=Configuration version (e.g. 1.0)"`

	Defaults *DefaultsConfig `yaml:"defaults,omitempty" toml:"defaults,omitempty" jsonschema:"description=Per-primitive behavior defaults"`
	Keymap   *KeymapConfig   `yaml:"keymap,omitempty" toml:"keymap,omitempty" jsonschema:"description=Terminal key binding configuration"`
	Bridge   *BridgeConfig   `yaml:"bridge,omitempty" toml:"bridge,omitempty" jsonschema:"description=Websocket bridge configuration"`
	TUI      *TUIConfig      `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=Terminal host appearance settings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Defaults == nil {
		c.Defaults = &DefaultsConfig{}
	}
	if c.Defaults.Menu == nil {
		c.Defaults.Menu = &MenuDefaults{}
	}
	if c.Defaults.Menu.TypeaheadWindowMS == 0 {
		c.Defaults.Menu.TypeaheadWindowMS = 500
	}
	if c.Defaults.Slider == nil {
		c.Defaults.Slider = &SliderDefaults{}
	}
	if c.Defaults.Slider.PageFraction == 0 {
		c.Defaults.Slider.PageFraction = 0.1
	}
	if c.Defaults.Tabs == nil {
		c.Defaults.Tabs = &TabsDefaults{}
	}
	if c.Defaults.Tabs.ActivationMode == "" {
		c.Defaults.Tabs.ActivationMode = "automatic"
	}
	if c.Defaults.Tabs.Orientation == "" {
		c.Defaults.Tabs.Orientation = "horizontal"
	}
	if c.Defaults.Accordion == nil {
		c.Defaults.Accordion = &AccordionDefaults{}
	}
	if c.Keymap == nil {
		c.Keymap = &KeymapConfig{}
	}
	if c.Keymap.Preset == "" {
		c.Keymap.Preset = "default"
	}
	if c.Bridge == nil {
		c.Bridge = &BridgeConfig{}
	}
	if c.Bridge.Addr == "" {
		c.Bridge.Addr = "127.0.0.1:7440"
	}
	if c.Bridge.Path == "" {
		c.Bridge.Path = "/ws"
	}
	if c.Bridge.PingIntervalMS == 0 {
		c.Bridge.PingIntervalMS = 30000
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = "default"
	}
}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.Defaults != nil {
		if m := c.Defaults.Menu; m != nil && m.TypeaheadWindowMS < 0 {
			return fmt.Errorf("defaults.menu.typeahead_window_ms must not be negative, got %d", m.TypeaheadWindowMS)
		}
		if s := c.Defaults.Slider; s != nil && (s.PageFraction < 0 || s.PageFraction > 1) {
			return fmt.Errorf("defaults.slider.page_fraction must be between 0 and 1, got %v", s.PageFraction)
		}
		if tb := c.Defaults.Tabs; tb != nil {
			switch tb.ActivationMode {
			case "", "automatic", "manual":
			default:
				return fmt.Errorf("defaults.tabs.activation_mode must be 'automatic' or 'manual', got %q", tb.ActivationMode)
			}
			switch tb.Orientation {
			case "", "horizontal", "vertical":
			default:
				return fmt.Errorf("defaults.tabs.orientation must be 'horizontal' or 'vertical', got %q", tb.Orientation)
			}
		}
	}
	if k := c.Keymap; k != nil {
		switch k.Preset {
		case "", "default", "vim":
		default:
			return fmt.Errorf("keymap.preset must be 'default' or 'vim', got %q", k.Preset)
		}
	}
	if b := c.Bridge; b != nil && b.PingIntervalMS < 0 {
		return fmt.Errorf("bridge.ping_interval_ms must not be negative, got %d", b.PingIntervalMS)
	}
	return nil
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded headless.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for host integrations to access
// their custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, keyed by yaml tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
