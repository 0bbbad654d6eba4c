package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestExtensions verifies that custom extensions in headless.yml are
// properly loaded
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"

# Extension section consumed by the logging setup
logging:
  level: debug
  report_caller: true

# Extension fields from a hypothetical host integration
inspector:
  enabled: true
  port: 9229
`)

	cfg, err := LoadFromBytes(yamlContent)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Extensions == nil {
		t.Fatal("Extensions map should not be nil")
	}

	if _, ok := cfg.Extensions["logging"]; !ok {
		t.Fatal("Expected 'logging' extension to be present")
	}

	type LoggingConfig struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}

	var logCfg LoggingConfig
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		t.Fatalf("Failed to unmarshal logging extension: %v", err)
	}

	if logCfg.Level != "debug" {
		t.Errorf("Expected level to be 'debug', got '%s'", logCfg.Level)
	}
	if !logCfg.ReportCaller {
		t.Error("Expected report_caller to be true")
	}

	type InspectorConfig struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	}

	var insp InspectorConfig
	if err := cfg.UnmarshalExtension("inspector", &insp); err != nil {
		t.Fatalf("Failed to unmarshal inspector extension: %v", err)
	}
	if !insp.Enabled || insp.Port != 9229 {
		t.Errorf("Unexpected inspector config: %+v", insp)
	}

	// Non-existent extension should not error and leave the target zero
	var unknown InspectorConfig
	if err := cfg.UnmarshalExtension("unknown", &unknown); err != nil {
		t.Fatalf("UnmarshalExtension should not error for non-existent keys: %v", err)
	}
	if unknown.Enabled || unknown.Port != 0 {
		t.Error("Expected zero value for non-existent extension")
	}
}

func TestDefaultsApplied(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("version: \"1.0\"\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Defaults.Menu.TypeaheadWindowMS != 500 {
		t.Errorf("Expected typeahead window default 500, got %d", cfg.Defaults.Menu.TypeaheadWindowMS)
	}
	if cfg.Defaults.Slider.PageFraction != 0.1 {
		t.Errorf("Expected slider page fraction default 0.1, got %v", cfg.Defaults.Slider.PageFraction)
	}
	if cfg.Defaults.Tabs.ActivationMode != "automatic" {
		t.Errorf("Expected tabs activation default 'automatic', got %q", cfg.Defaults.Tabs.ActivationMode)
	}
	if cfg.Keymap.Preset != "default" {
		t.Errorf("Expected keymap preset 'default', got %q", cfg.Keymap.Preset)
	}
	if cfg.Bridge.Addr != "127.0.0.1:7440" {
		t.Errorf("Expected bridge addr default, got %q", cfg.Bridge.Addr)
	}
}

func TestSemanticValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad activation mode", "version: \"1.0\"\ndefaults:\n  tabs:\n    activation_mode: eager\n"},
		{"bad keymap preset", "version: \"1.0\"\nkeymap:\n  preset: emacs\n"},
		{"page fraction out of range", "version: \"1.0\"\ndefaults:\n  slider:\n    page_fraction: 1.5\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadFromBytes([]byte(tc.yaml)); err == nil {
				t.Errorf("Expected validation error for %s", tc.name)
			}
		})
	}
}

func TestEnvVarExpansion(t *testing.T) {
	os.Setenv("HEADLESS_TEST_THEME", "nord")
	defer os.Unsetenv("HEADLESS_TEST_THEME")

	cfg, err := LoadFromBytes([]byte("version: \"1.0\"\ntui:\n  theme: ${HEADLESS_TEST_THEME}\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TUI.Theme != "nord" {
		t.Errorf("Expected theme 'nord', got %q", cfg.TUI.Theme)
	}

	// Default fallback when the variable is unset
	cfg, err = LoadFromBytes([]byte("version: \"1.0\"\ntui:\n  theme: ${HEADLESS_UNSET_VAR:-dracula}\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TUI.Theme != "dracula" {
		t.Errorf("Expected fallback theme 'dracula', got %q", cfg.TUI.Theme)
	}
}

func TestOverrideMerging(t *testing.T) {
	dir := t.TempDir()

	base := []byte(`
version: "1.0"
defaults:
  menu:
    typeahead_window_ms: 400
keymap:
  preset: default
`)
	override := []byte(`
keymap:
  preset: vim
`)

	if err := os.WriteFile(filepath.Join(dir, "headless.yml"), base, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "headless.override.yml"), override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Keymap.Preset != "vim" {
		t.Errorf("Expected override preset 'vim', got %q", cfg.Keymap.Preset)
	}
	if cfg.Defaults.Menu.TypeaheadWindowMS != 400 {
		t.Errorf("Expected base typeahead window 400, got %d", cfg.Defaults.Menu.TypeaheadWindowMS)
	}
}

func TestTOMLConfig(t *testing.T) {
	dir := t.TempDir()
	tomlContent := []byte(`
version = "1.0"

[defaults.slider]
page_fraction = 0.25
`)
	path := filepath.Join(dir, "headless.toml")
	if err := os.WriteFile(path, tomlContent, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}
	if cfg.Defaults.Slider.PageFraction != 0.25 {
		t.Errorf("Expected page fraction 0.25, got %v", cfg.Defaults.Slider.PageFraction)
	}
}
