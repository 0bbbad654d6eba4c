package schema

import (
	"strings"
	"testing"
)

func TestValidateDocumentAcceptsValidConfig(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	doc := map[string]interface{}{
		"version": "1.0",
		"defaults": map[string]interface{}{
			"menu": map[string]interface{}{
				"typeahead_window_ms": float64(300),
				"close_on_select":     false,
			},
			"slider": map[string]interface{}{
				"page_fraction": 0.25,
			},
			"tabs": map[string]interface{}{
				"activation_mode": "manual",
				"orientation":     "vertical",
			},
		},
		"keymap": map[string]interface{}{
			"preset": "vim",
		},
	}

	if err := v.ValidateDocument(doc); err != nil {
		t.Fatalf("Expected valid document to pass, got: %v", err)
	}
}

func TestValidateDocumentRejectsBadEnum(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	doc := map[string]interface{}{
		"defaults": map[string]interface{}{
			"tabs": map[string]interface{}{
				"activation_mode": "eager",
			},
		},
	}

	if err := v.ValidateDocument(doc); err == nil {
		t.Fatal("Expected validation error for unknown activation_mode")
	}
}

func TestValidateDocumentRejectsOutOfRangeNumber(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	doc := map[string]interface{}{
		"defaults": map[string]interface{}{
			"slider": map[string]interface{}{
				"page_fraction": 1.5,
			},
		},
	}

	if err := v.ValidateDocument(doc); err == nil {
		t.Fatal("Expected validation error for page_fraction above 1")
	}
}

func TestValidateCollectsErrorLocations(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	doc := map[string]interface{}{
		"keymap": map[string]interface{}{
			"preset": "emacs",
		},
	}

	err = v.Validate(doc)
	if err == nil {
		t.Fatal("Expected validation error for unknown keymap preset")
	}
	if !strings.Contains(err.Error(), "/keymap/preset") {
		t.Errorf("Expected error to name the failing location, got: %v", err)
	}
}

func TestEmbeddedSchemaIsPresent(t *testing.T) {
	data := EmbeddedSchema()
	if len(data) == 0 {
		t.Fatal("Embedded schema should not be empty")
	}
	if !strings.Contains(string(data), "activation_mode") {
		t.Error("Embedded schema should describe the tabs defaults")
	}
}
