package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/dom"
)

func TestDefaultTranslation(t *testing.T) {
	km := Default()

	name, ok := km.Translate(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyArrowDown, name)

	name, ok = km.Translate(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyEnter, name)

	// "j" is not bound in the default preset; it falls through as a
	// printable rune for type-ahead.
	name, ok = km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.True(t, ok)
	assert.Equal(t, "j", name)
}

func TestVimTranslation(t *testing.T) {
	km := Vim()

	name, ok := km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyArrowDown, name, "vim binds j before the type-ahead fallback")

	name, ok = km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyEnd, name)

	// Arrows still work
	name, ok = km.Translate(tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyArrowUp, name)
}

func TestConfigOverrides(t *testing.T) {
	km := FromConfig(&config.KeymapConfig{
		Preset: "default",
		Overrides: map[string][]string{
			"down": {"ctrl+n"},
		},
	})

	name, ok := km.Translate(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.True(t, ok)
	assert.Equal(t, dom.KeyArrowDown, name)

	_, ok = km.Translate(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, ok, "override replaces the original binding")
}
