// Package keymap translates terminal key presses into the DOM-style key
// names the logic layers understand. Bindings come from a preset (default or
// vim) adjusted by headless.yml overrides.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/dom"
)

// Keymap binds terminal keys to the navigation and action vocabulary of the
// primitives.
type Keymap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// Default returns the arrow-key preset.
func Default() Keymap {
	return Keymap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Vim returns the vim-style preset, keeping arrows as secondary bindings.
func Vim() Keymap {
	km := Default()
	km.Up = key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	)
	km.Left = key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	)
	km.Right = key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	)
	km.Home = key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	)
	km.End = key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	)
	km.PageUp = key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	)
	km.PageDown = key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	)
	return km
}

// FromConfig builds a keymap from the keymap section of headless.yml.
func FromConfig(cfg *config.KeymapConfig) Keymap {
	var km Keymap
	if cfg != nil && cfg.Preset == "vim" {
		km = Vim()
	} else {
		km = Default()
	}
	if cfg != nil {
		km.applyOverrides(cfg.Overrides)
	}
	return km
}

// applyOverrides replaces bindings for any action named in the overrides map.
func (k *Keymap) applyOverrides(overrides map[string][]string) {
	bind := func(b *key.Binding, action string) {
		if keys, ok := overrides[action]; ok && len(keys) > 0 {
			*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], action))
		}
	}
	bind(&k.Up, "up")
	bind(&k.Down, "down")
	bind(&k.Left, "left")
	bind(&k.Right, "right")
	bind(&k.Home, "home")
	bind(&k.End, "end")
	bind(&k.PageUp, "page_up")
	bind(&k.PageDown, "page_down")
	bind(&k.Select, "select")
	bind(&k.Back, "back")
	bind(&k.Quit, "quit")
	bind(&k.Help, "help")
}

// Translate maps a terminal key press to the DOM key name dispatched into a
// logic layer. The second return is false when the press is not bound to a
// navigation or action key; single printable runes still translate so menu
// type-ahead works.
func (k Keymap) Translate(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return dom.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return dom.KeyArrowDown, true
	case key.Matches(msg, k.Left):
		return dom.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return dom.KeyArrowRight, true
	case key.Matches(msg, k.Home):
		return dom.KeyHome, true
	case key.Matches(msg, k.End):
		return dom.KeyEnd, true
	case key.Matches(msg, k.PageUp):
		return dom.KeyPageUp, true
	case key.Matches(msg, k.PageDown):
		return dom.KeyPageDown, true
	case key.Matches(msg, k.Select):
		return dom.KeyEnter, true
	case key.Matches(msg, k.Back):
		return dom.KeyEscape, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return string(msg.Runes), true
	}
	return "", false
}
