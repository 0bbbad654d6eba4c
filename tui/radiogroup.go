package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/headless/components/radiogroup"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// RadiogroupModel hosts the radio group primitive in a Bubble Tea program.
type RadiogroupModel struct {
	state *radiogroup.StateStore
	layer *logic.Layer[radiogroup.State]
	keys  keymap.Keymap
	theme *theme.Theme
	title string
}

// NewRadiogroup wires a radio group instance for terminal hosting.
func NewRadiogroup(title string, opts radiogroup.Options, keys keymap.Keymap, th *theme.Theme) RadiogroupModel {
	state, layer := radiogroup.New(opts)
	return RadiogroupModel{
		state: state,
		layer: layer,
		keys:  keys,
		theme: th,
		title: title,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m RadiogroupModel) State() *radiogroup.StateStore {
	return m.state
}

func (m RadiogroupModel) Init() tea.Cmd {
	return nil
}

func (m RadiogroupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m, tea.Quit
	}

	name, ok := m.keys.Translate(keyMsg)
	if !ok {
		return m, nil
	}
	s := m.state.Get()
	if handler, ok := m.layer.Handlers(radiogroup.PartRadio)[dom.OnKeyDown]; ok {
		// Space re-selects the focused entry; arrows ignore the argument.
		handler(dom.KeyEvent(name), focusedValue(s))
	}
	return m, nil
}

func (m RadiogroupModel) View() string {
	s := m.state.Get()

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.theme.Title.Render(m.title))
		b.WriteString("\n")
	}
	for _, entry := range s.Entries {
		marker := "( )"
		if entry.Value == s.Value {
			marker = "(●)"
		}
		line := marker + " " + entry.Label
		switch {
		case s.Disabled || entry.Disabled:
			b.WriteString(m.theme.Disabled.Render(line))
		case entry.Value == s.Value:
			b.WriteString(m.theme.Selected.Render(line))
		default:
			b.WriteString(m.theme.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// focusedValue picks the entry keyboard events act on: the selection, or the
// first enabled entry when nothing is selected yet.
func focusedValue(s radiogroup.State) string {
	if s.Value != "" {
		return s.Value
	}
	for _, entry := range s.Entries {
		if !entry.Disabled {
			return entry.Value
		}
	}
	return ""
}
