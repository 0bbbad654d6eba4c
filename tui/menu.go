package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/headless/components/menu"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// MenuModel hosts the menu primitive in a Bubble Tea program.
type MenuModel struct {
	state *menu.StateStore
	layer *logic.Layer[menu.State]
	keys  keymap.Keymap
	theme *theme.Theme
	title string
}

// NewMenu wires a menu instance for terminal hosting.
func NewMenu(title string, opts menu.Options, keys keymap.Keymap, th *theme.Theme) MenuModel {
	state, layer := menu.New(opts)
	return MenuModel{
		state: state,
		layer: layer,
		keys:  keys,
		theme: th,
		title: title,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m MenuModel) State() *menu.StateStore {
	return m.state
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	// Closed menus route keys to the trigger, open menus to the list.
	part := menu.PartTrigger
	if m.state.Get().Open {
		part = menu.PartMenu
	}
	if handler, ok := m.layer.Handlers(part)[dom.OnKeyDown]; ok {
		handler(dom.KeyEvent(name))
	}
	return m, nil
}

func (m MenuModel) View() string {
	s := m.state.Get()
	var b strings.Builder

	trigger := m.theme.Normal
	if s.Open {
		trigger = m.theme.Focused
	}
	b.WriteString(trigger.Render(m.title))
	b.WriteString("\n")

	if !s.Open {
		return b.String()
	}

	var rows []string
	for i, item := range s.CurrentItems() {
		label := item.Label
		if len(item.Items) > 0 {
			label += " ▸"
		}
		switch {
		case item.Disabled:
			label = m.theme.Disabled.Render(label)
		case i == s.ActiveIndex:
			label = m.theme.Selected.Render(label)
		default:
			label = m.theme.Normal.Render(label)
		}
		rows = append(rows, label)
	}
	if s.SearchQuery != "" {
		rows = append(rows, m.theme.Muted.Render("/"+s.SearchQuery))
	}
	b.WriteString(m.theme.Box.Render(strings.Join(rows, "\n")))
	return b.String()
}
