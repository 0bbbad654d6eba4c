package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/headless/components/accordion"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// AccordionModel hosts the accordion primitive in a Bubble Tea program.
type AccordionModel struct {
	state *accordion.StateStore
	layer *logic.Layer[accordion.State]
	keys  keymap.Keymap
	theme *theme.Theme
}

// NewAccordion wires an accordion instance for terminal hosting. Keyboard
// focus starts on the first enabled item.
func NewAccordion(opts accordion.Options, keys keymap.Keymap, th *theme.Theme) AccordionModel {
	state, layer := accordion.New(opts)
	for _, item := range opts.Items {
		if !item.Disabled {
			state.SetFocusedItem(item.ID)
			break
		}
	}
	return AccordionModel{
		state: state,
		layer: layer,
		keys:  keys,
		theme: th,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m AccordionModel) State() *accordion.StateStore {
	return m.state
}

func (m AccordionModel) Init() tea.Cmd {
	return nil
}

func (m AccordionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	switch name {
	case dom.KeyEnter, dom.KeySpace:
		if s.FocusedItem != "" {
			if handler, ok := m.layer.Handlers(accordion.PartTrigger)[dom.OnClick]; ok {
				handler(dom.ClickEvent(0, 0), s.FocusedItem)
			}
		}
	default:
		if handler, ok := m.layer.Handlers(accordion.PartTrigger)[dom.OnKeyDown]; ok {
			handler(dom.KeyEvent(name), s.FocusedItem)
		}
	}
	return m, nil
}

func (m AccordionModel) View() string {
	s := m.state.Get()
	var sections []string

	for _, item := range s.Items {
		marker := "▸"
		if item.Expanded {
			marker = "▾"
		}
		title := marker + " " + item.Title
		switch {
		case item.Disabled:
			title = m.theme.Disabled.Render(title)
		case item.ID == s.FocusedItem:
			title = m.theme.Focused.Render(title)
		default:
			title = m.theme.Normal.Render(title)
		}

		section := title
		if item.Expanded {
			section += "\n" + m.theme.Muted.Render(item.Content)
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n")
}
