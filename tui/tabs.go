package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/headless/components/tabs"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// TabsModel hosts the tabs primitive in a Bubble Tea program. Panel content
// is supplied per tab id.
type TabsModel struct {
	state  *tabs.StateStore
	layer  *logic.Layer[tabs.State]
	keys   keymap.Keymap
	theme  *theme.Theme
	panels map[string]string
}

// NewTabs wires a tabs instance for terminal hosting.
func NewTabs(opts tabs.Options, panels map[string]string, keys keymap.Keymap, th *theme.Theme) TabsModel {
	state, layer := tabs.New(opts)
	return TabsModel{
		state:  state,
		layer:  layer,
		keys:   keys,
		theme:  th,
		panels: panels,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m TabsModel) State() *tabs.StateStore {
	return m.state
}

func (m TabsModel) Init() tea.Cmd {
	return nil
}

func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	if handler, ok := m.layer.Handlers(tabs.PartTab)[dom.OnKeyDown]; ok {
		handler(dom.KeyEvent(name))
	}
	return m, nil
}

func (m TabsModel) View() string {
	s := m.state.Get()

	var labels []string
	for i, tab := range s.Tabs {
		label := " " + tab.Label + " "
		switch {
		case tab.Disabled:
			label = m.theme.Disabled.Render(label)
		case tab.ID == s.ActiveTab:
			label = m.theme.Selected.Render(label)
		case i == s.FocusedIndex:
			label = m.theme.Focused.Render(label)
		default:
			label = m.theme.Muted.Render(label)
		}
		labels = append(labels, label)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, labels...)
	panel := m.theme.Panel.Render(m.panels[s.ActiveTab])
	return strings.Join([]string{bar, panel}, "\n")
}
