package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/headless/components/pagination"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// PaginationModel hosts the pagination primitive in a Bubble Tea program.
type PaginationModel struct {
	state *pagination.StateStore
	layer *logic.Layer[pagination.State]
	keys  keymap.Keymap
	theme *theme.Theme
}

// NewPagination wires a pagination instance for terminal hosting.
func NewPagination(opts pagination.Options, keys keymap.Keymap, th *theme.Theme) PaginationModel {
	state, layer := pagination.New(opts)
	return PaginationModel{
		state: state,
		layer: layer,
		keys:  keys,
		theme: th,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m PaginationModel) State() *pagination.StateStore {
	return m.state
}

func (m PaginationModel) Init() tea.Cmd {
	return nil
}

func (m PaginationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	if handler, ok := m.layer.Handlers(pagination.PartRoot)[dom.OnKeyDown]; ok {
		handler(dom.KeyEvent(name))
	}
	return m, nil
}

func (m PaginationModel) View() string {
	s := m.state.Get()

	var cells []string
	for _, entry := range pagination.PageNumbers(s.CurrentPage, s.TotalPages, s.SiblingCount) {
		if entry.Ellipsis {
			cells = append(cells, m.theme.Muted.Render("…"))
			continue
		}
		label := fmt.Sprintf(" %d ", entry.Page)
		switch {
		case s.Disabled:
			cells = append(cells, m.theme.Disabled.Render(label))
		case entry.Page == s.CurrentPage:
			cells = append(cells, m.theme.Selected.Render(label))
		default:
			cells = append(cells, m.theme.Normal.Render(label))
		}
	}

	return strings.Join(cells, " ")
}
