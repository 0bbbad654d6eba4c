package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/headless/components/slider"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// SliderModel hosts the slider primitive in a Bubble Tea program.
type SliderModel struct {
	state *slider.StateStore
	layer *logic.Layer[slider.State]
	keys  keymap.Keymap
	theme *theme.Theme
	width int
}

// NewSlider wires a slider instance for terminal hosting. Width is the
// rendered track width in cells.
func NewSlider(opts slider.Options, width int, keys keymap.Keymap, th *theme.Theme) SliderModel {
	state, layer := slider.New(opts)
	if width <= 0 {
		width = 40
	}
	return SliderModel{
		state: state,
		layer: layer,
		keys:  keys,
		theme: th,
		width: width,
	}
}

// State exposes the underlying store, for hosts that embed this model.
func (m SliderModel) State() *slider.StateStore {
	return m.state
}

func (m SliderModel) Init() tea.Cmd {
	return nil
}

func (m SliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	// Terminal hosts drive the single-mode thumb, or the lower thumb in
	// range mode.
	part := slider.PartThumb
	if m.state.Get().IsRange {
		part = slider.PartThumbMin
	}
	if handler, ok := m.layer.Handlers(part)[dom.OnKeyDown]; ok {
		handler(dom.KeyEvent(name))
	}
	return m, nil
}

func (m SliderModel) View() string {
	s := m.state.Get()
	span := s.Max - s.Min
	if span <= 0 {
		span = 1
	}

	cells := make([]rune, m.width)
	for i := range cells {
		cells[i] = '─'
	}
	for _, v := range s.Values {
		pos := int((v - s.Min) / span * float64(m.width-1))
		if pos < 0 {
			pos = 0
		}
		if pos >= m.width {
			pos = m.width - 1
		}
		cells[pos] = '●'
	}

	var b strings.Builder
	for _, c := range cells {
		if c == '●' {
			b.WriteString(m.theme.Thumb.Render(string(c)))
		} else {
			b.WriteString(m.theme.Track.Render(string(c)))
		}
	}

	labels := make([]string, len(s.Values))
	for i, v := range s.Values {
		labels[i] = fmt.Sprintf("%g", v)
	}
	value := m.theme.Accent.Render(strings.Join(labels, " – "))
	if s.Disabled {
		value = m.theme.Disabled.Render(strings.Join(labels, " – "))
	}

	return b.String() + " " + value
}
