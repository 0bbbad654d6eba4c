// Package theme provides the lipgloss styles terminal hosts use to render
// primitives. A palette is selected by name from headless.yml or the
// HEADLESS_THEME environment variable.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/headless/config"
)

const defaultThemeName = "default"

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Accent             lipgloss.TerminalColor
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	Track              lipgloss.TerminalColor
	Thumb              lipgloss.TerminalColor
}

func newDefaultColors() Colors {
	return Colors{
		Accent:             lipgloss.AdaptiveColor{Light: "#4F7CAC", Dark: "#7FB4CA"},
		Green:              lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:                lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#5B8BBE", Dark: "#7E9CD8"},
		LightText:          lipgloss.AdaptiveColor{Light: "#2B2F42", Dark: "#DCD7BA"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		Border:             lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#E2E6F3", Dark: "#223249"},
		Track:              lipgloss.AdaptiveColor{Light: "#D5C4A1", Dark: "#504945"},
		Thumb:              lipgloss.AdaptiveColor{Light: "#4F7CAC", Dark: "#7FB4CA"},
	}
}

// newTerminalColors maps everything onto ANSI colors for terminals without
// truecolor support.
func newTerminalColors() Colors {
	return Colors{
		Accent:             lipgloss.Color("4"),
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Cyan:               lipgloss.Color("6"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		Track:              lipgloss.Color("8"),
		Thumb:              lipgloss.Color("4"),
	}
}

// Theme holds the pre-configured styles terminal hosts render with.
type Theme struct {
	Colors Colors

	Title lipgloss.Style

	// Text hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Disabled lipgloss.Style

	// Interactive states
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Accent   lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Containers
	Box   lipgloss.Style
	Panel lipgloss.Style

	// Slider parts
	Track lipgloss.Style
	Thumb lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"default":  newDefaultColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the theme instance selected for the current terminal.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	factory, ok := themeRegistry[normalizeThemeName(name)]
	if !ok {
		factory = newDefaultColors
	}
	return newThemeFromColors(factory())
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Accent),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().
			Foreground(colors.MutedText),
		Disabled: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),
		Focused: lipgloss.NewStyle().
			Foreground(colors.Accent).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(colors.Accent),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Track: lipgloss.NewStyle().
			Foreground(colors.Track),
		Thumb: lipgloss.NewStyle().
			Foreground(colors.Thumb).
			Bold(true),
	}
}

// getThemeName resolves the theme name: HEADLESS_THEME wins, then
// headless.yml's tui.theme, then the built-in default.
func getThemeName() string {
	if env := os.Getenv("HEADLESS_THEME"); env != "" {
		return env
	}
	if cfg, err := config.LoadDefault(); err == nil && cfg.TUI != nil && cfg.TUI.Theme != "" {
		return cfg.TUI.Theme
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return defaultThemeName
	}
	return name
}
