package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/headless/cli"
	"github.com/grovetools/headless/components/accordion"
	"github.com/grovetools/headless/components/menu"
	"github.com/grovetools/headless/components/pagination"
	"github.com/grovetools/headless/components/radiogroup"
	"github.com/grovetools/headless/components/slider"
	"github.com/grovetools/headless/components/tabs"
	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/tui"
	"github.com/grovetools/headless/tui/keymap"
	"github.com/grovetools/headless/tui/theme"
)

// NewDemoCmd returns the demo command hosting each primitive in the
// terminal.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "demo [primitive]",
		Short:     "Run an interactive demo of a primitive",
		ValidArgs: []string{"accordion", "menu", "pagination", "radiogroup", "slider", "tabs"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  # Explore the menu primitive with the configured keymap
  headless demo menu

  # Range slider
  headless demo slider`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			tui.InitializeTUI()
			keys := keymap.FromConfig(cfg.Keymap)
			th := theme.NewThemeWithName(cfg.TUI.Theme)

			model, err := demoModel(args[0], cfg, keys, th)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	keys := keymap.Default()
	cli.SetStyledHelpWithExtras(cmd, func(t *theme.Theme) {
		fmt.Println("\n " + t.Warning.Render("KEYS"))
		for _, b := range []struct{ keys, desc string }{
			{keys.Up.Help().Key, keys.Up.Help().Desc},
			{keys.Down.Help().Key, keys.Down.Help().Desc},
			{keys.Select.Help().Key, keys.Select.Help().Desc},
			{keys.Quit.Help().Key, keys.Quit.Help().Desc},
		} {
			fmt.Printf(" %s  %s\n", t.Accent.Render(b.keys), b.desc)
		}
	})

	return cmd
}

// demoModel builds the fixture for a named primitive, threading the
// configured defaults into its options.
func demoModel(name string, cfg *config.Config, keys keymap.Keymap, th *theme.Theme) (tea.Model, error) {
	switch name {
	case "menu":
		return tui.NewMenu("File", menu.Options{
			Items: []menu.Item{
				{ID: "new", Label: "New File"},
				{ID: "open", Label: "Open…"},
				{ID: "recent", Label: "Open Recent", Items: []menu.Item{
					{ID: "a.txt", Label: "a.txt"},
					{ID: "b.txt", Label: "b.txt"},
				}},
				{ID: "print", Label: "Print", Disabled: true},
				{ID: "save", Label: "Save"},
			},
			CloseOnSelect:   cfg.Defaults.Menu.CloseOnSelect,
			TypeaheadWindow: time.Duration(cfg.Defaults.Menu.TypeaheadWindowMS) * time.Millisecond,
		}, keys, th), nil

	case "tabs":
		return tui.NewTabs(tabs.Options{
			Tabs: []tabs.Tab{
				{ID: "general", Label: "General"},
				{ID: "appearance", Label: "Appearance"},
				{ID: "advanced", Label: "Advanced", Disabled: true},
				{ID: "about", Label: "About"},
			},
			Orientation:    cfg.Defaults.Tabs.Orientation,
			ActivationMode: cfg.Defaults.Tabs.ActivationMode,
		}, map[string]string{
			"general":    "Project name, language, and workspace paths.",
			"appearance": "Theme, fonts, and layout density.",
			"advanced":   "Hidden behind a feature flag.",
			"about":      "Build info and licenses.",
		}, keys, th), nil

	case "accordion":
		return tui.NewAccordion(accordion.Options{
			Items: []accordion.Item{
				{ID: "shipping", Title: "Shipping", Content: "Orders ship within two business days."},
				{ID: "returns", Title: "Returns", Content: "Thirty day return window."},
				{ID: "support", Title: "Support", Content: "Reach us at support@example.com."},
			},
			Multiple:    cfg.Defaults.Accordion.Multiple != nil && *cfg.Defaults.Accordion.Multiple,
			Collapsible: cfg.Defaults.Accordion.Collapsible,
		}, keys, th), nil

	case "slider":
		return tui.NewSlider(slider.Options{
			Values:       []float64{20, 80},
			Min:          0,
			Max:          100,
			Step:         5,
			PageFraction: cfg.Defaults.Slider.PageFraction,
		}, 40, keys, th), nil

	case "pagination":
		return tui.NewPagination(pagination.Options{
			TotalItems:   250,
			ItemsPerPage: 10,
			SiblingCount: 1,
		}, keys, th), nil

	case "radiogroup":
		return tui.NewRadiogroup("Notifications", radiogroup.Options{
			Entries: []radiogroup.Entry{
				{Value: "all", Label: "Everything"},
				{Value: "mentions", Label: "Mentions only"},
				{Value: "none", Label: "Nothing", Disabled: false},
			},
			Value: "mentions",
			Name:  "notifications",
		}, keys, th), nil
	}

	return nil, fmt.Errorf("unknown primitive %q", name)
}
