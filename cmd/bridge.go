package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovetools/headless/bridge"
	"github.com/grovetools/headless/cli"
	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/components/accordion"
	"github.com/grovetools/headless/components/menu"
	"github.com/grovetools/headless/components/radiogroup"
	"github.com/grovetools/headless/components/slider"
	"github.com/grovetools/headless/components/tabs"
	"github.com/grovetools/headless/errors"
	"github.com/grovetools/headless/logging"
)

// NewBridgeCmd returns the bridge command serving primitives over a
// websocket.
func NewBridgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Serve demo primitives to a remote renderer over websocket",
		Long: `Starts the websocket bridge with one instance of each primitive
registered under its name. A connected renderer receives state snapshots as
JSON and sends back DOM-style events.

Examples:
  # Serve on the configured address (default 127.0.0.1:7440)
  headless bridge

  # Override the listen address
  headless bridge --addr 0.0.0.0:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Bridge.Addr = addr
			}

			host := bridge.NewHost(*cfg.Bridge)
			registerDemoComponents(host)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := logging.NewLogger("bridge")

			// Long-running process: watch the project config and surface
			// changes. Bridge settings need a restart to apply.
			if cwd, err := os.Getwd(); err == nil {
				watcher, werr := config.NewWatcher(cwd, 200*time.Millisecond, log, func(cfg *config.Config) {
					log.WithField("addr", cfg.Bridge.Addr).Info("config reloaded; restart to apply bridge settings")
				})
				if werr == nil {
					defer watcher.Close()
					go watcher.Start(ctx)
				}
			}

			err = host.ListenAndServe(ctx)
			if errors.GetCode(err) == errors.ErrCodeBridgeClosed {
				log.Info("bridge stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().String("addr", "", "Listen address, overriding the configured bridge.addr")

	return cmd
}

// registerDemoComponents wires one instance of each primitive into the host.
func registerDemoComponents(host *bridge.Host) {
	menuState, menuLayer := menu.New(menu.Options{
		Items: []menu.Item{
			{ID: "new", Label: "New File"},
			{ID: "open", Label: "Open…"},
			{ID: "save", Label: "Save"},
		},
	})
	host.Register("menu", bridge.Wrap(menuState.Store(), menuLayer))

	tabsState, tabsLayer := tabs.New(tabs.Options{
		Tabs: []tabs.Tab{
			{ID: "general", Label: "General"},
			{ID: "about", Label: "About"},
		},
	})
	host.Register("tabs", bridge.Wrap(tabsState.Store(), tabsLayer))

	accordionState, accordionLayer := accordion.New(accordion.Options{
		Items: []accordion.Item{
			{ID: "shipping", Title: "Shipping", Content: "Two business days."},
			{ID: "returns", Title: "Returns", Content: "Thirty days."},
		},
	})
	host.Register("accordion", bridge.Wrap(accordionState.Store(), accordionLayer))

	sliderState, sliderLayer := slider.New(slider.Options{Min: 0, Max: 100, Value: 50})
	host.Register("slider", bridge.Wrap(sliderState.Store(), sliderLayer))

	radioState, radioLayer := radiogroup.New(radiogroup.Options{
		Entries: []radiogroup.Entry{
			{Value: "all", Label: "Everything"},
			{Value: "none", Label: "Nothing"},
		},
		Name: "notifications",
	})
	host.Register("radiogroup", bridge.Wrap(radioState.Store(), radioLayer))
}
