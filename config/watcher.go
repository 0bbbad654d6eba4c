package config

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher watches a directory for headless config changes and invokes a
// reload callback with the freshly loaded configuration. Rapid successive
// writes are debounced.
type Watcher struct {
	watcher    *fsnotify.Watcher
	dir        string
	debounce   time.Duration
	lastChange time.Time
	mu         sync.Mutex
	logger     logrus.FieldLogger
	onReload   func(cfg *Config)
}

// NewWatcher creates a Watcher over the directory containing the project's
// config file. The logger is injected so this package stays independent of
// the logging setup it configures.
func NewWatcher(dir string, debounce time.Duration, logger logrus.FieldLogger, onReload func(cfg *Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Watcher{
		watcher:  fw,
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		onReload: onReload,
	}, nil
}

// Start begins watching for config changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && isConfigFile(event.Name) {
				w.handleChange(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange reloads the configuration after a debounced change.
func (w *Watcher) handleChange(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := time.Since(w.lastChange)
	if elapsed < w.debounce {
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(file), elapsed)
		return
	}
	w.lastChange = time.Now()

	w.logger.Infof("Config changed: %s", filepath.Base(file))

	cfg, err := LoadFrom(w.dir)
	if err != nil {
		w.logger.Errorf("Reload failed: %v", err)
		return
	}

	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func isConfigFile(name string) bool {
	switch {
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".toml"):
		return strings.Contains(filepath.Base(name), "headless")
	}
	return false
}
