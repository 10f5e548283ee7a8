package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of events (e.g. a scaffold run) into one
// re-validation.
const DefaultDebounce = 100 * time.Millisecond

// RootWatcher reports changes to the top-level listing of a package root.
// Content writes do not change the listing and are ignored.
type RootWatcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	logger   *slog.Logger
}

// New starts watching root. The watch is active when New returns.
func New(root string, debounce time.Duration, logger *slog.Logger) (*RootWatcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", root, err)
	}

	return &RootWatcher{fsw: fsw, root: root, debounce: debounce, logger: logger}, nil
}

// Run calls onChange after each debounced burst of listing changes until ctx
// is cancelled. onChange always runs on the Run goroutine.
func (w *RootWatcher) Run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.fsw.Close() }()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !changesListing(event) || filepath.Dir(event.Name) != filepath.Clean(w.root) {
				continue
			}
			w.logger.Debug("listing changed", "entry", filepath.Base(event.Name), "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "root", w.root, "error", err)
		}
	}
}

func changesListing(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
