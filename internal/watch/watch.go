// Package watch rebuilds the export when its sources change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before rebuilding.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls Rebuild after files under Dirs change. Rebuilds never
// overlap.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration
	Rebuild  func(ctx context.Context) error
	Logger   *slog.Logger
}

// Run watches until ctx is cancelled. Rebuild errors are logged and the
// watcher keeps going.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Rebuild == nil {
		return errors.New("watch: Rebuild is required")
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, dir := range w.Dirs {
		if err := addTree(fw, dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("not watching missing directory", "dir", dir)
				continue
			}
			return err
		}
		logger.Debug("watching", "dir", dir)
	}

	trigger := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			// New directories are not watched recursively by fsnotify.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addTree(fw, event.Name); err != nil {
					logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case trigger <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}

		case <-trigger:
			start := time.Now()
			if err := w.Rebuild(ctx); err != nil {
				logger.Error("rebuild failed", "error", err)
				continue
			}
			logger.Info("site rebuilt", "duration", time.Since(start))

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
