// Package watch triggers scene reloads when the projects seed file
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow coalesces editor write bursts into one reload.
const debounceWindow = 200 * time.Millisecond

// Watcher watches a single seed file and invokes a callback on change.
type Watcher struct {
	path     string
	dir      string
	base     string
	watcher  *fsnotify.Watcher
	onChange func()
	logger   *zap.Logger
	stop     chan struct{}
}

// New creates a watcher for the given file. onChange runs on the watch
// goroutine, debounced, every time the file is written or recreated.
func New(path string, onChange func(), logger *zap.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path is required")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		base:     filepath.Base(abs),
		watcher:  fsw,
		onChange: onChange,
		logger:   logger,
		stop:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
//
// The parent directory is watched rather than the file itself: editors
// and atomic writers replace the file, which would otherwise silently
// drop the watch.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.logger.Info("watching seed file", zap.String("path", w.path))

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			w.logger.Info("seed file changed, reloading", zap.String("path", w.path))
			w.onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// Stop ends the watch and releases the inotify handle.
func (w *Watcher) Stop() {
	close(w.stop)
	_ = w.watcher.Close()
}
