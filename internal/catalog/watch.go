package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"go.uber.org/zap"
)

const debounceInterval = 300 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	updates   chan []models.Project
	done      chan struct{}
	logger    *zap.Logger
}

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file on save are still noticed.
func Watch(ctx context.Context, path string, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsW.Add(filepath.Dir(abs)); err != nil {
		fsW.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		fsWatcher: fsW,
		updates:   make(chan []models.Project, 1),
		done:      make(chan struct{}),
		logger:    logger,
	}
	go w.watchLoop(ctx)
	return w, nil
}

// Updates delivers each successfully reloaded catalog
func (w *Watcher) Updates() <-chan []models.Project {
	return w.updates
}

// Close stops the watcher and waits for its loop to exit
func (w *Watcher) Close() error {
	err := w.fsWatcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce: reset timer on each event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounceInterval)
			fire = timer.C

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	projects, err := Load(ctx, w.path)
	if err != nil {
		w.logger.Warn("failed to reload catalog", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("catalog reloaded", zap.String("path", w.path), zap.Int("projects", len(projects)))

	// Keep only the newest catalog if the consumer is behind.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- projects
}
