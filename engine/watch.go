package engine

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher clears an environment's template cache whenever a file under one
// of its directories changes.
type Watcher struct {
	env       *Environment
	fsWatcher *fsnotify.Watcher
	logger    *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the logger used for reload and error messages.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher watches dirs, and every directory below them, on behalf of env.
// Missing directories are skipped.
func NewWatcher(env *Environment, dirs []string, opts ...WatcherOption) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		env:       env,
		fsWatcher: fsWatcher,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}

	return w, nil
}

// addTree registers dir and its subdirectories with the fsnotify watcher.
func (w *Watcher) addTree(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		w.logger.Debug("skipping missing template directory",
			slog.String("dir", dir))
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("template watcher error",
				slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("could not watch new template directory",
					slog.String("dir", event.Name),
					slog.String("error", err.Error()))
			}
		}
	}

	w.env.ClearCache()
	w.logger.Debug("template cache cleared",
		slog.String("path", event.Name),
		slog.String("op", event.Op.String()))
}
