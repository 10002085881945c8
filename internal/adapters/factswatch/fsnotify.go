// Package factswatch monitors the persona facts file.
// Clean Architecture: Adapter implementing ports.FactsWatcher. Facts are
// immutable for the process lifetime, so a change event only means the
// operator should restart to apply it.
package factswatch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/elvin-babanli/personabot-go/internal/domain/ports"
)

// FSNotifyWatcher implements ports.FactsWatcher using fsnotify.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
}

// NewFSNotifyWatcher creates a new facts file watcher.
func NewFSNotifyWatcher() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FSNotifyWatcher{watcher: w}, nil
}

// Watch monitors the file at path and emits an event per change.
// The containing directory is watched so replace-by-rename edits (the
// common editor save strategy) are seen too.
func (w *FSNotifyWatcher) Watch(ctx context.Context, path string) (<-chan ports.FactsEvent, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return nil, err
	}

	events := make(chan ports.FactsEvent, 16)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}

				var op ports.FileOperation
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create:
					op = ports.FileCreated
				case event.Op&fsnotify.Write == fsnotify.Write:
					op = ports.FileModified
				case event.Op&fsnotify.Remove == fsnotify.Remove:
					op = ports.FileDeleted
				default:
					continue
				}

				select {
				case events <- ports.FactsEvent{Path: event.Name, Operation: op}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *FSNotifyWatcher) Stop() error {
	return w.watcher.Close()
}
