// Package watch turns file system notifications for one file into a stream
// of change signals.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"tmenu/internal/system"
)

// Watcher signals on Changes whenever the watched file is written, created,
// removed or renamed. Bursts of events collapse into one pending signal.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	changes chan struct{}
}

// New watches path. The parent directory is watched so editors that replace
// the file with a new one are still noticed.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{fw: fw, path: filepath.Clean(abs), changes: make(chan struct{}, 1)}
	go w.loop()
	return w, nil
}

// Changes is closed after Close.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

func (w *Watcher) Close() error { return w.fw.Close() }

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			system.Logger.Debug("source changed", "op", ev.Op.String())
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			system.Logger.Warn("watch error", "err", err)
		}
	}
}
