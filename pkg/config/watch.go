package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/jmallory/floatpane/pkg/panel"
	"github.com/jmallory/floatpane/pkg/watcher"
)

// Watcher reloads a config file when it changes on disk. Editors rewrite
// files as a burst of events (and some replace them entirely), so the
// parent directory is watched and reloads are debounced. A reload that
// fails to parse keeps the previous configuration; the error goes to
// Errors for the host to report.
type Watcher struct {
	// Events delivers each successfully reloaded configuration.
	Events chan []panel.Config
	// Errors delivers reload failures. Both channels are dropped-on-full;
	// a slow host loses notifications, not correctness.
	Errors chan error

	path string
	fw   *fsnotify.Watcher
	deb  *watcher.Debouncer
	done chan struct{}
}

// Watch starts watching path for changes.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	w := &Watcher{
		Events: make(chan []panel.Config, 1),
		Errors: make(chan error, 1),
		path:   abs,
		fw:     fw,
		deb:    watcher.NewDebouncer(0),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and its pending reload, if any.
func (w *Watcher) Close() error {
	close(w.done)
	w.deb.Cancel()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.deb.Trigger(w.reload)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) reload() {
	configs, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	select {
	case w.Events <- configs:
	default:
	}
}

func (w *Watcher) reportError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
