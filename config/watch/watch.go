// Package watch reloads a Document when its backing file changes on disk,
// using fsnotify for change notification.
//
// Grounded on the fsnotify usage pattern shared by the pack's
// filesystem-watching repos: a single watcher goroutine selecting over
// Events/Errors channels (Write, Create, and Rename trigger a reload; a
// Remove makes one immediate attempt to re-add the watch on the path, and
// if the file does not exist at that moment the watch is not re-armed).
package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/parser"
)

// Watcher reloads a Document from its source file whenever that file
// changes, invoking onChange with the reload's error (nil on success)
// after each attempt.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	doc    *config.Document
	onErr  func(error)
	done   chan struct{}
}

// Watch starts watching path for changes, reparsing it into doc (via
// config/parser.Parse) on every write/create/rename event. onChange is
// invoked after each reload attempt, successful or not; it may be nil.
// The returned Watcher must be closed with Stop when no longer needed.
func Watch(doc *config.Document, path string, onChange func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{fsw: fsw, path: path, doc: doc, onErr: onChange, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload()
			}
			if ev.Op&fsnotify.Remove != 0 {
				w.fsw.Add(w.path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onErr != nil {
				w.onErr(fmt.Errorf("watch %s: %w", w.path, err))
			}
		}
	}
}

func (w *Watcher) reload() {
	err := w.doc.ReadFile(w.path, parser.Parse)
	if w.onErr != nil {
		w.onErr(err)
	}
}

// Stop releases the underlying filesystem watch. It does not block for
// the watcher goroutine to exit.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}
