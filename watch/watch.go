// Package watch notifies about changes under a watched path, reporting
// failures with the same operation/path context as the errfs package.
//
// A Watcher filters native filesystem events through a glob pattern and
// drives single-use change tokens:
//
//	w, err := watch.New("./config", "*.json")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	token := w.Token()
//	if token.HasChanged() {
//	    reloadConfig()
//	}
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/gobeaver/errfs"
)

// Watcher watches a directory and signals change tokens whenever an
// event under it matches the pattern. It owns the underlying native
// watcher exclusively; Close releases it exactly once.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	pattern glob.Glob

	mu    sync.Mutex
	token *Token

	errs      chan error
	done      chan struct{}
	closeOnce sync.Once
}

// New starts watching path for events whose file name matches pattern.
// Glob syntax follows github.com/gobwas/glob: "*.json", "data-??.csv",
// "{a,b}.txt". Failures to establish the watch carry the watched path.
func New(path, pattern string) (*Watcher, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &errfs.Error{Op: errfs.OpWatch, Path: path, Err: err}
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, &errfs.Error{Op: errfs.OpWatch, Path: path, Err: err}
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		pattern: g,
		token:   &Token{},
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the watched path.
func (w *Watcher) Path() string { return w.path }

// Token returns the current change token. After the token has signaled,
// subsequent calls hand out a fresh one, so long-lived consumers re-arm
// by calling Token again.
func (w *Watcher) Token() *Token {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.token.HasChanged() {
		w.token = &Token{}
	}
	return w.token
}

// Errors delivers failures observed while the watch is running, wrapped
// with the watched path. The channel holds the most recent error only.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and releases the native watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	if err != nil {
		return &errfs.Error{Op: errfs.OpWatch, Path: w.path, Err: err}
	}
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.pattern.Match(filepath.Base(event.Name)) {
				w.mu.Lock()
				token := w.token
				w.mu.Unlock()
				token.signal()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			wrapped := &errfs.Error{Op: errfs.OpWatch, Path: w.path, Err: err}
			select {
			case w.errs <- wrapped:
			default:
			}
		}
	}
}
