package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports files with a given extension that change anywhere below
// a directory. Bursts of events for the same file are coalesced.
type Watcher struct {
	dir      string
	ext      string
	debounce time.Duration

	fw    *fsnotify.Watcher
	ready chan string
	done  chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New starts watching dir and all of its subdirectories for files ending
// in ext. Changes made after New returns are delivered by Run.
func New(dir, ext string, debounce time.Duration) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", dir)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		dir:      dir,
		ext:      ext,
		debounce: debounce,
		fw:       fw,
		ready:    make(chan string),
		done:     make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}
	if err := w.addTree(dir, nil); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Run calls handle with the path of every changed file until ctx is done or
// the underlying watcher fails. Calls to handle never overlap. Run must be
// called at most once.
//
// Failing to watch a newly created directory is passed to report and
// watching goes on. With a nil report Run stops and returns that error.
func (w *Watcher) Run(ctx context.Context, handle func(path string), report func(error)) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-w.ready:
			handle(path)

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if err := w.handleEvent(ctx, ev); err != nil {
				if report == nil {
					return err
				}
				report(err)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, ev fsnotify.Event) error {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			// Files can land in a new directory before it is watched.
			err := w.addTree(ev.Name, func(path string) { w.schedule(ctx, path) })
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		}
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return nil
	}
	if filepath.Ext(ev.Name) != w.ext {
		return nil
	}
	w.schedule(ctx, ev.Name)
	return nil
}

// schedule reports path once it has seen no further events for the
// debounce interval.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case w.ready <- path:
		case <-ctx.Done():
		case <-w.done:
		}
	})
}

// addTree watches root and every directory below it. found, if set, is
// called for each matching file already present.
func (w *Watcher) addTree(root string, found func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			return nil
		}
		if found != nil && filepath.Ext(path) == w.ext {
			found(path)
		}
		return nil
	})
}

func (w *Watcher) stop() {
	close(w.done)
	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
	_ = w.fw.Close()
}
