package app

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

// reloadDebounce absorbs editor save bursts (truncate+write, rename
// dances) into a single reload.
const reloadDebounce = 150 * time.Millisecond

// reloadWatcher dispatches a ReloadAction whenever the viewed file
// changes on disk. The parent directory is watched rather than the file:
// most editors replace the file on save, which would silently drop a
// watch on the file itself.
type reloadWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

func startReloadWatcher(path string, dispatch func(statepkg.Action)) (*reloadWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	rw := &reloadWatcher{
		watcher: fw,
		done:    make(chan struct{}),
	}

	go func() {
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if !sameFile(ev.Name, abs) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				rw.scheduleReload(dispatch)
			case _, ok := <-fw.Errors:
				// Watch errors are not fatal to the viewer; the manual
				// reload key still works.
				if !ok {
					return
				}
			case <-rw.done:
				return
			}
		}
	}()

	return rw, nil
}

func (rw *reloadWatcher) scheduleReload(dispatch func(statepkg.Action)) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.timer = time.AfterFunc(reloadDebounce, func() {
		dispatch(statepkg.ReloadAction{})
	})
}

func (rw *reloadWatcher) Close() {
	close(rw.done)
	_ = rw.watcher.Close()
	rw.mu.Lock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.mu.Unlock()
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
