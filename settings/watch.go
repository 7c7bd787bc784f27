package settings

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// Watch starts watching the settings file at the path passed. Every time the file is written, it is
// loaded again and passed to fn. Files that fail to load are logged and otherwise ignored, so the
// previous settings stay in effect.
func Watch(log *slog.Logger, path string, fn func(Settings)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// The directory is watched rather than the file, as editors often replace the file on save.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run(log, filepath.Clean(path), fn)
	return watcher, nil
}

// Close stops watching the settings file.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run(log *slog.Logger, path string, fn func(Settings)) {
	defer close(w.done)

	// Writes usually arrive as a burst of events, so the file is only loaded once it has been quiet
	// for reloadDelay.
	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			s, err := Load(path)
			if err != nil {
				log.Error("reload settings", "path", path, "err", err)
				continue
			}
			log.Info("reloaded settings", "path", path)
			fn(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("watch settings", "path", path, "err", err)
		case <-w.closeCh:
			return
		}
	}
}
