package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it changes on disk and
// publishes the parsed result. Invalid edits are reported on Errors and
// the previous tuning stays in effect.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// WatchTuning watches the directory holding path, since most editors
// replace files rather than writing them in place.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	tw.wg.Add(1)
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

// settle is how long the file must be quiet before it is reloaded, so a
// truncate followed by a write is read once, complete.
const settle = 100 * time.Millisecond

func (w *TuningWatcher) run() {
	defer w.wg.Done()
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(settle)
		case <-timer.C:
			t, err := LoadTuning(w.path)
			if err != nil {
				w.publishErr(err)
				continue
			}
			w.publish(t)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publishErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// publish keeps only the newest tuning if the reader is behind.
func (w *TuningWatcher) publish(t Tuning) {
	for {
		select {
		case w.Updates <- t:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Updates:
		default:
		}
	}
}

func (w *TuningWatcher) publishErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
