package garden

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const presetDebounce = 100 * time.Millisecond

// PresetWatcher reloads a presets file whenever it changes on disk and
// delivers the result on Updates. Parse failures go to Errors and leave the
// previous presets in effect for the caller.
//
// The watcher runs its own goroutine; drain both channels from the game
// loop without blocking.
type PresetWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Presets
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewPresetWatcher watches the presets file at path. The file's directory
// is watched so editors that replace the file on save are handled.
func NewPresetWatcher(path string) (*PresetWatcher, error) {
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

	pw := &PresetWatcher{
		watcher: w,
		path:    abs,
		Updates: make(chan *Presets, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *PresetWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *PresetWatcher) run() {
	defer close(w.done)

	// Editors often save in several writes; reload once the file has been
	// quiet for presetDebounce.
	var timer *time.Timer
	var reload <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(presetDebounce)
			} else {
				timer.Reset(presetDebounce)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			p, err := LoadPresets(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			select {
			case w.Updates <- p:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *PresetWatcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
