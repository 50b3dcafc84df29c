package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the file must stay quiet before it is reloaded, so a
// truncate followed by a write is read once.
const settle = 50 * time.Millisecond

// Watcher reloads a settings file whenever it is written and delivers each
// new valid value on Changes. Parse failures go to Errors and the previous
// value stays in effect.
type Watcher struct {
	Changes <-chan Config
	Errors  <-chan error

	fw      *fsnotify.Watcher
	path    string
	changes chan Config
	errs    chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors that
// replace the file by renaming are picked up too. last is the value already
// in use; reloads equal to it are not delivered.
func Watch(path string, last Config) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{
		fw:      fw,
		path:    abs,
		changes: make(chan Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.Changes = w.changes
	w.Errors = w.errs
	w.wg.Add(1)
	go w.loop(last)
	return w, nil
}

func (w *Watcher) loop(last Config) {
	defer w.wg.Done()
	defer close(w.changes)
	defer close(w.errs)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
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
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				timer.Reset(settle)
			}
		case <-timer.C:
			c, err := Load(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			if reflect.DeepEqual(c, last) {
				continue
			}
			last = c
			select {
			case w.changes <- c:
			case <-w.done:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.sendErr(fmt.Errorf("config: watch: %w", err))
		}
	}
}

// sendErr drops the error if the previous one was not consumed yet.
func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}

// Close stops watching. Changes and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}
