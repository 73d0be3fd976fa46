// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/colorpicker/picker"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a palette file into a picker whenever it changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// Queue passes functions from other goroutines to the thread that
// handles input, which runs them with [Queue.Run].
type Queue chan func()

// NewQueue returns a queue holding up to size pending functions.
func NewQueue(size int) Queue {
	return make(Queue, size)
}

// Post adds fun to the queue. It never blocks: if the queue is full,
// fun is dropped and Post returns false.
func (q Queue) Post(fun func()) bool {
	select {
	case q <- fun:
		return true
	default:
		slog.Warn("palette: queue full, dropping reload")
		return false
	}
}

// Run runs the pending functions and returns how many it ran.
func (q Queue) Run() int {
	n := 0
	for {
		select {
		case fun := <-q:
			fun()
			n++
		default:
			return n
		}
	}
}

// Watch watches the given palette file and loads it into the picker
// every time it is written. The picker is not safe for concurrent use,
// so loads are passed to post, which must run them on the thread that
// handles input. post must not block, or [Watcher.Close] waits on it;
// [Queue.Post] does not. The directory of the file is watched so that
// editors that replace the file are handled too.
func Watch(filename string, p *picker.Picker, post func(func())) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, done: make(chan struct{})}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				pal, err := Open(filename)
				if err != nil {
					slog.Error("palette: reloading", "file", filename, "err", err)
					continue
				}
				post(func() {
					p.LoadPalette(pal.Name, filename, pal.Colors)
				})
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				slog.Error("palette: watching", "file", filename, "err", err)
			}
		}
	}()
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
