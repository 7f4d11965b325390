package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Overlay is a small set of knobs an operator can flip without
// restarting the server: log verbosity and (between hands only) a
// starting-stack override for newly joining seats. It is re-read from
// disk whenever the backing file changes.
type Overlay struct {
	mu            sync.RWMutex
	verbose       bool
	startingStack *int64

	watcher *fsnotify.Watcher
}

type overlayFile struct {
	Verbose               bool   `json:"verbose"`
	StartingStackOverride *int64 `json:"starting_stack_override"`
}

// WatchOverlay loads path immediately, then starts a background watch
// that reloads it on every write. path == "" disables the overlay
// entirely and returns a no-op Overlay.
func WatchOverlay(path string) (*Overlay, error) {
	o := &Overlay{}
	if path == "" {
		return o, nil
	}

	o.reload(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	o.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					o.reload(path)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[config] overlay watch error: %v", err)
			}
		}
	}()

	return o, nil
}

func (o *Overlay) reload(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[config] overlay read %s: %v", path, err)
		return
	}
	var f overlayFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("[config] overlay parse %s: %v", path, err)
		return
	}
	o.mu.Lock()
	o.verbose = f.Verbose
	o.startingStack = f.StartingStackOverride
	o.mu.Unlock()
	log.Printf("[config] overlay reloaded from %s", path)
}

// Verbose reports the current log-verbosity knob.
func (o *Overlay) Verbose() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.verbose
}

// StartingStackOverride returns the current override, if any.
func (o *Overlay) StartingStackOverride() (int64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.startingStack == nil {
		return 0, false
	}
	return *o.startingStack, true
}

// Close stops the background watch, if one is running.
func (o *Overlay) Close() error {
	if o.watcher == nil {
		return nil
	}
	return o.watcher.Close()
}
