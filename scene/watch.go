package scene

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventKind says what sort of scene data changed on disk.
type EventKind int

const (
	// EventScene is an edit to a scene YAML file.
	EventScene EventKind = iota
	// EventScript is an edit to a lifecycle hook script. Scripts compile
	// into the scene sharing their base name, so Name is the scene to
	// reload either way.
	EventScript
)

// Event is one on-disk change to watched scene data.
type Event struct {
	Path string
	Name string
	Kind EventKind
}

// Watcher reports edits to on-disk scene YAML and hook scripts so a running
// game can hot-reload them.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Event
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Event, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			ev, ok := classifyEvent(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			w.Events <- ev
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// classifyEvent maps a changed path to the scene it belongs to. Editor
// droppings and anything else in the watched directories are ignored.
func classifyEvent(path string) (Event, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return Event{Path: path, Name: name, Kind: EventScene}, true
	case ".tengo":
		return Event{Path: path, Name: name, Kind: EventScript}, true
	}
	return Event{}, false
}
