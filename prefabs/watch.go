package prefabs

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce swallows the burst of events editors emit for one save.
const reloadDebounce = 100 * time.Millisecond

// Change is one prefab or script file touched on disk.
type Change struct {
	Path string
	Kind Kind
}

// Watcher reports prefab and script files that changed on disk so the demo
// can reload them while running.
type Watcher struct {
	Events chan Change
	Errors chan error

	fs       *fsnotify.Watcher
	debounce debouncer
	closeCh  chan struct{}
	once     sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		fs:       fw,
		debounce: debouncer{window: reloadDebounce, last: make(map[string]time.Time)},
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

// run owns Events and Errors and closes both when it exits.
func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := w.accept(event, time.Now())
			if !ok {
				continue
			}
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// keep only the first pending error
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) accept(event fsnotify.Event, now time.Time) (Change, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return Change{}, false
	}
	kind := KindOf(event.Name)
	if kind == KindUnknown || !w.debounce.ready(event.Name, now) {
		return Change{}, false
	}
	return Change{Path: event.Name, Kind: kind}, true
}

type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

// ready reports whether name has been quiet for the window and records now.
func (d debouncer) ready(name string, now time.Time) bool {
	if t, ok := d.last[name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[name] = now
	return true
}
