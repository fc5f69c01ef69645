package assets

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"themed-todo/internal/logger"
	"themed-todo/internal/theme"
)

// DefaultDebounceDelay coalesces the burst of events an editor emits on save
const DefaultDebounceDelay = 150 * time.Millisecond

const watcherComponent = "AssetWatcher"

// Watcher reloads theme images when files under the assets root change.
// onChange runs on the watcher's timer goroutine; callers marshal UI work
// themselves (fyne.Do).
type Watcher struct {
	loader   *Loader
	logger   logger.Logger
	onChange func(theme.Theme)
	delay    time.Duration

	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	pending  map[theme.Theme]*pendingReload
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type pendingReload struct {
	timer *time.Timer
}

// NewWatcher creates a watcher for the loader's theme directories
func NewWatcher(loader *Loader, log logger.Logger, onChange func(theme.Theme)) *Watcher {
	return &Watcher{
		loader:   loader,
		logger:   log,
		onChange: onChange,
		delay:    DefaultDebounceDelay,
		pending:  make(map[theme.Theme]*pendingReload),
		stopChan: make(chan struct{}),
	}
}

// Start watches every existing theme directory. Missing directories are
// logged and skipped; if none exist the watcher stays idle.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	watched := 0
	for _, t := range theme.All() {
		dir := w.loader.ThemeDir(t)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			w.logger.Warning(watcherComponent, "theme directory not watched", map[string]interface{}{
				"dir": dir,
			})
			continue
		}
		if err := fw.Add(dir); err != nil {
			w.logger.Warning(watcherComponent, "failed to watch directory", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
			continue
		}
		watched++
	}

	if watched == 0 {
		fw.Close()
		w.logger.Info(watcherComponent, "no theme directories to watch", map[string]interface{}{
			"root": w.loader.Root(),
		})
		return nil
	}

	w.watcher = fw
	w.wg.Add(1)
	go w.eventLoop()

	w.logger.Info(watcherComponent, "watching assets", map[string]interface{}{
		"root":        w.loader.Root(),
		"directories": watched,
	})
	return nil
}

// Shutdown stops the event loop and pending reloads
func (w *Watcher) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stopChan)

		w.mu.Lock()
		for t, p := range w.pending {
			p.timer.Stop()
			delete(w.pending, t)
		}
		w.mu.Unlock()

		if w.watcher != nil {
			w.watcher.Close()
		}
		w.wg.Wait()
	})
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(watcherComponent, err, nil)

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}

	t, err := theme.ParseTheme(filepath.Base(filepath.Dir(event.Name)))
	if err != nil {
		return
	}

	w.logger.Debug(watcherComponent, "asset changed", map[string]interface{}{
		"path": event.Name,
		"op":   event.Op.String(),
	})
	w.queue(t)
}

// queue schedules a reload of t, restarting the delay on every new event
func (w *Watcher) queue(t theme.Theme) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return
	default:
	}

	if p, ok := w.pending[t]; ok && p.timer.Stop() {
		p.timer.Reset(w.delay)
		return
	}

	p := &pendingReload{}
	p.timer = time.AfterFunc(w.delay, func() {
		w.fire(t, p)
	})
	w.pending[t] = p
}

// fire drops the pending entry only while it is still p; a newer reload
// queued while this callback waited for the lock stays tracked.
func (w *Watcher) fire(t theme.Theme, p *pendingReload) {
	w.mu.Lock()
	if w.pending[t] == p {
		delete(w.pending, t)
	}
	w.mu.Unlock()

	select {
	case <-w.stopChan:
		return
	default:
	}

	w.loader.InvalidateTheme(t)
	w.logger.Info(watcherComponent, "theme assets reloaded", map[string]interface{}{
		"theme": t.String(),
	})
	if w.onChange != nil {
		w.onChange(t)
	}
}
