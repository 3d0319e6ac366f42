package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/albumpress/cli/pkg/scanner"
	"github.com/fsnotify/fsnotify"
)

// Watcher observes an album root and invokes a callback with the affected
// album directory once photo changes have settled.
type Watcher struct {
	root     string
	onAlbum  func(dir string)
	watcher  *fsnotify.Watcher
	debounce *DebounceQueue

	mu      sync.Mutex
	watched map[string]bool
	queue   chan string
	done    chan struct{}
}

// New creates a Watcher for root. onAlbum is called with the directory that
// changed (the root itself or one of its subdirectories) after quiet has
// elapsed without further events.
func New(root string, quiet time.Duration, onAlbum func(dir string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		root:     root,
		onAlbum:  onAlbum,
		watcher:  fsWatcher,
		debounce: NewDebounceQueue(quiet),
		watched:  make(map[string]bool),
		queue:    make(chan string, 16),
		done:     make(chan struct{}),
	}, nil
}

// Start watches the root and its immediate subdirectories and begins
// processing events.
func (w *Watcher) Start() error {
	if err := w.watchDir(w.root); err != nil {
		return err
	}
	for _, sub := range scanner.ListSubdirectories(w.root) {
		// Skip subdirectories we can't watch rather than failing the
		// whole session.
		_ = w.watchDir(filepath.Join(w.root, sub))
	}

	go w.eventLoop()
	go w.republishLoop()
	return nil
}

// Stop cancels pending republishes and stops watching.
func (w *Watcher) Stop() {
	close(w.done)
	w.debounce.Stop()
	w.watcher.Close()
}

func (w *Watcher) watchDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.watched[dir] = true
	return nil
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watch error: %v\n", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// The entry may already be gone again.
		return
	}

	if info.IsDir() {
		// A new album directory: watch it, a republish fires once photos
		// land in it.
		if filepath.Dir(event.Name) == w.root {
			_ = w.watchDir(event.Name)
		}
		return
	}

	if !scanner.IsPhotoFile(event.Name) {
		return
	}

	albumDir := filepath.Dir(event.Name)
	w.debounce.Add(albumDir, w.enqueue)
}

// enqueue hands a settled album directory to the republish worker. Debounce
// timers fire on their own goroutines, so without this handoff two albums
// changing together would republish concurrently.
func (w *Watcher) enqueue(dir string) {
	select {
	case <-w.done:
	case w.queue <- dir:
	}
}

// republishLoop runs republishes one at a time, in arrival order.
func (w *Watcher) republishLoop() {
	for {
		select {
		case <-w.done:
			return
		case dir := <-w.queue:
			w.onAlbum(dir)
		}
	}
}
