package glyphboard

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the default debounce interval for document watch
// events.
const DefaultWatchDebounce = 500 * time.Millisecond

// FileStore persists snapshots to a single file. Saves are atomic
// (write-temp-then-rename) so a watcher or a crashed process never observes
// a half-written document.
type FileStore struct {
	path string

	mu        sync.Mutex
	lastSaved []byte // suppresses watch echoes of our own writes
}

// NewFileStore creates a store backed by the given path. The file need not
// exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the snapshot atomically.
func (s *FileStore) Save(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.mu.Lock()
	s.lastSaved = append(s.lastSaved[:0], data...)
	s.mu.Unlock()
	return nil
}

// Load reads the last saved snapshot.
func (s *FileStore) Load() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Watch invokes onChange with the file contents whenever the document is
// modified by another process. Writes made through Save are filtered out.
// onChange runs on the watcher goroutine; hosts must marshal back onto
// their own event loop before touching the board. The returned stop
// function blocks until the watcher has shut down.
func (s *FileStore) Watch(debounce time.Duration, onChange func([]byte), onError func(error)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Watch the directory, not the file: editors and our own Save replace
	// the file by rename, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	stopCh := make(chan struct{})
	stoppedCh := make(chan struct{})

	go s.watchLoop(watcher, debounce, onChange, onError, stopCh, stoppedCh)

	return func() {
		close(stopCh)
		<-stoppedCh
	}, nil
}

func (s *FileStore) watchLoop(watcher *fsnotify.Watcher, debounce time.Duration,
	onChange func([]byte), onError func(error), stopCh, stoppedCh chan struct{}) {
	defer close(stoppedCh)
	defer watcher.Close()

	base := filepath.Base(s.path)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceTimer = nil
			debounceCh = nil
			data, err := os.ReadFile(s.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			s.mu.Lock()
			echo := bytes.Equal(data, s.lastSaved)
			s.mu.Unlock()
			if echo {
				continue
			}
			onChange(data)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
