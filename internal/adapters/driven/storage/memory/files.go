package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interfaces.
var (
	_ driven.FileReader  = (*FileStore)(nil)
	_ driven.FileWatcher = (*FileStore)(nil)
)

// FileStore is an in-memory set of study files.
// Writing a file notifies anyone watching it.
type FileStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	watchers map[string][]chan domain.FileEvent
	reads    int
}

// NewFileStore creates an empty file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files:    make(map[string][]byte),
		watchers: make(map[string][]chan domain.FileEvent),
	}
}

// ReadFile returns a copy of the file content.
func (s *FileStore) ReadFile(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++

	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, domain.ErrFileNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores content at path and notifies watchers.
func (s *FileStore) WriteFile(path string, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = []byte(content)
	s.notify(domain.FileEvent{Path: path, Type: domain.FileChanged})
}

// Remove deletes path and notifies watchers.
func (s *FileStore) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	s.notify(domain.FileEvent{Path: path, Type: domain.FileRemoved})
}

// Reads returns how many times ReadFile was called.
func (s *FileStore) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Watch delivers events for path until ctx is cancelled.
func (s *FileStore) Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error) {
	ch := make(chan domain.FileEvent, 8)

	s.mu.Lock()
	s.watchers[path] = append(s.watchers[path], ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		chans := s.watchers[path]
		for i, c := range chans {
			if c == ch {
				s.watchers[path] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

// notify sends ev to watchers without blocking (caller must hold lock).
func (s *FileStore) notify(ev domain.FileEvent) {
	for _, ch := range s.watchers[ev.Path] {
		select {
		case ch <- ev:
		default:
		}
	}
}
