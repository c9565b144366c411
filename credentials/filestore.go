package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var _ Store = (*FileStore)(nil)

type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// FileStore persists credentials as a JSON file, the way a CLI keeps a token
// cache between runs. Writes are best-effort: a failed save keeps the
// in-memory view so the current process still works.
type FileStore struct {
	path    string
	entries map[string]fileEntry
	lock    sync.Mutex
	nowFunc func() time.Time
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]fileEntry),
		nowFunc: time.Now,
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("[NewFileStore] failed to load %q: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.entries)
}

func (s *FileStore) save() {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Get(key string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !entry.ExpiresAt.IsZero() && s.nowFunc().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Value, true
}

func (s *FileStore) Set(key, value string, opts ...SetOption) {
	var options entryOptions
	for _, opt := range opts {
		opt(&options)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	entry := fileEntry{Value: value}
	if options.ttl > 0 {
		entry.ExpiresAt = s.nowFunc().Add(options.ttl)
	}
	s.entries[key] = entry
	s.save()
}

func (s *FileStore) Delete(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, key)
	s.save()
}

func (s *FileStore) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries = make(map[string]fileEntry)
	s.save()
}
