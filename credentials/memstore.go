package credentials

import (
	"sync"
	"time"
)

var _ Store = (*MemStore)(nil)

type memEntry struct {
	value     string
	expiresAt time.Time // zero = no expiry
}

// MemStore is an in-memory Store. It is safe for concurrent use and is the
// implementation tests inject in place of real cookie storage.
type MemStore struct {
	entries map[string]memEntry
	lock    sync.RWMutex
	nowFunc func() time.Time
}

type MemStoreOption func(*MemStore)

// WithNowFunc sets the clock (primarily for testing expiry).
func WithNowFunc(now func() time.Time) MemStoreOption {
	return func(s *MemStore) {
		s.nowFunc = now
	}
}

func NewMemStore(options ...MemStoreOption) *MemStore {
	s := &MemStore{
		entries: make(map[string]memEntry),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *MemStore) Get(key string) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && s.nowFunc().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (s *MemStore) Set(key, value string, opts ...SetOption) {
	var options entryOptions
	for _, opt := range opts {
		opt(&options)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	entry := memEntry{value: value}
	if options.ttl > 0 {
		entry.expiresAt = s.nowFunc().Add(options.ttl)
	}
	s.entries[key] = entry
}

func (s *MemStore) Delete(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, key)
}

func (s *MemStore) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries = make(map[string]memEntry)
}
