package ds

import "sync"

// SyncMap is a generic map safe for concurrent use. Reads take the read
// lock, so lookups from many goroutines do not contend with each other.
type SyncMap[K comparable, V any] struct {
	Map map[K]V
	mu  sync.RWMutex
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{
		Map: make(map[K]V),
	}
}

func (s *SyncMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.Map[key]
	return val, ok
}

func (s *SyncMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Map[key] = value
}

func (s *SyncMap[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Map, key)
}

// Keys returns a snapshot of the current key set.
func (s *SyncMap[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.Map))
	for k := range s.Map {
		keys = append(keys, k)
	}
	return keys
}
