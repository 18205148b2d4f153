package cache

import (
	"context"
	"sync"
)

type memoryNamespace struct {
	records map[string]Record
	order   []string
}

// MemoryStore is a process-local Store guarded by a RWMutex
type MemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string]*memoryNamespace
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		namespaces: make(map[string]*memoryNamespace),
	}
}

// Get returns the record for key
func (s *MemoryStore) Get(ctx context.Context, namespace, key string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		return Record{}, ErrKeyNotFound
	}
	record, ok := ns.records[key]
	if !ok {
		return Record{}, ErrKeyNotFound
	}
	return record, nil
}

// Put stores record under key, keeping the key's original insertion position
func (s *MemoryStore) Put(ctx context.Context, namespace, key string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = &memoryNamespace{records: make(map[string]Record)}
		s.namespaces[namespace] = ns
	}
	if _, exists := ns.records[key]; !exists {
		ns.order = append(ns.order, key)
	}
	ns.records[key] = record
	return nil
}

// Keys lists the keys of namespace in insertion order
func (s *MemoryStore) Keys(ctx context.Context, namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil, nil
	}
	keys := make([]string, len(ns.order))
	copy(keys, ns.order)
	return keys, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
