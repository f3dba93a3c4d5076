package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/advent/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Answer
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Answer),
	}
}

// Save persists the answer in memory.
func (s *Store) Save(ctx context.Context, key string, answer domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = answer
	return nil
}

// Load retrieves the answer from memory.
func (s *Store) Load(ctx context.Context, key string) (domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answer, ok := s.data[key]
	if !ok {
		return domain.Answer{}, domain.ErrResultNotFound
	}
	return answer, nil
}

// Delete removes the answer.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns stored keys in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
