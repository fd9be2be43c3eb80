package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	runs     map[string]store.Run
	order    []string // run IDs in insertion order
	unigrams map[string]map[string]int64
	cooccurs map[string]map[pair.Pair]int64
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:     make(map[string]store.Run),
		unigrams: make(map[string]map[string]int64),
		cooccurs: make(map[string]map[pair.Pair]int64),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun implements store.Store.
func (s *Store) SaveRun(ctx context.Context, run store.Run, unigram map[string]int64, cooccur map[pair.Pair]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.ID]; !ok {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run

	uni := make(map[string]int64, len(unigram))
	for tok, n := range unigram {
		uni[tok] = n
	}
	s.unigrams[run.ID] = uni

	coo := make(map[pair.Pair]int64, len(cooccur))
	for p, n := range cooccur {
		coo[p] = n
	}
	s.cooccurs[run.ID] = coo
	return nil
}

// GetRun implements store.Store.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return run, nil
}

// LatestRun implements store.Store.
func (s *Store) LatestRun(ctx context.Context) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return store.Run{}, internalerr.ErrNotFound
	}
	return s.runs[s.order[len(s.order)-1]], nil
}

// LoadUnigram implements store.Store.
func (s *Store) LoadUnigram(ctx context.Context, runID string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.unigrams[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	out := make(map[string]int64, len(table))
	for tok, n := range table {
		out[tok] = n
	}
	return out, nil
}

// LoadCooccur implements store.Store.
func (s *Store) LoadCooccur(ctx context.Context, runID string) (map[pair.Pair]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.cooccurs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	out := make(map[pair.Pair]int64, len(table))
	for p, n := range table {
		out[p] = n
	}
	return out, nil
}
