package checkpoint

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the in-memory Store used by runner tests.
type MemoryStore struct {
	mu          sync.RWMutex
	checkpoints map[string]*Checkpoint
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{checkpoints: make(map[string]*Checkpoint)}
}

func (s *MemoryStore) Create(_ context.Context, cp *Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.checkpoints[cp.ID]; exists {
		return fmt.Errorf("checkpoint %q already exists", cp.ID)
	}
	clone := *cp
	s.checkpoints[cp.ID] = &clone
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp, ok := s.checkpoints[id]
	if !ok {
		return nil, fmt.Errorf("checkpoint %q not found", id)
	}
	clone := *cp
	return &clone, nil
}

func (s *MemoryStore) List(_ context.Context, filter Filter) ([]*Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Checkpoint
	for _, cp := range s.checkpoints {
		if filter.SessionID != "" && cp.SessionID != filter.SessionID {
			continue
		}
		if filter.Status != "" && cp.Status != filter.Status {
			continue
		}
		clone := *cp
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *MemoryStore) SetResponse(_ context.Context, id string, response map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, ok := s.checkpoints[id]
	if !ok {
		return false, fmt.Errorf("checkpoint %q not found", id)
	}
	if cp.Status != StatusPending {
		return false, nil
	}
	now := time.Now().UTC()
	cp.Status = StatusResponded
	cp.Response = response
	cp.RespondedAt = &now
	return true, nil
}

func (s *MemoryStore) SetStatus(_ context.Context, id string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, ok := s.checkpoints[id]
	if !ok {
		return fmt.Errorf("checkpoint %q not found", id)
	}
	if cp.Status == StatusPending {
		cp.Status = status
	}
	return nil
}
