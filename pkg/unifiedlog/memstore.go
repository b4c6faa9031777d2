package unifiedlog

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store for tests and single-process dev runs.
type MemoryStore struct {
	mu   sync.RWMutex
	rows []*Row
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) WriteRows(_ context.Context, rows []*Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		clone := *r
		s.rows = append(s.rows, &clone)
	}
	return nil
}

func (s *MemoryStore) Query(_ context.Context, f Filter) ([]*Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Row
	for _, r := range s.rows {
		if !matches(r, f) {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *MemoryStore) MarkWinners(_ context.Context, sessionID, phaseName string, soundingIndex int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.rows {
		if r.SessionID != sessionID {
			continue
		}
		if r.PhaseName == nil || *r.PhaseName != phaseName {
			continue
		}
		if r.SoundingIndex == nil || *r.SoundingIndex != soundingIndex {
			continue
		}
		r.IsWinner = Ptr(true)
		count++
	}
	return count, nil
}

func (s *MemoryStore) PriorWinningRewrites(_ context.Context, speciesHash string, limit int) ([]*Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Row
	for _, r := range s.rows {
		if r.NodeType != NodeTypeMutation {
			continue
		}
		if r.SpeciesHash == nil || *r.SpeciesHash != speciesHash {
			continue
		}
		if r.IsWinner == nil || !*r.IsWinner {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matches(r *Row, f Filter) bool {
	if f.SessionID != "" && r.SessionID != f.SessionID {
		return false
	}
	if f.TraceID != "" && r.TraceID != f.TraceID {
		return false
	}
	if f.PhaseName != "" && (r.PhaseName == nil || *r.PhaseName != f.PhaseName) {
		return false
	}
	if f.NodeType != "" && r.NodeType != f.NodeType {
		return false
	}
	if f.Role != "" && r.Role != f.Role {
		return false
	}
	if f.SoundingIndex != nil && (r.SoundingIndex == nil || *r.SoundingIndex != *f.SoundingIndex) {
		return false
	}
	if f.IsWinner != nil {
		winner := r.IsWinner != nil && *r.IsWinner
		if winner != *f.IsWinner {
			return false
		}
	}
	if f.SpeciesHash != "" && (r.SpeciesHash == nil || *r.SpeciesHash != f.SpeciesHash) {
		return false
	}
	if !f.Since.IsZero() && r.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && r.Timestamp.After(f.Until) {
		return false
	}
	return true
}
