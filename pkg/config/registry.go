package config

import (
	"fmt"
	"sync"
)

// CascadeRegistry stores cascade configurations in memory with thread-safe access.
type CascadeRegistry struct {
	cascades map[string]*CascadeConfig
	mu       sync.RWMutex
}

// NewCascadeRegistry creates a new cascade registry
func NewCascadeRegistry(cascades map[string]*CascadeConfig) *CascadeRegistry {
	copied := make(map[string]*CascadeConfig, len(cascades))
	for k, v := range cascades {
		copied[k] = v
	}
	return &CascadeRegistry{
		cascades: copied,
	}
}

// Get retrieves a cascade configuration by ID (thread-safe)
func (r *CascadeRegistry) Get(cascadeID string) (*CascadeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cascade, exists := r.cascades[cascadeID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCascadeNotFound, cascadeID)
	}
	return cascade, nil
}

// GetAll returns all cascade configurations (thread-safe, returns copy)
func (r *CascadeRegistry) GetAll() map[string]*CascadeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*CascadeConfig, len(r.cascades))
	for k, v := range r.cascades {
		result[k] = v
	}
	return result
}

// Has checks if a cascade exists in the registry (thread-safe)
func (r *CascadeRegistry) Has(cascadeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.cascades[cascadeID]
	return exists
}

// Len returns the number of cascades in the registry (thread-safe)
func (r *CascadeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cascades)
}
