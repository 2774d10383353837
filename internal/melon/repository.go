package melon

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("melon not found")
)

// Repository is the read-only catalog contract. The catalog is populated once
// at startup and never changes, so there are no mutation operations.
type Repository interface {
	// List returns every melon in load order.
	List() []Melon
	// GetByID returns the melon for the given id, or ErrNotFound. Callers
	// must not substitute a zero-valued melon for a miss.
	GetByID(id string) (Melon, error)
}

// InMemoryRepository holds the catalog snapshot. The slice keeps load order
// for List; the index map serves GetByID lookups.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Melon
	index   map[string]int
}

func NewInMemoryRepository(seed []Melon) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Melon, 0, len(seed)),
		index:   make(map[string]int, len(seed)),
	}

	for _, m := range seed {
		if _, ok := r.index[m.ID]; ok {
			// last record wins on duplicate ids, matching map-load semantics
			r.storage[r.index[m.ID]] = m
			continue
		}
		r.index[m.ID] = len(r.storage)
		r.storage = append(r.storage, m)
	}

	return r
}

func (r *InMemoryRepository) List() []Melon {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Melon, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Melon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Melon{}, ErrNotFound
	}
	return r.storage[i], nil
}
