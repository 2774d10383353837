package customer

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("customer not found")
)

// Repository is the read-only identity contract. Lookup is exact-match on
// email as loaded; no normalization, no partial matching.
type Repository interface {
	Exists(email string) bool
	GetByEmail(email string) (Customer, error)
}

// InMemoryRepository holds the identity snapshot loaded at startup.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]Customer
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{byEmail: make(map[string]Customer, len(seed))}
	for _, c := range seed {
		r.byEmail[c.Email] = c
	}
	return r
}

func (r *InMemoryRepository) Exists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok
}

func (r *InMemoryRepository) GetByEmail(email string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[email]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}
