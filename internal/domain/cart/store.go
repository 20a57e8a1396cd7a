// internal/domain/cart/store.go
package cart

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidSession = errors.New("cart: invalid session id")
)

// Store owns every live cart, keyed by session id.
//
// It is an explicitly constructed, injected object rather than ambient global
// state, so tests can instantiate isolated instances. All state is in process
// memory; there is no persistence and no cross-instance synchronization.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for sessionID, creating an empty one on first use.
func (s *Store) Get(sessionID string) (*Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sid]
	if !ok {
		c = &Cart{Items: []Item{}}
		s.carts[sid] = c
	}
	return c, nil
}

// With runs fn against the cart for sessionID under the store lock and
// returns a copy of the resulting cart. Handlers use this so a mutation and
// the snapshot they respond with are one atomic step.
func (s *Store) With(sessionID string, fn func(c *Cart) error) (Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return Cart{}, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sid]
	if !ok {
		c = &Cart{Items: []Item{}}
		s.carts[sid] = c
	}
	if fn != nil {
		if err := fn(c); err != nil {
			return Cart{}, err
		}
	}
	return snapshot(c), nil
}

// Drop removes the cart for sessionID entirely.
func (s *Store) Drop(sessionID string) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}

func snapshot(c *Cart) Cart {
	out := Cart{
		Items:  make([]Item, len(c.Items)),
		IsOpen: c.IsOpen,
	}
	copy(out.Items, c.Items)
	return out
}
