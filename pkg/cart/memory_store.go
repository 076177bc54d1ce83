package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps carts in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Item)}
}

func (s *MemoryStore) Items(_ context.Context, cartID string) ([]Item, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.carts[cartID]), nil
}

func (s *MemoryStore) TotalPrice(ctx context.Context, cartID string) (Money, error) {
	items, err := s.Items(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

func (s *MemoryStore) Add(_ context.Context, cartID string, item Item) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	if err := item.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartID] = upsert(s.carts[cartID], item)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, cartID string, itemID uuid.UUID) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := without(s.carts[cartID], itemID)
	if !ok {
		return ErrItemNotFound
	}
	s.carts[cartID] = items
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, cartID string) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}

// Healthcheck always succeeds; it mirrors RedisStore so both can be probed the same way.
func (s *MemoryStore) Healthcheck(context.Context) error {
	return nil
}
