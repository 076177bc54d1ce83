package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "cart:"
	defaultTTL       = 7 * 24 * time.Hour
	maxTxRetries     = 5
)

// RedisStore keeps each cart as a JSON array under one key. Writes run in a
// WATCH/MULTI transaction so concurrent updates to one cart do not lose items.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix sets the prefix prepended to cart IDs. Default "cart:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// WithTTL sets how long an untouched cart is kept. Default 7 days.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       defaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(cartID string) string {
	return s.keyPrefix + cartID
}

func (s *RedisStore) Items(ctx context.Context, cartID string) ([]Item, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	return s.read(ctx, s.client, s.key(cartID))
}

func (s *RedisStore) TotalPrice(ctx context.Context, cartID string) (Money, error) {
	items, err := s.Items(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

func (s *RedisStore) Add(ctx context.Context, cartID string, item Item) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	if err := item.validate(); err != nil {
		return err
	}
	return s.update(ctx, cartID, func(items []Item) ([]Item, error) {
		return upsert(items, item), nil
	})
}

func (s *RedisStore) Remove(ctx context.Context, cartID string, itemID uuid.UUID) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	return s.update(ctx, cartID, func(items []Item) ([]Item, error) {
		rest, ok := without(items, itemID)
		if !ok {
			return nil, ErrItemNotFound
		}
		return rest, nil
	})
}

func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(cartID)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// Healthcheck pings the Redis server.
func (s *RedisStore) Healthcheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// getter is satisfied by both the client and a WATCH transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) read(ctx context.Context, c getter, key string) ([]Item, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Join(ErrStoreFailure, fmt.Errorf("decode cart %s: %w", key, err))
	}
	return items, nil
}

func (s *RedisStore) update(ctx context.Context, cartID string, fn func([]Item) ([]Item, error)) error {
	key := s.key(cartID)

	txf := func(tx *redis.Tx) error {
		items, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}
		items, err = fn(items)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(items)
		if err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrItemNotFound) && !errors.Is(err, ErrStoreFailure) {
			return errors.Join(ErrStoreFailure, err)
		}
		return err
	}
	return fmt.Errorf("%w: cart %s: too many concurrent updates", ErrStoreFailure, cartID)
}
