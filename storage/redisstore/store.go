package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lilknig/ember-api/pkg/auth"
)

const stateKeyPrefix = "oauth2:state:"

// StateStore keeps one-time OAuth2 state tokens in Redis. Expiry is handled
// by the key TTL; consumption deletes the key atomically, so a replayed
// callback never finds the token a second time.
type StateStore struct {
	db redis.UniversalClient
}

var _ auth.StateStore = (*StateStore)(nil)

// NewStateStore creates a state store over an established Redis client.
func NewStateStore(client redis.UniversalClient) *StateStore {
	return &StateStore{db: client}
}

func (s *StateStore) Store(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.db.Set(ctx, stateKeyPrefix+state, "1", ttl).Err(); err != nil {
		return fmt.Errorf("store oauth2 state: %w", err)
	}
	return nil
}

func (s *StateStore) Consume(ctx context.Context, state string) error {
	err := s.db.GetDel(ctx, stateKeyPrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return auth.ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("consume oauth2 state: %w", err)
	}
	return nil
}
