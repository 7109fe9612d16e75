package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// The count and its expiry move in one atomic step; an interrupted increment
// can never leave a counter without a deadline.
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

// RedisStore implements Store on a shared Redis client, so the window counts
// hold across server instances.
type RedisStore struct {
	db redis.UniversalClient
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store over an established Redis client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{db: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	reply, err := incrScript.Run(ctx, s.db, []string{keyPrefix + key}, window.Milliseconds()).Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("increment rate limit counter: %w", err)
	}
	if len(reply) != 2 {
		return 0, 0, fmt.Errorf("increment rate limit counter: reply has %d elements", len(reply))
	}

	count, countOK := reply[0].(int64)
	ttlMillis, ttlOK := reply[1].(int64)
	if !countOK || !ttlOK {
		return 0, 0, fmt.Errorf("increment rate limit counter: reply types %T, %T", reply[0], reply[1])
	}
	if ttlMillis < 0 {
		ttlMillis = window.Milliseconds()
	}

	return count, time.Duration(ttlMillis) * time.Millisecond, nil
}
