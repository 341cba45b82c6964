package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	sessionKeyPrefix = "session:"
	defaultTTL       = 24 * time.Hour
	loadTimeout      = 2 * time.Second
)

// RedisStore manages session state in Redis as JSON.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	sf  singleflight.Group
}

// NewRedisStore returns a new session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Load returns the session for id. Concurrent loads of one id share a
// single round trip; each caller decodes its own copy. The shared fetch is
// detached from the caller's cancellation so one disconnecting client does
// not fail the others waiting on it.
func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	v, err, _ := s.sf.Do(id, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		b, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("redis get session: %w", err)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	sess, err := decode(v.([]byte))
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

// Save stores the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, id string, sess *Session) error {
	b, err := encode(sess)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete removes a session by ID.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
