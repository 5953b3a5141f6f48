package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const statePrefix = "oauth:state:"

// StateStore keeps single-use OAuth state values. It uses Redis when reachable
// and an in-process map otherwise.
type StateStore struct {
	redis *Redis
	now   func() time.Time

	mu    sync.Mutex
	local map[string]time.Time
}

func NewStateStore(r *Redis) *StateStore {
	return &StateStore{redis: r, now: time.Now, local: make(map[string]time.Time)}
}

func (s *StateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if s.redis.Available() {
		_, err := s.redis.SetIfNotExists(ctx, statePrefix+state, "1", ttl)
		if err == nil {
			return nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.local {
		if now.After(exp) {
			delete(s.local, k)
		}
	}
	s.local[state] = now.Add(ttl)
	return nil
}

// Consume reports whether state was issued and not yet used, removing it.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	if s.redis.Available() {
		err := s.redis.client.GetDel(ctx, statePrefix+state).Err()
		switch {
		case err == nil:
			return true, nil
		case !errors.Is(err, redis.Nil):
			s.redis.warnUnavailableOnce(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.local[state]
	if !ok {
		return false, nil
	}
	delete(s.local, state)
	return !s.now().After(exp), nil
}
