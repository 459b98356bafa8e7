// Package session holds the single source of truth for the per-owner
// authentication flag. Components never read the flag from scattered
// storage lookups; they ask this store, and interested subsystems
// subscribe to the anonymous-to-authenticated transition edge.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const keyPrefix = "colony:session:auth:"

// LoginSubscriber is invoked exactly once per anonymous-to-authenticated
// transition edge, before Login returns.
type LoginSubscriber func(ctx context.Context, owner string) error

// Store manages authentication flags in redis.
type Store struct {
	client rueidis.Client
	logger *zap.Logger

	mu          sync.RWMutex
	subscribers []LoginSubscriber
}

// NewStore creates a new session store.
func NewStore(client rueidis.Client, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		logger: logger.Named("session"),
	}
}

// OnLogin registers a subscriber for the login transition edge.
func (s *Store) OnLogin(fn LoginSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

// IsAuthenticated reports the current flag for an owner.
func (s *Store) IsAuthenticated(ctx context.Context, owner string) (bool, error) {
	resp := s.client.Do(ctx, s.client.B().Get().Key(keyPrefix+owner).Build())
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to read session flag: %w", err)
	}

	val, err := resp.ToString()
	if err != nil {
		return false, fmt.Errorf("failed to read session flag: %w", err)
	}

	return val == "true", nil
}

// Login sets the flag for an owner. Only the call that actually flips
// the flag is a transition edge; that call notifies subscribers before
// returning. Logging in while already authenticated is a no-op and
// never re-fires subscribers.
func (s *Store) Login(ctx context.Context, owner string) error {
	// SETNX makes edge detection atomic across concurrent logins.
	flipped, err := s.client.Do(ctx,
		s.client.B().Setnx().Key(keyPrefix+owner).Value("true").Build()).AsBool()
	if err != nil {
		return fmt.Errorf("failed to set session flag: %w", err)
	}

	if !flipped {
		return nil
	}

	s.logger.Info("Owner authenticated", zap.String("owner", owner))

	s.mu.RLock()
	subscribers := s.subscribers
	s.mu.RUnlock()

	for _, fn := range subscribers {
		if err := fn(ctx, owner); err != nil {
			// The edge is only consumed once every subscriber succeeds.
			// Release the flag so a retried login is a fresh edge and the
			// failed subscriber runs again.
			s.release(ctx, owner)

			return fmt.Errorf("login subscriber failed: %w", err)
		}
	}

	return nil
}

// release clears the flag after a failed subscriber so the owner is not
// left authenticated with the transition work half done.
func (s *Store) release(ctx context.Context, owner string) {
	err := s.client.Do(ctx, s.client.B().Del().Key(keyPrefix+owner).Build()).Error()
	if err != nil {
		s.logger.Error("Failed to release session flag after subscriber failure",
			zap.String("owner", owner),
			zap.Error(err))
	}
}

// Logout clears the flag. There is no reverse migration; logout only
// flips future writes back to the temporary partition.
func (s *Store) Logout(ctx context.Context, owner string) error {
	err := s.client.Do(ctx, s.client.B().Del().Key(keyPrefix+owner).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}

	s.logger.Info("Owner logged out", zap.String("owner", owner))

	return nil
}
