package auth

import (
	"context"
	"fmt"
	"time"

	"feedbackboard/internal/cache"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

// SessionStoreInterface defines the server-side session record operations.
// A session the store does not know about is dead, so logout and account
// deletion can revoke tokens before they expire.
type SessionStoreInterface interface {
	Save(ctx context.Context, sessionID, username string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAll(ctx context.Context, username string) error
}

// SessionStore keeps session records in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a redis-backed session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Save records an active session with TTL and indexes it under its owner so
// RevokeAll can find it later.
func (s *SessionStore) Save(ctx context.Context, sessionID, username string, ttl time.Duration) error {
	if err := s.cache.Set(ctx, sessionKeyPrefix+sessionID, []byte(username), ttl); err != nil {
		return err
	}
	return s.cache.SAdd(ctx, userSessionsKeyPrefix+username, sessionID, ttl)
}

// Get returns the username bound to an active session.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return "", fmt.Errorf("session not found")
	}
	return string(data), nil
}

// Revoke removes a session record.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}

// RevokeAll removes every session record belonging to a user. Index entries
// for sessions that already expired delete harmlessly.
func (s *SessionStore) RevokeAll(ctx context.Context, username string) error {
	indexKey := userSessionsKeyPrefix + username
	sessionIDs, err := s.cache.SMembers(ctx, indexKey)
	if err != nil {
		return err
	}
	for _, id := range sessionIDs {
		if err := s.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
			return err
		}
	}
	return s.cache.Delete(ctx, indexKey)
}
