package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AuthSession is the Redis-cached view of a logged-in user, keyed by the JWT
// id so logout can revoke a token before its expiry.
type AuthSession struct {
	TokenID   string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionRepository handles session-related Redis operations.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *AuthSession, ttl time.Duration) error
	GetSession(ctx context.Context, tokenID string) (*AuthSession, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *AuthSession, ttl time.Duration) error {
	if session.TokenID == "" {
		return fmt.Errorf("token ID cannot be empty")
	}
	if session.UserID == "" {
		return fmt.Errorf("user ID cannot be empty")
	}

	session.ExpiresAt = time.Now().Add(ttl)

	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(session.TokenID), sessionData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, tokenID string) (*AuthSession, error) {
	if tokenID == "" {
		return nil, fmt.Errorf("token ID cannot be empty")
	}

	sessionData, err := r.client.Get(ctx, r.sessionKey(tokenID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session AuthSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		r.DeleteSession(ctx, tokenID)
		return nil, fmt.Errorf("session expired")
	}

	return &session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return fmt.Errorf("token ID cannot be empty")
	}

	if err := r.client.Del(ctx, r.sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *sessionRepository) sessionKey(tokenID string) string {
	return "session:" + tokenID
}
