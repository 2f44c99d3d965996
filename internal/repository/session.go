package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/go-redis/redis/v8"
)

const refreshKeyPrefix = "ritmo:refresh:"

// SessionStore keeps issued refresh tokens in Redis until they are used,
// revoked or expired.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, refreshToken, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("save session: non-positive ttl %s", ttl)
	}
	if err := s.client.Set(ctx, refreshKeyPrefix+refreshToken, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Consume returns the owner of the token and deletes it in one step, so a
// refresh token works exactly once.
func (s *SessionStore) Consume(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.client.GetDel(ctx, refreshKeyPrefix+refreshToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("consume session: %w", err)
	}
	return userID, nil
}

func (s *SessionStore) Revoke(ctx context.Context, refreshToken string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+refreshToken).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
