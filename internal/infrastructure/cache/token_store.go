package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrVerificationNotFound is returned when a verification token is unknown or expired
var ErrVerificationNotFound = errors.New("verification token not found")

const scanBatch = 100

func AccessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func RefreshTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("refresh_token:%s:%s", userID.String(), tokenID)
}

func VerificationKey(token string) string {
	return fmt.Sprintf("email_verification:%s", token)
}

// TokenStore keeps issued JWT ids and email verification tokens in Redis.
// A token id that is missing from the store counts as revoked.
type TokenStore struct {
	client redis.Cmdable
}

func NewTokenStore(client redis.Cmdable) *TokenStore {
	return &TokenStore{client: client}
}

// SaveTokenPair records a freshly issued access/refresh pair
func (s *TokenStore) SaveTokenPair(ctx context.Context, userID uuid.UUID, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, AccessTokenKey(userID, accessID), "valid", accessTTL)
		pipe.Set(ctx, RefreshTokenKey(userID, refreshID), "valid", refreshTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store token pair: %w", err)
	}
	return nil
}

func (s *TokenStore) IsAccessTokenActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.exists(ctx, AccessTokenKey(userID, tokenID))
}

func (s *TokenStore) IsRefreshTokenActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.exists(ctx, RefreshTokenKey(userID, tokenID))
}

// RevokeTokens deletes the given token ids. Empty ids are skipped.
func (s *TokenStore) RevokeTokens(ctx context.Context, userID uuid.UUID, accessID, refreshID string) error {
	var keys []string
	if accessID != "" {
		keys = append(keys, AccessTokenKey(userID, accessID))
	}
	if refreshID != "" {
		keys = append(keys, RefreshTokenKey(userID, refreshID))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// RevokeAll deletes every token issued to the user
func (s *TokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, pattern := range []string{AccessTokenKey(userID, "*"), RefreshTokenKey(userID, "*")} {
		iter := s.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan %s: %w", pattern, err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("revoke all tokens: %w", err)
		}
	}
	return nil
}

// SaveVerification maps a verification token to the user it confirms
func (s *TokenStore) SaveVerification(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, VerificationKey(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store verification token: %w", err)
	}
	return nil
}

// LookupVerification returns the user a verification token belongs to
func (s *TokenStore) LookupVerification(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := s.client.Get(ctx, VerificationKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrVerificationNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("load verification token: %w", err)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrVerificationNotFound
	}
	return userID, nil
}

func (s *TokenStore) DeleteVerification(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, VerificationKey(token)).Err(); err != nil {
		return fmt.Errorf("delete verification token: %w", err)
	}
	return nil
}

func (s *TokenStore) exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
