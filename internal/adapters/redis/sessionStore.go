package redis

import (
	"context"
	"strconv"
	"time"

	"keepit/internal/core/session"
	"keepit/internal/shared"

	"github.com/go-redis/redis/v8"
)

// SessionStoreRedis نگهداری sessionهای زنده در Redis با TTL
type SessionStoreRedis struct {
	Client *redis.Client
}

func NewSessionStoreRedis(client *redis.Client) *SessionStoreRedis {
	return &SessionStoreRedis{
		Client: client,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Save ثبت session با طول عمر مشخص؛ Redis خودش sessionهای منقضی را پاک می‌کند
func (r *SessionStoreRedis) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	return r.Client.Set(ctx, sessionKey(s.ID), strconv.FormatUint(uint64(s.UserID), 10), ttl).Err()
}

// Get بازیابی شناسه کاربر؛ session ناموجود یا منقضی shared.ErrorNotFound
func (r *SessionStoreRedis) Get(ctx context.Context, sessionID string) (uint, error) {
	val, err := r.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, shared.ErrorNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, shared.ErrorNotFound
	}
	return uint(userID), nil
}

func (r *SessionStoreRedis) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKey(sessionID)).Err()
}
