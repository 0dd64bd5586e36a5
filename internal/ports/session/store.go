package session

import (
	"context"
	"time"

	"keepit/internal/core/session"
)

// SessionStore پورت برای نگهداری sessionهای زنده سمت سرور.
// حذف کلید یعنی باطل شدن session حتی اگر توکن هنوز معتبر باشد.
type SessionStore interface {
	Save(ctx context.Context, s *session.Session, ttl time.Duration) error
	// Get در صورت نبودن session کلید shared.ErrorNotFound برمی‌گرداند
	Get(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}
