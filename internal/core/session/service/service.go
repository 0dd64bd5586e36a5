package sessionapp

import (
	"context"
	"errors"
	"strconv"
	"time"

	sessionEntity "keepit/internal/core/session"
	sessionPort "keepit/internal/ports/session"
	"keepit/internal/shared"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
)

// SessionService صدور، resolve و باطل کردن اعتبار session.
// مقدار کوکی یک JWT امضاشده است و شناسه session آن باید سمت سرور زنده باشد؛
// logout کلید را حذف می‌کند و توکن همان لحظه بی‌اعتبار می‌شود.
type SessionService struct {
	Store  sessionPort.SessionStore
	jwtKey []byte
	ttl    time.Duration
}

func NewSessionService(store sessionPort.SessionStore, jwtKey []byte, ttl time.Duration) *SessionService {
	return &SessionService{
		Store:  store,
		jwtKey: jwtKey,
		ttl:    ttl,
	}
}

// Issue صدور اعتبار session برای کاربر
func (s *SessionService) Issue(ctx context.Context, userID uint) (string, error) {
	now := time.Now()
	sess := &sessionEntity.Session{
		ID:       uuid.Must(uuid.NewV4()).String(),
		UserID:   userID,
		IssuedAt: now,
	}

	if err := s.Store.Save(ctx, sess, s.ttl); err != nil {
		return "", err
	}

	claims := &jwt.StandardClaims{
		Id:        sess.ID,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    "keepit",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// Resolve تبدیل اعتبار session به شناسه کاربر.
// هر شکستی (امضای خراب، انقضا، session حذف‌شده) shared.ErrorInvalidToken است.
func (s *SessionService) Resolve(ctx context.Context, credential string) (uint, error) {
	claims, err := s.parse(credential)
	if err != nil {
		return 0, shared.ErrorInvalidToken
	}

	// شناسه session باید هنوز سمت سرور زنده باشد
	userID, err := s.Store.Get(ctx, claims.Id)
	if err != nil {
		return 0, shared.ErrorInvalidToken
	}

	subject, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || uint(subject) != userID {
		return 0, shared.ErrorInvalidToken
	}

	return userID, nil
}

// Revoke باطل کردن session؛ اعتبار نامعتبر یا از قبل باطل‌شده خطا نیست
func (s *SessionService) Revoke(ctx context.Context, credential string) error {
	claims, err := s.parse(credential)
	if err != nil {
		return nil
	}

	if err := s.Store.Delete(ctx, claims.Id); err != nil && !errors.Is(err, shared.ErrorNotFound) {
		return err
	}
	return nil
}

func (s *SessionService) parse(credential string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, shared.ErrorInvalidToken
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid || claims.Id == "" {
		return nil, shared.ErrorInvalidToken
	}
	return claims, nil
}
