package middleware

import (
	"context"
	"net/http"

	userPort "keepit/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// SessionCookie نام کوکی حامل اعتبار session
const SessionCookie = "keepit_session"

const currentUserKey = "currentUser"

// SessionResolver تبدیل اعتبار session به شناسه کاربر
type SessionResolver interface {
	Resolve(ctx context.Context, credential string) (uint, error)
}

// UserFinder بازیابی کاربر برای identity هر درخواست
type UserFinder interface {
	GetUserByID(ctx context.Context, id uint) (*userPort.UserDTO, error)
}

// Identity روی هر درخواست کوکی session را به کاربر resolve می‌کند.
// هر شکستی (کوکی غایب، توکن نامعتبر، کاربر حذف‌شده) یعنی Anonymous؛ خطا نیست.
func Identity(sessions SessionResolver, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, err := c.Cookie(SessionCookie)
		if err == nil && credential != "" {
			if userID, err := sessions.Resolve(c.Request.Context(), credential); err == nil {
				if u, err := users.GetUserByID(c.Request.Context(), userID); err == nil {
					c.Set(currentUserKey, u)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser کاربر resolve شده درخواست جاری، یا nil برای Anonymous
func CurrentUser(c *gin.Context) *userPort.UserDTO {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*userPort.UserDTO); ok {
			return u
		}
	}
	return nil
}

// RequireAuth فقط کاربران واردشده؛ بقیه 403
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// AdminOnly فقط ادمین؛ قبل از اجرای handler بررسی می‌شود و
// هیچ اطلاعی درباره وجود resource هدف لو نمی‌رود
func AdminOnly(adminID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || u.ID != adminID {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
