package session

import "time"

// Session یک اعتبار ورود صادرشده برای کاربر
type Session struct {
	ID       string // شناسه یکتای session (jti داخل توکن)
	UserID   uint
	IssuedAt time.Time
}
