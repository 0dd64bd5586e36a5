package user

import (
	"context"

	"keepit/internal/core/user"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	// Create در صورت تکراری بودن ایمیل shared.ErrorEmailTaken برمی‌گرداند
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	// Delete کاربر و همه پست‌ها و کامنت‌های او را یکجا حذف می‌کند
	Delete(ctx context.Context, id uint) error
}

// DTOها برای UseCase
type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
