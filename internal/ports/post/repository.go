package post

import (
	"context"

	"keepit/internal/core/post"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	// Create در صورت تکراری بودن عنوان shared.ErrorTitleTaken برمی‌گرداند
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	// Update عنوان را به جز خود پست بررسی می‌کند؛ پست ناموجود shared.ErrorNotFound
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	// Delete کامنت‌های پست و سپس خود پست را حذف می‌کند؛ پست ناموجود no-op است
	Delete(ctx context.Context, id uint) error
}

// DTOها برای UseCase
type PostDTO struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
	AuthorID uint   `json:"author_id"`
	Author   string `json:"author,omitempty"`
}
