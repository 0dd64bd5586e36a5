package comment

import (
	"context"

	"keepit/internal/core/comment"
)

// CommentRepository پورت برای ذخیره‌سازی و بازیابی کامنت‌ها.
// Create با shared.ErrorNotFound برمی‌گردد اگر پست مقصد وجود نداشته باشد.
type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	FindByPostID(ctx context.Context, postID uint) ([]*comment.Comment, error)
	CountByPostID(ctx context.Context, postID uint) (int64, error)
}

// DTOها برای UseCase
type CommentDTO struct {
	ID     uint   `json:"id"`
	Text   string `json:"text"`
	UserID uint   `json:"user_id"`
	PostID uint   `json:"post_id"`
	Author string `json:"author,omitempty"`
}
