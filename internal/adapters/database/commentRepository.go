package database

import (
	"context"

	"keepit/internal/core/comment"
	postEntity "keepit/internal/core/post"
	"keepit/internal/shared"

	"gorm.io/gorm"
)

// CommentRepositoryDatabase پیاده‌سازی CommentRepository برای دیتابیس
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

// NewCommentRepositoryDatabase سازنده CommentRepositoryDatabase
func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

// Create ثبت کامنت؛ بررسی وجود پست و insert داخل یک تراکنش تا کامنت یتیم ساخته نشود
func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&postEntity.Post{}).Where("id = ?", c.PostID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrorNotFound
		}
		return tx.Create(c).Error
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := repo.db.WithContext(ctx).Preload("User").Where("post_id = ?", postID).Order("id asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&comment.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
