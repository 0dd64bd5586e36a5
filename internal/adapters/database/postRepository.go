package database

import (
	"context"
	"errors"

	commentEntity "keepit/internal/core/comment"
	"keepit/internal/core/post"
	"keepit/internal/shared"

	"gorm.io/gorm"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

// Create ثبت پست جدید؛ بررسی عنوان تکراری و insert داخل یک تراکنش
func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&post.Post{}).Where("title = ?", p.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ErrorTitleTaken
		}
		return tx.Create(p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrorTitleTaken
		}
		return nil, err
	}
	return p, nil
}

// Update ویرایش پست؛ یکتایی عنوان به جز خود پست بررسی می‌شود
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&post.Post{}).Where("title = ? AND id <> ?", p.Title, p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ErrorTitleTaken
		}

		result := tx.Model(&post.Post{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"title":    p.Title,
			"subtitle": p.Subtitle,
			"body":     p.Body,
			"img_url":  p.ImgURL,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrorNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrorTitleTaken
		}
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrorNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Preload("User").Order("id asc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete حذف پست با کامنت‌هایش در یک تراکنش؛ پست ناموجود no-op است
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&commentEntity.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post.Post{}, id).Error
	})
}
