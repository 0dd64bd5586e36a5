package database

import (
	"context"
	"errors"

	commentEntity "keepit/internal/core/comment"
	postEntity "keepit/internal/core/post"
	"keepit/internal/core/user"
	"keepit/internal/shared"

	"gorm.io/gorm"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct {
	db *gorm.DB
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

// Create ثبت کاربر جدید؛ بررسی ایمیل تکراری و insert داخل یک تراکنش
func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&user.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ErrorEmailTaken
		}
		return tx.Create(u).Error
	})
	if err != nil {
		// اگر constraint یکتا با پیش‌بررسی مسابقه داد، همان خطای تکراری است
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrorEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrorNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrorNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete حذف کاربر با همه پست‌ها و کامنت‌هایش در یک تراکنش؛
// یا همه حذف می‌شوند یا هیچ‌کدام
func (repo *UserRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&postEntity.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&commentEntity.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&commentEntity.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&postEntity.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user.User{}, id).Error
	})
}
