package post

import (
	"time"

	"keepit/internal/core/user"
)

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:250;uniqueIndex;not null"`
	Subtitle  string    `gorm:"size:250;not null"`
	Date      string    `gorm:"size:250;not null"` // تاریخ انتشار به صورت رشته، فقط هنگام ایجاد ثبت می‌شود
	Body      string    `gorm:"type:text;not null"`
	ImgURL    string    `gorm:"size:250;not null"`
	AuthorID  uint      `gorm:"not null"`
	User      user.User `gorm:"foreignKey:AuthorID"` // ارتباط با مدل User
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DateLayout قالب تاریخ انتشار پست
const DateLayout = "January 02, 2006"
