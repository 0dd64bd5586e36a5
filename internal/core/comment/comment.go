package comment

import (
	"time"

	"keepit/internal/core/user"
)

// MaxTextLength سقف طول متن کامنت
const MaxTextLength = 3000

type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"size:3000;not null"`
	UserID    uint      `gorm:"not null"`
	PostID    uint      `gorm:"not null"`
	User      user.User `gorm:"foreignKey:UserID"` // نویسنده کامنت
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
