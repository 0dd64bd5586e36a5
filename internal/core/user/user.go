package user

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:250;not null"`
	Email     string    `gorm:"size:250;uniqueIndex;not null"`
	Password  string    `gorm:"not null"` // همیشه hash شده، هرگز plaintext
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
