package database

import (
	"path/filepath"
	"testing"

	"keepit/internal/core/comment"
	"keepit/internal/core/post"
	"keepit/internal/core/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB دیتابیس sqlite موقت با schema کامل
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}, &post.Post{}, &comment.Comment{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *user.User {
	t.Helper()
	u := &user.User{Name: name, Email: email, Password: "hashed"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedPost(t *testing.T, db *gorm.DB, title string, authorID uint) *post.Post {
	t.Helper()
	p := &post.Post{
		Title:    title,
		Subtitle: "s",
		Date:     "January 01, 2026",
		Body:     "<p>hi</p>",
		ImgURL:   "http://x/y.png",
		AuthorID: authorID,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return p
}

func seedComment(t *testing.T, db *gorm.DB, text string, userID, postID uint) *comment.Comment {
	t.Helper()
	c := &comment.Comment{Text: text, UserID: userID, PostID: postID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	return c
}
