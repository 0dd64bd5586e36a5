package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenDB اتصال به دیتابیس MySQL را راه‌اندازی می‌کند.
// به جای متغیر سراسری، handle برگردانده می‌شود تا به repositoryها تزریق شود.
func OpenDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	// TranslateError لازم است تا خطای unique constraint درایور به
	// gorm.ErrDuplicatedKey تبدیل شود و repositoryها آن را map کنند
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	Logger.Info("Database connected")
	return db, nil
}
