package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Init بارگذاری تنظیمات از .env و بررسی مقادیر اجباری
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	if os.Getenv("REDIS_ADDR") == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	if os.Getenv("JWT_SECRET") == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}

// AdminUserID شناسه کاربر ادمین (پیش‌فرض اولین کاربر ثبت‌شده)
func AdminUserID() uint {
	id, err := strconv.ParseUint(os.Getenv("ADMIN_USER_ID"), 10, 32)
	if err != nil || id == 0 {
		return 1 // مقدار پیش‌فرض
	}
	return uint(id)
}

// SessionTTLHours طول عمر session بر حسب ساعت
func SessionTTLHours() int {
	h, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || h <= 0 {
		return 24 // مقدار پیش‌فرض
	}
	return h
}
