package main

import (
	"context"
	"os"
	"time"

	dbadapter "keepit/internal/adapters/database"
	"keepit/internal/adapters/httpapi"
	redisadapter "keepit/internal/adapters/redis"
	"keepit/internal/config"
	"keepit/internal/core/comment"
	commentapp "keepit/internal/core/comment/service"
	"keepit/internal/core/post"
	postapp "keepit/internal/core/post/service"
	sessionapp "keepit/internal/core/session/service"
	"keepit/internal/core/user"
	userapp "keepit/internal/core/user/service"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.InitLogger()
	config.Init() // بارگذاری تنظیمات از .env

	ctx := context.Background()

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	db, err := config.OpenDB()
	if err != nil {
		config.Logger.Fatal("Error connecting to the database:", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	// اتصال به Redis برای نگهداری sessionهای زنده
	redisClient, err := config.OpenRedis(ctx)
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger, db, redisClient)

	config.Logger.Info("App is running...")

	sessionTTL := time.Duration(config.SessionTTLHours()) * time.Hour

	userRepo := dbadapter.NewUserRepositoryDatabase(db)          // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase(db)          // آداپتر خروجی
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)    // آداپتر خروجی
	sessionStore := redisadapter.NewSessionStoreRedis(redisClient)

	userSvc := userapp.NewUserService(userRepo)                  // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo)                  // یوزکیس/سرویس
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	sessionSvc := sessionapp.NewSessionService(sessionStore, []byte(os.Getenv("JWT_SECRET")), sessionTTL)

	// تزریق یوزکیس به آداپتر ورودی
	r := httpapi.SetupRoutes("web/templates/*.html", config.AdminUserID(), sessionTTL, userSvc, postSvc, commentSvc, sessionSvc)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080" // مقدار پیش‌فرض
	}

	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *goredis.Client) {
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := db.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
