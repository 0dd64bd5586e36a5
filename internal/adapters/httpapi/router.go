package httpapi

import (
	"context"
	"time"

	"keepit/internal/adapters/httpapi/middleware"
	commentPort "keepit/internal/ports/comment"
	postPort "keepit/internal/ports/post"
	userPort "keepit/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	RegisterUser(ctx context.Context, name, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, email, password string) (*userPort.UserDTO, error)
	GetUserByID(ctx context.Context, id uint) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, title, subtitle, body, imgURL string, authorID uint) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id uint, title, subtitle, body, imgURL string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, id uint) (*postPort.PostDTO, error)
	GetAllPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id uint) error
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, userID uint, text string) (*commentPort.CommentDTO, error)
	GetComments(ctx context.Context, postID uint) ([]*commentPort.CommentDTO, error)
	CountComments(ctx context.Context, postID uint) (int64, error)
}

type SessionUseCase interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Resolve(ctx context.Context, credential string) (uint, error)
	Revoke(ctx context.Context, credential string) error
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	tmplGlob string,
	adminID uint,
	sessionTTL time.Duration,
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	sessionUC SessionUseCase,
) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(tmplGlob)

	uc := NewUserController(userUC, sessionUC, sessionTTL)
	pc := NewPostController(postUC, commentUC, adminID)
	cc := NewCommentController(commentUC, pc)
	sc := NewPagesController()

	// هویت روی همه درخواست‌ها resolve می‌شود؛ شکست یعنی Anonymous
	r.Use(middleware.Identity(sessionUC, userUC))

	// خواندن بدون ورود
	r.GET("/", pc.Index)
	r.GET("/posts/:id", pc.Show)
	r.GET("/about", sc.About)
	r.GET("/contact", sc.Contact)

	// ثبت‌نام و ورود
	r.GET("/register", uc.ShowRegister)
	r.POST("/register", uc.Register)
	r.GET("/login", uc.ShowLogin)
	r.POST("/login", uc.Login)
	r.GET("/logout", middleware.RequireAuth(), uc.Logout)

	// کامنت فقط با ورود
	r.POST("/posts/:id", middleware.RequireAuth(), cc.Add)

	// مدیریت پست فقط برای ادمین
	admin := r.Group("/", middleware.AdminOnly(adminID))
	admin.GET("/add", pc.ShowAdd)
	admin.POST("/add", pc.Add)
	admin.GET("/edit/:id", pc.ShowEdit)
	admin.POST("/edit/:id", pc.Edit)
	admin.GET("/delete/:id", pc.Delete)

	return r
}
