package httpapi

import (
	"errors"
	"net/http"
	"time"

	"keepit/internal/adapters/httpapi/middleware"
	"keepit/internal/config"
	"keepit/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	uc         UserUseCase
	sessions   SessionUseCase
	sessionTTL time.Duration
}

func NewUserController(uc UserUseCase, sessions SessionUseCase, sessionTTL time.Duration) *UserController {
	return &UserController{uc: uc, sessions: sessions, sessionTTL: sessionTTL}
}

func (ctl *UserController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
		"Name":        "",
		"Email":       "",
	})
}

// Register ثبت‌نام؛ ایمیل تکراری رکوردی نمی‌سازد و کاربر به login هدایت می‌شود
func (ctl *UserController) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		// فرم با خطاها و مقادیر قبلی دوباره نمایش داده می‌شود
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Errors": fieldErrors(err),
			"Name":   form.Name,
			"Email":  form.Email,
		})
		return
	}

	u, err := ctl.uc.RegisterUser(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, shared.ErrorEmailTaken) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Warning": "That email already exists. Try logging in.",
				"Email":   form.Email,
			})
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctl.startSession(c, u.ID)
	c.Redirect(http.StatusFound, "/")
}

func (ctl *UserController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
		"Email":       "",
	})
}

// Login ورود؛ خطاها به فیلد مربوطه می‌چسبند نه یک پیام عمومی
func (ctl *UserController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Errors": fieldErrors(err),
			"Email":  form.Email,
		})
		return
	}

	u, err := ctl.uc.LoginUser(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		fe := shared.FieldErrors{}
		switch {
		case errors.Is(err, shared.ErrorUnknownEmail):
			fe.Add("email", "That email doesn't exist.")
		case errors.Is(err, shared.ErrorIncorrectPassword):
			fe.Add("password", "Password is incorrect.")
		default:
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Errors": fe,
			"Email":  form.Email,
		})
		return
	}

	ctl.startSession(c, u.ID)
	c.Redirect(http.StatusFound, "/")
}

// Logout پایان session؛ تکرار آن خطا نیست
func (ctl *UserController) Logout(c *gin.Context) {
	if credential, err := c.Cookie(middleware.SessionCookie); err == nil && credential != "" {
		_ = ctl.sessions.Revoke(c.Request.Context(), credential)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ctl *UserController) startSession(c *gin.Context, userID uint) {
	credential, err := ctl.sessions.Issue(c.Request.Context(), userID)
	if err != nil {
		// بدون session هم ثبت‌نام/ورود انجام شده؛ کاربر دوباره login می‌کند
		config.Logger.Error("Error issuing session", zap.Error(err), zap.Uint("userID", userID))
		return
	}
	c.SetCookie(middleware.SessionCookie, credential, int(ctl.sessionTTL.Seconds()), "/", "", false, true)
}
