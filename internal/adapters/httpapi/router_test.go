package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"keepit/internal/adapters/database"
	"keepit/internal/config"
	commentEntity "keepit/internal/core/comment"
	commentapp "keepit/internal/core/comment/service"
	postEntity "keepit/internal/core/post"
	postapp "keepit/internal/core/post/service"
	sessionEntity "keepit/internal/core/session"
	sessionapp "keepit/internal/core/session/service"
	userEntity "keepit/internal/core/user"
	userapp "keepit/internal/core/user/service"
	"keepit/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// memStore پیاده‌سازی حافظه‌ای SessionStore برای تست
type memStore struct {
	mu       sync.Mutex
	sessions map[string]uint
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]uint)}
}

func (m *memStore) Save(_ context.Context, s *sessionEntity.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.UserID
	return nil
}

func (m *memStore) Get(_ context.Context, sessionID string) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.sessions[sessionID]
	if !ok {
		return 0, shared.ErrorNotFound
	}
	return userID, nil
}

func (m *memStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithSessions(t, nil)
}

// newTestAppWithSessions اجازه تزریق SessionUseCase دلخواه را می‌دهد؛ nil یعنی سرویس واقعی
func newTestAppWithSessions(t *testing.T, sessions SessionUseCase) *testApp {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userEntity.User{}, &postEntity.Post{}, &commentEntity.Comment{}))

	userRepo := database.NewUserRepositoryDatabase(db)
	postRepo := database.NewPostRepositoryDatabase(db)
	commentRepo := database.NewCommentRepositoryDatabase(db)

	userSvc := userapp.NewUserService(userRepo)
	postSvc := postapp.NewPostService(postRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	if sessions == nil {
		sessions = sessionapp.NewSessionService(newMemStore(), []byte("test-secret"), time.Hour)
	}

	router := SetupRoutes("../../../web/templates/*.html", 1, time.Hour, userSvc, postSvc, commentSvc, sessions)
	return &testApp{router: router, db: db}
}

func (app *testApp) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

// register ثبت‌نام کاربر و برگرداندن کوکی session او
func (app *testApp) register(t *testing.T, name, email, password string) []*http.Cookie {
	t.Helper()

	w := app.do(t, http.MethodPost, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func (app *testApp) createPost(t *testing.T, cookies []*http.Cookie, title string) {
	t.Helper()

	w := app.do(t, http.MethodPost, "/add", url.Values{
		"title":    {title},
		"subtitle": {"s"},
		"img_url":  {"http://x/y.png"},
		"body":     {"<p>hi</p>"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "Admin", "admin@example.com", "secret")

	var count int64
	app.db.Model(&userEntity.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Admin", "admin@example.com", "secret")

	w := app.do(t, http.MethodPost, "/register", url.Values{
		"name":     {"Imposter"},
		"email":    {"admin@example.com"},
		"password": {"other"},
	}, nil)

	// به جای ساختن رکورد، صفحه ورود نمایش داده می‌شود
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "That email already exists. Try logging in.")

	var count int64
	app.db.Model(&userEntity.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegister_InvalidInput(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/register", url.Values{
		"name":     {"Admin"},
		"email":    {"not-an-email"},
		"password": {"secret"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email address.")
	// مقدار قبلی فرم حفظ می‌شود
	assert.Contains(t, w.Body.String(), "not-an-email")

	var count int64
	app.db.Model(&userEntity.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Admin", "admin@example.com", "secret")

	t.Run("unknown email", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/login", url.Values{
			"email":    {"nobody@example.com"},
			"password": {"secret"},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "That email doesn&#39;t exist.")
	})

	t.Run("incorrect password", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/login", url.Values{
			"email":    {"admin@example.com"},
			"password": {"wrong"},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Password is incorrect.")
	})

	t.Run("success", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/login", url.Values{
			"email":    {"admin@example.com"},
			"password": {"secret"},
		}, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.NotEmpty(t, w.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookies := app.register(t, "Admin", "admin@example.com", "secret")

	w := app.do(t, http.MethodGet, "/logout", nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	// کوکی قدیمی بعد از logout دیگر هویتی ندارد
	w = app.do(t, http.MethodGet, "/logout", nil, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, "/add", url.Values{
		"title":    {"A"},
		"subtitle": {"s"},
		"img_url":  {"http://x/y.png"},
		"body":     {"b"},
	}, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePost_AdminOnly(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Admin", "admin@example.com", "secret")
	other := app.register(t, "Bob", "bob@example.com", "secret")

	form := url.Values{
		"title":    {"A"},
		"subtitle": {"s"},
		"img_url":  {"http://x/y.png"},
		"body":     {"b"},
	}

	t.Run("anonymous", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/add", form, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("authenticated non-admin", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/add", form, other)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	var count int64
	app.db.Model(&postEntity.Post{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreatePost(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")

	app.createPost(t, admin, "A")

	var p postEntity.Post
	require.NoError(t, app.db.First(&p).Error)
	assert.Equal(t, "A", p.Title)
	assert.Equal(t, uint(1), p.AuthorID)
	assert.Equal(t, time.Now().Format(postEntity.DateLayout), p.Date)
}

func TestCreatePost_DuplicateTitle(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	app.createPost(t, admin, "A")

	w := app.do(t, http.MethodPost, "/add", url.Values{
		"title":    {"A"},
		"subtitle": {"s"},
		"img_url":  {"http://x/y.png"},
		"body":     {"b"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "That title already exists, please try to change it")

	var count int64
	app.db.Model(&postEntity.Post{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestShowPost_NotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/posts/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/posts/abc", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShowPost(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	app.createPost(t, admin, "A post")

	w := app.do(t, http.MethodGet, "/posts/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A post")
}

func TestEditPost(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	app.createPost(t, admin, "Original")

	w := app.do(t, http.MethodGet, "/edit/1", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	// فرم با مقادیر فعلی پست پر می‌شود
	assert.Contains(t, w.Body.String(), "Original")

	w = app.do(t, http.MethodPost, "/edit/1", url.Values{
		"title":    {"Changed"},
		"subtitle": {"s2"},
		"img_url":  {"http://x/z.png"},
		"body":     {"<p>new</p>"},
	}, admin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/1", w.Header().Get("Location"))

	var p postEntity.Post
	require.NoError(t, app.db.First(&p).Error)
	assert.Equal(t, "Changed", p.Title)

	w = app.do(t, http.MethodGet, "/edit/999", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	bob := app.register(t, "Bob", "bob@example.com", "secret")
	app.createPost(t, admin, "Doomed")

	w := app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {"bye"}}, bob)
	require.Equal(t, http.StatusFound, w.Code)

	w = app.do(t, http.MethodGet, "/delete/1", nil, admin)
	assert.Equal(t, http.StatusFound, w.Code)

	var posts, comments int64
	app.db.Model(&postEntity.Post{}).Count(&posts)
	app.db.Model(&commentEntity.Comment{}).Count(&comments)
	assert.Zero(t, posts)
	assert.Zero(t, comments)

	// حذف پست ناموجود همچنان redirect است
	w = app.do(t, http.MethodGet, "/delete/1", nil, admin)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAddComment(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	bob := app.register(t, "Bob", "bob@example.com", "secret")
	app.createPost(t, admin, "A post")

	t.Run("anonymous rejected", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {"hi"}}, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("authenticated", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {"hi there"}}, bob)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/posts/1", w.Header().Get("Location"))

		var c commentEntity.Comment
		require.NoError(t, app.db.First(&c).Error)
		assert.Equal(t, uint(2), c.UserID)
		assert.Equal(t, uint(1), c.PostID)
	})

	t.Run("missing post", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/posts/999", url.Values{"comment": {"hi"}}, bob)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty comment", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {""}}, bob)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")

		var count int64
		app.db.Model(&commentEntity.Comment{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestIndex_CommentCounts(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Admin", "admin@example.com", "secret")
	bob := app.register(t, "Bob", "bob@example.com", "secret")
	app.createPost(t, admin, "First")
	app.createPost(t, admin, "Second")

	w := app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {"hi"}}, bob)
	require.Equal(t, http.StatusFound, w.Code)
	w = app.do(t, http.MethodPost, "/posts/1", url.Values{"comment": {"again"}}, bob)
	require.Equal(t, http.StatusFound, w.Code)

	w = app.do(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	// تعداد کامنت هر پست جداگانه است
	assert.Contains(t, w.Body.String(), "2 comments")
	assert.Contains(t, w.Body.String(), "0 comments")
}

// brokenSessions شبیه‌ساز خرابی Redis هنگام صدور session
type brokenSessions struct{}

func (brokenSessions) Issue(context.Context, uint) (string, error) {
	return "", errors.New("store unavailable")
}

func (brokenSessions) Resolve(context.Context, string) (uint, error) {
	return 0, shared.ErrorInvalidToken
}

func (brokenSessions) Revoke(context.Context, string) error {
	return nil
}

func TestRegister_SessionIssueFails(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := config.Logger
	config.Logger = zap.New(core)
	t.Cleanup(func() { config.Logger = prev })

	app := newTestAppWithSessions(t, brokenSessions{})

	w := app.do(t, http.MethodPost, "/register", url.Values{
		"name":     {"Admin"},
		"email":    {"admin@example.com"},
		"password": {"secret"},
	}, nil)

	// ثبت‌نام انجام می‌شود ولی بدون کوکی؛ خطا باید لاگ شده باشد
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())

	var count int64
	app.db.Model(&userEntity.User{}).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, 1, logs.FilterMessage("Error issuing session").Len())
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/", "/about", "/contact", "/register", "/login"} {
		w := app.do(t, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}
