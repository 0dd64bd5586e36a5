package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"keepit/internal/adapters/httpapi/middleware"
	"keepit/internal/shared"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc      PostUseCase
	cc      CommentUseCase
	adminID uint
}

func NewPostController(pc PostUseCase, cc CommentUseCase, adminID uint) *PostController {
	return &PostController{pc: pc, cc: cc, adminID: adminID}
}

// Index فهرست همه پست‌ها با تعداد کامنت هر کدام؛ بدون نیاز به ورود
func (ctl *PostController) Index(c *gin.Context) {
	posts, err := ctl.pc.GetAllPosts(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	counts := make(map[uint]int64, len(posts))
	for _, p := range posts {
		n, err := ctl.cc.CountComments(c.Request.Context(), p.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		counts[p.ID] = n
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts":       posts,
		"Counts":      counts,
		"CurrentUser": middleware.CurrentUser(c),
		"IsAdmin":     ctl.isAdmin(c),
	})
}

// Show نمایش یک پست با کامنت‌هایش و فرم کامنت
func (ctl *PostController) Show(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ctl.renderPost(c, id, nil)
}

func (ctl *PostController) ShowAdd(c *gin.Context) {
	ctl.renderPostForm(c, 0, &postForm{}, nil)
}

// Add ایجاد پست جدید؛ فقط ادمین (middleware) و عنوان تکراری رد می‌شود
func (ctl *PostController) Add(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		ctl.renderPostForm(c, 0, &form, fieldErrors(err))
		return
	}

	admin := middleware.CurrentUser(c)
	_, err := ctl.pc.CreatePost(c.Request.Context(), form.Title, form.Subtitle, form.Body, form.ImgURL, admin.ID)
	if err != nil {
		if errors.Is(err, shared.ErrorTitleTaken) {
			fe := shared.FieldErrors{}
			fe.Add("title", "That title already exists, please try to change it")
			ctl.renderPostForm(c, 0, &form, fe)
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowEdit فرم ویرایش با مقادیر فعلی پست
func (ctl *PostController) ShowEdit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	form := &postForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImgURL:   post.ImgURL,
		Body:     post.Body,
	}
	ctl.renderPostForm(c, id, form, nil)
}

// Edit اعمال ویرایش؛ تاریخ انتشار دست نمی‌خورد
func (ctl *PostController) Edit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		ctl.renderPostForm(c, id, &form, fieldErrors(err))
		return
	}

	_, err := ctl.pc.UpdatePost(c.Request.Context(), id, form.Title, form.Subtitle, form.Body, form.ImgURL)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, shared.ErrorTitleTaken):
			fe := shared.FieldErrors{}
			fe.Add("title", "That title already exists, please try to change it")
			ctl.renderPostForm(c, id, &form, fe)
		default:
			c.String(http.StatusInternalServerError, "Something went wrong.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(uint64(id), 10))
}

// Delete حذف پست؛ پست ناموجود no-op است و باز به خانه برمی‌گردد
func (ctl *PostController) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// renderPost صفحه پست با کامنت‌ها؛ خطاهای فرم کامنت اگر باشند inline می‌آیند
func (ctl *PostController) renderPost(c *gin.Context, id uint, commentErrors shared.FieldErrors) {
	post, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	comments, err := ctl.cc.GetComments(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Post":        post,
		"Comments":    comments,
		"CurrentUser": middleware.CurrentUser(c),
		"IsAdmin":     ctl.isAdmin(c),
		"Errors":      commentErrors,
	})
}

func (ctl *PostController) renderPostForm(c *gin.Context, id uint, form *postForm, fe shared.FieldErrors) {
	c.HTML(http.StatusOK, "make-post.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
		"IsEdit":      id != 0,
		"PostID":      id,
		"Title":       form.Title,
		"Subtitle":    form.Subtitle,
		"ImgURL":      form.ImgURL,
		"Body":        form.Body,
		"Errors":      fe,
	})
}

func (ctl *PostController) isAdmin(c *gin.Context) bool {
	u := middleware.CurrentUser(c)
	return u != nil && u.ID == ctl.adminID
}

// postID شناسه پست از مسیر؛ شناسه غیرعددی یعنی 404
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
