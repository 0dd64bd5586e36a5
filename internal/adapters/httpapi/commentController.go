package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"keepit/internal/adapters/httpapi/middleware"
	"keepit/internal/shared"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	cc CommentUseCase
	pc *PostController
}

func NewCommentController(cc CommentUseCase, pc *PostController) *CommentController {
	return &CommentController{cc: cc, pc: pc}
}

// Add ثبت کامنت روی پست؛ فقط کاربران واردشده (middleware)
func (ctl *CommentController) Add(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		// بدون ساختن رکورد، صفحه پست با خطای فرم دوباره نمایش داده می‌شود
		ctl.pc.renderPost(c, id, fieldErrors(err))
		return
	}

	u := middleware.CurrentUser(c)
	if _, err := ctl.cc.AddComment(c.Request.Context(), id, u.ID, form.Comment); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(uint64(id), 10))
}
