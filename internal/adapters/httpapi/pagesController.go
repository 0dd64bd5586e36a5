package httpapi

import (
	"net/http"

	"keepit/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

// PagesController صفحات ایستا
type PagesController struct{}

func NewPagesController() *PagesController { return &PagesController{} }

func (ctl *PagesController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
	})
}

func (ctl *PagesController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
	})
}
