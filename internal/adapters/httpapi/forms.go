package httpapi

import (
	"errors"
	"fmt"

	"keepit/internal/shared"

	"github.com/go-playground/validator/v10"
)

// فرم‌ها معادل فرم‌های ثبت‌نام/ورود/پست/کامنت؛ فقط فیلدهای شمرده‌شده
// به entity نگاشت می‌شوند و فیلد اضافه فرم هرگز جایی نمی‌رسد

type registerForm struct {
	Name     string `form:"name" binding:"required,max=250"`
	Email    string `form:"email" binding:"required,email,max=250"`
	Password string `form:"password" binding:"required,max=30"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email,max=250"`
	Password string `form:"password" binding:"required,max=30"`
}

type postForm struct {
	Title    string `form:"title" binding:"required,max=250"`
	Subtitle string `form:"subtitle" binding:"required,max=250"`
	ImgURL   string `form:"img_url" binding:"required,url,max=250"`
	Body     string `form:"body" binding:"required"`
}

type commentForm struct {
	Comment string `form:"comment" binding:"required,max=3000"`
}

// نگاشت نام فیلد struct به نام فیلد فرم برای خطاهای inline
var formFieldNames = map[string]string{
	"Name":     "name",
	"Email":    "email",
	"Password": "password",
	"Title":    "title",
	"Subtitle": "subtitle",
	"ImgURL":   "img_url",
	"Body":     "body",
	"Comment":  "comment",
}

// fieldErrors تبدیل خطاهای binding به خطاهای فرم به تفکیک فیلد
func fieldErrors(err error) shared.FieldErrors {
	fe := shared.FieldErrors{}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		fe.Add("form", "Invalid input.")
		return fe
	}

	for _, f := range verr {
		name, ok := formFieldNames[f.Field()]
		if !ok {
			name = f.Field()
		}
		switch f.Tag() {
		case "required":
			fe.Add(name, "This field is required.")
		case "email":
			fe.Add(name, "Invalid email address.")
		case "url":
			fe.Add(name, "Invalid URL.")
		case "max":
			fe.Add(name, fmt.Sprintf("Field cannot be longer than %s characters.", f.Param()))
		default:
			fe.Add(name, "Invalid value.")
		}
	}
	return fe
}
