package shared

import "errors"

var (

	// common errors
	ErrorNotFound  = errors.New("not found")
	ErrorForbidden = errors.New("forbidden")

	// auth-specific errors
	ErrorInvalidToken      = errors.New("invalid token")
	ErrorUnknownEmail      = errors.New("that email doesn't exist")
	ErrorIncorrectPassword = errors.New("password is incorrect")

	// registration/post-specific errors
	ErrorEmailTaken = errors.New("email already exists")
	ErrorTitleTaken = errors.New("title already exists")
)

// FieldErrors خطاهای فرم به تفکیک فیلد، برای نمایش inline
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, ok := fe[field]; !ok {
		fe[field] = message
	}
}

func (fe FieldErrors) Has() bool { return len(fe) > 0 }
