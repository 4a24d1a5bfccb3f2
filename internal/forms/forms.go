package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Key validation errors by the form input name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// PostForm carries the submitted post fields plus per-field messages, so a
// failed submit re-renders with nothing lost.
type PostForm struct {
	Text    string `form:"text" validate:"required"`
	GroupID string `form:"group_id" validate:"omitempty,number"`
	Image   string `form:"image"`

	Errors map[string]string `form:"-"`
}

func (f *PostForm) Bind(c *gin.Context) {
	f.Text = strings.TrimSpace(c.PostForm("text"))
	f.GroupID = strings.TrimSpace(c.PostForm("group_id"))
	f.Image = strings.TrimSpace(c.PostForm("image"))
}

func (f *PostForm) Valid() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`

	Errors map[string]string `form:"-"`
}

func (f *CommentForm) Bind(c *gin.Context) {
	f.Text = strings.TrimSpace(c.PostForm("text"))
}

func (f *CommentForm) Valid() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

type SignupForm struct {
	Username string `form:"username" validate:"required,min=3,max=150"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`

	Errors map[string]string `form:"-"`
}

func (f *SignupForm) Bind(c *gin.Context) {
	f.Username = strings.TrimSpace(c.PostForm("username"))
	f.Email = strings.TrimSpace(c.PostForm("email"))
	f.Password = c.PostForm("password")
}

func (f *SignupForm) Valid() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`

	Errors map[string]string `form:"-"`
}

func (f *LoginForm) Bind(c *gin.Context) {
	f.Email = strings.TrimSpace(c.PostForm("email"))
	f.Password = c.PostForm("password")
}

func (f *LoginForm) Valid() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

// fieldErrors flattens validator output into input name -> message.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid submission."
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "number":
		return "Must be a number."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	}
	return "Invalid value."
}
