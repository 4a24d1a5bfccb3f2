package handlers

import (
	"net/http"
	"strings"

	"scribe/internal/db"
	"scribe/internal/forms"
	"scribe/internal/models"
	"scribe/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", gin.H{
		"Title": "Sign up",
		"Form":  &forms.SignupForm{},
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form forms.SignupForm
	form.Bind(c)

	if !form.Valid() {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
			"Title": "Sign up",
			"Form":  &form,
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not create account")
		return
	}

	user := models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// Username and email are unique; a create failure means one is taken.
		form.Errors = map[string]string{"username": "Username or email already taken."}
		Render(c, http.StatusConflict, "auth/signup.html", gin.H{
			"Title": "Sign up",
			"Form":  &form,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log in",
		"Form":  &forms.LoginForm{},
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	form.Bind(c)
	next := c.DefaultPostForm("next", c.Query("next"))

	if !form.Valid() {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{
			"Title": "Log in",
			"Form":  &form,
			"Next":  next,
		})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", form.Email).First(&user).Error; err != nil || !utils.CheckPassword(user.Password, form.Password) {
		form.Errors = map[string]string{"form": "Wrong email or password."}
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Log in",
			"Form":  &form,
			"Next":  next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, safeNext(next))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps the continue target on this site; anything else goes home.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
