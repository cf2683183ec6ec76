package handlers

import (
	"errors"
	"net/http"
	"strings"

	"grove/internal/logger"
	"grove/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log in",
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.accounts.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLogin) {
			Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
				"Title": "Log in",
				"Error": "Invalid username or password",
				"Next":  c.PostForm("next"),
			})
			return
		}
		logger.Sugar.Errorf("login %s: %v", username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", gin.H{"Title": "Sign up"})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.accounts.Register(username, email, password)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
				"Title":    "Sign up",
				"Errors":   vErr.Fields,
				"Username": username,
				"Email":    email,
			})
			return
		}
		logger.Sugar.Errorf("signup %s: %v", username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
