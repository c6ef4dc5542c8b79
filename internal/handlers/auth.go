package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgDuplicateUsername  = "A user with that name already exists"
	msgInvalidCredentials = "Invalid username or password"
)

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, "register.html", nil)
}

// registerSubmit creates a user from the posted form and sends them to the
// login page. Duplicate usernames and empty fields come back as a flash.
func (h *Handler) registerSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.services.Register(username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			setFlash(c, msgDuplicateUsername)
		} else {
			if h.log != nil {
				h.log.Infow("register_failed", "username", username, "err", err)
			}
			setFlash(c, "Registration failed: "+err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, "login.html", nil)
}

// loginSubmit verifies credentials and establishes the session cookie.
func (h *Handler) loginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.services.Login(username, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) && h.log != nil {
			h.log.Errorw("login_failed", "username", username, "err", err)
		}
		setFlash(c, msgInvalidCredentials)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	// MaxAge 0 leaves the cookie scoped to the browser session; the token
	// itself carries the hard expiry.
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/tasks")
}

// logout destroys the session and returns to the home page.
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
