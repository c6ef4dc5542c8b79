package handlers

import (
	"net/http"

	"taskboard/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"

	// gin context key for the resolved user
	ctxUserKey = "currentUser"

	msgLoginRequired   = "Please log in to access this page"
	msgLoginToAddTasks = "Only logged-in users can add tasks"
)

// sessionMiddleware resolves the session cookie into a user and stores it in
// the request context. It never rejects: anonymous requests pass through.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.Next()
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		// Expired or tampered cookie: treat as anonymous.
		c.Next()
		return
	}

	user, err := h.services.UserByID(userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("session_user_lookup_failed", "user_id", userID, "err", err)
		}
		c.Next()
		return
	}
	if user != nil {
		c.Set(ctxUserKey, user)
	}
	c.Next()
}

// loginRequired gates a page route: anonymous requests are redirected to
// /login with the given flash message. The API routes do not use this gate.
func (h *Handler) loginRequired(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			setFlash(c, message)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser returns the session user, or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return u
}
