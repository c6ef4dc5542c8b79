package handlers

import (
	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash messages mimic one-shot session flashes: set on redirect, read and
// cleared by the next page render.

func setFlash(c *gin.Context, message string) {
	// MaxAge keeps a stale flash from lingering if the redirect is abandoned.
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
