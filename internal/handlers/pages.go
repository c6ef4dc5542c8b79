package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render draws a page template with the session user and any pending flash
// message merged into the template data.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = currentUser(c)
	data["Flash"] = popFlash(c)
	c.HTML(http.StatusOK, name, data)
}

func (h *Handler) home(c *gin.Context) {
	h.render(c, "index.html", nil)
}

func (h *Handler) about(c *gin.Context) {
	h.render(c, "about.html", nil)
}

// simpleForm serves GET and POST; a POST echoes the submitted name back
// in a greeting.
func (h *Handler) simpleForm(c *gin.Context) {
	var greeting string
	if c.Request.Method == http.MethodPost {
		greeting = "Hello, " + c.PostForm("name") + "!"
	}
	h.render(c, "form.html", gin.H{"Greeting": greeting})
}

func (h *Handler) chatPage(c *gin.Context) {
	h.render(c, "chat.html", nil)
}
