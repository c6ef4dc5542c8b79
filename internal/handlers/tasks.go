package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const msgTitleRequired = "A title is required to add a task"

// tasksPage lists all tasks. Open to everyone; the add form only renders
// for a logged-in user.
func (h *Handler) tasksPage(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context())
	if err != nil {
		h.failPage(c, "tasks_list_failed", err)
		return
	}
	h.render(c, "tasks.html", gin.H{"Tasks": tasks})
}

// createTask handles the page form. On success it broadcasts a
// new-task notification to connected realtime clients.
func (h *Handler) createTask(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	task, err := h.services.Tasks.Create(c.Request.Context(), title, description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			setFlash(c, msgTitleRequired)
			c.Redirect(http.StatusSeeOther, "/tasks")
			return
		}
		h.failPage(c, "task_create_failed", err)
		return
	}

	h.hub.PublishTaskCreated(task.Title)
	c.Redirect(http.StatusSeeOther, "/tasks")
}

func (h *Handler) editTaskPage(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := h.services.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			h.notFoundPage(c)
			return
		}
		h.failPage(c, "task_get_failed", err)
		return
	}
	h.render(c, "edit_task.html", gin.H{"Task": task})
}

func (h *Handler) editTaskSubmit(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	title := c.PostForm("title")
	description := c.PostForm("description")

	_, err := h.services.Tasks.Update(c.Request.Context(), id, service.UpdateParams{
		Title:       &title,
		Description: &description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			h.notFoundPage(c)
			return
		}
		h.failPage(c, "task_update_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tasks")
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.services.Tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			h.notFoundPage(c)
			return
		}
		h.failPage(c, "task_delete_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tasks")
}

// taskID parses the :id path segment; a malformed id is a 404, same as an
// unknown one.
func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "404 not found")
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *Handler) notFoundPage(c *gin.Context) {
	c.String(http.StatusNotFound, "404 not found")
}

// failPage surfaces an unhandled storage fault as a generic failure page.
func (h *Handler) failPage(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.String(http.StatusInternalServerError, "something went wrong")
}
