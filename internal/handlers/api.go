package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// API response messages kept byte-compatible with existing clients.
const (
	apiMsgNoTitle      = "No title provided"
	apiMsgTaskCreated  = "Task created"
	apiMsgTaskUpdated  = "Task updated"
	apiMsgTaskDeleted  = "Task deleted"
	apiMsgTaskNotFound = "Task not found"
	apiMsgListFailed   = "failed to load tasks"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "tasks"
// @Failure      500  {object}  map[string]string
// @Router       /api/tasks [get]
func (h *Handler) listTasksAPI(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, apiMsgListFailed, "api_tasks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body   createTaskRequest  true  "Task payload"
// @Success      201   {object}  map[string]interface{}  "message, id"
// @Failure      400   {object}  map[string]string
// @Router       /api/tasks [post]
func (h *Handler) createTaskAPI(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": apiMsgNoTitle})
		return
	}

	task, err := h.services.Tasks.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": apiMsgNoTitle})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create task", "api_task_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": apiMsgTaskCreated, "id": task.ID})
}

// @Summary      Update task
// @Description  Partial update: absent fields keep their stored values.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path   int                true  "Task id"
// @Param        body  body   updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *Handler) updateTaskAPI(c *gin.Context) {
	id, ok := apiTaskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	_, err := h.services.Tasks.Update(c.Request.Context(), id, service.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": apiMsgTaskNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update task", "api_task_update_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": apiMsgTaskUpdated})
}

// @Summary      Delete task
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Task id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *Handler) deleteTaskAPI(c *gin.Context) {
	id, ok := apiTaskID(c)
	if !ok {
		return
	}

	if err := h.services.Tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": apiMsgTaskNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete task", "api_task_delete_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": apiMsgTaskDeleted})
}

// apiTaskID parses the :id path segment; a malformed id reads as unknown.
func apiTaskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": apiMsgTaskNotFound})
		return 0, false
	}
	return id, true
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}
