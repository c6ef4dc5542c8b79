package handlers

import (
	"net/http"

	"taskboard/internal/hub"
	"taskboard/internal/logger"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, the broadcast hub and logging.
type Handler struct {
	services *service.Service
	hub      *hub.Hub
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, broadcast *hub.Hub, log *logger.Logger) *Handler {
	return &Handler{services: services, hub: broadcast, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(pageTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Every route below resolves the session cookie first.
	router.Use(h.sessionMiddleware)

	h.registerPageRoutes(router)
	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Realtime channel (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/about", h.about)
	r.GET("/form", h.simpleForm)
	r.POST("/form", h.simpleForm)

	r.GET("/tasks", h.tasksPage)
	r.POST("/tasks", h.loginRequired(msgLoginToAddTasks), h.createTask)
	r.GET("/tasks/edit/:id", h.loginRequired(msgLoginRequired), h.editTaskPage)
	r.POST("/tasks/edit/:id", h.loginRequired(msgLoginRequired), h.editTaskSubmit)
	r.GET("/tasks/delete/:id", h.loginRequired(msgLoginRequired), h.deleteTask)

	r.GET("/chat", h.loginRequired(msgLoginRequired), h.chatPage)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.registerPage)
	r.POST("/register", h.registerSubmit)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.loginSubmit)
	r.GET("/logout", h.loginRequired(msgLoginRequired), h.logout)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/tasks", h.listTasksAPI)
		api.POST("/tasks", h.createTaskAPI)
		api.PUT("/tasks/:id", h.updateTaskAPI)
		api.DELETE("/tasks/:id", h.deleteTaskAPI)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
