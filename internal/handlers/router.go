package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/INFR3120-F25/coursetrack-service/internal/auth"
	"github.com/INFR3120-F25/coursetrack-service/internal/repositories"
	"github.com/INFR3120-F25/coursetrack-service/internal/services"
	"github.com/INFR3120-F25/coursetrack-service/internal/session"
	"github.com/INFR3120-F25/coursetrack-service/internal/utils"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

type HandlerManager struct {
	assignmentHandler *AssignmentHandler
	authHandler       *AuthHandler
	sessionMiddleware *SessionMiddleware
	repo              repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	authService *auth.Service,
	store session.Store,
	repo repositories.Repository,
) *HandlerManager {
	return &HandlerManager{
		assignmentHandler: NewAssignmentHandler(serviceManager.Assignment(), validator, logger),
		authHandler:       NewAuthHandler(authService, store, logger),
		sessionMiddleware: NewSessionMiddleware(store, logger),
		repo:              repo,
	}
}

// SetupRoutes sets up all routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(pageTemplates)

	router.GET("/healthz", hm.HealthCheck)

	// Public pages; OptionalSession only decorates them with login state.
	router.GET("/", hm.sessionMiddleware.OptionalSession(), hm.assignmentHandler.Home)
	router.GET("/assignments", hm.sessionMiddleware.OptionalSession(), hm.assignmentHandler.List)
	router.GET("/assignments/export", hm.assignmentHandler.Export)

	// Mutating routes require a live session.
	protected := router.Group("/assignments")
	protected.Use(hm.sessionMiddleware.RequireSession())
	{
		protected.GET("/add", hm.assignmentHandler.AddForm)
		protected.POST("/add", hm.assignmentHandler.AddSubmit)
		protected.GET("/edit/:id", hm.assignmentHandler.EditForm)
		protected.POST("/edit/:id", hm.assignmentHandler.EditSubmit)
		protected.POST("/delete/:id", hm.assignmentHandler.Delete)
	}

	// OAuth handshake and session lifecycle.
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/logout", hm.authHandler.Logout)
		authGroup.GET("/:provider", hm.authHandler.Begin)
		authGroup.GET("/:provider/callback", hm.authHandler.Callback)
	}
}

// HealthCheck reports liveness and store reachability.
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.Status(http.StatusOK)
}
