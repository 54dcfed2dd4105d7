package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	uuid2 "github.com/google/uuid"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
	"github.com/INFR3120-F25/coursetrack-service/internal/session"
	"github.com/INFR3120-F25/coursetrack-service/internal/utils"
)

const identityContextKey = "identity"

// SetupMiddleware sets up common middleware for the Gin router
func SetupMiddleware(router *gin.Engine, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// SessionMiddleware gates routes on a live session.
type SessionMiddleware struct {
	store  session.Store
	logger utils.Logger
}

func NewSessionMiddleware(store session.Store, logger utils.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, logger: logger}
}

// RequireSession allows the request through with the identity attached, or
// redirects to the landing page. The redirect (rather than a 401) is the
// intended experience for logged-out visitors hitting a protected page.
func (sm *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := sm.resolve(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				sm.logger.Error("session lookup failed", "error", err)
			}
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// OptionalSession attaches the identity when present and never blocks.
func (sm *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := sm.resolve(c); err == nil {
			c.Set(identityContextKey, identity)
		}
		c.Next()
	}
}

func (sm *SessionMiddleware) resolve(c *gin.Context) (*models.Identity, error) {
	token := session.TokenFromRequest(c.Request)
	return sm.store.Get(c.Request.Context(), token)
}

// IdentityFromContext extracts the resolved identity, nil when the request
// is unauthenticated.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

// RequestIDMiddleware generates a unique request ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid2.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
