package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/INFR3120-F25/coursetrack-service/internal/auth"
	"github.com/INFR3120-F25/coursetrack-service/internal/config"
	"github.com/INFR3120-F25/coursetrack-service/internal/session"
	"github.com/INFR3120-F25/coursetrack-service/internal/utils"
)

// AuthHandler drives the OAuth handshake and the session lifecycle.
type AuthHandler struct {
	authService *auth.Service
	store       session.Store
	logger      utils.Logger
}

func NewAuthHandler(authService *auth.Service, store session.Store, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

// Begin redirects to the provider's consent page. Any failure sends the
// visitor back to the landing page.
func (h *AuthHandler) Begin(c *gin.Context) {
	provider := c.Param("provider")

	authURL, err := h.authService.Begin(provider, c.Writer, c.Request)
	if err != nil {
		h.logger.Warn("authorization begin failed", "provider", provider, "error", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// Callback completes the handshake, installs the session and lands on the
// assignment list. Failed or denied handshakes redirect home, never to an
// error page.
func (h *AuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")

	identity, err := h.authService.Complete(provider, c.Writer, c.Request)
	if err != nil {
		h.logger.Warn("authorization callback failed", "provider", provider, "error", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, err := h.store.Create(c.Request.Context(), identity)
	if err != nil {
		h.logger.Error("failed to create session", "provider", provider, "error", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	http.SetCookie(c.Writer, session.NewCookie(token, config.SessionTTL))
	h.logger.Info("user signed in", "provider", provider, "display_name", identity.DisplayName)

	c.Redirect(http.StatusSeeOther, "/assignments")
}

// Logout destroys the session, drops the cookie and redirects home. Safe to
// call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := session.TokenFromRequest(c.Request)
	if err := h.store.Destroy(c.Request.Context(), token); err != nil {
		h.logger.Error("failed to destroy session", "error", err)
	}

	http.SetCookie(c.Writer, session.ExpiredCookie())
	c.Redirect(http.StatusSeeOther, "/")
}
