package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

// ErrNoSession is returned when a token is absent, unknown or expired.
var ErrNoSession = errors.New("no session")

// CookieName carries the opaque session token.
const CookieName = "coursetrack_session"

// Store binds opaque session tokens to identities for a fixed TTL.
// The identity is stored and returned verbatim; the store never interprets
// its fields.
type Store interface {
	// Create establishes a new session and returns its token. The session
	// expires TTL after creation regardless of activity.
	Create(ctx context.Context, identity *models.Identity) (string, error)

	// Get returns the bound identity, or ErrNoSession.
	Get(ctx context.Context, token string) (*models.Identity, error)

	// Destroy invalidates the session immediately. Destroying an unknown
	// token is not an error.
	Destroy(ctx context.Context, token string) error
}

// TokenFromRequest extracts the session token, empty when no cookie is set.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// NewCookie builds the session cookie. HttpOnly keeps the token out of
// script reach.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie overwrites the session cookie so browsers drop it.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
