package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"

	"github.com/INFR3120-F25/coursetrack-service/internal/config"
	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

// ErrAuthenticationFailed covers denied consent, unknown providers and
// unusable provider profiles. Callers redirect to the landing page rather
// than surfacing an error page.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Service drives the authorization-code handshake through Goth and
// normalizes provider profiles into identities.
type Service struct{}

// InitProviders registers the configured Goth providers and the state store.
// Call once at startup.
func InitProviders(cfg *config.Config) *Service {
	var providers []goth.Provider

	if cfg.Google.Configured() {
		callback := cfg.CallbackURL + "/auth/google/callback"
		providers = append(providers, google.New(cfg.Google.ClientID, cfg.Google.ClientSecret, callback, "profile", "email"))
	}
	if cfg.GitHub.Configured() {
		callback := cfg.CallbackURL + "/auth/github/callback"
		providers = append(providers, github.New(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret, callback, "user:email"))
	}

	goth.UseProviders(providers...)
	gothic.Store = sessions.NewCookieStore([]byte(cfg.SessionSecret))

	return &Service{}
}

// Begin returns the provider's consent redirect URL. No side effects beyond
// the state cookie gothic writes.
func (s *Service) Begin(provider string, w http.ResponseWriter, r *http.Request) (string, error) {
	if !models.AuthProvider(provider).Valid() {
		return "", fmt.Errorf("%w: unknown provider %q", ErrAuthenticationFailed, provider)
	}
	if _, err := goth.GetProvider(provider); err != nil {
		return "", fmt.Errorf("%w: provider %q not configured", ErrAuthenticationFailed, provider)
	}

	authURL, err := gothic.GetAuthURL(w, withProvider(r, provider))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	return authURL, nil
}

// Complete exchanges the provider callback for a normalized identity.
func (s *Service) Complete(provider string, w http.ResponseWriter, r *http.Request) (*models.Identity, error) {
	if !models.AuthProvider(provider).Valid() {
		return nil, fmt.Errorf("%w: unknown provider %q", ErrAuthenticationFailed, provider)
	}

	gothUser, err := gothic.CompleteUserAuth(w, withProvider(r, provider))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	identity, err := Normalize(gothUser)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// Normalize maps a raw provider profile onto the session identity.
// The display name falls back from the profile name to the provider
// username; email stays empty when the provider supplies none.
func Normalize(user goth.User) (*models.Identity, error) {
	if user.UserID == "" {
		return nil, fmt.Errorf("%w: provider returned no usable profile", ErrAuthenticationFailed)
	}

	displayName := user.Name
	if displayName == "" {
		displayName = user.NickName
	}

	return &models.Identity{
		ProviderUserID: user.UserID,
		DisplayName:    displayName,
		Email:          user.Email,
		Provider:       models.AuthProvider(user.Provider),
	}, nil
}

// withProvider clones the request with the provider name in the query,
// which is where gothic expects it.
func withProvider(r *http.Request, provider string) *http.Request {
	r2 := r.Clone(r.Context())
	q := r2.URL.Query()
	q.Set("provider", provider)
	r2.URL.RawQuery = q.Encode()
	return r2
}
