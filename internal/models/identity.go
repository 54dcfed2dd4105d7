package models

// AuthProvider identifies which external identity provider vouched for a user.
type AuthProvider string

const (
	ProviderGoogle AuthProvider = "google"
	ProviderGitHub AuthProvider = "github"
)

func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderGitHub:
		return true
	}
	return false
}

// Identity is the normalized result of a completed OAuth handshake.
// It lives only in the session store and is never written to the
// assignment collection; its sole persistent trace is Assignment.CreatedBy.
type Identity struct {
	ProviderUserID string       `json:"provider_user_id"`
	DisplayName    string       `json:"display_name"`
	Email          string       `json:"email,omitempty"`
	Provider       AuthProvider `json:"provider"`
}

// CreatorName returns the display name to stamp on created assignments.
func (i *Identity) CreatorName() string {
	if i == nil || i.DisplayName == "" {
		return AnonymousCreator
	}
	return i.DisplayName
}
