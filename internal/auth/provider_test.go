package auth

import (
	"errors"
	"testing"

	"github.com/markbates/goth"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		user    goth.User
		want    models.Identity
		wantErr bool
	}{
		{
			name: "google profile with name and email",
			user: goth.User{
				Provider: "google",
				UserID:   "108942376",
				Name:     "Alex Morgan",
				Email:    "alex@example.com",
			},
			want: models.Identity{
				ProviderUserID: "108942376",
				DisplayName:    "Alex Morgan",
				Email:          "alex@example.com",
				Provider:       models.ProviderGoogle,
			},
		},
		{
			name: "github profile falls back to username",
			user: goth.User{
				Provider: "github",
				UserID:   "5512",
				NickName: "amorgan-dev",
			},
			want: models.Identity{
				ProviderUserID: "5512",
				DisplayName:    "amorgan-dev",
				Provider:       models.ProviderGitHub,
			},
		},
		{
			name: "display name wins over username",
			user: goth.User{
				Provider: "github",
				UserID:   "5512",
				Name:     "Alex Morgan",
				NickName: "amorgan-dev",
			},
			want: models.Identity{
				ProviderUserID: "5512",
				DisplayName:    "Alex Morgan",
				Provider:       models.ProviderGitHub,
			},
		},
		{
			name:    "profile without user id is unusable",
			user:    goth.User{Provider: "google"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.user)
			if tt.wantErr {
				if !errors.Is(err, ErrAuthenticationFailed) {
					t.Errorf("Normalize() error = %v, want ErrAuthenticationFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
