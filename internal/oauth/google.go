package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleResolver struct {
	oauth *oauth2.Config
}

func NewGoogleResolver(cfg *config.Config) *GoogleResolver {
	return &GoogleResolver{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (r *GoogleResolver) Name() string {
	return models.ProviderGoogle
}

func (r *GoogleResolver) AuthCodeURL(state string) string {
	return r.oauth.AuthCodeURL(state)
}

func (r *GoogleResolver) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := r.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}

	resp, err := r.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("google userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google userinfo: %w", err)
	}

	if info.Email == "" {
		return nil, errors.New("google profile has no email")
	}

	return &Profile{
		Provider:   models.ProviderGoogle,
		ExternalID: info.ID,
		Email:      info.Email,
		Name:       info.Name,
	}, nil
}
