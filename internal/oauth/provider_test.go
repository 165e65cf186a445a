package oauth

import (
	"testing"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOnlyConfiguredProviders(t *testing.T) {
	r := NewRegistry(&config.Config{})
	assert.Empty(t, r.Names())

	_, err := r.Get("google")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	r = NewRegistry(&config.Config{
		GoogleClientID:     "id",
		GoogleClientSecret: "secret",
	})
	assert.Equal(t, []string{"google"}, r.Names())

	_, err = r.Get("google")
	assert.NoError(t, err)
	_, err = r.Get("github")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestAuthCodeURLCarriesClientAndState(t *testing.T) {
	r := NewRegistry(&config.Config{
		GoogleClientID:     "test-client",
		GoogleClientSecret: "secret",
		GoogleCallbackURL:  "http://localhost:3000/api/auth/google/callback",
		GithubClientID:     "gh-client",
		GithubClientSecret: "gh-secret",
	})

	for _, name := range []string{"google", "github"} {
		res, err := r.Get(name)
		require.NoError(t, err)

		url := res.AuthCodeURL("random-state")
		assert.Contains(t, url, "state=random-state", name)
		assert.Contains(t, url, "client_id=", name)
	}
}
