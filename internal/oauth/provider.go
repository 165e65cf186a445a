// Package oauth implements the third-party login resolvers. Each provider
// exposes the same two capabilities: build the consent URL and turn an
// authorization code into a normalized profile.
package oauth

import (
	"context"
	"errors"

	"github.com/devfolio/portfolio-backend/internal/config"
)

var ErrUnknownProvider = errors.New("unknown oauth provider")

// Profile is the provider-independent result of a successful callback.
type Profile struct {
	Provider   string
	ExternalID string
	Email      string
	Name       string
}

// Resolver is implemented once per provider.
type Resolver interface {
	Name() string
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*Profile, error)
}

// Registry holds the configured resolvers keyed by provider name.
type Registry struct {
	resolvers map[string]Resolver
}

// NewRegistry registers every provider that has credentials configured.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{resolvers: make(map[string]Resolver)}

	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		r.register(NewGoogleResolver(cfg))
	}
	if cfg.GithubClientID != "" && cfg.GithubClientSecret != "" {
		r.register(NewGithubResolver(cfg))
	}

	return r
}

func (r *Registry) register(res Resolver) {
	r.resolvers[res.Name()] = res
}

// Get returns the resolver for a provider name.
func (r *Registry) Get(name string) (Resolver, error) {
	res, ok := r.resolvers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return res, nil
}

// Names lists the configured providers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	return names
}
