package musiclink

import (
	"context"
	"time"
)

// Options configures the resolvers created by NewManager.
type Options struct {
	Timeout          time.Duration
	YouTubeOEmbedURL string
	SpotifyOEmbedURL string
	SpotifyWebAPI    SpotifyTrackGetter
}

// Manager coordinates the link resolvers. Resolvers are consulted in order,
// YouTube before Spotify.
type Manager struct {
	resolvers []Resolver
}

// NewManager creates a new music link manager with all supported resolvers.
func NewManager(opts Options) *Manager {
	return NewManagerWithResolvers(
		NewYouTubeResolver(opts.YouTubeOEmbedURL, opts.Timeout),
		NewSpotifyResolver(opts.SpotifyOEmbedURL, opts.Timeout, opts.SpotifyWebAPI),
	)
}

// NewManagerWithResolvers creates a manager over an explicit resolver list.
func NewManagerWithResolvers(resolvers ...Resolver) *Manager {
	return &Manager{resolvers: resolvers}
}

// Classify returns the platform of the first resolver that accepts the URL.
func (m *Manager) Classify(url string) Kind {
	if resolver := m.resolverFor(url); resolver != nil {
		return resolver.Kind()
	}
	return KindUnsupported
}

// Resolve attempts to resolve a music link using the appropriate resolver.
func (m *Manager) Resolve(ctx context.Context, url string) (*TrackInfo, error) {
	resolver := m.resolverFor(url)
	if resolver == nil {
		return nil, ErrNoResolver
	}
	return resolver.Resolve(ctx, url)
}

// CanResolve checks if any resolver can handle the given URL.
func (m *Manager) CanResolve(url string) bool {
	return m.resolverFor(url) != nil
}

func (m *Manager) resolverFor(url string) Resolver {
	for _, resolver := range m.resolvers {
		if resolver.CanResolve(url) {
			return resolver
		}
	}
	return nil
}
