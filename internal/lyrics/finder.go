package lyrics

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"lyricsfinder/internal/core"
	"lyricsfinder/pkg/musiclink"
)

// Finder implements core.LyricsFinder on top of a Classifier and a Resolver.
type Finder struct {
	classifier *Classifier
	resolver   *Resolver
	logger     *zap.Logger
}

var _ core.LyricsFinder = (*Finder)(nil)

// NewFinder wires the classifier and resolver from configuration.
// recorder may be nil.
func NewFinder(ctx context.Context, cfg *core.Config, logger *zap.Logger, recorder MetricsRecorder) *Finder {
	timeout := cfg.Lookup.Timeout

	var spotifyAPI musiclink.SpotifyTrackGetter
	if cfg.Spotify.HasCredentials() {
		spotifyAPI = musiclink.NewSpotifyWebAPIClient(ctx,
			cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.APIBaseURL, timeout)
		logger.Info("Spotify Web API enabled for link metadata")
	}

	links := musiclink.NewManager(musiclink.Options{
		Timeout:          timeout,
		YouTubeOEmbedURL: cfg.YouTube.OEmbedURL,
		SpotifyOEmbedURL: cfg.Spotify.OEmbedURL,
		SpotifyWebAPI:    spotifyAPI,
	})

	opts := []ResolverOption{WithRecorder(recorder)}
	if cfg.Genius.APIKey != "" {
		opts = append(opts, WithSearcher(NewGeniusClient(cfg.Genius.BaseURL, cfg.Genius.APIKey, timeout)))
	} else {
		logger.Warn("Genius API key not configured, skipping song existence check")
	}
	if cfg.LRCLib.Enabled {
		opts = append(opts, WithFallback(NewLRCLibClient(cfg.LRCLib.BaseURL, timeout)))
	}

	resolverLogger := logger.Named("resolver")
	resolver := NewResolver(NewLyricsOVHClient(cfg.LyricsOVH.BaseURL, timeout), resolverLogger, opts...)

	return NewFinderWith(NewClassifier(links, logger.Named("classifier")), resolver, logger)
}

// NewFinderWith builds a finder from already constructed parts.
func NewFinderWith(classifier *Classifier, resolver *Resolver, logger *zap.Logger) *Finder {
	return &Finder{
		classifier: classifier,
		resolver:   resolver,
		logger:     logger,
	}
}

// Find classifies a free-form query or link and looks its lyrics up.
func (f *Finder) Find(ctx context.Context, input string) core.LyricsResult {
	ref, err := f.classifier.Classify(ctx, input)
	if err != nil {
		f.logger.Info("Could not classify query", zap.String("query", input), zap.Error(err))
		return core.FailureForError(err)
	}
	return f.resolver.Resolve(ctx, ref)
}

// FindTrack looks up an explicit artist and title.
func (f *Finder) FindTrack(ctx context.Context, ref core.TrackRef) core.LyricsResult {
	ref = core.TrackRef{
		Artist: strings.TrimSpace(ref.Artist),
		Title:  strings.TrimSpace(ref.Title),
	}
	if ref.Title == "" {
		return core.Failure(core.FailureInvalidInput, core.MessageMissingParameters)
	}
	return f.resolver.Resolve(ctx, ref)
}
