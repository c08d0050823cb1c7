package lyrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"lyricsfinder/internal/core"
	"lyricsfinder/pkg/fuzzy"
)

// Resolver walks the lookup chain for a track: an optional existence check,
// the primary lyrics source, then any fallback sources in order.
type Resolver struct {
	searcher   SongSearcher
	primary    LyricsProvider
	fallbacks  []LyricsProvider
	normalizer *fuzzy.Normalizer
	recorder   MetricsRecorder
	logger     *zap.Logger
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithSearcher enables the existence check before fetching lyrics.
func WithSearcher(searcher SongSearcher) ResolverOption {
	return func(r *Resolver) {
		r.searcher = searcher
	}
}

// WithFallback appends a secondary lyrics source.
func WithFallback(provider LyricsProvider) ResolverOption {
	return func(r *Resolver) {
		r.fallbacks = append(r.fallbacks, provider)
	}
}

// WithRecorder reports every provider call to recorder.
func WithRecorder(recorder MetricsRecorder) ResolverOption {
	return func(r *Resolver) {
		if recorder != nil {
			r.recorder = recorder
		}
	}
}

// NewResolver creates a resolver around the primary lyrics source.
func NewResolver(primary LyricsProvider, logger *zap.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		primary:    primary,
		normalizer: fuzzy.NewNormalizer(),
		recorder:   nopRecorder{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns lyrics for ref or the failure that ended the chain.
func (r *Resolver) Resolve(ctx context.Context, ref core.TrackRef) core.LyricsResult {
	if r.searcher != nil {
		if failure, ok := r.checkExists(ctx, ref); !ok {
			return failure
		}
	}

	result := r.fetch(ctx, r.primary, ref)
	if result.OK() {
		return result
	}

	for _, fallback := range r.fallbacks {
		fallbackResult := r.fetch(ctx, fallback, ref)
		if fallbackResult.OK() {
			return fallbackResult
		}
		r.logger.Debug("Fallback provider had no lyrics",
			zap.String("provider", fallback.Name()),
			zap.String("kind", fallbackResult.Kind.String()))
	}
	return result
}

// checkExists searches for the track. The hits only gate the lookup; they are
// never used as a lyrics source.
func (r *Resolver) checkExists(ctx context.Context, ref core.TrackRef) (core.LyricsResult, bool) {
	query := strings.TrimSpace(ref.Artist + " " + ref.Title)
	hits, err := r.searcher.Search(ctx, query)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			r.recorder.RecordProviderCall(r.searcher.Name(), core.FailureProviderHTTPError.String())
			r.logger.Info("Song search rejected",
				zap.String("query", query),
				zap.Int("status_code", statusErr.StatusCode))
			return core.Failure(core.FailureNotFound, core.MessageSongNotFound), false
		}

		kind := classifyTransportError(err)
		r.recorder.RecordProviderCall(r.searcher.Name(), kind.String())
		r.logger.Warn("Song search failed", zap.String("query", query), zap.Error(err))
		return core.Failure(kind, "Error: "+err.Error()), false
	}

	if len(hits) == 0 {
		r.recorder.RecordProviderCall(r.searcher.Name(), core.FailureNotFound.String())
		r.logger.Info("Song not found", zap.String("query", query))
		return core.Failure(core.FailureNotFound, core.MessageSongNotFound), false
	}

	r.recorder.RecordProviderCall(r.searcher.Name(), core.StatusSuccess)
	best, score := r.bestHit(ref, hits)
	r.logger.Debug("Song search matched",
		zap.String("query", query),
		zap.Int("hits", len(hits)),
		zap.String("best_artist", best.Artist),
		zap.String("best_title", best.Title),
		zap.String("best_url", best.URL),
		zap.Float64("score", score))
	return core.LyricsResult{}, true
}

func (r *Resolver) bestHit(ref core.TrackRef, hits []SearchHit) (SearchHit, float64) {
	best := hits[0]
	bestScore := -1.0
	for _, hit := range hits {
		score := r.normalizer.MatchScore(ref.Artist, ref.Title, hit.Artist, hit.Title)
		if score > bestScore {
			best, bestScore = hit, score
		}
	}
	return best, bestScore
}

func (r *Resolver) fetch(ctx context.Context, provider LyricsProvider, ref core.TrackRef) core.LyricsResult {
	start := time.Now()
	result := provider.Fetch(ctx, ref)

	status := core.StatusSuccess
	if !result.OK() {
		status = result.Kind.String()
	}
	r.recorder.RecordProviderCall(provider.Name(), status)

	r.logger.Debug("Lyrics provider answered",
		zap.String("provider", provider.Name()),
		zap.String("artist", ref.Artist),
		zap.String("title", ref.Title),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)))
	return result
}
