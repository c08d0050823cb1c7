// Package lyrics turns lookup queries into lyrics: the classifier normalizes raw input
// into a track reference and the resolver walks the provider chain.
package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"lyricsfinder/internal/core"
)

const (
	// Provider names used in logs and metrics.
	ProviderGenius    = "genius"
	ProviderLyricsOVH = "lyrics_ovh"
	ProviderLRCLib    = "lrclib"

	// maxResponseSize caps provider response bodies.
	maxResponseSize = 1 << 20
)

var (
	// ErrNotFound is returned by providers that have nothing for the requested track.
	ErrNotFound = errors.New("not found")
)

// StatusError reports a provider answering with a non-200 status.
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}

// SearchHit is one result of a song search.
type SearchHit struct {
	Title  string
	Artist string
	URL    string
}

// SongSearcher checks that a song exists before lyrics are fetched.
type SongSearcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]SearchHit, error)
}

// LyricsProvider fetches lyrics text for a track.
type LyricsProvider interface {
	Name() string
	Fetch(ctx context.Context, ref core.TrackRef) core.LyricsResult
}

// MetricsRecorder receives one call per outbound provider request.
type MetricsRecorder interface {
	RecordProviderCall(provider, status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordProviderCall(string, string) {}

// isTimeout reports whether err came from an exceeded client timeout or deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyTransportError maps an http.Client error to its failure kind.
func classifyTransportError(err error) core.FailureKind {
	if isTimeout(err) {
		return core.FailureProviderTimeout
	}
	return core.FailureProviderNetworkError
}

// newProviderRequest builds a GET request carrying the service user agent.
func newProviderRequest(ctx context.Context, reqURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

const userAgent = "lyricsfinder/1.0"
