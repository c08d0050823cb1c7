package core

import (
	"context"
	"encoding/json"
)

const (
	// StatusSuccess is the status field value of a successful lookup.
	StatusSuccess = "success"
	// StatusError is the status field value of a failed lookup.
	StatusError = "error"
)

// TrackRef is a resolved (artist, title) pair ready for lyrics lookup.
// An empty Artist means the lookup searches by title only.
type TrackRef struct {
	Artist string
	Title  string
}

// HasArtist reports whether the reference carries an artist name.
func (r TrackRef) HasArtist() bool {
	return r.Artist != ""
}

// FailureKind classifies why a lookup did not produce lyrics.
type FailureKind int

const (
	// FailureNone marks a successful result.
	FailureNone FailureKind = iota
	// FailureNotFound means the song or its lyrics could not be found.
	FailureNotFound
	// FailureProviderTimeout means an outbound call exceeded its timeout.
	FailureProviderTimeout
	// FailureProviderHTTPError means a provider answered with a non-200 status.
	FailureProviderHTTPError
	// FailureProviderNetworkError means an outbound call failed below HTTP.
	FailureProviderNetworkError
	// FailureUnsupportedURL means the input was a URL from an unsupported platform.
	FailureUnsupportedURL
	// FailureExtractionFailed means no song information could be recovered from a URL.
	FailureExtractionFailed
	// FailureInvalidInput means the input was empty or otherwise unusable.
	FailureInvalidInput
)

// String returns the label used for logs and metrics.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNotFound:
		return "not_found"
	case FailureProviderTimeout:
		return "provider_timeout"
	case FailureProviderHTTPError:
		return "provider_http_error"
	case FailureProviderNetworkError:
		return "provider_network_error"
	case FailureUnsupportedURL:
		return "unsupported_url"
	case FailureExtractionFailed:
		return "extraction_failed"
	case FailureInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// LyricsResult is the outcome of one lookup: either lyrics or a failure message.
type LyricsResult struct {
	Lyrics  string
	Message string
	Kind    FailureKind
}

// Success builds a successful result carrying the lyrics unmodified.
func Success(lyrics string) LyricsResult {
	return LyricsResult{Lyrics: lyrics, Kind: FailureNone}
}

// Failure builds a failed result with a user-facing message.
func Failure(kind FailureKind, message string) LyricsResult {
	return LyricsResult{Message: message, Kind: kind}
}

// OK reports whether the result carries lyrics.
func (r LyricsResult) OK() bool {
	return r.Kind == FailureNone
}

// Status returns the wire status of the result.
func (r LyricsResult) Status() string {
	if r.OK() {
		return StatusSuccess
	}
	return StatusError
}

type lyricsResultJSON struct {
	Status  string `json:"status"`
	Lyrics  string `json:"lyrics,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON encodes the result as {status, lyrics} or {status, message}.
func (r LyricsResult) MarshalJSON() ([]byte, error) {
	if r.OK() {
		return json.Marshal(lyricsResultJSON{Status: StatusSuccess, Lyrics: r.Lyrics})
	}
	return json.Marshal(lyricsResultJSON{Status: StatusError, Message: r.Message})
}

// LyricsFinder turns raw input or an explicit track reference into lyrics.
type LyricsFinder interface {
	Find(ctx context.Context, input string) LyricsResult
	FindTrack(ctx context.Context, ref TrackRef) LyricsResult
}
