// Package musiclink resolves YouTube and Spotify links to track information through
// the platforms' public metadata endpoints.
package musiclink

import (
	"context"
	"errors"
)

var (
	// ErrNoResolver is returned for links no resolver handles.
	ErrNoResolver = errors.New("no resolver found for URL")
	// ErrMetadataUnavailable is returned when a platform's metadata endpoint
	// could not supply data for a supported link.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
)

// Kind identifies the platform a link belongs to.
type Kind int

const (
	// KindUnsupported is any link that is neither a YouTube nor a Spotify track link.
	KindUnsupported Kind = iota
	// KindYouTube is a youtube.com watch link or a youtu.be short link.
	KindYouTube
	// KindSpotify is an open.spotify.com track link.
	KindSpotify
)

func (k Kind) String() string {
	switch k {
	case KindYouTube:
		return "youtube"
	case KindSpotify:
		return "spotify"
	default:
		return "unsupported"
	}
}

// TrackInfo holds extracted track information. Either field may be empty.
type TrackInfo struct {
	Title  string // Track title.
	Artist string // Artist name(s).
}

// Resolver defines the interface for resolving music links from one platform to track information.
type Resolver interface {
	// Kind returns the platform this resolver handles.
	Kind() Kind

	// Resolve extracts track information from a platform URL.
	Resolve(ctx context.Context, url string) (*TrackInfo, error)

	// CanResolve checks if this resolver can handle the given URL.
	CanResolve(url string) bool
}
