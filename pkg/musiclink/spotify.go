package musiclink

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"lyricsfinder/pkg/text"
)

const (
	// SpotifyOEmbedURL is the Spotify oEmbed API endpoint.
	SpotifyOEmbedURL = "https://open.spotify.com/oembed"
)

var (
	// spotifyLinkRegex matches open.spotify.com track links, with or without scheme.
	spotifyLinkRegex = regexp.MustCompile(`^(https?://)?(open\.)?spotify\.com/track/[A-Za-z0-9]+`)
	// spotifyTrackIDRegex captures the track ID of a track link.
	spotifyTrackIDRegex = regexp.MustCompile(`spotify\.com/track/([A-Za-z0-9]+)`)
)

// SpotifyOEmbedResponse represents the response from Spotify's oEmbed API.
type SpotifyOEmbedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// SpotifyTrackGetter is the part of the Spotify Web API client used to look up tracks.
type SpotifyTrackGetter interface {
	GetTrack(ctx context.Context, id spotify.ID, opts ...spotify.RequestOption) (*spotify.FullTrack, error)
}

// SpotifyResolver resolves Spotify track links to track information. When a Web API
// client is set it is tried first; oEmbed is the fallback.
type SpotifyResolver struct {
	client    *http.Client
	oembedURL string
	webAPI    SpotifyTrackGetter
}

// NewSpotifyResolver creates a new Spotify link resolver. webAPI may be nil.
func NewSpotifyResolver(oembedURL string, timeout time.Duration, webAPI SpotifyTrackGetter) *SpotifyResolver {
	if oembedURL == "" {
		oembedURL = SpotifyOEmbedURL
	}
	return &SpotifyResolver{
		client:    newHTTPClient(timeout),
		oembedURL: oembedURL,
		webAPI:    webAPI,
	}
}

// NewSpotifyWebAPIClient builds a Web API client authenticated with the client
// credentials flow. An empty baseURL selects the public API.
func NewSpotifyWebAPIClient(ctx context.Context, clientID, clientSecret, baseURL string,
	timeout time.Duration) *spotify.Client {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	httpClient := cfg.Client(ctx)
	httpClient.Timeout = timeout

	var opts []spotify.ClientOption
	if baseURL != "" {
		opts = append(opts, spotify.WithBaseURL(baseURL))
	}
	return spotify.New(httpClient, opts...)
}

func (r *SpotifyResolver) Kind() Kind {
	return KindSpotify
}

// CanResolve checks if the URL is a Spotify track link.
func (r *SpotifyResolver) CanResolve(rawURL string) bool {
	return spotifyLinkRegex.MatchString(rawURL)
}

// Resolve extracts track information from a Spotify URL.
func (r *SpotifyResolver) Resolve(ctx context.Context, rawURL string) (*TrackInfo, error) {
	if !r.CanResolve(rawURL) {
		return nil, fmt.Errorf("%w: not a Spotify track URL", ErrNoResolver)
	}

	var webErr error
	if r.webAPI != nil {
		info, err := r.resolveWithWebAPI(ctx, rawURL)
		if err == nil {
			return info, nil
		}
		webErr = err
	}

	info, err := r.resolveWithOEmbed(ctx, rawURL)
	if err != nil {
		if webErr != nil {
			return nil, errors.Join(err, webErr)
		}
		return nil, err
	}
	return info, nil
}

// resolveWithWebAPI looks the track up by ID and uses its first artist.
func (r *SpotifyResolver) resolveWithWebAPI(ctx context.Context, rawURL string) (*TrackInfo, error) {
	trackID, err := r.extractTrackID(rawURL)
	if err != nil {
		return nil, err
	}

	track, err := r.webAPI.GetTrack(ctx, spotify.ID(trackID))
	if err != nil {
		return nil, fmt.Errorf("%w: spotify web api: %w", ErrMetadataUnavailable, err)
	}

	info := &TrackInfo{Title: track.Name}
	if len(track.Artists) > 0 {
		info.Artist = track.Artists[0].Name
	}
	return info, nil
}

func (r *SpotifyResolver) resolveWithOEmbed(ctx context.Context, rawURL string) (*TrackInfo, error) {
	params := url.Values{}
	params.Set("url", text.CleanURL(rawURL))

	var oembedResp SpotifyOEmbedResponse
	if err := fetchOEmbedJSON(ctx, r.client, r.oembedURL, params, &oembedResp); err != nil {
		return nil, err
	}

	return &TrackInfo{
		Title:  strings.TrimSpace(oembedResp.Title),
		Artist: strings.TrimSpace(oembedResp.AuthorName),
	}, nil
}

// extractTrackID extracts the track ID from a Spotify track link.
func (r *SpotifyResolver) extractTrackID(rawURL string) (string, error) {
	matches := spotifyTrackIDRegex.FindStringSubmatch(rawURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: no track ID in Spotify URL", ErrMetadataUnavailable)
	}
	return matches[1], nil
}
