package musiclink

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"lyricsfinder/pkg/text"
)

const (
	// YouTubeOEmbedURL is the YouTube oEmbed API endpoint.
	YouTubeOEmbedURL = "https://www.youtube.com/oembed"
)

// youtubeLinkRegex matches watch links and youtu.be short links, with or without scheme and www.
var youtubeLinkRegex = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/)[A-Za-z0-9_-]+`)

// YouTubeOEmbedResponse represents the response from YouTube's oEmbed API.
type YouTubeOEmbedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// YouTubeResolver resolves YouTube links to track information.
type YouTubeResolver struct {
	client    *http.Client
	oembedURL string
}

// NewYouTubeResolver creates a new YouTube link resolver. An empty oembedURL
// selects the public endpoint.
func NewYouTubeResolver(oembedURL string, timeout time.Duration) *YouTubeResolver {
	if oembedURL == "" {
		oembedURL = YouTubeOEmbedURL
	}
	return &YouTubeResolver{
		client:    newHTTPClient(timeout),
		oembedURL: oembedURL,
	}
}

func (r *YouTubeResolver) Kind() Kind {
	return KindYouTube
}

// CanResolve checks if the URL is a YouTube watch or short link.
func (r *YouTubeResolver) CanResolve(rawURL string) bool {
	return youtubeLinkRegex.MatchString(rawURL)
}

// Resolve extracts track information from a YouTube URL using the oEmbed API.
// A video title of the form "Artist - Title" is split once on the first separator.
func (r *YouTubeResolver) Resolve(ctx context.Context, rawURL string) (*TrackInfo, error) {
	if !r.CanResolve(rawURL) {
		return nil, fmt.Errorf("%w: not a YouTube URL", ErrNoResolver)
	}

	params := url.Values{}
	params.Set("url", text.CleanURL(rawURL))
	params.Set("format", "json")

	var oembedResp YouTubeOEmbedResponse
	if err := fetchOEmbedJSON(ctx, r.client, r.oembedURL, params, &oembedResp); err != nil {
		return nil, err
	}

	return r.parseTrackInfo(&oembedResp), nil
}

// parseTrackInfo splits the video title into artist and title.
func (r *YouTubeResolver) parseTrackInfo(resp *YouTubeOEmbedResponse) *TrackInfo {
	artist, title, ok := text.SplitArtistTitle(resp.Title)
	if !ok {
		return &TrackInfo{Title: resp.Title}
	}
	return &TrackInfo{Title: title, Artist: artist}
}
