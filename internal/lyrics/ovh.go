package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lyricsfinder/internal/core"
)

// LyricsOVHClient fetches lyrics from lyrics.ovh by exact artist and title.
type LyricsOVHClient struct {
	client  *http.Client
	baseURL string
}

type lyricsOVHResponse struct {
	Lyrics string `json:"lyrics"`
}

// NewLyricsOVHClient creates a lyrics.ovh client.
func NewLyricsOVHClient(baseURL string, timeout time.Duration) *LyricsOVHClient {
	return &LyricsOVHClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *LyricsOVHClient) Name() string {
	return ProviderLyricsOVH
}

// Fetch requests {artist}/{title}. An empty artist leaves an empty path segment.
func (c *LyricsOVHClient) Fetch(ctx context.Context, ref core.TrackRef) core.LyricsResult {
	reqURL := c.lyricsURL(ref)

	req, err := newProviderRequest(ctx, reqURL)
	if err != nil {
		return core.Failure(core.FailureProviderNetworkError, "An error occurred: "+err.Error())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return core.Failure(core.FailureProviderTimeout, core.MessageTimeout)
		}
		return core.Failure(core.FailureProviderNetworkError, "An error occurred: "+err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return core.Failure(core.FailureProviderHTTPError,
			fmt.Sprintf("Failed to fetch lyrics (Status code: %d)", resp.StatusCode))
	}

	var body lyricsOVHResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		if isTimeout(err) {
			return core.Failure(core.FailureProviderTimeout, core.MessageTimeout)
		}
		return core.Failure(core.FailureProviderNetworkError, "An error occurred: "+err.Error())
	}

	if body.Lyrics == "" {
		return core.Failure(core.FailureNotFound, core.MessageNoLyrics)
	}
	return core.Success(body.Lyrics)
}

func (c *LyricsOVHClient) lyricsURL(ref core.TrackRef) string {
	artist := url.PathEscape(strings.TrimSpace(ref.Artist))
	title := url.PathEscape(strings.TrimSpace(ref.Title))
	return fmt.Sprintf("%s/%s/%s", c.baseURL, artist, title)
}
