package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lyricsfinder/internal/core"
)

// LRCLibClient fetches plain lyrics from lrclib.net. It is only used as a
// secondary source after lyrics.ovh.
type LRCLibClient struct {
	client  *http.Client
	baseURL string
}

type lrclibResponse struct {
	TrackName    string `json:"trackName"`
	ArtistName   string `json:"artistName"`
	Instrumental bool   `json:"instrumental"`
	PlainLyrics  string `json:"plainLyrics"`
}

// NewLRCLibClient creates an lrclib.net client.
func NewLRCLibClient(baseURL string, timeout time.Duration) *LRCLibClient {
	return &LRCLibClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *LRCLibClient) Name() string {
	return ProviderLRCLib
}

// Fetch looks the track up by artist and title.
func (c *LRCLibClient) Fetch(ctx context.Context, ref core.TrackRef) core.LyricsResult {
	lyrics, err := c.get(ctx, ref)
	var statusErr *StatusError
	switch {
	case err == nil:
		return core.Success(lyrics)
	case errors.Is(err, ErrNotFound):
		return core.Failure(core.FailureNotFound, core.MessageNoLyrics)
	case errors.As(err, &statusErr):
		return core.Failure(core.FailureProviderHTTPError,
			fmt.Sprintf("Failed to fetch lyrics (Status code: %d)", statusErr.StatusCode))
	case isTimeout(err):
		return core.Failure(core.FailureProviderTimeout, core.MessageTimeout)
	default:
		return core.Failure(core.FailureProviderNetworkError, "An error occurred: "+err.Error())
	}
}

func (c *LRCLibClient) get(ctx context.Context, ref core.TrackRef) (string, error) {
	params := url.Values{}
	params.Set("artist_name", strings.TrimSpace(ref.Artist))
	params.Set("track_name", strings.TrimSpace(ref.Title))
	reqURL := fmt.Sprintf("%s/get?%s", c.baseURL, params.Encode())

	req, err := newProviderRequest(ctx, reqURL)
	if err != nil {
		return "", fmt.Errorf("create lrclib request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: ProviderLRCLib, StatusCode: resp.StatusCode}
	}

	var body lrclibResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode lrclib response: %w", err)
	}

	if body.Instrumental || body.PlainLyrics == "" {
		return "", ErrNotFound
	}
	return body.PlainLyrics, nil
}
