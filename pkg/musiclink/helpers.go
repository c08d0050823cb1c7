package musiclink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultRequestTimeout bounds every metadata request.
	DefaultRequestTimeout = 10 * time.Second
	// maxHTTPRedirects is the maximum number of HTTP redirects to follow.
	maxHTTPRedirects = 3
	// maxOEmbedReadSize limits the amount of JSON we read from an oEmbed endpoint.
	maxOEmbedReadSize = 64 * 1024
)

var (
	// ErrTooManyRedirects is returned when too many redirects are encountered.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// newHTTPClient creates a new HTTP client with the given timeout and redirect validation.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxHTTPRedirects {
				return ErrTooManyRedirects
			}
			return nil
		},
	}
}

// fetchOEmbedJSON fetches and decodes JSON from an oEmbed API endpoint.
// Every failure is reported as ErrMetadataUnavailable wrapping the cause.
func fetchOEmbedJSON(
	ctx context.Context,
	client *http.Client,
	oembedURL string,
	params url.Values,
	dest interface{},
) error {
	reqURL := fmt.Sprintf("%s?%s", oembedURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: oEmbed API returned status %d", ErrMetadataUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOEmbedReadSize)).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode oEmbed response: %w", ErrMetadataUnavailable, err)
	}

	return nil
}
