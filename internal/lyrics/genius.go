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
)

// GeniusClient searches the Genius API. The search only confirms that a song exists.
type GeniusClient struct {
	client  *http.Client
	baseURL string
	token   string
}

type geniusSearchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				Title         string `json:"title"`
				URL           string `json:"url"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// NewGeniusClient creates a Genius search client authenticated with a bearer token.
func NewGeniusClient(baseURL, token string, timeout time.Duration) *GeniusClient {
	return &GeniusClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func (c *GeniusClient) Name() string {
	return ProviderGenius
}

// Search runs a free-text search and returns the hits in Genius' order.
func (c *GeniusClient) Search(ctx context.Context, query string) ([]SearchHit, error) {
	params := url.Values{}
	params.Set("q", query)
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := newProviderRequest(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("create genius request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Provider: ProviderGenius, StatusCode: resp.StatusCode}
	}

	var searchResp geniusSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode genius response: %w", err)
	}

	hits := make([]SearchHit, 0, len(searchResp.Response.Hits))
	for _, hit := range searchResp.Response.Hits {
		hits = append(hits, SearchHit{
			Title:  hit.Result.Title,
			Artist: hit.Result.PrimaryArtist.Name,
			URL:    hit.Result.URL,
		})
	}
	return hits, nil
}
