package musiclink

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	t.Helper()

	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{name: "Explicit timeout", timeout: 3 * time.Second, expectedTimeout: 3 * time.Second},
		{name: "Zero falls back to default", timeout: 0, expectedTimeout: DefaultRequestTimeout},
		{name: "Negative falls back to default", timeout: -time.Second, expectedTimeout: DefaultRequestTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newHTTPClient(tt.timeout)
			if client.Timeout != tt.expectedTimeout {
				t.Errorf("newHTTPClient() timeout = %v, want %v", client.Timeout, tt.expectedTimeout)
			}
			if client.CheckRedirect == nil {
				t.Error("newHTTPClient() should validate redirects")
			}
		})
	}
}

func TestNewHTTPClient_TooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/again", http.StatusFound)
	}))
	defer server.Close()

	client := newHTTPClient(time.Second)
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	resp, err := client.Do(req)
	if err == nil {
		_ = resp.Body.Close()
		t.Fatal("expected redirect loop to fail")
	}
	if !errors.Is(err, ErrTooManyRedirects) {
		t.Errorf("Do() error = %v, want ErrTooManyRedirects", err)
	}
}

func TestFetchOEmbedJSON_EncodesParameters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"title":"A & B - C","author_name":"D"}`))
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("url", "https://www.youtube.com/watch?v=abc&list=x")

	var dest YouTubeOEmbedResponse
	err := fetchOEmbedJSON(context.Background(), newHTTPClient(time.Second), server.URL, params, &dest)
	if err != nil {
		t.Fatalf("fetchOEmbedJSON() unexpected error: %v", err)
	}

	if gotQuery.Get("url") != "https://www.youtube.com/watch?v=abc&list=x" {
		t.Errorf("url parameter = %q, should survive query encoding", gotQuery.Get("url"))
	}
	if dest.Title != "A & B - C" || dest.AuthorName != "D" {
		t.Errorf("decoded = %+v", dest)
	}
}

func TestFetchOEmbedJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	var dest YouTubeOEmbedResponse
	err := fetchOEmbedJSON(context.Background(), newHTTPClient(50*time.Millisecond), server.URL, url.Values{}, &dest)
	if !errors.Is(err, ErrMetadataUnavailable) {
		t.Errorf("fetchOEmbedJSON() error = %v, want ErrMetadataUnavailable", err)
	}
}
