package lyrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lyricsfinder/internal/core"
)

func TestLyricsOVHClient_Fetch(t *testing.T) {
	tests := []struct {
		name            string
		statusCode      int
		body            string
		expectedOK      bool
		expectedLyrics  string
		expectedMessage string
		expectedKind    core.FailureKind
	}{
		{
			name:           "Lyrics returned unmodified",
			statusCode:     http.StatusOK,
			body:           `{"lyrics":"Never gonna give you up\r\nNever gonna let you down\n"}`,
			expectedOK:     true,
			expectedLyrics: "Never gonna give you up\r\nNever gonna let you down\n",
		},
		{
			name:            "Empty lyrics",
			statusCode:      http.StatusOK,
			body:            `{"lyrics":""}`,
			expectedMessage: "No lyrics found for this song",
			expectedKind:    core.FailureNotFound,
		},
		{
			name:            "Missing lyrics field",
			statusCode:      http.StatusOK,
			body:            `{}`,
			expectedMessage: "No lyrics found for this song",
			expectedKind:    core.FailureNotFound,
		},
		{
			name:            "Not found status",
			statusCode:      http.StatusNotFound,
			body:            `{"error":"No lyrics found"}`,
			expectedMessage: "Failed to fetch lyrics (Status code: 404)",
			expectedKind:    core.FailureProviderHTTPError,
		},
		{
			name:            "Server error status",
			statusCode:      http.StatusBadGateway,
			body:            ``,
			expectedMessage: "Failed to fetch lyrics (Status code: 502)",
			expectedKind:    core.FailureProviderHTTPError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewLyricsOVHClient(server.URL+"/v1", time.Second)
			result := client.Fetch(context.Background(), core.TrackRef{Artist: "Rick Astley", Title: "Never Gonna Give You Up"})

			if result.OK() != tt.expectedOK {
				t.Fatalf("Fetch() OK = %v, want %v (message %q)", result.OK(), tt.expectedOK, result.Message)
			}
			if tt.expectedOK {
				if result.Lyrics != tt.expectedLyrics {
					t.Errorf("Fetch() lyrics = %q, want %q", result.Lyrics, tt.expectedLyrics)
				}
				return
			}
			if result.Message != tt.expectedMessage {
				t.Errorf("Fetch() message = %q, want %q", result.Message, tt.expectedMessage)
			}
			if result.Kind != tt.expectedKind {
				t.Errorf("Fetch() kind = %v, want %v", result.Kind, tt.expectedKind)
			}
		})
	}
}

func TestLyricsOVHClient_RequestPath(t *testing.T) {
	tests := []struct {
		name         string
		ref          core.TrackRef
		expectedPath string
	}{
		{
			name:         "Artist and title",
			ref:          core.TrackRef{Artist: "Rick Astley", Title: "Never Gonna Give You Up"},
			expectedPath: "/v1/Rick%20Astley/Never%20Gonna%20Give%20You%20Up",
		},
		{
			name:         "Surrounding whitespace trimmed",
			ref:          core.TrackRef{Artist: "  Queen ", Title: " Bohemian Rhapsody  "},
			expectedPath: "/v1/Queen/Bohemian%20Rhapsody",
		},
		{
			name:         "Slash is escaped",
			ref:          core.TrackRef{Artist: "AC/DC", Title: "T.N.T."},
			expectedPath: "/v1/AC%2FDC/T.N.T.",
		},
		{
			name:         "Empty artist leaves empty segment",
			ref:          core.TrackRef{Title: "Bohemian Rhapsody"},
			expectedPath: "/v1//Bohemian%20Rhapsody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				_, _ = w.Write([]byte(`{"lyrics":"la la"}`))
			}))
			defer server.Close()

			client := NewLyricsOVHClient(server.URL+"/v1/", time.Second)
			if result := client.Fetch(context.Background(), tt.ref); !result.OK() {
				t.Fatalf("Fetch() failed: %s", result.Message)
			}
			if gotPath != tt.expectedPath {
				t.Errorf("request path = %q, want %q", gotPath, tt.expectedPath)
			}
		})
	}
}

func TestLyricsOVHClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewLyricsOVHClient(server.URL, 50*time.Millisecond)
	result := client.Fetch(context.Background(), core.TrackRef{Artist: "a", Title: "b"})

	if result.Message != "Request timed out. Please try again." {
		t.Errorf("Fetch() message = %q, want timeout message", result.Message)
	}
	if result.Kind != core.FailureProviderTimeout {
		t.Errorf("Fetch() kind = %v, want %v", result.Kind, core.FailureProviderTimeout)
	}
}

func TestLyricsOVHClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewLyricsOVHClient(baseURL, time.Second)
	result := client.Fetch(context.Background(), core.TrackRef{Artist: "a", Title: "b"})

	if !strings.HasPrefix(result.Message, "An error occurred: ") {
		t.Errorf("Fetch() message = %q, want 'An error occurred: ' prefix", result.Message)
	}
	if result.Kind != core.FailureProviderNetworkError {
		t.Errorf("Fetch() kind = %v, want %v", result.Kind, core.FailureProviderNetworkError)
	}
}

func TestGeniusClient_Search(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("q")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"response":{"hits":[
			{"result":{"title":"Never Gonna Give You Up","url":"https://genius.com/rick","primary_artist":{"name":"Rick Astley"}}},
			{"result":{"title":"Together Forever","url":"https://genius.com/together","primary_artist":{"name":"Rick Astley"}}}
		]}}`))
	}))
	defer server.Close()

	client := NewGeniusClient(server.URL, "secret-token", time.Second)
	hits, err := client.Search(context.Background(), "Rick Astley Never Gonna Give You Up")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotPath != "/search" {
		t.Errorf("path = %q, want /search", gotPath)
	}
	if gotQuery != "Rick Astley Never Gonna Give You Up" {
		t.Errorf("q = %q", gotQuery)
	}
	if len(hits) != 2 {
		t.Fatalf("Search() returned %d hits, want 2", len(hits))
	}
	want := SearchHit{Title: "Never Gonna Give You Up", Artist: "Rick Astley", URL: "https://genius.com/rick"}
	if hits[0] != want {
		t.Errorf("hits[0] = %+v, want %+v", hits[0], want)
	}
}

func TestGeniusClient_SearchErrors(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		expectedStatus int
	}{
		{name: "Unauthorized", statusCode: http.StatusUnauthorized, body: `{}`, expectedStatus: http.StatusUnauthorized},
		{name: "Server error", statusCode: http.StatusInternalServerError, body: ``, expectedStatus: http.StatusInternalServerError},
		{name: "Malformed JSON", statusCode: http.StatusOK, body: `{"response":`, expectedStatus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewGeniusClient(server.URL, "token", time.Second)
			_, err := client.Search(context.Background(), "query")
			if err == nil {
				t.Fatal("Search() expected error")
			}

			var statusErr *StatusError
			isStatus := errors.As(err, &statusErr)
			if tt.expectedStatus == 0 {
				if isStatus {
					t.Errorf("Search() error = %v, did not expect a status error", err)
				}
				return
			}
			if !isStatus || statusErr.StatusCode != tt.expectedStatus {
				t.Errorf("Search() error = %v, want status %d", err, tt.expectedStatus)
			}
		})
	}
}

func TestLRCLibClient_Fetch(t *testing.T) {
	tests := []struct {
		name            string
		statusCode      int
		body            string
		expectedOK      bool
		expectedLyrics  string
		expectedMessage string
		expectedKind    core.FailureKind
	}{
		{
			name:           "Plain lyrics",
			statusCode:     http.StatusOK,
			body:           `{"trackName":"Never Gonna Give You Up","artistName":"Rick Astley","plainLyrics":"We're no strangers to love"}`,
			expectedOK:     true,
			expectedLyrics: "We're no strangers to love",
		},
		{
			name:            "Instrumental track",
			statusCode:      http.StatusOK,
			body:            `{"instrumental":true,"plainLyrics":""}`,
			expectedMessage: "No lyrics found for this song",
			expectedKind:    core.FailureNotFound,
		},
		{
			name:            "Unknown track",
			statusCode:      http.StatusNotFound,
			body:            `{"code":404,"name":"TrackNotFound"}`,
			expectedMessage: "No lyrics found for this song",
			expectedKind:    core.FailureNotFound,
		},
		{
			name:            "Server error",
			statusCode:      http.StatusServiceUnavailable,
			body:            ``,
			expectedMessage: "Failed to fetch lyrics (Status code: 503)",
			expectedKind:    core.FailureProviderHTTPError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArtist, gotTrack, gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotArtist = r.URL.Query().Get("artist_name")
				gotTrack = r.URL.Query().Get("track_name")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewLRCLibClient(server.URL+"/api", time.Second)
			result := client.Fetch(context.Background(), core.TrackRef{Artist: " Rick Astley", Title: "Never Gonna Give You Up "})

			if gotPath != "/api/get" {
				t.Errorf("path = %q, want /api/get", gotPath)
			}
			if gotArtist != "Rick Astley" || gotTrack != "Never Gonna Give You Up" {
				t.Errorf("query = (%q, %q)", gotArtist, gotTrack)
			}
			if result.OK() != tt.expectedOK {
				t.Fatalf("Fetch() OK = %v, want %v (message %q)", result.OK(), tt.expectedOK, result.Message)
			}
			if tt.expectedOK {
				if result.Lyrics != tt.expectedLyrics {
					t.Errorf("Fetch() lyrics = %q, want %q", result.Lyrics, tt.expectedLyrics)
				}
				return
			}
			if result.Message != tt.expectedMessage || result.Kind != tt.expectedKind {
				t.Errorf("Fetch() = (%q, %v), want (%q, %v)", result.Message, result.Kind, tt.expectedMessage, tt.expectedKind)
			}
		})
	}
}
