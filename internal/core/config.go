package core

import (
	"fmt"
	"time"
)

const (
	// DefaultServerPort is the port used when neither the flag nor PORT is set.
	DefaultServerPort = 10000
	// DefaultLookupTimeout bounds every outbound provider call.
	DefaultLookupTimeout = 10 * time.Second
	// DefaultServerReadTimeout is the HTTP server read timeout.
	DefaultServerReadTimeout = 10 * time.Second
	// DefaultServerWriteTimeout covers the worst case of three sequential provider calls.
	DefaultServerWriteTimeout = 35 * time.Second

	DefaultGeniusBaseURL    = "https://api.genius.com"
	DefaultLyricsOVHBaseURL = "https://api.lyrics.ovh/v1"
	DefaultLRCLibBaseURL    = "https://lrclib.net/api"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Genius    GeniusConfig
	LyricsOVH LyricsOVHConfig
	LRCLib    LRCLibConfig
	YouTube   YouTubeConfig
	Spotify   SpotifyConfig
	Lookup    LookupConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type GeniusConfig struct {
	APIKey  string
	BaseURL string
}

type LyricsOVHConfig struct {
	BaseURL string
}

type LRCLibConfig struct {
	Enabled bool
	BaseURL string
}

// YouTubeConfig overrides the oEmbed endpoint. Empty selects the public one.
type YouTubeConfig struct {
	OEmbedURL string
}

// SpotifyConfig holds optional Web API client credentials. When empty, Spotify
// links are resolved through the public oEmbed endpoint only.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	OEmbedURL    string
	APIBaseURL   string
}

// HasCredentials reports whether both client credentials are set.
func (c SpotifyConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type LookupConfig struct {
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         DefaultServerPort,
			ReadTimeout:  DefaultServerReadTimeout,
			WriteTimeout: DefaultServerWriteTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
		Genius: GeniusConfig{
			BaseURL: DefaultGeniusBaseURL,
		},
		LyricsOVH: LyricsOVHConfig{
			BaseURL: DefaultLyricsOVHBaseURL,
		},
		LRCLib: LRCLibConfig{
			Enabled: false,
			BaseURL: DefaultLRCLibBaseURL,
		},
		Lookup: LookupConfig{
			Timeout: DefaultLookupTimeout,
		},
	}
}

// Validate checks the values that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("%w: lookup timeout must be positive", ErrInvalidConfig)
	}
	if c.LyricsOVH.BaseURL == "" {
		return fmt.Errorf("%w: lyrics.ovh base URL is required", ErrInvalidConfig)
	}
	if c.LRCLib.Enabled && c.LRCLib.BaseURL == "" {
		return fmt.Errorf("%w: lrclib base URL is required when lrclib is enabled", ErrInvalidConfig)
	}
	if (c.Spotify.ClientID == "") != (c.Spotify.ClientSecret == "") {
		return fmt.Errorf("%w: spotify client id and secret must be set together", ErrInvalidConfig)
	}
	return nil
}
