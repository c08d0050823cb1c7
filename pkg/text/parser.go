// Package text provides input classification and "artist - title" splitting for lookup queries.
package text

import (
	"net/url"
	"strings"
)

const (
	// ArtistTitleSeparator separates artist and title in free-text queries and video titles.
	ArtistTitleSeparator = " - "
	// expectedSplitParts is the number of parts produced by a successful artist/title split.
	expectedSplitParts = 2
)

var (
	urlPrefixes = []string{"http://", "https://", "www."}

	trackingParams = []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "si"}
)

// InputType distinguishes URL input from direct text.
type InputType int

const (
	// InputTypeText is a direct "artist - title" or bare title query.
	InputTypeText InputType = iota
	// InputTypeURL is a link to be resolved through a platform's metadata endpoint.
	InputTypeURL
)

// Input is a trimmed, classified lookup query.
type Input struct {
	Type InputType
	Text string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseInput trims the raw query and decides whether it is a URL or direct text.
func (p *Parser) ParseInput(raw string) Input {
	trimmed := strings.TrimSpace(raw)

	if IsURL(trimmed) {
		return Input{Type: InputTypeURL, Text: trimmed}
	}
	return Input{Type: InputTypeText, Text: trimmed}
}

// IsURL reports whether s starts like a link.
func IsURL(s string) bool {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// SplitArtistTitle splits s once on the first " - ".
// When s has no separator, artist is empty and title is s unchanged.
func SplitArtistTitle(s string) (artist, title string, ok bool) {
	parts := strings.SplitN(s, ArtistTitleSeparator, expectedSplitParts)
	if len(parts) != expectedSplitParts {
		return "", s, false
	}
	return parts[0], parts[1], true
}

// CleanURL makes a link absolute and drops tracking parameters.
// Inputs that do not parse are returned unchanged.
func CleanURL(rawURL string) string {
	rawURL = strings.TrimRight(rawURL, ".,!?;")
	if strings.HasPrefix(rawURL, "www.") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	if u.RawQuery == "" {
		return u.String()
	}

	q := u.Query()
	for _, param := range trackingParams {
		q.Del(param)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
