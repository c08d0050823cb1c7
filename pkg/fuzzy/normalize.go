// Package fuzzy provides text normalization and similarity scoring for matching
// search hits against a requested artist and title.
package fuzzy

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// titleWeight is the share of the match score carried by the title when an artist is known.
	titleWeight = 0.6
	// artistWeight is the share of the match score carried by the artist.
	artistWeight = 0.4
)

var (
	featRegex       = regexp.MustCompile(`(?i)\s*[\(\[]?\s*\b(?:feat\.?|ft\.?|featuring)\s+[^\)\]]*[\)\]]?`)
	qualifierRegex  = regexp.MustCompile(`(?i)\s*[\(\[][^\)\]]*\b(?:official|video|audio|lyrics?|visualizer|remaster(?:ed)?|hd|4k)\b[^\)\]]*[\)\]]`)
	punctRegex      = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) NormalizeArtist(artist string) string {
	artist = strings.ReplaceAll(artist, "&", " and ")
	artist = n.basicNormalize(artist)
	artist = strings.TrimPrefix(artist, "the ")

	return artist
}

// NormalizeTitle strips featured-artist credits and video qualifiers
// such as "(Official Video)" before the basic normalization.
func (n *Normalizer) NormalizeTitle(title string) string {
	title = featRegex.ReplaceAllString(title, "")
	title = qualifierRegex.ReplaceAllString(title, "")

	return n.basicNormalize(title)
}

func (n *Normalizer) basicNormalize(text string) string {
	text = norm.NFKD.String(text)

	var result strings.Builder
	for _, r := range text {
		if !unicode.IsMark(r) {
			result.WriteRune(r)
		}
	}
	text = result.String()

	text = punctRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")

	text = strings.ToLower(text)
	text = strings.TrimSpace(text)

	return text
}

// CalculateSimilarity returns the longest-common-subsequence ratio of two strings in [0, 1].
func (n *Normalizer) CalculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	return float64(n.longestCommonSubsequence(s1, s2)) / float64(max(len(s1), len(s2)))
}

// MatchScore rates how well a candidate matches the wanted artist and title.
// An empty wanted artist scores on the title alone.
func (n *Normalizer) MatchScore(wantArtist, wantTitle, gotArtist, gotTitle string) float64 {
	titleScore := n.CalculateSimilarity(n.NormalizeTitle(wantTitle), n.NormalizeTitle(gotTitle))
	if strings.TrimSpace(wantArtist) == "" {
		return titleScore
	}

	artistScore := n.CalculateSimilarity(n.NormalizeArtist(wantArtist), n.NormalizeArtist(gotArtist))
	return titleWeight*titleScore + artistWeight*artistScore
}

func (n *Normalizer) longestCommonSubsequence(s1, s2 string) int {
	rows, cols := len(s1), len(s2)
	dp := make([][]int, rows+1)
	for i := range dp {
		dp[i] = make([]int, cols+1)
	}

	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if s1[i-1] == s2[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	return dp[rows][cols]
}
