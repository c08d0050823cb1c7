package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lyricsfinder/internal/core"
	"lyricsfinder/pkg/musiclink"
	"lyricsfinder/pkg/text"
)

// LinkResolver classifies and resolves music platform links.
type LinkResolver interface {
	Classify(url string) musiclink.Kind
	Resolve(ctx context.Context, url string) (*musiclink.TrackInfo, error)
}

// Classifier turns a raw query into a track reference.
type Classifier struct {
	parser *text.Parser
	links  LinkResolver
	logger *zap.Logger
}

// NewClassifier creates a classifier that resolves links through links.
func NewClassifier(links LinkResolver, logger *zap.Logger) *Classifier {
	return &Classifier{
		parser: text.NewParser(),
		links:  links,
		logger: logger,
	}
}

// Classify trims the input and extracts an (artist, title) pair from it.
// Links are resolved through their platform's metadata endpoint; anything
// else is split once on the first " - ".
func (c *Classifier) Classify(ctx context.Context, input string) (core.TrackRef, error) {
	in := c.parser.ParseInput(input)
	if in.Text == "" {
		return core.TrackRef{}, core.ErrEmptyQuery
	}

	if in.Type == text.InputTypeURL {
		return c.classifyLink(ctx, in.Text)
	}
	return splitTrackRef(in.Text), nil
}

func (c *Classifier) classifyLink(ctx context.Context, link string) (core.TrackRef, error) {
	kind := c.links.Classify(link)
	switch kind {
	case musiclink.KindYouTube, musiclink.KindSpotify:
	case musiclink.KindUnsupported:
		return core.TrackRef{}, fmt.Errorf("%w: %s", core.ErrUnsupportedURL, link)
	default:
		return core.TrackRef{}, fmt.Errorf("%w: unknown link kind %s", core.ErrUnsupportedURL, kind)
	}

	info, err := c.links.Resolve(ctx, link)
	if err != nil {
		if !errors.Is(err, musiclink.ErrMetadataUnavailable) {
			return core.TrackRef{}, fmt.Errorf("resolve %s link: %w", kind, err)
		}
		c.logger.Warn("Link metadata unavailable",
			zap.String("kind", kind.String()),
			zap.String("url", link),
			zap.Error(err))
		info = &musiclink.TrackInfo{}
	}

	title := strings.TrimSpace(info.Title)
	if title == "" {
		return core.TrackRef{}, core.ErrExtractionFailed
	}

	artist := strings.TrimSpace(info.Artist)
	if artist == "" {
		return splitTrackRef(title), nil
	}

	c.logger.Debug("Resolved link metadata",
		zap.String("kind", kind.String()),
		zap.String("artist", artist),
		zap.String("title", title))
	return core.TrackRef{Artist: artist, Title: title}, nil
}

// splitTrackRef splits s on the first " - ". A split that would leave an
// empty side keeps s whole as the title.
func splitTrackRef(s string) core.TrackRef {
	artist, title, ok := text.SplitArtistTitle(s)
	if !ok || strings.TrimSpace(artist) == "" || strings.TrimSpace(title) == "" {
		return core.TrackRef{Title: s}
	}
	return core.TrackRef{Artist: strings.TrimSpace(artist), Title: strings.TrimSpace(title)}
}
