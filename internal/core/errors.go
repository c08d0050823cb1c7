package core

import "errors"

var (
	// Input classification errors
	ErrEmptyQuery       = errors.New("empty query")
	ErrUnsupportedURL   = errors.New("unsupported URL")
	ErrExtractionFailed = errors.New("could not extract song information")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

const (
	MessageMissingParameters = "Missing parameters"
	MessageEmptyQuery        = "Please provide a song title or a YouTube/Spotify link."
	MessageUnsupportedURL    = "Unsupported URL format. Please use YouTube or Spotify links."
	MessageExtractionFailed  = "Could not extract song information from the URL."
	MessageSongNotFound      = "Song not found on Genius"
	MessageNoLyrics          = "No lyrics found for this song"
	MessageTimeout           = "Request timed out. Please try again."
)

// FailureForError maps a classification error to the result reported to callers.
func FailureForError(err error) LyricsResult {
	switch {
	case errors.Is(err, ErrUnsupportedURL):
		return Failure(FailureUnsupportedURL, MessageUnsupportedURL)
	case errors.Is(err, ErrExtractionFailed):
		return Failure(FailureExtractionFailed, MessageExtractionFailed)
	case errors.Is(err, ErrEmptyQuery):
		return Failure(FailureInvalidInput, MessageEmptyQuery)
	default:
		return Failure(FailureProviderNetworkError, "An error occurred: "+err.Error())
	}
}
