package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"lyricsfinder/internal/core"
)

type homeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func homeHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusOK, homeResponse{Status: core.StatusSuccess, Message: "API is running"})
	}
}

func statusHandler(logger *zap.Logger, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Debug("Failed to write status response", zap.Error(err))
		}
	}
}

// lyricsHandler serves /get_lyrics. A non-empty query wins over artist and
// title; both artist and title are needed otherwise.
func lyricsHandler(finder core.LyricsFinder, metrics *Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		query := params.Get("query")
		artist := params.Get("artist")
		title := params.Get("title")

		start := time.Now()
		var (
			source string
			result core.LyricsResult
		)
		switch {
		case query != "":
			source = SourceQuery
			result = finder.Find(r.Context(), query)
		case artist != "" && title != "":
			source = SourceTrack
			result = finder.FindTrack(r.Context(), core.TrackRef{Artist: artist, Title: title})
		default:
			writeJSON(w, logger, http.StatusBadRequest,
				core.Failure(core.FailureInvalidInput, core.MessageMissingParameters))
			return
		}
		duration := time.Since(start)

		status := core.StatusSuccess
		if !result.OK() {
			status = result.Kind.String()
		}
		metrics.RecordLookup(source, status, duration)

		logger.Info("Lyrics lookup",
			zap.String("source", source),
			zap.String("status", status),
			zap.Duration("duration", duration))

		writeJSON(w, logger, http.StatusOK, result)
	}
}
