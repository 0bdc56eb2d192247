// Package handler exposes the trending ranking over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"trend_hunter/internal/domain"
	"trend_hunter/internal/service"
	"trend_hunter/internal/source/youtube"
)

const TrendsPath = "/api/youtube-trends"

// Ranker produces the ranked result list for one query.
type Ranker interface {
	Rank(ctx context.Context, query domain.SearchQuery) ([]domain.RankedVideo, error)
}

type server struct {
	ranker   Ranker
	searches SearchReader
	timeout  time.Duration
	logger   *slog.Logger
}

// NewServer returns the HTTP handler with the trends and health routes. The
// search log routes are registered only when searches is non-nil. A
// non-positive timeout leaves the request context untouched.
func NewServer(ranker Ranker, searches SearchReader, timeout time.Duration, logger *slog.Logger) http.Handler {
	s := &server{
		ranker:   ranker,
		searches: searches,
		timeout:  timeout,
		logger:   logger.With("component", "handler"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+TrendsPath, s.handleTrends)
	mux.Handle("GET /health", HealthHandler())
	if searches != nil {
		mux.HandleFunc("GET "+RecentSearchesPath, s.handleRecentSearches)
		mux.HandleFunc("GET "+KeywordStatsPath, s.handleKeywordStats)
	}

	return RequestID(s.logger, mux)
}

type trendsResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ChannelTitle    string    `json:"channelTitle"`
	PublishedAt     time.Time `json:"publishedAt"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	ViewCount       string    `json:"viewCount"`
	DurationSeconds int       `json:"durationSeconds"`
	Duration        string    `json:"duration"`
	IsShort         bool      `json:"isShort"`
	TrendingScore   float64   `json:"trendingScore"`
}

func toItems(videos []domain.RankedVideo) []videoItem {
	items := make([]videoItem, len(videos))
	for i, v := range videos {
		items[i] = videoItem{
			ID:              v.ID,
			Title:           v.Title,
			ChannelTitle:    v.ChannelTitle,
			PublishedAt:     v.PublishedAt.UTC(),
			ThumbnailURL:    v.ThumbnailURL,
			ViewCount:       strconv.FormatUint(v.ViewCount, 10),
			DurationSeconds: v.DurationSeconds,
			Duration:        v.DisplayDuration,
			IsShort:         v.IsShort,
			TrendingScore:   v.TrendingScore,
		}
	}
	return items
}

func (s *server) handleTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	q := r.URL.Query()
	query := domain.SearchQuery{
		Keyword: q.Get("keyword"),
		Type:    domain.ParseVideoType(q.Get("type")),
	}

	videos, err := s.ranker.Rank(ctx, query)
	if err != nil {
		s.writeRankError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trendsResponse{Items: toItems(videos)})
}

func (s *server) writeRankError(w http.ResponseWriter, r *http.Request, err error) {
	logger := LoggerFrom(r.Context(), s.logger)

	switch {
	case errors.Is(err, service.ErrEmptyKeyword):
		writeError(w, http.StatusBadRequest, "keyword is required")
	case errors.Is(err, youtube.ErrMissingAPIKey):
		logger.Error("video API key is not configured")
		writeError(w, http.StatusInternalServerError, "video API key is not configured")
	case errors.Is(err, youtube.ErrUpstream), errors.Is(err, youtube.ErrMalformedResponse):
		logger.Error("failed to fetch trending videos", "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch trending videos")
	default:
		logger.Error("ranking failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
