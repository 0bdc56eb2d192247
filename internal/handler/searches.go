package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"trend_hunter/internal/domain"
)

const (
	RecentSearchesPath = "/api/searches/recent"
	KeywordStatsPath   = "/api/searches/stats"

	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// SearchReader reads back the search log.
type SearchReader interface {
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)
	Stats(ctx context.Context, keyword string, videoType domain.VideoType) (*domain.KeywordStats, error)
}

type searchItem struct {
	ID         uuid.UUID        `json:"id"`
	Keyword    string           `json:"keyword"`
	Type       domain.VideoType `json:"type"`
	Candidates int              `json:"candidates"`
	Results    int              `json:"results"`
	DurationMS int64            `json:"durationMs"`
	Error      *string          `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type recentSearchesResponse struct {
	Items []searchItem `json:"items"`
}

type keywordStatsResponse struct {
	Keyword        string           `json:"keyword"`
	Type           domain.VideoType `json:"type"`
	TotalSearches  int64            `json:"totalSearches"`
	LastSearchedAt *time.Time       `json:"lastSearchedAt"`
}

func (s *server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := s.searches.Recent(r.Context(), limit)
	if err != nil {
		LoggerFrom(r.Context(), s.logger).Error("failed to read search log", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]searchItem, len(records))
	for i, rec := range records {
		items[i] = searchItem{
			ID:         rec.ID,
			Keyword:    rec.Keyword,
			Type:       rec.VideoType,
			Candidates: rec.Candidates,
			Results:    rec.Results,
			DurationMS: rec.DurationMS,
			Error:      rec.Error,
			CreatedAt:  rec.CreatedAt.UTC(),
		}
	}

	writeJSON(w, http.StatusOK, recentSearchesResponse{Items: items})
}

func (s *server) handleKeywordStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := strings.TrimSpace(q.Get("keyword"))
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "keyword is required")
		return
	}
	videoType := domain.ParseVideoType(q.Get("type"))

	stats, err := s.searches.Stats(r.Context(), keyword, videoType)
	if err != nil {
		LoggerFrom(r.Context(), s.logger).Error("failed to read keyword stats", "keyword", keyword, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := keywordStatsResponse{
		Keyword:       stats.Keyword,
		Type:          stats.VideoType,
		TotalSearches: stats.TotalSearches,
	}
	if !stats.LastSearchedAt.IsZero() {
		at := stats.LastSearchedAt.UTC()
		resp.LastSearchedAt = &at
	}

	writeJSON(w, http.StatusOK, resp)
}
