package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecord describes one executed ranking request. It never carries the
// ranked videos themselves.
type SearchRecord struct {
	ID         uuid.UUID `db:"id"`
	Keyword    string    `db:"keyword"`
	VideoType  VideoType `db:"video_type"`
	Candidates int       `db:"candidates"`
	Results    int       `db:"results"`
	DurationMS int64     `db:"duration_ms"`
	Error      *string   `db:"error"`
	CreatedAt  time.Time `db:"created_at"`
}

type KeywordStats struct {
	Keyword        string    `db:"keyword"`
	VideoType      VideoType `db:"video_type"`
	TotalSearches  int64     `db:"total_searches"`
	LastSearchedAt time.Time `db:"last_searched_at"`
}
