package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"trend_hunter/internal/domain"
)

type KeywordStatsStore struct {
	db *sqlx.DB
}

func NewKeywordStatsStore(db *sqlx.DB) *KeywordStatsStore {
	return &KeywordStatsStore{db: db}
}

// Get returns zeroed stats for keywords never searched.
func (s *KeywordStatsStore) Get(ctx context.Context, keyword string, videoType domain.VideoType) (*domain.KeywordStats, error) {
	var stats domain.KeywordStats
	query := `
		SELECT keyword, video_type, total_searches, last_searched_at
		FROM keyword_stats
		WHERE keyword = $1 AND video_type = $2`

	err := GetExecutor(ctx, s.db).GetContext(ctx, &stats, query, keyword, videoType)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.KeywordStats{
			Keyword:   keyword,
			VideoType: videoType,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Increment bumps the search counter for the record's keyword and type.
func (s *KeywordStatsStore) Increment(ctx context.Context, rec *domain.SearchRecord) error {
	query := `
		INSERT INTO keyword_stats (keyword, video_type, total_searches, last_searched_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (keyword, video_type) DO UPDATE SET
			total_searches = keyword_stats.total_searches + 1,
			last_searched_at = GREATEST(keyword_stats.last_searched_at, EXCLUDED.last_searched_at)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.Keyword,
		rec.VideoType,
		rec.CreatedAt,
	)
	return err
}
