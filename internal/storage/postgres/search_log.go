package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"trend_hunter/internal/domain"
)

// SearchLogStore keeps one row per ranking request. Result lists are never
// stored.
type SearchLogStore struct {
	db    *sqlx.DB
	stats *KeywordStatsStore
	tx    *TransactionManager
}

func NewSearchLogStore(db *sqlx.DB, stats *KeywordStatsStore, tx *TransactionManager) *SearchLogStore {
	return &SearchLogStore{db: db, stats: stats, tx: tx}
}

// Record inserts the search row and bumps the keyword counter atomically.
func (s *SearchLogStore) Record(ctx context.Context, rec *domain.SearchRecord) error {
	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		query := `
			INSERT INTO searches (
				id, keyword, video_type, candidates, results, duration_ms, error, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			)`

		_, err := GetExecutor(txCtx, s.db).ExecContext(txCtx, query,
			rec.ID,
			rec.Keyword,
			rec.VideoType,
			rec.Candidates,
			rec.Results,
			rec.DurationMS,
			rec.Error,
			rec.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert search: %w", err)
		}

		if err := s.stats.Increment(txCtx, rec); err != nil {
			return fmt.Errorf("increment keyword stats: %w", err)
		}

		return nil
	})
}

// Recent returns the newest searches first.
func (s *SearchLogStore) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	query := `
		SELECT id, keyword, video_type, candidates, results, duration_ms, error, created_at
		FROM searches
		ORDER BY created_at DESC
		LIMIT $1`

	var records []domain.SearchRecord
	err := GetExecutor(ctx, s.db).SelectContext(ctx, &records, query, limit)
	return records, err
}

// Stats returns the counters for one keyword and type.
func (s *SearchLogStore) Stats(ctx context.Context, keyword string, videoType domain.VideoType) (*domain.KeywordStats, error) {
	return s.stats.Get(ctx, keyword, videoType)
}
