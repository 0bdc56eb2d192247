package scheduler

import (
	"context"
	"log/slog"
	"time"

	"trend_hunter/internal/domain"
)

// Ranker defines the interface for ranking operations.
type Ranker interface {
	Rank(ctx context.Context, query domain.SearchQuery) ([]domain.RankedVideo, error)
}

// Scheduler re-ranks a fixed set of watched keywords on an interval.
type Scheduler struct {
	ranker     Ranker
	queries    []domain.SearchQuery
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(ranker Ranker, queries []domain.SearchQuery, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ranker:     ranker,
		queries:    queries,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "keywords", len(s.queries))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, q := range s.queries {
		if ctx.Err() != nil {
			return
		}
		s.run(ctx, q)
	}
}

func (s *Scheduler) run(ctx context.Context, q domain.SearchQuery) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	videos, err := s.ranker.Rank(runCtx, q)
	if err != nil {
		s.logger.Error("watched keyword ranking failed",
			"keyword", q.Keyword,
			"type", q.Type,
			"error", err,
		)
		return
	}

	s.logger.Debug("watched keyword ranked", "keyword", q.Keyword, "type", q.Type, "results", len(videos))
}
