package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"trend_hunter/internal/domain"
	"trend_hunter/internal/ranking"
)

// ErrEmptyKeyword is returned before any upstream call when the keyword is
// blank.
var ErrEmptyKeyword = errors.New("keyword is required")

type RankingService struct {
	source    VideoSource
	searches  SearchLogStore
	publisher Publisher
	logger    *slog.Logger
	clock     func() time.Time
}

// NewRankingService wires the pipeline. searches and publisher are optional.
func NewRankingService(
	source VideoSource,
	searches SearchLogStore,
	publisher Publisher,
	logger *slog.Logger,
) *RankingService {
	return &RankingService{
		source:    source,
		searches:  searches,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		clock:     time.Now,
	}
}

// Rank returns up to ranking.DefaultLimit videos for the query, best first.
// A discovery stage with no hits yields an empty, non-nil slice.
func (s *RankingService) Rank(ctx context.Context, query domain.SearchQuery) ([]domain.RankedVideo, error) {
	query.Keyword = strings.TrimSpace(query.Keyword)
	if query.Keyword == "" {
		return nil, ErrEmptyKeyword
	}
	if query.Type != domain.VideoTypeShort {
		query.Type = domain.VideoTypeLong
	}

	startTime := s.clock()

	details, err := s.source.FetchVideos(ctx, query.Keyword)
	if err != nil {
		s.record(ctx, query, 0, 0, startTime, err)
		return nil, fmt.Errorf("fetch videos: %w", err)
	}

	videos := []domain.RankedVideo{}
	if len(details) > 0 {
		videos = ranking.Rank(details, query.Type, s.clock(), ranking.DefaultLimit)
	}

	s.record(ctx, query, len(details), len(videos), startTime, nil)
	s.publish(ctx, query, videos)

	s.logger.Info("ranking completed",
		"keyword", query.Keyword,
		"type", query.Type,
		"candidates", len(details),
		"results", len(videos),
		"duration", s.clock().Sub(startTime),
	)

	return videos, nil
}

func (s *RankingService) record(ctx context.Context, query domain.SearchQuery, candidates, results int, startTime time.Time, rankErr error) {
	if s.searches == nil {
		return
	}

	now := s.clock()
	rec := &domain.SearchRecord{
		ID:         uuid.New(),
		Keyword:    query.Keyword,
		VideoType:  query.Type,
		Candidates: candidates,
		Results:    results,
		DurationMS: now.Sub(startTime).Milliseconds(),
		CreatedAt:  now,
	}
	if rankErr != nil {
		msg := rankErr.Error()
		rec.Error = &msg
	}

	// bookkeeping outlives a disconnected client
	if err := s.searches.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Warn("failed to record search", "keyword", query.Keyword, "error", err)
	}
}

func (s *RankingService) publish(ctx context.Context, query domain.SearchQuery, videos []domain.RankedVideo) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), query, videos); err != nil {
		s.logger.Warn("failed to publish ranking", "keyword", query.Keyword, "error", err)
	}
}
