package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"trend_hunter/internal/domain"
)

type VideoSource interface {
	ID() string
	FetchVideos(ctx context.Context, keyword string) ([]domain.VideoDetail, error)
}

type SearchLogStore interface {
	Record(ctx context.Context, record *domain.SearchRecord) error
}

type Publisher interface {
	Publish(ctx context.Context, query domain.SearchQuery, videos []domain.RankedVideo) error
	Close() error
}
