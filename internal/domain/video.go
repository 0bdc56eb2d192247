package domain

import "time"

// VideoType selects which side of the short/long split a search returns.
type VideoType string

const (
	VideoTypeShort VideoType = "short"
	VideoTypeLong  VideoType = "long"
)

// ParseVideoType maps a raw query value to a VideoType. Anything other than
// the exact value "short" falls back to long.
func ParseVideoType(raw string) VideoType {
	if raw == string(VideoTypeShort) {
		return VideoTypeShort
	}
	return VideoTypeLong
}

// VideoCandidate is a discovery hit before statistics are known.
type VideoCandidate struct {
	ID           string
	Title        string
	ChannelTitle string
	PublishedAt  time.Time
	ThumbnailURL string
}

// VideoDetail is a candidate enriched by the detail lookup.
type VideoDetail struct {
	VideoCandidate
	ViewCount     uint64
	DurationToken string // ISO-8601, e.g. "PT4M13S"
}

type RankedVideo struct {
	VideoDetail
	DurationSeconds int
	DisplayDuration string
	IsShort         bool
	TrendingScore   float64
}

// SearchQuery is one ranking request.
type SearchQuery struct {
	Keyword string
	Type    VideoType
}
