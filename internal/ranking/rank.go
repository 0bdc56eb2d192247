package ranking

import (
	"sort"
	"time"

	"trend_hunter/internal/domain"
)

// DefaultLimit is the number of videos returned per request.
const DefaultLimit = 10

// Annotate derives duration, classification and score for a single video.
func Annotate(d domain.VideoDetail, now time.Time) domain.RankedVideo {
	dur := ParseDuration(d.DurationToken)
	return domain.RankedVideo{
		VideoDetail:     d,
		DurationSeconds: dur.Seconds,
		DisplayDuration: dur.Display,
		IsShort:         IsShort(dur.Seconds),
		TrendingScore:   TrendingScore(d.ViewCount, d.PublishedAt, now),
	}
}

// Rank annotates details, keeps those matching want, orders them by trending
// score descending and returns at most limit entries. Filtering happens
// before truncation. A non-positive limit means DefaultLimit.
func Rank(details []domain.VideoDetail, want domain.VideoType, now time.Time, limit int) []domain.RankedVideo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	wantShort := want == domain.VideoTypeShort

	seen := make(map[string]struct{}, len(details))
	ranked := make([]domain.RankedVideo, 0, len(details))
	for _, d := range details {
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}

		v := Annotate(d, now)
		if v.IsShort != wantShort {
			continue
		}
		ranked = append(ranked, v)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore > ranked[j].TrendingScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
