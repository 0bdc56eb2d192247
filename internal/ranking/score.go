package ranking

import "time"

const day = 24 * time.Hour

// TrendingScore returns views per elapsed day since publish. Elapsed time is
// floored at one day, so fresh uploads are not inflated and the result is
// always finite.
func TrendingScore(views uint64, publishedAt, now time.Time) float64 {
	elapsedDays := now.Sub(publishedAt).Hours() / day.Hours()
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	return float64(views) / elapsedDays
}
