// Package ranking turns enriched videos into the trending list: duration
// parsing, short/long classification, scoring, and the filter/sort/truncate
// policy.
package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^PT(?:(\d*)H)?(?:(\d*)M)?(?:(\d*)S)?$`)

// Duration is a parsed ISO-8601 video length.
type Duration struct {
	Seconds int
	Display string // "1h 2m 3s", components omitted when absent
}

// ParseDuration parses tokens of the form PT[nH][nM][nS]. Tokens that do not
// match, or match with no components, yield the zero Duration.
func ParseDuration(token string) Duration {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return Duration{}
	}

	var (
		total int
		parts []string
	)
	for i, unit := range []struct {
		suffix string
		mult   int
	}{{"h", 3600}, {"m", 60}, {"s", 1}} {
		raw := m[i+1]
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			// overflow on absurdly long digit runs
			return Duration{}
		}
		if n > (math.MaxInt-total)/unit.mult {
			return Duration{}
		}
		total += n * unit.mult
		parts = append(parts, raw+unit.suffix)
	}

	return Duration{
		Seconds: total,
		Display: strings.TrimSpace(strings.Join(parts, " ")),
	}
}
