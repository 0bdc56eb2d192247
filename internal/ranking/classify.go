package ranking

// ShortMaxSeconds is the inclusive upper bound for a "short" video. It is a
// length heuristic, not the platform's own Shorts flag, so vertical clips
// over five minutes and horizontal clips under it are both misclassified.
const ShortMaxSeconds = 300

// IsShort reports whether a video of the given length counts as short.
func IsShort(seconds int) bool {
	return seconds <= ShortMaxSeconds
}
