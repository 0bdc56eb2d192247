package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the source was built without a credential.
	ErrMissingAPIKey = errors.New("youtube: api key not configured")
	// ErrUpstream marks any failed call to the platform: transport errors,
	// timeouts and non-2xx statuses.
	ErrUpstream = errors.New("youtube: upstream request failed")
	// ErrMalformedResponse means a 2xx body lacked required fields.
	ErrMalformedResponse = errors.New("youtube: malformed response")
)

const (
	StageDiscovery = "discovery"
	StageDetail    = "detail"
)

// UpstreamError describes a failed call. StatusCode is zero when no
// response was received.
type UpstreamError struct {
	Stage      string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("youtube %s: status %d: %s", e.Stage, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("youtube %s: status %d", e.Stage, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("youtube %s: %v", e.Stage, e.Err)
	default:
		return fmt.Sprintf("youtube %s: request failed", e.Stage)
	}
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}
