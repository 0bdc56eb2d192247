package youtube

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// ResponseCache stores raw response bodies by key. A miss is (nil, false, nil).
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CacheHeader is set to "HIT" on responses served from the cache.
const CacheHeader = "X-Cache"

type revalidatingTransport struct {
	next   http.RoundTripper
	cache  ResponseCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewRevalidatingTransport serves repeated successful GETs from cache for
// ttl, after which the next identical request goes upstream again. Cache
// failures degrade to a pass-through.
func NewRevalidatingTransport(next http.RoundTripper, cache ResponseCache, ttl time.Duration, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &revalidatingTransport{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (t *revalidatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	key := cacheKey(req)

	body, ok, err := t.cache.Get(ctx, key)
	if err != nil {
		t.logger.Warn("response cache get failed", "error", err)
	}
	if ok {
		return cachedResponse(req, body), nil
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		return resp, err
	}

	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err := t.cache.Set(ctx, key, body, t.ttl); err != nil {
		t.logger.Warn("response cache set failed", "error", err)
	}

	return resp, nil
}

func cacheKey(req *http.Request) string {
	sum := sha256.Sum256([]byte(req.URL.String()))
	return hex.EncodeToString(sum[:])
}

func cachedResponse(req *http.Request, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	header.Set(CacheHeader, "HIT")

	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
