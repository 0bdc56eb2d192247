package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trend_hunter/internal/domain"
)

const (
	SourceID   = "youtube"
	SourceName = "YouTube Data API v3"

	// MaxPageSize is the search.list cap for maxResults.
	MaxPageSize = 50

	maxErrorBody = 4 << 10
)

// Config holds YouTube source configuration.
type Config struct {
	BaseURL         string
	APIKey          string
	PageSize        int
	Timeout         time.Duration
	WindowStartDays int // publishedAfter = now - WindowStartDays
	WindowEndDays   int // publishedBefore = now - WindowEndDays

	// Cache, when set, serves identical GETs for CacheTTL without
	// reaching the platform.
	Cache    ResponseCache
	CacheTTL time.Duration
}

// Source runs the two-stage lookup against the YouTube Data API.
type Source struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	pageSize        int
	windowStartDays int
	windowEndDays   int
	windowAlign     time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// New creates a new YouTube source.
func New(cfg Config, logger *slog.Logger) *Source {
	logger = logger.With("source", SourceID)

	var transport http.RoundTripper = http.DefaultTransport
	var windowAlign time.Duration
	if cfg.Cache != nil && cfg.CacheTTL > 0 {
		transport = NewRevalidatingTransport(transport, cfg.Cache, cfg.CacheTTL, logger)
		// identical searches must produce identical URLs to share a cache entry
		windowAlign = cfg.CacheTTL
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &Source{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:          cfg.APIKey,
		pageSize:        pageSize,
		windowStartDays: cfg.WindowStartDays,
		windowEndDays:   cfg.WindowEndDays,
		windowAlign:     windowAlign,
		now:             time.Now,
		logger:          logger,
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchVideos finds videos matching keyword inside the publish window and
// enriches them with statistics and duration. An empty discovery result
// returns nil without issuing the detail call. Any failed call fails the
// whole fetch.
func (s *Source) FetchVideos(ctx context.Context, keyword string) ([]domain.VideoDetail, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	candidates, err := s.discover(ctx, keyword)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("discovery finished", "keyword", keyword, "candidates", len(candidates))

	if len(candidates) == 0 {
		return nil, nil
	}

	return s.fetchDetails(ctx, candidates)
}

func (s *Source) discover(ctx context.Context, keyword string) ([]domain.VideoCandidate, error) {
	now := s.now().UTC()
	if s.windowAlign > 0 {
		now = now.Truncate(s.windowAlign)
	}
	params := url.Values{
		"part":            {"snippet"},
		"type":            {"video"},
		"order":           {"viewCount"},
		"q":               {keyword},
		"maxResults":      {strconv.Itoa(s.pageSize)},
		"publishedAfter":  {now.AddDate(0, 0, -s.windowStartDays).Format(time.RFC3339)},
		"publishedBefore": {now.AddDate(0, 0, -s.windowEndDays).Format(time.RFC3339)},
	}

	var resp SearchResponse
	if err := s.getJSON(ctx, StageDiscovery, "/search", params, &resp); err != nil {
		return nil, err
	}

	candidates := make([]domain.VideoCandidate, 0, len(resp.Items))
	seen := make(map[string]struct{}, len(resp.Items))
	for i, item := range resp.Items {
		if item.ID.VideoID == "" {
			return nil, fmt.Errorf("%w: search item %d has no videoId", ErrMalformedResponse, i)
		}
		if _, dup := seen[item.ID.VideoID]; dup {
			continue
		}
		seen[item.ID.VideoID] = struct{}{}

		c, err := toCandidate(item.ID.VideoID, item.Snippet)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

func (s *Source) fetchDetails(ctx context.Context, candidates []domain.VideoCandidate) ([]domain.VideoDetail, error) {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {strings.Join(ids, ",")},
	}

	var resp VideoListResponse
	if err := s.getJSON(ctx, StageDetail, "/videos", params, &resp); err != nil {
		return nil, err
	}

	byID := make(map[string]VideoItem, len(resp.Items))
	for _, item := range resp.Items {
		byID[item.ID] = item
	}

	details := make([]domain.VideoDetail, 0, len(candidates))
	for _, c := range candidates {
		item, ok := byID[c.ID]
		if !ok {
			// removed or made private between the two calls
			s.logger.Debug("candidate missing from detail response", "video_id", c.ID)
			continue
		}
		d, err := toDetail(c, item)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

func (s *Source) getJSON(ctx context.Context, stage, path string, params url.Values, out any) error {
	params.Set("key", s.apiKey)
	endpoint := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", stage, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TrendHunter/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// url.Error would carry the key in its URL
		return &UpstreamError{Stage: stage, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uerr := &UpstreamError{Stage: stage, StatusCode: resp.StatusCode}
		var body ErrorResponse
		if json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body) == nil {
			uerr.Message = body.Error.Message
		}
		s.logger.Warn("upstream returned error status",
			"stage", stage,
			"status", resp.StatusCode,
			"message", uerr.Message,
		)
		return uerr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrMalformedResponse, stage, err)
	}

	return nil
}

func unwrapURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}

func toCandidate(id string, sn Snippet) (domain.VideoCandidate, error) {
	if sn.PublishedAt == "" {
		return domain.VideoCandidate{}, fmt.Errorf("%w: video %s has no publishedAt", ErrMalformedResponse, id)
	}
	publishedAt, err := time.Parse(time.RFC3339, sn.PublishedAt)
	if err != nil {
		return domain.VideoCandidate{}, fmt.Errorf("%w: video %s publishedAt %q: %w", ErrMalformedResponse, id, sn.PublishedAt, err)
	}

	return domain.VideoCandidate{
		ID:           id,
		Title:        sn.Title,
		ChannelTitle: sn.ChannelTitle,
		PublishedAt:  publishedAt,
		ThumbnailURL: thumbnailURL(sn.Thumbnails),
	}, nil
}

func toDetail(c domain.VideoCandidate, item VideoItem) (domain.VideoDetail, error) {
	var views uint64
	if raw := item.Statistics.ViewCount; raw != nil && *raw != "" {
		n, err := strconv.ParseUint(*raw, 10, 64)
		if err != nil {
			return domain.VideoDetail{}, fmt.Errorf("%w: video %s viewCount %q", ErrMalformedResponse, c.ID, *raw)
		}
		views = n
	}

	// prefer the detail snippet; titles and thumbnails may have changed
	// since discovery
	if item.Snippet.Title != "" {
		c.Title = item.Snippet.Title
	}
	if item.Snippet.ChannelTitle != "" {
		c.ChannelTitle = item.Snippet.ChannelTitle
	}
	if u := thumbnailURL(item.Snippet.Thumbnails); u != "" {
		c.ThumbnailURL = u
	}

	return domain.VideoDetail{
		VideoCandidate: c,
		ViewCount:      views,
		DurationToken:  item.ContentDetails.Duration,
	}, nil
}

func thumbnailURL(t Thumbnails) string {
	for _, th := range []*Thumbnail{t.Medium, t.High, t.Default} {
		if th != nil && th.URL != "" {
			return th.URL
		}
	}
	return ""
}
