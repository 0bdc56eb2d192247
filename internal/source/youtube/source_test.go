package youtube

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"trend_hunter/internal/cache"
)

type SourceTestSuite struct {
	suite.Suite

	server       *httptest.Server
	searchCalls  atomic.Int32
	videosCalls  atomic.Int32
	mu           sync.Mutex
	lastSearch   url.Values
	lastVideos   url.Values
	searchStatus int
	searchBody   string
	videosStatus int
	videosBody   string

	now    time.Time
	logger *slog.Logger
}

func (s *SourceTestSuite) SetupTest() {
	s.searchCalls.Store(0)
	s.videosCalls.Store(0)
	s.lastSearch, s.lastVideos = nil, nil
	s.searchStatus, s.videosStatus = http.StatusOK, http.StatusOK
	s.searchBody = `{"items":[]}`
	s.videosBody = `{"items":[]}`
	s.now = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search":
			s.searchCalls.Add(1)
			s.mu.Lock()
			s.lastSearch = r.URL.Query()
			s.mu.Unlock()
			w.WriteHeader(s.searchStatus)
			_, _ = w.Write([]byte(s.searchBody))
		case "/videos":
			s.videosCalls.Add(1)
			s.mu.Lock()
			s.lastVideos = r.URL.Query()
			s.mu.Unlock()
			w.WriteHeader(s.videosStatus)
			_, _ = w.Write([]byte(s.videosBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *SourceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestSourceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) newSource(cfg Config) *Source {
	cfg.BaseURL = s.server.URL
	if cfg.APIKey == "" {
		cfg.APIKey = "test-key"
	}
	if cfg.WindowStartDays == 0 {
		cfg.WindowStartDays = 30
	}
	if cfg.WindowEndDays == 0 {
		cfg.WindowEndDays = 7
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Second
	}
	src := New(cfg, s.logger)
	src.now = func() time.Time { return s.now }
	return src
}

const twoCandidates = `{"items":[
	{"id":{"kind":"youtube#video","videoId":"A"},"snippet":{"publishedAt":"2025-06-27T12:00:00Z","title":"lofi a","channelTitle":"chan a","thumbnails":{"medium":{"url":"https://img/a.jpg"}}}},
	{"id":{"kind":"youtube#video","videoId":"B"},"snippet":{"publishedAt":"2025-06-25T12:00:00Z","title":"lofi b","channelTitle":"chan b","thumbnails":{"default":{"url":"https://img/b.jpg"}}}}
]}`

const twoDetails = `{"items":[
	{"id":"B","snippet":{"title":"lofi b (edited)","channelTitle":"chan b"},"statistics":{"viewCount":"50000"},"contentDetails":{"duration":"PT10M"}},
	{"id":"A","snippet":{"title":"lofi a","channelTitle":"chan a"},"statistics":{"viewCount":"8000"},"contentDetails":{"duration":"PT4M"}}
]}`

func (s *SourceTestSuite) TestFetchVideos_TwoStages() {
	s.searchBody = twoCandidates
	s.videosBody = twoDetails

	videos, err := s.newSource(Config{PageSize: 50}).FetchVideos(context.Background(), "lofi")

	s.Require().NoError(err)
	s.Require().Len(videos, 2)
	s.Equal(int32(1), s.searchCalls.Load())
	s.Equal(int32(1), s.videosCalls.Load())

	// discovery order is preserved
	s.Equal("A", videos[0].ID)
	s.Equal(uint64(8000), videos[0].ViewCount)
	s.Equal("PT4M", videos[0].DurationToken)
	s.Equal("https://img/a.jpg", videos[0].ThumbnailURL)
	s.Equal(time.Date(2025, 6, 27, 12, 0, 0, 0, time.UTC), videos[0].PublishedAt)

	s.Equal("B", videos[1].ID)
	s.Equal("lofi b (edited)", videos[1].Title)
	s.Equal("https://img/b.jpg", videos[1].ThumbnailURL)
	s.Equal(uint64(50000), videos[1].ViewCount)
}

func (s *SourceTestSuite) TestFetchVideos_DiscoveryParameters() {
	_, err := s.newSource(Config{PageSize: 50}).FetchVideos(context.Background(), "lofi beats")
	s.Require().NoError(err)

	s.mu.Lock()
	q := s.lastSearch
	s.mu.Unlock()
	s.Equal("snippet", q.Get("part"))
	s.Equal("video", q.Get("type"))
	s.Equal("viewCount", q.Get("order"))
	s.Equal("lofi beats", q.Get("q"))
	s.Equal("50", q.Get("maxResults"))
	s.Equal("2025-05-31T12:00:00Z", q.Get("publishedAfter"))
	s.Equal("2025-06-23T12:00:00Z", q.Get("publishedBefore"))
	s.Equal("test-key", q.Get("key"))
}

func (s *SourceTestSuite) TestFetchVideos_DetailParameters() {
	s.searchBody = twoCandidates
	s.videosBody = twoDetails

	_, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")
	s.Require().NoError(err)

	s.mu.Lock()
	q := s.lastVideos
	s.mu.Unlock()
	s.Equal("snippet,statistics,contentDetails", q.Get("part"))
	s.Equal("A,B", q.Get("id"))
	s.Equal("test-key", q.Get("key"))
}

func (s *SourceTestSuite) TestFetchVideos_EmptyDiscoverySkipsDetail() {
	videos, err := s.newSource(Config{}).FetchVideos(context.Background(), "nothing")

	s.NoError(err)
	s.Empty(videos)
	s.Equal(int32(1), s.searchCalls.Load())
	s.Equal(int32(0), s.videosCalls.Load())
}

func (s *SourceTestSuite) TestFetchVideos_MissingAPIKey() {
	src := New(Config{BaseURL: s.server.URL}, s.logger)

	_, err := src.FetchVideos(context.Background(), "lofi")

	s.ErrorIs(err, ErrMissingAPIKey)
	s.Equal(int32(0), s.searchCalls.Load())
}

func (s *SourceTestSuite) TestFetchVideos_DiscoveryErrorStatus() {
	s.searchStatus = http.StatusForbidden
	s.searchBody = `{"error":{"code":403,"message":"quotaExceeded"}}`

	_, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")

	s.Require().Error(err)
	s.ErrorIs(err, ErrUpstream)
	var uerr *UpstreamError
	s.Require().True(errors.As(err, &uerr))
	s.Equal(StageDiscovery, uerr.Stage)
	s.Equal(http.StatusForbidden, uerr.StatusCode)
	s.Equal("quotaExceeded", uerr.Message)
	s.NotContains(err.Error(), "test-key")
	s.Equal(int32(0), s.videosCalls.Load())
}

func (s *SourceTestSuite) TestFetchVideos_DetailErrorStatus() {
	s.searchBody = twoCandidates
	s.videosStatus = http.StatusInternalServerError
	s.videosBody = `oops`

	videos, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")

	s.Nil(videos)
	var uerr *UpstreamError
	s.Require().True(errors.As(err, &uerr))
	s.Equal(StageDetail, uerr.Stage)
	s.Equal(http.StatusInternalServerError, uerr.StatusCode)
}

func (s *SourceTestSuite) TestFetchVideos_TimeoutIsUpstreamFailure() {
	s.server.Close()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))

	_, err := s.newSource(Config{Timeout: 50 * time.Millisecond}).FetchVideos(context.Background(), "lofi")

	s.ErrorIs(err, ErrUpstream)
	s.NotContains(err.Error(), "test-key")
}

func (s *SourceTestSuite) TestFetchVideos_MalformedResponses() {
	tests := []struct {
		name   string
		search string
		videos string
	}{
		{"missing video id", `{"items":[{"id":{},"snippet":{"publishedAt":"2025-06-01T00:00:00Z"}}]}`, ``},
		{"missing publishedAt", `{"items":[{"id":{"videoId":"A"},"snippet":{}}]}`, ``},
		{"bad publishedAt", `{"items":[{"id":{"videoId":"A"},"snippet":{"publishedAt":"yesterday"}}]}`, ``},
		{"bad viewCount", twoCandidates, `{"items":[{"id":"A","statistics":{"viewCount":"lots"}}]}`},
		{"not json", `<html>`, ``},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.searchBody = tt.search
			s.videosBody = tt.videos

			_, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")

			s.ErrorIs(err, ErrMalformedResponse)
		})
	}
}

func (s *SourceTestSuite) TestFetchVideos_AbsentViewCountDefaultsToZero() {
	s.searchBody = twoCandidates
	s.videosBody = `{"items":[{"id":"A","statistics":{},"contentDetails":{"duration":"PT1M"}}]}`

	videos, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")

	s.Require().NoError(err)
	// B vanished between the two calls
	s.Require().Len(videos, 1)
	s.Equal("A", videos[0].ID)
	s.Equal(uint64(0), videos[0].ViewCount)
}

func (s *SourceTestSuite) TestFetchVideos_DuplicateCandidates() {
	s.searchBody = `{"items":[
		{"id":{"videoId":"A"},"snippet":{"publishedAt":"2025-06-27T12:00:00Z"}},
		{"id":{"videoId":"A"},"snippet":{"publishedAt":"2025-06-27T12:00:00Z"}}
	]}`
	s.videosBody = `{"items":[{"id":"A","statistics":{"viewCount":"1"}}]}`

	videos, err := s.newSource(Config{}).FetchVideos(context.Background(), "lofi")

	s.Require().NoError(err)
	s.Len(videos, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Equal("A", s.lastVideos.Get("id"))
}

func (s *SourceTestSuite) TestFetchVideos_RevalidationWindow() {
	s.searchBody = twoCandidates
	s.videosBody = twoDetails

	src := s.newSource(Config{Cache: cache.NewMemory(), CacheTTL: time.Hour})

	for i := 0; i < 3; i++ {
		videos, err := src.FetchVideos(context.Background(), "lofi")
		s.Require().NoError(err)
		s.Len(videos, 2)
	}

	s.Equal(int32(1), s.searchCalls.Load())
	s.Equal(int32(1), s.videosCalls.Load())

	_, err := src.FetchVideos(context.Background(), "jazz")
	s.Require().NoError(err)
	s.Equal(int32(2), s.searchCalls.Load())
}

func (s *SourceTestSuite) TestFetchVideos_RevalidationWindowSurvivesClockDrift() {
	s.searchBody = twoCandidates
	s.videosBody = twoDetails

	src := s.newSource(Config{Cache: cache.NewMemory(), CacheTTL: time.Hour})

	for _, offset := range []time.Duration{5 * time.Minute, 17 * time.Minute, 59 * time.Minute} {
		at := s.now.Add(offset)
		src.now = func() time.Time { return at }

		_, err := src.FetchVideos(context.Background(), "lofi")
		s.Require().NoError(err)
	}
	s.Equal(int32(1), s.searchCalls.Load())

	s.mu.Lock()
	s.Equal("2025-05-31T12:00:00Z", s.lastSearch.Get("publishedAfter"))
	s.mu.Unlock()

	next := s.now.Add(61 * time.Minute)
	src.now = func() time.Time { return next }
	_, err := src.FetchVideos(context.Background(), "lofi")
	s.Require().NoError(err)
	s.Equal(int32(2), s.searchCalls.Load())
}

func (s *SourceTestSuite) TestFetchVideos_ErrorsAreNotCached() {
	s.searchStatus = http.StatusServiceUnavailable

	src := s.newSource(Config{Cache: cache.NewMemory(), CacheTTL: time.Hour})

	_, err := src.FetchVideos(context.Background(), "lofi")
	s.ErrorIs(err, ErrUpstream)

	s.searchStatus = http.StatusOK
	_, err = src.FetchVideos(context.Background(), "lofi")
	s.NoError(err)
	s.Equal(int32(2), s.searchCalls.Load())
}

func (s *SourceTestSuite) TestUpstreamError_Message() {
	err := &UpstreamError{Stage: StageDetail, StatusCode: 404}
	s.True(strings.Contains(err.Error(), "detail"))
	s.ErrorIs(err, ErrUpstream)
}
