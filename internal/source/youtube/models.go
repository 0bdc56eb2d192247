package youtube

// SearchResponse is the search.list payload. Only the fields the ranking
// pipeline reads are declared.
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	ID      SearchID `json:"id"`
	Snippet Snippet  `json:"snippet"`
}

type SearchID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type Snippet struct {
	PublishedAt  string     `json:"publishedAt"`
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type Thumbnails struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
	High    *Thumbnail `json:"high"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

// VideoListResponse is the videos.list payload.
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	Statistics     Statistics     `json:"statistics"`
	ContentDetails ContentDetails `json:"contentDetails"`
}

// Statistics carries counters as decimal strings. ViewCount is absent when
// the owner hides statistics.
type Statistics struct {
	ViewCount *string `json:"viewCount"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

// ErrorResponse is the body returned with non-2xx statuses.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
