package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ytget/yt-playlist-duration/internal/model"
)

const (
	// DefaultBaseURL is the Data API v3 endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultTimeout bounds a single HTTP request; there is no retry policy.
	DefaultTimeout = 30 * time.Second

	// PageSize is the maximum playlistItems page size the API allows.
	PageSize = 50

	// BatchSize is the maximum number of video IDs per videos.list call.
	BatchSize = 50
)

// Entry titles the API reports for inaccessible playlist items. Such entries
// are excluded from the run, not counted as failures.
const (
	deletedVideoTitle = "Deleted video"
	privateVideoTitle = "Private video"
)

// Progress stage label formats.
const (
	StagePageFormat  = "Fetching videos - Page %d"
	StageBatchFormat = "Processing durations - Batch %d/%d"
)

// ProgressFunc receives a human-readable stage label. It is invoked
// synchronously before each network call; callers that update a UI must
// re-post to their own thread.
type ProgressFunc func(stage string)

// Client talks to the YouTube Data API v3 with API-key authentication.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewClient creates a client for the public Data API endpoint.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint. Used by
// tests to point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// PlaylistInfo fetches the playlist metadata. Returns ErrPlaylistNotFound
// when the lookup yields no items.
func (c *Client) PlaylistInfo(ctx context.Context, playlistID string) (*model.PlaylistInfo, error) {
	params := url.Values{
		"part": {"snippet,contentDetails"},
		"id":   {playlistID},
	}

	var resp playlistListResponse
	if err := c.get(ctx, "/playlists", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlistID)
	}

	item := resp.Items[0]
	return &model.PlaylistInfo{
		ID:           playlistID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Channel:      item.Snippet.ChannelTitle,
		ItemCount:    item.ContentDetails.ItemCount,
		PublishedAt:  item.Snippet.PublishedAt,
		ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
	}, nil
}

// PlaylistVideoIDs lists all accessible video IDs of a playlist, following
// continuation tokens until the server stops returning one. Deleted and
// private entries are dropped.
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string, progress ProgressFunc) ([]string, error) {
	var ids []string
	pageToken := ""
	page := 0

	for {
		page++
		notify(progress, fmt.Sprintf(StagePageFormat, page))

		params := url.Values{
			"part":       {"contentDetails,snippet"},
			"playlistId": {playlistID},
			"maxResults": {fmt.Sprintf("%d", PageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp playlistItemsResponse
		if err := c.get(ctx, "/playlistItems", params, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			title := item.Snippet.Title
			if title == deletedVideoTitle || title == privateVideoTitle {
				continue
			}
			ids = append(ids, item.ContentDetails.VideoID)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Debug().Str("playlist", playlistID).Int("pages", page).Int("videos", len(ids)).
		Msg("playlist items fetched")

	return ids, nil
}

// VideoDurations fetches the ISO-8601 duration string of each video, in
// fixed-size batches. IDs absent from a response are counted in failed; the
// returned durations keep the request order of the IDs that were found.
func (c *Client) VideoDurations(ctx context.Context, videoIDs []string, progress ProgressFunc) (durations []string, failed int, err error) {
	totalBatches := (len(videoIDs) + BatchSize - 1) / BatchSize

	for i := 0; i < len(videoIDs); i += BatchSize {
		batchNum := i/BatchSize + 1
		notify(progress, fmt.Sprintf(StageBatchFormat, batchNum, totalBatches))

		end := i + BatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		batch := videoIDs[i:end]

		params := url.Values{
			"part": {"contentDetails"},
			"id":   {strings.Join(batch, ",")},
		}

		var resp videoListResponse
		if err := c.get(ctx, "/videos", params, &resp); err != nil {
			return nil, 0, err
		}

		byID := make(map[string]videoResource, len(resp.Items))
		for _, item := range resp.Items {
			byID[item.ID] = item
		}

		for _, id := range batch {
			item, ok := byID[id]
			if !ok {
				failed++
				continue
			}
			durations = append(durations, item.ContentDetails.Duration)
		}
	}

	return durations, failed, nil
}

// get performs one API call and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.key)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return c.decodeError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// decodeError maps a non-2xx response to the error taxonomy.
func (c *Client) decodeError(res *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(res.Body).Decode(&body)

	reason := ""
	if len(body.Error.Errors) > 0 {
		reason = body.Error.Errors[0].Reason
	}

	if res.StatusCode == http.StatusForbidden &&
		(reason == "quotaExceeded" || reason == "dailyLimitExceeded" || reason == "rateLimitExceeded") {
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, body.Error.Message)
	}

	return &APIError{
		StatusCode: res.StatusCode,
		Reason:     reason,
		Message:    body.Error.Message,
	}
}

func notify(progress ProgressFunc, stage string) {
	if progress != nil {
		progress(stage)
	}
}
