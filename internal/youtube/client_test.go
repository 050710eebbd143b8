package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PlaylistInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlists", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "PLtest123456789012", r.URL.Query().Get("id"))

		fmt.Fprint(w, `{"items":[{
			"id":"PLtest123456789012",
			"snippet":{"title":"My Mix","channelTitle":"Some Channel","publishedAt":"2021-04-01T10:00:00Z"},
			"contentDetails":{"itemCount":7}
		}]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	info, err := c.PlaylistInfo(context.Background(), "PLtest123456789012")
	require.NoError(t, err)

	assert.Equal(t, "My Mix", info.Title)
	assert.Equal(t, "Some Channel", info.Channel)
	assert.Equal(t, 7, info.ItemCount)
	assert.Equal(t, "PLtest123456789012", info.ID)
}

func TestClient_PlaylistInfo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.PlaylistInfo(context.Background(), "PLmissing123456789")
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestClient_PlaylistVideoIDs_Pagination(t *testing.T) {
	// Two pages; the second is only served when the continuation token from
	// the first is echoed back. Entries must cross the page boundary without
	// duplication or loss.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlistItems", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))

		switch r.URL.Query().Get("pageToken") {
		case "":
			fmt.Fprint(w, `{
				"items":[
					{"snippet":{"title":"First"},"contentDetails":{"videoId":"vid1"}},
					{"snippet":{"title":"Second"},"contentDetails":{"videoId":"vid2"}}
				],
				"nextPageToken":"page2tok"
			}`)
		case "page2tok":
			fmt.Fprint(w, `{
				"items":[
					{"snippet":{"title":"Third"},"contentDetails":{"videoId":"vid3"}}
				]
			}`)
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	var stages []string
	c := NewClientWithBaseURL("test-key", srv.URL)
	ids, err := c.PlaylistVideoIDs(context.Background(), "PLtest123456789012", func(stage string) {
		stages = append(stages, stage)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"vid1", "vid2", "vid3"}, ids)
	assert.Equal(t, []string{"Fetching videos - Page 1", "Fetching videos - Page 2"}, stages)
}

func TestClient_PlaylistVideoIDs_SkipsInaccessible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items":[
				{"snippet":{"title":"Kept"},"contentDetails":{"videoId":"vid1"}},
				{"snippet":{"title":"Deleted video"},"contentDetails":{"videoId":"vid2"}},
				{"snippet":{"title":"Private video"},"contentDetails":{"videoId":"vid3"}},
				{"snippet":{"title":"Also kept"},"contentDetails":{"videoId":"vid4"}}
			]
		}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	ids, err := c.PlaylistVideoIDs(context.Background(), "PLtest123456789012", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"vid1", "vid4"}, ids)
}

func TestClient_VideoDurations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "vid1,vid2,vid3", r.URL.Query().Get("id"))

		// vid2 is missing from the response and must be counted as failed.
		fmt.Fprint(w, `{"items":[
			{"id":"vid1","contentDetails":{"duration":"PT1M"}},
			{"id":"vid3","contentDetails":{"duration":"PT2M30S"}}
		]}`)
	}))
	defer srv.Close()

	var stages []string
	c := NewClientWithBaseURL("test-key", srv.URL)
	durations, failed, err := c.VideoDurations(context.Background(), []string{"vid1", "vid2", "vid3"}, func(stage string) {
		stages = append(stages, stage)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"PT1M", "PT2M30S"}, durations)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"Processing durations - Batch 1/1"}, stages)
}

func TestClient_VideoDurations_Batching(t *testing.T) {
	var batchSizes []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query().Get("id")
		count := 1
		for _, ch := range ids {
			if ch == ',' {
				count++
			}
		}
		batchSizes = append(batchSizes, count)
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	ids := make([]string, 120)
	for i := range ids {
		ids[i] = fmt.Sprintf("vid%03d", i)
	}

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, failed, err := c.VideoDurations(context.Background(), ids, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{50, 50, 20}, batchSizes)
	assert.Equal(t, 120, failed)
}

func TestClient_QuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"Quota exceeded.","errors":[{"reason":"quotaExceeded"}]}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.PlaylistInfo(context.Background(), "PLtest123456789012")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"Invalid argument.","errors":[{"reason":"badRequest"}]}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.PlaylistInfo(context.Background(), "PLtest123456789012")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "badRequest", apiErr.Reason)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.PlaylistInfo(context.Background(), "PLtest123456789012")
	assert.Error(t, err)
}
