package model

import (
	"time"
)

// PlaylistInfo holds the playlist metadata returned by the remote service.
type PlaylistInfo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Channel      string    `json:"channel"`
	ItemCount    int       `json:"item_count"`
	PublishedAt  time.Time `json:"published_at"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// PlaylistStats counts the videos handled during one calculation run.
// Deleted and private entries are excluded before counting starts, so they
// appear in neither Processed nor Failed.
type PlaylistStats struct {
	Total     int `json:"total_videos"`
	Processed int `json:"processed_videos"`
	Failed    int `json:"failed_videos"`
}

// HasFailures reports whether any video was dropped during the run.
func (s PlaylistStats) HasFailures() bool {
	return s.Failed > 0
}

// CalculationResult is the aggregate produced by one calculation run. It is
// created fresh per run and never persisted.
type CalculationResult struct {
	RunID    string        `json:"run_id"`
	Playlist PlaylistInfo  `json:"playlist"`
	Stats    PlaylistStats `json:"stats"`

	// All durations are seconds.
	TotalSeconds    float64 `json:"total_seconds"`
	AverageSeconds  float64 `json:"average_seconds"`
	LongestSeconds  float64 `json:"longest_seconds"`
	ShortestSeconds float64 `json:"shortest_seconds"`
	MedianSeconds   float64 `json:"median_seconds"`

	GeneratedAt time.Time `json:"generated_at"`
}
