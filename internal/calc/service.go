package calc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ytget/yt-playlist-duration/internal/model"
	"github.com/ytget/yt-playlist-duration/internal/youtube"
)

// Pipeline stage labels reported through the progress callback.
const (
	StageResolving    = "Extracting playlist ID..."
	StagePlaylistInfo = "Getting playlist information..."
	StageVideoList    = "Fetching video list..."
	StageComplete     = "Calculation complete!"
)

// Fetcher is the subset of the youtube client the pipeline needs.
type Fetcher interface {
	PlaylistInfo(ctx context.Context, playlistID string) (*model.PlaylistInfo, error)
	PlaylistVideoIDs(ctx context.Context, playlistID string, progress youtube.ProgressFunc) ([]string, error)
	VideoDurations(ctx context.Context, videoIDs []string, progress youtube.ProgressFunc) ([]string, int, error)
}

// Service runs the fetch+aggregate pipeline. It holds no per-run state; one
// instance serves any number of sequential calculations.
type Service struct {
	fetcher Fetcher
}

// NewService creates a calculation service on top of a fetcher.
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Calculate resolves the playlist from raw user input, fetches every video's
// duration and returns the aggregated result. The progress callback receives
// stage labels synchronously; pass nil to ignore them. Errors are returned
// unretried for the caller to surface.
func (s *Service) Calculate(ctx context.Context, input string, progress youtube.ProgressFunc) (*model.CalculationResult, error) {
	started := time.Now()

	notify(progress, StageResolving)
	playlistID, err := youtube.ResolvePlaylistID(input)
	if err != nil {
		return nil, err
	}

	notify(progress, StagePlaylistInfo)
	info, err := s.fetcher.PlaylistInfo(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	notify(progress, StageVideoList)
	videoIDs, err := s.fetcher.PlaylistVideoIDs(ctx, playlistID, progress)
	if err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("%w: no accessible videos in playlist %s", ErrNoData, playlistID)
	}

	rawDurations, failed, err := s.fetcher.VideoDurations(ctx, videoIDs, progress)
	if err != nil {
		return nil, err
	}

	durations := make([]float64, 0, len(rawDurations))
	for _, raw := range rawDurations {
		seconds, err := ParseISODuration(raw)
		if err != nil {
			log.Warn().Str("duration", raw).Err(err).Msg("dropping unparseable video duration")
			failed++
			continue
		}
		durations = append(durations, seconds)
	}

	summary, err := Summarize(durations)
	if err != nil {
		return nil, err
	}

	result := &model.CalculationResult{
		RunID:    uuid.NewString(),
		Playlist: *info,
		Stats: model.PlaylistStats{
			Total:     len(videoIDs),
			Processed: summary.Count,
			Failed:    failed,
		},
		TotalSeconds:    summary.Total,
		AverageSeconds:  summary.Average,
		LongestSeconds:  summary.Max,
		ShortestSeconds: summary.Min,
		MedianSeconds:   summary.Median,
		GeneratedAt:     time.Now(),
	}

	notify(progress, StageComplete)

	log.Info().
		Str("run_id", result.RunID).
		Str("playlist", playlistID).
		Int("videos", result.Stats.Processed).
		Int("failed", result.Stats.Failed).
		Float64("total_seconds", result.TotalSeconds).
		Dur("elapsed", time.Since(started)).
		Msg("calculation finished")

	return result, nil
}

func notify(progress youtube.ProgressFunc, stage string) {
	if progress != nil {
		progress(stage)
	}
}
