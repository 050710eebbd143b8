package calc

import (
	"errors"
	"sort"
)

// ErrNoData means no video duration survived fetching and parsing, so there
// is nothing to aggregate.
var ErrNoData = errors.New("no video durations could be retrieved")

// Summary holds the aggregate statistics of one run, all in seconds.
type Summary struct {
	Count   int
	Total   float64
	Average float64
	Min     float64
	Max     float64
	Median  float64
}

// Summarize reduces a sequence of per-video durations to a Summary. The
// median is the element at index n/2 of the ascending sort; for even-length
// input that is the upper-middle element, not the midpoint of the two central
// values.
func Summarize(durations []float64) (Summary, error) {
	if len(durations) == 0 {
		return Summary{}, ErrNoData
	}

	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Float64s(sorted)

	var total float64
	for _, d := range sorted {
		total += d
	}

	return Summary{
		Count:   len(sorted),
		Total:   total,
		Average: total / float64(len(sorted)),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Median:  sorted[len(sorted)/2],
	}, nil
}
