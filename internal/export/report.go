// Package export renders a calculation result as a fixed-format plaintext
// report and writes it to a user-chosen destination.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ytget/yt-playlist-duration/internal/calc"
	"github.com/ytget/yt-playlist-duration/internal/model"
)

const (
	reportHeader    = "YouTube Playlist Duration Calculator - Results"
	reportRuleWidth = 50
	timestampLayout = "2006-01-02 15:04:05"
)

// RenderReport produces the plaintext report for one calculation result.
func RenderReport(result *model.CalculationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", reportHeader)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", reportRuleWidth))

	fmt.Fprintf(&b, "Playlist: %s\n", result.Playlist.Title)
	fmt.Fprintf(&b, "Channel: %s\n", result.Playlist.Channel)
	fmt.Fprintf(&b, "Total Videos: %d\n", result.Playlist.ItemCount)
	fmt.Fprintf(&b, "Processed Videos: %d\n", result.Stats.Processed)
	fmt.Fprintf(&b, "Failed Videos: %d\n\n", result.Stats.Failed)

	fmt.Fprintf(&b, "Total Duration: %s\n", calc.FormatDuration(result.TotalSeconds))
	fmt.Fprintf(&b, "Total Seconds: %.0f\n\n", result.TotalSeconds)

	fmt.Fprintf(&b, "Statistics:\n")
	fmt.Fprintf(&b, "  Average Duration: %s\n", calc.FormatDuration(result.AverageSeconds))
	fmt.Fprintf(&b, "  Longest Video: %s\n", calc.FormatDuration(result.LongestSeconds))
	fmt.Fprintf(&b, "  Shortest Video: %s\n", calc.FormatDuration(result.ShortestSeconds))
	fmt.Fprintf(&b, "  Median Duration: %s\n\n", calc.FormatDuration(result.MedianSeconds))

	fmt.Fprintf(&b, "Generated on: %s\n", result.GeneratedAt.Format(timestampLayout))

	return b.String()
}

// WriteReport streams the report to an open writer. The caller owns closing.
func WriteReport(w io.Writer, result *model.CalculationResult) error {
	_, err := io.WriteString(w, RenderReport(result))
	return err
}

// WriteReportFile writes the report to a file path, replacing any existing
// content.
func WriteReportFile(path string, result *model.CalculationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
