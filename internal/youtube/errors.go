package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlaylistID means the user input is neither a valid bare
	// playlist ID nor a recognized playlist URL.
	ErrInvalidPlaylistID = errors.New("invalid playlist URL or ID")

	// ErrPlaylistNotFound means the playlist lookup returned no items.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrQuotaExceeded means the API rejected the request because the daily
	// quota for the credential is exhausted.
	ErrQuotaExceeded = errors.New("API quota exceeded")
)

// APIError is a non-2xx response from the Data API that does not map to a
// sentinel error above.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube API error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube API error %d", e.StatusCode)
}
