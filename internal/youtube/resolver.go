package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Recognized playlist URL hosts.
var playlistHosts = map[string]bool{
	"www.youtube.com": true,
	"youtube.com":     true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// Bare playlist IDs are alphanumeric plus hyphen/underscore, at least 18 chars.
var playlistIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{18,}$`)

// PlaylistListParam is the query parameter carrying the playlist ID in URLs.
const PlaylistListParam = "list"

// ResolvePlaylistID extracts a playlist ID from user input, which may be a
// bare ID or a playlist URL in any of the common forms
// (youtube.com/playlist?list=..., youtube.com/watch?v=...&list=...,
// youtu.be/...?list=...). Pure function, no network access.
func ResolvePlaylistID(input string) (string, error) {
	input = strings.TrimSpace(input)

	if playlistIDPattern.MatchString(input) && !strings.HasPrefix(input, "http") {
		return input, nil
	}

	parsed, err := url.Parse(input)
	if err == nil && playlistHosts[parsed.Host] {
		if id := parsed.Query().Get(PlaylistListParam); id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidPlaylistID, input)
}
