package youtube

import (
	"errors"
	"testing"
)

func TestResolvePlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare ID is returned unchanged",
			input:    "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "bare ID with hyphens and underscores",
			input:    "PL-abc_123-def_456-ghi",
			expected: "PL-abc_123-def_456-ghi",
		},
		{
			name:     "exactly 18 characters",
			input:    "PLabcdefghij123456",
			expected: "PLabcdefghij123456",
		},
		{
			name:    "17 characters is too short",
			input:   "PLabcdefghij12345",
			wantErr: true,
		},
		{
			name:     "playlist URL",
			input:    "https://www.youtube.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "watch URL with list parameter",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "host without www",
			input:    "https://youtube.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "short link host",
			input:    "https://youtu.be/dQw4w9WgXcQ?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "mobile host",
			input:    "https://m.youtube.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf\n",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:    "URL without list parameter",
			input:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "unrecognized host",
			input:   "https://vimeo.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			wantErr: true,
		},
		{
			name:    "long token with URL prefix is not a bare ID",
			input:   "https://example.com/PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "not a playlist at all!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePlaylistID(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got id %q", got)
				}
				if !errors.Is(err, ErrInvalidPlaylistID) {
					t.Errorf("expected ErrInvalidPlaylistID, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ResolvePlaylistID(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
