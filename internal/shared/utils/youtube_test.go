package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch link with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"not a youtube url", "https://vimeo.com/123456", ""},
		{"id with wrong length", "https://youtu.be/short", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractYouTubeID(tt.url))
		})
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg",
		YouTubeThumbnail("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "", YouTubeThumbnail("https://example.com/video"))
}
