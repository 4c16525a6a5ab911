package utils

import (
	"fmt"
	"regexp"
)

// Matches the id segment of youtu.be/, /v/, /u/<x>/, /embed/,
// watch?v= and &v= URL forms.
var youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractYouTubeID returns the 11-character video id from a YouTube
// URL, or "" when the URL does not carry one. Never an error: a video
// URL that cannot be parsed just renders without a thumbnail.
func ExtractYouTubeID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != 11 {
		return ""
	}
	return match[2]
}

// YouTubeThumbnail returns the medium-quality thumbnail URL for a
// video, or "" when no id can be extracted.
func YouTubeThumbnail(url string) string {
	id := ExtractYouTubeID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}
