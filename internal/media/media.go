// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media classifies portfolio media URLs and derives YouTube embed
// and thumbnail URLs. Classification is pure string inspection — no network
// calls — with ordered precedence: YouTube, then direct video file, then
// image as the universal fallback (a malformed or empty URL still renders
// through the image path).
package media

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the rendering classification of a media URL.
type Kind int

const (
	// KindImage is the fallback: anything not recognized as video.
	KindImage Kind = iota
	// KindVideoFile is a directly playable video file (.mp4, .webm, .ogg).
	KindVideoFile
	// KindYouTube is a YouTube URL rendered through the embedded player.
	KindYouTube
)

// String returns the kind name used in templates and logs.
func (k Kind) String() string {
	switch k {
	case KindVideoFile:
		return "video"
	case KindYouTube:
		return "youtube"
	default:
		return "image"
	}
}

// youtubePatterns match the supported YouTube URL shapes, each capturing
// the 11-character video ID.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

// videoExtensions are the direct video file markers.
var videoExtensions = []string{".mp4", ".webm", ".ogg"}

// Classify returns the media kind for a URL, in precedence order:
// YouTube, direct video file, image.
func Classify(url string) Kind {
	if VideoID(url) != "" {
		return KindYouTube
	}
	if isVideoFile(url) {
		return KindVideoFile
	}
	return KindImage
}

// VideoID extracts the YouTube video ID from any supported URL shape
// (watch, youtu.be, embed, shorts). Returns "" for non-YouTube URLs.
func VideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// EmbedURL converts a YouTube URL to an embeddable player URL.
// Returns "" for non-YouTube URLs.
func EmbedURL(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=0&rel=0&modestbranding=1", id)
}

// ThumbQuality selects a YouTube thumbnail size.
type ThumbQuality string

const (
	ThumbDefault  ThumbQuality = "default"
	ThumbMedium   ThumbQuality = "mqdefault"
	ThumbHigh     ThumbQuality = "hqdefault"
	ThumbStandard ThumbQuality = "sddefault"
	ThumbMaxRes   ThumbQuality = "maxresdefault"
)

// ThumbnailURL returns the YouTube-hosted thumbnail for a YouTube URL,
// or "" for non-YouTube URLs.
func ThumbnailURL(url string, quality ThumbQuality) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	if quality == "" {
		quality = ThumbHigh
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}

// isVideoFile reports whether the URL points at a direct video file.
func isVideoFile(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, ext := range videoExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}
