// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Kind
	}{
		// --- YouTube shapes ---
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", KindYouTube},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", KindYouTube},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", KindYouTube},
		{"shorts url", "https://youtube.com/shorts/dQw4w9WgXcQ", KindYouTube},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", KindYouTube},

		// --- Direct video files ---
		{"mp4", "https://cdn.example.com/clips/tour.mp4", KindVideoFile},
		{"webm", "https://cdn.example.com/clips/tour.webm", KindVideoFile},
		{"ogg", "https://cdn.example.com/clips/tour.ogg", KindVideoFile},
		{"mp4 uppercase", "https://cdn.example.com/clips/TOUR.MP4", KindVideoFile},
		{"mp4 with query", "https://cdn.example.com/tour.mp4?sig=abc", KindVideoFile},

		// --- Precedence: YouTube wins over a video-ish path ---
		{"youtube beats extension", "https://youtube.com/watch?v=dQw4w9WgXcQ&file=.mp4", KindYouTube},

		// --- Image fallback ---
		{"jpeg", "https://cdn.example.com/photos/kitchen.jpg", KindImage},
		{"png", "https://cdn.example.com/photos/plan.png", KindImage},
		{"no extension", "https://cdn.example.com/photos/12345", KindImage},
		{"empty url", "", KindImage},
		{"garbage", "not a url at all %%%", KindImage},
		{"youtube without id", "https://www.youtube.com/watch", KindImage},
		{"short id too short", "https://youtu.be/abc", KindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"
	urls := []string{
		"https://www.youtube.com/watch?v=" + id,
		"https://youtu.be/" + id,
		"https://www.youtube.com/embed/" + id,
		"https://www.youtube.com/shorts/" + id,
	}
	for _, u := range urls {
		if got := VideoID(u); got != id {
			t.Errorf("VideoID(%q) = %q, want %q", u, got, id)
		}
	}

	if got := VideoID("https://vimeo.com/123456"); got != "" {
		t.Errorf("VideoID(vimeo) = %q, want empty", got)
	}
	if got := VideoID(""); got != "" {
		t.Errorf("VideoID(empty) = %q, want empty", got)
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !strings.Contains(got, "youtube.com/embed/dQw4w9WgXcQ") {
		t.Errorf("EmbedURL = %q, want embed URL containing the video id", got)
	}
	if EmbedURL("https://example.com/photo.jpg") != "" {
		t.Error("EmbedURL(non-youtube) should be empty")
	}
}

func TestThumbnailURL(t *testing.T) {
	tests := []struct {
		quality ThumbQuality
		want    string
	}{
		{ThumbDefault, "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg"},
		{ThumbHigh, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
		{ThumbMaxRes, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"},
		{"", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}, // default quality
	}
	for _, tt := range tests {
		got := ThumbnailURL("https://youtu.be/dQw4w9WgXcQ", tt.quality)
		if got != tt.want {
			t.Errorf("ThumbnailURL(quality=%q) = %q, want %q", tt.quality, got, tt.want)
		}
	}

	if ThumbnailURL("https://example.com/a.png", ThumbHigh) != "" {
		t.Error("ThumbnailURL(non-youtube) should be empty")
	}
}
