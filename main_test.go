package main

import (
	"testing"

	"go-ytdl-client/client"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		contentType string
		want        string
	}{
		{
			name:        "plain title with mp4",
			title:       "My Video",
			contentType: "video/mp4",
			want:        "My Video.mp4",
		},
		{
			name:        "forbidden characters replaced",
			title:       `a/b\c:d*e?f"g<h>i|j`,
			contentType: "video/mp4",
			want:        "a_b_c_d_e_f_g_h_i_j.mp4",
		},
		{
			name:        "webm content type",
			title:       "clip",
			contentType: "video/webm",
			want:        "clip.webm",
		},
		{
			name:        "empty title falls back",
			title:       "   ",
			contentType: "video/mp4",
			want:        "video.mp4",
		},
		{
			name:        "missing content type falls back to mp4",
			title:       "clip",
			contentType: "",
			want:        "clip.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultOutputPath(tt.title, tt.contentType); got != tt.want {
				t.Errorf("defaultOutputPath(%q, %q) = %q, want %q", tt.title, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestDescribeFormat(t *testing.T) {
	tests := []struct {
		name   string
		format client.Format
		want   string
	}{
		{
			name:   "full format",
			format: client.Format{Quality: "720p", MimeType: "video/mp4", Itag: 22},
			want:   "720p video/mp4 itag 22",
		},
		{
			name:   "quality only",
			format: client.Format{Quality: "1080p"},
			want:   "1080p",
		},
		{
			name:   "empty format",
			format: client.Format{},
			want:   "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeFormat(tt.format); got != tt.want {
				t.Errorf("describeFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
