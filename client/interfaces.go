package client

import (
	"context"
	"net/http"
)

// VideoService defines the contract for callers of the backend client
type VideoService interface {
	// FetchVideoInfo retrieves video metadata for the given URL
	FetchVideoInfo(ctx context.Context, videoURL string) (*VideoInfo, error)

	// DownloadVideo returns the raw streaming response for the given URL;
	// the caller owns the response body
	DownloadVideo(ctx context.Context, videoURL string) (*http.Response, error)
}

var _ VideoService = (*Client)(nil)
