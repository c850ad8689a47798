// Package client provides the HTTP client for the remote video-download
// backend with bounded retries and cooperative cancellation.
//
// The package defines core building blocks for:
//   - URL validation before any network activity
//   - A retrying request executor for the backend's POST endpoints
//   - Error handling with structured ClientError types
//   - Fetching video metadata and streaming video downloads
//
// Callers own the cancellation context and the streaming response body
// returned by DownloadVideo.
package client
