// Package downloader consumes the streaming responses produced by the
// backend client and writes them to disk with progress reporting.
//
// The package defines core interfaces and data structures for:
//   - StreamSaver: reads a streaming response body to a file
//   - ProgressReporter: progress reporting interface for external systems
//   - ProgressTracker: throttled periodic progress fan-out
//
// This package is the caller-side half of a download: the client package
// returns the raw response, and this package reads chunks until
// exhaustion and handles the save-to-disk behavior.
package downloader
