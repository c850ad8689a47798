package downloader

import (
	"context"
	"io"
	"time"
)

// Phase represents the current phase of the download process
type Phase int

const (
	PhaseValidating Phase = iota
	PhaseFetchingInfo
	PhaseDownloading
	PhaseWriting
	PhaseComplete
	PhaseError
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseFetchingInfo:
		return "fetching_info"
	case PhaseDownloading:
		return "downloading"
	case PhaseWriting:
		return "writing"
	case PhaseComplete:
		return "complete"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Progress represents the current progress of an operation
type Progress struct {
	BytesProcessed int64         `json:"bytes_processed"`
	TotalBytes     int64         `json:"total_bytes"`
	Speed          int64         `json:"speed"` // bytes per second
	ETA            time.Duration `json:"eta"`
	Percentage     float64       `json:"percentage"`
}

// ProgressCallbacks defines callback functions for progress reporting
type ProgressCallbacks struct {
	OnProgress    func(phase Phase, progress Progress)
	OnPhaseChange func(oldPhase, newPhase Phase)
	OnError       func(err error)
	OnComplete    func(result *SaveResult)
}

// SaveResult contains the result of a successfully saved download
type SaveResult struct {
	FilePath string        `json:"file_path"`
	FileSize int64         `json:"file_size"`
	Duration time.Duration `json:"duration"`
}

// StreamConsumer interface defines the contract for saving download streams
type StreamConsumer interface {
	// Save reads a streaming body to the given path with progress
	// callbacks. totalBytes may be -1 when the length is unknown.
	Save(ctx context.Context, body io.ReadCloser, totalBytes int64, path string, callbacks ProgressCallbacks) (*SaveResult, error)
}

// ProgressReporter interface defines the contract for reporting progress
type ProgressReporter interface {
	// StartTracking begins progress tracking for a named download
	StartTracking(ctx context.Context, name string, totalBytes int64) error

	// UpdateProgress reports progress for the current phase
	UpdateProgress(phase Phase, progress Progress) error

	// ReportPhaseChange reports a transition between phases
	ReportPhaseChange(oldPhase, newPhase Phase) error

	// ReportError reports an error that occurred during processing
	ReportError(err error) error

	// ReportComplete reports successful completion with summary information
	ReportComplete(duration time.Duration, filePath string) error

	// Stop stops progress tracking and cleans up resources
	Stop()
}
