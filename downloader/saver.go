package downloader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"go-ytdl-client/client"
)

const copyBufferSize = 32 * 1024

// StreamSaver implements StreamConsumer by writing the stream to a local
// file. A partial file is removed when the save aborts early.
type StreamSaver struct {
	reporter ProgressReporter
	logger   *zap.Logger
}

// NewStreamSaver creates a StreamSaver. Both the reporter and the logger
// may be nil.
func NewStreamSaver(reporter ProgressReporter, logger *zap.Logger) *StreamSaver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamSaver{
		reporter: reporter,
		logger:   logger,
	}
}

var _ StreamConsumer = (*StreamSaver)(nil)

// Save reads the streaming body to completion and writes it to path.
// Cancellation is checked between chunks; on abort the body is closed,
// the partial file removed, and a cancellation error returned.
func (s *StreamSaver) Save(ctx context.Context, body io.ReadCloser, totalBytes int64, path string, callbacks ProgressCallbacks) (*SaveResult, error) {
	defer body.Close()
	start := time.Now()

	tracker := NewProgressTracker(s.reporter)
	if s.reporter != nil {
		if err := s.reporter.StartTracking(ctx, filepath.Base(path), totalBytes); err != nil {
			s.logger.Warn("progress reporter failed to start", zap.Error(err))
		}
		if err := tracker.Start(ctx); err != nil {
			s.logger.Warn("progress tracker failed to start", zap.Error(err))
		} else {
			defer tracker.Stop()
		}
	}

	if callbacks.OnPhaseChange != nil {
		callbacks.OnPhaseChange(PhaseValidating, PhaseDownloading)
	}

	out, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("create output file: %w", err)
		s.reportError(err, callbacks)
		return nil, err
	}

	var written int64
	buf := make([]byte, copyBufferSize)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, s.abort(out, path, client.NewCancelledError(ctxErr), callbacks)
		}

		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return nil, s.abort(out, path, fmt.Errorf("write output file: %w", writeErr), callbacks)
			}
			written += int64(n)

			progress := computeProgress(written, totalBytes, time.Since(start))
			tracker.UpdateProgress(PhaseDownloading, progress)
			if callbacks.OnProgress != nil {
				callbacks.OnProgress(PhaseDownloading, progress)
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return nil, s.abort(out, path, client.NewCancelledError(ctx.Err()), callbacks)
			}
			return nil, s.abort(out, path, client.NewNetworkError("reading download stream failed", readErr), callbacks)
		}
	}

	if err := out.Close(); err != nil {
		err = fmt.Errorf("close output file: %w", err)
		s.reportError(err, callbacks)
		return nil, err
	}

	result := &SaveResult{
		FilePath: path,
		FileSize: written,
		Duration: time.Since(start),
	}

	if callbacks.OnPhaseChange != nil {
		callbacks.OnPhaseChange(PhaseDownloading, PhaseComplete)
	}
	if callbacks.OnComplete != nil {
		callbacks.OnComplete(result)
	}
	if s.reporter != nil {
		_ = s.reporter.ReportComplete(result.Duration, result.FilePath)
	}

	s.logger.Info("download saved",
		zap.String("path", result.FilePath),
		zap.Int64("bytes", result.FileSize),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// abort closes and removes the partial file and fans the error out.
func (s *StreamSaver) abort(out *os.File, path string, err error, callbacks ProgressCallbacks) error {
	out.Close()
	if removeErr := os.Remove(path); removeErr != nil {
		s.logger.Warn("failed to remove partial file", zap.String("path", path), zap.Error(removeErr))
	}
	s.reportError(err, callbacks)
	return err
}

func (s *StreamSaver) reportError(err error, callbacks ProgressCallbacks) {
	if callbacks.OnPhaseChange != nil {
		callbacks.OnPhaseChange(PhaseDownloading, PhaseError)
	}
	if callbacks.OnError != nil {
		callbacks.OnError(err)
	}
	if s.reporter != nil {
		_ = s.reporter.ReportError(err)
	}
}

// computeProgress derives percentage, speed and ETA from raw byte counts.
// TotalBytes may be -1 or 0 when the backend did not send a length.
func computeProgress(written, total int64, elapsed time.Duration) Progress {
	progress := Progress{
		BytesProcessed: written,
		TotalBytes:     total,
	}
	if elapsed > 0 {
		progress.Speed = int64(float64(written) / elapsed.Seconds())
	}
	if total > 0 {
		progress.Percentage = float64(written) / float64(total) * 100
		if progress.Speed > 0 {
			remaining := total - written
			progress.ETA = time.Duration(float64(remaining)/float64(progress.Speed)) * time.Second
		}
	}
	return progress
}
