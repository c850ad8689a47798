package downloader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go-ytdl-client/client"
)

// errorReader fails with the given error after serving its data
type errorReader struct {
	data []byte
	err  error
	pos  int
}

func (r *errorReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *errorReader) Close() error { return nil }

func TestStreamSaver_Save(t *testing.T) {
	data := bytes.Repeat([]byte("chunk of video data "), 4096)
	body := io.NopCloser(bytes.NewReader(data))
	path := filepath.Join(t.TempDir(), "video.mp4")

	var progressCalls int
	var completed *SaveResult
	callbacks := ProgressCallbacks{
		OnProgress: func(phase Phase, progress Progress) {
			progressCalls++
			if phase != PhaseDownloading {
				t.Errorf("expected downloading phase, got %v", phase)
			}
		},
		OnComplete: func(result *SaveResult) {
			completed = result
		},
	}

	reporter := NewMockProgressReporter()
	saver := NewStreamSaver(reporter, nil)

	result, err := saver.Save(context.Background(), body, int64(len(data)), path, callbacks)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.FileSize != int64(len(data)) {
		t.Errorf("expected file size %d, got %d", len(data), result.FileSize)
	}
	if result.FilePath != path {
		t.Errorf("expected path %q, got %q", path, result.FilePath)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !bytes.Equal(written, data) {
		t.Error("saved file does not match the stream contents")
	}

	if progressCalls == 0 {
		t.Error("expected progress callbacks")
	}
	if completed == nil {
		t.Error("expected completion callback")
	}
	if len(reporter.GetCompleteCalls()) != 1 {
		t.Errorf("expected 1 ReportComplete call, got %d", len(reporter.GetCompleteCalls()))
	}
}

func TestStreamSaver_SaveCancelled(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1024)
	body := io.NopCloser(bytes.NewReader(data))
	path := filepath.Join(t.TempDir(), "video.mp4")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var reportedErr error
	callbacks := ProgressCallbacks{
		OnError: func(err error) { reportedErr = err },
	}

	saver := NewStreamSaver(nil, nil)

	_, err := saver.Save(ctx, body, int64(len(data)), path, callbacks)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !client.IsClientError(err, client.ErrorCancelled) {
		t.Errorf("expected cancelled error, got: %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("expected error to match context.Canceled")
	}
	if reportedErr == nil {
		t.Error("expected OnError callback")
	}

	// Partial file must be removed
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected partial file to be removed")
	}
}

func TestStreamSaver_SaveReadError(t *testing.T) {
	body := &errorReader{
		data: bytes.Repeat([]byte("y"), 64*1024),
		err:  errors.New("connection reset"),
	}
	path := filepath.Join(t.TempDir(), "video.mp4")

	reporter := NewMockProgressReporter()
	saver := NewStreamSaver(reporter, nil)

	_, err := saver.Save(context.Background(), body, -1, path, ProgressCallbacks{})
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !client.IsClientError(err, client.ErrorNetwork) {
		t.Errorf("expected network error, got: %v", err)
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected partial file to be removed")
	}
	if len(reporter.GetErrorCalls()) != 1 {
		t.Errorf("expected 1 ReportError call, got %d", len(reporter.GetErrorCalls()))
	}
}

func TestStreamSaver_SaveUnknownLength(t *testing.T) {
	data := []byte("short stream")
	body := io.NopCloser(bytes.NewReader(data))
	path := filepath.Join(t.TempDir(), "video.mp4")

	saver := NewStreamSaver(nil, nil)

	result, err := saver.Save(context.Background(), body, -1, path, ProgressCallbacks{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.FileSize != int64(len(data)) {
		t.Errorf("expected file size %d, got %d", len(data), result.FileSize)
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name           string
		written        int64
		total          int64
		wantPercentage float64
	}{
		{"halfway", 50, 100, 50},
		{"complete", 100, 100, 100},
		{"unknown total", 50, -1, 0},
		{"zero total", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := computeProgress(tt.written, tt.total, 0)

			if progress.BytesProcessed != tt.written {
				t.Errorf("expected %d bytes processed, got %d", tt.written, progress.BytesProcessed)
			}
			if progress.Percentage != tt.wantPercentage {
				t.Errorf("expected percentage %.1f, got %.1f", tt.wantPercentage, progress.Percentage)
			}
		})
	}
}
