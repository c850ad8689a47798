package downloader

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConsoleReporter_StartTracking(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterWithWriter(&buf)

	if err := reporter.StartTracking(context.Background(), "video.mp4", 1000); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Double start should fail
	if err := reporter.StartTracking(context.Background(), "other.mp4", 1000); err == nil {
		t.Error("expected error when tracking is already active")
	}
}

func TestConsoleReporter_UpdateProgressBeforeStartIsNoop(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterWithWriter(&buf)

	if err := reporter.UpdateProgress(PhaseDownloading, Progress{BytesProcessed: 10}); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output before StartTracking, got %q", buf.String())
	}
}

func TestConsoleReporter_ReportComplete(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterWithWriter(&buf)

	if err := reporter.StartTracking(context.Background(), "video.mp4", 1000); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := reporter.UpdateProgress(PhaseDownloading, Progress{BytesProcessed: 1000, TotalBytes: 1000}); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if err := reporter.ReportComplete(3*time.Second, "video.mp4"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(buf.String(), "saved video.mp4") {
		t.Errorf("expected completion message, got %q", buf.String())
	}
}

func TestConsoleReporter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterWithWriter(&buf)

	if err := reporter.ReportError(errors.New("stream broke")); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(buf.String(), "stream broke") {
		t.Errorf("expected error message in output, got %q", buf.String())
	}
}

func TestConsoleReporter_StopAllowsRestart(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterWithWriter(&buf)

	if err := reporter.StartTracking(context.Background(), "a.mp4", 100); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	reporter.Stop()

	if err := reporter.StartTracking(context.Background(), "b.mp4", 100); err != nil {
		t.Errorf("expected restart after Stop to succeed, got: %v", err)
	}
}
