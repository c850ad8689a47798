package downloader

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ConsoleReporter implements ProgressReporter with a terminal progress bar
type ConsoleReporter struct {
	mu       sync.Mutex
	out      io.Writer
	bar      *progressbar.ProgressBar
	name     string
	isActive bool
}

// NewConsoleReporter creates a ConsoleReporter writing to stderr
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stderr}
}

// NewConsoleReporterWithWriter creates a ConsoleReporter with a custom writer
func NewConsoleReporterWithWriter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// StartTracking begins progress tracking for a named download
func (cr *ConsoleReporter) StartTracking(ctx context.Context, name string, totalBytes int64) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.isActive {
		return fmt.Errorf("progress tracking is already active")
	}

	cr.name = name
	cr.isActive = true
	cr.bar = progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(cr.out),
		progressbar.OptionSetDescription(name),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
	)

	return nil
}

// UpdateProgress reports progress for the current phase
func (cr *ConsoleReporter) UpdateProgress(phase Phase, progress Progress) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.isActive || cr.bar == nil {
		return nil
	}
	return cr.bar.Set64(progress.BytesProcessed)
}

// ReportPhaseChange reports a transition between phases
func (cr *ConsoleReporter) ReportPhaseChange(oldPhase, newPhase Phase) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.isActive || cr.bar == nil {
		return nil
	}
	cr.bar.Describe(fmt.Sprintf("%s %s", newPhase.String(), cr.name))
	return nil
}

// ReportError reports an error that occurred during processing
func (cr *ConsoleReporter) ReportError(err error) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.bar != nil {
		_ = cr.bar.Clear()
	}
	_, printErr := fmt.Fprintf(cr.out, "download failed: %v\n", err)
	return printErr
}

// ReportComplete reports successful completion with summary information
func (cr *ConsoleReporter) ReportComplete(duration time.Duration, filePath string) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.bar != nil {
		_ = cr.bar.Finish()
	}
	_, err := fmt.Fprintf(cr.out, "saved %s in %s\n", filePath, duration.Round(time.Millisecond))
	return err
}

// Stop stops progress tracking and cleans up resources
func (cr *ConsoleReporter) Stop() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	cr.isActive = false
	cr.bar = nil
}

var _ ProgressReporter = (*ConsoleReporter)(nil)
