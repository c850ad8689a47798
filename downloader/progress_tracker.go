package downloader

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ProgressTracker manages throttled periodic progress updates so that a
// chatty producer (one update per read) does not overwhelm the reporter
type ProgressTracker struct {
	// Configuration
	updateInterval time.Duration
	reporter       ProgressReporter

	// State management
	mu              sync.RWMutex
	isRunning       bool
	currentPhase    Phase
	currentProgress Progress

	// Goroutine management
	ctx        context.Context
	cancel     context.CancelFunc
	ticker     *time.Ticker
	updateChan chan progressUpdate
	stopChan   chan struct{}
	doneChan   chan struct{}
}

// progressUpdate represents an internal progress update
type progressUpdate struct {
	phase    Phase
	progress Progress
}

// NewProgressTracker creates a new ProgressTracker with the specified reporter
func NewProgressTracker(reporter ProgressReporter) *ProgressTracker {
	return &ProgressTracker{
		updateInterval: 500 * time.Millisecond,
		reporter:       reporter,
		currentPhase:   -1, // Invalid phase so the first update registers a phase change
	}
}

// NewProgressTrackerWithInterval creates a ProgressTracker with a custom update interval
func NewProgressTrackerWithInterval(reporter ProgressReporter, interval time.Duration) *ProgressTracker {
	pt := NewProgressTracker(reporter)
	pt.updateInterval = interval
	return pt
}

// Start begins the progress tracking with periodic updates
func (pt *ProgressTracker) Start(ctx context.Context) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isRunning {
		return fmt.Errorf("progress tracker is already running")
	}

	// Create new channels for this session
	pt.updateChan = make(chan progressUpdate, 10)
	pt.stopChan = make(chan struct{})
	pt.doneChan = make(chan struct{})

	pt.ctx, pt.cancel = context.WithCancel(ctx)
	pt.ticker = time.NewTicker(pt.updateInterval)
	pt.isRunning = true

	go pt.updateLoop()

	return nil
}

// Stop stops the progress tracking and cleans up resources
func (pt *ProgressTracker) Stop() {
	pt.mu.Lock()
	if !pt.isRunning {
		pt.mu.Unlock()
		return
	}

	select {
	case <-pt.stopChan:
		// Already closed
	default:
		close(pt.stopChan)
	}

	if pt.cancel != nil {
		pt.cancel()
	}
	pt.isRunning = false
	pt.mu.Unlock()

	// Wait for the update loop to finish
	<-pt.doneChan

	if pt.ticker != nil {
		pt.ticker.Stop()
		pt.ticker = nil
	}

	if pt.reporter != nil {
		pt.reporter.Stop()
	}
}

// UpdateProgress updates the current progress information
func (pt *ProgressTracker) UpdateProgress(phase Phase, progress Progress) {
	pt.mu.RLock()
	if !pt.isRunning {
		pt.mu.RUnlock()
		return
	}
	pt.mu.RUnlock()

	// Non-blocking send; a full channel drops the update rather than
	// stalling the read loop
	select {
	case pt.updateChan <- progressUpdate{phase: phase, progress: progress}:
	default:
	}
}

// GetCurrentProgress returns the current progress state (thread-safe)
func (pt *ProgressTracker) GetCurrentProgress() (Phase, Progress) {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.currentPhase, pt.currentProgress
}

// IsRunning returns whether the tracker is currently running
func (pt *ProgressTracker) IsRunning() bool {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.isRunning
}

// updateLoop runs the main update loop in a separate goroutine
func (pt *ProgressTracker) updateLoop() {
	defer close(pt.doneChan)

	for {
		select {
		case <-pt.ctx.Done():
			return

		case <-pt.stopChan:
			return

		case update := <-pt.updateChan:
			pt.mu.Lock()
			oldPhase := pt.currentPhase
			pt.currentPhase = update.phase
			pt.currentProgress = update.progress
			pt.mu.Unlock()

			// Phase changes are reported immediately, including the first one
			if oldPhase != update.phase && pt.reporter != nil {
				// Reporter errors are diagnostic only; keep tracking
				_ = pt.reporter.ReportPhaseChange(oldPhase, update.phase)
			}

		case <-pt.ticker.C:
			pt.mu.RLock()
			currentPhase := pt.currentPhase
			currentProgress := pt.currentProgress
			pt.mu.RUnlock()

			// Only report once a phase has been set
			if pt.reporter != nil && currentPhase >= 0 {
				_ = pt.reporter.UpdateProgress(currentPhase, currentProgress)
			}
		}
	}
}
