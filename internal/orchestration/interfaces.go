package orchestration

import (
	"io"
	"sync"
	"time"
)

// SumResult encapsulates the outcome of a single summation run.
// It serves as the shared domain type between orchestration and presentation
// layers.
type SumResult struct {
	// Name is the identifier of the implementation used (e.g., "chunked-parallel").
	Name string
	// Output is the computed sum array. It is nil if an error occurred.
	Output []int
	// Duration is the time taken to complete the summation.
	Duration time.Duration
	// Err contains any error that occurred during the summation.
	Err error
}

// ProgressUpdate carries a normalized progress value from a running summer
// to the display layer.
type ProgressUpdate struct {
	// SummerIndex identifies which concurrent summer reported the value.
	SummerIndex int
	// Value is the completion fraction (0.0 to 1.0).
	Value float64
}

// ProgressReporter defines the interface for displaying summation progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, progress
// bar, dashboard) while orchestration focuses on coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from summers.
	//   - numSummers: The number of concurrent summers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSummers int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting summation results,
// allowing different output formats without modifying the orchestration
// logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []SumResult, out io.Writer)

	// HandleError renders a failure and returns the matching exit code.
	HandleError(err error, out io.Writer) int
}
