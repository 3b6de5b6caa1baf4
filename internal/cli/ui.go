//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/parsum/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the DisplayProgress function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface. This adapter allows the spinner library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent summations.
// It maintains the individual progress of each summer and computes the
// average, which provides a consolidated progress view when the parallel and
// sequential implementations run side by side in compare mode.
type ProgressState struct {
	progresses []float64
	numSummers int
}

// NewProgressState creates and initializes a new ProgressState.
//
// Parameters:
//   - numSummers: The number of summers to track.
//
// Returns:
//   - *ProgressState: A pointer to the new progress state object.
func NewProgressState(numSummers int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numSummers),
		numSummers: numSummers,
	}
}

// Update records a new progress value for a specific summer.
// Updates are only applied for valid summer indices.
//
// Parameters:
//   - index: The index of the summer (0 to numSummers-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked summers,
// used to display a single consolidated progress bar.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numSummers == 0 {
		return 0.0
	}
	return total / float64(ps.numSummers)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner and consolidated progress bar for ongoing
// summations. It consumes updates from progressChan until the channel closes,
// refreshing the display at ProgressRefreshRate.
//
// Parameters:
//   - wg: A WaitGroup signaled when display is complete.
//   - progressChan: Channel receiving progress updates from the summers.
//   - numSummers: The number of concurrent summers being tracked.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSummers int, out io.Writer) {
	defer wg.Done()

	if numSummers == 0 {
		for range progressChan {
			// Drain and exit; nothing to display.
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	state := NewProgressState(numSummers)
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(fmt.Sprintf(" %s 100.0%%", progressBar(1.0, ProgressBarWidth)))
				return
			}
			state.Update(update.SummerIndex, update.Value)
		case <-ticker.C:
			avg := state.CalculateAverage()
			s.UpdateSuffix(fmt.Sprintf(" %s %.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
		}
	}
}
