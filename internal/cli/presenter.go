package cli

import (
	"fmt"
	"io"
	"sync"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/format"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during summations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing summations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSummers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSummers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized summaries of summation runs.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// implementation names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.SumResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum implementation name width for proper alignment
	maxNameLen := len("Implementation")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if duration := format.FormatExecutionDuration(res.Duration); len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sImplementation%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxNameLen-len("Implementation")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%sSuccess%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight(maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight(maxDurationLen-len(duration)),
			status)
	}
}

// HandleError renders a failure message and maps the error class to the
// application exit code.
//
// Parameters:
//   - err: The error to report (may be nil).
//   - out: The writer for the message.
//
// Returns:
//   - int: The exit code corresponding to the error class.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	return apperrors.ExitCodeForError(err)
}

// padRight returns a string of spaces with the given length.
func padRight(length int) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
