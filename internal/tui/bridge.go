package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// ProgressMsg carries an aggregated progress update into the TUI.
type ProgressMsg struct {
	SummerIndex     int
	Value           float64
	AverageProgress float64
}

// ProgressDoneMsg signals that all summers stopped reporting.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-summer outcomes into the TUI.
type ComparisonResultsMsg struct {
	Results []orchestration.SumResult
}

// ErrorMsg carries a terminal failure into the TUI.
type ErrorMsg struct {
	Err error
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSummers int, _ io.Writer) {
	defer wg.Done()

	if numSummers <= 0 {
		for range progressChan {
		}
		return
	}

	latest := make([]float64, numSummers)
	for update := range progressChan {
		if update.SummerIndex >= 0 && update.SummerIndex < numSummers {
			latest[update.SummerIndex] = update.Value
		}

		sum := 0.0
		for _, v := range latest {
			sum += v
		}
		t.ref.Send(ProgressMsg{
			SummerIndex:     update.SummerIndex,
			Value:           update.Value,
			AverageProgress: sum / float64(numSummers),
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends comparison results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.SumResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err})
	return apperrors.ExitCodeForError(err)
}
