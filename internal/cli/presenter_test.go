package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/ui"
)

// TestPresentComparisonTable verifies the tabular summary layout.
func TestPresentComparisonTable(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	results := []orchestration.SumResult{
		{Name: "chunked-parallel", Duration: 2 * time.Millisecond},
		{Name: "sequential", Duration: 8 * time.Millisecond},
		{Name: "broken", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	for _, want := range []string{"Comparison Summary", "Implementation", "Duration", "Status",
		"chunked-parallel", "sequential", "Success", "Failure (boom)"} {
		if !strings.Contains(output, want) {
			t.Errorf("table should contain %q, got:\n%s", want, output)
		}
	}
}

// TestPresentComparisonTableZeroDuration verifies sub-microsecond display.
func TestPresentComparisonTableZeroDuration(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable([]orchestration.SumResult{{Name: "sequential"}}, &buf)

	if !strings.Contains(buf.String(), "< 1µs") {
		t.Errorf("zero duration should render as < 1µs, got:\n%s", buf.String())
	}
}

// TestHandleError verifies error-class to exit-code mapping.
func TestHandleError(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"invalid argument", apperrors.NewInvalidArgument("chunk_size", "must be >= 1"), apperrors.ExitErrorConfig},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := CLIResultPresenter{}.HandleError(tt.err, &buf)
			if got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if tt.err != nil && !strings.Contains(buf.String(), "Error:") {
				t.Errorf("error message missing, got: %s", buf.String())
			}
		})
	}
}
