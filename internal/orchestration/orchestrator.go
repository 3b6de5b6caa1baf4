package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/parsum/internal/config"
	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/vecsum"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking summation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 64

// tracerName identifies this package to the OpenTelemetry tracer provider.
const tracerName = "github.com/agbru/parsum/internal/orchestration"

// GetSummersToRun resolves the execution mode into the concrete summer
// implementations to execute. Compare mode runs the parallel implementation
// against the sequential oracle.
//
// Parameters:
//   - mode: One of config.ModeParallel, ModeSequential or ModeCompare.
//
// Returns:
//   - []vecsum.Summer: The implementations to run, in execution order.
func GetSummersToRun(mode string) []vecsum.Summer {
	switch mode {
	case config.ModeSequential:
		return []vecsum.Summer{vecsum.SequentialSummer{}}
	case config.ModeCompare:
		return []vecsum.Summer{vecsum.ChunkedSummer{}, vecsum.SequentialSummer{}}
	default:
		return []vecsum.Summer{vecsum.ChunkedSummer{}}
	}
}

// ExecuteSummations orchestrates the concurrent execution of one or more
// summations over the same input arrays.
//
// It manages the lifecycle of the summation goroutines, collects their
// results, and coordinates the display of progress updates. Each run is
// wrapped in an OpenTelemetry span carrying the scheduling parameters.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - summers: The implementations to execute.
//   - a, b: The shared read-only input arrays.
//   - n: The number of elements to sum.
//   - opts: The chunk size and worker count.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []SumResult: A slice containing the result of each run.
func ExecuteSummations(ctx context.Context, summers []vecsum.Summer, a, b []int, n int, opts vecsum.Options, progressReporter ProgressReporter, out io.Writer) []SumResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]SumResult, len(summers))
	progressChan := make(chan ProgressUpdate, len(summers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(summers), out)

	tracer := otel.Tracer(tracerName)

	for i, s := range summers {
		idx, summer := i, s
		g.Go(func() error {
			runCtx, span := tracer.Start(ctx, "vecsum.Sum",
				trace.WithAttributes(
					attribute.String("summer", summer.Name()),
					attribute.Int("items", n),
					attribute.Int("chunk_size", opts.ChunkSize),
					attribute.Int("workers", opts.Workers),
				))
			defer span.End()

			onProgress := func(fraction float64) {
				select {
				case progressChan <- ProgressUpdate{SummerIndex: idx, Value: fraction}:
				default:
					// Drop updates rather than stall the workers.
				}
			}

			startTime := time.Now()
			output, err := summer.Sum(runCtx, a, b, n, opts, onProgress)
			results[idx] = SumResult{
				Name: summer.Name(), Output: output, Duration: time.Since(startTime), Err: err,
			}
			if err != nil {
				span.RecordError(err)
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple implementations
// and generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful runs, and displays a comparative table. It handles the logic for
// determining global success or failure based on the individual outcomes.
//
// Parameters:
//   - results: The slice of summation results to analyze.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []SumResult, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *SumResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No implementation could complete the summation.\n")
		return presenter.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil && !equalOutputs(res.Output, firstValid.Output) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the implementations.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	return apperrors.ExitSuccess
}

// equalOutputs compares two result arrays element-wise.
func equalOutputs(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
