package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/parsum/internal/cli"
	"github.com/agbru/parsum/internal/config"
	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/metrics"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/sysmon"
	"github.com/agbru/parsum/internal/tui"
	"github.com/agbru/parsum/internal/vecsum"
)

// generateInputs builds the two input arrays: a deterministic triangular
// sequence and a seeded random array. A zero seed derives one from the clock
// so repeated runs sum different data unless the user pins the seed.
func (a *Application) generateInputs() (x, y []int) {
	seed := a.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return vecsum.Triangular(a.Config.Items), vecsum.Random(a.Config.Items, seed)
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	summersToRun := orchestration.GetSummersToRun(a.Config.Mode)
	x, y := a.generateInputs()
	return tui.Run(ctx, summersToRun, x, y, a.Config, Version)
}

// runCompute orchestrates the execution of the CLI summation command.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	summersToRun := orchestration.GetSummersToRun(a.Config.Mode)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	x, y := a.generateInputs()
	opts := vecsum.Options{ChunkSize: a.Config.ChunkSize, Workers: a.Config.Threads}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	results := orchestration.ExecuteSummations(ctx, summersToRun, x, y, a.Config.Items, opts, progressReporter, progressOut)

	if a.Config.Mode == config.ModeCompare {
		exitCode := orchestration.AnalyzeComparisonResults(results, cli.CLIResultPresenter{}, out)
		if a.Config.Verbose && exitCode == apperrors.ExitSuccess {
			a.printVerboseStats(collector, before, out)
		}
		return exitCode
	}

	return a.presentSingleResult(results, x, y, collector, before, out)
}

// presentSingleResult renders the outcome of a single-implementation run.
func (a *Application) presentSingleResult(results []orchestration.SumResult, x, y []int,
	collector *metrics.MemoryCollector, before metrics.MemorySnapshot, out io.Writer) int {
	if len(results) == 0 {
		fmt.Fprintf(a.ErrWriter, "Error: no implementation was run\n")
		return apperrors.ExitErrorGeneric
	}

	res := results[0]
	if res.Err != nil {
		a.Logger.Error("summation failed", res.Err)
		return cli.CLIResultPresenter{}.HandleError(res.Err, out)
	}

	if !a.Config.Quiet {
		cli.DisplayElapsed(res.Duration, out)
	}
	cli.DisplayResults(out, x, y, res.Output, a.Config.MaxOutputRows)

	if a.Config.Verbose {
		a.printVerboseStats(collector, before, out)
	}
	return apperrors.ExitSuccess
}

// printVerboseStats reports runtime memory deltas and a system monitor sample.
func (a *Application) printVerboseStats(collector *metrics.MemoryCollector, before metrics.MemorySnapshot, out io.Writer) {
	after := collector.Snapshot()
	delta := metrics.Delta(before, after)
	fmt.Fprintf(out, "\nHeap allocated: %d bytes (%d objects), GC cycles: %d\n",
		delta.HeapAlloc, delta.HeapObjects, delta.NumGC)

	sys := sysmon.Sample()
	fmt.Fprintf(out, "System load: %s\n", sys)
}
