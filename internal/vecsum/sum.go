package vecsum

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/parallel"
)

// ProgressFunc receives the normalized completion fraction (0.0 to 1.0) of a
// running summation. Implementations must be safe for concurrent use; the
// parallel summer calls it from every worker.
type ProgressFunc func(fraction float64)

// Summer computes the element-wise sum of two integer arrays.
// Implementations are interchangeable: for the same inputs they must produce
// identical outputs regardless of their internal scheduling.
type Summer interface {
	// Name returns the human-readable identifier of the implementation.
	Name() string

	// Sum returns c with c[i] = a[i] + b[i] for every i in [0, n).
	//
	// Parameters:
	//   - ctx: Cancellation context, checked between blocks.
	//   - a, b: The input arrays; both must have length >= n. They are only
	//     read and may be shared freely.
	//   - n: The number of elements to sum. n == 0 yields an empty result.
	//   - opts: The chunk size and worker count.
	//   - onProgress: Optional completion callback (may be nil).
	//
	// Returns:
	//   - []int: The freshly allocated output array of length n.
	//   - error: An InvalidArgumentError for rejected parameters, or the
	//     context error if the run was canceled.
	Sum(ctx context.Context, a, b []int, n int, opts Options, onProgress ProgressFunc) ([]int, error)
}

// validateInputs builds the partition plan and checks the array bounds.
// Shared by both implementations so they reject exactly the same inputs.
func validateInputs(a, b []int, n int, opts Options) (Plan, error) {
	plan, err := NewPlan(n, opts)
	if err != nil {
		return Plan{}, err
	}
	if len(a) < n {
		return Plan{}, apperrors.NewInvalidArgument("a", "length %d shorter than items %d", len(a), n)
	}
	if len(b) < n {
		return Plan{}, apperrors.NewInvalidArgument("b", "length %d shorter than items %d", len(b), n)
	}
	return plan, nil
}

// nopProgress is substituted for nil callbacks so the hot loop never branches
// on the callback.
func nopProgress(float64) {}

// ChunkedSummer is the parallel implementation. Each call spawns a fixed pool
// of workers, distributes blocks round-robin, and joins the pool before
// returning. There is no shared mutable state on the data path: every output
// index has exactly one writer.
type ChunkedSummer struct{}

// Verify interface compliance.
var _ Summer = ChunkedSummer{}

// Name returns the implementation identifier.
func (ChunkedSummer) Name() string { return "chunked-parallel" }

// Sum computes the element-wise sum using the fork-join worker pool.
func (ChunkedSummer) Sum(ctx context.Context, a, b []int, n int, opts Options, onProgress ProgressFunc) ([]int, error) {
	plan, err := validateInputs(a, b, n, opts)
	if err != nil {
		return nil, err
	}
	if onProgress == nil {
		onProgress = nopProgress
	}

	c := make([]int, n)
	numBlocks := plan.NumBlocks()
	if numBlocks == 0 {
		onProgress(1.0)
		return c, nil
	}

	var (
		wg        sync.WaitGroup
		ec        parallel.ErrorCollector
		completed atomic.Int64
	)

	workers := plan.Workers()
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			// Static round-robin: this worker owns blocks
			// worker, worker+workers, worker+2*workers, ...
			for k := worker; k < numBlocks; k += workers {
				select {
				case <-ctx.Done():
					ec.SetError(ctx.Err())
					return
				default:
				}

				lo, hi := plan.Block(k)
				for i := lo; i < hi; i++ {
					c[i] = a[i] + b[i]
				}

				done := completed.Add(1)
				onProgress(float64(done) / float64(numBlocks))
			}
		}(w)
	}
	wg.Wait()

	if err := ec.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// SequentialSummer is the single-threaded fallback. It satisfies the same
// contract as ChunkedSummer and serves as the oracle in comparison mode.
type SequentialSummer struct{}

// Verify interface compliance.
var _ Summer = SequentialSummer{}

// Name returns the implementation identifier.
func (SequentialSummer) Name() string { return "sequential" }

// Sum computes the element-wise sum with a plain loop, checking the context
// once per block so cancellation latency matches the parallel implementation.
func (SequentialSummer) Sum(ctx context.Context, a, b []int, n int, opts Options, onProgress ProgressFunc) ([]int, error) {
	plan, err := validateInputs(a, b, n, opts)
	if err != nil {
		return nil, err
	}
	if onProgress == nil {
		onProgress = nopProgress
	}

	c := make([]int, n)
	numBlocks := plan.NumBlocks()
	if numBlocks == 0 {
		onProgress(1.0)
		return c, nil
	}

	for k := 0; k < numBlocks; k++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lo, hi := plan.Block(k)
		for i := lo; i < hi; i++ {
			c[i] = a[i] + b[i]
		}
		onProgress(float64(k+1) / float64(numBlocks))
	}
	return c, nil
}
