package vecsum

import (
	apperrors "github.com/agbru/parsum/internal/errors"
)

// Options holds the scheduling parameters of a chunked summation.
type Options struct {
	// ChunkSize is the number of consecutive indices assigned as one unit
	// of work. Must be >= 1.
	ChunkSize int
	// Workers is the number of fork-join workers. Must be >= 1. Workers in
	// excess of the number of blocks simply receive no work.
	Workers int
}

// Plan is the deterministic partition of the index range [0, n) into
// contiguous blocks of ChunkSize indices, assigned round-robin to workers.
// It is derived from its inputs and never stored.
//
// Invariant: blocks are contiguous, non-overlapping, and their union covers
// exactly [0, n).
type Plan struct {
	n         int
	chunkSize int
	workers   int
}

// NewPlan validates the scheduling parameters and returns the partition plan.
//
// Parameters:
//   - n: The number of elements to cover. Must be >= 0.
//   - opts: The chunk size and worker count.
//
// Returns:
//   - Plan: The validated partition plan.
//   - error: An InvalidArgumentError when n is negative, the chunk size is
//     not positive, or the worker count is not positive.
func NewPlan(n int, opts Options) (Plan, error) {
	if n < 0 {
		return Plan{}, apperrors.NewInvalidArgument("items", "must be >= 0, got %d", n)
	}
	if opts.ChunkSize < 1 {
		return Plan{}, apperrors.NewInvalidArgument("chunk_size", "must be >= 1, got %d", opts.ChunkSize)
	}
	if opts.Workers < 1 {
		return Plan{}, apperrors.NewInvalidArgument("workers", "must be >= 1, got %d", opts.Workers)
	}
	return Plan{n: n, chunkSize: opts.ChunkSize, workers: opts.Workers}, nil
}

// Len returns the number of covered indices.
func (p Plan) Len() int { return p.n }

// Workers returns the worker count of the plan.
func (p Plan) Workers() int { return p.workers }

// NumBlocks returns the total number of blocks in the partition.
// The final block may be shorter than the chunk size.
func (p Plan) NumBlocks() int {
	if p.n == 0 {
		return 0
	}
	return (p.n + p.chunkSize - 1) / p.chunkSize
}

// Block returns the half-open index interval [lo, hi) of block k.
//
// Parameters:
//   - k: The block number, 0 <= k < NumBlocks().
//
// Returns:
//   - lo: The first index of the block.
//   - hi: One past the last index of the block.
func (p Plan) Block(k int) (lo, hi int) {
	lo = k * p.chunkSize
	hi = lo + p.chunkSize
	if hi > p.n {
		hi = p.n
	}
	return lo, hi
}

// Owner returns the worker that owns block k under static round-robin
// assignment.
func (p Plan) Owner(k int) int { return k % p.workers }
