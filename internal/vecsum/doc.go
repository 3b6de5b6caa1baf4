// Package vecsum implements element-wise summation of integer arrays using a
// statically scheduled, chunked parallel loop.
//
// The index range [0, n) is divided into contiguous blocks of a fixed chunk
// size; block k is owned by worker k mod workers (round-robin). Because index
// ownership is disjoint and total, workers write their output slots without
// any synchronization beyond the final join barrier.
//
// Two implementations satisfy the Summer interface: ChunkedSummer runs the
// fork-join parallel loop, SequentialSummer is the single-threaded fallback
// and the test oracle. Both produce identical results for identical inputs.
package vecsum
