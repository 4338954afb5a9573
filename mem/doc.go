// Package mem implements the block-memory engine: copy, overlap-safe move,
// fill, and compare over caller-supplied byte ranges.
//
// All operations are pure, stateless, and allocation-free; they borrow the
// caller's buffers for the duration of the call and never retain them.
// Aligned runs are transferred in machine-word chunks by the selected
// kernel (see internal/memkernel); arbitrary alignments and sizes remain
// correct through the byte-wise remainder paths.
//
// The engine has no error-reporting channel. A zero-length range is always
// a valid no-op. Passing overlapping ranges to Copy (as opposed to Move) is
// a caller contract violation with undefined results.
package mem
