package seqs

import (
	"errors"
	"fmt"
	"iter"

	"streamkit/ring"
)

// ErrShortChunk is the panic value raised by [Chunk] under [StrictEnd] when
// the source ends with an incomplete trailing chunk. It is raised at the
// pull past the last complete chunk, not when Chunk is called.
var ErrShortChunk = errors.New("seqs: incomplete trailing chunk")

// Window yields a sliding window of the given size over seq: the first
// output holds elements [0, size), the second [1, size+1), and so on. Each
// output slice is an independent ordered copy, safe to retain. A source with
// fewer than size elements yields nothing; in general the output has
// max(0, n-size+1) windows for a source of length n.
//
// The buffer is a fixed ring of size elements reused across steps: each
// slide overwrites the logically-oldest slot instead of shifting.
//
// Window panics if size is not positive. The check runs at call time,
// before any element is pulled.
func Window[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("seqs: Window: size must be positive")
	}
	return func(yield func([]T) bool) {
		buf := ring.New[T](size)
		for v := range seq {
			buf.Push(v)
			if buf.Full() {
				if !yield(buf.Snapshot()) {
					return
				}
			}
		}
	}
}

// WindowStep is a generalization of [Window] whose window advances by step
// elements per output instead of one.
//
// Scenario 1 (step < size): overlapping windows, e.g. [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk with DropEnd.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
//
// WindowStep panics if size or step is not positive.
func WindowStep[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	if size <= 0 {
		panic("seqs: WindowStep: size must be positive")
	}
	if step <= 0 {
		panic("seqs: WindowStep: step must be positive")
	}
	return func(yield func([]T) bool) {
		buffer := make([]T, 0, size)

		// when step > size, elements between windows are skipped
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)
			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)
			if !yield(output) {
				return
			}

			if step < size {
				// overlapping mode: keep the latter part
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}
}

// ChunkStrategy selects how [Chunk] treats an incomplete trailing group.
type ChunkStrategy string

const (
	// DropEnd discards an incomplete trailing chunk. It is the default.
	DropEnd ChunkStrategy = "dropEnd"
	// KeepEnd yields an incomplete trailing chunk as-is.
	KeepEnd ChunkStrategy = "keepEnd"
	// StrictEnd panics with ErrShortChunk if the trailing chunk is
	// incomplete.
	StrictEnd ChunkStrategy = "strict"
)

type chunkConfig struct {
	strategy ChunkStrategy
}

// ChunkOption configures [Chunk].
type ChunkOption func(*chunkConfig)

// WithChunkStrategy sets the trailing-group strategy for Chunk.
func WithChunkStrategy(strategy ChunkStrategy) ChunkOption {
	return func(c *chunkConfig) {
		c.strategy = strategy
	}
}

// Chunk groups the elements of seq into slices of exactly size elements.
// Each output slice has its own backing array, safe to retain. What happens
// to a trailing group of fewer than size elements is selected with
// [WithChunkStrategy]; by default it is dropped.
//
// Chunk panics at call time if size is not positive or the configured
// strategy is not recognized.
func Chunk[T any](seq iter.Seq[T], size int, opts ...ChunkOption) iter.Seq[[]T] {
	if size <= 0 {
		panic("seqs: Chunk: size must be positive")
	}
	cfg := chunkConfig{strategy: DropEnd}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.strategy {
	case DropEnd, KeepEnd, StrictEnd:
	default:
		panic(fmt.Sprintf("seqs: Chunk: unknown strategy %q", cfg.strategy))
	}

	return func(yield func([]T) bool) {
		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) == 0 {
			return
		}
		switch cfg.strategy {
		case KeepEnd:
			yield(batch)
		case StrictEnd:
			panic(ErrShortChunk)
		}
	}
}
