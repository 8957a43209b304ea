package seqs

import (
	"errors"
	"fmt"
	"iter"
)

// ErrZipLength is the panic value raised by [ZipN] under the [Strict]
// strategy when the sources turn out to have unequal lengths. It is raised
// at the step where some sources are exhausted and others are not.
var ErrZipLength = errors.New("seqs: zip sources have unequal lengths")

// Pair holds one element from each of two zipped sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs the elements of two sequences position by position, stopping as
// soon as either sequence is exhausted.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// ZipLongest pairs the elements of two sequences position by position,
// continuing until both are exhausted. Once a sequence runs out it
// contributes its fill value (fill1 for seq1, fill2 for seq2) to each
// remaining pair.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()

			if !ok1 && !ok2 {
				return
			}

			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// ZipStrategy selects how [ZipN] behaves when its sources have unequal
// lengths.
type ZipStrategy string

const (
	// Shortest stops as soon as any source is exhausted. Elements already
	// pulled from other sources for that step are discarded. It is the
	// default.
	Shortest ZipStrategy = "shortest"
	// Longest continues until every source is exhausted; exhausted sources
	// contribute the fill value (see WithFill) for each remaining step.
	Longest ZipStrategy = "longest"
	// Strict requires all sources to have the same length: equal-length
	// sources end cleanly, unequal ones panic with ErrZipLength at the step
	// where the mismatch surfaces.
	Strict ZipStrategy = "strict"
)

type zipConfig[T any] struct {
	strategy ZipStrategy
	fill     T
}

// ZipOption configures [ZipN].
type ZipOption[T any] func(*zipConfig[T])

// WithZipStrategy sets the length-mismatch strategy for ZipN.
func WithZipStrategy[T any](strategy ZipStrategy) ZipOption[T] {
	return func(c *zipConfig[T]) {
		c.strategy = strategy
	}
}

// WithFill sets the value that exhausted sources contribute under the
// [Longest] strategy. Without this option the zero value of T is used;
// supplying WithFill makes "fill is the zero value" an explicit choice
// rather than an accident.
func WithFill[T any](fill T) ZipOption[T] {
	return func(c *zipConfig[T]) {
		c.fill = fill
	}
}

// ZipN multiplexes any number of same-typed sources into a sequence of
// tuples. Each output slice holds one element per source, in source order,
// and has its own backing array. Sources are advanced in lockstep, one
// element per produced tuple. Zero sources yield nothing.
//
// ZipN panics at call time if the configured strategy is not recognized.
func ZipN[T any](sources []iter.Seq[T], opts ...ZipOption[T]) iter.Seq[[]T] {
	cfg := zipConfig[T]{strategy: Shortest}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.strategy {
	case Shortest, Longest, Strict:
	default:
		panic(fmt.Sprintf("seqs: ZipN: unknown strategy %q", cfg.strategy))
	}

	return func(yield func([]T) bool) {
		if len(sources) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(sources))
		for i, src := range sources {
			next, stop := iter.Pull(src)
			defer stop()
			nexts[i] = next
		}

		for {
			tuple := make([]T, len(sources))
			done := 0
			for i, next := range nexts {
				v, ok := next()
				if ok {
					tuple[i] = v
					continue
				}
				done++
				if cfg.strategy == Shortest {
					// sources after i are not pulled for this step
					return
				}
				tuple[i] = cfg.fill
			}
			if done == len(sources) {
				return
			}
			if done > 0 && cfg.strategy == Strict {
				panic(ErrZipLength)
			}
			if !yield(tuple) {
				return
			}
		}
	}
}
