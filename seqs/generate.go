package seqs

import (
	"iter"
	"math/rand/v2"
)

// Repeat yields value indefinitely.
func Repeat[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(value) {
		}
	}
}

// RepeatN yields value exactly times times. If times <= 0, nothing is
// yielded.
func RepeatN[T any](value T, times int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < times; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Iterate yields seed, then repeatedly replaces it with update(seed, i) and
// yields the result, indefinitely. The index passed to update starts at 0
// and increments once per computed element.
func Iterate[T any](seed T, update func(T, int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(seed) {
			return
		}
		for i := 0; ; i++ {
			seed = update(seed, i)
			if !yield(seed) {
				return
			}
		}
	}
}

// Count yields the arithmetic progression start, start+step, start+2*step,
// and so on, indefinitely. A step of zero yields start forever.
func Count[T Number](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Cycle yields the elements of seq once while buffering them, then replays
// the buffered elements indefinitely. If seq is empty, nothing is ever
// yielded. Auxiliary space is proportional to the source length; the source
// itself is traversed exactly once.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for v := range seq {
			if !yield(v) {
				return
			}
			saved = append(saved, v)
		}
		if len(saved) == 0 {
			return
		}
		for {
			for _, v := range saved {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Range yields the integers from start (inclusive) to end (exclusive),
// advancing by step. A negative step counts downward. A step of zero yields
// nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// RandomInts generates a sequence of random integers of the specified size.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}
