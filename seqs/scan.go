package seqs

import "iter"

// Scan yields the running fold of seq: the first element is yielded as-is
// and seeds the accumulator, and each subsequent element yields
// fold(accumulator, element, i). An empty source yields nothing.
//
// The index passed to fold starts at 1, since the element at index 0 was
// consumed as the seed. This is one step offset from [ScanFrom], whose
// explicit seed leaves index 0 for the first fold; the offset keeps "one
// fold application per yielded index" true in both forms and is kept
// deliberately.
func Scan[T any](seq iter.Seq[T], fold func(T, T, int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		var acc T
		i := 1
		for v := range seq {
			if first {
				acc = v
				first = false
			} else {
				acc = fold(acc, v, i)
				i++
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// ScanFrom is [Scan] with an explicit initial accumulator. The initial value
// itself is not yielded; each source element yields
// fold(accumulator, element, i) with the index starting at 0.
func ScanFrom[T, R any](seq iter.Seq[T], initial R, fold func(R, T, int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		i := 0
		for v := range seq {
			acc = fold(acc, v, i)
			i++
			if !yield(acc) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting
// from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// TryReduce aggregates the elements of seq using the reducer function,
// starting from the initial value.
// If reducer returns an error, it is returned immediately.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	var err error
	for v := range seq {
		acc, err = reducer(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
