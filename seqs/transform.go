package seqs

import "iter"

// Map applies mapping to each element of seq, yielding the transformed
// elements. The second argument to mapping is the 0-based position of the
// element.
func Map[T, R any](seq iter.Seq[T], mapping func(T, int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		i := 0
		for v := range seq {
			if !yield(mapping(v, i)) {
				return
			}
			i++
		}
	}
}

// Filter yields only the elements of seq that satisfy the predicate.
// The index passed to the predicate is the position the element will occupy
// in the output sequence, not its position in the source.
func Filter[T any](seq iter.Seq[T], predicate func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if predicate(v, i) {
				if !yield(v) {
					return
				}
				i++
			}
		}
	}
}

// FlatMap applies mapping to each element of seq and yields every element of
// each inner sequence, in order, before advancing to the next source element.
// Flattening is depth-1 only. The index counts source elements, not produced
// elements.
func FlatMap[S, T any](seq iter.Seq[S], mapping func(S, int) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for s := range seq {
			for t := range mapping(s, i) {
				if !yield(t) {
					return
				}
			}
			i++
		}
	}
}

// Peek invokes consumer on each element before yielding it unchanged.
// The consumer runs exactly once per produced element, in traversal order.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], consumer func(T, int)) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			consumer(v, i)
			if !yield(v) {
				return
			}
			i++
		}
	}
}

// Concat yields all elements of the first sequence, then the second, and so
// on. A source is not pulled from until every sequence before it is
// exhausted.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Enumerate yields (index, element) pairs, with the index beginning at
// start.
func Enumerate[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := start
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Distinct yields only the first occurrence of each unique element.
// Unlike [Dedup], which collapses contiguous runs only, Distinct suppresses
// repeats anywhere in the sequence; memory usage is proportional to the
// number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed
// elements. The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
