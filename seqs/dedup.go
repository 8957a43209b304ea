package seqs

import "iter"

// Equaler is the capability a type can implement to supply its own equality,
// used in place of == where element types are not comparable or comparability
// by value is not what equality means for them.
type Equaler[T any] interface {
	Equals(T) bool
}

// Equals compares two values through their Equals method. It is shaped for
// use as a [DedupFunc] comparator.
func Equals[T Equaler[T]](a, b T) bool {
	return a.Equals(b)
}

// Dedup collapses contiguous runs of equal elements into their first
// element, comparing with ==. The first element is always yielded;
// non-adjacent repeats of the same value are preserved. State is O(1): only
// the most recently yielded element is retained.
func Dedup[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return DedupFunc(seq, func(a, b T) bool { return a == b })
}

// DedupFunc is [Dedup] with an injected equality function, for element types
// that are not comparable or need comparison other than ==. An element is
// yielded only when eq reports it unequal to the last yielded element;
// dropped elements do not update the comparison point.
func DedupFunc[T any](seq iter.Seq[T], eq func(T, T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var last T
		first := true
		for v := range seq {
			if !first && eq(last, v) {
				continue
			}
			if !yield(v) {
				return
			}
			last = v
			first = false
		}
	}
}
