package seqs

import "iter"

// Take yields at most the first limit elements of seq. If the source has
// fewer than limit elements, the whole source is yielded.
// Take panics if limit is negative. The check runs at call time, before any
// element is pulled.
func Take[T any](seq iter.Seq[T], limit int) iter.Seq[T] {
	if limit < 0 {
		panic("seqs: Take: limit must be non-negative")
	}
	return func(yield func(T) bool) {
		if limit == 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= limit {
				return
			}
		}
	}
}

// Drop skips the first limit elements of seq and yields the rest. If the
// source has fewer than limit elements, nothing is yielded.
// Drop panics if limit is negative. The check runs at call time, before any
// element is pulled.
func Drop[T any](seq iter.Seq[T], limit int) iter.Seq[T] {
	if limit < 0 {
		panic("seqs: Drop: limit must be non-negative")
	}
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < limit {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements from seq as long as the predicate returns true.
// The first failing element stops the sequence permanently; later elements
// are never examined, even if they would pass.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if !predicate(v, i) {
				return // condition failed once, terminate the stream
			}
			if !yield(v) {
				return
			}
			i++
		}
	}
}

// DropWhile skips elements from seq as long as the predicate returns true,
// then yields the first failing element and everything after it. The
// predicate sees the indexes of the skipped prefix and is not consulted
// again once it has failed.
func DropWhile[T any](seq iter.Seq[T], predicate func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		i := 0
		for v := range seq {
			if dropping {
				if predicate(v, i) {
					i++
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}
