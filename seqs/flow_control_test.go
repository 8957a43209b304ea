package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamkit/seqs"
)

func TestTake(t *testing.T) {
	source := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"zero", 0, nil},
		{"some", 3, []int{1, 2, 3}},
		{"exact length", 5, []int{1, 2, 3, 4, 5}},
		{"beyond length", 10, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.Take(slices.Values(source), tt.limit))
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, min(tt.limit, len(source)))
		})
	}
}

func TestTake_NegativeLimitPanicsEagerly(t *testing.T) {
	// the panic happens at call time, before anything is pulled
	assert.Panics(t, func() {
		seqs.Take(slices.Values([]int{1}), -1)
	})
}

func TestTake_StopsPullingAtLimit(t *testing.T) {
	pulls := 0
	src := countingSeq([]int{1, 2, 3, 4, 5}, &pulls)

	_ = slices.Collect(seqs.Take(src, 2))

	assert.Equal(t, 2, pulls)
}

func TestDrop(t *testing.T) {
	source := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"zero", 0, []int{1, 2, 3, 4, 5}},
		{"some", 2, []int{3, 4, 5}},
		{"exact length", 5, nil},
		{"beyond length", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.Drop(slices.Values(source), tt.limit))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDrop_NegativeLimitPanicsEagerly(t *testing.T) {
	assert.Panics(t, func() {
		seqs.Drop(slices.Values([]int{1}), -1)
	})
}

func TestTakeDrop_Reconstruct(t *testing.T) {
	source := []int{3, 1, 4, 1, 5, 9, 2, 6}

	for n := 0; n <= len(source); n++ {
		prefix := slices.Collect(seqs.Take(slices.Values(source), n))
		suffix := slices.Collect(seqs.Drop(slices.Values(source), n))
		assert.Equal(t, source, append(prefix, suffix...), "split at %d", n)
	}
}

func TestTakeWhile(t *testing.T) {
	t.Run("stops permanently at first failure", func(t *testing.T) {
		input := slices.Values([]int{1, 2, 5, 1, 2})

		got := slices.Collect(seqs.TakeWhile(input, func(v, _ int) bool { return v < 3 }))

		// 1 and 2 after the 5 would pass, but are never reached
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("whole sequence passes", func(t *testing.T) {
		input := slices.Values([]int{1, 2, 3})
		got := slices.Collect(seqs.TakeWhile(input, func(int, int) bool { return true }))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("indexes", func(t *testing.T) {
		var indexes []int
		input := slices.Values([]int{10, 20, 99, 30})
		_ = slices.Collect(seqs.TakeWhile(input, func(v, i int) bool {
			indexes = append(indexes, i)
			return v < 50
		}))
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})
}

func TestDropWhile(t *testing.T) {
	t.Run("yields first failing element and everything after", func(t *testing.T) {
		input := slices.Values([]int{1, 2, 5, 1, 2})

		got := slices.Collect(seqs.DropWhile(input, func(v, _ int) bool { return v < 3 }))

		assert.Equal(t, []int{5, 1, 2}, got)
	})

	t.Run("nothing dropped", func(t *testing.T) {
		input := slices.Values([]int{5, 6})
		got := slices.Collect(seqs.DropWhile(input, func(v, _ int) bool { return v < 3 }))
		assert.Equal(t, []int{5, 6}, got)
	})

	t.Run("everything dropped", func(t *testing.T) {
		input := slices.Values([]int{1, 2})
		got := slices.Collect(seqs.DropWhile(input, func(v, _ int) bool { return v < 3 }))
		assert.Nil(t, got)
	})

	t.Run("predicate sees indexes of skipped elements only", func(t *testing.T) {
		var indexes []int
		input := slices.Values([]int{1, 2, 5, 1, 2})
		_ = slices.Collect(seqs.DropWhile(input, func(v, i int) bool {
			indexes = append(indexes, i)
			return v < 3
		}))
		// called for the two skipped elements and the first failing one,
		// then never again
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})
}
