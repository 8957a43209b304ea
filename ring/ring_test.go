package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamkit/ring"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		wantPanic bool
	}{
		{"Negative capacity", -1, true},
		{"Zero capacity", 0, true},
		{"Capacity 1", 1, false},
		{"Capacity 8", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				assert.Panics(t, func() { ring.New[int](tt.capacity) })
				return
			}
			b := ring.New[int](tt.capacity)
			assert.Equal(t, 0, b.Len())
			assert.Equal(t, tt.capacity, b.Cap())
			assert.False(t, b.Full())
		})
	}
}

func TestBuffer_PushUntilFull(t *testing.T) {
	b := ring.New[int](3)

	b.Push(1)
	assert.Equal(t, []int{1}, b.Snapshot())
	assert.False(t, b.Full())

	b.Push(2)
	b.Push(3)
	assert.True(t, b.Full())
	assert.Equal(t, []int{1, 2, 3}, b.Snapshot())
}

func TestBuffer_OverwriteOldest(t *testing.T) {
	b := ring.New[int](3)
	for i := 1; i <= 3; i++ {
		b.Push(i)
	}

	// each push past capacity drops the oldest element
	b.Push(4)
	assert.Equal(t, []int{2, 3, 4}, b.Snapshot())

	b.Push(5)
	b.Push(6)
	assert.Equal(t, []int{4, 5, 6}, b.Snapshot())
	assert.Equal(t, 3, b.Len())
}

func TestBuffer_SnapshotWrapAround(t *testing.T) {
	b := ring.New[string](4)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		b.Push(s)
	}
	// front has wrapped; snapshot must stitch the two halves in order
	assert.Equal(t, []string{"c", "d", "e", "f"}, b.Snapshot())
}

func TestBuffer_SnapshotIsIndependent(t *testing.T) {
	b := ring.New[int](2)
	b.Push(10)
	b.Push(20)

	snap := b.Snapshot()
	b.Push(30)
	b.Push(40)

	require.Equal(t, []int{10, 20}, snap)
	assert.Equal(t, []int{30, 40}, b.Snapshot())
}

func TestBuffer_Clear(t *testing.T) {
	b := ring.New[int](2)
	b.Push(1)
	b.Push(2)
	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Snapshot())

	// reusable after Clear
	b.Push(7)
	assert.Equal(t, []int{7}, b.Snapshot())
}

func TestBuffer_CapacityOne(t *testing.T) {
	b := ring.New[int](1)
	b.Push(1)
	assert.Equal(t, []int{1}, b.Snapshot())
	b.Push(2)
	assert.Equal(t, []int{2}, b.Snapshot())
}
