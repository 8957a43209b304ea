package ring

// Buffer is a fixed-capacity circular buffer.
// Once full, each Push overwrites the logically-oldest element, so the buffer
// always holds the most recent Cap() values in arrival order.
// It is the backing store for sliding-window traversal, where the window
// advances by dropping the oldest element and admitting one new element.
type Buffer[T any] struct {
	buf   []T // backing array, length == capacity
	front int // index of the oldest element
	size  int // number of elements currently held
}

// New creates a Buffer with the given fixed capacity.
// It panics if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: New: capacity must be positive")
	}
	return &Buffer[T]{
		buf: make([]T, capacity),
	}
}

// Push appends value to the buffer.
// When the buffer is full, the oldest element is overwritten in place and
// front advances by one (mod capacity); no allocation occurs.
func (b *Buffer[T]) Push(value T) {
	if b.size == len(b.buf) {
		b.buf[b.front] = value
		b.front++
		if b.front == len(b.buf) {
			b.front = 0
		}
		return
	}
	tail := b.front + b.size
	if tail >= len(b.buf) {
		tail -= len(b.buf)
	}
	b.buf[tail] = value
	b.size++
}

// Snapshot returns the buffered elements ordered oldest-to-newest as a
// freshly allocated slice. The returned slice does not alias the buffer,
// so callers may retain it across further pushes.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.size)
	if b.front+b.size <= len(b.buf) {
		// contiguous
		copy(out, b.buf[b.front:b.front+b.size])
	} else {
		// wrapped around: copy front..end, then start..tail
		n := copy(out, b.buf[b.front:])
		copy(out[n:], b.buf[:b.size-(len(b.buf)-b.front)])
	}
	return out
}

// Len returns the number of elements currently held.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// Full reports whether Len equals Cap.
func (b *Buffer[T]) Full() bool {
	return b.size == len(b.buf)
}

// Clear removes all elements and releases any references held in the
// backing array.
func (b *Buffer[T]) Clear() {
	clear(b.buf)
	b.front = 0
	b.size = 0
}
