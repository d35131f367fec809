package pull

import "context"

// lazyBuffer incrementally snapshots a producer's output, giving the
// combinatorial generators random access to a growing prefix of their
// input without materializing more of it than they have needed so far.
type lazyBuffer[T any] struct {
	p    Producer[T]
	buf  []T
	done bool
}

func newLazyBuffer[T any](p Producer[T]) *lazyBuffer[T] {
	return &lazyBuffer[T]{p: p}
}

func (b *lazyBuffer[T]) len() int {
	return len(b.buf)
}

// getNext pulls one more element into the buffer, reporting whether the
// producer had one.  Exhaustion is latched so a spent producer is never
// pulled again.
func (b *lazyBuffer[T]) getNext(ctx context.Context) bool {
	if b.done {
		return false
	}
	if !b.p.Next(ctx) {
		b.done = true
		return false
	}
	b.buf = append(b.buf, b.p.Get())
	return true
}

// prefill extends the buffer to at least n elements if the producer has
// that many.
func (b *lazyBuffer[T]) prefill(ctx context.Context, n int) {
	for len(b.buf) < n && b.getNext(ctx) {
	}
}

// isDone reports whether the underlying producer is known exhausted.
func (b *lazyBuffer[T]) isDone() bool {
	return b.done
}

func (b *lazyBuffer[T]) at(i int) T {
	return b.buf[i]
}

// getAt copies out the buffered elements at the given indices.
func (b *lazyBuffer[T]) getAt(indices []int) []T {
	out := make([]T, len(indices))
	for j, i := range indices {
		out[j] = b.buf[i]
	}
	return out
}

func (b *lazyBuffer[T]) err() error {
	return b.p.Error()
}

func (b *lazyBuffer[T]) hint() SizeHint {
	if b.done {
		return ExactHint(uint(len(b.buf)))
	}
	return AddScalar(HintOf(b.p), uint(len(b.buf)))
}
