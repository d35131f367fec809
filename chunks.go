package pull

import "context"

// Chunks groups the elements of its inner producer into slices of
// exactly n elements.  A group is only yielded when all n elements were
// obtained; when the inner producer runs out mid-group the partial
// elements are retained and can be recovered with Remainder().
//
// Chunks is fused: after the first short group it keeps returning false.
type Chunks[T any] struct {
	inner   Producer[T]
	n       int
	cur     []T
	partial []T
	done    bool
}

// NewChunks returns a producer of n-element groups read from p.
//
// n must be positive; NewChunks panics otherwise, since a zero-sized
// group could never make progress.
func NewChunks[T any](p Producer[T], n int) *Chunks[T] {
	if n <= 0 {
		panic("pull.NewChunks: group size must be positive")
	}
	return &Chunks[T]{inner: p, n: n}
}

// Next pulls up to n elements from the inner producer.  It returns true
// only when a full group was collected.
func (c *Chunks[T]) Next(ctx context.Context) bool {
	if c.done {
		return false
	}

	group := make([]T, 0, c.n)
	for len(group) < c.n && c.inner.Next(ctx) {
		group = append(group, c.inner.Get())
	}

	if len(group) < c.n {
		// exhausted mid-group: keep the stragglers for Remainder()
		c.partial = group
		c.done = true
		return false
	}

	c.cur = group
	return true
}

// Get returns the most recent full group.
func (c *Chunks[T]) Get() []T {
	return c.cur
}

// Error returns the inner producer's error, if any.
func (c *Chunks[T]) Error() error {
	return c.inner.Error()
}

// Hint divides the inner producer's estimate by the group size.
func (c *Chunks[T]) Hint() SizeHint {
	if c.done {
		return ExactHint(0)
	}
	return DivScalar(HintOf(c.inner), uint(c.n))
}

// Remainder returns a producer that yields the elements that did not
// form a complete group, in arrival order, followed by anything still
// left in the inner producer.  If Chunks has been pulled to exhaustion
// the inner producer is normally already empty, so the remainder is
// exactly the trailing partial group.
func (c *Chunks[T]) Remainder() Producer[T] {
	return &remainder[T]{head: c.partial, tail: c.inner}
}

type remainder[T any] struct {
	head []T
	pos  int
	cur  T
	tail Producer[T]
}

func (r *remainder[T]) Next(ctx context.Context) bool {
	if r.pos < len(r.head) {
		r.cur = r.head[r.pos]
		r.pos++
		return true
	}
	if r.tail.Next(ctx) {
		r.cur = r.tail.Get()
		return true
	}
	return false
}

func (r *remainder[T]) Get() T {
	return r.cur
}

func (r *remainder[T]) Error() error {
	return r.tail.Error()
}

func (r *remainder[T]) Hint() SizeHint {
	return AddScalar(HintOf(r.tail), uint(len(r.head)-r.pos))
}
