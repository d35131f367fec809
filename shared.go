package pull

import (
	"context"
	"sync/atomic"
)

// Shared is a reference-counted handle to a producer, for the fan-out
// cases where two parts of a pipeline must draw from one sequence.
// Handles created by Clone draw from the same underlying producer:
// elements are dealt out across handles, not duplicated.
//
// Evaluation stays single-threaded: a pull through one handle while
// another pull is in flight is undefined interleaving, so it is refused
// with a panic rather than documented away.
type Shared[T any] struct {
	st *sharedState[T]
}

type sharedState[T any] struct {
	p       Producer[T]
	pulling atomic.Bool
	cur     T
}

// Share wraps p in a shareable handle.  The inner producer is owned by
// the handle set from here on.
func Share[T any](p Producer[T]) *Shared[T] {
	return &Shared[T]{st: &sharedState[T]{p: p}}
}

// Clone returns another handle over the same underlying producer.
func (s *Shared[T]) Clone() *Shared[T] {
	return &Shared[T]{st: s.st}
}

func (s *Shared[T]) Next(ctx context.Context) bool {
	if !s.st.pulling.CompareAndSwap(false, true) {
		panic("pull.Shared: concurrent pull through shared handles")
	}
	defer s.st.pulling.Store(false)

	if !s.st.p.Next(ctx) {
		return false
	}
	s.st.cur = s.st.p.Get()
	return true
}

// Get returns the element most recently pulled through any handle.
func (s *Shared[T]) Get() T {
	return s.st.cur
}

func (s *Shared[T]) Error() error {
	return s.st.p.Error()
}

// Hint: other handles may drain elements between this handle's pulls,
// so only the upper bound survives.
func (s *Shared[T]) Hint() SizeHint {
	h := HintOf(s.st.p)
	h.Lower = 0
	return h
}
