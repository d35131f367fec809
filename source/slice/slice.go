// Package slice implements a producer that traverses over a generic
// slice of elements.
//
// The producer is bidirectional and knows its exact remaining size.
package slice

import (
	"context"

	"github.com/go-pull/pull"
)

// Iterator traverses over a slice of elements of type T, from the
// front, the back, or both.  Front and back cursors share the slice:
// an element taken from one end is never yielded from the other, and
// both ends signal exhaustion when the cursors meet.
type Iterator[T any] struct {
	s     []T
	front int
	back  int
	err   error
}

// New returns a producer that traverses over the provided slice.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s:    s,
		back: len(s),
	}
}

// Size returns the number of remaining elements, implementing the
// exact-size capability.
func (r *Iterator[T]) Size() uint {
	return uint(r.back - r.front)
}

// Hint returns exact bounds, implementing the size-hint capability.
func (r *Iterator[T]) Hint() pull.SizeHint {
	return pull.ExactHint(r.Size())
}

// Next advances the front cursor.  It returns false when the cursors
// have met or the context is cancelled.
func (r *Iterator[T]) Next(ctx context.Context) bool {
	if r.front >= r.back {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.front++
	return true
}

// Get returns the element the front cursor refers to.
func (r *Iterator[T]) Get() T {
	if r.front == 0 {
		var ret T
		return ret
	}
	return r.s[r.front-1]
}

// NextBack advances the back cursor towards the front.  It returns
// false when the cursors have met or the context is cancelled.
func (r *Iterator[T]) NextBack(ctx context.Context) bool {
	if r.front >= r.back {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.back--
	return true
}

// GetBack returns the element the back cursor refers to.
func (r *Iterator[T]) GetBack() T {
	if r.back == len(r.s) {
		var ret T
		return ret
	}
	return r.s[r.back]
}

// Error returns the context's error if the context is cancelled during
// a call to Next() or NextBack().
func (r *Iterator[T]) Error() error {
	return r.err
}

// Source returns a factory producing fresh traversals of s, for
// adaptors that need to walk the same slice more than once.
func Source[T any](s []T) pull.Source[T] {
	return func() pull.Producer[T] {
		it := New(s)
		return &it
	}
}
