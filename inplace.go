package pull

import (
	"context"
	"errors"
)

// Slice plumbing with typed capacity/range failures, so callers can
// tell an infinite-loop risk apart from a plain bounds violation.

// ErrEndOfSlice is returned by CopyInto when the destination slice is
// exceeded.
var ErrEndOfSlice = errors.New("pull: end of destination slice reached")

// ErrZeroForward is returned by CombineInPlace when an action requests
// no forward progress, which would loop forever.
var ErrZeroForward = errors.New("pull: combine action made no forward progress")

// ErrOutOfRange is returned by CombineInPlace when an action consumes
// more elements than remain.
var ErrOutOfRange = errors.New("pull: combine action out of range")

// CopyInto copies all of p's elements into dst, returning the number of
// elements placed.  It returns ErrEndOfSlice if p yields more elements
// than dst can hold; elements copied before the overflow are kept.
func CopyInto[T any](ctx context.Context, p Producer[T], dst []T) (int, error) {
	n := 0
	for p.Next(ctx) {
		if n == len(dst) {
			return n, ErrEndOfSlice
		}
		dst[n] = p.Get()
		n++
	}
	return n, p.Error()
}

// Combine is one step of a CombineInPlace pass: either keep the next N
// elements as they are, or replace the next N elements with Insert.
// N must be at least 1 in both cases.
type Combine[T any] struct {
	N       int
	Insert  T
	replace bool
}

// Keep passes the next n elements through unchanged.
func Keep[T any](n int) Combine[T] {
	return Combine[T]{N: n}
}

// Replace drops the next n elements and emits v in their place.
func Replace[T any](v T, n int) Combine[T] {
	return Combine[T]{N: n, Insert: v, replace: true}
}

// CombineInPlace merges elements of s after custom rules, without
// reallocating: the function receives the slice from the current
// position to the end and decides how many elements to keep or to
// collapse into a replacement.  The shortened slice is returned.
//
// No element is moved twice.  A step with N == 0 fails with
// ErrZeroForward; a step reaching past the end fails with ErrOutOfRange.
func CombineInPlace[T any](s []T, f func([]T) Combine[T]) ([]T, error) {
	r, w := 0, 0
	for r < len(s) {
		act := f(s[r:])
		if act.N <= 0 {
			return nil, ErrZeroForward
		}
		if r+act.N > len(s) {
			return nil, ErrOutOfRange
		}

		if act.replace {
			s[w] = act.Insert
			w++
		} else {
			// w never passes r, so the copy cannot clobber unread input
			for k := r; k < r+act.N; k++ {
				s[w] = s[k]
				w++
			}
		}
		r += act.N
	}
	return s[:w], nil
}
