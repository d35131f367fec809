/*
Package pull provides composable, lazy sequence producers for Golang.

A Producer yields elements one at a time when pulled.  Adaptors wrap one
or more producers and are themselves producers, so data-processing
pipelines (chunking, combinatorial generation, merging, deduplicating,
feedback loops) are built by plain composition.  Evaluation is
single-threaded and caller-driven: an adaptor only advances its inner
producer(s) when it is itself pulled.
*/
package pull

import (
	"context"
)

// Producer is a generic interface for one-directional traversal through
// a collection or stream of items.
type Producer[T any] interface {
	// Next traverses the producer to the next element.
	// Returns true if the producer advanced, or false if there are no more
	// elements or if an error occured (see Error() below).
	//
	// Producers in this package are fused: once Next has returned false
	// due to exhaustion, every later call also returns false.
	Next(ctx context.Context) bool

	// Get returns the current value referred to by the producer
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Exact is an interface that can be implemented by a producer that
// knows the exact number of remaining elements.
type Exact interface {
	Size() uint
}

// Hinter is an interface that can be implemented by a producer that can
// estimate the number of remaining elements.
type Hinter interface {
	Hint() SizeHint
}

// Bidi is implemented by producers that can also be pulled from the back.
// Front and back cursors share the remaining elements; an element taken
// from one end is never yielded again from the other.
type Bidi[T any] interface {
	Producer[T]

	// NextBack traverses to the previous element from the back of the
	// remaining sequence, returning false when the cursors meet.
	NextBack(ctx context.Context) bool

	// GetBack returns the value taken by the last successful NextBack.
	GetBack() T
}

// Source is a factory for producers over the same underlying sequence.
// Adaptors that need to traverse their input more than once (for example
// CombinationsUpTo, ProductCombination and CycleZip) accept a Source
// instead of a Producer.  Every call must return a fresh producer
// positioned at the start.
type Source[T any] func() Producer[T]

// SizeHint estimates the number of elements a producer has left.
// Lower must never exceed the true remaining count; Upper, when
// UpperKnown is set, must never be less than it.
type SizeHint struct {
	Lower      uint
	Upper      uint
	UpperKnown bool
}

// ExactHint returns a hint for a producer with exactly n elements left.
func ExactHint(n uint) SizeHint {
	return SizeHint{Lower: n, Upper: n, UpperKnown: true}
}

// UnknownHint returns the hint of a producer whose length is unknown.
func UnknownHint() SizeHint {
	return SizeHint{}
}

// HintOf returns p's size estimate.  Producers that implement Exact get
// an exact hint, those that implement Hinter are asked, and anything
// else estimates (0, unknown).
func HintOf[T any](p Producer[T]) SizeHint {
	switch h := p.(type) {
	case Hinter:
		return h.Hint()
	case Exact:
		return ExactHint(h.Size())
	default:
		return UnknownHint()
	}
}
