package pull

import "context"

// Feedback feeds the output of a producer pipeline back to its input
// with a one-step delay: the first input is the initial value, the
// output of that pass becomes the input of the second pass, and so on.
//
// The feedback value lives in a single-slot cell scoped to this
// adaptor.  The inner pipeline may read the cell any number of times
// while producing one output; every read within a cycle sees the same
// value, and only the cell state at the end of the cycle carries over.
// Feedback terminates when the inner pipeline does.
type Feedback[T any] struct {
	inner Producer[T]
	cell  *feedbackCell[T]
	cur   T
}

type feedbackCell[T any] struct {
	val T
	ok  bool
}

// feedbackTap is the producer handed to the pipeline builder; every
// pull re-reads the current cell value.
type feedbackTap[T any] struct {
	cell *feedbackCell[T]
}

func (t *feedbackTap[T]) Next(ctx context.Context) bool {
	return t.cell.ok
}

func (t *feedbackTap[T]) Get() T {
	return t.cell.val
}

func (t *feedbackTap[T]) Error() error {
	return nil
}

// NewFeedback returns a feedback pipeline seeded with initial.  The
// build function receives the producer that reads the feedback cell and
// must return the pipeline to loop the output of.
//
// Example:
//
//	input := slice producer over [1, -2, 3, -4, 5]
//	fb := pull.NewFeedback(0, func(f pull.Producer[int]) pull.Producer[int] {
//	    return pull.Map(pull.Zip(f, input), func(p pull.Pair[int, int]) int {
//	        return p.A + p.B
//	    })
//	})
//	// fb yields 0, 1, -1, 2, -2, 3
func NewFeedback[T any](initial T, build func(Producer[T]) Producer[T]) *Feedback[T] {
	cell := &feedbackCell[T]{val: initial, ok: true}
	return &Feedback[T]{
		inner: build(&feedbackTap[T]{cell: cell}),
		cell:  cell,
	}
}

// Next yields the cell's current value, then runs the inner pipeline
// for one output and stores it for the next pull.
func (f *Feedback[T]) Next(ctx context.Context) bool {
	if !f.cell.ok {
		return false
	}
	f.cur = f.cell.val

	if f.inner.Next(ctx) {
		f.cell.val = f.inner.Get()
	} else {
		f.cell.ok = false
	}
	return true
}

func (f *Feedback[T]) Get() T {
	return f.cur
}

func (f *Feedback[T]) Error() error {
	return f.inner.Error()
}
