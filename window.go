package pull

import "context"

// SlidingWindow yields overlapping views of the last `size` elements of
// its inner producer.  The first pull fills the window; if the inner
// producer has fewer than `size` elements the window never yields.
// Later pulls evict the oldest element and push the next one.
//
// Get hands out a read/write *Window view over the adaptor's buffer.
// Exactly one view may be outstanding at a time: requesting another
// view, or advancing the window, before Release() is called on the
// previous one is a programmer error and panics.
type SlidingWindow[T any] struct {
	inner    Producer[T]
	size     int
	buf      []T
	borrowed bool
	done     bool
}

// NewSlidingWindow returns a sliding window of `size` elements over p.
// size must be positive; NewSlidingWindow panics otherwise.
func NewSlidingWindow[T any](p Producer[T], size int) *SlidingWindow[T] {
	if size <= 0 {
		panic("pull.NewSlidingWindow: window size must be positive")
	}
	return &SlidingWindow[T]{
		inner: p,
		size:  size,
		buf:   make([]T, 0, size),
	}
}

// Next slides the window forward by one element (or fills it on the
// first call).  It panics if a view from Get has not been released.
func (w *SlidingWindow[T]) Next(ctx context.Context) bool {
	if w.borrowed {
		panic("pull.SlidingWindow: Next called before the previous Window was released")
	}
	if w.done {
		return false
	}

	if len(w.buf) < w.size {
		// first call: prime the whole buffer
		for len(w.buf) < w.size {
			if !w.inner.Next(ctx) {
				w.done = true
				return false
			}
			w.buf = append(w.buf, w.inner.Get())
		}
		return true
	}

	// slide: evict the oldest, push the next
	if !w.inner.Next(ctx) {
		w.done = true
		return false
	}
	copy(w.buf, w.buf[1:])
	w.buf[w.size-1] = w.inner.Get()
	return true
}

// Get returns a view over the current window contents.  The view is
// mutable; writes are visible to later windows for the positions that
// remain.  The view must be released before the window is advanced.
func (w *SlidingWindow[T]) Get() *Window[T] {
	if w.borrowed {
		panic("pull.SlidingWindow: Get called before the previous Window was released")
	}
	w.borrowed = true
	return &Window[T]{w: w}
}

// Error returns the inner producer's error, if any.
func (w *SlidingWindow[T]) Error() error {
	return w.inner.Error()
}

// Hint: a window is yielded for every inner element once the buffer is
// primed, so the estimate is the inner estimate less the fill debt.
func (w *SlidingWindow[T]) Hint() SizeHint {
	if w.done {
		return ExactHint(0)
	}
	h := HintOf(w.inner)
	fill := uint(w.size - len(w.buf))
	if fill > 0 {
		h = SubScalar(h, fill-1)
	}
	return h
}

// Window is a read/write view over a SlidingWindow's current contents.
type Window[T any] struct {
	w *SlidingWindow[T]
}

// Len returns the number of elements in the window.
func (v *Window[T]) Len() int {
	return len(v.w.buf)
}

// At returns the i'th element of the window, oldest first.
func (v *Window[T]) At(i int) T {
	return v.w.buf[i]
}

// Set overwrites the i'th element of the window.
func (v *Window[T]) Set(i int, val T) {
	v.w.buf[i] = val
}

// Slice copies the window contents into a new slice.
func (v *Window[T]) Slice() []T {
	out := make([]T, len(v.w.buf))
	copy(out, v.w.buf)
	return out
}

// Release returns the view to the window so that it can be advanced.
func (v *Window[T]) Release() {
	v.w.borrowed = false
}
