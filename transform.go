package pull

import "context"

// Thin pass-through adaptors.  These carry no interesting state of
// their own; they exist so pipelines (and the feedback/cycle adaptors)
// can be composed without leaving the package.

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
type FilterFunc[T any] func(T) bool

// Mapped applies m to each element of its inner producer.
type Mapped[T, M any] struct {
	inner Producer[T]
	m     MapFunc[T, M]
	cur   M
}

// Map returns a producer yielding m(e) for each element e of p.
func Map[T, M any](p Producer[T], m MapFunc[T, M]) *Mapped[T, M] {
	return &Mapped[T, M]{inner: p, m: m}
}

func (a *Mapped[T, M]) Next(ctx context.Context) bool {
	if !a.inner.Next(ctx) {
		return false
	}
	a.cur = a.m(a.inner.Get())
	return true
}

func (a *Mapped[T, M]) Get() M {
	return a.cur
}

func (a *Mapped[T, M]) Error() error {
	return a.inner.Error()
}

func (a *Mapped[T, M]) Hint() SizeHint {
	return HintOf(a.inner)
}

// Filtered yields only the elements of its inner producer that satisfy
// the predicate.
type Filtered[T any] struct {
	inner Producer[T]
	f     FilterFunc[T]
	cur   T
}

// Filter returns a producer yielding the elements of p for which f is
// true.
func Filter[T any](p Producer[T], f FilterFunc[T]) *Filtered[T] {
	return &Filtered[T]{inner: p, f: f}
}

func (a *Filtered[T]) Next(ctx context.Context) bool {
	for a.inner.Next(ctx) {
		if item := a.inner.Get(); a.f(item) {
			a.cur = item
			return true
		}
	}
	return false
}

func (a *Filtered[T]) Get() T {
	return a.cur
}

func (a *Filtered[T]) Error() error {
	return a.inner.Error()
}

func (a *Filtered[T]) Hint() SizeHint {
	h := HintOf(a.inner)
	// the predicate may drop anything
	h.Lower = 0
	return h
}

// Pair groups one element from each side of a two-producer adaptor.
type Pair[A, B any] struct {
	A A
	B B
}

// Zipped pairs elements from two producers and ends when either does.
// The left side is pulled first on each advance.
type Zipped[A, B any] struct {
	left  Producer[A]
	right Producer[B]
	cur   Pair[A, B]
}

// Zip returns a producer of pairs drawn from left and right in step.
func Zip[A, B any](left Producer[A], right Producer[B]) *Zipped[A, B] {
	return &Zipped[A, B]{left: left, right: right}
}

func (z *Zipped[A, B]) Next(ctx context.Context) bool {
	if !z.left.Next(ctx) {
		return false
	}
	if !z.right.Next(ctx) {
		return false
	}
	z.cur = Pair[A, B]{A: z.left.Get(), B: z.right.Get()}
	return true
}

func (z *Zipped[A, B]) Get() Pair[A, B] {
	return z.cur
}

func (z *Zipped[A, B]) Error() error {
	if err := z.left.Error(); err != nil {
		return err
	}
	return z.right.Error()
}

func (z *Zipped[A, B]) Hint() SizeHint {
	return MinHint(HintOf(z.left), HintOf(z.right))
}
