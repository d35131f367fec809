package pull

import "context"

// ProductCombination treats its input of length m as the digit set of a
// mixed-radix counter whose width grows over time, yielding the counter
// state after each increment: first every single element, then every
// ordered pair, and so on.  The producer is infinite as long as the
// digit producers keep working; a digit producer failure ends the
// sequence and is reported through Error.
//
// Quirk, preserved deliberately: because the increment happens before
// the first yield, the counter's initial (empty) state is never
// emitted, unlike the other generators, which all include their
// identity state.  Callers depend on this behaviour.
//
// The source must be non-empty; the first pull panics otherwise, since
// an empty digit set has no counter states at all.
type ProductCombination[T any] struct {
	src   Source[T]
	slots []productSlot[T]
	cur   []T
	err   error
}

type productSlot[T any] struct {
	p    Producer[T]
	item T
}

// NewProductCombination returns the mixed-radix counter producer over
// src's output.
func NewProductCombination[T any](src Source[T]) *ProductCombination[T] {
	return &ProductCombination[T]{src: src}
}

// restart begins a fresh traversal positioned on its first element.  A
// producer failure is latched on the adaptor; the panic is reserved for
// a source that is genuinely empty.
func (pc *ProductCombination[T]) restart(ctx context.Context) (Producer[T], T, bool) {
	p := pc.src()
	if !p.Next(ctx) {
		if err := p.Error(); err != nil {
			pc.err = err
			var zero T
			return nil, zero, false
		}
		panic("pull.ProductCombination: source is empty")
	}
	return p, p.Get(), true
}

// increment advances the counter by one, carrying through exhausted
// digit positions and growing the counter by a digit on overflow.  It
// returns false when a digit producer failed.
func (pc *ProductCombination[T]) increment(ctx context.Context) bool {
	for pointer := 0; ; pointer++ {
		if pointer == len(pc.slots) {
			p, item, ok := pc.restart(ctx)
			if !ok {
				return false
			}
			pc.slots = append(pc.slots, productSlot[T]{p: p, item: item})
			return true
		}

		s := &pc.slots[pointer]
		if s.p.Next(ctx) {
			s.item = s.p.Get()
			return true
		}
		if err := s.p.Error(); err != nil {
			pc.err = err
			return false
		}

		// digit rolled over: restart it and carry into the next one
		p, item, ok := pc.restart(ctx)
		if !ok {
			return false
		}
		s.p, s.item = p, item
	}
}

func (pc *ProductCombination[T]) Next(ctx context.Context) bool {
	if pc.err != nil {
		return false
	}
	if !pc.increment(ctx) {
		return false
	}

	out := make([]T, len(pc.slots))
	for i := range pc.slots {
		out[i] = pc.slots[i].item
	}
	pc.cur = out
	return true
}

// Get returns the most recent counter state.
func (pc *ProductCombination[T]) Get() []T {
	return pc.cur
}

// Error returns the first failure among the digit producers, if any.
func (pc *ProductCombination[T]) Error() error {
	return pc.err
}
