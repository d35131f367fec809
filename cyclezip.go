package pull

import (
	"context"
	"errors"
)

// ErrEmptyCycle is returned by NewCycleZip when the cyclic source has
// no elements: it could never produce a first pairing.
var ErrEmptyCycle = errors.New("pull: cycle source is empty")

// CycleZip zips a primary producer against a cyclic one, restarting the
// cyclic side from its source whenever it runs out.  The adaptor is
// biased towards the primary producer: it ends exactly when the primary
// ends, regardless of how far through (or how many times around) the
// cycle it is.
type CycleZip[A, B any] struct {
	primary Producer[A]
	cycle   Source[B]
	c       Producer[B]
	pending B
	hasPend bool
	cur     Pair[A, B]
	err     error
}

// NewCycleZip returns the biased cycle-zip of primary and cycle.  The
// cyclic source is probed at construction; NewCycleZip returns
// ErrEmptyCycle if it is empty.
func NewCycleZip[A, B any](primary Producer[A], cycle Source[B]) (*CycleZip[A, B], error) {
	c := cycle()
	if !c.Next(context.Background()) {
		if err := c.Error(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyCycle
	}
	return &CycleZip[A, B]{
		primary: primary,
		cycle:   cycle,
		c:       c,
		pending: c.Get(),
		hasPend: true,
	}, nil
}

func (z *CycleZip[A, B]) Next(ctx context.Context) bool {
	if z.err != nil {
		return false
	}
	if !z.primary.Next(ctx) {
		return false
	}
	a := z.primary.Get()

	var b B
	switch {
	case z.hasPend:
		b, z.hasPend = z.pending, false
	case z.c.Next(ctx):
		b = z.c.Get()
	default:
		if err := z.c.Error(); err != nil {
			z.err = err
			return false
		}
		// cycle exhausted: restart from the source.  The source was
		// non-empty at construction, so a dry restart is a fault.
		z.c = z.cycle()
		if !z.c.Next(ctx) {
			z.err = z.c.Error()
			if z.err == nil {
				z.err = ErrEmptyCycle
			}
			return false
		}
		b = z.c.Get()
	}

	z.cur = Pair[A, B]{A: a, B: b}
	return true
}

func (z *CycleZip[A, B]) Get() Pair[A, B] {
	return z.cur
}

func (z *CycleZip[A, B]) Error() error {
	if z.err != nil {
		return z.err
	}
	return z.primary.Error()
}

// Hint: the overall length is the primary's.
func (z *CycleZip[A, B]) Hint() SizeHint {
	return HintOf(z.primary)
}
