package pull

import "context"

// CombinationsUpTo yields every combination of its input of length k,
// then k-1, and so on down to the single empty combination.  Because a
// fresh pass over the input is needed for each length, it consumes a
// Source rather than a Producer.
type CombinationsUpTo[T any] struct {
	end bool
	k   int
	src Source[T]
	cur *Combinations[T]
}

// NewCombinationsUpTo returns a generator of all combinations of src's
// output with length at most k.  k must not be negative;
// NewCombinationsUpTo panics otherwise.
func NewCombinationsUpTo[T any](src Source[T], k int) *CombinationsUpTo[T] {
	return &CombinationsUpTo[T]{
		k:   k,
		src: src,
		cur: NewCombinations(src(), k),
	}
}

func (c *CombinationsUpTo[T]) Next(ctx context.Context) bool {
	if c.end {
		return false
	}
	for {
		if c.cur.Next(ctx) {
			if len(c.cur.Get()) == 0 {
				// the empty combination is the final result
				c.end = true
			}
			return true
		}
		if c.k == 0 {
			c.end = true
			return false
		}

		// current length exhausted: re-derive over a fresh pass.  A pass
		// longer than the input is empty and is skipped the same way.
		c.k--
		c.cur = NewCombinations(c.src(), c.k)
	}
}

// Get returns the most recent combination.
func (c *CombinationsUpTo[T]) Get() []T {
	return c.cur.Get()
}

// Error returns the current pass's producer error, if any.
func (c *CombinationsUpTo[T]) Error() error {
	return c.cur.Error()
}
