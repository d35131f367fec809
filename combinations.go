package pull

import "context"

// Combinations yields every k-element combination of its input, in
// lexicographic order of the element positions.  Within each result the
// input's relative order is preserved.  Input elements are buffered
// incrementally as needed, so the producer must be finite for the
// generator to terminate.
//
// k == 0 yields exactly one empty combination; k greater than the input
// length yields nothing.
type Combinations[T any] struct {
	k       int
	indices []int
	pool    *lazyBuffer[T]
	first   bool
	cur     []T
}

// NewCombinations returns a generator of the k-element combinations of
// p's output.  k must not be negative; NewCombinations panics otherwise.
func NewCombinations[T any](p Producer[T], k int) *Combinations[T] {
	if k < 0 {
		panic("pull.NewCombinations: k must not be negative")
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	return &Combinations[T]{
		k:       k,
		indices: indices,
		pool:    newLazyBuffer(p),
		first:   true,
	}
}

// advance steps the index vector to the lexicographically next k-subset
// of {0..poolLen-1}.  The caller has already checked that one exists.
func (c *Combinations[T]) advance(poolLen int) {
	// scan from the end for an index not at its maximum position
	i := c.k - 1
	for c.indices[i]+c.k == i+poolLen {
		i--
	}

	// increment it and reset the ones to its right
	c.indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
}

func (c *Combinations[T]) Next(ctx context.Context) bool {
	c.pool.prefill(ctx, c.k)
	poolLen := c.pool.len()

	if c.first {
		if c.pool.isDone() && poolLen < c.k {
			return false
		}
		c.first = false
	} else {
		if c.k == 0 {
			return false
		}

		// try to deepen the pool before declaring the last index maxed
		if c.indices[c.k-1] == poolLen-1 && c.pool.getNext(ctx) {
			poolLen++
		}

		if c.indices[0] == poolLen-c.k {
			return false
		}
		c.advance(poolLen)
	}

	c.cur = c.pool.getAt(c.indices)
	return true
}

// Get returns the most recent combination.  The slice is freshly
// allocated on each pull.
func (c *Combinations[T]) Get() []T {
	return c.cur
}

// Error returns the input producer's error, if any.
func (c *Combinations[T]) Error() error {
	return c.pool.err()
}
