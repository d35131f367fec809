package pull

import (
	"cmp"
	"context"
	"slices"
)

// UniqueCombinations yields the k-element combinations of its input
// with equal-valued elements treated as indistinguishable: no two
// results are equal as multisets.  The input is snapshotted and sorted
// on the first pull, and the successor step skips over runs of equal
// values instead of enumerating duplicate-valued subsets.
type UniqueCombinations[T cmp.Ordered] struct {
	src     Producer[T]
	indices []int
	pool    []T
	loaded  bool
	first   bool
	done    bool
	cur     []T
}

// NewUniqueCombinations returns a generator of the value-distinct
// k-element combinations of p's output.  k must not be negative;
// NewUniqueCombinations panics otherwise.
func NewUniqueCombinations[T cmp.Ordered](p Producer[T], k int) *UniqueCombinations[T] {
	if k < 0 {
		panic("pull.NewUniqueCombinations: k must not be negative")
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	return &UniqueCombinations[T]{
		src:     p,
		indices: indices,
		first:   true,
	}
}

func (u *UniqueCombinations[T]) load(ctx context.Context) {
	if u.loaded {
		return
	}
	for u.src.Next(ctx) {
		u.pool = append(u.pool, u.src.Get())
	}
	slices.Sort(u.pool)
	u.loaded = true
}

func (u *UniqueCombinations[T]) generate() bool {
	out := make([]T, len(u.indices))
	for j, i := range u.indices {
		out[j] = u.pool[i]
	}
	u.cur = out
	return true
}

func (u *UniqueCombinations[T]) Next(ctx context.Context) bool {
	u.load(ctx)
	k := len(u.indices)

	if u.first {
		if k == 0 {
			// one empty combination, even for empty input
			if u.done {
				return false
			}
			u.done = true
			u.cur = []T{}
			return true
		}
		if k > len(u.pool) {
			return false
		}
		u.first = false
		return u.generate()
	}

	orgLen := len(u.pool)
	if u.pool[u.indices[k-1]] == u.pool[orgLen-1] {
		// the back position sits on the maximal value: locate the
		// closest position behind it that can still be bumped
		for i := 2; i <= k; i++ {
			if u.pool[u.indices[k-i]] < u.pool[orgLen-i] {
				lastPos := u.indices[k-i]
				val := u.pool[lastPos]
				for j := lastPos + 1; j < orgLen; j++ {
					if val < u.pool[j] {
						for n := 0; n < i; n++ {
							u.indices[k-i+n] = j + n
						}
						return u.generate()
					}
				}
			}
		}
		return false
	}

	// bump the back position past the current plateau of equal values
	i := u.indices[k-1]
	cur := u.pool[i]
	next := cur
	for cur == next {
		i++
		next = u.pool[i]
	}
	u.indices[k-1] = i
	return u.generate()
}

// Get returns the most recent combination.
func (u *UniqueCombinations[T]) Get() []T {
	return u.cur
}

// Error returns the input producer's error, if any.
func (u *UniqueCombinations[T]) Error() error {
	return u.src.Error()
}
