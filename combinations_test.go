package pull

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	out := 1
	for i := 0; i < k; i++ {
		out = out * (n - i) / (i + 1)
	}
	return out
}

func TestCombinations(t *testing.T) {
	input := []int{10, 20, 30, 40, 50}

	for k := 0; k <= len(input)+1; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			assert := assert.New(t)

			got := drain[[]int](t, NewCombinations(fromSlice(input), k))
			assert.Len(got, binomial(len(input), k))

			seen := map[string]bool{}
			for _, combo := range got {
				assert.Len(combo, k)

				// elements keep the input's relative order
				for i := 1; i < len(combo); i++ {
					assert.Less(combo[i-1], combo[i])
				}

				key := fmt.Sprint(combo)
				assert.False(seen[key], "duplicate combination %s", key)
				seen[key] = true
			}
		})
	}
}

func TestCombinationsOrder(t *testing.T) {
	assert := assert.New(t)

	got := drain[[]int](t, NewCombinations(fromSlice([]int{1, 2, 3, 4}), 2))
	want := [][]int{
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	assert.EqualValues(want, got)
}

func TestCombinationsEdges(t *testing.T) {
	assert := assert.New(t)

	// k == 0 yields exactly one empty combination
	got := drain[[]int](t, NewCombinations(fromSlice([]int{1, 2}), 0))
	assert.EqualValues([][]int{{}}, got)

	// k == 0 over empty input still yields the empty combination
	got = drain[[]int](t, NewCombinations(fromSlice([]int{}), 0))
	assert.EqualValues([][]int{{}}, got)

	// k > n yields nothing
	got = drain[[]int](t, NewCombinations(fromSlice([]int{1, 2}), 3))
	assert.Empty(got)

	assert.Panics(func() { NewCombinations(fromSlice([]int{1}), -1) })
}

func TestCombinationsFused(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	c := NewCombinations(fromSlice([]int{1, 2}), 2)
	assert.True(c.Next(ctx))
	assert.False(c.Next(ctx))
	assert.False(c.Next(ctx))
}

func TestCombinationsUpTo(t *testing.T) {
	assert := assert.New(t)

	src := sliceSource([]int{1, 2, 3})
	got := drain[[]int](t, NewCombinationsUpTo(src, 3))

	want := [][]int{
		{1, 2, 3},
		{1, 2}, {1, 3}, {2, 3},
		{1}, {2}, {3},
		{},
	}
	assert.EqualValues(want, got)
}

func TestCombinationsUpToLargeK(t *testing.T) {
	assert := assert.New(t)

	// k beyond the input length: the longer passes are simply empty
	src := sliceSource([]int{1, 2})
	got := drain[[]int](t, NewCombinationsUpTo(src, 4))
	assert.EqualValues([][]int{{1, 2}, {1}, {2}, {}}, got)
}

func TestCombinationsUpToZero(t *testing.T) {
	assert := assert.New(t)

	got := drain[[]int](t, NewCombinationsUpTo(sliceSource([]int{7}), 0))
	assert.EqualValues([][]int{{}}, got)
}

func TestUniqueCombinations(t *testing.T) {
	assert := assert.New(t)

	got := drain[[]int](t, NewUniqueCombinations(fromSlice([]int{1, 2, 2, 1, 3}), 2))
	want := [][]int{
		{1, 1}, {1, 2}, {1, 3},
		{2, 2}, {2, 3},
	}
	assert.EqualValues(want, got)
}

// No two results may be equal as multisets, whatever the duplication
// pattern of the input.
func TestUniqueCombinationsDistinct(t *testing.T) {
	inputs := [][]int{
		{1, 1, 1, 1},
		{1, 1, 2, 2, 3},
		{5, 4, 3, 2, 1},
		{2, 2, 2, 1, 1, 3},
	}

	for _, input := range inputs {
		for k := 0; k <= len(input); k++ {
			name := fmt.Sprintf("input=%v k=%d", input, k)
			t.Run(name, func(t *testing.T) {
				assert := assert.New(t)

				got := drain[[]int](t, NewUniqueCombinations(fromSlice(input), k))
				seen := map[string]bool{}
				for _, combo := range got {
					assert.Len(combo, k)
					key := fmt.Sprint(combo) // sorted, so equal multisets collide
					assert.False(seen[key], "duplicate multiset %s", key)
					seen[key] = true
				}
			})
		}
	}
}

func TestUniqueCombinationsEdges(t *testing.T) {
	assert := assert.New(t)

	// empty input, k == 0: one empty result
	got := drain[[]int](t, NewUniqueCombinations(fromSlice([]int{}), 0))
	assert.EqualValues([][]int{{}}, got)

	// k > n: nothing
	got = drain[[]int](t, NewUniqueCombinations(fromSlice([]int{1}), 2))
	assert.Empty(got)

	assert.Panics(func() { NewUniqueCombinations(fromSlice([]int{1}), -1) })
}
