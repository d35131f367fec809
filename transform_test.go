package pull

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert := assert.New(t)

	got := drain[string](t, Map(fromSlice([]string{"a", "b"}), strings.ToUpper))
	assert.EqualValues([]string{"A", "B"}, got)
}

func TestMapChangesType(t *testing.T) {
	assert := assert.New(t)

	got := drain[int](t, Map(fromSlice([]string{"a", "bb", "ccc"}), func(s string) int {
		return len(s)
	}))
	assert.EqualValues([]int{1, 2, 3}, got)
}

func TestMapHint(t *testing.T) {
	assert := assert.New(t)

	m := Map(fromSlice([]int{1, 2, 3}), func(i int) int { return i })
	assert.Equal(ExactHint(3), m.Hint())
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)

	got := drain[int](t, Filter(fromSlice([]int{1, 2, 3, 4, 5, 6}), func(i int) bool {
		return i%2 == 0
	}))
	assert.EqualValues([]int{2, 4, 6}, got)
}

func TestFilterDropsAll(t *testing.T) {
	assert := assert.New(t)

	got := drain[int](t, Filter(fromSlice([]int{1, 3, 5}), func(i int) bool {
		return i%2 == 0
	}))
	assert.Empty(got)
}

func TestFilterHint(t *testing.T) {
	assert := assert.New(t)

	f := Filter(fromSlice([]int{1, 2, 3}), func(int) bool { return true })
	h := f.Hint()
	assert.Zero(h.Lower)
	assert.True(h.UpperKnown)
	assert.Equal(uint(3), h.Upper)
}

func TestZip(t *testing.T) {
	assert := assert.New(t)

	got := drain[Pair[int, string]](t, Zip(fromSlice([]int{1, 2, 3}), fromSlice([]string{"a", "b", "c"})))
	assert.EqualValues([]Pair[int, string]{
		{A: 1, B: "a"}, {A: 2, B: "b"}, {A: 3, B: "c"},
	}, got)
}

func TestZipUneven(t *testing.T) {
	assert := assert.New(t)

	// ends with the shorter side
	got := drain[Pair[int, string]](t, Zip(fromSlice([]int{1, 2, 3}), fromSlice([]string{"a"})))
	assert.EqualValues([]Pair[int, string]{{A: 1, B: "a"}}, got)

	got = drain[Pair[int, string]](t, Zip(fromSlice([]int{1}), fromSlice([]string{"a", "b", "c"})))
	assert.EqualValues([]Pair[int, string]{{A: 1, B: "a"}}, got)
}

func TestZipHint(t *testing.T) {
	assert := assert.New(t)

	z := Zip(fromSlice([]int{1, 2, 3}), fromSlice([]string{"a", "b"}))
	assert.Equal(ExactHint(2), z.Hint())
}
