package pull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleZip(t *testing.T) {
	assert := assert.New(t)

	z, err := NewCycleZip(fromSlice([]int{1, 2, 3, 4, 5, 6, 7}), sliceSource([]string{"a", "b", "c"}))
	require.NoError(t, err)

	got := drain[Pair[int, string]](t, z)
	want := []Pair[int, string]{
		{A: 1, B: "a"}, {A: 2, B: "b"}, {A: 3, B: "c"},
		{A: 4, B: "a"}, {A: 5, B: "b"}, {A: 6, B: "c"},
		{A: 7, B: "a"},
	}
	assert.EqualValues(want, got)
}

// The primary side decides the length, even mid-cycle.
func TestCycleZipPrimaryShorter(t *testing.T) {
	assert := assert.New(t)

	z, err := NewCycleZip(fromSlice([]int{1, 2}), sliceSource([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)

	got := drain[Pair[int, string]](t, z)
	assert.EqualValues([]Pair[int, string]{{A: 1, B: "a"}, {A: 2, B: "b"}}, got)
}

func TestCycleZipEmptyPrimary(t *testing.T) {
	assert := assert.New(t)

	z, err := NewCycleZip(fromSlice([]int{}), sliceSource([]string{"a"}))
	require.NoError(t, err)

	got := drain[Pair[int, string]](t, z)
	assert.Empty(got)
}

func TestCycleZipEmptyCycle(t *testing.T) {
	assert := assert.New(t)

	_, err := NewCycleZip(fromSlice([]int{1}), sliceSource([]string{}))
	assert.ErrorIs(err, ErrEmptyCycle)
}

func TestCycleZipSingleElementCycle(t *testing.T) {
	assert := assert.New(t)

	z, err := NewCycleZip(fromSlice([]int{1, 2, 3}), sliceSource([]string{"x"}))
	require.NoError(t, err)

	got := drain[Pair[int, string]](t, z)
	assert.EqualValues([]Pair[int, string]{
		{A: 1, B: "x"}, {A: 2, B: "x"}, {A: 3, B: "x"},
	}, got)
}

func TestCycleZipHint(t *testing.T) {
	assert := assert.New(t)

	z, err := NewCycleZip(fromSlice([]int{1, 2, 3}), sliceSource([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(ExactHint(3), z.Hint())
}
