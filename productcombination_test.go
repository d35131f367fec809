package pull

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func takeProduct(t *testing.T, pc *ProductCombination[int], n int) [][]int {
	t.Helper()

	ctx := context.Background()
	out := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		assert.True(t, pc.Next(ctx))
		out = append(out, pc.Get())
	}
	assert.NoError(t, pc.Error())
	return out
}

func TestProductCombination(t *testing.T) {
	assert := assert.New(t)

	pc := NewProductCombination(sliceSource([]int{1, 2, 3}))
	got := takeProduct(t, pc, 13)

	// singles, then pairs with the low-order digit first, then a triple
	want := [][]int{
		{1}, {2}, {3},
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
		{1, 1, 1},
	}
	assert.EqualValues(want, got)
}

// The empty counter state is never yielded: the very first result is
// already one element long.
func TestProductCombinationSkipsEmptyState(t *testing.T) {
	assert := assert.New(t)

	pc := NewProductCombination(sliceSource([]int{9}))
	got := takeProduct(t, pc, 3)
	assert.EqualValues([][]int{{9}, {9, 9}, {9, 9, 9}}, got)
}

func TestProductCombinationEmptySource(t *testing.T) {
	assert := assert.New(t)

	pc := NewProductCombination(sliceSource([]int{}))
	assert.Panics(func() { pc.Next(context.Background()) })
}

// cancellableProducer is a slice traversal that honours context
// cancellation the way the source packages do.
type cancellableProducer[T any] struct {
	s   []T
	pos int
	err error
}

func (p *cancellableProducer[T]) Next(ctx context.Context) bool {
	if p.err != nil || p.pos >= len(p.s) {
		return false
	}
	select {
	case <-ctx.Done():
		p.err = ctx.Err()
		return false
	default:
	}
	p.pos++
	return true
}

func (p *cancellableProducer[T]) Get() T { return p.s[p.pos-1] }

func (p *cancellableProducer[T]) Error() error { return p.err }

// A cancelled context on a perfectly good source is a runtime failure,
// not an empty source: it must surface through Error, never panic.
func TestProductCombinationCancelledContext(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pc := NewProductCombination(func() Producer[int] {
		return &cancellableProducer[int]{s: []int{1, 2, 3}}
	})

	assert.NotPanics(func() {
		assert.False(pc.Next(ctx))
	})
	assert.ErrorIs(pc.Error(), context.Canceled)

	// the failure is latched: later pulls stay down
	assert.False(pc.Next(context.Background()))
	assert.ErrorIs(pc.Error(), context.Canceled)
}

// erroringProducer yields its elements and then fails.
type erroringProducer[T any] struct {
	s      []T
	pos    int
	err    error
	failed bool
}

func (p *erroringProducer[T]) Next(ctx context.Context) bool {
	if p.failed {
		return false
	}
	if p.pos >= len(p.s) {
		p.failed = true
		return false
	}
	p.pos++
	return true
}

func (p *erroringProducer[T]) Get() T { return p.s[p.pos-1] }

func (p *erroringProducer[T]) Error() error {
	if p.failed {
		return p.err
	}
	return nil
}

// A digit producer failing during a rollover ends the sequence with the
// failure intact, instead of restarting over it.
func TestProductCombinationRolloverFailure(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	boom := errors.New("digit producer failed")
	pc := NewProductCombination(func() Producer[int] {
		return &erroringProducer[int]{s: []int{1, 2}, err: boom}
	})

	assert.True(pc.Next(ctx))
	assert.EqualValues([]int{1}, pc.Get())
	assert.True(pc.Next(ctx))
	assert.EqualValues([]int{2}, pc.Get())

	// the first digit's rollover trips the failure
	assert.False(pc.Next(ctx))
	assert.ErrorIs(pc.Error(), boom)
	assert.False(pc.Next(ctx))
}

// Each pull hands out a fresh slice; earlier results stay intact.
func TestProductCombinationNoAliasing(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	pc := NewProductCombination(sliceSource([]int{1, 2}))
	assert.True(pc.Next(ctx))
	first := pc.Get()
	assert.True(pc.Next(ctx))

	assert.EqualValues([]int{1}, first)
	assert.EqualValues([]int{2}, pc.Get())
}
