package pull

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Unique filters out elements that have been seen before, keeping the
// first occurrence of each value.  The membership set grows without
// bound.
type Unique[T comparable] struct {
	inner Producer[T]
	used  map[T]struct{}
	cur   T
}

// NewUnique returns a producer yielding the first occurrence of each
// distinct element of p.
func NewUnique[T comparable](p Producer[T]) *Unique[T] {
	return &Unique[T]{inner: p, used: map[T]struct{}{}}
}

func (u *Unique[T]) Next(ctx context.Context) bool {
	for u.inner.Next(ctx) {
		item := u.inner.Get()
		if _, seen := u.used[item]; seen {
			continue
		}
		u.used[item] = struct{}{}
		u.cur = item
		return true
	}
	return false
}

func (u *Unique[T]) Get() T {
	return u.cur
}

func (u *Unique[T]) Error() error {
	return u.inner.Error()
}

// Hint: duplicates may remove anything beyond the first new element.
func (u *Unique[T]) Hint() SizeHint {
	h := HintOf(u.inner)
	if h.Lower > 0 && len(u.used) == 0 {
		h.Lower = 1
	} else {
		h.Lower = 0
	}
	return h
}

// UniqueBy is Unique with the membership key derived from each element
// by a mapping function.
type UniqueBy[T any, K comparable] struct {
	inner Producer[T]
	used  map[K]struct{}
	key   func(T) K
	cur   T
}

// NewUniqueBy returns a producer yielding the first element of p for
// each distinct key(e).
func NewUniqueBy[T any, K comparable](p Producer[T], key func(T) K) *UniqueBy[T, K] {
	return &UniqueBy[T, K]{inner: p, used: map[K]struct{}{}, key: key}
}

func (u *UniqueBy[T, K]) Next(ctx context.Context) bool {
	for u.inner.Next(ctx) {
		item := u.inner.Get()
		k := u.key(item)
		if _, seen := u.used[k]; seen {
			continue
		}
		u.used[k] = struct{}{}
		u.cur = item
		return true
	}
	return false
}

func (u *UniqueBy[T, K]) Get() T {
	return u.cur
}

func (u *UniqueBy[T, K]) Error() error {
	return u.inner.Error()
}

// UniqueLRU is approximate deduplication with bounded memory: the
// membership set is capped at a fixed capacity with least-recently-used
// eviction.  An element passes iff its key is not currently in the set;
// a suppressed duplicate still refreshes its key's recency.  Elements
// whose keys were evicted reappear as new; that is the intended
// trade-off, not exact dedup.
type UniqueLRU[T any, K comparable] struct {
	inner Producer[T]
	used  *lru.Cache[K, struct{}]
	key   func(T) K
	cur   T
}

// NewUniqueLRU returns an LRU-bounded unique producer over p with the
// given set capacity and key function.  capacity must be positive.
func NewUniqueLRU[T any, K comparable](p Producer[T], capacity int, key func(T) K) (*UniqueLRU[T, K], error) {
	used, err := lru.New[K, struct{}](capacity)
	if err != nil {
		return nil, fmt.Errorf("pull.NewUniqueLRU: %w", err)
	}
	return &UniqueLRU[T, K]{inner: p, used: used, key: key}, nil
}

func (u *UniqueLRU[T, K]) Next(ctx context.Context) bool {
	for u.inner.Next(ctx) {
		item := u.inner.Get()
		k := u.key(item)
		if _, hit := u.used.Get(k); hit {
			// Get refreshed the key's recency; the duplicate is dropped
			continue
		}
		u.used.Add(k, struct{}{})
		u.cur = item
		return true
	}
	return false
}

func (u *UniqueLRU[T, K]) Get() T {
	return u.cur
}

func (u *UniqueLRU[T, K]) Error() error {
	return u.inner.Error()
}

// Hint: the upper bound is the inner producer's; the lower bound is
// unknowable once anything has been seen.
func (u *UniqueLRU[T, K]) Hint() SizeHint {
	h := HintOf(u.inner)
	h.Lower = 0
	return h
}

// Neighbors pairs an element with a copy of the one before it.
type Neighbors[T any] struct {
	// Prev is the preceding element; only valid when HasPrev is true.
	Prev    T
	HasPrev bool

	// Cur is the element itself.
	Cur T
}

// WithPrev pairs each element of its inner producer with the
// immediately preceding element; the first element has no predecessor.
type WithPrev[T any] struct {
	inner Producer[T]
	prev  T
	has   bool
	cur   Neighbors[T]
}

// NewWithPrev returns a producer of each element of p alongside its
// predecessor.
func NewWithPrev[T any](p Producer[T]) *WithPrev[T] {
	return &WithPrev[T]{inner: p}
}

func (w *WithPrev[T]) Next(ctx context.Context) bool {
	if !w.inner.Next(ctx) {
		return false
	}
	item := w.inner.Get()
	w.cur = Neighbors[T]{Prev: w.prev, HasPrev: w.has, Cur: item}
	w.prev, w.has = item, true
	return true
}

func (w *WithPrev[T]) Get() Neighbors[T] {
	return w.cur
}

func (w *WithPrev[T]) Error() error {
	return w.inner.Error()
}

func (w *WithPrev[T]) Hint() SizeHint {
	return HintOf(w.inner)
}
