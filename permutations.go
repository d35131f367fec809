package pull

import (
	"cmp"
	"context"
	"slices"
)

// MultisetPermutations yields every distinct permutation of its input,
// treating equal values as indistinguishable: an input of length n with
// value multiplicities m1..mk produces exactly n!/(m1!·...·mk!) results.
//
// The input is snapshotted and sorted descending on the first pull; the
// first result is that descending order itself.  Each successor is
// produced by splicing one node to the front of a singly linked list
// held in index-addressed storage, so a step costs O(1) pointer work
// plus the O(n) copy of the result.
type MultisetPermutations[T cmp.Ordered] struct {
	src    Producer[T]
	values []T    // node payloads, never moved after the initial sort
	next   []int  // successor node index, -1 at the tail
	head   int
	cur    int    // node at the rightmost ascent position
	loaded bool
	first  bool
	done   bool
	out    []T
}

// NewMultisetPermutations returns a generator of the distinct
// permutations of p's output.
func NewMultisetPermutations[T cmp.Ordered](p Producer[T]) *MultisetPermutations[T] {
	return &MultisetPermutations[T]{src: p, first: true}
}

func (m *MultisetPermutations[T]) load(ctx context.Context) {
	if m.loaded {
		return
	}
	for m.src.Next(ctx) {
		m.values = append(m.values, m.src.Get())
	}
	slices.SortFunc(m.values, func(a, b T) int { return cmp.Compare(b, a) })

	n := len(m.values)
	m.next = make([]int, n)
	for i := range m.next {
		m.next[i] = i + 1
	}
	if n > 0 {
		m.next[n-1] = -1
	}
	m.head = 0
	if n == 0 {
		m.head = -1
	}
	m.cur = n - 2 // initial linkage is positional, so this is position n-2
	m.loaded = true
}

// emit walks the list head to tail into the output slice.
func (m *MultisetPermutations[T]) emit() {
	out := make([]T, 0, len(m.values))
	for i := m.head; i != -1; i = m.next[i] {
		out = append(out, m.values[i])
	}
	m.out = out
}

func (m *MultisetPermutations[T]) Next(ctx context.Context) bool {
	m.load(ctx)
	if m.done {
		return false
	}

	if m.first {
		// the descending order is the first permutation
		m.first = false
		m.emit()
		return true
	}

	if len(m.values) < 2 {
		m.done = true
		return false
	}

	nxt := m.next[m.cur]
	nn := -1
	if nxt != -1 {
		nn = m.next[nxt]
	}

	// the sequence is final when no node right of the ascent point can
	// move and the head already carries the smallest prefix value
	if nn == -1 && (nxt == -1 || m.values[m.head] <= m.values[nxt]) {
		m.done = true
		return false
	}

	// pick the shift node: two past the ascent point when its value
	// still fits below the ascent value, else the immediate successor
	var shift, pred int
	if nn != -1 && m.values[nn] <= m.values[m.cur] {
		shift, pred = nn, nxt
	} else {
		shift, pred = nxt, m.cur
	}

	// splice the shift node to the front
	m.next[pred] = m.next[shift]
	m.next[shift] = m.head
	m.head = shift

	// recompute the ascent cursor
	if m.values[m.head] < m.values[m.next[m.head]] {
		m.cur = m.head
	}

	m.emit()
	return true
}

// Get returns the most recent permutation.
func (m *MultisetPermutations[T]) Get() []T {
	return m.out
}

// Error returns the input producer's error, if any.
func (m *MultisetPermutations[T]) Error() error {
	return m.src.Error()
}
