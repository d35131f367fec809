package pull

import "context"

// TreeFold1 folds the producer's elements with f in a balanced, tree
// shaped order: elements are combined pairwise, then pairs of pairs,
// and so on, instead of strictly left to right.  For an associative f
// the result equals a plain left fold; the tree shape favours cheaper
// combines (short strings, balanced float error) on deep inputs.
//
// A singleton input is returned unchanged.  Empty input is a caller
// error: ok is false and the result is the zero value, so check ok
// before relying on the result.
func TreeFold1[T any](ctx context.Context, p Producer[T], f func(T, T) T) (T, bool) {
	// stack[i] holds the fold of a power-of-two run; equal-sized runs
	// are merged as soon as they appear, keeping the tree balanced
	var stack []T
	var count uint

	for p.Next(ctx) {
		stack = append(stack, p.Get())
		count++
		for n := count; n%2 == 0; n /= 2 {
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, f(a, b))
		}
	}

	if len(stack) == 0 {
		var zero T
		return zero, false
	}

	// drain the stack right to left so leftover runs keep input order
	acc := stack[len(stack)-1]
	for i := len(stack) - 2; i >= 0; i-- {
		acc = f(stack[i], acc)
	}
	return acc, true
}

// TreeFold1Slice is TreeFold1 over a materialized slice, pairing by
// recursive halving.
func TreeFold1Slice[T any](s []T, f func(T, T) T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return treeFoldSplit(s, f), true
}

func treeFoldSplit[T any](s []T, f func(T, T) T) T {
	if len(s) == 1 {
		return s[0]
	}
	mid := len(s) / 2
	return f(treeFoldSplit(s[:mid], f), treeFoldSplit(s[mid:], f))
}
