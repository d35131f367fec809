package pull

import "context"

// Merge joins of two producers that are already individually
// non-decreasing under the supplied three-way comparator.  Equality is
// whatever the comparator reports; no secondary ordering is applied.
// Each side holds at most one pending element of lookahead.

// JoinSide tags a Joined element with its provenance.
type JoinSide int

const (
	// BothSides means the left and right elements compared equal.
	BothSides JoinSide = iota

	// LeftOnly means the left element had no equal counterpart.
	LeftOnly

	// RightOnly means the right element had no equal counterpart.
	RightOnly
)

func (s JoinSide) String() string {
	switch s {
	case BothSides:
		return "Both"
	case LeftOnly:
		return "Left"
	case RightOnly:
		return "Right"
	default:
		return "unknown"
	}
}

// Joined is one element of an outer join result.  Left is valid unless
// Side is RightOnly; Right is valid unless Side is LeftOnly.
type Joined[L, R any] struct {
	Side  JoinSide
	Left  L
	Right R
}

// JoinLeft builds a LeftOnly element.
func JoinLeft[L, R any](l L) Joined[L, R] {
	return Joined[L, R]{Side: LeftOnly, Left: l}
}

// JoinRight builds a RightOnly element.
func JoinRight[L, R any](r R) Joined[L, R] {
	return Joined[L, R]{Side: RightOnly, Right: r}
}

// JoinBoth builds a BothSides element.
func JoinBoth[L, R any](l L, r R) Joined[L, R] {
	return Joined[L, R]{Side: BothSides, Left: l, Right: r}
}

// peeked wraps a producer with a one-slot lookahead so the joins can
// compare heads without consuming them.
type peeked[T any] struct {
	p       Producer[T]
	item    T
	pending bool
	done    bool
}

func (pk *peeked[T]) peek(ctx context.Context) (T, bool) {
	if pk.pending {
		return pk.item, true
	}
	if !pk.done && pk.p.Next(ctx) {
		pk.item = pk.p.Get()
		pk.pending = true
		return pk.item, true
	}
	pk.done = true
	var zero T
	return zero, false
}

// pop consumes the pending element.  Only valid after a true peek.
func (pk *peeked[T]) pop() T {
	pk.pending = false
	return pk.item
}

// MergeJoinInner yields only the (left, right) pairs the comparator
// reports equal: the intersection of the two inputs.
type MergeJoinInner[L, R any] struct {
	left  peeked[L]
	right peeked[R]
	cmp   func(L, R) int
	cur   Pair[L, R]
}

// NewMergeJoinInner returns the inner merge join of left and right
// under cmp.
func NewMergeJoinInner[L, R any](left Producer[L], right Producer[R], cmp func(L, R) int) *MergeJoinInner[L, R] {
	return &MergeJoinInner[L, R]{
		left:  peeked[L]{p: left},
		right: peeked[R]{p: right},
		cmp:   cmp,
	}
}

func (j *MergeJoinInner[L, R]) Next(ctx context.Context) bool {
	for {
		l, lok := j.left.peek(ctx)
		r, rok := j.right.peek(ctx)
		if !lok || !rok {
			// inner join ends as soon as either side does
			return false
		}

		switch c := j.cmp(l, r); {
		case c < 0:
			j.left.pop()
		case c > 0:
			j.right.pop()
		default:
			j.cur = Pair[L, R]{A: j.left.pop(), B: j.right.pop()}
			return true
		}
	}
}

// Get returns the most recent matched pair.
func (j *MergeJoinInner[L, R]) Get() Pair[L, R] {
	return j.cur
}

func (j *MergeJoinInner[L, R]) Error() error {
	if err := j.left.p.Error(); err != nil {
		return err
	}
	return j.right.p.Error()
}

// MergeJoinLeftExcl yields only the left elements with no equal
// counterpart on the right: the left difference of the two inputs.
type MergeJoinLeftExcl[L, R any] struct {
	left  peeked[L]
	right peeked[R]
	cmp   func(L, R) int
	cur   L
}

// NewMergeJoinLeftExcl returns the left-exclusive merge join of left
// and right under cmp.
func NewMergeJoinLeftExcl[L, R any](left Producer[L], right Producer[R], cmp func(L, R) int) *MergeJoinLeftExcl[L, R] {
	return &MergeJoinLeftExcl[L, R]{
		left:  peeked[L]{p: left},
		right: peeked[R]{p: right},
		cmp:   cmp,
	}
}

func (j *MergeJoinLeftExcl[L, R]) Next(ctx context.Context) bool {
	for {
		l, lok := j.left.peek(ctx)
		if !lok {
			return false
		}

		r, rok := j.right.peek(ctx)
		if !rok {
			// right exhausted: everything left is unmatched
			j.cur = j.left.pop()
			return true
		}

		switch c := j.cmp(l, r); {
		case c < 0:
			j.cur = j.left.pop()
			return true
		case c > 0:
			j.right.pop()
		default:
			j.left.pop()
			j.right.pop()
		}
	}
}

// Get returns the most recent unmatched left element.
func (j *MergeJoinLeftExcl[L, R]) Get() L {
	return j.cur
}

func (j *MergeJoinLeftExcl[L, R]) Error() error {
	if err := j.left.p.Error(); err != nil {
		return err
	}
	return j.right.p.Error()
}

// MergeJoinLeftOuter yields every left element, tagged LeftOnly when
// unmatched and BothSides when matched, and drops right-only elements.
type MergeJoinLeftOuter[L, R any] struct {
	left  peeked[L]
	right peeked[R]
	cmp   func(L, R) int
	cur   Joined[L, R]
}

// NewMergeJoinLeftOuter returns the left outer merge join of left and
// right under cmp.
func NewMergeJoinLeftOuter[L, R any](left Producer[L], right Producer[R], cmp func(L, R) int) *MergeJoinLeftOuter[L, R] {
	return &MergeJoinLeftOuter[L, R]{
		left:  peeked[L]{p: left},
		right: peeked[R]{p: right},
		cmp:   cmp,
	}
}

func (j *MergeJoinLeftOuter[L, R]) Next(ctx context.Context) bool {
	for {
		l, lok := j.left.peek(ctx)
		if !lok {
			return false
		}

		r, rok := j.right.peek(ctx)
		if !rok {
			j.cur = JoinLeft[L, R](j.left.pop())
			return true
		}

		switch c := j.cmp(l, r); {
		case c < 0:
			j.cur = JoinLeft[L, R](j.left.pop())
			return true
		case c > 0:
			j.right.pop()
		default:
			j.cur = JoinBoth(j.left.pop(), j.right.pop())
			return true
		}
	}
}

// Get returns the most recent join element.
func (j *MergeJoinLeftOuter[L, R]) Get() Joined[L, R] {
	return j.cur
}

func (j *MergeJoinLeftOuter[L, R]) Error() error {
	if err := j.left.p.Error(); err != nil {
		return err
	}
	return j.right.p.Error()
}

// MergeJoinFullOuter yields every element from both sides, tagged
// LeftOnly, RightOnly or BothSides.  Once one side is exhausted the
// other is drained with its one-sided tag.
type MergeJoinFullOuter[L, R any] struct {
	left  peeked[L]
	right peeked[R]
	cmp   func(L, R) int
	cur   Joined[L, R]
}

// NewMergeJoinFullOuter returns the full outer merge join of left and
// right under cmp.
func NewMergeJoinFullOuter[L, R any](left Producer[L], right Producer[R], cmp func(L, R) int) *MergeJoinFullOuter[L, R] {
	return &MergeJoinFullOuter[L, R]{
		left:  peeked[L]{p: left},
		right: peeked[R]{p: right},
		cmp:   cmp,
	}
}

func (j *MergeJoinFullOuter[L, R]) Next(ctx context.Context) bool {
	l, lok := j.left.peek(ctx)
	r, rok := j.right.peek(ctx)

	switch {
	case !lok && !rok:
		return false
	case !rok:
		j.cur = JoinLeft[L, R](j.left.pop())
		return true
	case !lok:
		j.cur = JoinRight[L, R](j.right.pop())
		return true
	}

	switch c := j.cmp(l, r); {
	case c < 0:
		j.cur = JoinLeft[L, R](j.left.pop())
	case c > 0:
		j.cur = JoinRight[L, R](j.right.pop())
	default:
		j.cur = JoinBoth(j.left.pop(), j.right.pop())
	}
	return true
}

// Get returns the most recent join element.
func (j *MergeJoinFullOuter[L, R]) Get() Joined[L, R] {
	return j.cur
}

func (j *MergeJoinFullOuter[L, R]) Error() error {
	if err := j.left.p.Error(); err != nil {
		return err
	}
	return j.right.p.Error()
}

// Hint: every surviving element comes from one side or the other, so
// the estimate is bounded by the sum of both sides.
func (j *MergeJoinFullOuter[L, R]) Hint() SizeHint {
	lh := AddScalar(HintOf(j.left.p), pendingCount(&j.left))
	rh := AddScalar(HintOf(j.right.p), pendingCount(&j.right))
	h := AddHints(lh, rh)
	// matched pairs collapse two inputs into one output
	h.Lower = max(lh.Lower, rh.Lower)
	return h
}

func pendingCount[T any](pk *peeked[T]) uint {
	if pk.pending {
		return 1
	}
	return 0
}
