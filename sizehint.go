package pull

import "math"

// Arithmetic on SizeHint values.  Lower bounds saturate; upper bounds
// propagate only when both operands know theirs.

// AddHints adds two size hints.
func AddHints(a, b SizeHint) SizeHint {
	out := SizeHint{Lower: saturatingAdd(a.Lower, b.Lower)}
	if a.UpperKnown && b.UpperKnown {
		out.Upper = saturatingAdd(a.Upper, b.Upper)
		out.UpperKnown = true
	}
	return out
}

// AddScalar adds x to both bounds of a hint.
func AddScalar(h SizeHint, x uint) SizeHint {
	h.Lower = saturatingAdd(h.Lower, x)
	if h.UpperKnown {
		h.Upper = saturatingAdd(h.Upper, x)
	}
	return h
}

// SubScalar subtracts x from both bounds of a hint, clamping at zero.
func SubScalar(h SizeHint, x uint) SizeHint {
	if h.Lower > x {
		h.Lower -= x
	} else {
		h.Lower = 0
	}
	if h.UpperKnown {
		if h.Upper > x {
			h.Upper -= x
		} else {
			h.Upper = 0
		}
	}
	return h
}

// DivScalar divides both bounds of a hint by n (floor).  Used by
// grouping adaptors that emit one element per n inner elements.
func DivScalar(h SizeHint, n uint) SizeHint {
	h.Lower /= n
	if h.UpperKnown {
		h.Upper /= n
	}
	return h
}

// MinHint returns a hint no larger than either argument.
func MinHint(a, b SizeHint) SizeHint {
	out := SizeHint{Lower: min(a.Lower, b.Lower)}
	switch {
	case a.UpperKnown && b.UpperKnown:
		out.Upper, out.UpperKnown = min(a.Upper, b.Upper), true
	case a.UpperKnown:
		out.Upper, out.UpperKnown = a.Upper, true
	case b.UpperKnown:
		out.Upper, out.UpperKnown = b.Upper, true
	}
	return out
}

// MaxHint returns a hint no smaller than either argument.
func MaxHint(a, b SizeHint) SizeHint {
	out := SizeHint{Lower: max(a.Lower, b.Lower)}
	if a.UpperKnown && b.UpperKnown {
		out.Upper, out.UpperKnown = max(a.Upper, b.Upper), true
	}
	return out
}

func saturatingAdd(a, b uint) uint {
	if a > math.MaxUint-b {
		return math.MaxUint
	}
	return a + b
}
