package surd

import (
	"sort"

	"github.com/surdlib/surd/internal/intmath"
)

// Linear is an ordered sum of Units. Reduced linears hold no duplicate
// (rad, index) pairs, no zero-coefficient units (except the canonical
// zero form and trailing padding fillers), and are sorted ascending by
// (index, rad) so that structurally equal values have identical
// representations. Units with nested coefficients are never merged and
// follow the plain units in their original order.
type Linear []Unit

// zeroLinear is the canonical representation of the value 0.
func zeroLinear() Linear {
	return Linear{zeroUnit()}
}

// oneLinear is the canonical representation of the value 1.
func oneLinear() Linear {
	return Linear{Integer(1)}
}

// IsZero reports whether the reduced linear denotes the value 0.
func (l Linear) IsZero() bool {
	for _, u := range l {
		if !u.isZeroFiller() {
			return false
		}
	}
	return len(l) > 0
}

// isOne reports whether the reduced linear denotes the value 1,
// ignoring padding fillers.
func (l Linear) isOne() bool {
	one := false
	for _, u := range l {
		switch {
		case u.isZeroFiller():
		case u.isRational() && u.Coeff == 1 && !one:
			one = true
		default:
			return false
		}
	}
	return one
}

// composed reports whether any unit carries a nested real-number
// coefficient.
func (l Linear) composed() bool {
	for _, u := range l {
		if u.Nested != nil {
			return true
		}
	}
	return false
}

// hasIrrational reports whether any unit is a proper root (index > 1).
func (l Linear) hasIrrational() bool {
	for _, u := range l {
		if u.Nested == nil && u.Index > 1 {
			return true
		}
	}
	return false
}

// clone returns a fresh copy sharing no backing storage with l.
func (l Linear) clone() Linear {
	out := make(Linear, len(l))
	copy(out, l)
	return out
}

// coefficients returns the coefficient column of l. Only meaningful for
// non-composed linears.
func (l Linear) coefficients() []int64 {
	out := make([]int64, len(l))
	for i, u := range l {
		out[i] = u.Coeff
	}
	return out
}

// radKey is the grouping key for like radicals.
type radKey struct {
	rad   int64
	index int64
}

// reduceLinear canonicalizes a sum of raw units: each unit is reduced
// independently, units sharing a (rad, index) key are merged by summing
// coefficients, zero sums are dropped, and the survivors are sorted by
// the canonical (index, rad) key. An empty result collapses to the
// canonical zero linear.
func reduceLinear(l Linear) (Linear, error) {
	sums := make(map[radKey]int64)
	var keys []radKey
	var nested []Unit

	for _, raw := range l {
		u, err := reduceUnit(raw)
		if err != nil {
			return nil, err
		}
		if u.Nested != nil {
			nested = append(nested, u)
			continue
		}
		if u.Coeff == 0 {
			continue
		}
		k := radKey{rad: u.Rad, index: u.Index}
		if _, seen := sums[k]; !seen {
			keys = append(keys, k)
		}
		s, err := intmath.AddChecked(sums[k], u.Coeff)
		if err != nil {
			return nil, wrapIntmath(err, "merging like radicals")
		}
		sums[k] = s
	}

	out := make(Linear, 0, len(keys)+len(nested))
	for _, k := range keys {
		if sums[k] == 0 {
			continue
		}
		out = append(out, Unit{Coeff: sums[k], Rad: k.rad, Index: k.index})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].Rad < out[j].Rad
	})
	out = append(out, nested...)

	if len(out) == 0 {
		return zeroLinear(), nil
	}
	return out, nil
}
