package surd

import "math"

// Float evaluation and ordering sit above the exact kernel: they are the
// fallback for comparisons that have no exact answer, and the oracle for
// value-preservation checks. Nothing here ever feeds back into the
// canonical representation.

// cmpEpsilon is the relative tolerance for the float-fallback ordering.
const cmpEpsilon = 1e-9

// Float64 evaluates one unit approximately.
func (u Unit) Float64() float64 {
	coeff := float64(u.Coeff)
	if u.Nested != nil {
		coeff = u.Nested.Float64()
	}
	if u.Rad == 0 {
		return 0
	}
	mag := math.Pow(math.Abs(float64(u.Rad)), 1/float64(u.Index))
	if u.Rad < 0 {
		// Odd index: the real root carries the radicand's sign.
		mag = -mag
	}
	return coeff * mag
}

// Float64 evaluates the sum of units approximately.
func (l Linear) Float64() float64 {
	var sum float64
	for _, u := range l {
		sum += u.Float64()
	}
	return sum
}

// Float64 evaluates the value approximately.
func (r *RealNumber) Float64() float64 {
	return r.num.Float64() / r.den.Float64()
}

// Cmp orders two values by their float evaluation: -1, 0 or +1.
// Values closer than a relative epsilon compare equal; exact equality
// questions belong to Equal, which compares canonical forms.
func (r *RealNumber) Cmp(o *RealNumber) int {
	a, b := r.Float64(), o.Float64()
	diff := a - b
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	if math.Abs(diff) <= cmpEpsilon*scale {
		return 0
	}
	if diff < 0 {
		return -1
	}
	return 1
}

// LessThan reports r < o under the float fallback.
func (r *RealNumber) LessThan(o *RealNumber) bool { return r.Cmp(o) < 0 }

// GreaterThan reports r > o under the float fallback.
func (r *RealNumber) GreaterThan(o *RealNumber) bool { return r.Cmp(o) > 0 }
