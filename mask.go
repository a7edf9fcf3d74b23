package surd

import "github.com/surdlib/surd/internal/intmath"

// Construction masks: conveniences that turn ordinary Go values into
// canonical unit triples so callers never build raw linears by hand.
// The kernel itself accepts only integer triples; floats are converted
// to an exact ratio at this boundary and nowhere else.

// FromInt builds the integer value n.
func FromInt(n int64) (*RealNumber, error) {
	return New([]Unit{Integer(n)}, []Unit{Integer(1)})
}

// FromRatio builds the exact fraction p/q.
// Fails with DIVISION_BY_ZERO when q is 0.
func FromRatio(p, q int64) (*RealNumber, error) {
	return New([]Unit{Integer(p)}, []Unit{Integer(q)})
}

// FromFloat builds the exact value of the decimal literal v, using the
// best rational approximation with denominator ≤
// intmath.DecimalDenominatorMax so binary floating-point artifacts do
// not leak into the canonical form. Fails with INVALID_ARGUMENT for NaN
// or infinities.
func FromFloat(v float64) (*RealNumber, error) {
	p, q, err := intmath.DecimalRatio(v)
	if err != nil {
		return nil, wrapIntmath(err, "converting float literal")
	}
	return FromRatio(p, q)
}

// FromUnit builds the single radical term coeff·ⁱⁿᵈᵉˣ√rad.
func FromUnit(coeff, rad, index int64) (*RealNumber, error) {
	return New([]Unit{NewUnit(coeff, rad, index)}, []Unit{Integer(1)})
}

// Sqrt builds √n.
func Sqrt(n int64) (*RealNumber, error) {
	return FromUnit(1, n, 2)
}
