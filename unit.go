package surd

import "github.com/surdlib/surd/internal/intmath"

// Unit is one atomic radical term coeff·rad^(1/index).
//
// Reduced units satisfy:
//   - index ≥ 1, or index ≤ -1 for reciprocal roots;
//   - index == 1 implies rad == 1 (the term is the plain integer coeff);
//   - coeff == 0 implies rad == 1 and index == 1;
//   - rad carries no prime factor with exponent ≥ index (every perfect
//     power has been extracted into coeff);
//   - an even index implies rad ≥ 0.
type Unit struct {
	Coeff int64
	Rad   int64
	Index int64

	// Nested holds a real-number coefficient in place of Coeff for
	// composed values. Such units pass through reduction untouched and
	// are never merged; no reduction rule is defined for them.
	Nested *RealNumber
}

// NewUnit builds a raw (unreduced) unit triple.
func NewUnit(coeff, rad, index int64) Unit {
	return Unit{Coeff: coeff, Rad: rad, Index: index}
}

// Integer builds the unit holding the plain integer n.
func Integer(n int64) Unit {
	return Unit{Coeff: n, Rad: 1, Index: 1}
}

// zeroUnit is the canonical form of the value 0.
func zeroUnit() Unit {
	return Unit{Coeff: 0, Rad: 1, Index: 1}
}

// isRational reports whether the reduced unit is a plain integer term.
func (u Unit) isRational() bool {
	return u.Nested == nil && u.Rad == 1 && u.Index == 1
}

// isZeroFiller reports whether the unit is the (0,1,1) padding shape.
func (u Unit) isZeroFiller() bool {
	return u.Nested == nil && u.Coeff == 0
}

// reduceUnit canonicalizes one raw triple. Every other component of the
// kernel assumes its output is already minimal.
func reduceUnit(u Unit) (Unit, error) {
	if u.Nested != nil {
		// Composed value: passed through unreduced.
		return u, nil
	}
	if u.Coeff == 0 {
		return zeroUnit(), nil
	}
	switch {
	case u.Index == 0:
		return Unit{}, newInvalidRoot("index is zero", u)
	case u.Index%2 == 0 && u.Rad < 0:
		return Unit{}, newInvalidRoot("even index with negative radicand", u)
	case u.Index < 0 && u.Rad == 0:
		return Unit{}, newInvalidRoot("negative index with zero radicand", u)
	}

	// Fast paths: index 1 folds the radicand into the coefficient;
	// radicands 0, 1 and -1 fold the same way.
	folded, done, err := foldRational(u)
	if err != nil {
		return Unit{}, err
	}
	if done {
		return folded, nil
	}
	u = folded

	negRad := u.Rad < 0
	factors, err := intmath.Factorize(u.Rad)
	if err != nil {
		return Unit{}, wrapIntmath(err, "factorizing radicand")
	}

	// Index reduction: divide every exponent and the index by their
	// shared GCD, e.g. 8^(1/6) → 2^(1/2).
	absIdx := intmath.Abs(u.Index)
	shared := make([]int64, 0, len(factors)+1)
	for _, e := range factors {
		shared = append(shared, e)
	}
	shared = append(shared, absIdx)
	if g := intmath.GCDAll(shared...); g != 1 {
		for f := range factors {
			factors[f] /= g
		}
		u.Index /= g
		absIdx /= g
	}

	// Perfect-power extraction, positive indexes only: a factor with
	// exponent ≥ index moves f^(exp/index) into the coefficient and
	// keeps exp%index under the root. Extraction into the coefficient
	// does not preserve the value of a reciprocal root, so negative
	// indexes keep their residual radicand as-is.
	if u.Index > 0 {
		for f, e := range factors {
			if e >= absIdx {
				p, err := intmath.Pow(f, e/absIdx)
				if err != nil {
					return Unit{}, wrapIntmath(err, "extracting perfect power")
				}
				u.Coeff, err = intmath.MulChecked(u.Coeff, p)
				if err != nil {
					return Unit{}, wrapIntmath(err, "extracting perfect power")
				}
				factors[f] = e % absIdx
			}
		}
	}

	rad, err := intmath.Rebuild(factors)
	if err != nil {
		return Unit{}, wrapIntmath(err, "rebuilding radicand")
	}
	if negRad {
		rad = -rad
	}
	u.Rad = rad

	// Extraction may have left a rational or integral result.
	folded, _, err = foldRational(u)
	if err != nil {
		return Unit{}, err
	}
	return folded, nil
}

// foldRational applies the fast-path collapses: index 1 folds the
// radicand into the coefficient, and radicands 0, 1, -1 do the same.
// done reports that no further reduction work is possible.
func foldRational(u Unit) (Unit, bool, error) {
	if u.Index == 1 || u.Rad == 0 || u.Rad == 1 || u.Rad == -1 {
		coeff, err := intmath.MulChecked(u.Coeff, u.Rad)
		if err != nil {
			return Unit{}, false, wrapIntmath(err, "folding radicand into coefficient")
		}
		if coeff == 0 {
			return zeroUnit(), true, nil
		}
		return Unit{Coeff: coeff, Rad: 1, Index: 1}, true, nil
	}
	return u, false, nil
}
