package surd

import "github.com/surdlib/surd/internal/intmath"

// mulLinears returns the reduced product of two reduced linears: the
// cross product of every unit pair, combined by mulUnits and merged by
// the linear reducer.
//
//	(4 + 2√2) · (5 − 6√3) = 20 − 24√3 + 10√2 − 12√6
func mulLinears(a, b Linear) (Linear, error) {
	raw := make(Linear, 0, len(a)*len(b))
	for _, u := range a {
		for _, v := range b {
			w, err := mulUnits(u, v)
			if err != nil {
				return nil, err
			}
			raw = append(raw, w)
		}
	}
	return reduceLinear(raw)
}

// mulUnits combines one unit pair. A pure rational term multiplies
// pointwise; two radicals combine under the index LCM:
//
//	ᵖ√x · ᵠ√y = ˡ√(x^(l/p) · y^(l/q)),  l = lcm(p, q)
func mulUnits(u, v Unit) (Unit, error) {
	if u.Nested != nil || v.Nested != nil {
		return Unit{}, newInvalidArgument("arithmetic over a nested real-number coefficient is not defined")
	}
	coeff, err := intmath.MulChecked(u.Coeff, v.Coeff)
	if err != nil {
		return Unit{}, wrapIntmath(err, "multiplying coefficients")
	}
	if u.Rad == 1 || v.Rad == 1 {
		// One side is rational (reduced rationals are (c,1,1)), so the
		// pointwise product keeps the other side's radical untouched.
		rad, err := intmath.MulChecked(u.Rad, v.Rad)
		if err != nil {
			return Unit{}, wrapIntmath(err, "multiplying radicands")
		}
		index, err := intmath.MulChecked(u.Index, v.Index)
		if err != nil {
			return Unit{}, wrapIntmath(err, "multiplying indexes")
		}
		return Unit{Coeff: coeff, Rad: rad, Index: index}, nil
	}
	if (u.Index < 0) != (v.Index < 0) {
		// A root and a reciprocal root have no single-unit product.
		return Unit{}, newInvalidArgument("cannot combine a root with a reciprocal root in one term")
	}
	l, err := intmath.LCM(u.Index, v.Index)
	if err != nil {
		return Unit{}, wrapIntmath(err, "combining root indexes")
	}
	pu, err := intmath.Pow(u.Rad, l/intmath.Abs(u.Index))
	if err != nil {
		return Unit{}, wrapIntmath(err, "raising radicand")
	}
	pv, err := intmath.Pow(v.Rad, l/intmath.Abs(v.Index))
	if err != nil {
		return Unit{}, wrapIntmath(err, "raising radicand")
	}
	rad, err := intmath.MulChecked(pu, pv)
	if err != nil {
		return Unit{}, wrapIntmath(err, "multiplying radicands")
	}
	if u.Index < 0 {
		l = -l
	}
	return Unit{Coeff: coeff, Rad: rad, Index: l}, nil
}

// sumLinears returns the reduced sum of two linears. Concatenation is
// enough: the reducer merges like radicals.
func sumLinears(a, b Linear) (Linear, error) {
	raw := make(Linear, 0, len(a)+len(b))
	raw = append(raw, a...)
	raw = append(raw, b...)
	return reduceLinear(raw)
}

// conjugate returns the two-term linear with the second coefficient
// negated: c₀ + c₁·ᵏ√r → c₀ − c₁·ᵏ√r. Precondition (guarded by the
// fraction reducer): len(l) == 2 and neither unit is nested.
func conjugate(l Linear) Linear {
	out := l.clone()
	out[1].Coeff = -out[1].Coeff
	return out
}
