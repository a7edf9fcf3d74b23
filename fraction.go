package surd

import "github.com/surdlib/surd/internal/intmath"

// reduceFraction cross-reduces a numerator/denominator pair whose
// linears have each already been reduced: shared coefficient GCD
// extraction, direct-ratio collapse to an integer fraction, denominator
// rationalization where possible, and padding to matched length.
//
// Composed linears (nested real-number coefficients) skip every
// coefficient-level step and are only padded.
func reduceFraction(num, den Linear) (Linear, Linear) {
	num, den = num.clone(), den.clone()

	if !num.composed() && !den.composed() {
		extractSharedGCD(num, den)
		num, den = collapseProportional(num, den)
		num, den = rationalize(num, den)
	}

	return padToMatch(num, den)
}

// extractSharedGCD divides every coefficient of both linears by their
// common GCD. GCDAll fails closed on zero coefficients, so the canonical
// zero numerator leaves the pair untouched.
func extractSharedGCD(num, den Linear) {
	coeffs := append(num.coefficients(), den.coefficients()...)
	g := intmath.GCDAll(coeffs...)
	if g <= 1 {
		return
	}
	for i := range num {
		num[i].Coeff /= g
	}
	for i := range den {
		den[i].Coeff /= g
	}
}

// collapseProportional detects a numerator and denominator with
// identical (rad, index) patterns and proportional coefficient vectors,
// and collapses the whole fraction to a single integer ratio in lowest
// terms, e.g. (2√3)/(4√3) → 1/2.
func collapseProportional(num, den Linear) (Linear, Linear) {
	if len(num) != len(den) {
		return num, den
	}
	for i := range num {
		if num[i].Rad != den[i].Rad || num[i].Index != den[i].Index {
			return num, den
		}
	}
	if !intmath.Proportional(num.coefficients(), den.coefficients()) {
		return num, den
	}
	p, q := intmath.ReduceRatio(num[0].Coeff, den[0].Coeff)
	return Linear{Integer(p)}, Linear{Integer(q)}
}

// rationalize moves an irrational denominator into the numerator where
// algebra allows it: a monomial c·ʲ√r multiplies both sides by ʲ√(r^(j−1)),
// a binomial with indexes ≤ 2 multiplies the numerator by the conjugate
// and replaces the denominator with the closed form c₀²·r₀ − c₁²·r₁.
// Denominators of three or more terms, binomials holding an index ≥ 3,
// numerators the combination rules cannot multiply, and int64 overflow
// all degrade the same way: the pair is returned as-is and the
// denominator stays irrational.
func rationalize(num, den Linear) (Linear, Linear) {
	if !den.hasIrrational() || len(den) >= 3 {
		return num, den
	}

	if len(den) == 1 {
		c, r, j := den[0].Coeff, den[0].Rad, den[0].Index
		rp, err := intmath.Pow(r, j-1)
		if err != nil {
			return num, den
		}
		cr, err := intmath.MulChecked(c, r)
		if err != nil {
			return num, den
		}
		scaled, err := mulLinears(num, Linear{Unit{Coeff: 1, Rad: rp, Index: j}})
		if err != nil {
			// Reciprocal-root numerator units have no product with the
			// root; the fraction is still representable unrationalized.
			return num, den
		}
		return scaled, Linear{Integer(cr)}
	}

	// Binomial case, all indexes ≤ 2. Instead of multiplying the
	// denominator by its conjugate, its value is known in closed form:
	// (c₀·√r₀ + c₁·√r₁)(c₀·√r₀ − c₁·√r₁) = c₀²·r₀ − c₁²·r₁.
	for _, u := range den {
		if u.Index > 2 || u.Index < 1 {
			return num, den
		}
	}
	d0, err := squareTimesRad(den[0])
	if err != nil {
		return num, den
	}
	d1, err := squareTimesRad(den[1])
	if err != nil {
		return num, den
	}
	d, err := intmath.AddChecked(d0, -d1)
	if err != nil || d == 0 {
		// d == 0 cannot happen for distinct reduced radicals; keep the
		// pair untouched rather than divide by zero.
		return num, den
	}
	scaled, err := mulLinears(num, conjugate(den))
	if err != nil {
		return num, den
	}
	return scaled, Linear{Integer(d)}
}

// squareTimesRad computes c²·r for one denominator unit.
func squareTimesRad(u Unit) (int64, error) {
	c2, err := intmath.MulChecked(u.Coeff, u.Coeff)
	if err != nil {
		return 0, err
	}
	return intmath.MulChecked(c2, u.Rad)
}

// padToMatch pads the shorter linear with (0,1,1) filler units so both
// have equal length. Purely representational: consumers get
// matched-length columns, the numeric value is unchanged. The fillers
// are freshly allocated per call, never shared.
func padToMatch(num, den Linear) (Linear, Linear) {
	for len(num) < len(den) {
		num = append(num, zeroUnit())
	}
	for len(den) < len(num) {
		den = append(den, zeroUnit())
	}
	return num, den
}
