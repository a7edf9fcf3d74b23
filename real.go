package surd

// RealNumber is the canonical exact value: an immutable ratio of two
// reduced linears. Construction reduces once; every arithmetic operation
// builds a brand-new value from the operands' raw combination and
// reduces it again. There is no in-place mutation anywhere.
type RealNumber struct {
	num   Linear
	den   Linear
	class Classification
}

// New constructs a RealNumber from raw numerator and denominator unit
// sequences. The input need not be reduced; the result always is.
// Fails with DIVISION_BY_ZERO if the denominator reduces to zero.
func New(num, den []Unit) (*RealNumber, error) {
	return assemble(Linear(num).clone(), Linear(den).clone())
}

// assemble reduces both linears, runs the fraction reducer, normalizes
// the zero numerator and classifies the result.
func assemble(num, den Linear) (*RealNumber, error) {
	num, err := reduceLinear(num)
	if err != nil {
		return nil, err
	}
	den, err = reduceLinear(den)
	if err != nil {
		return nil, err
	}
	if den.IsZero() {
		return nil, newDivisionByZero("denominator reduces to zero")
	}

	num, den = reduceFraction(num, den)
	if num.IsZero() {
		num, den = zeroLinear(), oneLinear()
	}

	return &RealNumber{
		num:   num,
		den:   den,
		class: classify(num, den),
	}, nil
}

// Num returns a fresh copy of the canonical numerator linear.
func (r *RealNumber) Num() Linear { return r.num.clone() }

// Den returns a fresh copy of the canonical denominator linear.
func (r *RealNumber) Den() Linear { return r.den.clone() }

// Class returns the complexity classification computed at construction.
// It is derived state and never part of equality.
func (r *RealNumber) Class() Classification { return r.class }

// IsZero reports whether the value is 0.
func (r *RealNumber) IsZero() bool { return r.num.IsZero() }

// Equal reports structural equality of the canonical forms. Because
// every construction path reduces to canonical form, structural
// equality coincides with numeric equality for non-composed values.
func (r *RealNumber) Equal(o *RealNumber) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.num) != len(o.num) || len(r.den) != len(o.den) {
		return false
	}
	for i := range r.num {
		if !sameUnit(r.num[i], o.num[i]) {
			return false
		}
	}
	for i := range r.den {
		if !sameUnit(r.den[i], o.den[i]) {
			return false
		}
	}
	return true
}

func sameUnit(a, b Unit) bool {
	if (a.Nested == nil) != (b.Nested == nil) {
		return false
	}
	if a.Nested != nil {
		return a.Rad == b.Rad && a.Index == b.Index && a.Nested.Equal(b.Nested)
	}
	return a == b
}

// Neg returns −r: the sign of every numerator unit flipped, denominator
// untouched, reassembled.
func (r *RealNumber) Neg() (*RealNumber, error) {
	num := r.num.clone()
	for i := range num {
		if num[i].Nested != nil {
			n, err := num[i].Nested.Neg()
			if err != nil {
				return nil, err
			}
			num[i].Nested = n
			continue
		}
		num[i].Coeff = -num[i].Coeff
	}
	return assemble(num, r.den.clone())
}

// Add returns r + o as (r.num·o.den + o.num·r.den) / (r.den·o.den).
func (r *RealNumber) Add(o *RealNumber) (*RealNumber, error) {
	left, err := mulLinears(r.num, o.den)
	if err != nil {
		return nil, err
	}
	right, err := mulLinears(o.num, r.den)
	if err != nil {
		return nil, err
	}
	num, err := sumLinears(left, right)
	if err != nil {
		return nil, err
	}
	den, err := mulLinears(r.den, o.den)
	if err != nil {
		return nil, err
	}
	return assemble(num, den)
}

// Sub returns r − o, built as r + (−o).
func (r *RealNumber) Sub(o *RealNumber) (*RealNumber, error) {
	neg, err := o.Neg()
	if err != nil {
		return nil, err
	}
	return r.Add(neg)
}

// Mul returns r · o as (r.num·o.num) / (r.den·o.den).
func (r *RealNumber) Mul(o *RealNumber) (*RealNumber, error) {
	num, err := mulLinears(r.num, o.num)
	if err != nil {
		return nil, err
	}
	den, err := mulLinears(r.den, o.den)
	if err != nil {
		return nil, err
	}
	return assemble(num, den)
}

// Div returns r / o as (r.num·o.den) / (r.den·o.num). Fails with
// DIVISION_BY_ZERO when o is the zero value.
func (r *RealNumber) Div(o *RealNumber) (*RealNumber, error) {
	if o.IsZero() {
		return nil, newDivisionByZero("division by the zero value")
	}
	num, err := mulLinears(r.num, o.den)
	if err != nil {
		return nil, err
	}
	den, err := mulLinears(r.den, o.num)
	if err != nil {
		return nil, err
	}
	return assemble(num, den)
}
