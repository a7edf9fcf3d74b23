// Package intmath provides the integer helpers the radical kernel is
// built on: primality, bounded prime factorization, GCD/LCM folds,
// overflow-checked int64 arithmetic, proportionality detection and exact
// decimal-to-ratio conversion.
//
// This package imports nothing from the rest of the module. All
// functions are pure; the only knobs are MaxTrials and
// DecimalDenominatorMax.
package intmath

import (
	"errors"
	"math"
	"math/big"
)

// MaxTrials bounds the number of trial divisors Factors may test for a
// single factorization. Exceeding it returns ErrTooLarge instead of
// letting adversarially large radicands hang the reducer.
var MaxTrials int64 = 1 << 20

// DecimalDenominatorMax is the denominator ceiling used by DecimalRatio
// when approximating a float literal with an exact integer ratio.
const DecimalDenominatorMax int64 = 100_000_000

// ErrTooLarge reports that factorization or exponent work exceeded a
// configured bound. The root package surfaces it as a
// COMPUTATION_TOO_LARGE error.
var ErrTooLarge = errors.New("intmath: computation exceeds configured bound")

// ErrNonFinite reports a NaN or infinite float where a decimal literal
// was expected.
var ErrNonFinite = errors.New("intmath: value is not finite")

// Abs returns |n|. The caller must not pass math.MinInt64.
func Abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// IsPrime reports whether |n| is prime. Trial division up to √n;
// 2 is the only even prime.
func IsPrime(n int64) bool {
	n = Abs(n)
	if n < 3 || n%2 == 0 {
		return n == 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Factors returns the prime factors of |n| in ascending order with
// multiplicity. For n in {0, 1} it degenerates to [n]. Trial division
// removes factor 2 first, then walks an odd stride; once the divisor
// passes √remainder the remainder itself is prime. The walk is bounded
// by MaxTrials.
func Factors(n int64) ([]int64, error) {
	n = Abs(n)
	if n <= 1 {
		return []int64{n}, nil
	}
	var out []int64
	for n%2 == 0 {
		n /= 2
		out = append(out, 2)
	}
	trials := int64(0)
	for f := int64(3); f*f <= n; f += 2 {
		trials++
		if trials > MaxTrials {
			return nil, ErrTooLarge
		}
		for n%f == 0 {
			n /= f
			out = append(out, f)
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out, nil
}

// Factorize groups the prime factors of |n| into a factor → exponent map.
func Factorize(n int64) (map[int64]int64, error) {
	factors, err := Factors(n)
	if err != nil {
		return nil, err
	}
	m := make(map[int64]int64, len(factors))
	for _, f := range factors {
		m[f]++
	}
	return m, nil
}

// Rebuild is the inverse of Factorize: the product of factor^exponent
// over all entries. Entries with exponent 0 contribute nothing.
func Rebuild(factors map[int64]int64) (int64, error) {
	n := int64(1)
	for f, e := range factors {
		p, err := Pow(f, e)
		if err != nil {
			return 0, err
		}
		n, err = MulChecked(n, p)
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCDAll folds GCD across values. It fails closed: if any value is 0,
// or the sequence is empty, it returns 1, so a zero-containing set is
// treated as already coprime and no spurious common factor propagates.
func GCDAll(values ...int64) int64 {
	if len(values) == 0 {
		return 1
	}
	g := int64(0)
	for _, v := range values {
		if v == 0 {
			return 1
		}
		g = GCD(g, v)
		if g == 1 {
			return 1
		}
	}
	return g
}

// LCM returns the least common multiple of |a| and |b|, overflow-checked.
func LCM(a, b int64) (int64, error) {
	a, b = Abs(a), Abs(b)
	if a == 0 || b == 0 {
		return 0, nil
	}
	return MulChecked(a/GCD(a, b), b)
}

// Pow computes base^exp for exp ≥ 0 with overflow checking. A negative
// base is handled exactly (the sign follows exponent parity).
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrTooLarge
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		var err error
		result, err = MulChecked(result, base)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// MulChecked returns a*b or ErrTooLarge on int64 overflow.
func MulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, ErrTooLarge
	}
	return p, nil
}

// AddChecked returns a+b or ErrTooLarge on int64 overflow.
func AddChecked(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrTooLarge
	}
	return s, nil
}

// Proportional reports whether the two coefficient vectors share a
// single ratio, i.e. a[i]/b[i] is the same for every i. The test uses
// exact cross multiplication, falling back to big.Int when the products
// would overflow.
func Proportional(a, b []int64) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for i := range a {
		l, lerr := MulChecked(a[i], b[0])
		r, rerr := MulChecked(b[i], a[0])
		if lerr == nil && rerr == nil {
			if l != r {
				return false
			}
			continue
		}
		lb := new(big.Int).Mul(big.NewInt(a[i]), big.NewInt(b[0]))
		rb := new(big.Int).Mul(big.NewInt(b[i]), big.NewInt(a[0]))
		if lb.Cmp(rb) != 0 {
			return false
		}
	}
	return true
}

// ReduceRatio brings the integer fraction p/q to lowest terms with a
// positive denominator. q must be nonzero.
func ReduceRatio(p, q int64) (int64, int64) {
	g := GCD(p, q)
	if g != 0 {
		p, q = p/g, q/g
	}
	if q < 0 {
		p, q = -p, -q
	}
	return p, q
}

// DecimalRatio converts a decimal/float literal to an exact
// numerator/denominator pair. The exact binary expansion of v is taken
// first (so no floating-point artifact survives), then reduced to the
// best rational approximation with denominator ≤ DecimalDenominatorMax.
// This is a boundary-facing helper only; the kernel never accepts
// floats.
func DecimalRatio(v float64) (int64, int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, ErrNonFinite
	}
	exact := new(big.Rat).SetFloat64(v)
	limited := limitDenominator(exact, big.NewInt(DecimalDenominatorMax))
	if !limited.Num().IsInt64() || !limited.Denom().IsInt64() {
		return 0, 0, ErrTooLarge
	}
	return limited.Num().Int64(), limited.Denom().Int64(), nil
}

// limitDenominator returns the closest rational to r whose denominator
// does not exceed max, via the standard continued-fraction
// best-approximation walk.
func limitDenominator(r *big.Rat, max *big.Int) *big.Rat {
	if r.Denom().Cmp(max) <= 0 {
		return r
	}
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(max) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}
	// Two candidates: the last convergent, and the best semiconvergent
	// that still fits under the ceiling.
	k := new(big.Int).Quo(new(big.Int).Sub(max, q0), q1)
	first := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	second := new(big.Rat).SetFrac(p1, q1)
	d1 := new(big.Rat).Sub(first, r)
	d2 := new(big.Rat).Sub(second, r)
	if d2.Abs(d2).Cmp(d1.Abs(d1)) <= 0 {
		return second
	}
	return first
}
