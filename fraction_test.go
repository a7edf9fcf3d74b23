package surd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduceBoth(t *testing.T, num, den Linear) (Linear, Linear) {
	t.Helper()
	rn, err := reduceLinear(num)
	require.NoError(t, err)
	rd, err := reduceLinear(den)
	require.NoError(t, err)
	return rn, rd
}

func TestReduceFraction_SharedGCD(t *testing.T) {
	num, den := reduceBoth(t,
		Linear{Integer(4), NewUnit(2, 2, 2)},
		Linear{Integer(2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{Integer(2), NewUnit(1, 2, 2)}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(1), zeroUnit()}, gotDen))
}

func TestReduceFraction_ProportionalCollapse(t *testing.T) {
	// 2√3 / 4√3 = 1/2
	num, den := reduceBoth(t,
		Linear{NewUnit(2, 3, 2)},
		Linear{NewUnit(4, 3, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Equal(t, Linear{Integer(1)}, gotNum)
	assert.Equal(t, Linear{Integer(2)}, gotDen)
}

func TestReduceFraction_ProportionalCollapseToInteger(t *testing.T) {
	// (2 + 2√2) / (1 + √2) = 2
	num, den := reduceBoth(t,
		Linear{Integer(2), NewUnit(2, 2, 2)},
		Linear{Integer(1), NewUnit(1, 2, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Equal(t, Linear{Integer(2)}, gotNum)
	assert.Equal(t, Linear{Integer(1)}, gotDen)
}

func TestReduceFraction_RationalLowestTerms(t *testing.T) {
	num, den := reduceBoth(t, Linear{Integer(6)}, Linear{Integer(-4)})
	gotNum, gotDen := reduceFraction(num, den)

	// Lowest terms with a positive denominator.
	assert.Equal(t, Linear{Integer(-3)}, gotNum)
	assert.Equal(t, Linear{Integer(2)}, gotDen)
}

func TestReduceFraction_MonomialRationalization(t *testing.T) {
	// 1/(2√2) = √2/4
	num, den := reduceBoth(t, Linear{Integer(1)}, Linear{NewUnit(2, 2, 2)})
	gotNum, gotDen := reduceFraction(num, den)

	assert.Equal(t, Linear{NewUnit(1, 2, 2)}, gotNum)
	assert.Equal(t, Linear{Integer(4)}, gotDen)
}

func TestReduceFraction_MonomialCubeRationalization(t *testing.T) {
	// 1/³√2 = ³√4/2
	num, den := reduceBoth(t, Linear{Integer(1)}, Linear{NewUnit(1, 2, 3)})
	gotNum, gotDen := reduceFraction(num, den)

	assert.Equal(t, Linear{NewUnit(1, 4, 3)}, gotNum)
	assert.Equal(t, Linear{Integer(2)}, gotDen)
}

func TestReduceFraction_BinomialRationalization(t *testing.T) {
	// 1/(4 + 2√2): numerator takes the conjugate, denominator is the
	// closed form 4² − 2²·2 = 8.
	num, den := reduceBoth(t,
		Linear{Integer(1)},
		Linear{Integer(4), NewUnit(2, 2, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{Integer(4), NewUnit(-2, 2, 2)}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(8), zeroUnit()}, gotDen))
}

func TestReduceFraction_TwoIrrationalBinomial(t *testing.T) {
	// 1/(√3 − √2) = √3 + √2. The denominator sorts to (−√2 + √3), so
	// the closed form is (−1)²·2 − 1²·3 = −1 and the conjugate numerator
	// is (−√2 − √3).
	num, den := reduceBoth(t,
		Linear{Integer(1)},
		Linear{NewUnit(-1, 2, 2), NewUnit(1, 3, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{NewUnit(-1, 2, 2), NewUnit(-1, 3, 2)}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(-1), zeroUnit()}, gotDen))
}

func TestReduceFraction_ThreeTermDenominatorUntouched(t *testing.T) {
	num, den := reduceBoth(t,
		Linear{Integer(1)},
		Linear{Integer(1), NewUnit(1, 2, 2), NewUnit(1, 3, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	// Documented limitation: three or more terms stay irrational.
	assert.Empty(t, cmp.Diff(Linear{Integer(1), zeroUnit(), zeroUnit()}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(1), NewUnit(1, 2, 2), NewUnit(1, 3, 2)}, gotDen))
}

func TestReduceFraction_HighIndexBinomialUntouched(t *testing.T) {
	num, den := reduceBoth(t,
		Linear{Integer(1)},
		Linear{Integer(1), NewUnit(1, 2, 3)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{Integer(1), zeroUnit()}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(1), NewUnit(1, 2, 3)}, gotDen))
}

func TestReduceFraction_ReciprocalNumeratorDegrades(t *testing.T) {
	// 2^(−1/2)/√2: the reciprocal-root numerator has no product with
	// the rationalizing root, so the pair comes back unrationalized
	// instead of failing.
	num, den := reduceBoth(t,
		Linear{NewUnit(1, 2, -2)},
		Linear{NewUnit(1, 2, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{NewUnit(1, 2, -2)}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{NewUnit(1, 2, 2)}, gotDen))
}

func TestReduceFraction_ReciprocalNumeratorBinomialDegrades(t *testing.T) {
	// Same degradation on the binomial path: the conjugate cannot be
	// multiplied into a reciprocal-root numerator.
	num, den := reduceBoth(t,
		Linear{NewUnit(1, 2, -2)},
		Linear{Integer(1), NewUnit(1, 2, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	assert.Empty(t, cmp.Diff(Linear{NewUnit(1, 2, -2), zeroUnit()}, gotNum))
	assert.Empty(t, cmp.Diff(Linear{Integer(1), NewUnit(1, 2, 2)}, gotDen))
}

func TestReduceFraction_PadsToMatchedLength(t *testing.T) {
	num, den := reduceBoth(t,
		Linear{Integer(1), NewUnit(1, 2, 2), NewUnit(1, 3, 2)},
		Linear{Integer(5), NewUnit(1, 2, 2), NewUnit(1, 3, 2), NewUnit(1, 5, 2)},
	)
	gotNum, gotDen := reduceFraction(num, den)

	require.Len(t, gotNum, len(gotDen))
	assert.Equal(t, zeroUnit(), gotNum[len(gotNum)-1])
}

func TestReduceFraction_PreservesValue(t *testing.T) {
	cases := []struct {
		num, den Linear
	}{
		{Linear{Integer(1)}, Linear{NewUnit(2, 2, 2)}},
		{Linear{Integer(1)}, Linear{Integer(4), NewUnit(2, 2, 2)}},
		{Linear{Integer(3), NewUnit(1, 5, 2)}, Linear{Integer(2)}},
		{Linear{NewUnit(2, 3, 2)}, Linear{NewUnit(4, 3, 2)}},
		{Linear{Integer(1)}, Linear{NewUnit(-1, 2, 2), NewUnit(1, 3, 2)}},
		{Linear{NewUnit(1, 2, -2)}, Linear{NewUnit(1, 2, 2)}},
	}
	for _, tc := range cases {
		num, den := reduceBoth(t, tc.num, tc.den)
		want := num.Float64() / den.Float64()

		gotNum, gotDen := reduceFraction(num, den)
		assert.InEpsilon(t, want, gotNum.Float64()/gotDen.Float64(), 1e-9,
			"value of %v / %v changed", tc.num, tc.den)
	}
}
