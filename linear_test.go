package surd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceLinear_MergesLikeRadicals(t *testing.T) {
	got, err := reduceLinear(Linear{
		NewUnit(4, 1, 1),
		NewUnit(2, 2, 2),
		NewUnit(3, 2, 2),
	})
	require.NoError(t, err)
	want := Linear{Integer(4), NewUnit(5, 2, 2)}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestReduceLinear_MergesAfterUnitReduction(t *testing.T) {
	// √8 and 2√2 are the same radical once reduced.
	got, err := reduceLinear(Linear{
		NewUnit(1, 8, 2),
		NewUnit(2, 2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, Linear{NewUnit(4, 2, 2)}, got)
}

func TestReduceLinear_DropsCancelledGroups(t *testing.T) {
	got, err := reduceLinear(Linear{
		NewUnit(3, 5, 2),
		NewUnit(-3, 5, 2),
		NewUnit(7, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, Linear{Integer(7)}, got)
}

func TestReduceLinear_ZeroCollapsesToCanonicalForm(t *testing.T) {
	got, err := reduceLinear(Linear{
		NewUnit(3, 5, 2),
		NewUnit(-3, 5, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, zeroLinear(), got)
	assert.True(t, got.IsZero())
}

func TestReduceLinear_CanonicalOrder(t *testing.T) {
	// Sorted ascending by (index, rad): rationals first, then square
	// roots by radicand, then higher indexes.
	got, err := reduceLinear(Linear{
		NewUnit(1, 5, 3),
		NewUnit(1, 3, 2),
		NewUnit(2, 1, 1),
		NewUnit(1, 2, 2),
	})
	require.NoError(t, err)
	want := Linear{
		Integer(2),
		NewUnit(1, 2, 2),
		NewUnit(1, 3, 2),
		NewUnit(1, 5, 3),
	}
	assert.Equal(t, want, got)
}

func TestReduceLinear_DeterministicAcrossInputOrder(t *testing.T) {
	a := Linear{NewUnit(1, 3, 2), Integer(4), NewUnit(2, 2, 2)}
	b := Linear{NewUnit(2, 2, 2), NewUnit(1, 3, 2), Integer(4)}

	ra, err := reduceLinear(a)
	require.NoError(t, err)
	rb, err := reduceLinear(b)
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
}

func TestReduceLinear_Idempotent(t *testing.T) {
	once, err := reduceLinear(Linear{
		NewUnit(1, 8, 2),
		Integer(3),
		NewUnit(-1, 18, 2),
	})
	require.NoError(t, err)
	twice, err := reduceLinear(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestReduceLinear_PreservesValue(t *testing.T) {
	raw := Linear{
		NewUnit(1, 8, 2),
		NewUnit(2, 12, 2),
		Integer(-3),
		NewUnit(1, 27, 3),
	}
	reduced, err := reduceLinear(raw)
	require.NoError(t, err)
	assert.InEpsilon(t, raw.Float64(), reduced.Float64(), 1e-9)
}

func TestReduceLinear_NestedUnitsKeptApart(t *testing.T) {
	inner, err := FromInt(2)
	require.NoError(t, err)

	got, err := reduceLinear(Linear{
		{Nested: inner, Rad: 3, Index: 2},
		Integer(5),
		{Nested: inner, Rad: 3, Index: 2},
	})
	require.NoError(t, err)
	// Nested units are never merged, even with identical keys; they
	// follow the plain units in input order.
	require.Len(t, got, 3)
	assert.Equal(t, Integer(5), got[0])
	assert.NotNil(t, got[1].Nested)
	assert.NotNil(t, got[2].Nested)
}

func TestReduceLinear_PropagatesUnitErrors(t *testing.T) {
	_, err := reduceLinear(Linear{NewUnit(1, -4, 2)})
	require.Error(t, err)
	assert.True(t, IsInvalidRoot(err))
}
