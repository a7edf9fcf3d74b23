// Package surd provides exact arithmetic over real numbers that mix
// integers, rationals and radical terms, so that a value like √2+√3 keeps
// its algebraic identity through long chains of operations instead of
// collapsing into an approximate float.
//
// The canonical form is a ratio of two sums of radical terms:
//
//   - a Unit is one term coeff·ⁱⁿᵈᵉˣ√rad over int64 components;
//   - a Linear is a deduplicated, canonically ordered sum of Units;
//   - a RealNumber is an immutable numerator/denominator pair of Linears,
//     fully reduced once at construction.
//
// Every constructor and operation re-reduces its result, so two
// structurally different inputs denoting the same real number always end
// up in identical canonical form. RealNumber values are immutable after
// construction; accessors return fresh copies, so concurrent reads need
// no coordination.
//
// Layering is strict: internal/intmath imports nothing from this module;
// the unit reducer builds on intmath, the linear reducer on the unit
// reducer, linear arithmetic and the fraction reducer on both, and
// real-number assembly on all of them.
//
// Key design constraints:
//   - NO floats anywhere in the representation; float64 appears only in
//     the evaluation/comparison fallback.
//   - All failures are typed (*Error with a Code) and recoverable;
//     nothing panics.
//   - Factorization work is bounded (intmath.MaxTrials) and surfaces as
//     a COMPUTATION_TOO_LARGE error rather than hanging.
package surd
