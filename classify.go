package surd

// Shape is the top-level classification axis.
type Shape int

const (
	// ShapeInteger means the denominator is exactly the unit value 1.
	ShapeInteger Shape = iota
	// ShapeFraction means the value carries a real denominator.
	ShapeFraction
)

// String returns the axis name.
func (s Shape) String() string {
	if s == ShapeInteger {
		return "integer"
	}
	return "fraction"
}

// Complexity grades one linear, so that operation sites can dispatch to
// faster code paths. Decided once at construction and matched
// exhaustively, never compared as a string.
type Complexity int

const (
	// Rational: every unit is a plain integer term (rad == 1).
	Rational Complexity = iota
	// SimpleIrrational: a single radical unit.
	SimpleIrrational
	// MixedIrrational: a sum of plain-integer radical units.
	MixedIrrational
	// ComposedIrrational: at least one nested real-number coefficient.
	ComposedIrrational
)

// String returns the grade name.
func (c Complexity) String() string {
	switch c {
	case Rational:
		return "rational"
	case SimpleIrrational:
		return "simple irrational"
	case MixedIrrational:
		return "mixed irrational"
	default:
		return "composed irrational"
	}
}

// Classification is the derived complexity tag of a RealNumber: the
// shape axis plus one complexity grade each for numerator and
// denominator. Recomputed whenever the canonical form changes; never
// part of equality. The denominator grade is skipped (left Rational)
// when the shape is Integer.
type Classification struct {
	Shape Shape
	Num   Complexity
	Den   Complexity
}

// String renders the tag, e.g. "integer/simple irrational".
func (c Classification) String() string {
	if c.Shape == ShapeInteger {
		return c.Shape.String() + "/" + c.Num.String()
	}
	return c.Shape.String() + "/" + c.Num.String() + ":" + c.Den.String()
}

// classify derives the tag for a reduced, padded num/den pair.
func classify(num, den Linear) Classification {
	c := Classification{Shape: ShapeFraction, Num: complexityOf(num)}
	if den.isOne() {
		c.Shape = ShapeInteger
		return c
	}
	c.Den = complexityOf(den)
	return c
}

// complexityOf grades one reduced linear. Padding fillers are ignored;
// a nested coefficient anywhere dominates the grade.
func complexityOf(l Linear) Complexity {
	if l.composed() {
		return ComposedIrrational
	}
	rational := true
	terms := 0
	for _, u := range l {
		if u.isZeroFiller() {
			continue
		}
		terms++
		if u.Rad != 1 {
			rational = false
		}
	}
	switch {
	case rational:
		return Rational
	case terms == 1:
		return SimpleIrrational
	default:
		return MixedIrrational
	}
}
