package surd

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Formatter renders canonical values with Unicode root and exponent
// glyphs. The glyph tables travel on the formatter rather than as
// ambient globals, so a renderer with different conventions can swap
// them out.
type Formatter struct {
	// Superscripts maps the digits 0-9 to exponent glyphs for root
	// indexes above 2.
	Superscripts [10]rune

	// SuperscriptMinus precedes the index digits of a reciprocal root.
	SuperscriptMinus rune

	// Radical is the root sign.
	Radical string
}

// NewFormatter returns a formatter with the standard glyph tables.
func NewFormatter() *Formatter {
	return &Formatter{
		Superscripts:     [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'},
		SuperscriptMinus: '⁻',
		Radical:          "√",
	}
}

var defaultFormatter = NewFormatter()

// String renders the canonical value using the default formatter:
// the plain numerator when the denominator is 1, otherwise a three-line
// fraction layout.
func (r *RealNumber) String() string {
	return defaultFormatter.Real(r)
}

// Real renders a whole value.
func (f *Formatter) Real(r *RealNumber) string {
	num := f.Linear(r.num)
	if num == "0" {
		return "0"
	}
	den := f.Linear(r.den)
	if den == "1" {
		return num
	}
	return f.fraction(num, den)
}

// Linear renders a sum of units, joining positive terms with '+'.
// Padding fillers render as nothing; an all-filler linear is "0".
func (f *Formatter) Linear(l Linear) string {
	var b strings.Builder
	for _, u := range l {
		s := f.Unit(u)
		if s == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasPrefix(s, "-") {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Unit renders one term: "c" for integers, "c√r" for square roots,
// "cⁿ√r" for higher indexes. Zero units render as the empty string so
// padding fillers never show.
func (f *Formatter) Unit(u Unit) string {
	if u.Nested != nil {
		s := "(" + f.Real(u.Nested) + ")"
		if u.Index == 1 {
			return s
		}
		return s + f.root(u.Index) + strconv.FormatInt(u.Rad, 10)
	}
	if u.Coeff == 0 {
		return ""
	}
	if u.Index == 1 {
		return strconv.FormatInt(u.Coeff, 10)
	}
	return strconv.FormatInt(u.Coeff, 10) + f.root(u.Index) + strconv.FormatInt(u.Rad, 10)
}

// root renders the root sign for an index: "√" for 2, superscripted
// digits otherwise, e.g. "³√" or "⁻³√".
func (f *Formatter) root(index int64) string {
	if index == 2 {
		return f.Radical
	}
	var b strings.Builder
	if index < 0 {
		b.WriteRune(f.SuperscriptMinus)
		index = -index
	}
	for _, ch := range strconv.FormatInt(index, 10) {
		b.WriteRune(f.Superscripts[ch-'0'])
	}
	b.WriteString(f.Radical)
	return b.String()
}

// fraction lays out numerator over denominator with a dash rule sized
// to the wider line; the narrower line is centered by left padding.
// Widths are rune counts, not byte counts.
func (f *Formatter) fraction(num, den string) string {
	nw, dw := utf8.RuneCountInString(num), utf8.RuneCountInString(den)
	width := nw
	if dw > width {
		width = dw
	}
	line := strings.Repeat("-", width)
	numPad := strings.Repeat(" ", (width-nw)/2)
	denPad := strings.Repeat(" ", (width-dw)/2)
	return numPad + num + "\n" + line + "\n" + denPad + den
}
