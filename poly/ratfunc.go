package poly

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// RatFunc is a rational function p(x)/q(x) kept in canonical form:
// numerator and denominator coprime, denominator monic and nonzero.
// Canonical form makes structural equality a coefficient comparison.
// The zero value is not valid; use NewRatFunc or RFZero.
type RatFunc struct {
	numer Poly
	denom Poly
}

// NewRatFunc builds the rational function numer/denom, reducing to
// lowest terms and normalizing the denominator to monic. Panics if
// denom is zero.
func NewRatFunc(numer, denom Poly) RatFunc {
	if denom.IsZero() {
		panic("poly: rational function with zero denominator")
	}
	if numer.IsZero() {
		return RatFunc{numer: Zero(), denom: One()}
	}
	g := GCD(numer, denom)
	n := numer.ExactDiv(g)
	d := denom.ExactDiv(g)
	lc := d.LeadingCoeff()
	if !lc.IsOne() {
		n = n.ScalarDiv(lc)
		d = d.ScalarDiv(lc)
	}
	return RatFunc{numer: n, denom: d}
}

// FromPoly returns p/1.
func FromPoly(p Poly) RatFunc {
	return RatFunc{numer: p, denom: One()}
}

// FromRat returns the constant rational function c/1.
func FromRat(c number.Rat) RatFunc {
	return RatFunc{numer: Constant(c), denom: One()}
}

// RFZero returns the zero rational function.
func RFZero() RatFunc {
	return RatFunc{numer: Zero(), denom: One()}
}

// RFOne returns the rational function 1.
func RFOne() RatFunc {
	return RatFunc{numer: One(), denom: One()}
}

// Numer returns the numerator polynomial.
func (r RatFunc) Numer() Poly {
	return r.numer
}

// Denom returns the denominator polynomial.
func (r RatFunc) Denom() Poly {
	if r.denom.IsZero() {
		return One()
	}
	return r.denom
}

// IsZero reports whether r is the zero function.
func (r RatFunc) IsZero() bool {
	return r.numer.IsZero()
}

// IsPolynomial reports whether the denominator reduced to a constant.
func (r RatFunc) IsPolynomial() bool {
	return r.Denom().IsConstant()
}

// Equal compares canonical forms.
func (r RatFunc) Equal(o RatFunc) bool {
	return r.numer.Equal(o.numer) && r.Denom().Equal(o.Denom())
}

// Add returns r + o.
func (r RatFunc) Add(o RatFunc) RatFunc {
	n := r.numer.Mul(o.Denom()).Add(r.Denom().Mul(o.numer))
	return NewRatFunc(n, r.Denom().Mul(o.Denom()))
}

// Sub returns r - o.
func (r RatFunc) Sub(o RatFunc) RatFunc {
	n := r.numer.Mul(o.Denom()).Sub(r.Denom().Mul(o.numer))
	return NewRatFunc(n, r.Denom().Mul(o.Denom()))
}

// Mul returns r * o, cross-cancelling before multiplying so the reduce
// step inside NewRatFunc sees small operands.
func (r RatFunc) Mul(o RatFunc) RatFunc {
	g1 := GCD(r.numer, o.Denom())
	g2 := GCD(o.numer, r.Denom())
	n1 := r.numer.ExactDiv(g1)
	d2 := o.Denom().ExactDiv(g1)
	n2 := o.numer.ExactDiv(g2)
	d1 := r.Denom().ExactDiv(g2)
	return NewRatFunc(n1.Mul(n2), d1.Mul(d2))
}

// Div returns r / o. Panics if o is zero.
func (r RatFunc) Div(o RatFunc) RatFunc {
	if o.IsZero() {
		panic("poly: rational function division by zero")
	}
	return NewRatFunc(r.numer.Mul(o.Denom()), r.Denom().Mul(o.numer))
}

// Neg returns -r. Negation preserves canonical form directly.
func (r RatFunc) Neg() RatFunc {
	return RatFunc{numer: r.numer.Neg(), denom: r.Denom()}
}

// Eval evaluates r at x. The second return is false when x is a pole,
// that is a root of the denominator that did not cancel.
func (r RatFunc) Eval(x number.Rat) (number.Rat, bool) {
	d := r.Denom().Eval(x)
	if d.IsZero() {
		return number.Rat{}, false
	}
	return r.numer.Eval(x).Div(d), true
}

// QShift returns r(qv * x).
func (r RatFunc) QShift(qv number.Rat) RatFunc {
	return NewRatFunc(r.numer.QShift(qv), r.Denom().QShift(qv))
}

// QShiftN returns r(qv^j * x) for a signed shift j.
func (r RatFunc) QShiftN(qv number.Rat, j int64) RatFunc {
	if j == 0 {
		return r
	}
	return NewRatFunc(r.numer.QShiftN(qv, j), r.Denom().QShiftN(qv, j))
}

// String renders r as "numer" when polynomial, "(numer)/(denom)"
// otherwise.
func (r RatFunc) String() string {
	if r.Denom().IsOne() {
		return r.numer.String()
	}
	return "(" + r.numer.String() + ")/(" + r.Denom().String() + ")"
}
