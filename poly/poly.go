// Package poly implements dense univariate polynomials and rational
// functions over exact rationals. These are the workhorses of the
// telescoping algorithms: term ratios, Gosper normal forms, and WZ
// certificates are all rational functions of x = q^k.
package poly

import (
	"math/big"
	"strings"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// Poly is a dense univariate polynomial with rational coefficients.
// Coefficients are stored lowest degree first with no trailing zeros,
// so the zero polynomial has an empty slice. The zero value is the
// zero polynomial.
type Poly struct {
	coeffs []number.Rat
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// One returns the constant polynomial 1.
func One() Poly {
	return Constant(number.One())
}

// Constant returns the degree-0 polynomial c.
func Constant(c number.Rat) Poly {
	if c.IsZero() {
		return Poly{}
	}
	return Poly{coeffs: []number.Rat{c}}
}

// X returns the polynomial x.
func X() Poly {
	return Poly{coeffs: []number.Rat{number.Zero(), number.One()}}
}

// Monomial returns c * x^deg.
func Monomial(c number.Rat, deg int) Poly {
	if c.IsZero() {
		return Poly{}
	}
	coeffs := make([]number.Rat, deg+1)
	coeffs[deg] = c
	return Poly{coeffs: coeffs}
}

// Linear returns a + b*x.
func Linear(a, b number.Rat) Poly {
	return FromCoeffs(a, b)
}

// FromCoeffs builds a polynomial from coefficients in ascending degree
// order, stripping trailing zeros.
func FromCoeffs(coeffs ...number.Rat) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Poly{}
	}
	out := make([]number.Rat, n)
	copy(out, coeffs[:n])
	return Poly{coeffs: out}
}

// FromInt64s builds a polynomial from int64 coefficients in ascending
// degree order.
func FromInt64s(coeffs ...int64) Poly {
	rs := make([]number.Rat, len(coeffs))
	for i, c := range coeffs {
		rs[i] = number.FromInt(c)
	}
	return FromCoeffs(rs...)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant reports whether p has degree at most 0.
func (p Poly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// IsOne reports whether p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsOne()
}

// Coeff returns the coefficient of x^i, or 0 when i is out of range.
func (p Poly) Coeff(i int) number.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return number.Zero()
	}
	return p.coeffs[i]
}

// LeadingCoeff returns the leading coefficient, or 0 for the zero
// polynomial.
func (p Poly) LeadingCoeff() number.Rat {
	if len(p.coeffs) == 0 {
		return number.Zero()
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Coeffs returns the coefficient slice, ascending degree. The slice is
// shared; callers must not modify it.
func (p Poly) Coeffs() []number.Rat {
	return p.coeffs
}

// Equal reports whether p and o are the same polynomial.
func (p Poly) Equal(o Poly) bool {
	if len(p.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(o.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	n := len(p.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}
	sum := make([]number.Rat, n)
	for i := range sum {
		sum[i] = p.Coeff(i).Add(o.Coeff(i))
	}
	return FromCoeffs(sum...)
}

// Sub returns p - o.
func (p Poly) Sub(o Poly) Poly {
	return p.Add(o.Neg())
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]number.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}
	return Poly{coeffs: out}
}

// Mul returns p * o by schoolbook multiplication. Degrees in the
// telescoping pipeline stay small enough that anything fancier would
// not pay for itself.
func (p Poly) Mul(o Poly) Poly {
	if p.IsZero() || o.IsZero() {
		return Poly{}
	}
	out := make([]number.Rat, len(p.coeffs)+len(o.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range o.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return FromCoeffs(out...)
}

// ScalarMul returns p with every coefficient multiplied by c.
func (p Poly) ScalarMul(c number.Rat) Poly {
	if c.IsZero() {
		return Poly{}
	}
	out := make([]number.Rat, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return Poly{coeffs: out}
}

// ScalarDiv returns p with every coefficient divided by c. Panics if c
// is zero.
func (p Poly) ScalarDiv(c number.Rat) Poly {
	if c.IsZero() {
		panic("poly: scalar division by zero")
	}
	return p.ScalarMul(c.Inv())
}

// DivRem performs Euclidean division, returning quotient and remainder
// with deg(rem) < deg(divisor). Panics if divisor is zero.
func (p Poly) DivRem(divisor Poly) (Poly, Poly) {
	if divisor.IsZero() {
		panic("poly: division by zero polynomial")
	}
	dDeg := divisor.Degree()
	sDeg := p.Degree()
	if sDeg < 0 {
		return Poly{}, Poly{}
	}
	if sDeg < dDeg {
		return Poly{}, p
	}

	lc := divisor.LeadingCoeff()
	rem := make([]number.Rat, len(p.coeffs))
	copy(rem, p.coeffs)
	quot := make([]number.Rat, sDeg-dDeg+1)

	for i := len(quot) - 1; i >= 0; i-- {
		idx := i + dDeg
		if idx >= len(rem) {
			continue
		}
		qc := rem[idx].Div(lc)
		if qc.IsZero() {
			continue
		}
		quot[i] = qc
		for j, dj := range divisor.coeffs {
			rem[i+j] = rem[i+j].Sub(dj.Mul(qc))
		}
	}
	return FromCoeffs(quot...), FromCoeffs(rem...)
}

// ExactDiv returns p / divisor and panics on a nonzero remainder.
func (p Poly) ExactDiv(divisor Poly) Poly {
	q, r := p.DivRem(divisor)
	if !r.IsZero() {
		panic("poly: exact division left a remainder")
	}
	return q
}

// PseudoRem computes lc(other)^delta * p mod other with
// delta = deg(p) - deg(other) + 1, keeping the subresultant PRS free of
// fractions.
func (p Poly) PseudoRem(other Poly) Poly {
	if p.IsZero() {
		return Poly{}
	}
	if other.IsZero() {
		panic("poly: pseudo-remainder by zero polynomial")
	}
	if p.Degree() < other.Degree() {
		return p
	}
	delta := p.Degree() - other.Degree() + 1
	scale := other.LeadingCoeff().Pow(int64(delta))
	_, r := p.ScalarMul(scale).DivRem(other)
	return r
}

// Content returns gcd(numerators)/lcm(denominators) of the coefficients,
// or 0 for the zero polynomial.
func (p Poly) Content() number.Rat {
	if p.IsZero() {
		return number.Zero()
	}
	numGCD := new(big.Int)
	denLCM := big.NewInt(1)
	for _, c := range p.coeffs {
		n := new(big.Int).Abs(c.Num())
		d := c.Denom()
		numGCD.GCD(nil, nil, numGCD, n)
		g := new(big.Int).GCD(nil, nil, denLCM, d)
		denLCM.Div(new(big.Int).Mul(denLCM, d), g)
	}
	return number.FromBigInts(numGCD, denLCM)
}

// PrimitivePart returns p divided by its content, or 0 for the zero
// polynomial.
func (p Poly) PrimitivePart() Poly {
	c := p.Content()
	if c.IsZero() {
		return Poly{}
	}
	return p.ScalarDiv(c)
}

// Monic returns p scaled so its leading coefficient is 1, or 0 for the
// zero polynomial.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return Poly{}
	}
	return p.ScalarDiv(p.LeadingCoeff())
}

// Eval evaluates p at x by Horner's method.
func (p Poly) Eval(x number.Rat) number.Rat {
	result := number.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// QShift returns p(qv * x): coefficient c_i scaled by qv^i.
func (p Poly) QShift(qv number.Rat) Poly {
	if p.IsZero() {
		return Poly{}
	}
	if qv.IsOne() {
		return p
	}
	out := make([]number.Rat, len(p.coeffs))
	pow := number.One()
	for i, c := range p.coeffs {
		out[i] = c.Mul(pow)
		pow = pow.Mul(qv)
	}
	return FromCoeffs(out...)
}

// QShiftN returns p(qv^j * x) for a signed shift j. Panics if qv is
// zero and j is negative.
func (p Poly) QShiftN(qv number.Rat, j int64) Poly {
	if j == 0 || p.IsZero() {
		return p
	}
	return p.QShift(qv.Pow(j))
}

// String renders p in conventional form, e.g. "x^2 - 3x + 1/2".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		abs := c.Abs()
		if first {
			if c.Sign() < 0 {
				b.WriteString("-")
			}
			first = false
		} else {
			if c.Sign() < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		switch {
		case i == 0:
			b.WriteString(abs.String())
		case abs.IsOne():
			b.WriteString(varPower(i))
		default:
			b.WriteString(abs.String())
			b.WriteString("*")
			b.WriteString(varPower(i))
		}
	}
	return b.String()
}

func varPower(i int) string {
	if i == 1 {
		return "x"
	}
	var b strings.Builder
	b.WriteString("x^")
	b.WriteString(number.FromInt(int64(i)).String())
	return b.String()
}
