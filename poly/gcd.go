package poly

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// GCD computes the monic greatest common divisor of a and b using the
// subresultant polynomial remainder sequence. The subresultant scheme
// keeps intermediate coefficients from exploding, which matters once
// dispersion computations push degrees into the double digits.
func GCD(a, b Poly) Poly {
	if a.IsZero() {
		return b.Monic()
	}
	if b.IsZero() {
		return a.Monic()
	}
	if a.IsConstant() && b.IsConstant() {
		return One()
	}

	f, g := a, b
	if f.Degree() < g.Degree() {
		f, g = g, f
	}
	f = f.PrimitivePart()
	g = g.PrimitivePart()

	psi := number.FromInt(-1)

	// First division step uses beta = (-1)^(delta+1).
	delta := f.Degree() - g.Degree()
	h := f.PseudoRem(g)
	if h.IsZero() {
		return g.PrimitivePart().Monic()
	}
	beta := number.One()
	if (delta+1)%2 != 0 {
		beta = number.FromInt(-1)
	}
	h = h.ScalarDiv(beta)

	negLC := f.LeadingCoeff().Neg()
	switch {
	case delta == 1:
		psi = negLC
	case delta > 1:
		psi = negLC.Pow(int64(delta)).Div(psi.Pow(int64(delta - 1)))
	}

	f, g = g, h

	for {
		if g.IsZero() {
			return f.PrimitivePart().Monic()
		}
		if g.IsConstant() {
			return One()
		}
		if f.Degree() < g.Degree() {
			return g.PrimitivePart().Monic()
		}

		delta = f.Degree() - g.Degree()
		h = f.PseudoRem(g)
		if h.IsZero() {
			return g.PrimitivePart().Monic()
		}

		negLC = f.LeadingCoeff().Neg()
		beta = negLC.Mul(psi.Pow(int64(delta)))
		h = h.ScalarDiv(beta)

		switch {
		case delta == 1:
			psi = negLC
		case delta > 1:
			psi = negLC.Pow(int64(delta)).Div(psi.Pow(int64(delta - 1)))
		}

		f, g = g, h
	}
}

// Resultant computes res(a, b), which is zero exactly when a and b share
// a root over the algebraic closure. Uses the Euclidean recursion
// res(a,b) = (-1)^(mn) * lc(b)^(m-k) * res(b, a mod b).
func Resultant(a, b Poly) number.Rat {
	if a.IsZero() || b.IsZero() {
		return number.Zero()
	}
	m := a.Degree()
	n := b.Degree()
	if m == 0 {
		return a.Coeff(0).Pow(int64(n))
	}
	if n == 0 {
		return b.Coeff(0).Pow(int64(m))
	}

	_, r := a.DivRem(b)
	if r.IsZero() {
		return number.Zero()
	}
	k := r.Degree()

	sign := number.One()
	if (m*n)%2 == 1 {
		sign = number.FromInt(-1)
	}
	lcPow := b.LeadingCoeff().Pow(int64(m - k))
	return sign.Mul(lcPow).Mul(Resultant(b, r))
}
