package qseries

import (
	"fmt"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// EtaQ computes the generalized eta product
// (q^b; q^t)_inf = prod_{n>=0} (1 - q^{b+t*n}).
// The step t must be positive; b <= 0 makes the product vanish.
func EtaQ(b, t, order int64) *series.FPS {
	if t <= 0 {
		panic(fmt.Sprintf("qseries: etaq step must be positive, got %d", t))
	}
	if b <= 0 {
		return series.Zero(order)
	}
	result := series.One(order)
	for e := b; e < order; e += t {
		result = result.Mul(oneMinus(number.One(), e, order))
	}
	return result
}

// JacProd computes the Jacobi triple product
// JAC(a,b) = (q^a;q^b)_inf (q^{b-a};q^b)_inf (q^b;q^b)_inf for 0 < a < b.
func JacProd(a, b, order int64) *series.FPS {
	if a <= 0 || a >= b {
		panic(fmt.Sprintf("qseries: jacprod requires 0 < a < b, got a=%d b=%d", a, b))
	}
	return EtaQ(a, b, order).Mul(EtaQ(b-a, b, order)).Mul(EtaQ(b, b, order))
}

// TripleProd computes the Jacobi triple product with monomial parameter
// z = c*q^m:
//
//	prod_{n>=1}(1-q^n) * prod_{n>=0}(1 - z q^n) * prod_{n>=1}(1 - q^n/z)
//
// Panics if z has zero coefficient.
func TripleProd(z Monomial, order int64) *series.FPS {
	if z.Coeff.IsZero() {
		panic("qseries: tripleprod requires nonzero z coefficient")
	}
	f2 := aqprodInfinite(Monomial{Coeff: z.Coeff, Power: z.Power}, order)
	if f2.IsZero() {
		return series.Zero(order)
	}
	f3 := aqprodInfinite(Monomial{Coeff: z.Coeff.Inv(), Power: 1 - z.Power}, order)
	if f3.IsZero() {
		return series.Zero(order)
	}
	return EulerProd(order).Mul(f2).Mul(f3)
}

// stepProd computes prod_{n>=0}(1 - c * q^{base + step*n}) where factors
// with exponents outside [0, order) contribute only their constant 1.
func stepProd(c number.Rat, base, step, order int64) *series.FPS {
	result := series.One(order)
	for e := base; e < order; e += step {
		result = result.Mul(oneMinus(c, e, order))
	}
	return result
}

// QuinProd computes the quintuple product for z = c*q^m:
//
//	prod_{n>=1}(1-q^n)(1-z q^n)(1-q^{n-1}/z)(1-z^2 q^{2n-1})(1-q^{2n-1}/z^2)
//
// Panics if z has zero coefficient.
func QuinProd(z Monomial, order int64) *series.FPS {
	if z.Coeff.IsZero() {
		panic("qseries: quinprod requires nonzero z coefficient")
	}
	c := z.Coeff
	m := z.Power
	inv := c.Inv()

	f1 := EulerProd(order)
	f2 := aqprodInfinite(Monomial{Coeff: c, Power: m + 1}, order)
	f3 := aqprodInfinite(Monomial{Coeff: inv, Power: -m}, order)
	f4 := stepProd(c.Mul(c), 2*m+1, 2, order)
	f5 := stepProd(inv.Mul(inv), 1-2*m, 2, order)
	return f1.Mul(f2).Mul(f3).Mul(f4).Mul(f5)
}

// Winquist computes Winquist's identity product for a = ac*q^ap and
// b = bc*q^bp: the square of the Euler function times eight
// q-Pochhammer factors. Panics if either coefficient is zero.
func Winquist(a, b Monomial, order int64) *series.FPS {
	if a.Coeff.IsZero() || b.Coeff.IsZero() {
		panic("qseries: winquist requires nonzero coefficients")
	}
	invA := a.Coeff.Inv()
	invB := b.Coeff.Inv()

	euler := EulerProd(order)
	result := euler.Mul(euler)

	factors := []Monomial{
		{Coeff: a.Coeff, Power: a.Power},
		{Coeff: invA, Power: 1 - a.Power},
		{Coeff: b.Coeff, Power: b.Power},
		{Coeff: invB, Power: 1 - b.Power},
		{Coeff: a.Coeff.Mul(b.Coeff), Power: a.Power + b.Power},
		{Coeff: invA.Mul(invB), Power: 2 - a.Power - b.Power},
		{Coeff: a.Coeff.Mul(invB), Power: a.Power - b.Power},
		{Coeff: invA.Mul(b.Coeff), Power: 1 - a.Power + b.Power},
	}
	for _, f := range factors {
		result = result.Mul(aqprodInfinite(f, order))
	}
	return result
}
