// Package qseries provides the classical q-series toolbox: q-Pochhammer
// symbols, Gaussian binomials, eta and theta products, partition
// generating functions, and basic hypergeometric series. Everything is
// computed exactly over the rationals as truncated power series in q.
package qseries

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// Monomial is c * q^m, the shape taken by q-hypergeometric parameters
// and arguments. Monomial{} is the zero monomial.
type Monomial struct {
	Coeff number.Rat
	Power int64
}

// QPower returns the monomial q^m.
func QPower(m int64) Monomial {
	return Monomial{Coeff: number.One(), Power: m}
}

// ConstMono returns the monomial c * q^0.
func ConstMono(c number.Rat) Monomial {
	return Monomial{Coeff: c}
}

// Value evaluates the monomial at a concrete q.
func (m Monomial) Value(q number.Rat) number.Rat {
	return m.Coeff.Mul(q.Pow(m.Power))
}

// QNegPower reports whether the monomial is exactly q^{-n} for some
// n >= 0, returning n. Parameters of this shape terminate a
// hypergeometric sum after n+1 terms.
func (m Monomial) QNegPower() (int64, bool) {
	if m.Coeff.IsOne() && m.Power <= 0 {
		return -m.Power, true
	}
	return 0, false
}

// PochhammerOrder selects between (a;q)_n for integer n and (a;q)_inf.
type PochhammerOrder struct {
	n        int64
	infinite bool
}

// Finite returns the order n, allowing negative n.
func Finite(n int64) PochhammerOrder {
	return PochhammerOrder{n: n}
}

// Infinite returns the infinite order.
func Infinite() PochhammerOrder {
	return PochhammerOrder{infinite: true}
}

// oneMinus returns the series 1 - c*q^e truncated at order. Exponents
// may be negative (Laurent factors show up in triple and quintuple
// products); an exponent at or beyond the truncation order is dropped.
func oneMinus(c number.Rat, e, order int64) *series.FPS {
	if e == 0 {
		return series.Monomial(number.One().Sub(c), 0, order)
	}
	f := series.One(order)
	if e < order {
		return f.Sub(series.Monomial(c, e, order))
	}
	return f
}

// AQProd computes the q-Pochhammer symbol (a;q)_n as a truncated series.
//
//	n = 0:   1
//	n > 0:   prod_{k=0}^{n-1} (1 - a.Coeff * q^{a.Power+k})
//	n < 0:   1 / (a*q^n; q)_{|n|}
//	n = inf: prod_{k=0}^{inf} (1 - a.Coeff * q^{a.Power+k})
func AQProd(a Monomial, n PochhammerOrder, order int64) *series.FPS {
	switch {
	case n.infinite:
		return aqprodInfinite(a, order)
	case n.n == 0:
		return series.One(order)
	case n.n > 0:
		return aqprodPositive(a, n.n, order)
	default:
		shifted := Monomial{Coeff: a.Coeff, Power: a.Power + n.n}
		return aqprodPositive(shifted, -n.n, order).Inv()
	}
}

func aqprodPositive(a Monomial, n, order int64) *series.FPS {
	// A factor vanishes when a.Coeff == 1 and the exponent hits 0.
	if a.Coeff.IsOne() {
		if neg := -a.Power; neg >= 0 && neg < n {
			return series.Zero(order)
		}
	}
	if a.Coeff.IsZero() {
		return series.One(order)
	}
	result := series.One(order)
	for k := int64(0); k < n; k++ {
		result = result.Mul(oneMinus(a.Coeff, a.Power+k, order))
	}
	return result
}

func aqprodInfinite(a Monomial, order int64) *series.FPS {
	if a.Coeff.IsOne() && a.Power == 0 {
		return series.Zero(order)
	}
	if a.Coeff.IsZero() {
		return series.One(order)
	}
	result := series.One(order)
	// Factor k contributes at exponent a.Power+k; once that exceeds the
	// truncation order the factor is 1 + O(q^order).
	for k := int64(0); a.Power+k < order; k++ {
		result = result.Mul(oneMinus(a.Coeff, a.Power+k, order))
	}
	return result
}

// EulerProd computes (q;q)_inf, the Euler function.
func EulerProd(order int64) *series.FPS {
	return AQProd(QPower(1), Infinite(), order)
}

// QBin computes the Gaussian binomial coefficient [n choose k]_q using
// the product formula prod_{i=1}^{k} (1 - q^{n-k+i}) / (1 - q^i).
// The result is a polynomial of degree k*(n-k).
func QBin(n, k, order int64) *series.FPS {
	if k < 0 || k > n {
		return series.Zero(order)
	}
	if k == 0 || k == n {
		return series.One(order)
	}
	numer := series.One(order)
	denom := series.One(order)
	for i := int64(1); i <= k; i++ {
		numer = numer.Mul(oneMinus(number.One(), n-k+i, order))
		denom = denom.Mul(oneMinus(number.One(), i, order))
	}
	return numer.Mul(denom.Inv())
}
