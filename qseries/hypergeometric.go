package qseries

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// Hypergeometric describes a basic hypergeometric series
// _r phi_s (a_1..a_r ; b_1..b_s ; q, z):
//
//	sum_{n>=0} [(a_1;q)_n ... (a_r;q)_n] / [(q;q)_n (b_1;q)_n ... (b_s;q)_n]
//	    * [(-1)^n q^{n(n-1)/2}]^{1+s-r} * z^n
//
// Upper and lower parameters and the argument are all monomials c*q^m.
type Hypergeometric struct {
	Upper    []Monomial
	Lower    []Monomial
	Argument Monomial
}

// R returns the number of upper parameters.
func (h Hypergeometric) R() int {
	return len(h.Upper)
}

// S returns the number of lower parameters.
func (h Hypergeometric) S() int {
	return len(h.Lower)
}

// TerminationOrder returns the smallest n such that some upper
// parameter equals q^{-n}, which kills every term past index n. The
// second return is false for nonterminating series.
func (h Hypergeometric) TerminationOrder() (int64, bool) {
	found := false
	var min int64
	for _, a := range h.Upper {
		if n, ok := a.QNegPower(); ok {
			if !found || n < min {
				min = n
				found = true
			}
		}
	}
	return min, found
}

// EvalPhi evaluates the series to O(q^order). Terms are accumulated by
// multiplying the running term by the step ratio
//
//	prod_i (1 - a_i q^{a_i.Power+n})
//	/ [(1 - q^{n+1}) prod_j (1 - b_j q^{b_j.Power+n})]
//	* (-1)^extra q^{n*extra} * z
//
// with extra = 1 + s - r.
func EvalPhi(h Hypergeometric, order int64) *series.FPS {
	extra := int64(1 + h.S() - h.R())

	result := series.Zero(order)
	term := series.One(order)

	maxN := order
	if t, ok := h.TerminationOrder(); ok && t < maxN {
		maxN = t
	}

	for n := int64(0); n <= maxN; n++ {
		result = result.Add(term)
		if n == maxN {
			break
		}

		numer := series.One(order)
		for _, a := range h.Upper {
			numer = numer.Mul(oneMinus(a.Coeff, a.Power+n, order))
		}
		denom := oneMinus(number.One(), n+1, order)
		for _, b := range h.Lower {
			denom = denom.Mul(oneMinus(b.Coeff, b.Power+n, order))
		}
		ratio := numer.Mul(denom.Inv())

		if extra != 0 {
			sign := number.One()
			if extra%2 != 0 {
				sign = number.FromInt(-1)
			}
			shift := n * extra
			if shift >= order {
				break
			}
			ratio = ratio.Mul(series.Monomial(sign, shift, order))
		}

		ratio = ratio.Mul(series.Monomial(h.Argument.Coeff, h.Argument.Power, order))

		term = term.Mul(ratio)
		if term.IsZero() {
			break
		}
	}
	return result
}
