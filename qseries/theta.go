package qseries

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// q2q2Inf computes (q^2;q^2)_inf, shared by theta3 and theta4.
func q2q2Inf(order int64) *series.FPS {
	return stepProd(number.One(), 2, 2, order)
}

// Theta3 computes theta3(q) = sum_{n} q^{n^2} via its product form
// (q^2;q^2)_inf * (-q;q^2)_inf^2. Nonzero coefficients sit at perfect
// squares, each equal to 2 apart from the constant term.
func Theta3(order int64) *series.FPS {
	odd := stepProd(number.FromInt(-1), 1, 2, order) // prod (1 + q^{2n+1})
	return q2q2Inf(order).Mul(odd).Mul(odd)
}

// Theta4 computes theta4(q) = sum_{n} (-1)^n q^{n^2} via
// (q^2;q^2)_inf * (q;q^2)_inf^2.
func Theta4(order int64) *series.FPS {
	odd := stepProd(number.One(), 1, 2, order) // prod (1 - q^{2n+1})
	return q2q2Inf(order).Mul(odd).Mul(odd)
}

// Theta2 computes theta2 as a series in X = q^{1/4}:
//
//	theta2 = 2X * prod_{n>=1}(1 - X^{8n})(1 + X^{8n})^2
//
// The caller reads exponent e as q^{e/4}. Nonzero coefficients sit at
// odd perfect squares, each equal to 2.
func Theta2(order int64) *series.FPS {
	f1 := stepProd(number.One(), 8, 8, order)
	f2 := stepProd(number.FromInt(-1), 8, 8, order) // prod (1 + X^{8n})
	prod := f1.Mul(f2).Mul(f2)
	return series.Monomial(number.FromInt(2), 1, order).Mul(prod)
}
