package qseries

import (
	"fmt"

	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// Sift extracts the arithmetic progression m*i + j from f: the result
// has coefficient [q^i] equal to [q^{m*i+j}] of f. The residue j is
// reduced into [0, m). Panics if m <= 0.
func Sift(f *series.FPS, m, j int64) *series.FPS {
	if m <= 0 {
		panic(fmt.Sprintf("qseries: sift modulus must be positive, got %d", m))
	}
	j = ((j % m) + m) % m

	var newOrder int64
	if j < f.Order() {
		newOrder = (f.Order()-j-1)/m + 1
	}
	out := series.Zero(newOrder)
	for i := int64(0); i < newOrder; i++ {
		src := m*i + j
		if src >= f.Order() {
			break
		}
		if c := f.Coeff(src); !c.IsZero() {
			out = out.Add(series.Monomial(c, i, newOrder))
		}
	}
	return out
}

// QDegree returns the highest exponent carrying a nonzero coefficient.
// The second return is false for the zero series.
func QDegree(f *series.FPS) (int64, bool) {
	exps := f.Exponents()
	if len(exps) == 0 {
		return 0, false
	}
	return exps[len(exps)-1], true
}

// LQDegree returns the lowest exponent carrying a nonzero coefficient,
// the valuation of the series. The second return is false for the zero
// series.
func LQDegree(f *series.FPS) (int64, bool) {
	return f.MinExp()
}
