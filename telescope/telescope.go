// Package telescope implements creative telescoping for q-hypergeometric
// sums at concrete rational q: the q-Gosper algorithm for indefinite
// summation, the q-Zeilberger algorithm for deriving linear recurrences of
// definite sums, independent WZ certificate verification, and the
// q-Petkovsek solver for the resulting constant-coefficient recurrences.
//
// Everything works over exact rationals. The variable throughout is
// x = q^k, so shifting k by one becomes the substitution x -> q*x.
package telescope

import (
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
)

// Options bounds the searches performed by the algorithms in this package.
type Options struct {
	// MaxOrder is the largest recurrence order QZeilberger attempts.
	MaxOrder int
	// MaxK is the window of k values scanned for nonzero terms when
	// setting up the telescoping system.
	MaxK int
	// MaxTerms caps direct term accumulation in Sum.
	MaxTerms int
	// RootCap aborts the q-Petkovsek rational-root enumeration when the
	// divisor candidate product exceeds it.
	RootCap int
}

// DefaultOptions returns the bounds used throughout the original search
// routines.
func DefaultOptions() Options {
	return Options{
		MaxOrder: 5,
		MaxK:     50,
		MaxTerms: 100,
		RootCap:  5000,
	}
}

// Dependence records how a hypergeometric term F(n,k) depends on the outer
// index n: which upper parameters carry a q^{-n} specialization, and whether
// the argument z is a function of n. Callers who know the structure of
// their sum supply this directly; DetectDependence covers the standard
// shapes.
type Dependence struct {
	// UpperIndices lists positions in Upper whose parameter shifts with n.
	UpperIndices []int
	// InArgument is true when the argument z carries a factor q^n.
	InArgument bool
}

// DetectDependence guesses the n-dependence of a series at a concrete
// n value. An upper parameter is flagged when it evaluates to exactly
// q^{-n}; the argument is flagged when bumping its power changes its value
// and the power is nonzero. This covers q-Vandermonde-style sums; unusual
// parameterizations should construct a Dependence by hand.
func DetectDependence(h qseries.Hypergeometric, n int64, q number.Rat) Dependence {
	qNegN := q.Pow(-n)
	var dep Dependence
	for i, a := range h.Upper {
		if a.Value(q).Equal(qNegN) {
			dep.UpperIndices = append(dep.UpperIndices, i)
		}
	}
	zAtN := h.Argument.Value(q)
	bumped := qseries.Monomial{Coeff: h.Argument.Coeff, Power: h.Argument.Power + 1}
	dep.InArgument = !zAtN.Equal(bumped.Value(q)) && h.Argument.Power != 0
	return dep
}

// Shifted builds the series for n+j from the series at n: each n-dependent
// upper parameter q^{-n} becomes q^{-(n+j)}, and an n-dependent argument
// gains a factor q^j.
func Shifted(h qseries.Hypergeometric, j int64, dep Dependence) qseries.Hypergeometric {
	out := qseries.Hypergeometric{
		Upper:    append([]qseries.Monomial(nil), h.Upper...),
		Lower:    append([]qseries.Monomial(nil), h.Lower...),
		Argument: h.Argument,
	}
	for _, idx := range dep.UpperIndices {
		if idx < len(out.Upper) {
			out.Upper[idx] = qseries.Monomial{
				Coeff: out.Upper[idx].Coeff,
				Power: out.Upper[idx].Power - j,
			}
		}
	}
	if dep.InArgument {
		out.Argument = qseries.Monomial{
			Coeff: out.Argument.Coeff,
			Power: out.Argument.Power + j,
		}
	}
	return out
}
