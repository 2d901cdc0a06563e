// Package prover proves nonterminating q-hypergeometric identities by the
// Chen-Hou-Mu parameter specialization method.
//
// Identities like q-Gauss or q-Kummer equate an infinite sum to an infinite
// product, which creative telescoping cannot attack directly. The method
// substitutes a parameter with q^{-n} to obtain a terminating family of
// identities, derives a recurrence for the left side with q-Zeilberger,
// checks that the right side satisfies the same recurrence, and compares
// initial conditions. Matching recurrences plus matching initial values
// prove the whole family, and the original identity follows in the limit.
package prover

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gerardgarvan/qKangaroo-sub000/cache"
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
	"github.com/gerardgarvan/qKangaroo-sub000/telescope"
)

// LHSBuilder returns, for a given n, the terminating hypergeometric series
// of the specialized left-hand side. The series must terminate (an upper
// parameter q^{-n} or similar).
type LHSBuilder func(n int64) qseries.Hypergeometric

// RHSBuilder returns, for a given n, the scalar value of the specialized
// right-hand side at the concrete q.
type RHSBuilder func(n int64) number.Rat

// Result is the outcome of a proof attempt.
type Result struct {
	// Proved is true when both sides satisfy the same recurrence with
	// matching initial conditions.
	Proved bool
	// Reason describes the failure when Proved is false.
	Reason string
	// Order is the shared recurrence order.
	Order int
	// Coefficients are the recurrence coefficients derived from the LHS at
	// the test index, normalized with the leading coefficient 1.
	Coefficients []number.Rat
	// InitialConditionsChecked is the number of initial values compared
	// (Order + 1).
	InitialConditionsChecked int
}

func failed(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Prover runs Chen-Hou-Mu proofs with shared search bounds, a sum cache,
// and an optional logger.
type Prover struct {
	opts telescope.Options
	log  zerolog.Logger
	sums *cache.SumCache
}

// New returns a Prover with the given search bounds and no logging.
func New(opts telescope.Options) *Prover {
	return &Prover{
		opts: opts,
		log:  zerolog.Nop(),
		sums: cache.New(256),
	}
}

// WithLogger returns a copy of the prover that logs progress to l.
func (p *Prover) WithLogger(l zerolog.Logger) *Prover {
	out := *p
	out.log = l
	return &out
}

// lhsSum evaluates the specialized LHS sum at n, memoized per (n, q).
func (p *Prover) lhsSum(lhs LHSBuilder, n int64, q number.Rat) number.Rat {
	if v, ok := p.sums.Get(n, q); ok {
		return v
	}
	v := telescope.Sum(lhs(n), q, p.opts)
	p.sums.Put(n, q, v)
	return v
}

// Prove attempts to prove LHS(n) = RHS(n) for all n >= 0 at concrete q.
//
// nTest is the index used to derive the recurrence; it should be large
// enough that the recurrence has stabilized (>= 5 in practice). The
// recurrence coefficients at concrete q are n-specific, so the RHS check
// re-derives the recurrence at each verification index rather than reusing
// the one from nTest.
func (p *Prover) Prove(lhs LHSBuilder, rhs RHSBuilder, q number.Rat, nTest int64) Result {
	hTest := lhs(nTest)
	if _, ok := hTest.TerminationOrder(); !ok {
		return failed("LHS at n_test is not terminating")
	}

	dep := telescope.DetectDependence(hTest, nTest, q)
	zr := telescope.QZeilberger(hTest, nTest, q, dep, p.opts)
	if zr == nil {
		return failed("q-Zeilberger found no recurrence for LHS up to order %d", p.opts.MaxOrder)
	}
	d := zr.Order
	p.log.Debug().Int("order", d).Int64("n_test", nTest).Msg("derived LHS recurrence")

	verifyAt := []int64{nTest}
	if nTest >= 2 {
		verifyAt = []int64{nTest - 2, nTest - 1, nTest}
	}

	for _, nv := range verifyAt {
		hNv := lhs(nv)
		if _, ok := hNv.TerminationOrder(); !ok {
			continue
		}
		depNv := telescope.DetectDependence(hNv, nv, q)
		zrNv := telescope.QZeilberger(hNv, nv, q, depNv, p.opts)
		if zrNv == nil {
			continue
		}

		rhsVals := make([]number.Rat, 0, zrNv.Order+1)
		for j := 0; j <= zrNv.Order; j++ {
			rhsVals = append(rhsVals, rhs(nv+int64(j)))
		}
		if !CheckRecurrenceOnValues(rhsVals, zrNv.Coefficients) {
			return failed("RHS does not satisfy LHS recurrence at n=%d", nv)
		}
		p.log.Debug().Int64("n", nv).Msg("RHS satisfies LHS recurrence")
	}

	for n := int64(0); n <= int64(d); n++ {
		lhsVal := p.lhsSum(lhs, n, q)
		if !lhsVal.Equal(rhs(n)) {
			return failed("Initial condition mismatch at n=%d", n)
		}
	}
	p.log.Debug().Int("checked", d+1).Msg("initial conditions verified")

	return Result{
		Proved:                   true,
		Order:                    d,
		Coefficients:             zr.Coefficients,
		InitialConditionsChecked: d + 1,
	}
}

// Prove is the one-shot entry point using default search bounds.
func Prove(lhs LHSBuilder, rhs RHSBuilder, q number.Rat, nTest int64) Result {
	return New(telescope.DefaultOptions()).Prove(lhs, rhs, q, nTest)
}

// CheckRecurrenceOnValues reports whether the scalar sequence values
// f(n)..f(n+d) satisfies c_0 f(n) + ... + c_d f(n+d) = 0. Panics when the
// slices differ in length.
func CheckRecurrenceOnValues(values, coefficients []number.Rat) bool {
	if len(values) != len(coefficients) {
		panic(fmt.Sprintf("prover: %d values against %d coefficients", len(values), len(coefficients)))
	}
	sum := number.Zero()
	for i, v := range values {
		sum = sum.Add(coefficients[i].Mul(v))
	}
	return sum.IsZero()
}

// CheckRecurrenceOnFPS reports whether the series sequence f(n)..f(n+d)
// satisfies c_0 f(n) + ... + c_d f(n+d) = 0 as formal power series. Panics
// when the slices differ in length.
func CheckRecurrenceOnFPS(values []*series.FPS, coefficients []number.Rat) bool {
	if len(values) != len(coefficients) {
		panic(fmt.Sprintf("prover: %d series against %d coefficients", len(values), len(coefficients)))
	}
	if len(values) == 0 {
		return true
	}
	acc := values[0].ScalarMul(coefficients[0])
	for i := 1; i < len(values); i++ {
		acc = acc.Add(values[i].ScalarMul(coefficients[i]))
	}
	return acc.IsZero()
}
