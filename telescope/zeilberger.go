package telescope

import (
	"github.com/gerardgarvan/qKangaroo-sub000/linalg"
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/poly"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
)

// ZeilbergerResult is a recurrence c_0 S(n) + ... + c_d S(n+d) = 0 for the
// definite sum S(n) = sum_k F(n,k), together with the WZ certificate R:
// G(n,k) = R(q^k) F(n,k) satisfies G(n,k+1) - G(n,k) = sum_j c_j F(n+j,k).
type ZeilbergerResult struct {
	Order        int
	Coefficients []number.Rat
	Certificate  poly.RatFunc
}

// QZeilberger runs creative telescoping at orders d = 1..opts.MaxOrder and
// returns the first recurrence found, or nil when none exists within the
// bound. The series must be terminating; dep tells the algorithm how F
// depends on n.
func QZeilberger(h qseries.Hypergeometric, n int64, q number.Rat, dep Dependence, opts Options) *ZeilbergerResult {
	// A nonterminating series has no dead zone, so the g_{maxk+1} = 0
	// boundary would merely truncate the sum at the search window and
	// certify a false recurrence.
	if _, ok := h.TerminationOrder(); !ok {
		return nil
	}
	for d := 1; d <= opts.MaxOrder; d++ {
		coeffs, cert, ok := tryCreativeTelescoping(h, q, d, dep, opts)
		if ok {
			return &ZeilbergerResult{Order: d, Coefficients: coeffs, Certificate: cert}
		}
	}
	return nil
}

// tryCreativeTelescoping attempts order d: it extracts the k-direction term
// ratios of F(n,k) and its shifts F(n+j,k), solves the telescoping system
// over concrete term values, and interpolates the certificate.
func tryCreativeTelescoping(h qseries.Hypergeometric, q number.Rat, d int, dep Dependence, opts Options) ([]number.Rat, poly.RatFunc, bool) {
	r0 := TermRatio(h, q)

	rShifted := make([]poly.RatFunc, d)
	for j := 1; j <= d; j++ {
		rShifted[j-1] = TermRatio(Shifted(h, int64(j), dep), q)
	}

	gnf := NormalForm(r0.Numer(), r0.Denom(), q)

	coeffs, gValues, ok := trySolveDirect(r0, rShifted, q, d, opts)
	if !ok {
		return nil, poly.RatFunc{}, false
	}

	cert := certificateFromG(gValues, r0, q, gnf)
	return coeffs, cert, true
}

// termTable computes F(k) = prod_{m<k} r(q^m) for k = 0..maxSearch. A pole
// in the ratio means a Pochhammer factor vanished; every later term is zero.
func termTable(r poly.RatFunc, q number.Rat, maxSearch int) []number.Rat {
	table := make([]number.Rat, 0, maxSearch+1)
	table = append(table, number.One())
	term := number.One()
	for k := 0; k < maxSearch; k++ {
		rv, ok := r.Eval(q.Pow(int64(k)))
		if !ok {
			term = number.Zero()
		} else {
			term = term.Mul(rv)
		}
		table = append(table, term)
	}
	return table
}

// trySolveDirect solves G(n,k+1) - G(n,k) = sum_{j=0}^{d} c_j F(n+j,k) with
// the normalization c_d = 1 and boundary conditions G(n,0) = 0 and
// G(n,maxk+1) = 0. The unknowns are g_1..g_maxk followed by c_0..c_{d-1}.
// Returns the coefficients c_0..c_d and the g values.
func trySolveDirect(r0 poly.RatFunc, rShifted []poly.RatFunc, q number.Rat, d int, opts Options) ([]number.Rat, []number.Rat, bool) {
	maxSearch := opts.MaxK

	fValues := make([][]number.Rat, 0, d+1)
	fValues = append(fValues, termTable(r0, q, maxSearch))
	for _, rj := range rShifted {
		fValues = append(fValues, termTable(rj, q, maxSearch))
	}

	lastNonzeroK := 0
	for k := 0; k <= maxSearch; k++ {
		for j := 0; j <= d; j++ {
			if k < len(fValues[j]) && !fValues[j][k].IsZero() && k > lastNonzeroK {
				lastNonzeroK = k
			}
		}
	}
	maxK := lastNonzeroK
	if maxK == 0 {
		return nil, nil, false
	}

	nG := maxK
	nUnknowns := nG + d
	nEquations := maxK + 1

	matrix := make([][]number.Rat, 0, nEquations)
	rhs := make([]number.Rat, 0, nEquations)

	fAt := func(j, k int) number.Rat {
		if k < len(fValues[j]) {
			return fValues[j][k]
		}
		return number.Zero()
	}

	for k := 0; k <= maxK; k++ {
		row := make([]number.Rat, nUnknowns)
		if k+1 <= maxK {
			row[k] = number.One() // g_{k+1}
		}
		if k >= 1 {
			row[k-1] = row[k-1].Sub(number.One()) // -g_k
		}
		for j := 0; j < d; j++ {
			row[nG+j] = fAt(j, k).Neg()
		}
		matrix = append(matrix, row)
		rhs = append(rhs, fAt(d, k))
	}

	sol := linalg.SolveLinearSystem(matrix, rhs)
	if sol == nil {
		return nil, nil, false
	}

	gValues := sol[:nG]
	coeffs := make([]number.Rat, 0, d+1)
	coeffs = append(coeffs, sol[nG:nG+d]...)
	coeffs = append(coeffs, number.One())

	allZero := true
	for _, c := range coeffs {
		if !c.IsZero() {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, nil, false
	}

	// Spot-check the first equations directly; the solver pins free
	// variables to zero, which must still satisfy the telescoping rows.
	checkUpTo := maxK
	if checkUpTo > 10 {
		checkUpTo = 10
	}
	for k := 0; k <= checkUpTo; k++ {
		gK := number.Zero()
		if k >= 1 && k <= nG {
			gK = gValues[k-1]
		}
		gK1 := number.Zero()
		if k+1 <= nG {
			gK1 = gValues[k]
		}
		lhs := gK1.Sub(gK)

		acc := number.Zero()
		for j := 0; j <= d; j++ {
			acc = acc.Add(coeffs[j].Mul(fAt(j, k)))
		}
		if !lhs.Equal(acc) {
			return nil, nil, false
		}
	}

	return coeffs, gValues, true
}

// certificateFromG reconstructs the certificate R = f/C as a rational
// function of x = q^k. R(q^k) = g_k / F(n,k), so f(q^k) = g_k C(q^k)/F(n,k);
// f is recovered by Lagrange interpolation through those points, seeded with
// the boundary f(q^0) = 0 from G(n,0) = 0.
func certificateFromG(gValues []number.Rat, r0 poly.RatFunc, q number.Rat, gnf GosperForm) poly.RatFunc {
	type point struct {
		x, y number.Rat
	}
	points := []point{{x: number.One(), y: number.Zero()}}

	fnK := number.One()
	for k := 1; k <= len(gValues); k++ {
		rv, ok := r0.Eval(q.Pow(int64(k - 1)))
		if ok {
			fnK = fnK.Mul(rv)
		}
		if fnK.IsZero() {
			break
		}
		qk := q.Pow(int64(k))
		fAtQk := gValues[k-1].Div(fnK).Mul(gnf.C.Eval(qk))
		points = append(points, point{x: qk, y: fAtQk})
	}

	f := poly.Zero()
	for i := range points {
		basis := poly.One()
		denom := number.One()
		for j := range points {
			if j == i {
				continue
			}
			basis = basis.Mul(poly.Linear(points[j].x.Neg(), number.One()))
			denom = denom.Mul(points[i].x.Sub(points[j].x))
		}
		f = f.Add(basis.ScalarMul(points[i].y.Div(denom)))
	}

	return poly.NewRatFunc(f, gnf.C)
}

// Sum evaluates S = sum_k F(k) at concrete q by term-ratio accumulation,
// stopping at termination (zero ratio or pole) or after opts.MaxTerms terms.
func Sum(h qseries.Hypergeometric, q number.Rat, opts Options) number.Rat {
	ratio := TermRatio(h, q)
	sum := number.One()
	term := number.One()
	for k := 0; k < opts.MaxTerms; k++ {
		rv, ok := ratio.Eval(q.Pow(int64(k)))
		if !ok || rv.IsZero() {
			break
		}
		term = term.Mul(rv)
		sum = sum.Add(term)
	}
	return sum
}
