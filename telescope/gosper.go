package telescope

import (
	"github.com/gerardgarvan/qKangaroo-sub000/linalg"
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/poly"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
)

// TermRatio extracts t_{k+1}/t_k of a hypergeometric series as a rational
// function of x = q^k. For _r phi_s (a_1..a_r; b_1..b_s; q, z):
//
//	t_{k+1}/t_k = prod_i (1 - a_i x) / [(1 - q x) prod_j (1 - b_j x)]
//	              * (-1)^e x^e z      with e = 1 + s - r
//
// where the parameters and z are evaluated at the concrete q.
func TermRatio(h qseries.Hypergeometric, q number.Rat) poly.RatFunc {
	numer := poly.One()
	for _, a := range h.Upper {
		numer = numer.Mul(poly.Linear(number.One(), a.Value(q).Neg()))
	}

	denom := poly.Linear(number.One(), q.Neg())
	for _, b := range h.Lower {
		denom = denom.Mul(poly.Linear(number.One(), b.Value(q).Neg()))
	}

	extra := int64(1 + h.S() - h.R())
	z := h.Argument.Value(q)
	coeff := z
	if extra%2 != 0 {
		coeff = coeff.Neg()
	}

	if extra >= 0 {
		numer = numer.Mul(poly.Monomial(coeff, int(extra)))
	} else {
		denom = denom.Mul(poly.Monomial(number.One(), int(-extra)))
		numer = numer.ScalarMul(coeff)
	}

	return poly.NewRatFunc(numer, denom)
}

// QDispersion returns all j >= 0 with deg gcd(a(x), b(q^j x)) >= 1, in
// increasing order. The search is bounded by deg(a)*deg(b), which resultant
// theory guarantees covers every root-pair shift.
func QDispersion(a, b poly.Poly, q number.Rat) []int64 {
	return dispersionFrom(a, b, q, 0)
}

func dispersionFrom(a, b poly.Poly, q number.Rat, start int64) []int64 {
	degA := a.Degree()
	degB := b.Degree()
	if degA < 1 || degB < 1 {
		return nil
	}
	jMax := int64(degA) * int64(degB)
	var out []int64
	for j := start; j <= jMax; j++ {
		g := poly.GCD(a, b.QShiftN(q, j))
		if g.Degree() >= 1 {
			out = append(out, j)
		}
	}
	return out
}

// GosperForm is the normal-form decomposition of a term ratio:
// r(x) = Sigma(x)/Tau(x) * C(qx)/C(x) with gcd(Sigma(x), Tau(q^j x)) = 1
// for every j >= 1.
type GosperForm struct {
	Sigma poly.Poly
	Tau   poly.Poly
	C     poly.Poly
}

// NormalForm decomposes numer/denom into Gosper normal form by repeatedly
// stripping the largest dispersion shift: the shared factor g moves out of
// sigma and tau and its back-shifts g(q^{-1}x)..g(q^{-jmax}x) accumulate
// into C.
func NormalForm(numer, denom poly.Poly, q number.Rat) GosperForm {
	sigma := numer
	tau := denom
	c := poly.One()

	for {
		disp := dispersionFrom(sigma, tau, q, 1)
		if len(disp) == 0 {
			break
		}
		jMax := disp[len(disp)-1]

		g := poly.GCD(sigma, tau.QShiftN(q, jMax)).Monic()
		if g.IsConstant() {
			break
		}

		sigma = sigma.ExactDiv(g)
		tau = tau.ExactDiv(g.QShiftN(q, -jMax))
		for i := int64(1); i <= jMax; i++ {
			c = c.Mul(g.QShiftN(q, -i))
		}
	}

	return GosperForm{Sigma: sigma, Tau: tau, C: c}
}

// SolveKeyEquation finds a polynomial f with
//
//	sigma(x) f(qx) - tau(x) f(x) = rhs(x)
//
// or reports that none exists. The candidate degrees for f come from
// comparing leading terms; when deg sigma == deg tau the leading terms can
// cancel and the q-power matching deg is searched directly.
func SolveKeyEquation(sigma, tau, rhs poly.Poly, q number.Rat) (poly.Poly, bool) {
	if rhs.IsZero() {
		return poly.Zero(), true
	}
	dRHS := rhs.Degree()

	sigmaZero := sigma.IsZero()
	tauZero := tau.IsZero()

	if sigmaZero && tauZero {
		return poly.Poly{}, false
	}
	if sigmaZero {
		// -tau(x) f(x) = rhs(x)
		quo, rem := rhs.Neg().DivRem(tau)
		if rem.IsZero() {
			return quo, true
		}
		return poly.Poly{}, false
	}
	if tauZero {
		// sigma(x) f(qx) = rhs(x)
		dSigma := sigma.Degree()
		if dRHS < dSigma {
			return poly.Poly{}, false
		}
		return trySolveWithDegree(sigma, tau, rhs, q, dRHS-dSigma)
	}

	for _, degF := range degreeCandidates(sigma, tau, q, dRHS) {
		if f, ok := trySolveWithDegree(sigma, tau, rhs, q, degF); ok {
			return f, true
		}
	}
	return poly.Poly{}, false
}

func degreeCandidates(sigma, tau poly.Poly, q number.Rat, dRHS int) []int {
	dSigma := sigma.Degree()
	dTau := tau.Degree()
	var candidates []int

	push := func(d int) {
		for _, c := range candidates {
			if c == d {
				return
			}
		}
		candidates = append(candidates, d)
	}

	if dSigma != dTau {
		maxST := dSigma
		if dTau > maxST {
			maxST = dTau
		}
		if dRHS >= maxST {
			push(dRHS - maxST)
		}
		if dRHS+1 >= maxST {
			push(dRHS - maxST + 1)
		}
		return candidates
	}

	// Equal degrees: the leading terms sigma_d q^{deg f} - tau_d may cancel,
	// so look for the degree where q^d equals lc(tau)/lc(sigma).
	ratio := tau.LeadingCoeff().Div(sigma.LeadingCoeff())
	found := false
	for d := 0; d <= dRHS; d++ {
		if q.Pow(int64(d)).Equal(ratio) {
			push(d)
			found = true
			break
		}
	}
	if !found || dRHS >= dSigma {
		fallback := 0
		if dRHS >= dSigma {
			fallback = dRHS - dSigma
		}
		push(fallback)
	}
	for _, d := range append([]int(nil), candidates...) {
		push(d + 1)
	}
	return candidates
}

// trySolveWithDegree sets up the linear system for f of the given degree and
// solves it coefficient-wise. Row k matches the x^k coefficient of
// sigma(x)f(qx) - tau(x)f(x) against rhs.
func trySolveWithDegree(sigma, tau, rhs poly.Poly, q number.Rat, degF int) (poly.Poly, bool) {
	dSigma := sigma.Degree()
	if dSigma < 0 {
		dSigma = 0
	}
	dTau := tau.Degree()
	if dTau < 0 {
		dTau = 0
	}
	dRHS := rhs.Degree()
	if dRHS < 0 {
		dRHS = 0
	}

	nUnknowns := degF + 1
	maxLHS := dSigma
	if dTau > maxLHS {
		maxLHS = dTau
	}
	maxLHS += degF
	nEquations := maxLHS
	if dRHS > nEquations {
		nEquations = dRHS
	}
	nEquations++

	qPowers := make([]number.Rat, nUnknowns)
	for j := range qPowers {
		qPowers[j] = q.Pow(int64(j))
	}

	matrix := make([][]number.Rat, nEquations)
	rhsVec := make([]number.Rat, nEquations)
	for k := 0; k < nEquations; k++ {
		row := make([]number.Rat, nUnknowns)
		for j := 0; j <= degF && j <= k; j++ {
			row[j] = sigma.Coeff(k - j).Mul(qPowers[j]).Sub(tau.Coeff(k - j))
		}
		matrix[k] = row
		rhsVec[k] = rhs.Coeff(k)
	}

	sol := linalg.SolveLinearSystem(matrix, rhsVec)
	if sol == nil {
		return poly.Poly{}, false
	}
	return poly.FromCoeffs(sol...), true
}

// GosperResult reports whether a term has a q-hypergeometric
// antidifference. When Summable, Certificate is the rational function y
// with S_k = y(q^k) t_k, i.e. y(qx) r(x) - y(x) = 1.
type GosperResult struct {
	Summable    bool
	Certificate poly.RatFunc
}

// QGosper decides indefinite q-hypergeometric summability of the term of h
// at concrete q. It decomposes the term ratio into normal form, solves the
// key equation sigma(x)f(qx) - tau(x)f(x) = tau(x)C(x), and checks the
// resulting certificate f/C against the telescoping identity before
// reporting success.
func QGosper(h qseries.Hypergeometric, q number.Rat) GosperResult {
	r := TermRatio(h, q)
	gnf := NormalForm(r.Numer(), r.Denom(), q)

	f, ok := SolveKeyEquation(gnf.Sigma, gnf.Tau, gnf.Tau.Mul(gnf.C), q)
	if !ok {
		return GosperResult{}
	}

	cert := poly.NewRatFunc(f, gnf.C)
	check := cert.QShift(q).Mul(r).Sub(cert)
	if !check.Equal(poly.RFOne()) {
		return GosperResult{}
	}
	return GosperResult{Summable: true, Certificate: cert}
}
