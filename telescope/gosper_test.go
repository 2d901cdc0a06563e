package telescope

import (
	"testing"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/poly"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
)

func TestTermRatio2Phi1(t *testing.T) {
	// _2phi1(q^{-2}, q^2; q^3; q, q) at q=2:
	// numer = 2*(1 - x/4)(1 - 4x), denom = (1 - 2x)(1 - 8x)
	h := qseries.Hypergeometric{
		Upper:    []qseries.Monomial{qseries.QPower(-2), qseries.QPower(2)},
		Lower:    []qseries.Monomial{qseries.QPower(3)},
		Argument: qseries.QPower(1),
	}
	ratio := TermRatio(h, number.FromInt(2))

	val, ok := ratio.Eval(number.New(1, 10))
	if !ok {
		t.Fatal("unexpected pole at x=1/10")
	}
	if !val.Equal(number.New(117, 16)) {
		t.Fatalf("ratio(1/10) = %v, want 117/16", val)
	}
	if ratio.Numer().Degree() != 2 || ratio.Denom().Degree() != 2 {
		t.Fatalf("degrees = %d/%d, want 2/2", ratio.Numer().Degree(), ratio.Denom().Degree())
	}
}

func TestTermRatioNegativeExtra(t *testing.T) {
	// _3phi1 has e = 1+1-3 = -1: the x^|e| factor lands in the denominator
	// and the sign/argument scale the numerator.
	h := qseries.Hypergeometric{
		Upper:    []qseries.Monomial{qseries.QPower(-1), qseries.QPower(2), qseries.QPower(4)},
		Lower:    []qseries.Monomial{qseries.QPower(3)},
		Argument: qseries.QPower(1),
	}
	q := number.FromInt(2)
	ratio := TermRatio(h, q)
	if ratio.Denom().Degree() != 3 {
		t.Fatalf("denom degree = %d, want 3", ratio.Denom().Degree())
	}

	// Direct check at x = 3:
	// numer(3) = (1 - 3/2)(1 - 12)(1 - 48) * (-1) * 2 = 517
	// denom(3) = (1 - 6)(1 - 24) * 3 = 345
	val, ok := ratio.Eval(number.FromInt(3))
	if !ok {
		t.Fatal("unexpected pole at x=3")
	}
	if !val.Equal(number.New(517, 345)) {
		t.Fatalf("ratio(3) = %v, want 517/345", val)
	}
}

func TestQDispersion(t *testing.T) {
	// a = (x-1)(x-3), b = (x-4)(x-5), q = 2.
	// b(q^j x) shares the root 1 of a exactly when 2^j * 1 = 4, i.e. j = 2.
	q := number.FromInt(2)
	a := poly.Linear(number.FromInt(-1), number.One()).Mul(poly.Linear(number.FromInt(-3), number.One()))
	b := poly.Linear(number.FromInt(-4), number.One()).Mul(poly.Linear(number.FromInt(-5), number.One()))

	disp := QDispersion(a, b, q)
	if len(disp) != 1 || disp[0] != 2 {
		t.Fatalf("dispersion = %v, want [2]", disp)
	}
}

func TestQDispersionEmpty(t *testing.T) {
	q := number.FromInt(2)
	a := poly.Linear(number.FromInt(-1), number.One())
	b := poly.Linear(number.FromInt(-7), number.One())
	if disp := QDispersion(a, b, q); disp != nil {
		t.Fatalf("dispersion = %v, want empty", disp)
	}
	if disp := QDispersion(a, poly.Constant(number.FromInt(5)), q); disp != nil {
		t.Fatalf("dispersion against constant = %v, want empty", disp)
	}
}

func TestQDispersionSelfContainsZero(t *testing.T) {
	// At j = 0 a polynomial always shares all its roots with itself.
	q := number.New(1, 2)
	a := poly.Linear(number.One(), number.New(-1, 1))
	disp := QDispersion(a, a, q)
	if len(disp) != 1 || disp[0] != 0 {
		t.Fatalf("self dispersion = %v, want [0]", disp)
	}
}

func TestQDispersionDegenerateBaseOne(t *testing.T) {
	// At q = 1 shifting does nothing, so a shared root persists at every
	// j and the set is the full search range 0..deg(a)*deg(b).
	q := number.One()
	a := poly.Linear(number.One(), number.New(-1, 1)).
		Mul(poly.Linear(number.One(), number.FromInt(-2)))
	disp := QDispersion(a, a, q)
	want := []int64{0, 1, 2, 3, 4}
	if len(disp) != len(want) {
		t.Fatalf("dispersion = %v, want %v", disp, want)
	}
	for i, j := range want {
		if disp[i] != j {
			t.Fatalf("dispersion = %v, want %v", disp, want)
		}
	}
}

func TestNormalFormReconstruction(t *testing.T) {
	// numer/denom = (1-qx)/(1-x) = c(qx)/c(x) for c = x-1 up to scale, so
	// the decomposition should push the whole ratio into C.
	q := number.New(1, 2)
	numer := poly.Linear(number.One(), q.Neg())
	denom := poly.Linear(number.One(), number.FromInt(-1))

	gnf := NormalForm(numer, denom, q)

	if !gnf.Sigma.IsConstant() || !gnf.Tau.IsConstant() {
		t.Fatalf("sigma = %v, tau = %v, want both constant", gnf.Sigma, gnf.Tau)
	}
	if gnf.C.Degree() != 1 {
		t.Fatalf("C degree = %d, want 1", gnf.C.Degree())
	}
	if !gnf.C.Eval(number.One()).IsZero() {
		t.Fatalf("C(1) = %v, want 0", gnf.C.Eval(number.One()))
	}

	lhs := poly.NewRatFunc(gnf.Sigma.Mul(gnf.C.QShift(q)), gnf.Tau.Mul(gnf.C))
	rhs := poly.NewRatFunc(numer, denom)
	if !lhs.Equal(rhs) {
		t.Fatalf("sigma/tau * C(qx)/C(x) = %v, want %v", lhs, rhs)
	}
}

func TestNormalFormCoprimeInput(t *testing.T) {
	// No positive-shift common factors: decomposition is the identity.
	q := number.New(1, 3)
	numer := poly.Linear(number.One(), number.FromInt(-2))
	denom := poly.Linear(number.One(), number.FromInt(-7))

	gnf := NormalForm(numer, denom, q)
	if !gnf.Sigma.Equal(numer) || !gnf.Tau.Equal(denom) || !gnf.C.IsOne() {
		t.Fatalf("decomposition changed a coprime input: %v / %v / %v", gnf.Sigma, gnf.Tau, gnf.C)
	}
}

func TestSolveKeyEquationConstant(t *testing.T) {
	// 2*f(qx) - f(x) = 1 has the constant solution f = 1.
	sigma := poly.Constant(number.FromInt(2))
	tau := poly.One()
	f, ok := SolveKeyEquation(sigma, tau, poly.One(), number.New(1, 3))
	if !ok {
		t.Fatal("expected a solution")
	}
	if !f.Equal(poly.One()) {
		t.Fatalf("f = %v, want 1", f)
	}
}

func TestSolveKeyEquationNoSolution(t *testing.T) {
	// f(qx) - f(x) = 1 has no polynomial solution for q != 1: the constant
	// terms always cancel.
	sigma := poly.One()
	tau := poly.One()
	if _, ok := SolveKeyEquation(sigma, tau, poly.One(), number.New(1, 3)); ok {
		t.Fatal("expected no solution")
	}
}

func TestSolveKeyEquationZeroRHS(t *testing.T) {
	f, ok := SolveKeyEquation(poly.One(), poly.One(), poly.Zero(), number.New(1, 3))
	if !ok || !f.IsZero() {
		t.Fatalf("f = %v ok = %v, want zero polynomial", f, ok)
	}
}

func TestSolveKeyEquationLinear(t *testing.T) {
	// Verify a solved f by substituting back: sigma f(qx) - tau f(x) = rhs.
	q := number.New(1, 2)
	sigma := poly.Linear(number.One(), number.FromInt(3))
	tau := poly.Linear(number.FromInt(2), number.FromInt(-1))
	fWant := poly.Linear(number.FromInt(1), number.FromInt(4))
	rhs := sigma.Mul(fWant.QShift(q)).Sub(tau.Mul(fWant))

	f, ok := SolveKeyEquation(sigma, tau, rhs, q)
	if !ok {
		t.Fatal("expected a solution")
	}
	check := sigma.Mul(f.QShift(q)).Sub(tau.Mul(f))
	if !check.Equal(rhs) {
		t.Fatalf("substituted f does not satisfy the equation: got %v, want %v", check, rhs)
	}
}

func TestQGosperGeometric(t *testing.T) {
	// Upper parameter q cancels the (1-qx) factor, leaving the constant
	// ratio z = 2: the geometric sum, summable with constant certificate
	// 1/(z-1) = 1.
	h := qseries.Hypergeometric{
		Upper:    []qseries.Monomial{qseries.QPower(1)},
		Argument: qseries.ConstMono(number.FromInt(2)),
	}
	res := QGosper(h, number.New(1, 3))
	if !res.Summable {
		t.Fatal("geometric term should be summable")
	}
	if !res.Certificate.Equal(poly.RFOne()) {
		t.Fatalf("certificate = %v, want 1", res.Certificate)
	}
}

func TestQGosperNotSummable(t *testing.T) {
	// Ratio identically 1: t_k = 1, whose antidifference k is not
	// q-hypergeometric.
	h := qseries.Hypergeometric{
		Upper:    []qseries.Monomial{qseries.QPower(1)},
		Argument: qseries.ConstMono(number.One()),
	}
	res := QGosper(h, number.New(1, 3))
	if res.Summable {
		t.Fatal("constant term must not be summable")
	}
}

func TestQGosperCertificateIdentity(t *testing.T) {
	// Whenever QGosper reports Summable, the certificate must satisfy
	// y(qx) r(x) - y(x) = 1 exactly.
	h := qseries.Hypergeometric{
		Upper:    []qseries.Monomial{qseries.QPower(1)},
		Argument: qseries.ConstMono(number.New(2, 5)),
	}
	q := number.New(1, 3)
	res := QGosper(h, q)
	if !res.Summable {
		t.Fatal("expected summable")
	}
	r := TermRatio(h, q)
	ident := res.Certificate.QShift(q).Mul(r).Sub(res.Certificate)
	if !ident.Equal(poly.RFOne()) {
		t.Fatalf("y(qx) r(x) - y(x) = %v, want 1", ident)
	}
}
