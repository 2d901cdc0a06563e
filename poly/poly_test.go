package poly

import (
	"testing"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

func fromRoots(roots ...int64) Poly {
	p := One()
	for _, r := range roots {
		p = p.Mul(FromInt64s(-r, 1))
	}
	return p
}

func TestFromCoeffsStripsTrailingZeros(t *testing.T) {
	p := FromCoeffs(number.One(), number.Zero(), number.Zero())
	if p.Degree() != 0 {
		t.Fatalf("degree = %d, want 0", p.Degree())
	}
}

func TestAddSubMul(t *testing.T) {
	a := FromInt64s(1, 0, 1) // x^2 + 1
	b := FromInt64s(3, 2)    // 2x + 3

	if got := a.Add(b); !got.Equal(FromInt64s(4, 2, 1)) {
		t.Fatalf("add = %s", got)
	}
	if got := a.Sub(a); !got.IsZero() {
		t.Fatalf("a - a = %s, want 0", got)
	}
	// (x-1)(x+1) = x^2 - 1
	got := FromInt64s(-1, 1).Mul(FromInt64s(1, 1))
	if !got.Equal(FromInt64s(-1, 0, 1)) {
		t.Fatalf("mul = %s", got)
	}
}

func TestDivRem(t *testing.T) {
	// x^3 - 1 = (x - 1)(x^2 + x + 1)
	a := FromInt64s(-1, 0, 0, 1)
	b := FromInt64s(-1, 1)
	q, r := a.DivRem(b)
	if !r.IsZero() {
		t.Fatalf("remainder = %s, want 0", r)
	}
	if !q.Equal(FromInt64s(1, 1, 1)) {
		t.Fatalf("quotient = %s", q)
	}

	// x^2 + 1 = x * x + 1
	q, r = FromInt64s(1, 0, 1).DivRem(X())
	if !q.Equal(X()) || !r.Equal(One()) {
		t.Fatalf("q = %s, r = %s", q, r)
	}
}

func TestPseudoRem(t *testing.T) {
	// delta = 2, so lc(b)^2 * x^2 = 4x^2 = (2x-1)(2x+1) + 1: integral
	// remainder where the plain remainder would be 1/4.
	a := FromInt64s(0, 0, 1)
	b := FromInt64s(1, 2)
	if r := a.PseudoRem(b); !r.Equal(One()) {
		t.Fatalf("pseudo-remainder = %s, want 1", r)
	}

	// Lower degree passes through unscaled.
	if r := b.PseudoRem(a); !r.Equal(b) {
		t.Fatalf("pseudo-remainder = %s, want %s", r, b)
	}

	if r := Zero().PseudoRem(b); !r.IsZero() {
		t.Fatalf("pseudo-remainder of zero = %s, want 0", r)
	}
}

func TestEval(t *testing.T) {
	p := FromInt64s(2, -3, 1) // x^2 - 3x + 2 = (x-1)(x-2)
	if got := p.Eval(number.FromInt(1)); !got.IsZero() {
		t.Fatalf("p(1) = %s, want 0", got)
	}
	if got := p.Eval(number.FromInt(3)); !got.Equal(number.FromInt(2)) {
		t.Fatalf("p(3) = %s, want 2", got)
	}
	if got := p.Eval(number.New(1, 2)); !got.Equal(number.New(3, 4)) {
		t.Fatalf("p(1/2) = %s, want 3/4", got)
	}
}

func TestContentAndPrimitivePart(t *testing.T) {
	// 2x^2 + 4x + 6 has content 2
	p := FromInt64s(6, 4, 2)
	if got := p.Content(); !got.Equal(number.FromInt(2)) {
		t.Fatalf("content = %s, want 2", got)
	}
	if got := p.PrimitivePart(); !got.Equal(FromInt64s(3, 2, 1)) {
		t.Fatalf("primitive part = %s", got)
	}

	// (2/3)x + 4/3 has content 2/3
	p = FromCoeffs(number.New(4, 3), number.New(2, 3))
	if got := p.Content(); !got.Equal(number.New(2, 3)) {
		t.Fatalf("content = %s, want 2/3", got)
	}
}

func TestMonic(t *testing.T) {
	p := FromInt64s(6, 4, 2)
	m := p.Monic()
	if !m.LeadingCoeff().IsOne() {
		t.Fatalf("monic leading coeff = %s", m.LeadingCoeff())
	}
	if !m.Equal(FromInt64s(3, 2, 1)) {
		t.Fatalf("monic = %s", m)
	}
	if !Zero().Monic().IsZero() {
		t.Fatal("monic of zero should be zero")
	}
}

func TestQShift(t *testing.T) {
	q := number.New(1, 2)
	p := FromInt64s(1, 1, 1) // 1 + x + x^2

	// p(qx) = 1 + x/2 + x^2/4
	got := p.QShift(q)
	want := FromCoeffs(number.One(), number.New(1, 2), number.New(1, 4))
	if !got.Equal(want) {
		t.Fatalf("QShift = %s, want %s", got, want)
	}

	// Shifting by j then -j returns the original.
	round := p.QShiftN(q, 3).QShiftN(q, -3)
	if !round.Equal(p) {
		t.Fatalf("round trip = %s, want %s", round, p)
	}
}

func TestGCDCoprime(t *testing.T) {
	g := GCD(FromInt64s(-1, 1), FromInt64s(-2, 1))
	if !g.IsOne() {
		t.Fatalf("gcd(x-1, x-2) = %s, want 1", g)
	}
}

func TestGCDCommonFactor(t *testing.T) {
	a := fromRoots(1, 2)
	b := fromRoots(1, 3)
	g := GCD(a, b)
	if !g.Equal(FromInt64s(-1, 1)) {
		t.Fatalf("gcd = %s, want x - 1", g)
	}
}

func TestGCDSamePolynomial(t *testing.T) {
	p := FromInt64s(6, 4, 2)
	if g := GCD(p, p); !g.Equal(p.Monic()) {
		t.Fatalf("gcd(p, p) = %s", g)
	}
}

func TestGCDHighDegree(t *testing.T) {
	common := fromRoots(1, 2, 3)
	a := common.Mul(fromRoots(4, 5, 6, 7, 8, 9, 10))
	b := common.Mul(fromRoots(11, 12, 13, 14, 15, 16, 17))
	g := GCD(a, b)
	if g.Degree() != 3 {
		t.Fatalf("gcd degree = %d, want 3", g.Degree())
	}
	if !g.Equal(common.Monic()) {
		t.Fatalf("gcd = %s", g)
	}
}

func TestGCDZeroAndConstantCases(t *testing.T) {
	p := FromInt64s(-2, 3, 1)
	if g := GCD(Zero(), p); !g.Equal(p.Monic()) {
		t.Fatalf("gcd(0, p) = %s", g)
	}
	if g := GCD(p, Zero()); !g.Equal(p.Monic()) {
		t.Fatalf("gcd(p, 0) = %s", g)
	}
	if g := GCD(Constant(number.FromInt(6)), Constant(number.FromInt(4))); !g.IsOne() {
		t.Fatalf("gcd(6, 4) = %s, want 1", g)
	}
}

func TestResultant(t *testing.T) {
	// Common root => zero resultant.
	if r := Resultant(fromRoots(1, 2), fromRoots(1, 3)); !r.IsZero() {
		t.Fatalf("resultant = %s, want 0", r)
	}
	// res(x-3, x-5) = -2.
	if r := Resultant(FromInt64s(-3, 1), FromInt64s(-5, 1)); !r.Equal(number.FromInt(-2)) {
		t.Fatalf("resultant = %s, want -2", r)
	}
	// res(x+1, 3) = 3.
	if r := Resultant(FromInt64s(1, 1), Constant(number.FromInt(3))); !r.Equal(number.FromInt(3)) {
		t.Fatalf("resultant = %s, want 3", r)
	}
	if r := Resultant(FromInt64s(1, 1), Zero()); !r.IsZero() {
		t.Fatalf("resultant with zero = %s", r)
	}
}

func TestRatFuncReduction(t *testing.T) {
	// (x^2 - 1)/(x - 1) reduces to x + 1.
	r := NewRatFunc(FromInt64s(-1, 0, 1), FromInt64s(-1, 1))
	if !r.Numer().Equal(FromInt64s(1, 1)) || !r.Denom().IsOne() {
		t.Fatalf("reduced = %s", r)
	}
	if !r.IsPolynomial() {
		t.Fatal("should be polynomial after reduction")
	}
}

func TestRatFuncMonicDenominator(t *testing.T) {
	// 1/(2x - 2) normalizes to (1/2)/(x - 1).
	r := NewRatFunc(One(), FromInt64s(-2, 2))
	if !r.Denom().LeadingCoeff().IsOne() {
		t.Fatalf("denominator not monic: %s", r.Denom())
	}
	if !r.Numer().Equal(Constant(number.New(1, 2))) {
		t.Fatalf("numer = %s, want 1/2", r.Numer())
	}
}

func TestRatFuncArithmetic(t *testing.T) {
	// 1/(x-1) + 1/(x+1) = 2x/(x^2-1)
	a := NewRatFunc(One(), FromInt64s(-1, 1))
	b := NewRatFunc(One(), FromInt64s(1, 1))
	sum := a.Add(b)
	want := NewRatFunc(FromInt64s(0, 2), FromInt64s(-1, 0, 1))
	if !sum.Equal(want) {
		t.Fatalf("sum = %s, want %s", sum, want)
	}

	// a * (1/a) = 1
	if got := a.Mul(RFOne().Div(a)); !got.Equal(RFOne()) {
		t.Fatalf("a * a^-1 = %s", got)
	}

	// a - a = 0
	if got := a.Sub(a); !got.IsZero() {
		t.Fatalf("a - a = %s", got)
	}
}

func TestRatFuncEvalPole(t *testing.T) {
	r := NewRatFunc(One(), FromInt64s(-1, 1)) // 1/(x-1)
	if _, ok := r.Eval(number.FromInt(1)); ok {
		t.Fatal("expected pole at x = 1")
	}
	v, ok := r.Eval(number.FromInt(3))
	if !ok || !v.Equal(number.New(1, 2)) {
		t.Fatalf("eval = %s, %v; want 1/2", v, ok)
	}
}

func TestRatFuncQShiftRoundTrip(t *testing.T) {
	q := number.New(1, 3)
	r := NewRatFunc(FromInt64s(1, 2), FromInt64s(-1, 0, 1))
	round := r.QShiftN(q, 2).QShiftN(q, -2)
	if !round.Equal(r) {
		t.Fatalf("round trip = %s, want %s", round, r)
	}
}

func TestPolyString(t *testing.T) {
	p := FromCoeffs(number.New(1, 2), number.FromInt(-3), number.One())
	if got := p.String(); got != "x^2 - 3*x + 1/2" {
		t.Fatalf("String = %q", got)
	}
	if got := Zero().String(); got != "0" {
		t.Fatalf("zero String = %q", got)
	}
}
