package qseries

import (
	"math/big"
	"testing"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

func TestAQProdFinite(t *testing.T) {
	// (q;q)_2 = (1-q)(1-q^2) = 1 - q - q^2 + q^3
	got := AQProd(QPower(1), Finite(2), 10)
	want := series.FromCoeffs(10,
		number.One(), number.FromInt(-1), number.FromInt(-1), number.One())
	if !got.Equal(want) {
		t.Fatalf("(q;q)_2 = %s, want %s", got, want)
	}
}

func TestAQProdZeroOrder(t *testing.T) {
	if got := AQProd(QPower(3), Finite(0), 5); !got.Equal(series.One(5)) {
		t.Fatalf("(a;q)_0 = %s, want 1", got)
	}
}

func TestAQProdVanishing(t *testing.T) {
	// (1;q)_n = 0 for n >= 1 since the first factor is 1-1.
	if got := AQProd(QPower(0), Finite(3), 5); !got.IsZero() {
		t.Fatalf("(1;q)_3 = %s, want 0", got)
	}
	if got := AQProd(QPower(0), Infinite(), 5); !got.IsZero() {
		t.Fatalf("(1;q)_inf = %s, want 0", got)
	}
}

func TestAQProdNegativeOrder(t *testing.T) {
	// (a;q)_{-n} * (a*q^{-n};q)_n = 1
	a := Monomial{Coeff: number.New(1, 2), Power: 2}
	neg := AQProd(a, Finite(-2), 12)
	shifted := Monomial{Coeff: a.Coeff, Power: a.Power - 2}
	pos := AQProd(shifted, Finite(2), 12)
	if got := neg.Mul(pos); !got.Equal(series.One(12)) {
		t.Fatalf("(a;q)_{-2} * (a q^{-2};q)_2 = %s, want 1", got)
	}
}

func TestEulerProdPentagonal(t *testing.T) {
	// (q;q)_inf = 1 - q - q^2 + q^5 + q^7 - q^12 - ...
	e := EulerProd(15)
	wantSign := map[int64]int64{0: 1, 1: -1, 2: -1, 5: 1, 7: 1, 12: -1}
	for k := int64(0); k < 15; k++ {
		want := number.FromInt(wantSign[k])
		if !e.Coeff(k).Equal(want) {
			t.Fatalf("coeff %d = %s, want %s", k, e.Coeff(k), want)
		}
	}
}

func TestQBin(t *testing.T) {
	// [4 choose 2]_q = 1 + q + 2q^2 + q^3 + q^4
	got := QBin(4, 2, 10)
	want := series.FromCoeffs(10,
		number.One(), number.One(), number.FromInt(2), number.One(), number.One())
	if !got.Equal(want) {
		t.Fatalf("[4 2]_q = %s, want %s", got, want)
	}
	if !QBin(5, 0, 10).Equal(series.One(10)) {
		t.Fatal("[5 0]_q should be 1")
	}
	if !QBin(3, 5, 10).IsZero() {
		t.Fatal("[3 5]_q should be 0")
	}
	// Symmetry [n k] = [n n-k]
	if !QBin(6, 2, 20).Equal(QBin(6, 4, 20)) {
		t.Fatal("q-binomial symmetry violated")
	}
}

func TestEtaQMatchesEuler(t *testing.T) {
	if !EtaQ(1, 1, 20).Equal(EulerProd(20)) {
		t.Fatal("etaq(1,1) should equal (q;q)_inf")
	}
	if !EtaQ(0, 2, 10).IsZero() {
		t.Fatal("etaq with b=0 should vanish")
	}
}

func TestJacProdViaTriple(t *testing.T) {
	// JAC(1,3) = (q;q^3)(q^2;q^3)(q^3;q^3) = (q;q)_inf by sorting residues.
	if !JacProd(1, 3, 20).Equal(EulerProd(20)) {
		t.Fatal("JAC(1,3) should equal the Euler product")
	}
}

func TestTheta3(t *testing.T) {
	// theta3 = 1 + 2q + 2q^4 + 2q^9 + ...
	th := Theta3(16)
	for k := int64(0); k < 16; k++ {
		want := number.Zero()
		switch k {
		case 0:
			want = number.One()
		case 1, 4, 9:
			want = number.FromInt(2)
		}
		if !th.Coeff(k).Equal(want) {
			t.Fatalf("theta3 coeff %d = %s, want %s", k, th.Coeff(k), want)
		}
	}
}

func TestTheta4(t *testing.T) {
	// theta4 = 1 - 2q + 2q^4 - 2q^9 + ...
	th := Theta4(16)
	wants := map[int64]int64{0: 1, 1: -2, 4: 2, 9: -2}
	for k := int64(0); k < 16; k++ {
		if !th.Coeff(k).Equal(number.FromInt(wants[k])) {
			t.Fatalf("theta4 coeff %d = %s, want %d", k, th.Coeff(k), wants[k])
		}
	}
}

func TestTheta2(t *testing.T) {
	// In X = q^{1/4}: coefficients 2 at odd squares 1, 9, 25.
	th := Theta2(30)
	wants := map[int64]int64{1: 2, 9: 2, 25: 2}
	for k := int64(0); k < 30; k++ {
		if !th.Coeff(k).Equal(number.FromInt(wants[k])) {
			t.Fatalf("theta2 coeff %d = %s, want %d", k, th.Coeff(k), wants[k])
		}
	}
}

func TestPartitionCount(t *testing.T) {
	wants := map[int64]int64{0: 1, 1: 1, 2: 2, 3: 3, 4: 5, 5: 7, 10: 42, 20: 627}
	for n, w := range wants {
		if got := PartitionCount(n); got.Cmp(big.NewInt(w)) != 0 {
			t.Fatalf("p(%d) = %s, want %d", n, got, w)
		}
	}
	if PartitionCount(-3).Sign() != 0 {
		t.Fatal("p(-3) should be 0")
	}
}

func TestPartitionGFMatchesCount(t *testing.T) {
	gf := PartitionGF(25)
	for n := int64(0); n < 25; n++ {
		want := number.FromBigInts(PartitionCount(n), big.NewInt(1))
		if !gf.Coeff(n).Equal(want) {
			t.Fatalf("gf coeff %d = %s, want %s", n, gf.Coeff(n), want)
		}
	}
}

func TestEulerTheoremDistinctEqualsOdd(t *testing.T) {
	if !DistinctPartsGF(30).Equal(OddPartsGF(30)) {
		t.Fatal("distinct-parts and odd-parts generating functions should agree")
	}
}

func TestBoundedPartsGF(t *testing.T) {
	// With parts of size at most 2: coefficients are floor(n/2)+1.
	gf := BoundedPartsGF(2, 12)
	for n := int64(0); n < 12; n++ {
		want := number.FromInt(n/2 + 1)
		if !gf.Coeff(n).Equal(want) {
			t.Fatalf("coeff %d = %s, want %s", n, gf.Coeff(n), want)
		}
	}
}

func TestSift(t *testing.T) {
	// f = sum n*q^n; sifting out residue 1 mod 2 gives coefficients 1,3,5...
	f := series.Zero(10)
	for n := int64(1); n < 10; n++ {
		f = f.Add(series.Monomial(number.FromInt(n), n, 10))
	}
	s := Sift(f, 2, 1)
	for i := int64(0); i < s.Order(); i++ {
		want := number.FromInt(2*i + 1)
		if !s.Coeff(i).Equal(want) {
			t.Fatalf("sift coeff %d = %s, want %s", i, s.Coeff(i), want)
		}
	}
}

func TestQDegreeAndLQDegree(t *testing.T) {
	f := series.Monomial(number.One(), 3, 10).Add(series.Monomial(number.One(), 7, 10))
	if d, ok := QDegree(f); !ok || d != 7 {
		t.Fatalf("qdegree = %d, %v; want 7", d, ok)
	}
	if d, ok := LQDegree(f); !ok || d != 3 {
		t.Fatalf("lqdegree = %d, %v; want 3", d, ok)
	}
	if _, ok := QDegree(series.Zero(5)); ok {
		t.Fatal("qdegree of zero series should report false")
	}
}

func TestTerminationOrder(t *testing.T) {
	h := Hypergeometric{
		Upper:    []Monomial{QPower(-5), QPower(2)},
		Lower:    []Monomial{QPower(3)},
		Argument: QPower(6),
	}
	n, ok := h.TerminationOrder()
	if !ok || n != 5 {
		t.Fatalf("termination order = %d, %v; want 5", n, ok)
	}
	nonterm := Hypergeometric{Upper: []Monomial{QPower(2)}, Argument: QPower(1)}
	if _, ok := nonterm.TerminationOrder(); ok {
		t.Fatal("series without q^{-n} parameter should not terminate")
	}
}

func TestEvalPhiQBinomialTheorem(t *testing.T) {
	// 1phi0(q^{-n}; -; q, z) with z = q^n is the terminating q-binomial
	// theorem: sum equals (q^{-n} q^n ... ) -- check against direct
	// term summation for a small case instead.
	//
	// 1phi0(q^{-2}; -; q, q^2): terms n=0..2.
	h := Hypergeometric{
		Upper:    []Monomial{QPower(-2)},
		Argument: QPower(2),
	}
	got := EvalPhi(h, 12)

	// Direct: sum_{k=0}^{2} (q^{-2};q)_k / (q;q)_k * q^{2k}
	want := series.Zero(12)
	for k := int64(0); k <= 2; k++ {
		num := AQProd(QPower(-2), Finite(k), 12)
		den := AQProd(QPower(1), Finite(k), 12)
		term := num.Mul(den.Inv()).Mul(series.Monomial(number.One(), 2*k, 12))
		want = want.Add(term)
	}
	if !got.Equal(want) {
		t.Fatalf("eval phi = %s, want %s", got, want)
	}
}
