package telescope

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
)

// ClosedForm expresses a q-hypergeometric solution as
//
//	scalar * q^{QPowerCoeff * n(n-1)/2}
//	       * prod_i (NumerFactors_i; q)_n / prod_j (DenomFactors_j; q)_n
//
// The n(n-1)/2 convention matches the natural normalization of q-Pochhammer
// products. Plain geometric behavior r^n is not encoded here: it lives
// entirely in PetkovsekSolution.Ratio, and a ClosedForm is only produced
// when the ratio genuinely factors into Pochhammer steps.
type ClosedForm struct {
	Scalar       number.Rat
	QPowerCoeff  int64
	NumerFactors []qseries.Monomial
	DenomFactors []qseries.Monomial
}

// PetkovsekSolution is one q-hypergeometric solution of a recurrence.
type PetkovsekSolution struct {
	// Ratio is y(n+1)/y(n); always the exact solution ratio.
	Ratio number.Rat
	// Form is the Pochhammer decomposition when one was found, else nil.
	Form *ClosedForm
}

// QPetkovsek finds all q-hypergeometric solutions of the constant-coefficient
// recurrence c_0 S(n) + c_1 S(n+1) + ... + c_d S(n+d) = 0, as produced by
// QZeilberger at concrete q. With constant coefficients a solution ratio r
// must be a root of the characteristic polynomial c_0 + c_1 r + ... + c_d r^d,
// so order 1 is immediate and higher orders reduce to rational-root
// enumeration.
//
// Panics when fewer than two coefficients are given or the leading
// coefficient is zero.
func QPetkovsek(coeffs []number.Rat, q number.Rat, opts Options) []PetkovsekSolution {
	if len(coeffs) < 2 {
		panic(fmt.Sprintf("telescope: QPetkovsek needs at least 2 coefficients, got %d", len(coeffs)))
	}
	d := len(coeffs) - 1
	if coeffs[d].IsZero() {
		panic(fmt.Sprintf("telescope: QPetkovsek leading coefficient c_%d must be non-zero", d))
	}

	if d == 1 {
		ratio := coeffs[0].Div(coeffs[1]).Neg()
		return []PetkovsekSolution{{Ratio: ratio, Form: tryDecomposeRatio(ratio, q)}}
	}

	// Clear denominators so the rational root theorem applies.
	lcmDenom := big.NewInt(1)
	for _, c := range coeffs {
		lcmDenom = lcm(lcmDenom, c.Denom())
	}
	intCoeffs := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		intCoeffs[i] = c.Mul(number.FromBigInts(lcmDenom, big.NewInt(1))).Num()
	}

	if intCoeffs[0].Sign() == 0 {
		// r = 0 is a root; peel it off and recurse on the quotient.
		solutions := []PetkovsekSolution{{Ratio: number.Zero()}}
		if d >= 2 {
			solutions = append(solutions, QPetkovsek(coeffs[1:], q, opts)...)
		}
		return solutions
	}

	pDivisors := positiveDivisors(intCoeffs[0])
	sDivisors := positiveDivisors(intCoeffs[d])
	if len(pDivisors)*len(sDivisors) > opts.RootCap {
		return nil
	}

	var candidates []number.Rat
	for _, p := range pDivisors {
		for _, s := range sDivisors {
			candidates = append(candidates, number.FromBigInts(p, s))
			candidates = append(candidates, number.FromBigInts(new(big.Int).Neg(p), s))
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Cmp(candidates[j]) < 0
	})

	var solutions []PetkovsekSolution
	var prev number.Rat
	for i, cand := range candidates {
		if i > 0 && cand.Equal(prev) {
			continue
		}
		prev = cand
		if evalCharPoly(coeffs, cand).IsZero() {
			solutions = append(solutions, PetkovsekSolution{
				Ratio: cand,
				Form:  tryDecomposeRatio(cand, q),
			})
		}
	}
	return solutions
}

// evalCharPoly evaluates c_0 + c_1 r + ... + c_d r^d by Horner's method.
func evalCharPoly(coeffs []number.Rat, r number.Rat) number.Rat {
	d := len(coeffs) - 1
	result := coeffs[d]
	for j := d - 1; j >= 0; j-- {
		result = result.Mul(r).Add(coeffs[j])
	}
	return result
}

func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Div(new(big.Int).Abs(a), g)
	return out.Mul(out, new(big.Int).Abs(b))
}

// positiveDivisors lists the positive divisors of |n| in increasing order.
// Trial division is capped at 10000, which keeps huge leading coefficients
// from stalling the enumeration at the cost of missing large divisors.
func positiveDivisors(n *big.Int) []*big.Int {
	if n.Sign() == 0 {
		return nil
	}
	absN := new(big.Int).Abs(n)
	one := big.NewInt(1)
	if absN.Cmp(one) == 0 {
		return []*big.Int{big.NewInt(1)}
	}

	maxTrial := big.NewInt(10000)
	sqrtN := new(big.Int).Sqrt(absN)

	var divisors []*big.Int
	for i := big.NewInt(1); i.Cmp(sqrtN) <= 0 && i.Cmp(maxTrial) <= 0; i = new(big.Int).Add(i, one) {
		quo, rem := new(big.Int).QuoRem(absN, i, new(big.Int))
		if rem.Sign() == 0 {
			divisors = append(divisors, new(big.Int).Set(i))
			if quo.Cmp(i) != 0 {
				divisors = append(divisors, quo)
			}
		}
	}
	sort.Slice(divisors, func(a, b int) bool {
		return divisors[a].Cmp(divisors[b]) < 0
	})
	return divisors
}

// tryDecomposeRatio attempts to write the solution ratio as q-Pochhammer
// steps. A pure q power q^m is geometric, carried by the ratio itself, so
// it yields no ClosedForm. Otherwise single ratios (1-q^a)/(1-q^b) and
// products of two such ratios are searched over small exponent ranges.
func tryDecomposeRatio(ratio number.Rat, q number.Rat) *ClosedForm {
	if ratio.IsZero() {
		return nil
	}

	for m := int64(-20); m <= 20; m++ {
		if ratio.Equal(q.Pow(m)) {
			return nil
		}
	}

	oneMinusQ := func(e int64) number.Rat {
		return number.One().Sub(q.Pow(e))
	}

	for a := int64(-10); a <= 10; a++ {
		if a == 0 {
			continue
		}
		numer := oneMinusQ(a)
		if numer.IsZero() {
			continue
		}
		for b := int64(-10); b <= 10; b++ {
			if b == 0 {
				continue
			}
			denom := oneMinusQ(b)
			if denom.IsZero() {
				continue
			}
			if numer.Div(denom).Equal(ratio) {
				return &ClosedForm{
					Scalar:       number.One(),
					NumerFactors: []qseries.Monomial{qseries.QPower(a)},
					DenomFactors: []qseries.Monomial{qseries.QPower(b)},
				}
			}
		}
	}

	for a1 := int64(-6); a1 <= 6; a1++ {
		if a1 == 0 {
			continue
		}
		n1 := oneMinusQ(a1)
		if n1.IsZero() {
			continue
		}
		for a2 := a1; a2 <= 6; a2++ {
			if a2 == 0 {
				continue
			}
			n2 := oneMinusQ(a2)
			if n2.IsZero() {
				continue
			}
			numerProd := n1.Mul(n2)
			for b1 := int64(-6); b1 <= 6; b1++ {
				if b1 == 0 {
					continue
				}
				d1 := oneMinusQ(b1)
				if d1.IsZero() {
					continue
				}
				for b2 := b1; b2 <= 6; b2++ {
					if b2 == 0 {
						continue
					}
					d2 := oneMinusQ(b2)
					if d2.IsZero() {
						continue
					}
					if numerProd.Div(d1.Mul(d2)).Equal(ratio) {
						return &ClosedForm{
							Scalar:       number.One(),
							NumerFactors: []qseries.Monomial{qseries.QPower(a1), qseries.QPower(a2)},
							DenomFactors: []qseries.Monomial{qseries.QPower(b1), qseries.QPower(b2)},
						}
					}
				}
			}
		}
	}

	return nil
}
