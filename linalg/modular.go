package linalg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// InconsistentModP reduces the system Ax = b modulo the bn254 scalar
// field prime and row-reduces there. An inconsistent reduction proves
// the exact system inconsistent, which lets callers skip a full
// rational elimination — rank can only drop under reduction when the
// prime divides a nonzero minor of the cleared integer system, and
// that is ruled out up front by a size bound on the entries. The
// second return is false when the bound fails or a denominator
// vanishes mod p; the reduction then says nothing.
//
// A consistent reduction proves nothing: the exact system may still be
// inconsistent when the witness row reduces to zero mod p.
func InconsistentModP(matrix [][]number.Rat, rhs []number.Rat) (inconsistent, usable bool) {
	m := len(matrix)
	if m == 0 {
		return false, true
	}
	n := len(matrix[0])

	if !minorsBelowModulus(matrix, rhs) {
		return false, false
	}

	aug := make([][]fr.Element, m)
	for i := range matrix {
		row := make([]fr.Element, n+1)
		for j, v := range matrix[i] {
			e, ok := toElement(v)
			if !ok {
				return false, false
			}
			row[j] = e
		}
		e, ok := toElement(rhs[i])
		if !ok {
			return false, false
		}
		row[n] = e
		aug[i] = row
	}

	pivotRow := 0
	for col := 0; col < n && pivotRow < m; col++ {
		found := -1
		for row := pivotRow; row < m; row++ {
			if !aug[row][col].IsZero() {
				found = row
				break
			}
		}
		if found < 0 {
			continue
		}
		aug[found], aug[pivotRow] = aug[pivotRow], aug[found]

		var inv fr.Element
		inv.Inverse(&aug[pivotRow][col])
		for j := col; j <= n; j++ {
			aug[pivotRow][j].Mul(&aug[pivotRow][j], &inv)
		}
		for row := 0; row < m; row++ {
			if row == pivotRow || aug[row][col].IsZero() {
				continue
			}
			factor := aug[row][col]
			for j := col; j <= n; j++ {
				var t fr.Element
				t.Mul(&factor, &aug[pivotRow][j])
				aug[row][j].Sub(&aug[row][j], &t)
			}
		}
		pivotRow++
	}

	for row := 0; row < m; row++ {
		allZero := true
		for j := 0; j < n; j++ {
			if !aug[row][j].IsZero() {
				allZero = false
				break
			}
		}
		if allZero && !aug[row][n].IsZero() {
			return true, true
		}
	}
	return false, true
}

// minorsBelowModulus reports whether every minor of the augmented
// system, after clearing each row to integers, is provably smaller
// than the field modulus. The Leibniz bound r! * max^r over the
// largest square dimension covers all of them; when it holds, no
// nonzero minor can be divisible by p, so the rank of the reduced
// system matches the rational rank.
func minorsBelowModulus(matrix [][]number.Rat, rhs []number.Rat) bool {
	maxAbs := new(big.Int)
	for i := range matrix {
		l := big.NewInt(1)
		for _, v := range matrix[i] {
			l = lcmInt(l, v.Denom())
		}
		l = lcmInt(l, rhs[i].Denom())
		bump := func(v number.Rat) {
			c := new(big.Int).Quo(l, v.Denom())
			c.Mul(c, v.Num())
			c.Abs(c)
			if c.Cmp(maxAbs) > 0 {
				maxAbs.Set(c)
			}
		}
		for _, v := range matrix[i] {
			bump(v)
		}
		bump(rhs[i])
	}

	r := int64(len(matrix))
	if c := int64(len(matrix[0]) + 1); c < r {
		r = c
	}
	bound := new(big.Int).MulRange(1, r)
	bound.Mul(bound, new(big.Int).Exp(maxAbs, big.NewInt(r), nil))
	return bound.Cmp(fr.Modulus()) < 0
}

func lcmInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, g)
	return out.Mul(out, b)
}

// toElement maps a rational into the scalar field as num * den^{-1}.
// Fails when the denominator reduces to zero mod p.
func toElement(v number.Rat) (fr.Element, bool) {
	var num, den fr.Element
	num.SetBigInt(v.Num())
	den.SetBigInt(v.Denom())
	if den.IsZero() {
		return fr.Element{}, false
	}
	den.Inverse(&den)
	num.Mul(&num, &den)
	return num, true
}
