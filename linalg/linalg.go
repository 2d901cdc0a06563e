// Package linalg provides exact linear algebra over the rationals, plus
// a modular fast path for rejecting inconsistent systems. The key
// equation solvers in the telescoping layer reduce to these routines.
package linalg

import (
	"fmt"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// SolveLinearSystem solves Ax = b by Gaussian elimination to reduced
// row echelon form with exact rational arithmetic. Returns nil if the
// system is inconsistent. For underdetermined systems the free
// variables are set to zero.
func SolveLinearSystem(matrix [][]number.Rat, rhs []number.Rat) []number.Rat {
	m := len(matrix)
	if m == 0 {
		return []number.Rat{}
	}
	n := len(matrix[0])
	if n == 0 {
		for _, r := range rhs {
			if !r.IsZero() {
				return nil
			}
		}
		return []number.Rat{}
	}

	// Cheap filter: within the pre-check's entry-size bound a system
	// inconsistent mod p is inconsistent over Q.
	if inconsistent, usable := InconsistentModP(matrix, rhs); usable && inconsistent {
		return nil
	}

	// Augmented matrix [A | b].
	aug := make([][]number.Rat, m)
	for i := range matrix {
		row := make([]number.Rat, n+1)
		copy(row, matrix[i])
		row[n] = rhs[i]
		aug[i] = row
	}

	pivotCols := rref(aug, n)

	for row := 0; row < m; row++ {
		allZero := true
		for j := 0; j < n; j++ {
			if !aug[row][j].IsZero() {
				allZero = false
				break
			}
		}
		if allZero && !aug[row][n].IsZero() {
			return nil
		}
	}

	solution := make([]number.Rat, n)
	for rowIdx, pc := range pivotCols {
		solution[pc] = aug[rowIdx][n]
	}
	return solution
}

// rref reduces aug in place, treating only the first n columns as
// eligible pivot columns (trailing columns ride along as augmentation).
// Returns the pivot columns in row order.
func rref(aug [][]number.Rat, n int) []int {
	m := len(aug)
	width := 0
	if m > 0 {
		width = len(aug[0])
	}
	var pivotCols []int
	pivotRow := 0

	for col := 0; col < n; col++ {
		if pivotRow >= m {
			break
		}
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

		pivot := aug[pivotRow][col]
		for j := 0; j < width; j++ {
			aug[pivotRow][j] = aug[pivotRow][j].Div(pivot)
		}
		for row := 0; row < m; row++ {
			if row == pivotRow || aug[row][col].IsZero() {
				continue
			}
			factor := aug[row][col]
			for j := 0; j < width; j++ {
				aug[row][j] = aug[row][j].Sub(factor.Mul(aug[pivotRow][j]))
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	return pivotCols
}

// RationalNullSpace computes a basis of ker(A) over Q. A full-rank
// matrix yields an empty basis; a zero matrix yields the standard
// basis.
func RationalNullSpace(matrix [][]number.Rat) [][]number.Rat {
	m := len(matrix)
	if m == 0 {
		return nil
	}
	n := len(matrix[0])
	if n == 0 {
		return nil
	}

	a := make([][]number.Rat, m)
	for i := range matrix {
		a[i] = make([]number.Rat, n)
		copy(a[i], matrix[i])
	}
	pivotCols := rref(a, n)

	pivotSet := make(map[int]int, len(pivotCols))
	for rowIdx, pc := range pivotCols {
		pivotSet[pc] = rowIdx
	}

	var basis [][]number.Rat
	for fc := 0; fc < n; fc++ {
		if _, isPivot := pivotSet[fc]; isPivot {
			continue
		}
		v := make([]number.Rat, n)
		v[fc] = number.One()
		for _, pc := range pivotCols {
			v[pc] = a[pivotSet[pc]][fc].Neg()
		}
		basis = append(basis, v)
	}
	return basis
}

// BuildCoefficientMatrix assembles the matrix whose column j holds the
// coefficients of candidates[j] at exponents startOrder, startOrder+1,
// ..., startOrder+numRows-1. Panics if a candidate is truncated too
// early to supply the requested rows.
func BuildCoefficientMatrix(candidates []*series.FPS, startOrder int64, numRows int) [][]number.Rat {
	need := startOrder + int64(numRows)
	for j, f := range candidates {
		if f.Order() < need {
			panic(fmt.Sprintf(
				"linalg: candidate %d truncated at %d, need %d", j, f.Order(), need))
		}
	}
	matrix := make([][]number.Rat, numRows)
	for i := 0; i < numRows; i++ {
		exp := startOrder + int64(i)
		row := make([]number.Rat, len(candidates))
		for j, f := range candidates {
			row[j] = f.Coeff(exp)
		}
		matrix[i] = row
	}
	return matrix
}
