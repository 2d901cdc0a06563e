package qseries

import (
	"math/big"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
)

// PartitionCount returns p(n), the number of unrestricted partitions of
// n, via the pentagonal number recurrence. Negative n gives 0.
func PartitionCount(n int64) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}
	table := make([]*big.Int, n+1)
	table[0] = big.NewInt(1)
	for i := int64(1); i <= n; i++ {
		sum := new(big.Int)
		for k := int64(1); ; k++ {
			g1 := k * (3*k - 1) / 2
			if g1 > i {
				break
			}
			if k%2 == 1 {
				sum.Add(sum, table[i-g1])
			} else {
				sum.Sub(sum, table[i-g1])
			}
			if g2 := k * (3*k + 1) / 2; g2 <= i {
				if k%2 == 1 {
					sum.Add(sum, table[i-g2])
				} else {
					sum.Sub(sum, table[i-g2])
				}
			}
		}
		table[i] = sum
	}
	return table[n]
}

// PartitionGF computes sum_{n>=0} p(n) q^n = 1/(q;q)_inf.
func PartitionGF(order int64) *series.FPS {
	return EulerProd(order).Inv()
}

// DistinctPartsGF computes prod_{n>=1}(1 + q^n) = (-q;q)_inf, the
// generating function for partitions into distinct parts.
func DistinctPartsGF(order int64) *series.FPS {
	return stepProd(number.FromInt(-1), 1, 1, order)
}

// OddPartsGF computes prod_{k>=0} 1/(1 - q^{2k+1}), the generating
// function for partitions into odd parts. Euler's theorem says it
// equals DistinctPartsGF coefficientwise.
func OddPartsGF(order int64) *series.FPS {
	return stepProd(number.One(), 1, 2, order).Inv()
}

// BoundedPartsGF computes prod_{k=1}^{m} 1/(1-q^k), the generating
// function for partitions into parts of size at most m.
func BoundedPartsGF(m, order int64) *series.FPS {
	denom := series.One(order)
	for k := int64(1); k <= m; k++ {
		denom = denom.Mul(oneMinus(number.One(), k, order))
	}
	return denom.Inv()
}
