// Package series implements sparse formal power series in q with exact
// rational coefficients and explicit truncation orders. Series are the
// numeric side of the engine: q-products and partition generating
// functions expand into them, and identity checks compare them
// coefficient by coefficient up to the truncation order.
package series

import (
	"sort"
	"strings"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// FPS is a truncated formal power series sum c_k q^k for k < Order.
// Coefficients are stored sparsely; absent exponents are zero. Exponents
// may be negative (Laurent tails show up in theta quotients). Operations
// return new series and never mutate their operands.
type FPS struct {
	coeffs map[int64]number.Rat
	order  int64
}

// Zero returns the zero series truncated at order.
func Zero(order int64) *FPS {
	return &FPS{coeffs: map[int64]number.Rat{}, order: order}
}

// One returns the series 1 + O(q^order).
func One(order int64) *FPS {
	return Monomial(number.One(), 0, order)
}

// Monomial returns c*q^power + O(q^order).
func Monomial(c number.Rat, power, order int64) *FPS {
	s := Zero(order)
	if !c.IsZero() && power < order {
		s.coeffs[power] = c
	}
	return s
}

// FromCoeffs builds a series from coefficients c_0, c_1, ... in
// ascending powers of q, truncated at order.
func FromCoeffs(order int64, coeffs ...number.Rat) *FPS {
	s := Zero(order)
	for k, c := range coeffs {
		if !c.IsZero() && int64(k) < order {
			s.coeffs[int64(k)] = c
		}
	}
	return s
}

// Order returns the truncation order: coefficients at exponents >= Order
// are unknown.
func (s *FPS) Order() int64 {
	return s.order
}

// Coeff returns the coefficient of q^k.
func (s *FPS) Coeff(k int64) number.Rat {
	return s.coeffs[k]
}

// IsZero reports whether every known coefficient is zero.
func (s *FPS) IsZero() bool {
	return len(s.coeffs) == 0
}

// NumNonzero returns the number of nonzero known coefficients.
func (s *FPS) NumNonzero() int {
	return len(s.coeffs)
}

// MinExp returns the smallest exponent with a nonzero coefficient. The
// second return is false for the zero series.
func (s *FPS) MinExp() (int64, bool) {
	if len(s.coeffs) == 0 {
		return 0, false
	}
	first := true
	var min int64
	for k := range s.coeffs {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min, true
}

// Exponents returns the nonzero exponents in ascending order.
func (s *FPS) Exponents() []int64 {
	out := make([]int64, 0, len(s.coeffs))
	for k := range s.coeffs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether s and o agree on every coefficient below the
// smaller of the two truncation orders.
func (s *FPS) Equal(o *FPS) bool {
	limit := minOrder(s.order, o.order)
	for k, c := range s.coeffs {
		if k < limit && !c.Equal(o.Coeff(k)) {
			return false
		}
	}
	for k, c := range o.coeffs {
		if k < limit && !c.Equal(s.Coeff(k)) {
			return false
		}
	}
	return true
}

func minOrder(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func (s *FPS) set(k int64, c number.Rat) {
	if c.IsZero() {
		delete(s.coeffs, k)
		return
	}
	s.coeffs[k] = c
}

// Add returns s + o truncated to the smaller order.
func (s *FPS) Add(o *FPS) *FPS {
	out := Zero(minOrder(s.order, o.order))
	for k, c := range s.coeffs {
		if k < out.order {
			out.set(k, c)
		}
	}
	for k, c := range o.coeffs {
		if k < out.order {
			out.set(k, out.Coeff(k).Add(c))
		}
	}
	return out
}

// Sub returns s - o truncated to the smaller order.
func (s *FPS) Sub(o *FPS) *FPS {
	return s.Add(o.Neg())
}

// Neg returns -s.
func (s *FPS) Neg() *FPS {
	out := Zero(s.order)
	for k, c := range s.coeffs {
		out.coeffs[k] = c.Neg()
	}
	return out
}

// ScalarMul returns c * s.
func (s *FPS) ScalarMul(c number.Rat) *FPS {
	out := Zero(s.order)
	if c.IsZero() {
		return out
	}
	for k, v := range s.coeffs {
		out.coeffs[k] = v.Mul(c)
	}
	return out
}

// Mul returns s * o truncated to the smaller order, skipping products
// that land at or beyond it.
func (s *FPS) Mul(o *FPS) *FPS {
	out := Zero(minOrder(s.order, o.order))
	for i, a := range s.coeffs {
		for j, b := range o.coeffs {
			k := i + j
			if k >= out.order {
				continue
			}
			out.set(k, out.Coeff(k).Add(a.Mul(b)))
		}
	}
	return out
}

// Shift returns q^k * s, raising the truncation order by k.
func (s *FPS) Shift(k int64) *FPS {
	out := Zero(s.order + k)
	for e, c := range s.coeffs {
		out.coeffs[e+k] = c
	}
	return out
}

// Inv returns 1/s. The constant term must be nonzero; a Laurent tail is
// not inverted here. Panics otherwise.
//
// Uses the recurrence c_n = (-1/a_0) * sum_{k=1}^{n} a_k c_{n-k}.
func (s *FPS) Inv() *FPS {
	a0 := s.Coeff(0)
	if a0.IsZero() {
		panic("series: inverting series with zero constant term")
	}
	if m, ok := s.MinExp(); ok && m < 0 {
		panic("series: inverting series with negative exponents")
	}
	out := Zero(s.order)
	inv0 := a0.Inv()
	out.coeffs[0] = inv0
	for n := int64(1); n < s.order; n++ {
		acc := number.Zero()
		for k := int64(1); k <= n; k++ {
			ak := s.Coeff(k)
			if ak.IsZero() {
				continue
			}
			acc = acc.Add(ak.Mul(out.Coeff(n - k)))
		}
		out.set(n, acc.Neg().Mul(inv0))
	}
	return out
}

// Pow returns s^n for n >= 0 by repeated squaring. Panics for negative n.
func (s *FPS) Pow(n int64) *FPS {
	if n < 0 {
		panic("series: negative power")
	}
	out := One(s.order)
	base := s
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return out
}

// Truncate returns s with the truncation order lowered to order.
// Raising the order is not possible; the extra coefficients are unknown.
func (s *FPS) Truncate(order int64) *FPS {
	if order >= s.order {
		return s
	}
	out := Zero(order)
	for k, c := range s.coeffs {
		if k < order {
			out.coeffs[k] = c
		}
	}
	return out
}

// String renders the series in ascending powers, ending with the O-term.
func (s *FPS) String() string {
	var b strings.Builder
	for i, k := range s.Exponents() {
		c := s.coeffs[k]
		abs := c.Abs()
		if i == 0 {
			if c.Sign() < 0 {
				b.WriteString("-")
			}
		} else {
			if c.Sign() < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(termString(abs, k))
	}
	if b.Len() > 0 {
		b.WriteString(" + ")
	}
	b.WriteString("O(q^")
	b.WriteString(number.FromInt(s.order).String())
	b.WriteString(")")
	return b.String()
}

func termString(abs number.Rat, k int64) string {
	switch {
	case k == 0:
		return abs.String()
	case abs.IsOne():
		return qPower(k)
	default:
		return abs.String() + "*" + qPower(k)
	}
}

func qPower(k int64) string {
	if k == 1 {
		return "q"
	}
	return "q^" + number.FromInt(k).String()
}
