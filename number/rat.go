// Package number provides exact arbitrary-precision rational arithmetic.
//
// Rat is an immutable value type: every operation returns a new value and
// never mutates its receiver or arguments. This makes Rat safe to share
// across the algebraic layers (polynomials, power series, telescoping)
// without copying discipline.
package number

import (
	"math/big"
)

// Rat is an exact rational number with arbitrary-precision numerator and
// denominator. The zero value is 0.
type Rat struct {
	v *big.Rat
}

// ref returns the underlying big.Rat, treating a nil pointer (the zero
// value) as 0.
func (r Rat) ref() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}
	return r.v
}

// Zero returns the rational 0.
func Zero() Rat {
	return Rat{}
}

// One returns the rational 1.
func One() Rat {
	return FromInt(1)
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// New returns the rational n/d in lowest terms. Panics if d is zero.
func New(n, d int64) Rat {
	if d == 0 {
		panic("number: zero denominator")
	}
	return Rat{v: big.NewRat(n, d)}
}

// FromBig returns a Rat holding a copy of v.
func FromBig(v *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(v)}
}

// FromBigInts returns the rational n/d in lowest terms. Panics if d is zero.
func FromBigInts(n, d *big.Int) Rat {
	if d.Sign() == 0 {
		panic("number: zero denominator")
	}
	return Rat{v: new(big.Rat).SetFrac(n, d)}
}

// Parse reads a rational from a string in "n" or "n/d" form.
func Parse(s string) (Rat, bool) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, false
	}
	return Rat{v: v}, true
}

// Num returns a copy of the numerator (sign-carrying).
func (r Rat) Num() *big.Int {
	return new(big.Int).Set(r.ref().Num())
}

// Denom returns a copy of the denominator (always positive).
func (r Rat) Denom() *big.Int {
	return new(big.Int).Set(r.ref().Denom())
}

// IsZero reports whether r is 0.
func (r Rat) IsZero() bool {
	return r.ref().Sign() == 0
}

// IsOne reports whether r is 1.
func (r Rat) IsOne() bool {
	x := r.ref()
	return x.Num().Cmp(x.Denom()) == 0 && x.Sign() > 0
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rat) Sign() int {
	return r.ref().Sign()
}

// Cmp compares r and o, returning -1, 0, or +1.
func (r Rat) Cmp(o Rat) int {
	return r.ref().Cmp(o.ref())
}

// Equal reports whether r and o represent the same rational.
func (r Rat) Equal(o Rat) bool {
	return r.Cmp(o) == 0
}

// Add returns r + o.
func (r Rat) Add(o Rat) Rat {
	return Rat{v: new(big.Rat).Add(r.ref(), o.ref())}
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat {
	return Rat{v: new(big.Rat).Sub(r.ref(), o.ref())}
}

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat {
	return Rat{v: new(big.Rat).Mul(r.ref(), o.ref())}
}

// Div returns r / o. Panics if o is zero.
func (r Rat) Div(o Rat) Rat {
	if o.IsZero() {
		panic("number: division by zero")
	}
	return Rat{v: new(big.Rat).Quo(r.ref(), o.ref())}
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{v: new(big.Rat).Neg(r.ref())}
}

// Inv returns 1/r. Panics if r is zero.
func (r Rat) Inv() Rat {
	if r.IsZero() {
		panic("number: inverse of zero")
	}
	return Rat{v: new(big.Rat).Inv(r.ref())}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	return Rat{v: new(big.Rat).Abs(r.ref())}
}

// Pow returns r^exp for a signed integer exponent, computed by repeated
// squaring. Panics if r is zero and exp is negative.
func (r Rat) Pow(exp int64) Rat {
	if exp == 0 {
		return One()
	}
	if exp < 0 {
		if r.IsZero() {
			panic("number: zero base with negative exponent")
		}
		return r.powUint(uint64(-exp)).Inv()
	}
	return r.powUint(uint64(exp))
}

func (r Rat) powUint(exp uint64) Rat {
	result := One()
	b := r
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b = b.Mul(b)
		}
	}
	return result
}

// SqrtExact returns the exact square root of r if one exists in the
// rationals, and reports whether it does. Negative inputs have no rational
// square root.
func (r Rat) SqrtExact() (Rat, bool) {
	if r.Sign() < 0 {
		return Rat{}, false
	}
	if r.IsZero() {
		return Zero(), true
	}
	n := r.ref().Num()
	d := r.ref().Denom()
	sn := new(big.Int).Sqrt(n)
	sd := new(big.Int).Sqrt(d)
	if new(big.Int).Mul(sn, sn).Cmp(n) != 0 {
		return Rat{}, false
	}
	if new(big.Int).Mul(sd, sd).Cmp(d) != 0 {
		return Rat{}, false
	}
	return FromBigInts(sn, sd), true
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Rat) String() string {
	return r.ref().RatString()
}
