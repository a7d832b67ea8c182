package padic

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// Element is a p-adic number u*p^v tracked to absolute precision n: the
// value is known modulo p^n. u and v satisfy the canonical/reduced form
// invariants maintained by canonicalize/reduce after every public
// operation: either u = 0 and v = 0, or gcd(u, p) = 1 and 0 <= u < p^(n-v).
//
// An Element exclusively owns its unit *big.Int. n is set at creation;
// SetPrecision changes it, and Set, Neg, Shift and Inv give their result
// the operand's precision.
type Element struct {
	u *big.Int
	v int64
	n int64
}

// New allocates a zero Element at absolute precision n.
func (c *Context) New(n int64) *Element {
	return &Element{u: new(big.Int), v: 0, n: n}
}

// Zero allocates a zero Element at DefaultPrecision.
func (c *Context) Zero() *Element {
	return c.New(DefaultPrecision)
}

// One allocates the multiplicative identity Element at DefaultPrecision.
func (c *Context) One() *Element {
	return c.setOne(c.New(DefaultPrecision), DefaultPrecision)
}

// Unit returns the unit part u. The returned value must not be mutated by
// the caller; copy it first if a mutable value is needed.
func (x *Element) Unit() *big.Int {
	return x.u
}

// Valuation returns the valuation v.
func (x *Element) Valuation() int64 {
	return x.v
}

// Precision returns the absolute precision n.
func (x *Element) Precision() int64 {
	return x.n
}

// RelativePrecision returns n - v, which may be non-positive when x is
// zero to its tracked precision.
func (x *Element) RelativePrecision() int64 {
	return x.n - x.v
}

// IsZero reports whether x is zero to its tracked precision, i.e. u = 0
// (the canonical zero) or v >= n.
func (x *Element) IsZero() bool {
	return x.u.Sign() == 0 || x.v >= x.n
}

// SetPrecision changes x's declared absolute precision to n and reduces x
// accordingly. Set, Neg, Shift and Inv also replace their result's
// precision, with that of their operand.
func (c *Context) SetPrecision(x *Element, n int64) *Element {
	x.n = n
	return c.reducePublic(x)
}

// Clone returns a deep copy of x.
func (x *Element) Clone() *Element {
	return &Element{u: new(big.Int).Set(x.u), v: x.v, n: x.n}
}

// Equal reports whether x and y carry the same (u, v, n) triple.
func (x *Element) Equal(y *Element) bool {
	return cmp.Equal(x, y,
		cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 }),
		cmp.AllowUnexported(Element{}),
	)
}

// Set copies src into z and returns z. Aliasing (z == src) is a no-op.
func (c *Context) Set(z, src *Element) *Element {
	if z == src {
		return z
	}
	z.u.Set(src.u)
	z.v = src.v
	z.n = src.n
	return z
}
