package padic

import (
	"fmt"
	"math/big"
)

// Add sets z = x + y, reduced at z's own declared precision n, and
// returns z. z may alias x and/or y.
func (c *Context) Add(z, x, y *Element) *Element {
	if x.IsZero() {
		n := z.n
		z.u = new(big.Int).Set(y.u)
		z.v = y.v
		z.n = n
		return c.reducePublic(z)
	}
	if y.IsZero() {
		n := z.n
		z.u = new(big.Int).Set(x.u)
		z.v = x.v
		z.n = n
		return c.reducePublic(z)
	}

	lo, hi := x, y
	if lo.v > hi.v {
		lo, hi = hi, lo
	}

	shift, _ := c.PowUI(hi.v - lo.v)
	u := new(big.Int).Mul(hi.u, shift)
	u.Add(u, lo.u)
	v := lo.v

	n := z.n
	z.u = u
	z.v = v
	z.n = n

	return c.reducePublic(z)
}

// Sub sets z = x - y, reduced at z's own declared precision n, and
// returns z. z may alias x and/or y.
func (c *Context) Sub(z, x, y *Element) *Element {
	negY := &Element{u: new(big.Int).Neg(y.u), v: y.v, n: y.n}
	return c.Add(z, x, negY)
}

// Neg sets z = -x, preserving x's valuation and precision, and returns z.
// z may alias x.
func (c *Context) Neg(z, x *Element) *Element {
	if x.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		z.n = x.n
		return z
	}

	m, _ := c.PowUI(x.n - x.v)
	u := new(big.Int).Sub(m, x.u)

	z.u = u
	z.v = x.v
	z.n = x.n

	return c.reducePublic(z)
}

// Mul sets z = x * y, reduced at z's own declared precision n, and returns
// z. z may alias x and/or y.
func (c *Context) Mul(z, x, y *Element) *Element {
	u := new(big.Int).Mul(x.u, y.u)
	v := x.v + y.v
	n := z.n

	z.u = u
	z.v = v
	z.n = n

	return c.reducePublic(z)
}

// Shift sets z = x * p^w (i.e. v <- v + w), preserving u and n, and
// returns z. z may alias x.
func (c *Context) Shift(z, x *Element, w int64) *Element {
	u := new(big.Int).Set(x.u)
	z.u = u
	z.v = x.v + w
	z.n = x.n
	return c.reducePublic(z)
}

// Div sets z = x / y, computed as x * inv(y) and reduced at z's own
// declared precision n, and returns z. Fails with ErrInvalidArg when y is
// zero to its tracked precision, or ErrPrecisionLost when inverting y at
// the precision Div needs is impossible (see Inv).
//
// Per the precision bookkeeping of a divisor u2*p^v2, the divisor must be
// inverted at precision n - v2 for the quotient to be correct to n; Div
// builds that adjusted copy of y itself rather than asking the caller to.
func (c *Context) Div(z, x, y *Element) (*Element, error) {
	if y.IsZero() {
		return nil, fmt.Errorf("padic: Div: %w: division by an element that is zero to precision", ErrInvalidArg)
	}

	tmp := &Element{u: new(big.Int).Set(y.u), v: y.v, n: z.n - y.v}
	invY := c.New(tmp.n)
	if _, err := c.Inv(invY, tmp); err != nil {
		return nil, fmt.Errorf("padic: Div: %w", err)
	}

	return c.Mul(z, x, invY), nil
}
