package padic

import (
	"fmt"
	"math/big"
)

// SetInt sets z to the p-adic integer n, reduced at z's own declared
// precision, and returns z.
func (c *Context) SetInt(z *Element, n *big.Int) *Element {
	z.u = new(big.Int).Set(n)
	z.v = 0
	return c.reducePublic(z)
}

// SetRat sets z to the p-adic value of the rational q = num/den, reduced
// at z's own declared precision, and returns z. The valuation of q is
// extracted from both numerator and denominator before den is inverted
// modulo the working power of p.
func (c *Context) SetRat(z *Element, q *big.Rat) *Element {
	num := new(big.Int).Set(q.Num())
	den := new(big.Int).Set(q.Denom())

	var v int64
	for num.Sign() != 0 {
		qq, r := new(big.Int).QuoRem(num, c.p, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		num = qq
		v++
	}
	for {
		qq, r := new(big.Int).QuoRem(den, c.p, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		den = qq
		v--
	}

	if z.n-v <= 0 {
		z.u = new(big.Int)
		z.v = 0
		return z
	}

	m, _ := c.PowUI(z.n - v)
	denInv := new(big.Int).ModInverse(new(big.Int).Mod(den, m), m)

	z.u = new(big.Int).Mul(num, denInv)
	z.v = v
	return c.reducePublic(z)
}

// Int sets n to the integer value of x and returns it. Fails with
// ErrNotInteger when x has negative valuation (x is not a p-adic
// integer).
func (c *Context) Int(n *big.Int, x *Element) (*big.Int, error) {
	if x.v < 0 {
		return nil, fmt.Errorf("padic: Int: %w", ErrNotInteger)
	}
	shift, _ := c.PowUI(x.v)
	n.Mul(x.u, shift)
	return n, nil
}

// Rat sets q to the rational value u*p^v and returns it. Unlike Int, Rat
// never fails: a negative valuation simply produces a non-integral
// rational with denominator p^(-v).
func (c *Context) Rat(q *big.Rat, x *Element) *big.Rat {
	if x.v >= 0 {
		shift, _ := c.PowUI(x.v)
		num := new(big.Int).Mul(x.u, shift)
		return q.SetInt(num)
	}
	shift, _ := c.PowUI(-x.v)
	return q.SetFrac(new(big.Int).Set(x.u), shift)
}

// setOne sets z to the multiplicative identity at precision n.
func (c *Context) setOne(z *Element, n int64) *Element {
	z.u = big.NewInt(1)
	z.v = 0
	z.n = n
	return c.reducePublic(z)
}

// scrub zeroes z's state after a failed domain test (Sqrt), so that a
// caller who accidentally reads a "failed" result does not observe stale
// data from a previous call.
func (c *Context) scrub(z *Element, n int64) {
	z.u = new(big.Int)
	z.v = 0
	z.n = n
}
