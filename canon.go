package padic

import "math/big"

// canonicalize factors all powers of p out of x.u, incrementing x.v to
// compensate, so that afterwards either u = 0, v = 0, or gcd(u, p) = 1.
func (c *Context) canonicalize(x *Element) *Element {
	if x.u.Sign() == 0 {
		x.v = 0
		return x
	}

	for {
		q, r := new(big.Int).QuoRem(x.u, c.p, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		x.u = q
		x.v++
	}

	return x
}

// reduce assumes x is canonical and reduces u modulo p^(n-v). If v >= n,
// x is zero to its tracked precision and is set to the canonical zero.
func (c *Context) reduce(x *Element) *Element {
	if x.v >= x.n {
		x.u.SetInt64(0)
		x.v = 0
		return x
	}

	m, _ := c.PowUI(x.n - x.v)
	x.u.Mod(x.u, m)

	return x
}

// reducePublic canonicalizes then reduces x. This is the form every public
// operation applies to its result before returning.
func (c *Context) reducePublic(x *Element) *Element {
	return c.reduce(c.canonicalize(x))
}
