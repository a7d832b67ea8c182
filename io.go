package padic

import (
	"fmt"
	"math/big"
	"strings"
)

// Format renders x according to the Context's configured PrintMode.
func (c *Context) Format(x *Element) string {
	switch c.mode {
	case Series:
		return c.formatSeries(x)
	case ValUnit:
		return c.formatValUnit(x)
	default:
		return c.formatTerse(x)
	}
}

// signedRepresentative returns val if val*2 <= modulus, else val - modulus
// (the representative's negative twin), leaving val untouched in range.
func signedRepresentative(val, modulus *big.Int) *big.Int {
	twice := new(big.Int).Lsh(val, 1)
	if twice.Cmp(modulus) <= 0 {
		return val
	}
	return new(big.Int).Sub(val, modulus)
}

// formatTerse renders x as the unique rational representative in [0, p^N),
// divided by p^(-v) when v < 0 ("12/7"), or as the plain integer u*p^v
// when v >= 0 ("23"). A leading minus is used when the representative
// exceeds half its own modulus.
func (c *Context) formatTerse(x *Element) string {
	if x.IsZero() {
		return "0"
	}

	u := x.Unit()
	v := x.Valuation()
	n := x.Precision()

	if v >= 0 {
		shift, _ := c.PowUI(v)
		rep := new(big.Int).Mul(u, shift)
		modulus, _ := c.PowUI(n)
		rep = signedRepresentative(rep, modulus)
		return rep.String()
	}

	denom, _ := c.PowUI(-v)
	modulus, _ := c.PowUI(n - v)
	num := signedRepresentative(new(big.Int).Set(u), modulus)
	return fmt.Sprintf("%s/%s", num.String(), denom.String())
}

// formatSeries renders x as its base-p expansion Sum d_i * p^i, d_i in
// [0, p), i ranging from v to N-1 ("5*7^-1 + 1").
func (c *Context) formatSeries(x *Element) string {
	if x.IsZero() {
		return "0"
	}

	u := x.Unit()
	v := x.Valuation()
	n := x.Precision()

	rem := new(big.Int).Set(u)
	var terms []string
	for i := v; i < n; i++ {
		d := new(big.Int).Mod(rem, c.p)
		rem.Sub(rem, d)
		rem.Div(rem, c.p)

		if d.Sign() == 0 {
			continue
		}

		switch i {
		case 0:
			terms = append(terms, d.String())
		case 1:
			terms = append(terms, fmt.Sprintf("%s*%s", d.String(), c.p.String()))
		default:
			terms = append(terms, fmt.Sprintf("%s*%s^%d", d.String(), c.p.String(), i))
		}
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// formatValUnit renders x as the literal "u*p^v", collapsing v = 0 to
// "u", v = 1 to "u*p", and u = 1 to "p^v".
func (c *Context) formatValUnit(x *Element) string {
	if x.IsZero() {
		return "0"
	}

	u := x.Unit()
	v := x.Valuation()

	uIsOne := u.Cmp(big.NewInt(1)) == 0

	switch {
	case v == 0:
		return u.String()
	case uIsOne && v == 1:
		return c.p.String()
	case uIsOne:
		return fmt.Sprintf("%s^%d", c.p.String(), v)
	case v == 1:
		return fmt.Sprintf("%s*%s", u.String(), c.p.String())
	default:
		return fmt.Sprintf("%s*%s^%d", u.String(), c.p.String(), v)
	}
}

// DebugString renders x in the fixed debug format "(u v N)", independent
// of the Context's configured PrintMode.
func (x *Element) DebugString() string {
	return fmt.Sprintf("(%s %d %d)", x.u.String(), x.v, x.n)
}
