package padic

import (
	"fmt"
	"math/big"
)

// Teichmuller sets z to the Teichmüller lift of x: the unique (p-1)-th
// root of unity in Z_p congruent to x mod p, reduced at z's own declared
// precision. x must be a unit (valuation >= 0); fails with ErrNotUnit
// otherwise. By convention, an x with positive valuation lifts to 0.
func (c *Context) Teichmuller(z, x *Element) (*Element, error) {
	if x.v < 0 {
		return nil, fmt.Errorf("padic: Teichmuller: %w", ErrNotUnit)
	}
	if x.v > 0 || x.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		return z, nil
	}

	target := z.n
	t := new(big.Int).Mod(x.u, c.p)

	pMinus1 := new(big.Int).Sub(c.p, big.NewInt(1))

	for cur := int64(1); cur < target; {
		next := min(cur*2, target)
		modulus, owned := c.PowUI(next)
		if !owned {
			modulus = new(big.Int).Set(modulus)
		}

		// t <- t - (t^p - t) * inv(p*t^(p-1) - 1) mod modulus
		tp := new(big.Int).Exp(t, c.p, modulus)
		num := new(big.Int).Sub(tp, t)

		tpm1 := new(big.Int).Exp(t, pMinus1, modulus)
		den := new(big.Int).Mul(c.p, tpm1)
		den.Sub(den, big.NewInt(1))
		denInv := new(big.Int).ModInverse(den, modulus)

		delta := new(big.Int).Mul(num, denInv)
		t.Sub(t, delta)
		t.Mod(t, modulus)

		cur = next
	}

	z.u = t
	z.v = 0
	return c.reducePublic(z), nil
}
