package padic

import (
	"fmt"
	"math/big"
)

// two is a shared read-only constant; never pass it as a destination operand.
var two = big.NewInt(2)

// Sqrt attempts to compute a square root of x, reduced at z's own
// declared precision. It reports false and scrubs z when x is not a
// square — the test is: v = Valuation(x) must be even, and the unit u
// must be a square mod p (p odd) or u ≡ 1 (mod 8) (p = 2).
//
// When successful, z has valuation Valuation(x)/2 and satisfies
// z*z ≡ x (mod p^(Valuation(x) + RelativePrecision(z))).
func (c *Context) Sqrt(z, x *Element) (*Element, bool) {
	if x.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		return z, true
	}

	if x.v%2 != 0 {
		c.scrub(z, z.n)
		return z, false
	}

	isTwo := c.p.Cmp(two) == 0

	var y0 *big.Int
	var start int64

	if isTwo {
		mod8 := new(big.Int).Mod(x.u, big.NewInt(8))
		if mod8.Cmp(big.NewInt(1)) != 0 {
			c.scrub(z, z.n)
			return z, false
		}
		y0 = big.NewInt(1)
		start = 3
	} else {
		um := new(big.Int).Mod(x.u, c.p)
		y0 = new(big.Int).ModSqrt(um, c.p)
		if y0 == nil {
			c.scrub(z, z.n)
			return z, false
		}
		start = 1
	}

	target := z.n - x.v/2

	var y *big.Int
	if target <= start {
		y = y0
	} else if isTwo {
		y = c.sqrtLiftTwo(y0, x.u, target)
	} else {
		y = c.sqrtLiftOdd(y0, x.u, start, target)
	}

	z.u = y
	z.v = x.v / 2
	return c.reducePublic(z), true
}

// MustSqrt is Sqrt for callers that want the domain-test failure reported
// through the package's error channel (errors.Is(err, ErrNotASquare))
// instead of a boolean, e.g. when Sqrt is one step in a chain of fallible
// operations already propagating errors.
func (c *Context) MustSqrt(z, x *Element) (*Element, error) {
	if _, ok := c.Sqrt(z, x); !ok {
		return nil, fmt.Errorf("padic: MustSqrt: %w", ErrNotASquare)
	}
	return z, nil
}

// sqrtLiftOdd lifts y (known mod p^start) to a square root of u known mod
// p^target, for odd p, via Hensel doubling:
//
//	y <- y - (y^2 - u) * inv(2*y) mod p^next
//
// which doubles y's valid relative precision at every step.
func (c *Context) sqrtLiftOdd(y0, u *big.Int, start, target int64) *big.Int {
	y := new(big.Int).Set(y0)
	cur := start

	for cur < target {
		next := min(cur*2, target)
		modulus, owned := c.PowUI(next)
		if !owned {
			modulus = new(big.Int).Set(modulus)
		}

		inv2y := new(big.Int).ModInverse(new(big.Int).Mul(two, y), modulus)

		delta := new(big.Int).Mul(y, y)
		delta.Sub(delta, u)
		delta.Mul(delta, inv2y)

		y.Sub(y, delta)
		y.Mod(y, modulus)
		cur = next
	}

	return y
}

// sqrtLiftTwo lifts y (known mod 8) to a square root of u known mod
// 2^target. 2-adic square roots gain only one bit of precision per step
// past the initial 3 bits, since 2*y is never invertible mod a power of
// two; each step instead tests the parity of (y^2-u)/2^cur and corrects
// the next bit of y directly.
func (c *Context) sqrtLiftTwo(y0, u *big.Int, target int64) *big.Int {
	y := new(big.Int).Set(y0)

	for cur := int64(3); cur < target; cur++ {
		modCur, owned := c.PowUI(cur)
		if !owned {
			modCur = new(big.Int).Set(modCur)
		}

		diff := new(big.Int).Mul(y, y)
		diff.Sub(diff, u)
		diff.Div(diff, modCur) // exact: y^2 ≡ u (mod 2^cur)

		if t := new(big.Int).Mod(diff, two); t.Sign() != 0 {
			half, owned := c.PowUI(cur - 1)
			if !owned {
				half = new(big.Int).Set(half)
			}
			y.Add(y, half)
		}

		modNext, owned := c.PowUI(cur + 1)
		if !owned {
			modNext = new(big.Int).Set(modNext)
		}
		y.Mod(y, modNext)
	}

	return y
}
