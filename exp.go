package padic

import (
	"fmt"
	"math/big"
)

// expConverges reports whether x lies in the domain of convergence of Exp
// (ord_p(x) >= 1 for odd p, >= 2 for p = 2) and returns x's valuation.
// x = 0 trivially converges (exp(0) = 1) regardless of p.
func (c *Context) expConverges(x *Element) (int64, bool) {
	if x.IsZero() {
		return 0, true
	}
	if c.p.Cmp(two) == 0 {
		return x.v, x.v >= 2
	}
	return x.v, x.v >= 1
}

// ExpBound returns the smallest i such that ord_p(x^i/i!) >= n for an
// element of valuation v, the truncation point M used by every Exp
// variant. For word-sized p it uses ceil(((p-1)*n-1)/((p-1)*v-1));
// otherwise ceil(n/v).
func (c *Context) ExpBound(v, n int64) int64 {
	if v <= 0 {
		panic(fmt.Errorf("padic: ExpBound: valuation must be positive, got %d", v))
	}
	if c.isWord {
		pm1 := int64(c.pWord) - 1
		return ceilDiv(pm1*n-1, pm1*v-1)
	}
	return ceilDiv(n, v)
}

// Exp sets z = exp(x), reduced at z's own declared precision, using the
// balanced (chunked by valuation) algorithm of ExpBalanced. Fails with
// ErrNotConvergent when x is outside the domain of convergence.
func (c *Context) Exp(z, x *Element) (*Element, error) {
	return c.ExpBalanced(z, x)
}

// ExpNaive computes exp(x) by direct accumulation of Sum x^i/i!: each term
// is the previous one times x divided by i, and the terms are added in
// increasing order of i, not in Horner's nested form.
func (c *Context) ExpNaive(z, x *Element) (*Element, error) {
	v, ok := c.expConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: ExpNaive: %w", ErrNotConvergent)
	}
	if x.IsZero() {
		return c.setOne(z, z.n), nil
	}
	return c.expNaiveCore(z, x, v, z.n)
}

func (c *Context) expNaiveCore(z, x *Element, v, n int64) (*Element, error) {
	m := c.ExpBound(v, n)

	// Dividing by 1..m-1 loses up to ord_p((m-1)!) digits, so the series is
	// summed that many digits above the target precision.
	target := n
	if m > 1 {
		n += ValuationFactorialBig(big.NewInt(m-1), c.p).Int64()
	}

	sum := c.setOne(c.New(n), n)
	term := c.setOne(c.New(n), n)

	for i := int64(1); i < m; i++ {
		c.Mul(term, term, x)

		di := c.SetInt(c.New(n), big.NewInt(i))
		if _, err := c.Div(term, term, di); err != nil {
			return nil, fmt.Errorf("padic: exp: %w", err)
		}

		c.Add(sum, sum, term)
	}

	z.u, z.v, z.n = sum.u, sum.v, target
	return c.reducePublic(z), nil
}

// ExpRectangular computes exp(x) with a baby-step/giant-step (Paterson–
// Stockmeyer) rearrangement of the same truncated series: precompute
// x^0..x^b for a block size b ≈ sqrt(M), precompute the table of partial
// inverse factorials, then combine in sqrt(M) outer and sqrt(M) inner
// steps.
func (c *Context) ExpRectangular(z, x *Element) (*Element, error) {
	v, ok := c.expConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: ExpRectangular: %w", ErrNotConvergent)
	}
	if x.IsZero() {
		return c.setOne(z, z.n), nil
	}
	return c.expRectangularCore(z, x, v, z.n)
}

func (c *Context) expRectangularCore(z, x *Element, v, n int64) (*Element, error) {
	m := c.ExpBound(v, n)

	// Dividing by 1..m-1 loses up to ord_p((m-1)!) digits, so the series is
	// summed that many digits above the target precision.
	target := n
	if m > 1 {
		n += ValuationFactorialBig(big.NewInt(m-1), c.p).Int64()
	}

	b := int64(1)
	for b*b < m {
		b++
	}

	// Baby steps: xPow[j] = x^j, j = 0..b.
	xPow := make([]*Element, b+1)
	xPow[0] = c.setOne(c.New(n), n)
	for j := int64(1); j <= b; j++ {
		xPow[j] = c.Mul(c.New(n), xPow[j-1], x)
	}

	// Table of partial inverse factorials: invFact[i] = 1/i!, i = 0..m-1.
	invFact := make([]*Element, m)
	invFact[0] = c.setOne(c.New(n), n)
	for i := int64(1); i < m; i++ {
		di := c.SetInt(c.New(n), big.NewInt(i))
		prev := invFact[i-1]
		invFact[i] = c.New(n)
		if _, err := c.Div(invFact[i], prev, di); err != nil {
			return nil, fmt.Errorf("padic: exp: %w", err)
		}
	}

	sum := c.New(n)
	sum.u = new(big.Int)
	sum.v = 0

	giant := c.setOne(c.New(n), n) // (x^b)^q, updated each block
	for q := int64(0); q*b < m; q++ {
		hi := min(b, m-q*b)

		inner := c.New(n)
		inner.u = new(big.Int)
		inner.v = 0
		for r := int64(0); r < hi; r++ {
			idx := q*b + r
			term := c.Mul(c.New(n), invFact[idx], xPow[r])
			c.Add(inner, inner, term)
		}

		outer := c.Mul(c.New(n), inner, giant)
		c.Add(sum, sum, outer)

		c.Mul(giant, giant, xPow[b])
	}

	z.u, z.v, z.n = sum.u, sum.v, target
	return c.reducePublic(z), nil
}

// ExpBalanced computes exp(x) by peeling x into chunks of increasing
// valuation (see expBalancedCore): each chunk keeps the digits below a cut
// point, and its own series needs only a handful of naive terms. exp(x) is
// the product of the chunks' exponentials, since the split is additive.
// The chunks are peeled off in a loop, not by recursion.
func (c *Context) ExpBalanced(z, x *Element) (*Element, error) {
	v, ok := c.expConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: ExpBalanced: %w", ErrNotConvergent)
	}
	if x.IsZero() {
		return c.setOne(z, z.n), nil
	}
	return c.expBalancedCore(z, x, v, z.n)
}

// expBalancedBaseChunk is the relative-precision span at or below which
// expBalancedCore stops chopping x into further chunks and falls back to a
// direct naive evaluation.
const expBalancedBaseChunk = 8

// expBalancedCore computes exp(x) by peeling x into a chain of chunks of
// strictly increasing valuation: x = x_0 + x_1 + ... with ord_p(x_i) >=
// v + i*w for a chunk width w chosen so the chain has about sqrt(n-v)
// links. Each chunk's own series then needs only a handful of naive terms,
// since ExpBound shrinks as a chunk's valuation grows; exp(x) is the
// product of the per-chunk exponentials, since the split is additive. The
// chain has at most ceil((n-v)/w) links, so this always terminates.
func (c *Context) expBalancedCore(z, x *Element, v, n int64) (*Element, error) {
	span := n - v
	if span <= expBalancedBaseChunk {
		return c.expNaiveCore(z, x, v, n)
	}

	w := int64(1)
	for w*w < span {
		w++
	}

	result := c.setOne(c.New(n), n)
	remaining := x.Clone()
	remaining.n = n

	for cut := v + w; ; cut += w {
		if remaining.IsZero() {
			break
		}

		if cut >= n {
			yChunk := c.New(n)
			if _, err := c.expNaiveCore(yChunk, remaining, remaining.v, n); err != nil {
				return nil, err
			}
			c.Mul(result, result, yChunk)
			break
		}

		low := remaining.Clone()
		low.n = cut
		c.reducePublic(low)

		if !low.IsZero() {
			yChunk := c.New(n)
			if _, err := c.expNaiveCore(yChunk, low, low.v, n); err != nil {
				return nil, err
			}
			c.Mul(result, result, yChunk)
		}

		high := c.New(n)
		c.Sub(high, remaining, low)
		remaining = high
	}

	return c.Set(z, result), nil
}
