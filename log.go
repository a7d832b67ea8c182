package padic

import (
	"fmt"
	"math/big"
)

// logConverges reports whether x lies in the domain of convergence of Log
// (ord_p(1-x) >= 1 for odd p, >= 2 for p = 2) and returns the valuation of
// delta = x - 1, the series argument. x = 1 trivially converges (log(1) =
// 0) regardless of p.
func (c *Context) logConverges(x *Element) (*Element, int64, bool) {
	one := c.setOne(c.New(x.n), x.n)
	delta := c.Sub(c.New(x.n), x, one)
	if delta.IsZero() {
		return delta, 0, true
	}
	if c.p.Cmp(two) == 0 {
		return delta, delta.v, delta.v >= 2
	}
	return delta, delta.v, delta.v >= 1
}

// valuationInt64 returns ord_p(m) for a positive int64 m.
func (c *Context) valuationInt64(m int64) int64 {
	if m <= 0 {
		return 0
	}
	mb := big.NewInt(m)
	var v int64
	for {
		qq, r := new(big.Int).QuoRem(mb, c.p, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		mb = qq
		v++
	}
	return v
}

// LogBound returns the smallest i such that ord_p(delta^i/i) >= n for a
// series argument delta of valuation v, the truncation point M used by
// every Log variant. Unlike ExpBound, the denominator i (not i!) loses
// only ord_p(i) <= log_p(i), so the bound is found by direct search from
// the floor estimate ceil(n/v).
func (c *Context) LogBound(v, n int64) int64 {
	if v <= 0 {
		panic(fmt.Errorf("padic: LogBound: valuation must be positive, got %d", v))
	}
	m := ceilDiv(n, v)
	if m < 1 {
		m = 1
	}
	for m*v-c.valuationInt64(m) < n {
		m++
	}
	return m
}

// logDispatchRectangularMax is the relative-precision span at or below
// which Log prefers LogRectangular's baby-step/giant-step rearrangement
// over the chunked LogBalanced/LogSatoh variants, whose setup cost only
// pays off once the series itself is long.
const logDispatchRectangularMax = 64

// Log sets z = log(x), reduced at z's own declared precision, dispatching
// on (N, v, p) to the cheapest variant for the requested work: LogNaive
// for a short series, LogRectangular once the series is long enough to
// amortize its table, LogSatoh when p is small enough that repeated
// p-th-powering is cheap, LogBalanced otherwise. Fails with
// ErrNotConvergent when x is outside the domain of convergence.
func (c *Context) Log(z, x *Element) (*Element, error) {
	_, v, ok := c.logConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: Log: %w", ErrNotConvergent)
	}

	switch span := z.n - v; {
	case span <= logBalancedBaseChunk:
		return c.LogNaive(z, x)
	case span <= logDispatchRectangularMax:
		return c.LogRectangular(z, x)
	case c.isWord:
		return c.LogSatoh(z, x)
	default:
		return c.LogBalanced(z, x)
	}
}

// LogNaive computes log(x) by direct accumulation of the alternating
// series Sum (-1)^(i+1) * delta^i / i, delta = x - 1.
func (c *Context) LogNaive(z, x *Element) (*Element, error) {
	delta, v, ok := c.logConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: LogNaive: %w", ErrNotConvergent)
	}
	if delta.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		return c.reducePublic(z), nil
	}
	return c.logNaiveCore(z, delta, v, z.n)
}

func (c *Context) logNaiveCore(z, delta *Element, v, n int64) (*Element, error) {
	m := c.LogBound(v, n)

	// Dividing by i < m loses up to ord_p(i) digits, so the series is
	// summed that many digits above the target precision.
	target := n
	for pk := new(big.Int).Set(c.p); pk.Cmp(big.NewInt(m-1)) <= 0; pk.Mul(pk, c.p) {
		n++
	}

	sum := c.New(n)
	sum.u = new(big.Int)
	sum.v = 0

	term := c.setOne(c.New(n), n)
	neg := false

	for i := int64(1); i < m; i++ {
		c.Mul(term, term, delta)

		quot := c.New(n)
		di := c.SetInt(c.New(n), big.NewInt(i))
		if _, err := c.Div(quot, term, di); err != nil {
			return nil, fmt.Errorf("padic: log: %w", err)
		}

		if neg {
			c.Sub(sum, sum, quot)
		} else {
			c.Add(sum, sum, quot)
		}
		neg = !neg
	}

	z.u, z.v, z.n = sum.u, sum.v, target
	return c.reducePublic(z), nil
}

// LogRectangular computes log(x) with the same baby-step/giant-step
// rearrangement ExpRectangular uses, applied to the alternating series in
// delta = x - 1.
func (c *Context) LogRectangular(z, x *Element) (*Element, error) {
	delta, v, ok := c.logConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: LogRectangular: %w", ErrNotConvergent)
	}
	if delta.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		return c.reducePublic(z), nil
	}
	return c.logRectangularCore(z, delta, v, z.n)
}

func (c *Context) logRectangularCore(z, delta *Element, v, n int64) (*Element, error) {
	m := c.LogBound(v, n)

	// Dividing by i < m loses up to ord_p(i) digits, so the series is
	// summed that many digits above the target precision.
	target := n
	for pk := new(big.Int).Set(c.p); pk.Cmp(big.NewInt(m-1)) <= 0; pk.Mul(pk, c.p) {
		n++
	}

	b := int64(1)
	for b*b < m {
		b++
	}

	// Baby steps: dPow[j] = delta^j, j = 0..b.
	dPow := make([]*Element, b+1)
	dPow[0] = c.setOne(c.New(n), n)
	for j := int64(1); j <= b; j++ {
		dPow[j] = c.Mul(c.New(n), dPow[j-1], delta)
	}

	// Table of signed inverse indices: invIdx[i] = (-1)^(i+1) / i, i = 1..m-1.
	invIdx := make([]*Element, m)
	for i := int64(1); i < m; i++ {
		di := c.SetInt(c.New(n), big.NewInt(i))
		one := c.setOne(c.New(n), n)
		invIdx[i] = c.New(n)
		if _, err := c.Div(invIdx[i], one, di); err != nil {
			return nil, fmt.Errorf("padic: log: %w", err)
		}
		if i%2 == 0 {
			c.Neg(invIdx[i], invIdx[i])
		}
	}

	sum := c.New(n)
	sum.u = new(big.Int)
	sum.v = 0

	giant := c.setOne(c.New(n), n) // delta^(q*b), updated each block
	for q := int64(0); q*b < m; q++ {
		lo := q * b
		hi := min(b, m-lo)

		inner := c.New(n)
		inner.u = new(big.Int)
		inner.v = 0
		for r := int64(0); r < hi; r++ {
			idx := lo + r
			if idx == 0 {
				continue
			}
			term := c.Mul(c.New(n), invIdx[idx], dPow[r])
			c.Add(inner, inner, term)
		}

		outer := c.Mul(c.New(n), inner, giant)
		c.Add(sum, sum, outer)

		c.Mul(giant, giant, dPow[b])
	}

	z.u, z.v, z.n = sum.u, sum.v, target
	return c.reducePublic(z), nil
}

// LogSatoh computes log(x) via the Satoh-Skjernaa-Taguchi trick: raise x
// to successive p-th powers until the lift's argument has gained enough
// valuation that a direct naive evaluation is cheap, then divide back out
// by the same power of p. ord_p(x^(p^k) - 1) > k grows with k, so a modest
// number of squarings (p-th powerings) buys several extra digits of
// convergence speed per naive term.
func (c *Context) LogSatoh(z, x *Element) (*Element, error) {
	_, _, ok := c.logConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: LogSatoh: %w", ErrNotConvergent)
	}

	n := z.n
	const maxLifts = 8
	target := n + maxLifts
	lift := x.Clone()
	lift.n = target

	k := int64(0)
	for {
		_, lv, _ := c.logConverges(lift)
		if lv*2 >= target || k >= maxLifts {
			break
		}
		next := c.New(target)
		pe := c.SetInt(c.New(target), new(big.Int).Set(c.p))
		if err := c.powElement(next, lift, pe); err != nil {
			return nil, fmt.Errorf("padic: LogSatoh: %w", err)
		}
		lift = next
		k++
	}

	delta, lv, ok := c.logConverges(lift)
	if !ok {
		return nil, fmt.Errorf("padic: LogSatoh: %w", ErrNotConvergent)
	}

	raw := c.New(target)
	if delta.IsZero() {
		raw.u = new(big.Int)
		raw.v = 0
	} else if _, err := c.logNaiveCore(raw, delta, lv, target); err != nil {
		return nil, err
	}

	if k == 0 {
		return c.Set(z, c.reducePublic(raw)), nil
	}

	pk := new(big.Int).Exp(c.p, big.NewInt(k), nil)
	pkElem := c.SetInt(c.New(target), pk)
	if _, err := c.Div(z, raw, pkElem); err != nil {
		return nil, fmt.Errorf("padic: LogSatoh: %w", err)
	}
	return c.reducePublic(z), nil
}

// powElement sets z = x^e for a non-negative integer exponent e (itself a
// p-adic integer), by repeated squaring via Mul.
func (c *Context) powElement(z, x, e *Element) error {
	exp, err := c.Int(new(big.Int), e)
	if err != nil {
		return err
	}

	result := c.setOne(c.New(z.n), z.n)
	base := x.Clone()
	ee := new(big.Int).Set(exp)

	for ee.Sign() > 0 {
		if ee.Bit(0) == 1 {
			c.Mul(result, result, base)
		}
		c.Mul(base, base, base)
		ee.Rsh(ee, 1)
	}

	c.Set(z, result)
	return nil
}

// LogBalanced computes log(x) by peeling delta = x - 1 into chunks of
// increasing valuation, the same chunked scheme ExpBalanced uses: with
// delta_low the part of the remaining argument below a cut point,
// log(1+delta) = log(1+delta_low) + log((1+delta) / (1+delta_low)), and the
// second factor's argument has valuation past the cut, so its own series
// needs only a handful of naive terms. The chunks are peeled off in a loop,
// not by recursion.
func (c *Context) LogBalanced(z, x *Element) (*Element, error) {
	delta, v, ok := c.logConverges(x)
	if !ok {
		return nil, fmt.Errorf("padic: LogBalanced: %w", ErrNotConvergent)
	}
	if delta.IsZero() {
		z.u = new(big.Int)
		z.v = 0
		return c.reducePublic(z), nil
	}
	return c.logBalancedCore(z, delta, v, z.n)
}

// logBalancedBaseChunk mirrors expBalancedBaseChunk.
const logBalancedBaseChunk = 8

func (c *Context) logBalancedCore(z, delta *Element, v, n int64) (*Element, error) {
	span := n - v
	if span <= logBalancedBaseChunk {
		return c.logNaiveCore(z, delta, v, n)
	}

	w := int64(1)
	for w*w < span {
		w++
	}

	result := c.New(n)
	result.u = new(big.Int)
	result.v = 0

	remaining := delta.Clone()
	remaining.n = n

	for cut := v + w; ; cut += w {
		if remaining.IsZero() {
			break
		}

		if cut >= n {
			yChunk := c.New(n)
			if _, err := c.logNaiveCore(yChunk, remaining, remaining.v, n); err != nil {
				return nil, err
			}
			c.Add(result, result, yChunk)
			break
		}

		low := remaining.Clone()
		low.n = cut
		c.reducePublic(low)

		if !low.IsZero() {
			yChunk := c.New(n)
			if _, err := c.logNaiveCore(yChunk, low, low.v, n); err != nil {
				return nil, err
			}
			c.Add(result, result, yChunk)
		}

		// remaining_new solves (1+remaining) = (1+low)*(1+remaining_new),
		// i.e. remaining_new = (remaining - low) / (1 + low).
		diff := c.New(n)
		c.Sub(diff, remaining, low)

		onePlusLow := c.setOne(c.New(n), n)
		c.Add(onePlusLow, onePlusLow, low)

		next := c.New(n)
		if _, err := c.Div(next, diff, onePlusLow); err != nil {
			return nil, fmt.Errorf("padic: log: %w", err)
		}
		remaining = next
	}

	return c.Set(z, result), nil
}
