package padic

import (
	"fmt"
	"math/big"
)

// PrintMode selects how Context.Format renders an Element.
type PrintMode int

const (
	// Terse prints the unique rational representative of x in the style
	// "12/7" (v < 0) or "23" (v >= 0).
	Terse PrintMode = iota
	// Series prints the base-p expansion "d_v*p^v + d_{v+1}*p^{v+1} + ...".
	Series
	// ValUnit prints the literal "u*p^v" form.
	ValUnit
)

func (m PrintMode) String() string {
	switch m {
	case Terse:
		return "Terse"
	case Series:
		return "Series"
	case ValUnit:
		return "ValUnit"
	default:
		return fmt.Sprintf("PrintMode(%d)", int(m))
	}
}

// DefaultPrecision is the absolute precision N assumed when a caller does
// not specify one explicitly.
const DefaultPrecision = 20

// Context holds the prime p, a dense cache of p^i for i in [min, max], and
// the print mode used by Format. It is read-mostly: the cache is built once
// by NewContext and never mutated afterwards, so a *Context may be shared
// across goroutines without locking as long as no goroutine calls Close.
//
// Context does not itself carry an absolute precision: every Element
// carries its own, per the data model's "the precision N of an Element is
// immutable from outside operations".
type Context struct {
	p        *big.Int
	min, max int64
	pow      []*big.Int // pow[i-min] = p^i, for i in [min, max]

	isWord bool
	pWord  uint64 // p as a uint64, only meaningful when isWord

	mode PrintMode
}

// NewContext precomputes p^min..p^max and returns a Context ready for use.
// p is assumed prime; primality is not verified.
//
// Fails with ErrInvalidArg when min > max, either bound is negative, or
// mode is not one of Terse, Series, ValUnit.
func NewContext(p *big.Int, min, max int64, mode PrintMode) (*Context, error) {
	if min > max {
		return nil, fmt.Errorf("padic: NewContext: %w: min (%d) > max (%d)", ErrInvalidArg, min, max)
	}
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("padic: NewContext: %w: min and max must be non-negative, got min=%d max=%d", ErrInvalidArg, min, max)
	}
	if mode != Terse && mode != Series && mode != ValUnit {
		return nil, fmt.Errorf("padic: NewContext: %w: unrecognized print mode %v", ErrInvalidArg, mode)
	}
	if p == nil || p.Sign() <= 0 {
		return nil, fmt.Errorf("padic: NewContext: %w: p must be a positive integer", ErrInvalidArg)
	}

	c := &Context{
		p:    new(big.Int).Set(p),
		min:  min,
		max:  max,
		pow:  make([]*big.Int, max-min+1),
		mode: mode,
	}

	cur := new(big.Int).Exp(p, big.NewInt(min), nil)
	c.pow[0] = cur
	for i := int64(1); i < int64(len(c.pow)); i++ {
		next := new(big.Int).Mul(c.pow[i-1], p)
		c.pow[i] = next
	}

	if p.IsUint64() {
		if w := p.Uint64(); w <= (1<<32)-1 {
			c.isWord = true
			c.pWord = w
		}
	}

	return c, nil
}

// Close releases the Context's cached state.
func (c *Context) Close() {
	c.pow = nil
}

// P returns the prime p. The returned value must not be mutated.
func (c *Context) P() *big.Int {
	return c.p
}

// Mode returns the configured print mode.
func (c *Context) Mode() PrintMode {
	return c.mode
}

// PowUI returns p^e. When e falls inside [min, max] it returns a
// non-owning handle into the cache: the caller must not mutate the result
// and must not treat owned as true. Otherwise it allocates a fresh p^e via
// fast exponentiation and returns owned = true.
//
// This is the only place big-integer allocation is avoidable in hot loops;
// Inv, Sqrt, Teichmuller, Exp and Log all call it repeatedly with bounded,
// predictable exponents and should size a Context's [min, max] accordingly.
func (c *Context) PowUI(e int64) (pw *big.Int, owned bool) {
	if e >= c.min && e <= c.max {
		return c.pow[e-c.min], false
	}
	if e < 0 {
		// Negative exponents never occur for a modulus p^e; callers that
		// need p^{-e} as a denominator work with the positive exponent and
		// divide, per the arithmetic core's shift/valuation bookkeeping.
		panic(fmt.Errorf("padic: PowUI: negative exponent %d", e))
	}
	return new(big.Int).Exp(c.p, big.NewInt(e), nil), true
}
