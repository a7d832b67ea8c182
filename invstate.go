package padic

import (
	"fmt"
	"math/big"
)

// InvState caches the doubling schedule and precomputed prime powers used
// to invert a unit mod p^N by Hensel lifting, so that repeated Invert calls
// through one InvState at the same N reuse the schedule, the powers and two
// temporaries. Each Invert call still allocates its working value, and Inv
// builds a fresh InvState on every call, so the divisions inside Exp and
// Log do not share one. An InvState is not safe for concurrent use and is scoped to a
// single logical work stream, same as the rest of this package's scratch-
// carrying state.
type InvState struct {
	ctx *Context
	n   int64

	// sched holds a_0=N, a_1=ceil(a_0/2), ..., a_{k-1}=1, the doubling
	// schedule of spec.md's Hensel inversion kernel.
	sched []int64
	// pow[i] = p^sched[i], precomputed once.
	pow []*big.Int

	tmp0 *big.Int
	tmp1 *big.Int
}

// NewInvState builds the doubling schedule and precomputes pow[] for
// inverting units to absolute precision n. n must be >= 1.
func (c *Context) NewInvState(n int64) *InvState {
	if n < 1 {
		panic(fmt.Errorf("padic: NewInvState: n must be >= 1, got %d", n))
	}

	sched := []int64{n}
	for sched[len(sched)-1] > 1 {
		a := sched[len(sched)-1]
		sched = append(sched, (a+1)/2)
	}

	pow := make([]*big.Int, len(sched))
	for i, a := range sched {
		pw, owned := c.PowUI(a)
		if owned {
			pow[i] = pw
		} else {
			pow[i] = new(big.Int).Set(pw)
		}
	}

	return &InvState{
		ctx:   c,
		n:     n,
		sched: sched,
		pow:   pow,
		tmp0:  new(big.Int),
		tmp1:  new(big.Int),
	}
}

// Invert sets z = u^{-1} mod p^N, N the InvState's configured precision,
// via Hensel doubling: starting from x = u^{-1} mod p, each step
//
//	x <- x * (2 - u*x) mod p^(a_i)
//
// doubles the valid relative precision of x, walking the schedule from
// its coarsest (a_{k-1}=1) entry back to the finest (a_0=N). u must be a
// unit, i.e. gcd(u, p) = 1. z may alias u: u is read on every step of the
// loop, and z is written only once the loop has finished.
func (s *InvState) Invert(z, u *big.Int) *big.Int {
	p := s.ctx.p

	x := new(big.Int).ModInverse(new(big.Int).Mod(u, p), p)
	if x == nil {
		panic(fmt.Errorf("padic: Invert: %v is not invertible mod %v", u, p))
	}

	for i := len(s.sched) - 2; i >= 0; i-- {
		modulus := s.pow[i]

		// x <- x * (2 - u*x) mod modulus
		s.tmp0.Mod(u, modulus)
		s.tmp0.Mul(s.tmp0, x)
		s.tmp1.SetInt64(2)
		s.tmp1.Sub(s.tmp1, s.tmp0)
		x.Mul(x, s.tmp1)
		x.Mod(x, modulus)
	}

	return z.Set(x)
}

// Inv sets z = x^{-1} at x's declared precision (z.n is set to x.n,
// replacing z's own), and the Hensel lift uses x's own (x.n, x.v)
// exactly as spec.md's padic_inv describes: w = inv(u) mod
// p^(x.n+x.v), result w*p^(-x.v) at precision x.n.
//
// Callers that need the quotient correct to a precision different from
// x.n (as Div does for its divisor) construct a temporary Element with
// the adjusted n before calling Inv; Inv itself never second-guesses the
// n it is handed.
//
// Fails with ErrPrecisionLost when x.v < -x.n (there is nothing left to
// invert: x's relative precision is exhausted before reaching a unit).
func (c *Context) Inv(z, x *Element) (*Element, error) {
	if x.v < -x.n {
		return nil, fmt.Errorf("padic: Inv: %w: valuation %d below -precision %d", ErrPrecisionLost, x.v, x.n)
	}

	np := x.n + x.v
	if np <= 0 {
		z.u = new(big.Int)
		z.v = 0
		z.n = x.n
		return z, nil
	}

	state := c.NewInvState(np)
	w := new(big.Int)
	state.Invert(w, x.u)

	z.u = w
	z.v = -x.v
	z.n = x.n

	return c.reducePublic(z), nil
}
