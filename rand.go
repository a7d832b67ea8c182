package padic

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandBelow returns a uniform random *big.Int in [0, bound), using reader
// as its entropy source. Panics if bound is not positive or reader fails,
// mirroring crypto/rand.Int's own contract.
func RandBelow(reader io.Reader, bound *big.Int) *big.Int {
	n, err := rand.Int(reader, bound)
	if err != nil {
		panic(fmt.Errorf("padic: RandBelow: %w", err))
	}
	return n
}

// RandBits returns a uniform random *big.Int in [0, 2^n), using reader as
// its entropy source.
func RandBits(reader io.Reader, n int64) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return RandBelow(reader, bound)
}

// RandUnit returns a uniform random unit of Z_p (coprime to p) reduced at
// precision n, using reader as its entropy source. Used by tests and by
// callers that need arbitrary p-adic integers without hand-rolling the
// rejection loop themselves.
func (c *Context) RandUnit(reader io.Reader, n int64) *Element {
	modulus, owned := c.PowUI(n)
	if !owned {
		modulus = new(big.Int).Set(modulus)
	}

	for {
		candidate := RandBelow(reader, modulus)
		if new(big.Int).GCD(nil, nil, candidate, c.p).Cmp(bigOne) == 0 {
			z := c.New(n)
			z.u = candidate
			z.v = 0
			return c.reducePublic(z)
		}
	}
}

var bigOne = big.NewInt(1)
