package padic

import (
	"fmt"
	"math/big"
	"math/bits"
)

// ValuationFactorial returns ord_p(n!) for a word-sized, non-negative n,
// via Legendre's formula ord_p(n!) = (n - s_p(n)) / (p - 1), s_p(n) the
// sum of n's base-p digits. For p = 2 this specializes to n - popcount(n).
func ValuationFactorial(n int64, p *big.Int) int64 {
	if n < 0 {
		panic(fmt.Errorf("padic: ValuationFactorial: n must be >= 0, got %d", n))
	}
	if p.Cmp(two) == 0 {
		return n - int64(bits.OnesCount64(uint64(n)))
	}

	pw := p.Int64()
	var digitSum int64
	rem := n
	for rem > 0 {
		digitSum += rem % pw
		rem /= pw
	}
	return (n - digitSum) / (pw - 1)
}

// ValuationFactorialBig returns ord_p(n!) for an arbitrary non-negative
// BigInt n, the same Legendre computation carried out in BigInt
// arithmetic for n too large to fit a word.
func ValuationFactorialBig(n, p *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic(fmt.Errorf("padic: ValuationFactorialBig: n must be >= 0, got %v", n))
	}

	digitSum := new(big.Int)
	rem := new(big.Int).Set(n)
	zero := new(big.Int)
	for rem.Cmp(zero) > 0 {
		q, r := new(big.Int).QuoRem(rem, p, new(big.Int))
		digitSum.Add(digitSum, r)
		rem = q
	}

	num := new(big.Int).Sub(n, digitSum)
	den := new(big.Int).Sub(p, big.NewInt(1))
	return num.Quo(num, den)
}
