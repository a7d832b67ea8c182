package padic

import "golang.org/x/exp/constraints"

// ceilDiv returns ceil(a/b) for a >= 0, b > 0, generic over the integer
// type so it serves both the int64 exponent bookkeeping of Exp/Log and any
// BigInt-free word-sized variant of the same bound.
func ceilDiv[T constraints.Integer](a, b T) T {
	if b <= 0 {
		panic("padic: ceilDiv: non-positive denominator")
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
