package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrtOddPrime(t *testing.T) {
	c, err := NewContext(big.NewInt(5), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(10)
	// 6 is a square mod 5 (1^2=1, 4^2=16=1, ... 6 mod 5 = 1, a QR).
	x := c.SetInt(c.New(n), big.NewInt(6))

	z := c.New(n)
	_, ok := c.Sqrt(z, x)
	require.True(t, ok)

	sq := c.New(n)
	c.Mul(sq, z, z)

	diff := c.New(n)
	c.Sub(diff, sq, x)
	require.True(t, diff.IsZero())
}

func TestSqrtNonSquareOdd(t *testing.T) {
	c, err := NewContext(big.NewInt(5), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(10)
	x := c.SetInt(c.New(n), big.NewInt(2)) // 2 is not a QR mod 5

	z := c.New(n)
	_, ok := c.Sqrt(z, x)
	require.False(t, ok)
	require.True(t, z.IsZero())
}

func TestSqrtOddValuationFails(t *testing.T) {
	c, err := NewContext(big.NewInt(5), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(10)
	x := c.New(n)
	c.Shift(x, c.SetInt(c.New(n), big.NewInt(6)), 1) // valuation 1

	_, ok := c.Sqrt(c.New(n), x)
	require.False(t, ok)
}

func TestSqrtTwo(t *testing.T) {
	c, err := NewContext(big.NewInt(2), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(12)
	x := c.SetInt(c.New(n), big.NewInt(17)) // 17 = 1 mod 8

	z := c.New(n)
	_, ok := c.Sqrt(z, x)
	require.True(t, ok)

	sq := c.New(n)
	c.Mul(sq, z, z)
	diff := c.New(n)
	c.Sub(diff, sq, x)
	require.True(t, diff.IsZero())
}

func TestSqrtTwoNonSquare(t *testing.T) {
	c, err := NewContext(big.NewInt(2), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(12)
	x := c.SetInt(c.New(n), big.NewInt(3)) // 3 mod 8 = 3, not 1

	_, ok := c.Sqrt(c.New(n), x)
	require.False(t, ok)
}

func TestMustSqrt(t *testing.T) {
	c, err := NewContext(big.NewInt(5), 0, 64, Terse)
	require.NoError(t, err)
	n := int64(10)

	ok := c.SetInt(c.New(n), big.NewInt(6))
	_, err = c.MustSqrt(c.New(n), ok)
	require.NoError(t, err)

	bad := c.SetInt(c.New(n), big.NewInt(2))
	_, err = c.MustSqrt(c.New(n), bad)
	require.ErrorIs(t, err, ErrNotASquare)
}

func TestSqrtOfZero(t *testing.T) {
	c := testCtx(t)
	z := c.New(10)
	_, ok := c.Sqrt(z, c.New(10))
	require.True(t, ok)
	require.True(t, z.IsZero())
}
