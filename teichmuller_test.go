package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeichmullerFixedPoint(t *testing.T) {
	c, err := NewContext(big.NewInt(5), 0, 64, Terse)
	require.NoError(t, err)

	n := int64(4)
	x := c.SetInt(c.New(n), big.NewInt(2))

	z := c.New(n)
	_, err = c.Teichmuller(z, x)
	require.NoError(t, err)

	// t^(p-1) = 1.
	pm1 := new(big.Int).Sub(c.P(), big.NewInt(1))
	modulus, _ := c.PowUI(n)
	check := new(big.Int).Exp(z.Unit(), pm1, modulus)
	require.Equal(t, 0, check.Cmp(big.NewInt(1)))

	// t congruent to x mod p.
	require.Equal(t, new(big.Int).Mod(z.Unit(), c.P()).String(), new(big.Int).Mod(x.Unit(), c.P()).String())
}

func TestTeichmullerNonUnitFails(t *testing.T) {
	c := testCtx(t)
	n := int64(5)

	x := c.New(n)
	c.Shift(x, c.SetInt(c.New(n), big.NewInt(3)), -1)

	_, err := c.Teichmuller(c.New(n), x)
	require.ErrorIs(t, err, ErrNotUnit)
}

func TestTeichmullerOfMultipleOfP(t *testing.T) {
	c := testCtx(t)
	n := int64(5)

	x := c.SetInt(c.New(n), big.NewInt(7)) // p=7, divisible by p

	z := c.New(n)
	_, err := c.Teichmuller(z, x)
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestTeichmullerOfOne(t *testing.T) {
	c := testCtx(t)
	n := int64(5)

	x := c.SetInt(c.New(n), big.NewInt(1))
	z := c.New(n)
	_, err := c.Teichmuller(z, x)
	require.NoError(t, err)
	require.Equal(t, int64(0), z.Valuation())
	require.Equal(t, "1", z.Unit().String())
}
