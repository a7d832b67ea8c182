package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvStateInvert(t *testing.T) {
	c := testCtx(t)
	n := int64(8)
	modulus, _ := c.PowUI(n)

	state := c.NewInvState(n)

	for _, u := range []int64{1, 2, 3, 4, 5, 6, 50, 123} {
		w := new(big.Int)
		state.Invert(w, big.NewInt(u))

		check := new(big.Int).Mul(w, big.NewInt(u))
		check.Mod(check, modulus)
		require.Equal(t, 0, check.Cmp(big.NewInt(1)), "u=%d", u)
	}
}

func TestInv(t *testing.T) {
	c := testCtx(t)
	n := int64(5)

	x := c.SetInt(c.New(n), big.NewInt(2))
	z := c.New(n)
	_, err := c.Inv(z, x)
	require.NoError(t, err)

	prod := c.New(n)
	c.Mul(prod, x, z)
	one := c.setOne(c.New(n), n)
	require.Equal(t, one.Unit().String(), prod.Unit().String())
	require.Equal(t, one.Valuation(), prod.Valuation())
}

func TestInvPrecisionLost(t *testing.T) {
	c := testCtx(t)
	n := int64(5)

	x := c.New(n)
	c.Shift(x, c.setOne(c.New(n), n), -10) // valuation -10, below -n

	_, err := c.Inv(c.New(n), x)
	require.ErrorIs(t, err, ErrPrecisionLost)
}

func TestInvOfNegativeValuation(t *testing.T) {
	c := testCtx(t)
	n := int64(6)

	x := c.New(n)
	c.Shift(x, c.SetInt(c.New(n), big.NewInt(3)), -2)

	z := c.New(n)
	_, err := c.Inv(z, x)
	require.NoError(t, err)
	require.Equal(t, int64(2), z.Valuation())
}
