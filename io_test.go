package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTerse(t *testing.T) {
	c, err := NewContext(big.NewInt(7), 0, 64, Terse)
	require.NoError(t, err)
	n := int64(5)

	t.Run("plain integer", func(t *testing.T) {
		x := c.SetInt(c.New(n), big.NewInt(23))
		require.Equal(t, "23", c.Format(x))
	})

	t.Run("fraction for negative valuation", func(t *testing.T) {
		x := c.New(n)
		c.Shift(x, c.SetInt(c.New(n), big.NewInt(12)), -1)
		got := c.Format(x)
		require.Contains(t, got, "/7")
	})

	t.Run("zero", func(t *testing.T) {
		require.Equal(t, "0", c.Format(c.New(n)))
	})
}

func TestFormatSeries(t *testing.T) {
	c, err := NewContext(big.NewInt(7), 0, 64, Series)
	require.NoError(t, err)
	n := int64(3)

	x := c.New(n)
	c.Shift(x, c.SetInt(c.New(n), big.NewInt(5)), -1) // 5 * 7^-1

	got := c.Format(x)
	require.Contains(t, got, "7^-1")
}

func TestFormatValUnit(t *testing.T) {
	c, err := NewContext(big.NewInt(7), 0, 64, ValUnit)
	require.NoError(t, err)
	n := int64(5)

	t.Run("v = 0 collapses to u", func(t *testing.T) {
		x := c.SetInt(c.New(n), big.NewInt(3))
		require.Equal(t, "3", c.Format(x))
	})

	t.Run("u = 1 collapses to p^v", func(t *testing.T) {
		x := c.SetInt(c.New(n), big.NewInt(49))
		require.Equal(t, "7^2", c.Format(x))
	})

	t.Run("v = 1 renders u*p", func(t *testing.T) {
		x := c.SetInt(c.New(n), big.NewInt(21)) // 3 * 7
		require.Equal(t, "3*7", c.Format(x))
	})
}

func TestDebugString(t *testing.T) {
	c := testCtx(t)
	x := c.SetInt(c.New(5), big.NewInt(21))
	require.Equal(t, "(3 1 5)", x.DebugString())
}
