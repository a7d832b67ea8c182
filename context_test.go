package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewContext(big.NewInt(7), 0, 32, Terse)
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, big.NewInt(7), c.P())
		require.Equal(t, Terse, c.Mode())
	})

	t.Run("min greater than max", func(t *testing.T) {
		_, err := NewContext(big.NewInt(7), 10, 5, Terse)
		require.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("negative bounds", func(t *testing.T) {
		_, err := NewContext(big.NewInt(7), -1, 5, Terse)
		require.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("unrecognized mode", func(t *testing.T) {
		_, err := NewContext(big.NewInt(7), 0, 5, PrintMode(99))
		require.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("non-positive p", func(t *testing.T) {
		_, err := NewContext(big.NewInt(0), 0, 5, Terse)
		require.ErrorIs(t, err, ErrInvalidArg)
	})
}

func TestPowUI(t *testing.T) {
	c, err := NewContext(big.NewInt(7), 0, 8, Terse)
	require.NoError(t, err)

	t.Run("cached hit", func(t *testing.T) {
		pw, owned := c.PowUI(4)
		require.False(t, owned)
		require.Equal(t, big.NewInt(2401), pw)
	})

	t.Run("cache miss allocates", func(t *testing.T) {
		pw, owned := c.PowUI(20)
		require.True(t, owned)
		want := new(big.Int).Exp(big.NewInt(7), big.NewInt(20), nil)
		require.Equal(t, 0, want.Cmp(pw))
	})

	t.Run("negative exponent panics", func(t *testing.T) {
		require.Panics(t, func() { c.PowUI(-1) })
	})
}

func TestPrintModeString(t *testing.T) {
	require.Equal(t, "Terse", Terse.String())
	require.Equal(t, "Series", Series.String())
	require.Equal(t, "ValUnit", ValUnit.String())
	require.Contains(t, PrintMode(42).String(), "42")
}
