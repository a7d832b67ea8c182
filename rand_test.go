package padic

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandBelowRespectsBound(t *testing.T) {
	bound := big.NewInt(1000)
	for i := 0; i < 20; i++ {
		n := RandBelow(rand.Reader, bound)
		require.True(t, n.Sign() >= 0)
		require.Equal(t, -1, n.Cmp(bound))
	}
}

func TestRandBitsRange(t *testing.T) {
	n := RandBits(rand.Reader, 8)
	require.True(t, n.Sign() >= 0)
	require.Less(t, n.Int64(), int64(256))
}

func TestRandBitsZero(t *testing.T) {
	n := RandBits(rand.Reader, 0)
	require.Equal(t, 0, n.Sign())
}

func TestRandUnitIsCoprimeToP(t *testing.T) {
	c := testCtx(t)
	for i := 0; i < 10; i++ {
		u := c.RandUnit(rand.Reader, 10)
		g := new(big.Int).GCD(nil, nil, u.Unit(), c.P())
		require.Equal(t, 0, g.Cmp(big.NewInt(1)))
	}
}
