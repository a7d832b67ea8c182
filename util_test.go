package padic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilDiv(t *testing.T) {
	require.Equal(t, int64(0), ceilDiv[int64](0, 3))
	require.Equal(t, int64(0), ceilDiv[int64](-4, 3))
	require.Equal(t, int64(1), ceilDiv[int64](1, 3))
	require.Equal(t, int64(2), ceilDiv[int64](4, 3))
	require.Equal(t, int64(2), ceilDiv[int64](6, 3))
	require.Panics(t, func() { ceilDiv[int64](4, 0) })
}
