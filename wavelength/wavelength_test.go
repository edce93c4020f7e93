package wavelength

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_Bounds(t *testing.T) {
	require.InDelta(t, MinNm, Key(0), 1e-9)
	require.InDelta(t, MaxNm, Key(255), 1e-9)
}

func TestKey_Monotonic(t *testing.T) {
	for v := 0; v < 255; v++ {
		require.Less(t, Key(byte(v)), Key(byte(v+1)), "key must be strictly increasing at %d", v)
	}
}

func TestValue_InvertsKey(t *testing.T) {
	for v := 0; v <= 255; v++ {
		require.Equal(t, byte(v), Value(Key(byte(v))))
	}
}

func TestValue_Clamps(t *testing.T) {
	require.Equal(t, byte(0), Value(100.0))
	require.Equal(t, byte(0), Value(MinNm-1))
	require.Equal(t, byte(255), Value(MaxNm+1))
	require.Equal(t, byte(255), Value(10000.0))
}

func TestValue_RoundsToNearest(t *testing.T) {
	mid := (Key(10) + Key(11)) / 2
	got := Value(mid)
	require.Contains(t, []byte{10, 11}, got)

	closerTo10 := Key(10) + (Key(11)-Key(10))*0.25
	require.Equal(t, byte(10), Value(closerTo10))
}
