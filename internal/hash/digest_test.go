package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest_Deterministic(t *testing.T) {
	data := []byte("luxbin container payload")
	require.Equal(t, Digest(data), Digest(data))
	require.NotEqual(t, Digest(data), Digest([]byte("luxbin container payloae")))
}

func TestDigest_MatchesString(t *testing.T) {
	require.Equal(t, Digest([]byte("spectral")), DigestString("spectral"))
}

func TestDigest_Empty(t *testing.T) {
	// xxHash64 of the empty input is a fixed constant.
	require.Equal(t, uint64(0xef46db3751d8e999), Digest(nil))
}
