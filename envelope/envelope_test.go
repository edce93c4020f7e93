package envelope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Luxbin-labs/luxbin-photonic-codec/codec"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

func testContainer(t *testing.T) []byte {
	t.Helper()
	data := bytes.Repeat([]byte("AAAABBBBCCCCDDDD"), 64)
	container, err := codec.Compress(data)
	require.NoError(t, err)

	return container
}

func TestPackUnpack_AllCompressionTypes(t *testing.T) {
	container := testContainer(t)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			env, err := Pack(container, ct)
			require.NoError(t, err)

			restored, err := Unpack(env)
			require.NoError(t, err)
			require.Equal(t, container, restored)
		})
	}
}

func TestPack_UnknownCompressionType(t *testing.T) {
	_, err := Pack(testContainer(t), format.CompressionType(0x7F))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestUnpack_BadMagic(t *testing.T) {
	env, err := Pack(testContainer(t), format.CompressionNone)
	require.NoError(t, err)
	env[0] = 'X'

	_, err = Unpack(env)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestUnpack_TooShort(t *testing.T) {
	_, err := Unpack([]byte{'L', 'X', 'B', 'E', 1})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestUnpack_UnknownCompressionByte(t *testing.T) {
	env, err := Pack(testContainer(t), format.CompressionNone)
	require.NoError(t, err)
	env[section.MagicSize] = 0x7F

	_, err = Unpack(env)
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestUnpack_DetectsCorruption(t *testing.T) {
	env, err := Pack(testContainer(t), format.CompressionNone)
	require.NoError(t, err)

	// Flip a payload byte: digest must catch it.
	env[len(env)-1] ^= 0xFF
	_, err = Unpack(env)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestUnpack_SizeMismatch(t *testing.T) {
	env, err := Pack(testContainer(t), format.CompressionNone)
	require.NoError(t, err)

	_, err = Unpack(env[:len(env)-4])
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestPackUnpack_EmptyContainer(t *testing.T) {
	env, err := Pack(nil, format.CompressionS2)
	require.NoError(t, err)

	restored, err := Unpack(env)
	require.NoError(t, err)
	require.Empty(t, restored)
}

func TestStats(t *testing.T) {
	container := testContainer(t)
	env, err := Pack(container, format.CompressionZstd)
	require.NoError(t, err)

	stats, err := Stats(env)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(container)), stats.OriginalSize)
	require.Equal(t, int64(len(env)-section.EnvelopeHeaderSize), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0)

	_, err = Stats([]byte{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
