package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// segmentLike builds bytes with the texture of an extracted RIFF stream:
// a short structured header followed by repetitive payload.
func segmentLike(size int) []byte {
	buf := []byte("RIFF\x00\x10\x00\x00WAVE")
	for len(buf) < size {
		buf = append(buf, bytes.Repeat([]byte{0x11, 0x22, 0x33, 0x44}, 64)...)
	}

	return buf[:size]
}

func TestCodecsRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"noop": NewNoOpCodec(),
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	}

	data := segmentLike(16 * 1024)

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

func TestCodecsCompressRepetitiveData(t *testing.T) {
	data := segmentLike(64 * 1024)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data))
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for name, codec := range map[string]Codec{
		"noop": NewNoOpCodec(),
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestNoOpCodecPassesThrough(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}
