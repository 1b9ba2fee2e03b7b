package scan

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/riffscan/endian"
)

// lablCandidate builds tag + size + id + text bytes.
func lablCandidate(tag string, declared uint32, text []byte) []byte {
	buf := []byte(tag)
	buf = binary.LittleEndian.AppendUint32(buf, declared)
	buf = binary.LittleEndian.AppendUint32(buf, 42) // cue id

	return append(buf, text...)
}

func TestExtractLabel(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	t.Run("Accepts well-formed label", func(t *testing.T) {
		seg := append([]byte("RIFF\x00\x00\x00\x00WAVE"), lablCandidate("labl", 8, []byte("kick_01\x00"))...)
		require.Equal(t, "kick_01", ExtractLabel(seg, le))
	})

	t.Run("Sanitizes unsafe characters", func(t *testing.T) {
		seg := lablCandidate("labl", 12, []byte("a/b\\c d\x01e._\x00"))
		require.Equal(t, "a_b_c_d_e._", ExtractLabel(seg, le))
	})

	t.Run("Rejects oversized declared length", func(t *testing.T) {
		text := make([]byte, 300)
		for i := range text {
			text[i] = 'x'
		}
		text[299] = 0
		seg := lablCandidate("labl", 300, text)
		require.Empty(t, ExtractLabel(seg, le))
	})

	t.Run("Rejects undersized declared length", func(t *testing.T) {
		seg := lablCandidate("labl", 5, []byte("abcd\x00"))
		require.Empty(t, ExtractLabel(seg, le))
	})

	t.Run("Rejects missing NUL terminator", func(t *testing.T) {
		seg := lablCandidate("labl", 8, []byte("kick_01x"))
		require.Empty(t, ExtractLabel(seg, le))
	})

	t.Run("Rejects non-printable first character", func(t *testing.T) {
		seg := lablCandidate("labl", 8, []byte("\x07ick_01\x00"))
		require.Empty(t, ExtractLabel(seg, le))
	})

	t.Run("Rejects candidate overrunning the segment", func(t *testing.T) {
		seg := lablCandidate("labl", 50, []byte("short\x00"))
		require.Empty(t, ExtractLabel(seg, le))
	})

	t.Run("Accepts note tag", func(t *testing.T) {
		seg := lablCandidate("note", 8, []byte("note_01\x00"))
		require.Equal(t, "note_01", ExtractLabel(seg, le))
	})

	t.Run("No candidate yields empty, not an error", func(t *testing.T) {
		require.Empty(t, ExtractLabel([]byte("nothing relevant here"), le))
		require.Empty(t, ExtractLabel(nil, le))
	})
}

func TestExtractLabelFirstAcceptableWins(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	// A rejected candidate is skipped and the search continues; among
	// acceptable candidates the first one in offset order is kept.
	seg := lablCandidate("labl", 300, []byte("rejected")) // oversized, skipped
	seg = append(seg, lablCandidate("note", 8, []byte("first__\x00"))...)
	seg = append(seg, lablCandidate("labl", 8, []byte("second_\x00"))...)

	require.Equal(t, "first__", ExtractLabel(seg, le))
}

func TestExtractLabelBigEndianLength(t *testing.T) {
	be := endian.GetBigEndianEngine()

	buf := []byte("labl")
	buf = binary.BigEndian.AppendUint32(buf, 8)
	buf = binary.BigEndian.AppendUint32(buf, 7)
	buf = append(buf, []byte("big_one\x00")...)

	require.Equal(t, "big_one", ExtractLabel(buf, be))
}
