package dump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/riffscan/chunk"
)

func leChunk(tag string, payload []byte) []byte {
	buf := []byte(tag)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))

	return append(buf, payload...)
}

func buildTestStream(t *testing.T) ([]byte, *chunk.Record) {
	t.Helper()

	var fmtPayload []byte
	fmtPayload = binary.LittleEndian.AppendUint16(fmtPayload, 1)
	fmtPayload = binary.LittleEndian.AppendUint16(fmtPayload, 2)
	fmtPayload = binary.LittleEndian.AppendUint32(fmtPayload, 44100)
	fmtPayload = binary.LittleEndian.AppendUint32(fmtPayload, 176400)
	fmtPayload = binary.LittleEndian.AppendUint16(fmtPayload, 4)
	fmtPayload = binary.LittleEndian.AppendUint16(fmtPayload, 16)

	var lablPayload []byte
	lablPayload = binary.LittleEndian.AppendUint32(lablPayload, 7)
	lablPayload = append(lablPayload, []byte("kick_01\x00")...)

	rawPayload := []byte("opaque bytes!!")

	rootPayload := append([]byte("WAVE"), leChunk("fmt ", fmtPayload)...)
	rootPayload = append(rootPayload, leChunk("labl", lablPayload)...)
	rootPayload = append(rootPayload, leChunk("vorb", rawPayload)...)
	buf := leChunk("RIFF", rootPayload)

	root, err := chunk.Decode(buf)
	require.NoError(t, err)

	return buf, root
}

func TestFormatterReport(t *testing.T) {
	buf, root := buildTestStream(t)

	var out bytes.Buffer
	err := NewFormatter(&out).Format(buf, root)
	require.NoError(t, err)

	report := out.String()
	require.Contains(t, report, "Stream size: ")
	require.Contains(t, report, "Chunk ID: RIFF")
	require.Contains(t, report, "RIFF Type: WAVE")
	require.Contains(t, report, "Compression: 1")
	require.Contains(t, report, "# Channels: 2")
	require.Contains(t, report, "Sample Rate: 44100")
	require.Contains(t, report, "Label ID: 7")
	require.Contains(t, report, "Label Text: kick_01")
	require.Contains(t, report, "Chunk ID: vorb")
	require.Contains(t, report, "[RIFF end]")
	require.Contains(t, report, "[vorb end]")
}

func TestFormatterHexDumpLayout(t *testing.T) {
	// 17 payload bytes force a full hex line plus a one-byte continuation.
	payload := append([]byte("ABCDEFGHIJKLMNOP"), 0x00)
	buf := leChunk("RIFF", append([]byte("WAVE"), leChunk("vorb", payload)...))

	root, err := chunk.Decode(buf)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewFormatter(&out).Format(buf, root))

	lines := strings.Split(out.String(), "\n")
	var hexLines []string
	for _, line := range lines {
		if strings.Contains(line, "41 42 43") || strings.Contains(line, "16: ") {
			hexLines = append(hexLines, line)
		}
	}
	require.Len(t, hexLines, 2)

	// First line: 16 bytes of hex with the ASCII column after them.
	require.Contains(t, hexLines[0], "41 42 43 44 45 46 47 48")
	require.Contains(t, hexLines[0], "ABCDEFGHIJKLMNOP")
	// Second line: relative offset 16, a lone NUL rendered as '.'.
	require.Contains(t, hexLines[1], "16: 00")
	require.True(t, strings.HasSuffix(strings.TrimRight(hexLines[1], " "), "."))
}

func TestFormatterAnomalyLine(t *testing.T) {
	buf := []byte("RIFF")
	buf = binary.LittleEndian.AppendUint32(buf, 0xFFFFFFFF)
	buf = append(buf, []byte("WAVE")...)

	root, err := chunk.Decode(buf)
	require.NoError(t, err)
	require.NotNil(t, root.Anomaly)

	var out bytes.Buffer
	require.NoError(t, NewFormatter(&out).Format(buf, root))
	require.Contains(t, out.String(), "Anomaly: ")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink failed")
}

func TestFormatterPropagatesWriteError(t *testing.T) {
	buf, root := buildTestStream(t)

	err := NewFormatter(failWriter{}).Format(buf, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink failed")
}
