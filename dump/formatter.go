// Package dump renders a decoded chunk tree as a plain-text inspection
// report: one line per decoded field with its chunk, and a 16-bytes-per-line
// hex plus printable-ASCII dump for opaque spans.
//
// The formatter is a sink collaborator: it receives typed records and
// offsets from the chunk decoder and owns all output side effects.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/riffscan/chunk"
	"github.com/arloliu/riffscan/format"
)

// Formatter writes chunk tree reports to a writer.
//
// A Formatter is not safe for concurrent use; create one per report.
type Formatter struct {
	w   io.Writer
	buf []byte
	err error
}

// NewFormatter creates a Formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format renders the report for one decoded stream.
//
// Parameters:
//   - buf: The stream's bytes, used to render opaque spans
//   - root: Decoded tree for the same bytes
//
// Returns:
//   - error: First write error encountered, if any
func (f *Formatter) Format(buf []byte, root *chunk.Record) error {
	f.buf = buf
	f.err = nil

	f.printf("Stream size: %d\n", len(buf))
	f.record(root)

	return f.err
}

func (f *Formatter) printf(fmtStr string, args ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, fmtStr, args...)
}

func (f *Formatter) record(rec *chunk.Record) {
	f.printf("\n")
	f.printf("[4] %14s: %s\n", "Chunk ID", rec.Tag)
	f.printf("[4] %14s: %d\n", "Size", rec.Size)

	switch body := rec.Body.(type) {
	case *chunk.Container:
		f.container(rec, body)
	case *chunk.Label:
		f.printf("[4] %14s: %d\n", "Label ID", body.ID)
		f.printf("    %14s: %s\n", "Label Text", body.Text)
	case *chunk.CuePoints:
		f.cuePoints(body)
	case *chunk.Format:
		f.waveFormat(body)
	case *chunk.Raw:
		f.hexDump(body)
	case nil:
		// Anomalous chunk with no decodable body.
	}

	if rec.Padded {
		f.printf("[1] %14s: skipped\n", "Pad byte")
	}
	if rec.Anomaly != nil {
		f.printf("    %14s: %v\n", "Anomaly", rec.Anomaly)
	}
	f.printf("    %14s: [%s end]\n", "==============", rec.Tag)
}

func (f *Formatter) container(rec *chunk.Record, body *chunk.Container) {
	typeName := "Form Type"
	if rec.Tag == format.TagRIFF || rec.Tag == format.TagRIFX {
		typeName = "RIFF Type"
	}
	f.printf("[4] %14s: %s\n", typeName, body.Subtype)

	for _, child := range body.Children {
		f.record(child)
	}

	if body.Trailing != nil {
		f.printf("    %14s: %d bytes\n", "Trailing", body.Trailing.Length)
		f.hexDump(body.Trailing)
	}
}

func (f *Formatter) cuePoints(body *chunk.CuePoints) {
	f.printf("[4] %14s: %d\n", "# Cue points", body.Declared)
	for _, p := range body.Points {
		f.printf("[4] %14s: %d\n", "Cue ID", p.ID)
		f.printf("[4] %14s: %d\n", "Cue Position", p.Position)
		f.printf("[4] %14s: %s\n", "Data Chunk ID", p.DataChunk)
		f.printf("[4] %14s: %d\n", "Chunk Start", p.ChunkStart)
		f.printf("[4] %14s: %d\n", "Block Start", p.BlockStart)
		f.printf("[4] %14s: %d\n", "Sample Offset", p.SampleOffset)
	}
}

func (f *Formatter) waveFormat(body *chunk.Format) {
	f.printf("[2] %14s: %d\n", "Compression", body.Compression)
	f.printf("[2] %14s: %d\n", "# Channels", body.Channels)
	f.printf("[4] %14s: %d\n", "Sample Rate", body.SampleRate)
	f.printf("[4] %14s: %d\n", "Avg. Bytes/s", body.AvgBytesPerSec)
	f.printf("[2] %14s: %d\n", "Block align", body.BlockAlign)
	f.printf("[2] %14s: %d\n", "Signif. bit/s", body.BitsPerSample)
	if body.Extension != nil {
		f.printf("[2] %14s: %d\n", "Xtra FMT bytes", body.ExtensionSize)
		f.hexDump(body.Extension)
	}
}

// hexDump renders a span as 16-bytes-per-line hex plus printable ASCII.
// Offsets are relative to the span start.
func (f *Formatter) hexDump(span *chunk.Raw) {
	data := f.slice(span)

	for base := 0; base < len(data); base += 16 {
		end := base + 16
		if end > len(data) {
			end = len(data)
		}
		line := data[base:end]

		var hexCol, asciiCol strings.Builder
		for i, b := range line {
			if i == 8 {
				hexCol.WriteByte(' ')
			}
			fmt.Fprintf(&hexCol, "%02x ", b)
			if b >= 0x21 && b < 0x7f {
				asciiCol.WriteByte(b)
			} else {
				asciiCol.WriteByte('.')
			}
		}

		f.printf("%14d: %-50s %s\n", base, hexCol.String(), asciiCol.String())
	}
}

// slice resolves a span against the buffer, clamping defensively so a
// malformed span can never panic the report.
func (f *Formatter) slice(span *chunk.Raw) []byte {
	start := span.Start
	if start < 0 || start >= int64(len(f.buf)) {
		return nil
	}
	end := start + int64(span.Length)
	if end > int64(len(f.buf)) {
		end = int64(len(f.buf))
	}

	return f.buf[start:end]
}
