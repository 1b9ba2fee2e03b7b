// Package riffscan recovers and inspects RIFF/RIFX streams embedded in
// arbitrary host files, such as game asset bundles, where no authoritative
// index of embedded streams exists.
//
// Two tool personalities share one byte-level core:
//
//   - Extraction: signature-scan an unstructured buffer for embedded
//     streams, compute each one's length (declared size field or distance to
//     the next signature), pick up a human-readable label when one exists,
//     and hand the resulting byte ranges to a segment writer.
//   - Inspection: recursively decode one stream's chunk structure into a
//     typed record tree and hand it to a report formatter.
//
// # Extracting streams
//
//	buf, _ := os.ReadFile("bundle.pck")
//
//	segs, err := riffscan.Segments(buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	writer, _ := extract.NewWriter("output", extract.WithDedup())
//	for _, res := range writer.WriteAll(buf, segs) {
//	    if res.Err != nil {
//	        log.Println(res.Err) // one bad segment never aborts the pass
//	    }
//	}
//
// # Inspecting a stream
//
//	stream, _ := os.ReadFile("output/kick_01.riff")
//
//	root, err := riffscan.DecodeStream(stream)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dump.NewFormatter(os.Stdout).Format(stream, root)
//
// The core is pure over caller-owned read-only buffers: no I/O, no shared
// mutable state, byte order resolved per stream from the root signature and
// threaded explicitly. Independent files may be processed concurrently
// without synchronization. This is deliberately not a conformant RIFF
// parser; malformed input is tolerated and reported, never trusted.
package riffscan

import (
	"github.com/arloliu/riffscan/chunk"
	"github.com/arloliu/riffscan/endian"
	"github.com/arloliu/riffscan/scan"
)

// Segments enumerates candidate embedded streams in a host buffer.
// See scan.Segments for the signature probing and length policy.
func Segments(buf []byte, opts ...scan.SegmentOption) ([]scan.Segment, error) {
	return scan.Segments(buf, opts...)
}

// DecodeStream decodes one stream's chunk structure into a record tree.
// See chunk.Decode for anomaly scoping and depth limiting.
func DecodeStream(buf []byte, opts ...chunk.Option) (*chunk.Record, error) {
	return chunk.Decode(buf, opts...)
}

// Label runs the heuristic label sub-search over one segment's bytes using
// the given byte order engine. It returns an empty string when the segment
// holds no acceptable label.
func Label(segment []byte, engine endian.EndianEngine) string {
	return scan.ExtractLabel(segment, engine)
}
