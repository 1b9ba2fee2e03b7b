package scan

import (
	"fmt"

	"github.com/arloliu/riffscan/endian"
	"github.com/arloliu/riffscan/errs"
	"github.com/arloliu/riffscan/format"
	"github.com/arloliu/riffscan/internal/options"
)

// Segment describes one candidate embedded stream located in a host buffer.
//
// Segments are not guaranteed non-overlapping: the segmenter resumes its
// signature search 4 bytes past each hit, not past the emitted segment's
// end, so a signature-like byte sequence inside a stream's tail yields an
// additional detection. That is accepted policy, not a defect.
type Segment struct {
	// Offset is the absolute byte offset of the stream's root signature.
	Offset int
	// Length is the stream length in bytes, per the configured LengthMode,
	// always clamped to the end of the buffer.
	Length int
	// Order is the byte order fixed by the scan's root signature.
	Order format.ByteOrder
	// Label is the sanitized label found inside the segment, or empty.
	Label string
	// Seq is the zero-based detection sequence number within the buffer.
	Seq int
}

// End returns the exclusive end offset of the segment.
func (s Segment) End() int {
	return s.Offset + s.Length
}

type segmentConfig struct {
	mode   format.LengthMode
	labels bool
}

// SegmentOption configures a Segments pass.
type SegmentOption = options.Option[*segmentConfig]

// WithLengthMode selects how segment lengths are determined.
// The mode is a configuration choice, never auto-detected per stream.
func WithLengthMode(mode format.LengthMode) SegmentOption {
	return options.New(func(cfg *segmentConfig) error {
		if mode != format.LengthHeuristic && mode != format.LengthDeclared {
			return fmt.Errorf("%w: %d", errs.ErrInvalidLengthMode, mode)
		}
		cfg.mode = mode

		return nil
	})
}

// WithDeclaredLength selects declared-size segment lengths.
func WithDeclaredLength() SegmentOption {
	return WithLengthMode(format.LengthDeclared)
}

// WithHeuristicLength selects next-signature-distance segment lengths.
// This is the default.
func WithHeuristicLength() SegmentOption {
	return WithLengthMode(format.LengthHeuristic)
}

// WithoutLabels disables the per-segment label sub-search.
func WithoutLabels() SegmentOption {
	return options.NoError(func(cfg *segmentConfig) {
		cfg.labels = false
	})
}

// Segments enumerates candidate embedded streams in buf.
//
// The buffer is probed for the first occurrence of "RIFF", then "RIFX";
// whichever occurs earliest fixes the byte order for the whole scan (RIFF
// wins a tie at the same offset). When neither signature occurs, or the
// buffer is empty, no segments are produced and no error is returned.
//
// From the first hit the scan repeats: compute the segment length for the
// hit per the configured mode, emit the segment, then resume the signature
// search 4 bytes past the hit offset. The scan stops when fewer than 9
// bytes remain after a hit or no further occurrence is found. A malformed
// size field is clamped, never an error.
//
// Parameters:
//   - buf: Host file bytes; read-only, never mutated
//   - opts: Optional configuration (length mode, label search)
//
// Returns:
//   - []Segment: Detected segments in detection order, nil when none
//   - error: Option validation errors only
func Segments(buf []byte, opts ...SegmentOption) ([]Segment, error) {
	cfg := &segmentConfig{mode: format.LengthHeuristic, labels: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sig, order, pos := probeSignature(buf)
	if pos < 0 {
		return nil, nil
	}

	engine := endian.Engine(order)

	var segs []Segment
	for pos >= 0 {
		if len(buf)-pos < format.MinSegmentBytes {
			break
		}

		// Skipping the first 4 bytes avoids re-matching the current hit.
		next := Find(buf, sig, pos+4)

		length := segmentLength(buf, pos, next, cfg.mode, engine)
		seg := Segment{
			Offset: pos,
			Length: length,
			Order:  order,
			Seq:    len(segs),
		}
		if cfg.labels {
			seg.Label = ExtractLabel(buf[pos:pos+length], engine)
		}
		segs = append(segs, seg)

		pos = next
	}

	return segs, nil
}

// probeSignature locates the earliest root signature in buf and resolves the
// byte order the whole scan will use. It returns a negative offset when
// neither signature occurs.
func probeSignature(buf []byte) ([]byte, format.ByteOrder, int) {
	riffSig := format.TagRIFF[:]
	rifxSig := format.TagRIFX[:]

	riffAt := Find(buf, riffSig, 0)
	rifxAt := Find(buf, rifxSig, 0)

	switch {
	case riffAt < 0 && rifxAt < 0:
		return nil, format.OrderLittleEndian, -1
	case rifxAt < 0 || (riffAt >= 0 && riffAt <= rifxAt):
		return riffSig, format.OrderLittleEndian, riffAt
	default:
		return rifxSig, format.OrderBigEndian, rifxAt
	}
}

// segmentLength computes the length of the segment starting at pos.
// next is the offset of the following same-signature hit, or negative.
func segmentLength(buf []byte, pos, next int, mode format.LengthMode, engine endian.EndianEngine) int {
	remaining := len(buf) - pos

	if mode == format.LengthDeclared {
		declared := int64(format.HeaderSize) + int64(engine.Uint32(buf[pos+4:pos+8]))
		if declared > int64(remaining) {
			return remaining
		}

		return int(declared)
	}

	if next < 0 {
		return remaining
	}

	return next - pos
}
