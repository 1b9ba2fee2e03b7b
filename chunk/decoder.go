package chunk

import (
	"bytes"
	"fmt"

	"github.com/arloliu/riffscan/endian"
	"github.com/arloliu/riffscan/errs"
	"github.com/arloliu/riffscan/format"
	"github.com/arloliu/riffscan/internal/options"
)

// DefaultMaxDepth is the decode depth limit applied when no option overrides
// it. Nesting depth is untrusted input; the limit converts adversarial or
// corrupted nesting into a reported ErrTooDeep anomaly instead of unbounded
// recursion.
const DefaultMaxDepth = 64

type decodeConfig struct {
	maxDepth int
}

// Option configures a decode pass.
type Option = options.Option[*decodeConfig]

// WithMaxDepth overrides the maximum container nesting depth. A chunk nested
// under depth containers or more is abandoned with an ErrTooDeep anomaly.
func WithMaxDepth(depth int) Option {
	return options.New(func(cfg *decodeConfig) error {
		if depth <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		cfg.maxDepth = depth

		return nil
	})
}

// Decode interprets one syntactically well-formed stream into a Record tree.
//
// The buffer must start with a RIFF or RIFX root tag; anything else is
// rejected with ErrNotAContainer. The root tag fixes the byte order for
// every numeric read of the pass.
//
// Decoding is defensive, not conformant: a declared size is validated
// against the remaining buffer before any sub-view is taken. An oversized
// size marks that subtree with an ErrTruncated anomaly and decoding
// continues with siblings whose offsets remain derivable; at the root it
// terminates the pass. A declared size below the structural minimum
// silently ends its branch. Bytes past the declared root payload are
// reported as an unstructured trailing span, not decoded.
//
// The returned tree may therefore be partial; it is still returned with a
// nil error, with the stop reason recorded on the affected Record. Only an
// unusable input (no container root, option misuse) yields a non-nil error.
//
// Parameters:
//   - buf: One stream's bytes, fully resident; read-only, never mutated
//   - opts: Optional configuration (maximum depth)
//
// Returns:
//   - *Record: Root of the decoded tree, possibly partial
//   - error: ErrNotAContainer, or option validation errors
func Decode(buf []byte, opts ...Option) (*Record, error) {
	cfg := &decodeConfig{maxDepth: DefaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(buf) < format.HeaderSize {
		return nil, fmt.Errorf("%w: buffer holds only %d bytes", errs.ErrNotAContainer, len(buf))
	}

	tag := format.FourCCOf(buf)
	order, err := endian.Resolve(tag)
	if err != nil {
		return nil, err
	}

	d := &decoder{
		buf:      buf,
		engine:   endian.Engine(order),
		maxDepth: cfg.maxDepth,
	}

	root, _ := d.decodeChunk(0, len(buf), 0)
	if root == nil {
		// Degenerate root size: report the bare header, nothing to decode.
		size := d.engine.Uint32(buf[4:8])

		return &Record{Tag: tag, Offset: 0, Size: size, Padded: size%2 == 1}, nil
	}

	d.attachTrailing(root)

	return root, nil
}

type decoder struct {
	buf      []byte
	engine   endian.EndianEngine
	maxDepth int
}

// decodeChunk decodes the chunk at offset with the given bytes remaining and
// returns the record plus the bytes consumed including the header and any
// pad byte. It returns a nil record when remaining cannot hold a header or
// the declared size is degenerate, which silently ends the sibling chain.
func (d *decoder) decodeChunk(offset, remaining, depth int) (*Record, int) {
	if remaining < format.HeaderSize {
		return nil, 0
	}

	tag := format.FourCCOf(d.buf[offset:])
	size := d.engine.Uint32(d.buf[offset+4 : offset+8])
	if size < format.MinPayloadSize {
		return nil, 0
	}

	rec := &Record{
		Tag:    tag,
		Offset: int64(offset),
		Size:   size,
		Padded: size%2 == 1,
	}

	avail := remaining - format.HeaderSize
	if int64(size) > int64(avail) {
		rec.Anomaly = fmt.Errorf("%w: %q declares %d bytes with %d remaining",
			errs.ErrTruncated, tag.String(), size, avail)

		// The next sibling offset would lie past the buffer; consume the rest.
		return rec, remaining
	}

	consumed := chunkExtent(size, remaining)

	if depth >= d.maxDepth {
		rec.Anomaly = fmt.Errorf("%w: depth %d", errs.ErrTooDeep, depth)

		return rec, consumed
	}

	payload := d.buf[offset+format.HeaderSize : offset+format.HeaderSize+int(size)]
	rec.Body = d.decodeBody(rec, payload, depth)

	return rec, consumed
}

// chunkExtent is the full footprint of a chunk: header, payload and the pad
// byte after an odd payload, clamped when the pad would lie past the buffer.
func chunkExtent(size uint32, remaining int) int {
	extent := format.HeaderSize + int(size)
	if size%2 == 1 {
		extent++
	}
	if extent > remaining {
		extent = remaining
	}

	return extent
}

// decodeBody dispatches on the exact 4-byte tag. payload is already bounded
// by the validated declared size.
func (d *decoder) decodeBody(rec *Record, payload []byte, depth int) Body {
	payloadStart := rec.HeaderEnd()

	switch rec.Tag {
	case format.TagRIFF, format.TagRIFX, format.TagLIST:
		return d.decodeContainer(payload, payloadStart, depth)
	case format.TagLabl, format.TagNote:
		return d.decodeLabel(payload, payloadStart)
	case format.TagCue:
		return d.decodeCuePoints(payload, payloadStart)
	case format.TagFmt:
		return d.decodeFormat(rec, payload, payloadStart)
	default:
		return &Raw{Start: payloadStart, Length: len(payload)}
	}
}

// decodeContainer reads the 4-byte subtype and recurses into the rest of the
// payload. A nested RIFF/RIFX tag does not re-fix the byte order; the mode
// is immutable for the pass.
func (d *decoder) decodeContainer(payload []byte, payloadStart int64, depth int) Body {
	if len(payload) < 4 {
		return &Raw{Start: payloadStart, Length: len(payload)}
	}

	cont := &Container{Subtype: format.FourCCOf(payload)}

	cursor := int(payloadStart) + 4
	remaining := len(payload) - 4
	for remaining >= format.HeaderSize {
		child, consumed := d.decodeChunk(cursor, remaining, depth+1)
		if child == nil {
			break
		}
		cont.Children = append(cont.Children, child)
		cursor += consumed
		remaining -= consumed
	}

	return cont
}

func (d *decoder) decodeLabel(payload []byte, payloadStart int64) Body {
	if len(payload) < 4 {
		return &Raw{Start: payloadStart, Length: len(payload)}
	}

	text := payload[4:]
	if nul := bytes.IndexByte(text, 0); nul >= 0 {
		text = text[:nul]
	}

	return &Label{
		ID:   d.engine.Uint32(payload[:4]),
		Text: string(text),
	}
}

func (d *decoder) decodeCuePoints(payload []byte, payloadStart int64) Body {
	if len(payload) < 4 {
		return &Raw{Start: payloadStart, Length: len(payload)}
	}

	cue := &CuePoints{Declared: d.engine.Uint32(payload[:4])}

	// The declared count is untrusted; only entries the payload can back
	// are materialized.
	count := int(cue.Declared)
	if backed := (len(payload) - 4) / format.CuePointSize; count > backed {
		count = backed
	}

	cue.Points = make([]CuePoint, 0, count)
	for i := 0; i < count; i++ {
		entry := payload[4+i*format.CuePointSize:]
		cue.Points = append(cue.Points, CuePoint{
			ID:           d.engine.Uint32(entry[0:4]),
			Position:     d.engine.Uint32(entry[4:8]),
			DataChunk:    format.FourCCOf(entry[8:12]),
			ChunkStart:   d.engine.Uint32(entry[12:16]),
			BlockStart:   d.engine.Uint32(entry[16:20]),
			SampleOffset: d.engine.Uint32(entry[20:24]),
		})
	}

	return cue
}

func (d *decoder) decodeFormat(rec *Record, payload []byte, payloadStart int64) Body {
	if len(payload) < 16 {
		return &Raw{Start: payloadStart, Length: len(payload)}
	}

	f := &Format{
		Compression:    d.engine.Uint16(payload[0:2]),
		Channels:       d.engine.Uint16(payload[2:4]),
		SampleRate:     d.engine.Uint32(payload[4:8]),
		AvgBytesPerSec: d.engine.Uint32(payload[8:12]),
		BlockAlign:     d.engine.Uint16(payload[12:14]),
		BitsPerSample:  d.engine.Uint16(payload[14:16]),
	}

	if rec.Size > 16 && len(payload) >= 18 {
		f.ExtensionSize = d.engine.Uint16(payload[16:18])
		extLen := int(f.ExtensionSize)
		if extLen > len(payload)-18 {
			extLen = len(payload) - 18
		}
		f.Extension = &Raw{Start: payloadStart + 18, Length: extLen}
	}

	return f
}

// attachTrailing reports buffer bytes past the declared root payload (and
// its pad byte) as an unstructured trailing span on the root container.
func (d *decoder) attachTrailing(root *Record) {
	cont, ok := root.Body.(*Container)
	if !ok {
		return
	}

	end := format.HeaderSize + int(root.Size)
	if root.Padded && end < len(d.buf) {
		end++
	}
	if end < len(d.buf) {
		cont.Trailing = &Raw{Start: int64(end), Length: len(d.buf) - end}
	}
}
