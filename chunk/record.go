package chunk

import "github.com/arloliu/riffscan/format"

// Record is one decoded chunk: its tag, absolute position, declared size and
// a body variant. Records form an immutable tree built once per decode pass.
type Record struct {
	// Tag is the chunk's FourCC.
	Tag format.FourCC
	// Offset is the absolute byte offset of the chunk header in the buffer.
	Offset int64
	// Size is the declared payload size, excluding the 8-byte header and
	// any trailing pad byte. It is validated before use, never trusted.
	Size uint32
	// Padded reports the structural pad byte that follows an odd-sized
	// payload. The pad is a word-alignment marker, not data.
	Padded bool
	// Body is the decoded variant: *Container, *Format, *CuePoints, *Label
	// or *Raw. It is nil when decoding the chunk stopped before a body
	// could be formed (see Anomaly).
	Body Body
	// Anomaly records why decoding of this chunk stopped early, wrapping
	// errs.ErrTruncated or errs.ErrTooDeep. Nil for a fully decoded chunk.
	// An anomaly is scoped to this subtree; siblings may still be present.
	Anomaly error
}

// HeaderEnd returns the absolute offset just past the chunk header.
func (r *Record) HeaderEnd() int64 {
	return r.Offset + format.HeaderSize
}

// Body is the decoded payload variant of a Record.
type Body interface {
	body()
}

// Container is the body of a RIFF, RIFX or LIST chunk: a subtype tag and
// ordered child records.
type Container struct {
	// Subtype is the 4-byte form/list type following the header.
	Subtype format.FourCC
	// Children are the decoded sub-chunks in payload order.
	Children []*Record
	// Trailing is the unstructured span past the declared root payload,
	// present only on the pass's root record and only when the buffer
	// extends beyond it. It is reported, never decoded.
	Trailing *Raw
}

// Format is the body of a "fmt " chunk.
type Format struct {
	Compression    uint16
	Channels       uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtensionSize and Extension are set only when the declared chunk
	// size exceeds the 16 fixed bytes.
	ExtensionSize uint16
	Extension     *Raw
}

// CuePoint is one fixed 24-byte entry of a "cue " chunk.
type CuePoint struct {
	ID           uint32
	Position     uint32
	DataChunk    format.FourCC
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

// CuePoints is the body of a "cue " chunk.
type CuePoints struct {
	// Declared is the entry count read from the chunk; Points may hold
	// fewer entries when the payload cannot back the declared count.
	Declared uint32
	Points   []CuePoint
}

// Label is the body of a "labl" or "note" chunk.
type Label struct {
	ID uint32
	// Text is the NUL-terminated string following the id, without the NUL.
	Text string
}

// Raw is an opaque byte range: the body of any unrecognized chunk, a fmt
// extension, or the unstructured trailing span after a root payload.
// It references the pass's buffer by position; no bytes are copied.
type Raw struct {
	// Start is the absolute byte offset of the span.
	Start int64
	// Length is the span length in bytes, clamped to the buffer.
	Length int
}

func (*Container) body() {}
func (*Format) body()    {}
func (*CuePoints) body() {}
func (*Label) body()     {}
func (*Raw) body()       {}
