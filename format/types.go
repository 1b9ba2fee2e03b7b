// Package format defines the shared vocabulary of the RIFF/RIFX container
// format: FourCC tags, structural size constants, byte-order tags and the
// segment length modes understood by the scanner.
package format

// FourCC is a 4-byte ASCII tag identifying a chunk's type.
type FourCC [4]byte

// Known chunk tags. Tag comparison is always an exact 4-byte match,
// including trailing spaces.
var (
	TagRIFF = FourCC{'R', 'I', 'F', 'F'} // little-endian container root
	TagRIFX = FourCC{'R', 'I', 'F', 'X'} // big-endian container root
	TagLIST = FourCC{'L', 'I', 'S', 'T'} // nested chunk list
	TagLabl = FourCC{'l', 'a', 'b', 'l'} // cue label
	TagNote = FourCC{'n', 'o', 't', 'e'} // cue note, same layout as labl
	TagCue  = FourCC{'c', 'u', 'e', ' '} // cue point table
	TagFmt  = FourCC{'f', 'm', 't', ' '} // wave format description
)

// FourCCOf reads a FourCC from the first 4 bytes of data.
// It panics if data holds fewer than 4 bytes; callers validate length first.
func FourCCOf(data []byte) FourCC {
	return FourCC{data[0], data[1], data[2], data[3]}
}

// String renders the tag as 4 characters, substituting '?' for any byte
// outside the printable ASCII range.
func (f FourCC) String() string {
	out := [4]byte{}
	for i, b := range f {
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '?'
		}
	}

	return string(out[:])
}

// Structural constants of the container format.
const (
	// HeaderSize is the fixed chunk header size: 4-byte tag + 32-bit size.
	HeaderSize = 8
	// MinPayloadSize is the smallest declared size treated as decodable.
	// Anything below it is degenerate and silently ends the branch.
	MinPayloadSize = 2
	// MinSegmentBytes is the minimum bytes a signature hit needs after its
	// offset for the segmenter to read a full header plus one payload byte.
	MinSegmentBytes = 9
	// CuePointSize is the fixed size of one cue table entry.
	CuePointSize = 24
)

// ByteOrder tags the integer byte order of a stream, fixed once per pass
// from the root signature.
type ByteOrder uint8

const (
	OrderLittleEndian ByteOrder = iota // RIFF
	OrderBigEndian                     // RIFX
)

func (o ByteOrder) String() string {
	switch o {
	case OrderLittleEndian:
		return "LittleEndian"
	case OrderBigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}

// Tag returns the container root tag corresponding to the byte order.
func (o ByteOrder) Tag() FourCC {
	if o == OrderBigEndian {
		return TagRIFX
	}

	return TagRIFF
}

// LengthMode selects how the segmenter determines each stream's length.
type LengthMode uint8

const (
	// LengthHeuristic measures to the next occurrence of the same signature,
	// or to the end of the buffer when there is none.
	LengthHeuristic LengthMode = iota
	// LengthDeclared trusts the stream's 32-bit size field, clamped to the
	// end of the buffer.
	LengthDeclared
)

func (m LengthMode) String() string {
	switch m {
	case LengthHeuristic:
		return "Heuristic"
	case LengthDeclared:
		return "Declared"
	default:
		return "Unknown"
	}
}
