package scan

import (
	"github.com/arloliu/riffscan/endian"
	"github.com/arloliu/riffscan/format"
)

// Label acceptance bounds. A candidate outside them is skipped and the
// search continues; rejection is never an error.
const (
	labelMinLength = 6
	labelMaxLength = 200

	// labelTextSkip is the distance from a label tag's end to its text:
	// the 4-byte size field plus the 4-byte cue id field.
	labelTextSkip = 8
)

// ExtractLabel searches a segment's bytes for a human-readable label
// suitable for naming the extracted stream.
//
// Candidates are "labl" and "note" tags, visited in offset order. For each
// candidate the 4 bytes after the tag are read (in the active byte order)
// as a declared text length; the text itself begins 8 bytes past the tag
// (size field + cue id field). A candidate is accepted only when the
// declared length is within [6, 200], the first text byte is printable
// ASCII, and the byte at declared length - 1 from the text start is NUL.
// The first acceptable candidate wins; this keeps extraction deterministic
// when a segment carries several labels.
//
// The accepted text, excluding its terminating NUL, is sanitized before
// return: any non-printable byte and any of '/', '\' or ' ' becomes '_'.
//
// Parameters:
//   - segment: One segment's bytes
//   - engine: Byte order engine of the segment's pass
//
// Returns:
//   - string: Sanitized label, or empty when no acceptable candidate exists
func ExtractLabel(segment []byte, engine endian.EndianEngine) string {
	pos := 0
	for {
		tagAt := findLabelTag(segment, pos)
		if tagAt < 0 {
			return ""
		}

		if text, ok := acceptLabel(segment, tagAt, engine); ok {
			return text
		}

		pos = tagAt + 4
	}
}

// findLabelTag returns the earliest "labl" or "note" tag offset at or after
// pos, or -1.
func findLabelTag(segment []byte, pos int) int {
	lablAt := Find(segment, format.TagLabl[:], pos)
	noteAt := Find(segment, format.TagNote[:], pos)

	switch {
	case lablAt < 0:
		return noteAt
	case noteAt < 0 || lablAt <= noteAt:
		return lablAt
	default:
		return noteAt
	}
}

// acceptLabel validates the candidate at tagAt and returns its sanitized
// text when all acceptance bounds hold.
func acceptLabel(segment []byte, tagAt int, engine endian.EndianEngine) (string, bool) {
	sizeAt := tagAt + 4
	if sizeAt+4 > len(segment) {
		return "", false
	}
	declared := int(engine.Uint32(segment[sizeAt : sizeAt+4]))
	if declared < labelMinLength || declared > labelMaxLength {
		return "", false
	}

	textAt := sizeAt + labelTextSkip
	if textAt+declared > len(segment) {
		return "", false
	}
	if !printable(segment[textAt]) {
		return "", false
	}
	if segment[textAt+declared-1] != 0 {
		return "", false
	}

	return sanitizeLabel(segment[textAt : textAt+declared-1]), true
}

// sanitizeLabel maps bytes that are unsafe in file names to '_'.
func sanitizeLabel(text []byte) string {
	out := make([]byte, len(text))
	for i, b := range text {
		if !printable(b) || b == '/' || b == '\\' || b == ' ' {
			out[i] = '_'
		} else {
			out[i] = b
		}
	}

	return string(out)
}

func printable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
