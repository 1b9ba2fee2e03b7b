// Package chunk decodes one RIFF/RIFX stream's internal structure into an
// immutable typed record tree.
//
// The decoder walks the stream recursively, dispatching on exact 4-byte
// tags: RIFF/RIFX and LIST become containers with ordered children, "fmt ",
// "cue ", "labl" and "note" become typed bodies, and every other tag is
// reported as an opaque byte range. Payloads are padded to even length per
// the RIFF word-alignment convention; the pad byte is reported as a
// structural marker on the preceding record, never as data.
//
// All length and offset fields are treated as untrusted: sizes are checked
// against the remaining buffer before any sub-view is taken, and nesting
// depth is capped. Malformed input degrades to a partial tree with anomaly
// markers rather than an outright failure.
package chunk
