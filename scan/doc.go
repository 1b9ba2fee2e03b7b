// Package scan locates RIFF/RIFX streams embedded in arbitrary binary
// buffers where no authoritative index of embedded streams exists.
//
// It provides three layers:
//
//   - Find: a generic Boyer-Moore-Horspool byte-pattern search.
//   - Segments: enumerates candidate stream start offsets by signature and
//     computes each one's length, either from the declared 32-bit size field
//     or from the distance to the next signature hit.
//   - ExtractLabel: a heuristic sub-search within one segment for a
//     human-readable name suitable for a file name.
//
// All functions are pure over a caller-owned, read-only buffer; the package
// performs no I/O and never mutates its input. Independent buffers may be
// scanned concurrently without synchronization.
//
// The segmenter deliberately resumes scanning 4 bytes past each hit rather
// than past the emitted segment's end, so overlapping and duplicate
// detections are possible when a stream's tail contains another
// signature-like byte sequence. This robustness-over-precision policy is
// what makes recovery from directory-less host files work on real inputs;
// do not tighten it.
package scan
