// Package errs defines the sentinel errors shared across riffscan packages.
//
// Callers should use errors.Is to test for these conditions, since packages
// wrap them with additional context via fmt.Errorf and the %w verb.
package errs

import "errors"

var (
	// ErrNotAContainer indicates the bytes handed to the chunk decoder do not
	// start with a RIFF or RIFX root tag. This is fatal only for the decode
	// entry point; signature scanning never produces it.
	ErrNotAContainer = errors.New("root tag is not RIFF or RIFX")

	// ErrTruncated indicates a chunk's declared size exceeds the bytes that
	// remain in the buffer. The anomaly is scoped to the affected subtree;
	// siblings with independently derivable offsets are still attempted.
	ErrTruncated = errors.New("declared chunk size exceeds remaining bytes")

	// ErrTooDeep indicates chunk nesting exceeded the configured maximum
	// decode depth. The subtree is abandoned; the rest of the tree survives.
	ErrTooDeep = errors.New("chunk nesting exceeds maximum depth")

	// ErrInvalidMaxDepth indicates a non-positive maximum depth was supplied
	// to the decoder options.
	ErrInvalidMaxDepth = errors.New("maximum decode depth must be positive")

	// ErrInvalidLengthMode indicates an unknown segment length mode was
	// supplied to the segmenter options.
	ErrInvalidLengthMode = errors.New("invalid segment length mode")

	// ErrSegmentWrite indicates persisting one extracted segment failed.
	// Extraction continues with the next segment.
	ErrSegmentWrite = errors.New("failed to write segment")
)
