// Package hash computes content digests for extracted stream segments.
//
// The overlap-tolerant segmentation policy can detect the same embedded
// stream more than once; digests let the extractor suppress byte-identical
// duplicates without changing which offsets are detected.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of the given bytes.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
