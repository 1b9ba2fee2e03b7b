package compress

// Compressor compresses one segment's bytes.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is never modified. Internal buffers may be reused.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores one segment's original bytes.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor. It returns an error when the input is corrupted or was
	// compressed with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state or
// buffers between them.
type Codec interface {
	Compressor
	Decompressor
}
