// Package pool provides pooled byte buffers used by the extractor to stage
// segment bytes before they are persisted.
package pool

import "sync"

// SegmentBufferDefaultSize is the initial capacity of a pooled buffer.
// SegmentBufferMaxThreshold bounds what is returned to the pool; oversized
// buffers from unusually large segments are dropped instead of retained.
const (
	SegmentBufferDefaultSize  = 64 * 1024
	SegmentBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, SegmentBufferDefaultSize)}
	},
}

// GetBuffer obtains an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a ByteBuffer to the pool unless it grew past the
// retention threshold.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > SegmentBufferMaxThreshold {
		return
	}
	bufferPool.Put(bb)
}
