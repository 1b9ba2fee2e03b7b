// Package endian resolves and carries the byte order of a RIFF/RIFX pass.
//
// The byte order of every 16- and 32-bit field in a stream is fixed once,
// from the stream's root signature: RIFF means little-endian, RIFX means
// big-endian. The resolved EndianEngine is threaded explicitly through every
// read in the system; there is no ambient byte-order state and the mode
// cannot be overridden per-chunk within one pass.
//
// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.LittleEndian and
// binary.BigEndian. The returned engines are immutable and stateless, so all
// functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/riffscan/errs"
	"github.com/arloliu/riffscan/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Resolve maps a root signature tag to its byte order.
//
// Parameters:
//   - tag: Root chunk tag of the stream
//
// Returns:
//   - format.ByteOrder: OrderLittleEndian for RIFF, OrderBigEndian for RIFX
//   - error: ErrNotAContainer for any other tag
func Resolve(tag format.FourCC) (format.ByteOrder, error) {
	switch tag {
	case format.TagRIFF:
		return format.OrderLittleEndian, nil
	case format.TagRIFX:
		return format.OrderBigEndian, nil
	default:
		return format.OrderLittleEndian, fmt.Errorf("%w: got %q", errs.ErrNotAContainer, tag.String())
	}
}

// Engine returns the read engine for a resolved byte order.
func Engine(order format.ByteOrder) EndianEngine {
	if order == format.OrderBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
