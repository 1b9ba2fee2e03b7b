// Package compress provides compression codecs for archiving extracted
// stream segments.
//
// Recovered RIFF streams are often large and a host file can yield hundreds
// of them; compressing segments on the way to disk keeps archival output
// manageable. Compression is strictly optional and sits entirely in the
// extraction sink: the scanning and decoding core never touches compressed
// bytes.
//
// Supported algorithms:
//   - None: pass-through (default)
//   - Zstd: best ratio; uses the cgo gozstd binding when cgo is available,
//     the pure-Go klauspost implementation otherwise
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs implement the Codec interface and are safe for concurrent use.
package compress
