// Package extract persists located stream segments to files.
//
// It is the extraction pipeline's sink collaborator: the scanning core hands
// it byte ranges, sequence ids and optional sanitized labels, and the writer
// owns naming the outputs and every filesystem side effect. A failed write
// for one segment is reported in its Result and processing continues with
// the next segment; extraction never aborts a whole file's pass.
package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/riffscan/compress"
	"github.com/arloliu/riffscan/errs"
	"github.com/arloliu/riffscan/internal/hash"
	"github.com/arloliu/riffscan/internal/options"
	"github.com/arloliu/riffscan/internal/pool"
	"github.com/arloliu/riffscan/scan"
)

// DefaultSuffix is appended to every output file name.
const DefaultSuffix = ".riff"

// Result reports the outcome of persisting one segment.
type Result struct {
	// Segment is the segment this result belongs to.
	Segment scan.Segment
	// Path is the output file path, empty when the segment was skipped.
	Path string
	// Skipped reports a duplicate suppressed by content digest.
	Skipped bool
	// Err wraps errs.ErrSegmentWrite when persisting failed.
	Err error
}

// Writer persists stream segments into an output directory.
//
// A Writer is not safe for concurrent use; its duplicate tracking is
// per-instance state.
type Writer struct {
	dir    string
	suffix string
	codec  compress.Codec
	ext    string
	dedup  bool
	seen   map[uint64]struct{}
}

type writerConfig struct {
	suffix string
	codec  compress.Codec
	ext    string
	dedup  bool
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithSuffix overrides the ".riff" output suffix.
func WithSuffix(suffix string) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.suffix = suffix
	})
}

// WithCodec compresses each segment with codec before writing and appends
// ext (e.g. ".zst") to the output name.
func WithCodec(codec compress.Codec, ext string) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.codec = codec
		cfg.ext = ext
	})
}

// WithDedup suppresses byte-identical duplicate segments by xxHash64
// content digest. The overlap-tolerant scan policy makes duplicates common
// on real inputs; suppression changes only what is written, never what is
// detected.
func WithDedup() WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.dedup = true
	})
}

// NewWriter creates a Writer targeting dir, creating it (and missing
// parents) when needed.
//
// Parameters:
//   - dir: Output directory
//   - opts: Optional configuration (suffix, codec, dedup)
//
// Returns:
//   - *Writer: Writer ready for use
//   - error: Directory creation or option validation errors
func NewWriter(dir string, opts ...WriterOption) (*Writer, error) {
	cfg := &writerConfig{suffix: DefaultSuffix}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &Writer{
		dir:    dir,
		suffix: cfg.suffix,
		codec:  cfg.codec,
		ext:    cfg.ext,
		dedup:  cfg.dedup,
		seen:   make(map[uint64]struct{}),
	}, nil
}

// WriteAll persists every segment and returns one Result per segment, in
// order. Failures are recorded per segment and never stop the iteration.
func (w *Writer) WriteAll(buf []byte, segs []scan.Segment) []Result {
	results := make([]Result, 0, len(segs))
	for _, seg := range segs {
		results = append(results, w.Write(buf, seg))
	}

	return results
}

// Write persists one segment. Segments with a sanitized label are named
// <label><suffix>; unlabeled ones fall back to the zero-padded sequence id.
func (w *Writer) Write(buf []byte, seg scan.Segment) Result {
	res := Result{Segment: seg}

	if seg.Offset < 0 || seg.Length <= 0 || seg.End() > len(buf) {
		res.Err = fmt.Errorf("%w: segment %d range [%d, %d) outside buffer of %d bytes",
			errs.ErrSegmentWrite, seg.Seq, seg.Offset, seg.End(), len(buf))

		return res
	}
	data := buf[seg.Offset:seg.End()]

	if w.dedup {
		digest := hash.Digest(data)
		if _, dup := w.seen[digest]; dup {
			res.Skipped = true

			return res
		}
		w.seen[digest] = struct{}{}
	}

	res.Path = filepath.Join(w.dir, w.fileName(seg))

	if err := w.persist(res.Path, data); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", errs.ErrSegmentWrite, res.Path, err)
		res.Path = ""
	}

	return res
}

func (w *Writer) fileName(seg scan.Segment) string {
	name := seg.Label
	if name == "" {
		name = fmt.Sprintf("%06d", seg.Seq)
	}

	return name + w.suffix + w.ext
}

func (w *Writer) persist(path string, data []byte) error {
	staged := pool.GetBuffer()
	defer pool.PutBuffer(staged)

	if w.codec != nil {
		compressed, err := w.codec.Compress(data)
		if err != nil {
			return err
		}
		staged.MustWrite(compressed)
	} else {
		staged.MustWrite(data)
	}

	return os.WriteFile(path, staged.Bytes(), 0o644)
}
