package ecfile

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Codec selects the on-disk compression for instance/result files. The
// spec §6 text format stays the literal, default on-disk representation;
// these are opt-in (SPEC_FULL.md §4.11), grounded on the teacher's own
// use of klauspost/compress and golang/snappy for PAM/BAM codecs.
type Codec string

const (
	CodecNone   Codec = "none"
	CodecGzip   Codec = "gzip"
	CodecZstd   Codec = "zstd"
	CodecSnappy Codec = "snappy"
)

// CodecForPath infers a Codec from a filename suffix, falling back to
// CodecNone.
func CodecForPath(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CodecGzip
	case strings.HasSuffix(path, ".zst"):
		return CodecZstd
	case strings.HasSuffix(path, ".snappy"):
		return CodecSnappy
	default:
		return CodecNone
	}
}

// WrapWriter wraps w with the codec's compressing stream. The returned
// io.WriteCloser must be closed to flush trailing compressed data.
func WrapWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone, "":
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, "ecfile: opening zstd writer")
		}
		return enc, nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, errors.Errorf("ecfile: unknown codec %q", codec)
	}
}

// WrapReader wraps r with the codec's decompressing stream.
func WrapReader(r io.Reader, codec Codec) (io.Reader, error) {
	switch codec {
	case CodecNone, "":
		return r, nil
	case CodecGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "ecfile: opening gzip reader")
		}
		return gr, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "ecfile: opening zstd reader")
		}
		return dec.IOReadCloser(), nil
	case CodecSnappy:
		return snappy.NewReader(r), nil
	default:
		return nil, errors.Errorf("ecfile: unknown codec %q", codec)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
