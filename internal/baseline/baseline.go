// Package baseline reports how the neural codec's output size compares
// to two general-purpose compressors. It is purely informational: the
// NZP container format never embeds or depends on either baseline, so
// nothing here participates in round-trip correctness.
package baseline

import (
	"bytes"
	"compress/flate"

	"github.com/klauspost/compress/zstd"
)

// Sizes reports the compressed size of data under stdlib DEFLATE (best
// compression level) and klauspost/compress's zstd (default level).
type Sizes struct {
	Flate int
	Zstd  int
}

// Measure compresses data with both baselines and returns their sizes.
// A baseline compressor error degrades that field to -1 rather than
// failing the whole report.
func Measure(data []byte) Sizes {
	return Sizes{
		Flate: flateSize(data),
		Zstd:  zstdSize(data),
	}
}

func flateSize(data []byte) int {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return -1
	}
	if _, err := w.Write(data); err != nil {
		return -1
	}
	if err := w.Close(); err != nil {
		return -1
	}
	return buf.Len()
}

func zstdSize(data []byte) int {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return -1
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return -1
	}
	if err := w.Close(); err != nil {
		return -1
	}
	return buf.Len()
}
