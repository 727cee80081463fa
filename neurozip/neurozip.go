// Package neurozip is the public API of the neural-network-driven
// lossless compressor: load a model, compress a file into an NZP
// container, and reverse the process deterministically.
package neurozip

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ha1tch/neurozip/internal/applog"
	"github.com/ha1tch/neurozip/internal/baseline"
	"github.com/ha1tch/neurozip/internal/codec"
	"github.com/ha1tch/neurozip/internal/config"
	"github.com/ha1tch/neurozip/internal/container"
	"github.com/ha1tch/neurozip/internal/crc32c"
	"github.com/ha1tch/neurozip/internal/lstm"
	"github.com/ha1tch/neurozip/internal/model"
	"github.com/ha1tch/neurozip/internal/nzerrors"
)

// ErrorKind re-exports the closed error taxonomy from §7.
type ErrorKind = nzerrors.Kind

const (
	Ok                 = nzerrors.Ok
	Io                 = nzerrors.Io
	InvalidFormat      = nzerrors.InvalidFormat
	UnsupportedVersion = nzerrors.UnsupportedVersion
	ModelMismatch      = nzerrors.ModelMismatch
	Corrupt            = nzerrors.Corrupt
	Internal           = nzerrors.Internal
)

var log = applog.New(config.Load())

// DescribeError returns the stable, human-readable string for an
// ErrorKind.
func DescribeError(kind ErrorKind) string {
	return nzerrors.Describe(kind)
}

// Model wraps a loaded, immutable predictor. A Model is safe to share
// by read-only reference across concurrent compress/decompress calls;
// each call owns its own ephemeral session state.
type Model struct {
	predictor model.Predictor
}

// ID returns the predictor's model identifier.
func (m *Model) ID() uint32 { return m.predictor.ModelID() }

// Hash returns the predictor's weight fingerprint.
func (m *Model) Hash() uint64 { return m.predictor.ModelHash() }

// LoadModel loads LSTM weights from path. A load failure is reported
// as a distinguished nil Model plus error, not as an ErrorKind code
// (per §7: "Model load failures return a distinguished … signal rather
// than a code").
func LoadModel(path string) (*Model, error) {
	if path == "" {
		return nil, nzerrors.New(nzerrors.Internal, "neurozip: empty model path", nil)
	}
	w, err := lstm.LoadWeights(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("hidden_size", w.HiddenSize).Msg("model loaded")
	return &Model{predictor: lstm.NewPredictor(w)}, nil
}

// CompressFile reads inPath in full, compresses it against model, and
// writes an NZP container to outPath.
func CompressFile(inPath, outPath string, m *Model) error {
	if m == nil {
		return nzerrors.New(nzerrors.Internal, "neurozip: nil model", nil)
	}
	if inPath == "" || outPath == "" {
		return nzerrors.New(nzerrors.Internal, "neurozip: empty path", nil)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return nzerrors.New(nzerrors.Io, "neurozip: read input", err)
	}

	payload := codec.Compress(data, m.predictor)

	h := container.FileHeader{
		Magic:         container.Magic,
		FormatVersion: container.FormatVersion,
		ModelID:       m.predictor.ModelID(),
		OriginalSize:  uint64(len(data)),
		Checksum:      crc32c.Checksum(data),
		ModelHash:     m.predictor.ModelHash(),
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nzerrors.New(nzerrors.Io, "neurozip: create output", err)
	}
	defer out.Close()

	if err := container.Write(out, h, payload); err != nil {
		return err
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = 100 * (1 - float64(len(payload))/float64(len(data)))
	}
	log.Debug().Int("in_bytes", len(data)).Int("out_bytes", len(payload)).
		Float64("ratio_pct", ratio).Msg("compress complete")
	return nil
}

// DecompressFile reads an NZP container from inPath, verifies it
// against model, and writes the recovered bytes to outPath.
func DecompressFile(inPath, outPath string, m *Model) error {
	if m == nil {
		return nzerrors.New(nzerrors.Internal, "neurozip: nil model", nil)
	}
	if inPath == "" || outPath == "" {
		return nzerrors.New(nzerrors.Internal, "neurozip: empty path", nil)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nzerrors.New(nzerrors.Io, "neurozip: open input", err)
	}
	defer in.Close()

	h, payload, err := container.Read(in)
	if err != nil {
		return err
	}

	if h.ModelID != m.predictor.ModelID() {
		return nzerrors.New(nzerrors.ModelMismatch, "neurozip: model id mismatch", nil)
	}
	if h.ModelHash != 0 && h.ModelHash != m.predictor.ModelHash() {
		return nzerrors.New(nzerrors.ModelMismatch, "neurozip: model hash mismatch", nil)
	}

	out := codec.Decompress(payload, m.predictor, h.OriginalSize)
	if uint64(len(out)) != h.OriginalSize {
		return nzerrors.New(nzerrors.Corrupt, "neurozip: short decode", nil)
	}
	if crc32c.Checksum(out) != h.Checksum {
		return nzerrors.New(nzerrors.Corrupt, "neurozip: checksum mismatch", nil)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return nzerrors.New(nzerrors.Io, "neurozip: write output", err)
	}

	log.Debug().Int("bytes", len(out)).Msg("decompress complete")
	return nil
}

// Report is the result of Inspect: container header fields, payload
// length, plus baseline compressed sizes in bytes for comparison.
type Report struct {
	Header       container.FileHeader
	PayloadBytes int
	Baseline     baseline.Sizes
}

// Inspect opens an NZP container at path and reports its header,
// payload size, and how its payload compares to DEFLATE/zstd
// baselines run over the decompressed bytes. Decompression uses m, so
// a model mismatch surfaces the same way DecompressFile reports it.
func Inspect(path string, m *Model) (Report, error) {
	var r Report
	if m == nil {
		return r, nzerrors.New(nzerrors.Internal, "neurozip: nil model", nil)
	}

	in, err := os.Open(path)
	if err != nil {
		return r, nzerrors.New(nzerrors.Io, "neurozip: open input", err)
	}
	defer in.Close()

	h, payload, err := container.Read(in)
	if err != nil {
		return r, err
	}
	r.Header = h
	r.PayloadBytes = len(payload)

	if h.ModelID != m.predictor.ModelID() {
		return r, nzerrors.New(nzerrors.ModelMismatch, "neurozip: model id mismatch", nil)
	}
	if h.ModelHash != 0 && h.ModelHash != m.predictor.ModelHash() {
		return r, nzerrors.New(nzerrors.ModelMismatch, "neurozip: model hash mismatch", nil)
	}

	decoded := codec.Decompress(payload, m.predictor, h.OriginalSize)
	r.Baseline = baseline.Measure(decoded)
	return r, nil
}

// Logger exposes the package-level structured logger for front ends
// that want to share its configuration (e.g. to log CLI-level events
// at the same verbosity).
func Logger() zerolog.Logger { return log }
