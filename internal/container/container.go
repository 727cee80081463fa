// Package container reads and writes the NZP file format: a fixed
// 38-byte header followed by an opaque range-coded payload. The header
// is written field-by-field with encoding/binary rather than relying
// on a struct's natural memory layout, since Go (like the source
// language) may insert padding a naive cast would not account for.
package container

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/ha1tch/neurozip/internal/nzerrors"
)

// Magic is the fixed 32-bit "NZP1" container magic.
const Magic uint32 = 0x31505A4E

// FormatVersion is the only container version this package understands.
const FormatVersion uint8 = 1

// HeaderSize is the fixed on-disk size of FileHeader, in bytes.
const HeaderSize = 38

// FileHeader is the fixed-layout prefix of every NZP container.
type FileHeader struct {
	Magic         uint32
	FormatVersion uint8
	ModelID       uint32
	Flags         uint8
	OriginalSize  uint64
	Checksum      uint32
	ModelHash     uint64
	Reserved      uint64
}

// Write serializes header and appends payload verbatim. Reserved is
// always written as zero, per §6.
func Write(w io.Writer, h FileHeader, payload []byte) error {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	buf[4] = h.FormatVersion
	binary.LittleEndian.PutUint32(buf[5:9], h.ModelID)
	buf[9] = h.Flags
	binary.LittleEndian.PutUint64(buf[10:18], h.OriginalSize)
	binary.LittleEndian.PutUint32(buf[18:22], h.Checksum)
	binary.LittleEndian.PutUint64(buf[22:30], h.ModelHash)
	binary.LittleEndian.PutUint64(buf[30:38], 0)

	if _, err := w.Write(buf); err != nil {
		return nzerrors.New(nzerrors.Io, "container: write header", err)
	}
	if _, err := w.Write(payload); err != nil {
		return nzerrors.New(nzerrors.Io, "container: write payload", err)
	}
	return nil
}

// Read parses the fixed-size header from r, validates Magic and
// FormatVersion, and treats the remainder of r as the payload.
func Read(r io.Reader) (FileHeader, []byte, error) {
	var h FileHeader

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return h, nil, nzerrors.New(nzerrors.Io, "container: read header", err)
	}

	h.Magic = binary.LittleEndian.Uint32(buf[0:4])
	h.FormatVersion = buf[4]
	h.ModelID = binary.LittleEndian.Uint32(buf[5:9])
	h.Flags = buf[9]
	h.OriginalSize = binary.LittleEndian.Uint64(buf[10:18])
	h.Checksum = binary.LittleEndian.Uint32(buf[18:22])
	h.ModelHash = binary.LittleEndian.Uint64(buf[22:30])
	h.Reserved = binary.LittleEndian.Uint64(buf[30:38])

	if h.Magic != Magic {
		return h, nil, nzerrors.New(nzerrors.InvalidFormat, "container: bad magic", errors.Errorf("got %#x", h.Magic))
	}
	if h.FormatVersion != FormatVersion {
		return h, nil, nzerrors.New(nzerrors.UnsupportedVersion, "container: bad version", errors.Errorf("got %d", h.FormatVersion))
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return h, nil, nzerrors.New(nzerrors.Io, "container: read payload", err)
	}
	return h, payload, nil
}
