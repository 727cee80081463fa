package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/neurozip/internal/nzerrors"
)

func TestWriteReadRoundtrip(t *testing.T) {
	h := FileHeader{
		Magic:         Magic,
		FormatVersion: FormatVersion,
		ModelID:       42,
		OriginalSize:  1234,
		Checksum:      0xDEADBEEF,
		ModelHash:     0,
	}
	payload := []byte{1, 2, 3, 4, 5}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, h, payload))

	gotHeader, gotPayload, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, h.Magic, gotHeader.Magic)
	assert.Equal(t, h.FormatVersion, gotHeader.FormatVersion)
	assert.Equal(t, h.ModelID, gotHeader.ModelID)
	assert.Equal(t, h.OriginalSize, gotHeader.OriginalSize)
	assert.Equal(t, h.Checksum, gotHeader.Checksum)
	assert.Equal(t, h.ModelHash, gotHeader.ModelHash)
	assert.Equal(t, payload, gotPayload)
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	h := FileHeader{Magic: 0xDEADBEEF, FormatVersion: FormatVersion}
	require.NoError(t, Write(&buf, h, nil))

	_, _, err := Read(&buf)
	require.Error(t, err)
	var nzErr *nzerrors.Error
	require.ErrorAs(t, err, &nzErr)
	assert.Equal(t, nzerrors.InvalidFormat, nzErr.Kind)
}

func TestReadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	h := FileHeader{Magic: Magic, FormatVersion: 2}
	require.NoError(t, Write(&buf, h, nil))

	_, _, err := Read(&buf)
	require.Error(t, err)
	var nzErr *nzerrors.Error
	require.ErrorAs(t, err, &nzErr)
	assert.Equal(t, nzerrors.UnsupportedVersion, nzErr.Kind)
}

func TestReservedIsZeroOnWrite(t *testing.T) {
	var buf bytes.Buffer
	h := FileHeader{Magic: Magic, FormatVersion: FormatVersion, Reserved: 0xFFFFFFFFFFFFFFFF}
	require.NoError(t, Write(&buf, h, nil))

	got, _, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Reserved)
}
