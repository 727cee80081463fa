package crc32c

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumKnownVector(t *testing.T) {
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
}

func TestChecksumEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
}
