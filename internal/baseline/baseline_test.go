package baseline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureCompressesRepetitiveData(t *testing.T) {
	data := bytes.Repeat([]byte("neurozip "), 1000)
	sizes := Measure(data)

	assert.Greater(t, sizes.Flate, 0)
	assert.Less(t, sizes.Flate, len(data))
	assert.Greater(t, sizes.Zstd, 0)
	assert.Less(t, sizes.Zstd, len(data))
}

func TestMeasureEmpty(t *testing.T) {
	sizes := Measure(nil)
	assert.GreaterOrEqual(t, sizes.Flate, 0)
	assert.GreaterOrEqual(t, sizes.Zstd, 0)
}
