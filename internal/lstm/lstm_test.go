package lstm

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWeightFile encodes a minimal valid weight file with hiddenSize
// H from the six tensors the caller supplies, in file order.
func buildWeightFile(t *testing.T, h int, wIh, wHh, bIh, bHh, wOut, bOut []float32) []byte {
	t.Helper()
	var buf bytes.Buffer

	hdr := []uint32{256, uint32(h), 1, 0}
	for _, v := range hdr {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	for _, tensor := range [][]float32{wIh, wHh, bIh, bHh, wOut, bOut} {
		for _, v := range tensor {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		}
	}
	return buf.Bytes()
}

func TestReadWeightsRejectsBadInputSize(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []uint32{128, 4, 1, 0} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	_, err := ReadWeights(&buf)
	require.Error(t, err)
}

func TestReadWeightsRejectsBadNumLayers(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []uint32{256, 4, 2, 0} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	_, err := ReadWeights(&buf)
	require.Error(t, err)
}

func TestReadWeightsRejectsShortFile(t *testing.T) {
	_, err := ReadWeights(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestModelHashMatchesFNV1aOfTensors(t *testing.T) {
	H := 2
	wIh := make([]float32, 4*H*256)
	wHh := make([]float32, 4*H*H)
	bIh := make([]float32, 4*H)
	bHh := make([]float32, 4*H)
	wOut := make([]float32, 256*H)
	bOut := make([]float32, 256)
	for i := range wIh {
		wIh[i] = float32(i%7) * 0.01
	}

	data := buildWeightFile(t, H, wIh, wHh, bIh, bHh, wOut, bOut)
	w, err := ReadWeights(bytes.NewReader(data))
	require.NoError(t, err)

	hasher := fnv.New64a()
	for _, tensor := range [][]float32{wIh, wHh, bIh, bHh, wOut, bOut} {
		tb := make([]byte, len(tensor)*4)
		for i, v := range tensor {
			binary.LittleEndian.PutUint32(tb[i*4:], math.Float32bits(v))
		}
		hasher.Write(tb)
	}
	assert.Equal(t, hasher.Sum64(), w.hash)
}

func TestPredictNextIsDeterministic(t *testing.T) {
	H := 3
	wIh := make([]float32, 4*H*256)
	wHh := make([]float32, 4*H*H)
	bIh := make([]float32, 4*H)
	bHh := make([]float32, 4*H)
	wOut := make([]float32, 256*H)
	bOut := make([]float32, 256)
	for i := range wIh {
		wIh[i] = float32(i%5) * 0.1
	}
	for i := range wHh {
		wHh[i] = float32(i%3) * 0.05
	}

	data := buildWeightFile(t, H, wIh, wHh, bIh, bHh, wOut, bOut)
	w, err := ReadWeights(bytes.NewReader(data))
	require.NoError(t, err)

	p1 := NewPredictor(w)
	s1 := p1.CreateState()
	out1 := p1.PredictNext(s1, 42)

	p2 := NewPredictor(w)
	s2 := p2.CreateState()
	out2 := p2.PredictNext(s2, 42)

	assert.Equal(t, out1, out2)

	var sum float32
	for _, v := range out1 {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
}

func TestSoftmaxSumsToOne(t *testing.T) {
	var logits [256]float32
	for i := range logits {
		logits[i] = float32(i) * 0.01
	}
	probs := softmax(logits)

	var sum float32
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, float32(0))
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
}
