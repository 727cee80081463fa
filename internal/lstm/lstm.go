// Package lstm implements the tiny single-layer LSTM predictor: a
// one-hot byte input, one recurrent layer, and a 256-way linear +
// softmax head. Weights are loaded once from a fixed binary layout and
// are immutable thereafter; PredictNext is a pure function of the
// weights, the caller's session state, and the previous byte.
package lstm

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/ha1tch/neurozip/internal/model"
)

const (
	inputSize  = 256
	numLayers  = 1
	headerSize = 4 * 4 // inputSize, hiddenSize, numLayers, reserved, each uint32
)

// Weights holds the six dense tensors of a single-layer LSTM plus its
// output head, exactly as laid out in the weight file.
type Weights struct {
	HiddenSize int

	// WIh has shape [4*H, 256], row-major.
	WIh []float32
	// WHh has shape [4*H, H], row-major.
	WHh []float32
	// BIh and BHh each have length 4*H.
	BIh []float32
	BHh []float32
	// WOut has shape [256, H], row-major.
	WOut []float32
	// BOut has length 256.
	BOut []float32

	hash uint64
}

// LoadWeights reads a weight file from path. It fails if inputSize !=
// 256, numLayers != 1, or the file is short.
func LoadWeights(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "lstm: open weight file")
	}
	defer f.Close()
	return ReadWeights(f)
}

// ReadWeights parses a weight file from r, per the layout in §6: four
// little-endian uint32 header fields followed by six float32 tensors.
func ReadWeights(r io.Reader) (*Weights, error) {
	var hdr [4]uint32
	hdrBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdrBytes); err != nil {
		return nil, errors.Wrap(err, "lstm: read weight header")
	}
	for i := range hdr {
		hdr[i] = binary.LittleEndian.Uint32(hdrBytes[i*4:])
	}
	inSize, hiddenSize, layers := hdr[0], hdr[1], hdr[2]

	if inSize != inputSize {
		return nil, errors.Errorf("lstm: unsupported inputSize %d, want %d", inSize, inputSize)
	}
	if layers != numLayers {
		return nil, errors.Errorf("lstm: unsupported numLayers %d, want %d", layers, numLayers)
	}
	if hiddenSize == 0 {
		return nil, errors.New("lstm: hiddenSize must be positive")
	}

	h := int(hiddenSize)
	w := &Weights{HiddenSize: h}

	sizes := []int{4 * h * inputSize, 4 * h * h, 4 * h, 4 * h, 256 * h, 256}
	dsts := []*[]float32{&w.WIh, &w.WHh, &w.BIh, &w.BHh, &w.WOut, &w.BOut}

	hasher := fnv.New64a()
	for i, n := range sizes {
		buf := make([]byte, n*4)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrapf(err, "lstm: read tensor %d", i)
		}
		hasher.Write(buf)
		vals := make([]float32, n)
		for j := 0; j < n; j++ {
			bits := binary.LittleEndian.Uint32(buf[j*4:])
			vals[j] = math.Float32frombits(bits)
		}
		*dsts[i] = vals
	}
	w.hash = hasher.Sum64()
	return w, nil
}

// Predictor implements model.Predictor over a fixed set of weights.
type Predictor struct {
	w *Weights
}

// NewPredictor wraps weights in a model.Predictor.
func NewPredictor(w *Weights) *Predictor {
	return &Predictor{w: w}
}

// ModelID is 1 for the tiny LSTM predictor.
func (p *Predictor) ModelID() uint32 { return 1 }

// ModelHash is the FNV-1a fingerprint of the six weight tensors, in
// the order they appear in the weight file.
func (p *Predictor) ModelHash() uint64 { return p.w.hash }

// sessionState holds the recurrent hidden and cell vectors for one
// compress or decompress call. It is created fresh per session and
// discarded when the call returns.
type sessionState struct {
	h []float32
	c []float32
}

// CreateState returns a zero-initialized session state sized to the
// loaded model's hidden dimension.
func (p *Predictor) CreateState() model.State {
	return &sessionState{
		h: make([]float32, p.w.HiddenSize),
		c: make([]float32, p.w.HiddenSize),
	}
}

// PredictNext runs one LSTM step on prevByte, mutates state in place,
// and returns the softmax distribution over the next byte.
func (p *Predictor) PredictNext(state model.State, prevByte byte) [256]float32 {
	s := state.(*sessionState)
	w := p.w
	H := w.HiddenSize
	x := int(prevByte)

	pre := make([]float32, 4*H)
	for r := 0; r < 4*H; r++ {
		pre[r] = w.BIh[r] + w.BHh[r]
	}
	for r := 0; r < 4*H; r++ {
		pre[r] += w.WIh[r*inputSize+x]
	}
	for r := 0; r < 4*H; r++ {
		var acc float32
		row := w.WHh[r*H : r*H+H]
		for j := 0; j < H; j++ {
			acc += row[j] * s.h[j]
		}
		pre[r] += acc
	}

	iPre := pre[0*H : 1*H]
	fPre := pre[1*H : 2*H]
	gPre := pre[2*H : 3*H]
	oPre := pre[3*H : 4*H]

	for j := 0; j < H; j++ {
		i := sigmoid(iPre[j])
		f := sigmoid(fPre[j])
		g := tanh32(gPre[j])
		o := sigmoid(oPre[j])

		c := f*s.c[j] + i*g
		s.c[j] = c
		s.h[j] = o * tanh32(c)
	}

	var logits [256]float32
	for k := 0; k < 256; k++ {
		acc := w.BOut[k]
		row := w.WOut[k*H : k*H+H]
		for j := 0; j < H; j++ {
			acc += row[j] * s.h[j]
		}
		logits[k] = acc
	}

	return softmax(logits)
}

func sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

func tanh32(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

func softmax(logits [256]float32) [256]float32 {
	m := logits[0]
	for _, v := range logits[1:] {
		if v > m {
			m = v
		}
	}

	var exps [256]float32
	var sum float32
	for k, v := range logits {
		e := float32(math.Exp(float64(v - m)))
		exps[k] = e
		sum += e
	}

	var probs [256]float32
	if sum <= 0 {
		for k := range probs {
			probs[k] = 1.0 / 256
		}
		return probs
	}
	for k := range probs {
		probs[k] = exps[k] / sum
	}
	return probs
}
