// Package codec drives a model.Predictor and a rangecoder.Encoder or
// Decoder across a full byte buffer, quantizing the predictor's output
// at every step so both sides of the channel agree on the same
// cumulative-frequency table.
package codec

import (
	"sort"

	"github.com/ha1tch/neurozip/internal/model"
	"github.com/ha1tch/neurozip/internal/quantize"
	"github.com/ha1tch/neurozip/internal/rangecoder"
)

// Compress range-codes every byte of buf against predictions from p,
// returning the finished encoder output.
func Compress(buf []byte, p model.Predictor) []byte {
	enc := rangecoder.NewEncoder()
	state := p.CreateState()
	prev := byte(0)

	for _, b := range buf {
		probs := p.PredictNext(state, prev)
		tab := quantize.Quantize(probs)
		cumFreq := tab.Cum[b]
		freq := tab.Cum[int(b)+1] - cumFreq
		enc.Encode(cumFreq, freq, tab.Total)
		prev = b
	}

	return enc.Finish()
}

// Decompress recovers exactly originalSize bytes from payload using
// predictions from p, mirroring Compress step for step.
func Decompress(payload []byte, p model.Predictor, originalSize uint64) []byte {
	dec := rangecoder.NewDecoder(payload)
	state := p.CreateState()
	prev := byte(0)

	out := make([]byte, 0, originalSize)
	for i := uint64(0); i < originalSize; i++ {
		probs := p.PredictNext(state, prev)
		tab := quantize.Quantize(probs)

		v := dec.GetCum(tab.Total)
		sym := findSymbol(tab.Cum[:], v)

		cumFreq := tab.Cum[sym]
		freq := tab.Cum[sym+1] - cumFreq
		dec.Decode(cumFreq, freq, tab.Total)

		out = append(out, byte(sym))
		prev = byte(sym)
	}
	return out
}

// findSymbol returns the unique s with cum[s] <= v < cum[s+1].
func findSymbol(cum []uint32, v uint32) int {
	return sort.Search(256, func(s int) bool { return cum[s+1] > v })
}
