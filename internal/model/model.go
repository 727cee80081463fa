// Package model defines the abstract predictor contract the codec loop
// drives: given a previous byte and mutable per-session state, produce
// a probability distribution over the next byte.
package model

// State is an opaque, predictor-owned recurrent state. The codec loop
// creates one per session via Predictor.CreateState and never inspects
// its contents.
type State interface{}

// Predictor is the contract every statistical model implements.
// PredictNext must be deterministic: identical state and prevByte
// produce a bitwise-identical probability vector on the same
// implementation, so the encoder and decoder stay synchronized without
// exchanging anything but range-coded bytes.
type Predictor interface {
	// CreateState returns a fresh, zero-initialized session state.
	CreateState() State

	// PredictNext mutates state by consuming prevByte and returns the
	// probability distribution over the byte that follows it.
	PredictNext(state State, prevByte byte) [256]float32

	// ModelID identifies the predictor implementation.
	ModelID() uint32

	// ModelHash fingerprints the loaded weights. Two predictors with
	// equal ModelHash must behave identically.
	ModelHash() uint64
}
