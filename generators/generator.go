package generators

import "github.com/fernandosanchezjr/seedrand/sequence"

// Generator is the caller-facing surface: single draws and bulk draws
// delivered as a stream, both from one seeded state.
type Generator interface {
	SetSeed(seed int64)
	Reseed() int64
	Generate(min, max int64) (int64, error)
	GenerateSequenceStream(min, max int64, count int) (*sequence.Stream, error)
}
