package engine

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/fernandosanchezjr/seedrand/metrics"
	"github.com/fernandosanchezjr/seedrand/utils"
	log "github.com/sirupsen/logrus"
)

const snapshotHeaderSize = 9

// Engine owns one Mersenne Twister state. SetSeed, Reseed, Generate, Fill
// and snapshots hold the instance lock for their whole duration; engines
// share nothing with each other.
type Engine struct {
	mu    sync.Mutex
	width Width
	seed  int64
	src   source
}

// New returns a 32-bit engine seeded from the system entropy source.
func New() *Engine {
	e, err := NewWithWidth(DefaultWidth)
	if err != nil {
		panic(err)
	}
	return e
}

// NewWithWidth returns an engine of the given width seeded from the system
// entropy source.
func NewWithWidth(width Width) (*Engine, error) {
	return NewSeeded(width, utils.EntropySeed())
}

func NewSeeded(width Width, seed int64) (*Engine, error) {
	src, err := newSource(width)
	if err != nil {
		return nil, err
	}
	metrics.Register()
	e := &Engine{width: width, src: src}
	e.setSeed(seed)
	return e, nil
}

// SetSeed reinitializes the state from seed, discarding all prior draw
// progress. A 32-bit engine keeps only the low 32 bits of seed.
func (e *Engine) SetSeed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setSeed(seed)
}

// Reseed seeds the engine from the system entropy source and returns the
// seed that was applied.
func (e *Engine) Reseed() int64 {
	seed := utils.EntropySeed()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setSeed(seed)
	return e.seed
}

func (e *Engine) setSeed(seed int64) {
	if e.width == Width32 {
		seed = int64(uint32(seed))
	}
	e.seed = seed
	e.src.Seed(uint64(seed))
	log.WithFields(log.Fields{
		"seed":  seed,
		"width": e.width,
	}).Debug("Engine seeded")
}

// Seed returns the last applied seed, after width reduction.
func (e *Engine) Seed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seed
}

func (e *Engine) Width() Width {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width
}

// Limits returns the bounds this engine accepts.
func (e *Engine) Limits() (min int64, max int64) {
	return e.Width().Limits()
}

// Generate draws one value uniformly distributed over [min, max]. Invalid
// bounds are rejected before the state advances.
func (e *Engine) Generate(min, max int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(min, max); err != nil {
		return 0, err
	}
	metrics.Draws(int(e.width), 1)
	return e.draw(min, max), nil
}

// Fill draws len(dst) values over [min, max] under a single lock
// acquisition. dst[i] equals what the i-th of len(dst) consecutive Generate
// calls would have returned.
func (e *Engine) Fill(min, max int64, dst []int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(min, max); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = e.draw(min, max)
	}
	metrics.Draws(int(e.width), len(dst))
	return nil
}

func (e *Engine) check(min, max int64) error {
	lower, upper := e.width.Limits()
	for _, value := range [2]int64{min, max} {
		if value < lower || value > upper {
			metrics.Rejected("overflow")
			return &OverflowError{Value: value, Width: e.width}
		}
	}
	if min > max {
		metrics.Rejected("range")
		return &RangeError{Min: min, Max: max}
	}
	return nil
}

// draw computes min + offset in unsigned arithmetic so the full signed
// range wraps exactly.
func (e *Engine) draw(min, max int64) int64 {
	return int64(uint64(min) + e.src.bounded(uint64(max)-uint64(min)))
}

// FromSnapshot builds an engine from a MarshalBinary snapshot.
func FromSnapshot(data []byte) (*Engine, error) {
	e := &Engine{}
	if err := e.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	metrics.Register()
	return e, nil
}

// MarshalBinary encodes the width, the current seed and the full generator
// state.
func (e *Engine) MarshalBinary() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	state, err := e.src.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(state))
	data[0] = byte(e.width)
	binary.LittleEndian.PutUint64(data[1:snapshotHeaderSize], uint64(e.seed))
	return append(data, state...), nil
}

// UnmarshalBinary replaces the engine's width, seed and state with a
// snapshot produced by MarshalBinary. On error the engine is unchanged.
func (e *Engine) UnmarshalBinary(data []byte) error {
	if len(data) < snapshotHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrSnapshot, len(data))
	}
	width := Width(data[0])
	src, err := newSource(width)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if err = src.UnmarshalBinary(data[snapshotHeaderSize:]); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width = width
	e.seed = int64(binary.LittleEndian.Uint64(data[1:snapshotHeaderSize]))
	e.src = src
	return nil
}
