package generators

import (
	"github.com/fernandosanchezjr/seedrand/config"
	"github.com/fernandosanchezjr/seedrand/engine"
	"github.com/fernandosanchezjr/seedrand/sequence"
	"github.com/fernandosanchezjr/seedrand/utils"
	log "github.com/sirupsen/logrus"
)

// Seeded composes an engine with the stream options used for its
// sequences. The engine is owned by this value alone.
type Seeded struct {
	engine  *engine.Engine
	options sequence.Options
}

var _ Generator = (*Seeded)(nil)

// NewSeeded returns a 32-bit generator seeded from system entropy.
func NewSeeded() *Seeded {
	return &Seeded{engine: engine.New()}
}

func NewSeededFromEngine(e *engine.Engine, options sequence.Options) *Seeded {
	return &Seeded{engine: e, options: options}
}

// NewSeededFromConfig builds a generator with the configured width, stream
// options and, when present, seed.
func NewSeededFromConfig(cfg *config.Config) (*Seeded, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width := engine.Width(cfg.Engine.Width)
	var e *engine.Engine
	var err error
	if cfg.Engine.Seed != nil {
		e, err = engine.NewSeeded(width, *cfg.Engine.Seed)
	} else {
		e, err = engine.NewWithWidth(width)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"width":     width,
		"seed":      e.Seed(),
		"chunkSize": cfg.Stream.ChunkSize,
	}).Info("Generator ready")
	return NewSeededFromEngine(e, sequence.Options{
		ChunkSize: cfg.Stream.ChunkSize,
		Buffer:    cfg.Stream.Buffer,
	}), nil
}

func (s *Seeded) Engine() *engine.Engine {
	return s.engine
}

func (s *Seeded) SetSeed(seed int64) {
	s.engine.SetSeed(seed)
}

func (s *Seeded) Reseed() int64 {
	seed := s.engine.Reseed()
	log.WithField("seed", seed).Info("Generator reseeded from entropy")
	return seed
}

func (s *Seeded) Generate(min, max int64) (int64, error) {
	return s.engine.Generate(min, max)
}

// GenerateSequenceStream draws count values before returning and streams
// them in order. See sequence.Produce.
func (s *Seeded) GenerateSequenceStream(min, max int64, count int) (*sequence.Stream, error) {
	stream, err := sequence.ProduceWithOptions(s.engine, sequence.Request{Min: min, Max: max, Count: count}, s.options)
	if err != nil {
		log.WithFields(log.Fields{
			"min":   min,
			"max":   max,
			"count": utils.Count(count),
		}).WithError(err).Debug("Sequence rejected")
		return nil, err
	}
	return stream, nil
}
