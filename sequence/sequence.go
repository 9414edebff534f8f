package sequence

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fernandosanchezjr/seedrand/engine"
	"github.com/fernandosanchezjr/seedrand/metrics"
	"github.com/fernandosanchezjr/seedrand/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultChunkSize = 2000
	DefaultBuffer    = 1
)

var (
	ErrClosed   = errors.New("stream closed before all values were emitted")
	ErrConsumed = errors.New("stream already consumed")
)

// Request asks for Count values drawn from [Min, Max].
type Request struct {
	Min   int64
	Max   int64
	Count int
}

// Options control emission only; they never change which values a stream
// carries.
type Options struct {
	// ChunkSize is the largest number of values pushed per chunk.
	ChunkSize int
	// Buffer is how many chunks may wait for the consumer. Zero selects
	// DefaultBuffer, a negative value makes emission unbuffered.
	Buffer int
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Buffer < 0 {
		o.Buffer = 0
	} else if o.Buffer == 0 {
		o.Buffer = DefaultBuffer
	}
	return o
}

// Stream is a one-shot, ordered delivery of a sequence whose values were
// all drawn when it was produced. A stream must be drained or closed, or
// its emitter goroutine stays blocked.
type Stream struct {
	id        uuid.UUID
	request   Request
	values    []int64
	chunkSize int
	chunkChan chan []int64
	quitChan  chan struct{}
	closeOnce sync.Once
	waiter    sync.WaitGroup
	emitted   int64
	truncated int32
	claimed   int32
}

// Produce draws all req.Count values from e before returning, so the
// engine's state has fully advanced past this sequence even if nothing is
// ever read from the stream. Rejected requests do not advance the engine.
func Produce(e *engine.Engine, req Request) (*Stream, error) {
	return ProduceWithOptions(e, req, Options{})
}

func ProduceWithOptions(e *engine.Engine, req Request, opts Options) (*Stream, error) {
	if req.Count < 0 {
		metrics.Rejected("range")
		return nil, &engine.RangeError{Min: req.Min, Max: req.Max, Count: req.Count}
	}
	values := make([]int64, req.Count)
	if err := e.Fill(req.Min, req.Max, values); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	s := &Stream{
		id:        uuid.New(),
		request:   req,
		values:    values,
		chunkSize: opts.ChunkSize,
		chunkChan: make(chan []int64, opts.Buffer),
		quitChan:  make(chan struct{}),
	}
	metrics.SequenceProduced()
	log.WithFields(log.Fields{
		"stream": s.id,
		"min":    req.Min,
		"max":    req.Max,
		"count":  utils.Count(req.Count),
	}).Debug("Sequence produced")
	s.waiter.Add(1)
	go s.emitLoop()
	return s, nil
}

func (s *Stream) emitLoop() {
	defer s.waiter.Done()
	defer close(s.chunkChan)
	var end int
	for pos := 0; pos < len(s.values); pos = end {
		end = pos + s.chunkSize
		if end > len(s.values) {
			end = len(s.values)
		}
		select {
		case <-s.quitChan:
			atomic.StoreInt32(&s.truncated, 1)
			metrics.StreamClosedEarly()
			log.WithFields(log.Fields{
				"stream":    s.id,
				"emitted":   utils.Count(pos),
				"discarded": utils.Count(len(s.values) - pos),
			}).Debug("Sequence closed early")
			s.values = nil
			return
		case s.chunkChan <- s.values[pos:end:end]:
			atomic.AddInt64(&s.emitted, int64(end-pos))
			metrics.ValuesEmitted(end - pos)
		}
	}
	s.values = nil
}

func (s *Stream) ID() uuid.UUID {
	return s.id
}

func (s *Stream) Request() Request {
	return s.request
}

// Len is the number of values the stream carries.
func (s *Stream) Len() int {
	return s.request.Count
}

// Emitted is the number of values handed to the chunk channel so far.
func (s *Stream) Emitted() int {
	return int(atomic.LoadInt64(&s.emitted))
}

// Chunks returns the push channel. It is closed after the last chunk, or
// early when the stream is closed. Taking it consumes the stream.
func (s *Stream) Chunks() <-chan []int64 {
	atomic.StoreInt32(&s.claimed, 1)
	return s.chunkChan
}

// Close stops emission and discards values not yet emitted. The engine is
// not rewound.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.quitChan)
	})
	s.waiter.Wait()
}

// Err returns ErrClosed if the stream was closed before every value was
// emitted.
func (s *Stream) Err() error {
	if atomic.LoadInt32(&s.truncated) == 1 {
		return ErrClosed
	}
	return nil
}

func (s *Stream) claim() error {
	if !atomic.CompareAndSwapInt32(&s.claimed, 0, 1) {
		return ErrConsumed
	}
	return nil
}

func (s *Stream) endErr(received int) error {
	if received < s.request.Count {
		return ErrClosed
	}
	return nil
}

// Collect gathers the whole sequence. Cancelling ctx closes the stream and
// returns the values received so far with ctx's error.
func (s *Stream) Collect(ctx context.Context) ([]int64, error) {
	if err := s.claim(); err != nil {
		return nil, err
	}
	values := make([]int64, 0, s.request.Count)
	for {
		if err := ctx.Err(); err != nil {
			s.Close()
			return values, err
		}
		select {
		case <-ctx.Done():
			s.Close()
			return values, ctx.Err()
		case chunk, ok := <-s.chunkChan:
			if !ok {
				return values, s.endErr(len(values))
			}
			values = append(values, chunk...)
		}
	}
}
