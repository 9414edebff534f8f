package sequence

import (
	"context"
	"io"

	"github.com/fernandosanchezjr/seedrand/wire"
	log "github.com/sirupsen/logrus"
)

// Consumer receives a stream's chunks in order, then exactly one End call:
// nil after the last value, otherwise the error that stopped delivery.
type Consumer interface {
	Data(values []int64) error
	End(err error)
}

// ConsumerFuncs adapts a pair of functions to Consumer. Either may be nil.
type ConsumerFuncs struct {
	OnData func(values []int64) error
	OnEnd  func(err error)
}

func (c ConsumerFuncs) Data(values []int64) error {
	if c.OnData == nil {
		return nil
	}
	return c.OnData(values)
}

func (c ConsumerFuncs) End(err error) {
	if c.OnEnd != nil {
		c.OnEnd(err)
	}
}

// Pipe pushes every chunk to c. An error from c.Data closes the stream and
// is passed to c.End and returned.
func (s *Stream) Pipe(ctx context.Context, c Consumer) (err error) {
	defer func() {
		if err != nil {
			log.WithFields(log.Fields{
				"stream": s.id,
				"error":  err,
			}).Debug("Sequence pipe stopped")
		}
		c.End(err)
	}()
	if err = s.claim(); err != nil {
		return err
	}
	var received int
	for {
		if err = ctx.Err(); err != nil {
			s.Close()
			return err
		}
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case chunk, ok := <-s.chunkChan:
			if !ok {
				return s.endErr(received)
			}
			received += len(chunk)
			if err = c.Data(chunk); err != nil {
				s.Close()
				return err
			}
		}
	}
}

// Reader exposes the stream in wire encoding. Closing the reader closes the
// stream.
func (s *Stream) Reader() (io.ReadCloser, error) {
	if err := s.claim(); err != nil {
		return nil, err
	}
	return &streamReader{stream: s}, nil
}

type streamReader struct {
	stream   *Stream
	buf      []byte
	pending  []byte
	received int
}

func (r *streamReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		chunk, ok := <-r.stream.chunkChan
		if !ok {
			if err := r.stream.endErr(r.received); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		r.received += len(chunk)
		r.buf = wire.AppendValues(r.buf[:0], chunk)
		r.pending = r.buf
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *streamReader) Close() error {
	r.stream.Close()
	return nil
}
