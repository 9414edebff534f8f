package engine

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"gonum.org/v1/gonum/mathext/prng"
)

type Width int

const (
	Width32 Width = 32
	Width64 Width = 64

	DefaultWidth = Width32
)

func (w Width) String() string {
	return strconv.Itoa(int(w))
}

// Limits returns the smallest and largest bound an engine of this width
// accepts.
func (w Width) Limits() (min int64, max int64) {
	if w == Width64 {
		return math.MinInt64, math.MaxInt64
	}
	return math.MinInt32, math.MaxInt32
}

// Valid reports whether an engine can be built with this width.
func (w Width) Valid() bool {
	return w == Width32 || w == Width64
}

// source is one Mersenne Twister state plus the bias-free range reduction
// over its native output width.
type source interface {
	Seed(seed uint64)
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
	// bounded returns a value uniformly distributed over [0, delta].
	bounded(delta uint64) uint64
}

func newSource(width Width) (source, error) {
	switch width {
	case Width32:
		return mt32{prng.NewMT19937()}, nil
	case Width64:
		return mt64{prng.NewMT19937_64()}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
}

type mt32 struct {
	*prng.MT19937
}

// Lemire's multiply-and-reject: outputs whose low half falls below
// 2^32 mod n are redrawn.
func (s mt32) bounded(delta uint64) uint64 {
	if delta == math.MaxUint32 {
		return uint64(s.Uint32())
	}
	n := uint32(delta) + 1
	m := uint64(s.Uint32()) * uint64(n)
	if low := uint32(m); low < n {
		threshold := -n % n
		for low < threshold {
			m = uint64(s.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return m >> 32
}

type mt64 struct {
	*prng.MT19937_64
}

func (s mt64) bounded(delta uint64) uint64 {
	if delta == math.MaxUint64 {
		return s.Uint64()
	}
	n := delta + 1
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}
