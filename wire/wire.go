// Package wire is the byte form of a sequence: each value is an int64
// encoded as 8 bytes of little-endian two's complement, with no framing
// between values.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const ValueSize = 8

var ErrTruncated = errors.New("truncated value data")

// AppendValues appends the encoding of values to dst.
func AppendValues(dst []byte, values []int64) []byte {
	var buf [ValueSize]byte
	for _, value := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(value))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeValues decodes a whole number of values. Trailing bytes that do not
// form a complete value are an error, never skipped.
func DecodeValues(data []byte) ([]int64, error) {
	if len(data)%ValueSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncated, len(data), ValueSize)
	}
	values := make([]int64, len(data)/ValueSize)
	for i := range values {
		values[i] = int64(binary.LittleEndian.Uint64(data[i*ValueSize:]))
	}
	return values, nil
}

// Decoder reads values one at a time from a byte stream.
type Decoder struct {
	r   io.Reader
	buf [ValueSize]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next value. It returns io.EOF at a clean value boundary
// and io.ErrUnexpectedEOF when the stream ends inside a value.
func (d *Decoder) Next() (int64, error) {
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(d.buf[:])), nil
}

// ReadAll decodes values until the underlying reader is exhausted.
func (d *Decoder) ReadAll() ([]int64, error) {
	var values []int64
	for {
		value, err := d.Next()
		if err == io.EOF {
			return values, nil
		} else if err != nil {
			return values, err
		}
		values = append(values, value)
	}
}
