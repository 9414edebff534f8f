package wire

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"
)

func TestAppendValues_Layout(t *testing.T) {
	data := AppendValues(nil, []int64{1, -1, math.MinInt64})
	require.Equal(t, []byte{
		0x01, 0, 0, 0, 0, 0, 0, 0,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 0, 0, 0, 0, 0x80,
	}, data)
}

func TestDecodeValues_Extremes(t *testing.T) {
	values := []int64{0, 1, -1, -2, math.MinInt32, math.MaxInt32, math.MinInt64, math.MaxInt64}
	decoded, err := DecodeValues(AppendValues(nil, values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

// Decoded values are exactly the encoded ones, negative values included;
// no caller-side sign adjustment is ever needed.
func TestDecodeValues_NoCorrection(t *testing.T) {
	src := prng.NewMT19937_64()
	src.Seed(10)
	values := make([]int64, 4096)
	for i := range values {
		values[i] = int64(src.Uint64())
	}
	decoded, err := DecodeValues(AppendValues(nil, values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
	var negative int
	for _, value := range decoded {
		if value < 0 {
			negative++
		}
	}
	require.Greater(t, negative, 0)
}

func TestDecodeValues_Truncated(t *testing.T) {
	data := AppendValues(nil, []int64{5, 6})
	_, err := DecodeValues(data[:len(data)-3])
	require.ErrorIs(t, err, ErrTruncated)

	values, err := DecodeValues(nil)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestDecoder(t *testing.T) {
	values := []int64{-1000, 0, 1000, math.MinInt64}
	d := NewDecoder(bytes.NewReader(AppendValues(nil, values)))
	decoded, err := d.ReadAll()
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	_, err = d.Next()
	require.Equal(t, io.EOF, err)
}

func TestDecoder_PartialValue(t *testing.T) {
	data := AppendValues(nil, []int64{42, 43})
	d := NewDecoder(bytes.NewReader(data[:12]))
	value, err := d.Next()
	require.NoError(t, err)
	require.Equal(t, int64(42), value)
	_, err = d.Next()
	require.Equal(t, io.ErrUnexpectedEOF, err)

	d = NewDecoder(bytes.NewReader(data[:12]))
	values, err := d.ReadAll()
	require.Equal(t, io.ErrUnexpectedEOF, err)
	require.Equal(t, []int64{42}, values)
}
