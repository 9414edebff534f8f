package engine

import (
	"errors"
	"fmt"
)

var (
	ErrRange            = errors.New("invalid range")
	ErrOverflow         = errors.New("value outside engine width")
	ErrUnsupportedWidth = errors.New("unsupported engine width")
	ErrSnapshot         = errors.New("malformed engine snapshot")
)

// RangeError reports min > max, or a negative sequence count. It matches
// ErrRange with errors.Is.
type RangeError struct {
	Min   int64
	Max   int64
	Count int
}

func (e *RangeError) Error() string {
	if e.Count < 0 {
		return fmt.Sprintf("invalid range: count %d < 0", e.Count)
	}
	return fmt.Sprintf("invalid range: max < min. min: %d, max: %d", e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// OverflowError reports a bound that the engine's width cannot represent.
// Seeds never produce one; they are reduced modulo the seed width instead.
type OverflowError struct {
	Value int64
	Width Width
}

func (e *OverflowError) Error() string {
	min, max := e.Width.Limits()
	return fmt.Sprintf("value outside engine width: %d not in [%d, %d] for %s-bit engine",
		e.Value, min, max, e.Width)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
