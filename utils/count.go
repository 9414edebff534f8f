package utils

import (
	"github.com/dustin/go-humanize"
	"strconv"
)

const MaxRawCount = 10000

// Count is a number of draws or values, formatted for log fields.
type Count int64

func (c Count) String() string {
	if c < MaxRawCount {
		return strconv.FormatInt(int64(c), 10)
	} else {
		return humanize.Comma(int64(c))
	}
}
