package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// EntropySeed reads a seed from the system entropy source. Engines that are
// never explicitly seeded start from one of these.
func EntropySeed() int64 {
	var data [8]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(data[:]))
}
