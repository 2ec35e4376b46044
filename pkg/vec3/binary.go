package vec3

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit xxhash of the component bits. Negative zero hashes like zero,
// so vectors that compare Equal share a hash.
func (v Vector3) Hash() uint64 {
	var buf [binarySize]byte
	for i, c := range v {
		if c == 0 {
			c = 0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(c))
	}
	return xxhash.Sum64(buf[:])
}

const binarySize = 24

// MarshalBinary writes the three components as little-endian IEEE-754 doubles.
func (v Vector3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binarySize)
	for i, c := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(c))
	}
	return buf, nil
}

func (v *Vector3) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidFormat, binarySize, len(data))
	}
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return nil
}
