package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Bits returns a buffer holding at least n random bits.
func (r *RNG) Bits(n int) []byte {
	buf := make([]byte, (n+7)/8)
	r.Fill(buf)
	return buf
}

// Fill overwrites buf with random bytes, eight at a time.
func (r *RNG) Fill(buf []byte) {
	var word [8]byte
	for i := 0; i < len(buf); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.r.Uint64())
		copy(buf[i:], word[:])
	}
}

// Bit reports whether bit i of buf is set, counting from the least
// significant bit of buf[0].
func Bit(buf []byte, i int) bool {
	return buf[i/8]&(1<<(i%8)) != 0
}
