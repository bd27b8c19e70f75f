// Package deck provides the shuffling machinery used by card decks: an
// in-place Fisher–Yates permutation and random generators backed by the
// kyber Ed25519 suite.
//
// Generators are always passed in explicitly. NewRand draws from the suite's
// cryptographic random stream, NewSeededRand from the suite's XOF keyed by a
// seed, so that a game can be replayed exactly under test.
package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// streamSource adapts a cipher.Stream to rand.Source64. Every call reads the
// next 8 bytes of key stream.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *streamSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed rekeys the source with the XOF derived from seed.
func (s *streamSource) Seed(seed int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	s.stream = suite.XOF(b[:])
}

// NewRand returns a generator fed by the suite's cryptographic random stream.
// Two generators created this way never produce the same sequence.
func NewRand() *rand.Rand {
	return rand.New(&streamSource{stream: suite.RandomStream()})
}

// NewSeededRand returns a deterministic generator: the same seed always
// yields the same sequence of values.
func NewSeededRand(seed []byte) *rand.Rand {
	return rand.New(&streamSource{stream: suite.XOF(seed)})
}
