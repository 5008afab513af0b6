// Package engine constructs seeded math/rand/v2 generators from seedsource
// sequences.
//
// The engine variant is selected at build time by platform word width: PCG
// on 64-bit targets, whose core is a 64-bit multiply, and ChaCha8 on 32-bit
// targets, whose core works on 32-bit words. Both consume their full seed
// state from a single Generate call; the package adds nothing beyond this
// selection and delegation.
package engine

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"

	"github.com/louisbranch/seedsource"
)

const use64 = bits.UintSize >= 64

// pcgWords and chachaWords are how many 32-bit seed words each variant
// consumes: PCG takes two uint64 state words, ChaCha8 a 32-byte key.
const (
	pcgWords    = 4
	chachaWords = 8
)

// New returns a *rand.Rand over a freshly seeded engine for the platform
// word width, drawing seed material from the sources in sel.
func New(sel seedsource.Selector) *rand.Rand {
	return rand.New(NewSource(sel))
}

// NewSource returns a seeded rand.Source for the platform word width,
// drawing seed material from the sources in sel.
func NewSource(sel seedsource.Selector) rand.Source {
	return NewSourceFrom(seedsource.New(sel))
}

// NewSourceFrom seeds the platform's engine variant from any Sequence.
// The sequence's Generate is invoked exactly once.
func NewSourceFrom(seq seedsource.Sequence) rand.Source {
	if use64 {
		var words [pcgWords]uint32
		seq.Generate(words[:])
		seed1 := uint64(words[0])<<32 | uint64(words[1])
		seed2 := uint64(words[2])<<32 | uint64(words[3])
		return rand.NewPCG(seed1, seed2)
	}

	var words [chachaWords]uint32
	seq.Generate(words[:])
	var key [32]byte
	for i, word := range words {
		binary.BigEndian.PutUint32(key[4*i:], word)
	}
	return rand.NewChaCha8(key)
}
