// Package seedseq expands a short integer sequence into an arbitrarily long
// sequence of well-distributed 32-bit seed words.
//
// The expansion is the seed_seq algorithm standardized for C++ <random>
// (ISO/IEC 14882 [rand.util.seedseq]), so output for a given input matches
// the conventional seed-sequence behavior: similar inputs produce
// decorrelated outputs, and the no-input expansion is a fixed, repeatable
// sequence.
package seedseq

// Seq holds an initial word sequence and expands it on demand. The zero
// value and New() with no arguments behave identically: a fixed expansion
// independent of any input.
type Seq struct {
	v []uint32
}

// New returns a Seq over a copy of the given words.
func New(words ...uint32) *Seq {
	v := make([]uint32, len(words))
	copy(v, words)
	return &Seq{v: v}
}

// Size reports the number of stored input words.
func (s *Seq) Size() int {
	return len(s.v)
}

// Param copies the stored input words into out, which must hold at least
// Size words.
func (s *Seq) Param(out []uint32) {
	copy(out, s.v)
}

// Generate fills out with the expansion of the stored words. A zero-length
// out is a no-op. The same Seq always produces the same output for the
// same length.
func (s *Seq) Generate(out []uint32) {
	n := len(out)
	if n == 0 {
		return
	}

	for i := range out {
		out[i] = 0x8b8b8b8b
	}

	in := len(s.v)
	m := in + 1
	if n > m {
		m = n
	}
	var t int
	switch {
	case n >= 623:
		t = 11
	case n >= 68:
		t = 7
	case n >= 39:
		t = 5
	case n >= 7:
		t = 3
	default:
		t = (n - 1) / 2
	}
	p := (n - t) / 2
	q := p + t

	for k := 0; k < m; k++ {
		r1 := 1664525 * scramble(out[k%n]^out[(k+p)%n]^out[(k+n-1)%n])
		r2 := r1
		switch {
		case k == 0:
			r2 += uint32(in)
		case k <= in:
			r2 += uint32(k%n) + s.v[k-1]
		default:
			r2 += uint32(k % n)
		}
		out[(k+p)%n] += r1
		out[(k+q)%n] += r2
		out[k%n] = r2
	}
	for k := m; k < m+n; k++ {
		r3 := 1566083941 * scramble(out[k%n]+out[(k+p)%n]+out[(k+n-1)%n])
		r4 := r3 - uint32(k%n)
		out[(k+p)%n] ^= r3
		out[(k+q)%n] ^= r4
		out[k%n] = r4
	}
}

func scramble(x uint32) uint32 {
	return x ^ (x >> 27)
}
