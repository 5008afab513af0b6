// Package seedsource combines multiple sources of (hopefully) non-repeatable
// data into seed material for pseudo-random number engines.
//
// A Source merges up to three inputs of different trustworthiness: the
// operating system entropy pool, the wall clock, and a monotonic clock. The
// caller picks which of them participate through a Selector bitmask and
// receives a fixed-width word sequence suitable for seeding any engine that
// accepts the Sequence contract.
//
// Example:
//
//	var words [4]uint32
//	seedsource.New(seedsource.All).Generate(words[:])
//
// The engine subpackage builds fully seeded math/rand/v2 generators on top
// of this, choosing the engine variant by platform word width.
//
// Sources and their trade-offs:
//
//   - RandomDevice reads from crypto/rand. On every supported platform this
//     is backed by OS entropy collection and is the highest-quality input.
//     Its output is usable directly as seed material.
//   - SystemClock reads the wall clock as nanoseconds since the Unix epoch.
//     It almost never repeats, but it can jump backwards under time
//     synchronization and an adversary who controls the clock controls the
//     reading.
//   - SteadyClock reads a monotonic clock that never repeats within one
//     process run. Its origin is fixed at process start, so readings taken
//     immediately at startup fall into a narrow range.
//
// All three combined is the recommended default (All). A zero Selector is
// accepted but degenerate: it produces the same fixed word sequence on
// every call, which is useful for nothing except exercising the fallback.
//
// This package makes no cryptographic guarantees. It aims for best-effort
// non-repeatability across calls, not for secret or unbiased output.
package seedsource

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/seedsource/seedseq"
)

// Selector is a bitmask choosing which seed sources participate.
type Selector uint32

const (
	// RandomDevice draws from the OS entropy pool via crypto/rand.
	RandomDevice Selector = 1 << iota
	// SystemClock draws from the wall clock.
	SystemClock
	// SteadyClock draws from a monotonic clock fixed at process start.
	SteadyClock
)

// All combines every defined source. It is the recommended default.
const All = RandomDevice | SystemClock | SteadyClock

// ErrUnknownSource indicates a source name that ParseSelector does not
// recognize.
var ErrUnknownSource = errors.New("unknown seed source name")

// String returns the canonical comma-separated source list for the
// selector, restricted to the defined bits. The zero selector reads "none".
func (s Selector) String() string {
	f := s & All
	if f == 0 {
		return "none"
	}
	var names []string
	if f&RandomDevice != 0 {
		names = append(names, "random-device")
	}
	if f&SystemClock != 0 {
		names = append(names, "system-clock")
	}
	if f&SteadyClock != 0 {
		names = append(names, "steady-clock")
	}
	return strings.Join(names, ",")
}

// ParseSelector parses a comma-separated source list into a Selector.
// Recognized names are "random-device", "system-clock", "steady-clock",
// "all" and "none". Empty elements are ignored.
func ParseSelector(value string) (Selector, error) {
	var sel Selector
	for _, name := range strings.Split(value, ",") {
		switch strings.TrimSpace(name) {
		case "":
		case "random-device":
			sel |= RandomDevice
		case "system-clock":
			sel |= SystemClock
		case "steady-clock":
			sel |= SteadyClock
		case "all":
			sel |= All
		case "none":
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
	}
	return sel, nil
}

// processStart anchors the steady clock. Readings are monotonic
// nanoseconds elapsed since package initialization, so they restart
// from a small value on every process launch.
var processStart = time.Now()

// Sequence is the contract a seed provider exposes to random engines.
//
// Size reports how many parameter words describe the provider; Param
// copies those words into out, which must hold at least Size words.
// Generate fills every position of out with a 32-bit seed word. A
// zero-length out is a no-op. Both Source and *seedseq.Seq satisfy it.
type Sequence interface {
	Size() int
	Param(out []uint32)
	Generate(out []uint32)
}

var (
	_ Sequence = Source{}
	_ Sequence = (*seedseq.Seq)(nil)
)

// Source produces seed words from the sources its Selector names. It is an
// immutable value; the zero Source behaves like New(0), the degenerate
// no-source configuration.
type Source struct {
	sel Selector

	// Test seams. Nil fields fall back to the real facilities.
	entropy io.Reader
	wall    func() time.Time
	steady  func() int64
}

// New returns a Source drawing from the sources in sel. Pass All for the
// recommended default. Any mask is accepted; bits outside the defined
// three are ignored during generation.
func New(sel Selector) Source {
	return Source{sel: sel}
}

// Combine returns a Source drawing from the OR-reduction of flags. It is
// equivalent to New with the pre-combined mask.
func Combine(flags ...Selector) Source {
	var sel Selector
	for _, f := range flags {
		sel |= f
	}
	return New(sel)
}

// Selector returns the mask the Source was constructed with.
func (s Source) Selector() Selector {
	return s.sel
}

// Size reports the number of parameter words, which is always 1: the
// Source's entire configuration is its selector mask.
func (s Source) Size() int {
	return 1
}

// Param writes the selector mask to out[0]. out must not be empty.
func (s Source) Param(out []uint32) {
	out[0] = uint32(s.sel)
}

// Generate fills out with seed words per the selected sources.
//
// With RandomDevice as the only selected source, every word is an
// independent 32-bit entropy read, used directly. When a clock source is
// selected, the clock readings are split into 32-bit halves and expanded
// across out by a seedseq.Seq; clock bits are highly structured and must
// be decorrelated before use. When RandomDevice accompanies a clock, a
// second pass XORs one fresh entropy word into each output word, so that
// a degenerate entropy pool and a predictable clock each leave the other
// source's contribution intact.
//
// With no recognized source selected, out receives the seedseq no-input
// fixed expansion: deterministic, repeatable, and documented as the weak
// fallback rather than rejected.
//
// A failed entropy read panics with the wrapped crypto/rand error. There
// is no safe substitute for missing entropy at this layer; retry policy,
// if any, belongs to the caller.
func (s Source) Generate(out []uint32) {
	if len(out) == 0 {
		return
	}

	f := s.sel & All
	if f == RandomDevice {
		s.entropyPass(out, func(dst *uint32, word uint32) {
			*dst = word
		})
		return
	}

	scratch := make([]uint32, 0, 4)
	if f&SystemClock != 0 {
		scratch = appendClockWords(scratch, s.wallNanos())
	}
	if f&SteadyClock != 0 {
		scratch = appendClockWords(scratch, s.steadyNanos())
	}
	seedseq.New(scratch...).Generate(out)

	if f&RandomDevice != 0 {
		s.entropyPass(out, func(dst *uint32, word uint32) {
			*dst ^= word
		})
	}
}

// entropyPass draws one fresh 32-bit entropy word per output position and
// hands it to combine together with the position.
func (s Source) entropyPass(out []uint32, combine func(dst *uint32, word uint32)) {
	reader := s.entropy
	if reader == nil {
		reader = crand.Reader
	}
	var buf [4]byte
	for i := range out {
		if _, err := io.ReadFull(reader, buf[:]); err != nil {
			panic(fmt.Errorf("seedsource: read entropy: %w", err))
		}
		word := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
		combine(&out[i], word)
	}
}

// wallNanos reads the wall clock as nanoseconds since the Unix epoch.
func (s Source) wallNanos() int64 {
	if s.wall != nil {
		return s.wall().UnixNano()
	}
	return time.Now().UnixNano()
}

// steadyNanos reads the monotonic clock as nanoseconds since process start.
func (s Source) steadyNanos() int64 {
	if s.steady != nil {
		return s.steady()
	}
	return int64(time.Since(processStart))
}

// appendClockWords splits a 64-bit nanosecond count into its high and low
// 32-bit halves, in that order.
func appendClockWords(words []uint32, nanos int64) []uint32 {
	return append(words, uint32(uint64(nanos)>>32), uint32(uint64(nanos)))
}
