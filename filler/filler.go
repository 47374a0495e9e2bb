// Package filler provides the byte sources used to pad unused grid cells.
//
// Filler only hides which cells carry the message; it is not meant to be
// secret-strength random. Seeded sources make encode output reproducible in
// tests and across runs.
package filler

import (
	"fmt"
	"math/rand/v2"
)

// Source yields one filler byte per call.
type Source interface {
	Next() byte
}

// Alphabet is an inclusive byte range filler is drawn from.
type Alphabet struct {
	Lo byte
	Hi byte
}

// Uppercase is the default filler alphabet, 'A' through 'Z'.
var Uppercase = Alphabet{Lo: 'A', Hi: 'Z'}

// Contains reports whether b falls inside the alphabet.
func (a Alphabet) Contains(b byte) bool {
	return b >= a.Lo && b <= a.Hi
}

func (a Alphabet) size() int {
	return int(a.Hi) - int(a.Lo) + 1
}

func (a Alphabet) validate() error {
	if a.Lo > a.Hi {
		return fmt.Errorf("invalid filler alphabet %q-%q", a.Lo, a.Hi)
	}
	return nil
}

// Rand draws uniformly from an alphabet using a math/rand/v2 generator.
// A Rand built over an explicit generator is not safe for concurrent use.
type Rand struct {
	alphabet Alphabet
	// Nil uses the goroutine-safe top level functions.
	rng *rand.Rand
}

// Option configures a Rand.
type Option func(*Rand)

// WithAlphabet overrides the default Uppercase alphabet.
func WithAlphabet(a Alphabet) Option {
	return func(r *Rand) {
		r.alphabet = a
	}
}

// NewRandom returns a Rand backed by the process-wide generator.
func NewRandom(opts ...Option) (*Rand, error) {
	return newRand(nil, opts)
}

// NewSeeded returns a deterministic Rand over a PCG generator.
func NewSeeded(seed uint64, opts ...Option) (*Rand, error) {
	return newRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts)
}

// NewChaCha8 returns a deterministic Rand keyed by a 32-byte seed, such as
// the one kept by the seedkeyring package.
func NewChaCha8(seed [32]byte, opts ...Option) (*Rand, error) {
	return newRand(rand.New(rand.NewChaCha8(seed)), opts)
}

func newRand(rng *rand.Rand, opts []Option) (*Rand, error) {
	r := &Rand{alphabet: Uppercase, rng: rng}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.alphabet.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Next implements Source.
func (r *Rand) Next() byte {
	var n int
	if r.rng == nil {
		n = rand.IntN(r.alphabet.size())
	} else {
		n = r.rng.IntN(r.alphabet.size())
	}
	return r.alphabet.Lo + byte(n)
}

// Alphabet returns the range this source draws from.
func (r *Rand) Alphabet() Alphabet {
	return r.alphabet
}

// Constant always yields the same byte. Useful for golden tests.
type Constant byte

// Next implements Source.
func (c Constant) Next() byte {
	return byte(c)
}
