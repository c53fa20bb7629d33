// Package numgen generates random decimal numerals of a given integer length.
// It is used to sample translations across every scale name.
package numgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultMaxFrac is the default bound on the length of the fractional part.
const DefaultMaxFrac = 25

var errInvalidLength = errors.New("invalid length")

// Generator produces random numerals.
// A Generator is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a generator seeded with seed.
// Generators with equal seeds produce equal sequences.
func New(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Numeral returns a random numeral whose integer part has exactly intLen
// digits, the first of them nonzero, and whose fractional part has a random
// length in [0, maxFrac). The decimal point is omitted when the drawn length
// is zero or maxFrac is zero.
func (g *Generator) Numeral(intLen, maxFrac int) (string, error) {
	switch {
	case intLen < 1:
		return "", fmt.Errorf("integer length %v: %w", intLen, errInvalidLength)
	case maxFrac < 0:
		return "", fmt.Errorf("maximum fraction length %v: %w", maxFrac, errInvalidLength)
	}

	var b strings.Builder
	b.Grow(intLen + maxFrac + 1)
	b.WriteByte(byte('1' + g.rnd.IntN(9)))
	g.digits(&b, intLen-1)

	fracLen := 0
	if maxFrac > 0 {
		fracLen = g.rnd.IntN(maxFrac)
	}
	if fracLen > 0 {
		b.WriteByte('.')
		g.digits(&b, fracLen)
	}
	return b.String(), nil
}

func (g *Generator) digits(b *strings.Builder, n int) {
	for range n {
		b.WriteByte(byte('0' + g.rnd.IntN(10)))
	}
}

// DriverLengths returns the integer lengths sampled by the driver:
// 1 through 6 digits, then one length per scale name from thousand
// to vigintillion and beyond (7, 10, ..., 64).
// The last length exceeds the maximum that can be put into words.
func DriverLengths() []int {
	lengths := make([]int, 0, 6+20)
	for n := 1; n <= 6; n++ {
		lengths = append(lengths, n)
	}
	for n := 7; n <= 64; n += 3 {
		lengths = append(lengths, n)
	}
	return lengths
}
