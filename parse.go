package moneywords

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var errInvalidWords = errors.New("invalid words")

// Lookup tables for the parser, derived from the tables used for rendering.
var (
	smallValues = indexWords(small[:])
	tensValues  = indexWords(tens[:])
	scaleValues = indexWords(scaleNames[:])
)

func indexWords(words []string) map[string]int {
	m := make(map[string]int, len(words))
	for i, w := range words {
		if w != "" {
			m[w] = i
		}
	}
	return m
}

// tokenize lowercases text and splits it into words at spaces, hyphens,
// and commas.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '-', ',':
			return true
		}
		return false
	})
}

// tokenKind is the class of the last word consumed within a group.
type tokenKind int

const (
	kindNone tokenKind = iota
	kindOnes
	kindTeens
	kindTens
	kindHundred
)

// ParseCardinal converts an English cardinal number, such as
// "one thousand, two hundred and thirty-four", to its digit string "1234".
// The input is case-insensitive; words may be separated by spaces, hyphens,
// and commas, and the British "and" is accepted anywhere between words.
// Scale names up to "vigintillion" (10^63) are recognized.
//
// ParseCardinal returns an error if the text is empty, contains a word that
// is not part of a cardinal number, or has words in an impossible order,
// such as "two one" or "thousand million".
func ParseCardinal(text string) (string, error) {
	digits, err := parseCardinal(tokenize(text))
	if err != nil {
		return "", fmt.Errorf("parsing cardinal %q: %w", text, err)
	}
	return digits, nil
}

func parseCardinal(tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", fmt.Errorf("no words: %w", errInvalidWords)
	}
	if len(tokens) == 1 && tokens[0] == wordZero {
		return "0", nil
	}

	var groups [len(scaleNames)]int
	top := -1               // index of the most significant group
	last := len(scaleNames) // index of the last scale name seen
	cur, kind := 0, kindNone

	for _, tok := range tokens {
		if tok == wordAnd {
			continue
		}
		if v, ok := smallValues[tok]; ok && v > 0 {
			switch {
			case v < 10 && (kind == kindNone || kind == kindHundred || kind == kindTens):
				kind = kindOnes
			case v >= 10 && (kind == kindNone || kind == kindHundred):
				kind = kindTeens
			default:
				return "", fmt.Errorf("unexpected %q: %w", tok, errInvalidWords)
			}
			cur += v
			continue
		}
		if v, ok := tensValues[tok]; ok {
			if kind != kindNone && kind != kindHundred {
				return "", fmt.Errorf("unexpected %q: %w", tok, errInvalidWords)
			}
			cur += 10 * v
			kind = kindTens
			continue
		}
		if tok == wordHundred {
			if kind != kindOnes || cur >= 10 {
				return "", fmt.Errorf("unexpected %q: %w", tok, errInvalidWords)
			}
			cur *= 100
			kind = kindHundred
			continue
		}
		if i, ok := scaleValues[tok]; ok {
			if kind == kindNone || i >= last {
				return "", fmt.Errorf("unexpected %q: %w", tok, errInvalidWords)
			}
			groups[i] = cur
			if top < 0 {
				top = i
			}
			last = i
			cur, kind = 0, kindNone
			continue
		}
		return "", fmt.Errorf("unknown word %q: %w", tok, errInvalidWords)
	}
	if kind != kindNone {
		groups[0] = cur
		if top < 0 {
			top = 0
		}
	}
	if top < 0 {
		return "", fmt.Errorf("no number: %w", errInvalidWords)
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(groups[top]))
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%03d", groups[i])
	}
	return b.String(), nil
}

// ParseWords converts a currency phrase in words, as returned by
// [Config.Translate] for the unit u, back to a numeral.
// The fractional part of the result always has u.Scale() digits,
// so ParseWords("one dollar and five cents", Dollar) returns 1.05 and
// ParseWords("two dollars", Dollar) returns 2.00.
// Both singular and plural unit names are accepted in any position.
//
// ParseWords returns an error if:
//   - the text is not a cardinal number followed by a unit name,
//     optionally followed by "and", a cardinal number, and a minor unit name;
//   - the number of minor units does not fit into u.Scale() digits;
//   - the integer part has more than [MaxDigits] digits, the error wraps
//     [ErrMagnitudeOverflow].
func ParseWords(text string, u Unit) (Numeral, error) {
	n, err := parseWords(tokenize(text), u)
	if err != nil {
		return Numeral{}, fmt.Errorf("parsing words %q: %w", text, err)
	}
	return n, nil
}

func parseWords(tokens []string, u Unit) (Numeral, error) {
	if u.IsZero() {
		return Numeral{}, fmt.Errorf("zero value: %w", errInvalidUnit)
	}

	// Major units
	pos, size := findNoun(tokens, u.one, u.many)
	if pos < 0 {
		return Numeral{}, fmt.Errorf("no %q: %w", u.one, errInvalidWords)
	}
	intg, err := parseCardinal(tokens[:pos])
	if err != nil {
		return Numeral{}, err
	}
	if len(intg) > MaxDigits {
		return Numeral{}, fmt.Errorf("%v integer digits, at most %v supported: %w", len(intg), MaxDigits, ErrMagnitudeOverflow)
	}

	// Minor units
	scale := u.Scale()
	rest := tokens[pos+size:]
	if len(rest) == 0 {
		return newNumeralUnsafe(intg, strings.Repeat("0", scale)), nil
	}
	if scale == 0 || rest[0] != wordAnd {
		return Numeral{}, fmt.Errorf("unexpected %q: %w", rest[0], errInvalidWords)
	}
	rest = rest[1:]
	pos, size = findNoun(rest, u.minorOne, u.minorMany)
	if pos < 0 || pos+size != len(rest) {
		return Numeral{}, fmt.Errorf("no trailing %q: %w", u.minorOne, errInvalidWords)
	}
	minor, err := parseCardinal(rest[:pos])
	if err != nil {
		return Numeral{}, err
	}
	if len(minor) > scale {
		return Numeral{}, fmt.Errorf("%v %v do not fit into %v digits: %w", minor, u.minorMany, scale, errInvalidWords)
	}
	frac := strings.Repeat("0", scale-len(minor)) + minor
	return newNumeralUnsafe(intg, frac), nil
}

// findNoun returns the position and the number of tokens of the first
// occurrence of either name in tokens, or -1 if neither occurs.
func findNoun(tokens []string, names ...string) (pos, size int) {
	for i := range tokens {
		for _, name := range names {
			want := tokenize(name)
			if len(want) == 0 || i+len(want) > len(tokens) {
				continue
			}
			if slices.Equal(tokens[i:i+len(want)], want) {
				return i, len(want)
			}
		}
	}
	return -1, 0
}
