package moneywords

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// ErrInvalidNumeral is returned when a string is not a well-formed
// non-negative decimal numeral.
var ErrInvalidNumeral = errors.New("invalid numeral")

// Numeral type represents a non-negative decimal number written in base 10.
// Its zero value corresponds to "0".
//
// Unlike [decimal.Decimal], a numeral keeps every digit of its input,
// so integer and fractional parts of any length can be represented.
// The limit on the integer part is enforced only when the numeral is put
// into words, see [MaxDigits].
//
// Numeral is designed to be safe for concurrent use by multiple goroutines.
type Numeral struct {
	intg string // integer digits without leading zeros, empty for zero
	frac string // fractional digits as written, including trailing zeros
}

// newNumeralUnsafe creates a new numeral without checking the digits.
// Use it only if you are absolutely sure that the arguments are valid.
func newNumeralUnsafe(intg, frac string) Numeral {
	return Numeral{intg: strings.TrimLeft(intg, "0"), frac: frac}
}

// ParseNumeral converts a string to a numeral.
// The input string must be in one of the following formats:
//
//	123
//	123.45
//	0.5
//	007.50
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeral ::= digits [ '.' digits ]
//
// Leading zeros of the integer part are removed, trailing zeros of the
// fractional part are kept.
//
// ParseNumeral returns an error wrapping [ErrInvalidNumeral] if:
//   - the string is empty;
//   - the string contains a sign, whitespace, or any other non-digit character;
//   - the string begins or ends with the decimal point;
//   - the string contains more than one decimal point.
func ParseNumeral(s string) (Numeral, error) {
	n, err := parseNumeral(s)
	if err != nil {
		return Numeral{}, fmt.Errorf("parsing numeral: %w", err)
	}
	return n, nil
}

func parseNumeral(s string) (Numeral, error) {
	if s == "" {
		return Numeral{}, fmt.Errorf("empty string: %w", ErrInvalidNumeral)
	}
	intg, frac, found := strings.Cut(s, ".")
	switch {
	case intg == "":
		return Numeral{}, fmt.Errorf("no integer digits: %w", ErrInvalidNumeral)
	case found && frac == "":
		return Numeral{}, fmt.Errorf("no fractional digits: %w", ErrInvalidNumeral)
	case strings.Contains(frac, "."):
		return Numeral{}, fmt.Errorf("multiple decimal points: %w", ErrInvalidNumeral)
	}
	if pos := nonDigit(intg); pos >= 0 {
		return Numeral{}, fmt.Errorf("invalid character %q: %w", intg[pos], ErrInvalidNumeral)
	}
	if pos := nonDigit(frac); pos >= 0 {
		return Numeral{}, fmt.Errorf("invalid character %q: %w", frac[pos], ErrInvalidNumeral)
	}
	return newNumeralUnsafe(intg, frac), nil
}

// nonDigit returns the position of the first byte of s that is not an ASCII
// digit, or -1 if there is none.
func nonDigit(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return -1
}

// MustParseNumeral is like [ParseNumeral] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numerals.
func MustParseNumeral(s string) Numeral {
	n, err := ParseNumeral(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumeral(%q) failed: %v", s, err))
	}
	return n
}

// NewNumeralFromDecimal converts a decimal to a numeral.
// The scale of the decimal is preserved, so 1.50 becomes "1.50".
// See also method [Numeral.Decimal].
//
// NewNumeralFromDecimal returns an error wrapping [ErrInvalidNumeral]
// if the decimal is negative.
func NewNumeralFromDecimal(d decimal.Decimal) (Numeral, error) {
	if d.IsNeg() {
		return Numeral{}, fmt.Errorf("converting decimal %v: negative value: %w", d, ErrInvalidNumeral)
	}
	n, err := parseNumeral(d.String())
	if err != nil {
		return Numeral{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return n, nil
}

// Decimal returns the (possibly rounded) decimal representation of the numeral.
// Fractional digits beyond [decimal.MaxScale] are rounded using
// [rounding half to even] (banker's rounding).
// See also constructor [NewNumeralFromDecimal].
//
// Decimal returns an error if the integer part has more than
// [decimal.MaxPrec] digits.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (n Numeral) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting numeral %v: %w", n, err)
	}
	return d, nil
}

// Int returns the digits of the integer part without leading zeros.
// The integer part of a numeral smaller than one is "0".
func (n Numeral) Int() string {
	if n.intg == "" {
		return "0"
	}
	return n.intg
}

// Frac returns the digits of the fractional part exactly as written.
// It returns an empty string if the numeral has no decimal point.
func (n Numeral) Frac() string {
	return n.frac
}

// Groups returns the number of three-digit groups in the integer part,
// which is the number of scale names needed to read it aloud.
// Zero has one group.
func (n Numeral) Groups() int {
	return (len(n.Int()) + 2) / 3
}

// IsZero returns:
//
//	true  if n = 0
//	false otherwise
func (n Numeral) IsZero() bool {
	return n.intg == "" && n.IsInt()
}

// IsInt returns true if there are no significant digits after the decimal point.
func (n Numeral) IsInt() bool {
	return strings.Trim(n.frac, "0") == ""
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the numeral.
// See also method [Numeral.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Numeral) String() string {
	if n.frac == "" {
		return n.Int()
	}
	return n.Int() + "." + n.frac
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseNumeral].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Numeral) UnmarshalText(text []byte) error {
	var err error
	*n, err = ParseNumeral(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Numeral{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Numeral.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Numeral) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers without exponent are accepted.
// See also constructor [ParseNumeral].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *Numeral) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*n, err = ParseNumeral(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Numeral{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string, so that no digit is lost
// by decoders that read JSON numbers into binary floating-point values.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n Numeral) MarshalJSON() ([]byte, error) {
	s := n.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Numeral) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = ParseNumeral(value)
	case []byte:
		*n, err = ParseNumeral(string(value))
	case int64:
		if value < 0 {
			err = fmt.Errorf("negative value %v: %w", value, ErrInvalidNumeral)
			break
		}
		*n, err = ParseNumeral(strconv.FormatInt(value, 10))
	case nil:
		err = fmt.Errorf("%T does not support null values", Numeral{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Numeral{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The numeral is stored as a string, see [Numeral.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Numeral) Value() (driver.Value, error) {
	return n.String(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description    |
//	| ------ | -------- | -------------- |
//	| %s, %v | 123.45   | Numeral        |
//	| %q     | "123.45" | Quoted numeral |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Numeral) Format(state fmt.State, verb rune) {
	s := n.String()
	slen := len(s)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + slen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for range lspaces {
		buf = append(buf, ' ')
	}

	// Opening quote
	for range lquote {
		buf = append(buf, '"')
	}

	// Digits
	buf = append(buf, s...)

	// Closing quote
	for range tquote {
		buf = append(buf, '"')
	}

	// Trailing spaces
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(moneywords.Numeral="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
