package moneywords

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxUnitScale is a maximum number of minor-unit digits of a [Unit].
const MaxUnitScale = 16

var errInvalidUnit = errors.New("invalid unit")

// Dollar is the unit used by [Translate] examples: dollars and cents.
var Dollar = MustNewUnit("dollar", "dollars", "cent", "cents", 2)

// Unit type represents a currency unit, such as the dollar, together with
// its minor unit, such as the cent, and the number of minor-unit digits.
// The zero value is not a valid unit and cannot be used for translation.
//
// Unit is an immutable value, so it is safe for concurrent use by multiple
// goroutines.
type Unit struct {
	one, many           string // major unit names
	minorOne, minorMany string // minor unit names
	scale               int8   // number of minor-unit digits
}

// NewUnit returns a unit with the given major and minor names.
// A scale of 0 describes a currency without minor units, such as
// the Japanese yen; the minor names must be empty in that case.
//
// NewUnit returns an error if:
//   - a name is empty or contains characters other than letters, spaces,
//     hyphens, and apostrophes, or does not begin and end with a letter;
//   - the scale is negative or greater than [MaxUnitScale];
//   - the scale is 0 and minor names are given.
func NewUnit(one, many, minorOne, minorMany string, scale int) (Unit, error) {
	u, err := newUnit(one, many, minorOne, minorMany, scale)
	if err != nil {
		return Unit{}, fmt.Errorf("creating unit %q: %w", one, err)
	}
	return u, nil
}

func newUnit(one, many, minorOne, minorMany string, scale int) (Unit, error) {
	if scale < 0 || scale > MaxUnitScale {
		return Unit{}, fmt.Errorf("scale %v out of range [0, %v]: %w", scale, MaxUnitScale, errInvalidUnit)
	}
	names := []string{one, many}
	switch {
	case scale > 0:
		names = append(names, minorOne, minorMany)
	case minorOne != "" || minorMany != "":
		return Unit{}, fmt.Errorf("minor unit %q without minor digits: %w", minorOne, errInvalidUnit)
	}
	for _, name := range names {
		if !validName(name) {
			return Unit{}, fmt.Errorf("name %q: %w", name, errInvalidUnit)
		}
	}
	u := Unit{
		one:       one,
		many:      many,
		minorOne:  minorOne,
		minorMany: minorMany,
		scale:     int8(scale), //nolint:gosec
	}
	return u, nil
}

// validName reports whether s is a word or a phrase made of letters,
// separated by single spaces, hyphens, or apostrophes.
func validName(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if !unicode.IsLetter(first) || !unicode.IsLetter(last) {
		return false
	}
	prev := first
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			// ok
		case r == ' ' || r == '-' || r == '\'':
			if !unicode.IsLetter(prev) {
				return false
			}
		default:
			return false
		}
		prev = r
	}
	return true
}

// MustNewUnit is like [NewUnit] but panics if the unit cannot be constructed.
// It simplifies safe initialization of global variables holding units.
func MustNewUnit(one, many, minorOne, minorMany string, scale int) Unit {
	u, err := NewUnit(one, many, minorOne, minorMany, scale)
	if err != nil {
		panic(fmt.Sprintf("NewUnit(%q, %q, %q, %q, %v) failed: %v", one, many, minorOne, minorMany, scale, err))
	}
	return u
}

// ParseUnit converts a singular unit name to a unit.
// The name is lowercased and its plural is derived using regular English
// rules ("dollar" -> "dollars", "penny" -> "pennies", "peso" -> "pesos").
// The minor unit defaults to the cent with 2 digits, as in [Dollar].
// Use [Unit.WithPlural] and [Unit.WithMinor] for irregular names
// and other minor units.
//
// ParseUnit returns an error if the name is not valid, see [NewUnit].
func ParseUnit(name string) (Unit, error) {
	name = strings.ToLower(name)
	u, err := newUnit(name, pluralize(name), Dollar.minorOne, Dollar.minorMany, Dollar.Scale())
	if err != nil {
		return Unit{}, fmt.Errorf("parsing unit: %w", err)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the name cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(name string) Unit {
	u, err := ParseUnit(name)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", name, err))
	}
	return u
}

// pluralize returns the regular English plural of the last word of noun.
func pluralize(noun string) string {
	n := len(noun)
	switch {
	case n == 0:
		return noun
	case strings.HasSuffix(noun, "s"),
		strings.HasSuffix(noun, "x"),
		strings.HasSuffix(noun, "z"),
		strings.HasSuffix(noun, "ch"),
		strings.HasSuffix(noun, "sh"):
		return noun + "es"
	case n > 1 && noun[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(noun[n-2])):
		return noun[:n-1] + "ies"
	}
	return noun + "s"
}

// WithPlural returns a copy of the unit with the plural major name replaced.
//
// WithPlural returns an error if the name is not valid, see [NewUnit].
func (u Unit) WithPlural(many string) (Unit, error) {
	v, err := newUnit(u.one, many, u.minorOne, u.minorMany, u.Scale())
	if err != nil {
		return Unit{}, fmt.Errorf("changing plural of %q: %w", u.one, err)
	}
	return v, nil
}

// WithMinor returns a copy of the unit with a different minor unit.
// If many is empty, it is derived from one as in [ParseUnit].
// A scale of 0 removes the minor unit; one and many must be empty then.
//
// WithMinor returns an error if the names or the scale are not valid,
// see [NewUnit].
func (u Unit) WithMinor(one, many string, scale int) (Unit, error) {
	if many == "" {
		many = pluralize(one)
	}
	v, err := newUnit(u.one, u.many, one, many, scale)
	if err != nil {
		return Unit{}, fmt.Errorf("changing minor unit of %q: %w", u.one, err)
	}
	return v, nil
}

// Singular returns the major unit name used for a single unit, e.g. "dollar".
func (u Unit) Singular() string {
	return u.one
}

// Plural returns the major unit name used for many units, e.g. "dollars".
func (u Unit) Plural() string {
	return u.many
}

// MinorSingular returns the minor unit name used for a single minor unit,
// e.g. "cent".
func (u Unit) MinorSingular() string {
	return u.minorOne
}

// MinorPlural returns the minor unit name used for many minor units,
// e.g. "cents".
func (u Unit) MinorPlural() string {
	return u.minorMany
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit, e.g. 2 for the cent.
// Fractional digits of a numeral are rounded to this scale before
// they are put into words.
func (u Unit) Scale() int {
	return int(u.scale)
}

// IsZero returns true if u is the zero value, which is not a valid unit.
func (u Unit) IsZero() bool {
	return u == Unit{}
}

func (u Unit) major(plural bool) string {
	if plural {
		return u.many
	}
	return u.one
}

func (u Unit) minor(plural bool) string {
	if plural {
		return u.minorMany
	}
	return u.minorOne
}

// String method implements the [fmt.Stringer] interface and returns
// the singular major name of the unit.
// See also method [Unit.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.one
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unit{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the singular major name, so irregular plurals
// and non-default minor units do not survive a round trip.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.one), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unit{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the singular major name.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(u.one)+2)
	text = append(text, '"')
	text = append(text, u.one...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Unit{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Unit{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return u.one, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description   |
//	| ------ | -------- | ------------- |
//	| %s, %v | dollar   | Singular name |
//	| %q     | "dollar" | Quoted name   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	name := u.one

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding, names may contain multi-byte letters
	width := lquote + utf8.RuneCountInString(name) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, lspaces+lquote+len(name)+tquote+tspaces)
	buf = append(buf, strings.Repeat(" ", lspaces)...)
	buf = append(buf, strings.Repeat(`"`, lquote)...)
	buf = append(buf, name...)
	buf = append(buf, strings.Repeat(`"`, tquote)...)
	buf = append(buf, strings.Repeat(" ", tspaces)...)

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(moneywords.Unit="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
