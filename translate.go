package moneywords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the English reading convention for cardinal numbers.
// The zero value is [StyleAmerican].
type Style uint8

const (
	// StyleAmerican reads 1515 as "one thousand five hundred fifteen".
	StyleAmerican Style = iota
	// StyleBritish reads 1515 as "one thousand, five hundred and fifteen"
	// and 1001 as "one thousand and one".
	StyleBritish
)

var styleNames = [...]string{
	StyleAmerican: "american",
	StyleBritish:  "british",
}

// Case selects the letter case of a translation.
// The zero value is [CaseUpper].
type Case uint8

const (
	// CaseUpper: "ONE HUNDRED DOLLARS".
	CaseUpper Case = iota
	// CaseLower: "one hundred dollars".
	CaseLower
	// CaseTitle: "One Hundred Dollars".
	CaseTitle
)

var caseNames = [...]string{
	CaseUpper: "upper",
	CaseLower: "lower",
	CaseTitle: "title",
}

var (
	errInvalidStyle = errors.New("invalid style")
	errInvalidCase  = errors.New("invalid case")
)

// ParseStyle converts a case-insensitive style name ("american" or
// "british") to a style.
func ParseStyle(s string) (Style, error) {
	for i, name := range styleNames {
		if strings.EqualFold(s, name) {
			return Style(i), nil //nolint:gosec
		}
	}
	return StyleAmerican, fmt.Errorf("parsing style %q: %w", s, errInvalidStyle)
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseCase converts a case-insensitive case name ("upper", "lower" or
// "title") to a case.
func ParseCase(s string) (Case, error) {
	for i, name := range caseNames {
		if strings.EqualFold(s, name) {
			return Case(i), nil //nolint:gosec
		}
	}
	return CaseUpper, fmt.Errorf("parsing case %q: %w", s, errInvalidCase)
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}
	return fmt.Sprintf("Case(%d)", uint8(c))
}

// apply converts s to the case.
// Casers keep state between calls, so a new one is created every time.
func (c Case) apply(s string) string {
	switch c {
	case CaseLower:
		return cases.Lower(language.English).String(s)
	case CaseTitle:
		return cases.Title(language.English).String(s)
	default:
		return cases.Upper(language.English).String(s)
	}
}

// Config holds everything a translation depends on.
// Config is passed by value and never modified by this package, so one
// Config can be shared by multiple goroutines.
type Config struct {
	Unit     Unit         // currency unit; must not be the zero value
	Rounding RoundingMode // rounding of the fractional part to Unit.Scale()
	Style    Style        // reading convention
	Case     Case         // letter case of the result
}

func (c Config) validate() error {
	switch {
	case c.Unit.IsZero():
		return fmt.Errorf("zero value: %w", errInvalidUnit)
	case !c.Rounding.valid():
		return fmt.Errorf("%v: %w", c.Rounding, errInvalidRounding)
	case int(c.Style) >= len(styleNames):
		return fmt.Errorf("%v: %w", c.Style, errInvalidStyle)
	case int(c.Case) >= len(caseNames):
		return fmt.Errorf("%v: %w", c.Case, errInvalidCase)
	}
	return nil
}

// Translate returns the English currency expression of a numeral,
// using [Config] with the given unit and default settings: half-up
// rounding to cents, American style, upper case.
//
//	Translate("123.45", "dollar") = "ONE HUNDRED TWENTY-THREE DOLLARS AND FORTY-FIVE CENTS"
//
// See also constructors [ParseNumeral] and [ParseUnit], and method
// [Config.Translate].
func Translate(numeral, unit string) (string, error) {
	n, err := ParseNumeral(numeral)
	if err != nil {
		return "", err
	}
	u, err := ParseUnit(unit)
	if err != nil {
		return "", err
	}
	return Config{Unit: u}.Translate(n)
}

// Translate returns the English currency expression of the numeral.
//
// The fractional part is rounded to the scale of the unit; a fraction
// that rounds up to one is carried into the integer part. The integer part
// is read in groups of three digits followed by their scale names, or
// "zero". The major unit is plural only if the numeral rounded to a whole
// number is greater than one, so 0 reads "zero dollar" and 1.25 reads
// "one dollar and twenty-five cents". A nonzero number of minor units is
// appended after "and"; zero minor units are omitted.
//
// Translate returns an error if:
//   - the configuration is not valid;
//   - the integer part has more than [MaxDigits] digits, before or after
//     rounding, the error wraps [ErrMagnitudeOverflow].
func (c Config) Translate(n Numeral) (string, error) {
	s, err := c.translate(n)
	if err != nil {
		return "", fmt.Errorf("translating %v: %w", n, err)
	}
	return s, nil
}

func (c Config) translate(n Numeral) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	if len(n.intg) > MaxDigits {
		return "", fmt.Errorf("%v integer digits, at most %v supported: %w", len(n.intg), MaxDigits, ErrMagnitudeOverflow)
	}

	// Rounding
	intg, minor, err := n.roundToScale(c.Unit.Scale(), c.Rounding)
	if err != nil {
		return "", fmt.Errorf("rounding to %v digits: %w", c.Unit.Scale(), err)
	}
	if len(intg) > MaxDigits {
		return "", fmt.Errorf("rounding carries into digit %v: %w", len(intg), ErrMagnitudeOverflow)
	}
	plural, err := n.exceedsOne(c.Rounding)
	if err != nil {
		return "", fmt.Errorf("rounding to whole units: %w", err)
	}

	// Major units
	var p phrase
	if err := writeCardinal(&p, intg, c.Style); err != nil {
		return "", err
	}
	p.word(c.Unit.major(plural))

	// Minor units
	if minor > 0 {
		p.word(wordAnd)
		if err := writeCardinal(&p, strconv.FormatUint(minor, 10), c.Style); err != nil {
			return "", err
		}
		p.word(c.Unit.minor(minor != 1))
	}

	return c.Case.apply(p.String()), nil
}
