package moneywords

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// RoundingMode determines how the fractional part of a numeral is rounded
// to the scale of its unit before it is put into words.
// The zero value is [RoundHalfUp].
type RoundingMode uint8

const (
	// RoundHalfUp rounds to the nearest value, ties away from zero:
	// 0.125 -> 0.13.
	RoundHalfUp RoundingMode = iota
	// RoundHalfEven rounds to the nearest value, ties to an even digit
	// (banker's rounding): 0.125 -> 0.12.
	RoundHalfEven
	// RoundDown truncates extra digits: 0.129 -> 0.12.
	RoundDown
	// RoundUp rounds away from zero: 0.121 -> 0.13.
	RoundUp
)

var errInvalidRounding = errors.New("invalid rounding mode")

var roundingNames = [...]string{
	RoundHalfUp:   "half-up",
	RoundHalfEven: "half-even",
	RoundDown:     "down",
	RoundUp:       "up",
}

// ParseRoundingMode converts a string to a rounding mode.
// The input is case-insensitive and may use hyphens, underscores or
// nothing between words:
//
//	half-up
//	HALF_EVEN
//	down
//	up
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	for m, name := range roundingNames {
		if key == strings.ReplaceAll(name, "-", "") {
			return RoundingMode(m), nil //nolint:gosec
		}
	}
	return RoundHalfUp, fmt.Errorf("parsing rounding mode %q: %w", s, errInvalidRounding)
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

func (m RoundingMode) valid() bool {
	return int(m) < len(roundingNames)
}

// round returns the non-negative decimal d rounded to the given number of
// digits after the decimal point.
func (m RoundingMode) round(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	switch m {
	case RoundHalfUp:
		if scale >= d.Scale() {
			return d, nil
		}
		half, err := decimal.New(5, scale+1)
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, err = d.Add(half)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return d.Trunc(scale), nil
	case RoundHalfEven:
		return d.Round(scale), nil
	case RoundDown:
		return d.Trunc(scale), nil
	case RoundUp:
		return d.Ceil(scale), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%v: %w", m, errInvalidRounding)
}

// fold shortens the fractional digits frac to at most prec digits.
// When digits are dropped, the last kept digit is replaced with a sticky
// digit: '1' if any dropped digit was nonzero, '0' otherwise.
// This keeps rounding to prec-2 or fewer digits exact in every mode.
// With one integer digit in front, [decimal.MaxPrec]-1 fractional digits fit
// into a decimal, so rounding is exact up to [MaxUnitScale] digits.
func fold(frac string, prec int) string {
	if len(frac) <= prec {
		return frac
	}
	keep := frac[:prec-1]
	if strings.Trim(frac[prec-1:], "0") == "" {
		return keep + "0"
	}
	return keep + "1"
}

// increment adds one to a string of decimal digits.
func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// roundToScale returns the integer digits and the number of minor units of
// the numeral rounded to scale digits after the decimal point.
// A fraction that rounds up to one is carried into the integer digits.
func (n Numeral) roundToScale(scale int, mode RoundingMode) (intg string, minor uint64, err error) {
	intg = n.Int()
	if n.frac == "" {
		return intg, 0, nil
	}
	// The last integer digit breaks ties in half-even mode.
	last := intg[len(intg)-1:]
	d, err := decimal.Parse(last + "." + fold(n.frac, decimal.MaxPrec-1))
	if err != nil {
		return "", 0, err
	}
	d, err = mode.round(d, scale)
	if err != nil {
		return "", 0, err
	}
	whole := d.Trunc(0)
	if whole.Coef() > uint64(last[0]-'0') {
		intg = increment(intg)
	}
	f, err := d.Sub(whole)
	if err != nil {
		return "", 0, err
	}
	return intg, f.Rescale(scale).Coef(), nil
}

// exceedsOne reports whether the numeral rounded to a whole number
// is greater than one.
func (n Numeral) exceedsOne(mode RoundingMode) (bool, error) {
	if len(n.intg) > 1 || (len(n.intg) == 1 && n.intg[0] > '1') {
		return true, nil
	}
	s := n.Int()
	if n.frac != "" {
		// One integer digit leaves room for MaxPrec-1 fractional digits.
		s += "." + fold(n.frac, decimal.MaxPrec-1)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return false, err
	}
	d, err = mode.round(d, 0)
	if err != nil {
		return false, err
	}
	return d.Cmp(decimal.One) > 0, nil
}

// Round returns the numeral rounded to the given number of digits after the
// decimal point using the rounding mode.
// The fractional part of the result has exactly scale digits, so
// 9.999 rounded to 2 digits is 10.00.
// See also method [Unit.Scale].
//
// Round returns an error if the scale is negative or greater than
// [MaxUnitScale], or if the rounding mode is not valid.
func (n Numeral) Round(scale int, mode RoundingMode) (Numeral, error) {
	switch {
	case scale < 0 || scale > MaxUnitScale:
		return Numeral{}, fmt.Errorf("rounding %v: scale %v out of range [0, %v]", n, scale, MaxUnitScale)
	case !mode.valid():
		return Numeral{}, fmt.Errorf("rounding %v: %v: %w", n, mode, errInvalidRounding)
	}
	intg, minor, err := n.roundToScale(scale, mode)
	if err != nil {
		return Numeral{}, fmt.Errorf("rounding %v: %w", n, err)
	}
	frac := ""
	if scale > 0 {
		frac = fmt.Sprintf("%0*d", scale, minor)
	}
	return newNumeralUnsafe(intg, frac), nil
}
