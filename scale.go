package moneywords

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/scale/codegen.go

// MaxDigits is a maximum number of digits in the integer part of a numeral
// that can be put into words.
const MaxDigits = 63

// ErrMagnitudeOverflow is returned when a number is too large for the table
// of scale names.
var ErrMagnitudeOverflow = errors.New("magnitude overflow")

// ScaleName returns the short-scale name of 1000^index, such as "thousand"
// for 1, "million" for 2, and "vigintillion" for 21.
// The name of index 0 is empty.
//
// ScaleName returns an error wrapping [ErrMagnitudeOverflow] if the index is
// outside the table.
func ScaleName(index int) (string, error) {
	if index < 0 || index >= len(scaleNames) {
		return "", fmt.Errorf("scale index %v out of range [0, %v]: %w", index, len(scaleNames)-1, ErrMagnitudeOverflow)
	}
	return scaleNames[index], nil
}
