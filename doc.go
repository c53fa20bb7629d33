/*
Package moneywords puts non-negative decimal amounts of money into English
words, as they are written on cheques:

	123.45 -> ONE HUNDRED TWENTY-THREE DOLLARS AND FORTY-FIVE CENTS

It leverages the [decimal] package for rounding and combines it with
a [Unit] struct describing the currency in words.

# Features

  - Numerals of any precision: integer parts of up to 63 digits and
    fractional parts of any length
  - Short-scale names from thousand to novemdecillion
  - American and British reading styles
  - Several rounding modes for the fractional part
  - Upper, lower, and title case
  - Parsing of phrases back into numerals

# Representation

The package consists of three main structs: Numeral, Unit, and Config.
A Numeral keeps the digits of a decimal string exactly as written, so that no
precision is lost before rounding.
A Unit holds the singular and plural names of a currency and its minor unit,
and the number of minor-unit digits.
A Config combines a Unit with a rounding mode, a reading style, and a letter
case.
All three are immutable values, safe for concurrent use by multiple
goroutines.

# Supported Ranges

The integer part of a numeral can have up to [MaxDigits] digits after
rounding.
The minor unit can have up to [MaxUnitScale] digits.
Fractional digits beyond the minor-unit scale are rounded exactly, however
many there are.
The same rounding is available as [Numeral.Round].

# Pluralization

The major unit is plural when the amount rounded to a whole number is
greater than one, so 0 reads "ZERO DOLLAR" and 1.50 reads
"ONE DOLLARS AND FIFTY CENTS".
The minor unit is singular only for exactly one minor unit.
Zero minor units are not mentioned at all.

# Errors

[ParseNumeral] returns an error wrapping [ErrInvalidNumeral] for malformed
input, such as signs, exponents, or missing digits around the decimal point.
Translation returns an error wrapping [ErrMagnitudeOverflow] when the integer
part does not fit into [MaxDigits] digits.
The Must* constructors panic instead of returning errors.
*/
package moneywords
