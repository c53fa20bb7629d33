package moneywords

import (
	"strings"
)

const (
	wordZero    = "zero"
	wordHundred = "hundred"
	wordAnd     = "and"
)

// small holds the names of numbers below twenty.
var small = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// phrase accumulates words separated by single spaces.
type phrase struct {
	b strings.Builder
}

func (p *phrase) word(w string) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(w)
}

// comma attaches a comma to the last word.
func (p *phrase) comma() {
	p.b.WriteByte(',')
}

func (p *phrase) String() string {
	return p.b.String()
}

// writeGroup writes a number in [1, 999] as English words into p.
func writeGroup(p *phrase, n int, style Style) {
	h, r := n/100, n%100
	if h > 0 {
		p.word(small[h])
		p.word(wordHundred)
		if r > 0 && style == StyleBritish {
			p.word(wordAnd)
		}
	}
	switch {
	case r == 0:
		// "two hundred", not "two hundred zero"
	case r < len(small):
		p.word(small[r])
	case r%10 == 0:
		p.word(tens[r/10])
	default:
		p.word(tens[r/10] + "-" + small[r%10])
	}
}

// groupValue returns the value of the three-digit group with the given
// index, counting from the least significant end of digits.
func groupValue(digits string, index int) int {
	hi := len(digits) - 3*index
	lo := max(hi-3, 0)
	v := 0
	for i := lo; i < hi; i++ {
		v = v*10 + int(digits[i]-'0')
	}
	return v
}

// writeCardinal writes the digit string as English cardinal words into p.
// Zero groups are skipped; every nonzero group above the units is followed
// by its scale name.
func writeCardinal(p *phrase, digits string, style Style) error {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		p.word(wordZero)
		return nil
	}
	first := true
	for i := (len(digits)+2)/3 - 1; i >= 0; i-- {
		g := groupValue(digits, i)
		if g == 0 {
			continue
		}
		name, err := ScaleName(i)
		if err != nil {
			return err
		}
		if !first && style == StyleBritish {
			// "one thousand and one", "one thousand, two hundred"
			if i == 0 && g < 100 {
				p.word(wordAnd)
			} else {
				p.comma()
			}
		}
		writeGroup(p, g, style)
		if name != "" {
			p.word(name)
		}
		first = false
	}
	return nil
}
