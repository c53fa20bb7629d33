package moneywords

import (
	"errors"
	"strings"
	"testing"
)

func TestWriteGroup(t *testing.T) {
	tests := []struct {
		n                int
		american, british string
	}{
		{1, "one", "one"},
		{9, "nine", "nine"},
		{10, "ten", "ten"},
		{13, "thirteen", "thirteen"},
		{19, "nineteen", "nineteen"},
		{20, "twenty", "twenty"},
		{21, "twenty-one", "twenty-one"},
		{45, "forty-five", "forty-five"},
		{99, "ninety-nine", "ninety-nine"},
		{100, "one hundred", "one hundred"},
		{101, "one hundred one", "one hundred and one"},
		{110, "one hundred ten", "one hundred and ten"},
		{115, "one hundred fifteen", "one hundred and fifteen"},
		{200, "two hundred", "two hundred"},
		{456, "four hundred fifty-six", "four hundred and fifty-six"},
		{999, "nine hundred ninety-nine", "nine hundred and ninety-nine"},
	}
	for _, tt := range tests {
		var p phrase
		writeGroup(&p, tt.n, StyleAmerican)
		if got := p.String(); got != tt.american {
			t.Errorf("writeGroup(%v, american) = %q, want %q", tt.n, got, tt.american)
		}
		var q phrase
		writeGroup(&q, tt.n, StyleBritish)
		if got := q.String(); got != tt.british {
			t.Errorf("writeGroup(%v, british) = %q, want %q", tt.n, got, tt.british)
		}
	}
}

func TestGroupValue(t *testing.T) {
	tests := []struct {
		digits string
		index  int
		want   int
	}{
		{"1", 0, 1},
		{"12", 0, 12},
		{"1234", 0, 234},
		{"1234", 1, 1},
		{"1000000", 1, 0},
		{"1000000", 2, 1},
		{"987654321", 2, 987},
	}
	for _, tt := range tests {
		got := groupValue(tt.digits, tt.index)
		if got != tt.want {
			t.Errorf("groupValue(%q, %v) = %v, want %v", tt.digits, tt.index, got, tt.want)
		}
	}
}

func TestWriteCardinal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			digits, american, british string
		}{
			{"0", "zero", "zero"},
			{"000", "zero", "zero"},
			{"7", "seven", "seven"},
			{"1000", "one thousand", "one thousand"},
			{"1001", "one thousand one", "one thousand and one"},
			{"1010", "one thousand ten", "one thousand and ten"},
			{"1100", "one thousand one hundred", "one thousand, one hundred"},
			{"1515", "one thousand five hundred fifteen", "one thousand, five hundred and fifteen"},
			{"1000000", "one million", "one million"},
			{"1000001", "one million one", "one million and one"},
			{"1001000", "one million one thousand", "one million, one thousand"},
			{"7561994011", "seven billion five hundred sixty-one million nine hundred ninety-four thousand eleven", "seven billion, five hundred and sixty-one million, nine hundred and ninety-four thousand and eleven"},
		}
		for _, tt := range tests {
			var p phrase
			if err := writeCardinal(&p, tt.digits, StyleAmerican); err != nil {
				t.Errorf("writeCardinal(%q, american) failed: %v", tt.digits, err)
				continue
			}
			if got := p.String(); got != tt.american {
				t.Errorf("writeCardinal(%q, american) = %q, want %q", tt.digits, got, tt.american)
			}
			var q phrase
			if err := writeCardinal(&q, tt.digits, StyleBritish); err != nil {
				t.Errorf("writeCardinal(%q, british) failed: %v", tt.digits, err)
				continue
			}
			if got := q.String(); got != tt.british {
				t.Errorf("writeCardinal(%q, british) = %q, want %q", tt.digits, got, tt.british)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		var p phrase
		digits := "1" + strings.Repeat("0", 66)
		err := writeCardinal(&p, digits, StyleAmerican)
		if !errors.Is(err, ErrMagnitudeOverflow) {
			t.Errorf("writeCardinal(10^66) error = %v, want %v", err, ErrMagnitudeOverflow)
		}
	})
}
