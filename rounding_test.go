package moneywords

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"half-up", RoundHalfUp},
			{"HALF_UP", RoundHalfUp},
			{"halfup", RoundHalfUp},
			{"half-even", RoundHalfEven},
			{"Half_Even", RoundHalfEven},
			{"down", RoundDown},
			{"UP", RoundUp},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "half", "ceiling", "half-down"}
		for _, tt := range tests {
			_, err := ParseRoundingMode(tt)
			if !errors.Is(err, errInvalidRounding) {
				t.Errorf("ParseRoundingMode(%q) error = %v, want %v", tt, err, errInvalidRounding)
			}
		}
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		m    RoundingMode
		want string
	}{
		{RoundHalfUp, "half-up"},
		{RoundHalfEven, "half-even"},
		{RoundDown, "down"},
		{RoundUp, "up"},
		{RoundingMode(10), "RoundingMode(10)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		frac string
		prec int
		want string
	}{
		{"", 5, ""},
		{"12345", 5, "12345"},
		{"123450", 5, "12341"},
		{"123400", 5, "12340"},
		{"123451", 5, "12341"},
		{"1234000001", 5, "12341"},
		{"1234000000", 5, "12340"},
		{"99999999", 3, "991"},
	}
	for _, tt := range tests {
		got := fold(tt.frac, tt.prec)
		if got != tt.want {
			t.Errorf("fold(%q, %v) = %q, want %q", tt.frac, tt.prec, got, tt.want)
		}
	}
}

func TestIncrement(t *testing.T) {
	tests := []struct {
		digits, want string
	}{
		{"0", "1"},
		{"8", "9"},
		{"9", "10"},
		{"199", "200"},
		{"999", "1000"},
		{strings.Repeat("9", 63), "1" + strings.Repeat("0", 63)},
	}
	for _, tt := range tests {
		got := increment(tt.digits)
		if got != tt.want {
			t.Errorf("increment(%q) = %q, want %q", tt.digits, got, tt.want)
		}
	}
}

func TestNumeral_roundToScale(t *testing.T) {
	tests := []struct {
		n         string
		scale     int
		mode      RoundingMode
		wantInt   string
		wantMinor uint64
	}{
		{"0", 2, RoundHalfUp, "0", 0},
		{"12", 2, RoundHalfUp, "12", 0},
		{"12.3", 2, RoundHalfUp, "12", 30},
		{"12.345", 2, RoundHalfUp, "12", 35},
		{"12.345", 2, RoundHalfEven, "12", 34},
		{"12.345", 2, RoundDown, "12", 34},
		{"12.341", 2, RoundUp, "12", 35},
		{"12.995", 2, RoundHalfUp, "13", 0},
		{"12.995", 2, RoundDown, "12", 99},
		{"99.999", 2, RoundHalfEven, "100", 0},
		{"0.5", 0, RoundHalfUp, "1", 0},
		{"0.5", 0, RoundHalfEven, "0", 0},
		{"1.5", 0, RoundHalfEven, "2", 0},
		{"0.0001", 3, RoundUp, "0", 1},
		{"2.5", 0, RoundHalfEven, "2", 0},
		{"9.5", 0, RoundHalfUp, "10", 0},
		{"9.4", 0, RoundUp, "10", 0},
		{"0.1234567890123456", 16, RoundHalfUp, "0", 1234567890123456},
		{"0.12345678901234565", 16, RoundHalfEven, "0", 1234567890123456},
		{"0.12345678901234575", 16, RoundHalfEven, "0", 1234567890123458},
		{"0.1234567890123456500000000000001", 16, RoundHalfEven, "0", 1234567890123457},
		{"0.99999999999999999999999999", 16, RoundHalfUp, "1", 0},
		{"0.99999999999999999999999999", 16, RoundDown, "0", 9999999999999999},
	}
	for _, tt := range tests {
		n := MustParseNumeral(tt.n)
		gotInt, gotMinor, err := n.roundToScale(tt.scale, tt.mode)
		if err != nil {
			t.Errorf("%q.roundToScale(%v, %v) failed: %v", n, tt.scale, tt.mode, err)
			continue
		}
		if gotInt != tt.wantInt || gotMinor != tt.wantMinor {
			t.Errorf("%q.roundToScale(%v, %v) = %v, %v, want %v, %v", n, tt.scale, tt.mode, gotInt, gotMinor, tt.wantInt, tt.wantMinor)
		}
	}
}

func TestNumeral_exceedsOne(t *testing.T) {
	tests := []struct {
		n    string
		mode RoundingMode
		want bool
	}{
		{"0", RoundHalfUp, false},
		{"1", RoundHalfUp, false},
		{"1.49", RoundHalfUp, false},
		{"1.5", RoundHalfUp, true},
		{"1.5", RoundHalfEven, true},
		{"1.5", RoundDown, false},
		{"1.01", RoundUp, true},
		{"1.4999999999999999999999999", RoundHalfUp, false},
		{"1.5000000000000000000000001", RoundHalfUp, true},
		{"0.9", RoundUp, false},
		{"2", RoundDown, true},
		{"10", RoundHalfUp, true},
		{strings.Repeat("9", 70), RoundHalfUp, true},
	}
	for _, tt := range tests {
		n := MustParseNumeral(tt.n)
		got, err := n.exceedsOne(tt.mode)
		if err != nil {
			t.Errorf("%q.exceedsOne(%v) failed: %v", n, tt.mode, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.exceedsOne(%v) = %v, want %v", n, tt.mode, got, tt.want)
		}
	}
}

func TestNumeral_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			n     string
			scale int
			mode  RoundingMode
			want  string
		}{
			{"0", 2, RoundHalfUp, "0.00"},
			{"7", 0, RoundHalfUp, "7"},
			{"7.5", 0, RoundHalfEven, "8"},
			{"1.005", 2, RoundHalfUp, "1.01"},
			{"1.005", 2, RoundHalfEven, "1.00"},
			{"9.999", 2, RoundHalfUp, "10.00"},
			{"0.0001", 3, RoundUp, "0.001"},
			{"123.4", 3, RoundDown, "123.400"},
			{strings.Repeat("9", 70) + ".9", 0, RoundHalfUp, "1" + strings.Repeat("0", 70)},
		}
		for _, tt := range tests {
			n := MustParseNumeral(tt.n)
			got, err := n.Round(tt.scale, tt.mode)
			if err != nil {
				t.Errorf("%q.Round(%v, %v) failed: %v", n, tt.scale, tt.mode, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Round(%v, %v) = %q, want %q", n, tt.scale, tt.mode, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		n := MustParseNumeral("1.5")
		if _, err := n.Round(-1, RoundHalfUp); err == nil {
			t.Errorf("%q.Round(-1, half-up) did not fail", n)
		}
		if _, err := n.Round(MaxUnitScale+1, RoundHalfUp); err == nil {
			t.Errorf("%q.Round(%v, half-up) did not fail", n, MaxUnitScale+1)
		}
		if _, err := n.Round(2, RoundingMode(9)); !errors.Is(err, errInvalidRounding) {
			t.Errorf("%q.Round(2, 9) error = %v, want %v", n, err, errInvalidRounding)
		}
	})
}
