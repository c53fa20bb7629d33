package numgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Numeral(t *testing.T) {
	g := New(42)
	for _, intLen := range DriverLengths() {
		for range 50 {
			got, err := g.Numeral(intLen, DefaultMaxFrac)
			require.NoError(t, err)

			intg, frac, found := strings.Cut(got, ".")
			assert.Len(t, intg, intLen, "numeral %q", got)
			assert.NotEqual(t, byte('0'), intg[0], "numeral %q", got)
			if found {
				assert.NotEmpty(t, frac, "numeral %q", got)
				assert.Less(t, len(frac), DefaultMaxFrac, "numeral %q", got)
			}
			assert.Equal(t, -1, strings.IndexFunc(intg+frac, func(r rune) bool {
				return r < '0' || r > '9'
			}), "numeral %q", got)
		}
	}
}

func TestGenerator_Numeral_noFraction(t *testing.T) {
	g := New(7)
	for _, maxFrac := range []int{0, 1} {
		for range 20 {
			got, err := g.Numeral(5, maxFrac)
			require.NoError(t, err)
			assert.NotContains(t, got, ".")
			assert.Len(t, got, 5)
		}
	}
}

func TestGenerator_Numeral_seed(t *testing.T) {
	a, b := New(1), New(1)
	for range 10 {
		x, err := a.Numeral(10, 10)
		require.NoError(t, err)
		y, err := b.Numeral(10, 10)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestGenerator_Numeral_errors(t *testing.T) {
	g := New(0)
	tests := []struct {
		name            string
		intLen, maxFrac int
	}{
		{"zero length", 0, 5},
		{"negative length", -1, 5},
		{"negative fraction", 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Numeral(tt.intLen, tt.maxFrac)
			require.ErrorIs(t, err, errInvalidLength)
		})
	}
}

func TestDriverLengths(t *testing.T) {
	got := DriverLengths()
	want := []int{1, 2, 3, 4, 5, 6}
	for n := 7; n <= 64; n += 3 {
		want = append(want, n)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 64, got[len(got)-1])
}
