package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"48", 48},
		{"3/4", 0.75},
		{"48 1/2", 48.5},
		{"48.5", 48.5},
		{"  1 1/4  ", 1.25},
		{".5", 0.5},
		{"7.", 7},
		{"0", 0},
		{"5/4", 1.25},
		{"12   3/8", 12.375},
		{"1\t1/16", 1.0625},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"1/0",
		"48 1/0",
		"-1",
		"+1",
		"-3/4",
		"1 -1/2",
		"1.5 1/2",
		"1 2 3/4",
		"1/2/3",
		"3/",
		"/4",
		"1 1",
		"inf",
		"NaN",
		"1e3",
		"1,5",
		"48 1/2\"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "1/2"},
		{1, "1"},
		{1.5, "1 1/2"},
		{0.25, "1/4"},
		{0.0625, "1/16"},
		{0.75, "3/4"},
		{1.25, "1 1/4"},
		{48.5, "48 1/2"},
		{96, "96"},
		{5.625, "5 5/8"},
		{0.01, "0"},
		{0.03125, "1/16"},
		{1.99, "2"},
		{-0.5, "-1/2"},
		{-2.25, "-2 1/4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for units := 0; units <= 16*240; units++ {
		x := float64(units) / Precision
		got, err := Parse(Format(x))
		require.NoError(t, err, "Format(%v) = %q", x, Format(x))
		assert.Equal(t, x, got)
	}
}

func TestFormatBeyondInt64(t *testing.T) {
	for _, x := range []float64{1e18, 1e20, 5.76460752303423488e17} {
		s := Format(x)
		assert.NotContains(t, s, "-", "Format(%v)", x)

		got, err := Parse(s)
		require.NoError(t, err, "Format(%v) = %q", x, s)
		assert.Equal(t, RoundToSixteenth(x), got)
	}
	assert.Equal(t, "-100000000000000000000", Format(-1e20))
}

func TestParseFormatRoundsToSixteenth(t *testing.T) {
	for _, x := range []float64{0.1, 0.33, 1.2345, 7.97, 23.51, 100.004} {
		got, err := Parse(Format(x))
		require.NoError(t, err)
		assert.Equal(t, RoundToSixteenth(x), got, "x=%v", x)
	}
}
