package token

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberWorkedExamples(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"hex", "0xDEADCAFE", 3735931646},
		{"binary with leading underscore", "0b_100", 4},
		{"decimal with double underscore", "100__000", 100000},
		{"hex without exponent", "0x5e3", 1507},
		{"hex exponent disambiguated from hex digit", "0x5e+3", 5000},
		{"fractional hex exponent", "0x5e+3.8", 5 * math.Pow(10, 3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberFractionalExponent(t *testing.T) {
	got, err := ParseNumber("1.2e3.4")
	require.NoError(t, err)
	want := 1.2 * math.Pow(10, 3.4)
	assert.InDelta(t, want, got, 1e-9)
}

func TestParseNumberBases(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"0b101", 5},
		{"0o17", 15},
		{"0x1F", 31},
		{"42", 42},
		{"-42", -42},
		{"+42", 42},
		{"3.14", 3.14},
		{"-3.14", -3.14},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseNumber(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberSignRoundTrip(t *testing.T) {
	// spec section 8: parse("-" + s) == -parse(s) for non-negative inputs.
	texts := []string{"42", "3.14", "0x5e3", "0b101", "100__000", "1.2e3"}
	for _, s := range texts {
		pos, err := ParseNumber(s)
		require.NoError(t, err)
		neg, err := ParseNumber("-" + s)
		require.NoError(t, err)
		assert.Equal(t, -pos, neg)
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []string{"", "+", "-", "0x", "abc"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseNumber(s)
			assert.Error(t, err)
		})
	}
}
