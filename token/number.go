package token

import (
	"fmt"
	"math"
	"strings"
)

// ParseNumber converts the lexical text of a Number token (as produced by
// the tokenizer, including its base prefix, underscore separators, and
// optional fractional exponent) into a 64-bit real, per spec section 4.4.
//
// Algorithm:
//  1. Strip underscores.
//  2. Strip a single leading sign.
//  3. Detect a 0x/0X, 0b/0B, 0o/0O base prefix; default to decimal.
//  4. Split on an exponent marker (hex mode requires e/E immediately
//     followed by a sign, since e is itself a valid hex digit).
//  5. Parse mantissa and exponent as fractional numbers in the chosen
//     base.
//  6. Combine: result = mantissa * 10^exponent, sign-adjusted.
func ParseNumber(text string) (float64, error) {
	s := strings.ReplaceAll(text, "_", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrLexical)
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrLexical)
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		}
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrLexical)
	}

	mantissaText, exponentText, hasExponent := splitExponent(s, base)

	mantissa, err := parseFractional(mantissaText, base)
	if err != nil {
		return 0, err
	}

	exponent := 0.0
	if hasExponent {
		exponent, err = parseFractional(exponentText, base)
		if err != nil {
			return 0, err
		}
	}

	result := mantissa * math.Pow(10, exponent)
	if neg {
		result = -result
	}
	return result, nil
}

// splitExponent finds the exponent marker and splits the text around it.
// In hex mode the marker is 'e'/'E' only when immediately followed by a
// sign, since e/E are themselves valid hex digits; in every other base
// any 'e'/'E' is the marker.
func splitExponent(s string, base int) (mantissa, exponent string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != 'e' && c != 'E' {
			continue
		}
		if base == 16 {
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				return s[:i], s[i+1:], true
			}
			continue
		}
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// parseFractional parses s (possibly containing a single '.' and an
// optional leading sign) as a fractional number in the given base: whole + fraction /
// base^len(fraction digits). Leading zeros in the fractional part are
// significant, since they shift the value.
func parseFractional(s string, base int) (float64, error) {
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
		if strings.IndexByte(frac, '.') != -1 {
			return 0, fmt.Errorf("%w: duplicate '.' in number", ErrLexical)
		}
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: empty number", ErrLexical)
	}

	var value float64
	if whole != "" {
		wv, err := parseUnsignedInBase(whole, base)
		if err != nil {
			return 0, err
		}
		value = wv
	}
	if frac != "" {
		fv, err := parseUnsignedInBase(frac, base)
		if err != nil {
			return 0, err
		}
		value += fv / math.Pow(float64(base), float64(len(frac)))
	}
	if neg {
		value = -value
	}
	return value, nil
}

// parseUnsignedInBase parses digits as an unsigned integer in base,
// returned as a float64 to accommodate magnitudes beyond int64 (with the
// precision loss the spec accepts for very large literals).
func parseUnsignedInBase(digits string, base int) (float64, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: empty digit run", ErrLexical)
	}
	var v float64
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i])
		if !ok || d >= base {
			return 0, fmt.Errorf("%w: invalid digit %q for base %d", ErrSemantic, digits[i], base)
		}
		v = v*float64(base) + float64(d)
	}
	return v, nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}
