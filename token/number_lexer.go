package token

import (
	"io"

	"github.com/mcvoid/jsonh/internal/runeio"
)

// digitPredicate returns a predicate recognising valid digits for base (2,
// 8, 10, or 16).
func digitPredicate(base int) func(rune) bool {
	switch base {
	case 2:
		return func(r rune) bool { return r == '0' || r == '1' }
	case 8:
		return func(r rune) bool { return r >= '0' && r <= '7' }
	case 16:
		return isHexDigit
	default:
		return isDigit
	}
}

// lexNumber scans the numeric grammar of spec section 4.2.4 starting at
// the reader's current position: an optional sign, an optional base
// prefix, a mantissa with underscore separators, and an optional
// (possibly fractional) exponent.
//
// It returns the consumed text and ok=true when at least one mantissa
// digit was found and the literal does not end on a dangling underscore;
// otherwise it returns ok=false with whatever was consumed, so the caller
// can reinterpret that text as the seed of a quoteless string.
func lexNumber(r *runeio.Reader) (string, bool) {
	var buf []rune

	if sign, ok := r.ReadAny(func(c rune) bool { return c == '+' || c == '-' }); ok {
		buf = append(buf, sign)
	}

	base := 10
	if c, ok := r.Peek(); ok && c == '0' {
		pos := r.Position()
		r.Read()
		lookahead, ok2 := r.Peek()
		switch {
		case ok2 && (lookahead == 'x' || lookahead == 'X'):
			r.Read()
			base = 16
			buf = append(buf, '0', lookahead)
		case ok2 && (lookahead == 'b' || lookahead == 'B'):
			r.Read()
			base = 2
			buf = append(buf, '0', lookahead)
		case ok2 && (lookahead == 'o' || lookahead == 'O'):
			r.Read()
			base = 8
			buf = append(buf, '0', lookahead)
		default:
			// No base prefix; rewind so the '0' is lexed as a mantissa
			// digit by the loop below.
			r.Seek(pos, io.SeekStart)
		}
	}

	digit := digitPredicate(base)
	mantissa, sawDigit, lastUnderscore := lexDigitRun(r, digit, base)
	buf = append(buf, mantissa...)
	if !sawDigit || lastUnderscore {
		return string(buf), false
	}

	if exp, ok := tryLexExponent(r, base, digit); ok {
		buf = append(buf, exp...)
	}

	return string(buf), true
}

// lexDigitRun consumes a mantissa-shaped run: digits in the given base,
// '_' separators between digits, and a single '.' for a fractional part.
// It reports whether at least one digit was seen and whether the run ends
// on an underscore (both error conditions the caller must check).
//
// In base 16, 'e'/'E' is itself a valid hex digit but also doubles as the
// exponent marker when immediately followed by a sign (e.g. the "e+" in
// 0x5e+3): such a rune is left unconsumed so the caller's exponent scan
// can claim it instead.
func lexDigitRun(r *runeio.Reader, digit func(rune) bool, base int) (text []rune, sawDigit, lastUnderscore bool) {
	sawDot := false
	for {
		c, ok := r.Peek()
		if !ok {
			break
		}
		switch {
		case base == 16 && (c == 'e' || c == 'E') && hexExponentFollows(r):
			return text, sawDigit, lastUnderscore
		case digit(c):
			r.Read()
			text = append(text, c)
			sawDigit = true
			lastUnderscore = false
		case c == '_':
			r.Read()
			text = append(text, c)
			lastUnderscore = true
		case c == '.' && !sawDot:
			r.Read()
			text = append(text, c)
			sawDot = true
			lastUnderscore = false
		default:
			return text, sawDigit, lastUnderscore
		}
	}
	return text, sawDigit, lastUnderscore
}

// hexExponentFollows reports whether the rune after the current position
// (which the caller has already peeked as 'e'/'E') is a sign, without
// consuming anything.
func hexExponentFollows(r *runeio.Reader) bool {
	pos := r.Position()
	r.Read()
	sign, ok := r.Peek()
	r.Seek(pos, io.SeekStart)
	return ok && (sign == '+' || sign == '-')
}

// tryLexExponent consumes an exponent marker (e/E) plus its sign and
// digit run, per the hex-mode-requires-sign rule. On failure it rewinds
// to before the marker and returns ok=false, leaving the reader
// positioned as if the exponent had never been attempted.
func tryLexExponent(r *runeio.Reader, base int, digit func(rune) bool) ([]rune, bool) {
	c, ok := r.Peek()
	if !ok || (c != 'e' && c != 'E') {
		return nil, false
	}
	pos := r.Position()
	r.Read()
	var buf []rune
	buf = append(buf, c)

	if base == 16 {
		sign, ok := r.ReadAny(func(c rune) bool { return c == '+' || c == '-' })
		if !ok {
			// 'e' is a valid hex digit; with no sign this isn't an
			// exponent marker at all (e.g. 0xe3 is a 3-digit hex number).
			r.Seek(pos, io.SeekStart)
			return nil, false
		}
		buf = append(buf, sign)
	} else if sign, ok := r.ReadAny(func(c rune) bool { return c == '+' || c == '-' }); ok {
		buf = append(buf, sign)
	}

	digits, sawDigit, lastUnderscore := lexDigitRun(r, digit, base)
	buf = append(buf, digits...)
	if !sawDigit || lastUnderscore {
		r.Seek(pos, io.SeekStart)
		return nil, false
	}
	return buf, true
}
