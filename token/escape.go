package token

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mcvoid/jsonh/internal/runeio"
)

// isHighSurrogate and isLowSurrogate classify UTF-16 surrogate halves,
// which only arise from \u/\x/\U escapes (an unpaired surrogate is not a
// valid standalone UTF-8 rune, but can appear as an intermediate rune
// value before pairing).
func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// readHexDigits reads exactly n hex digits from r and returns their value.
// It fails with a lexical error if fewer than n valid hex digits follow.
func readHexDigits(r *runeio.Reader, n int) (rune, error) {
	var v rune
	for i := 0; i < n; i++ {
		ru, ok := r.Read()
		if !ok || !isHexDigit(ru) {
			return 0, fmt.Errorf("%w: expected %d hex digits", ErrLexical, n)
		}
		v = v*16 + rune(hexValue(ru))
	}
	return v, nil
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}

// tryLowSurrogateEscape opportunistically reads a trailing \u/\x/\U escape
// that encodes a low surrogate, to pair with a high surrogate already
// read. It rewinds the reader and returns ok=false if no such escape is
// present, leaving the unconsumed bytes for the next read to re-scan.
func tryLowSurrogateEscape(r *runeio.Reader) (rune, bool) {
	pos := r.Position()
	if !r.ReadOne('\\') {
		return 0, false
	}
	kind, ok := r.Read()
	if !ok {
		r.Seek(pos, io.SeekStart)
		return 0, false
	}
	var low rune
	var err error
	switch kind {
	case 'u':
		low, err = readHexDigits(r, 4)
	case 'x':
		low, err = readHexDigits(r, 2)
	case 'U':
		low, err = readHexDigits(r, 8)
	default:
		r.Seek(pos, io.SeekStart)
		return 0, false
	}
	if err != nil || !isLowSurrogate(low) {
		r.Seek(pos, io.SeekStart)
		return 0, false
	}
	return low, true
}

// combineSurrogates folds a high/low surrogate pair into a supplementary
// plane code point.
func combineSurrogates(high, low rune) rune {
	return 0x10000 + (high-0xD800)*0x400 + (low - 0xDC00)
}

// readEscape decodes the character(s) following a backslash that has
// already been consumed, per spec section 4.2.3, and appends the decoded
// text to buf.
func readEscape(r *runeio.Reader, buf *[]rune) error {
	ru, ok := r.Read()
	if !ok {
		return fmt.Errorf("%w: unexpected end of input after '\\'", ErrLexical)
	}
	switch ru {
	case '\\':
		*buf = append(*buf, '\\')
	case 'b':
		*buf = append(*buf, '\b')
	case 'f':
		*buf = append(*buf, '\f')
	case 'n':
		*buf = append(*buf, '\n')
	case 'r':
		*buf = append(*buf, '\r')
	case 't':
		*buf = append(*buf, '\t')
	case 'v':
		*buf = append(*buf, '\v')
	case '0':
		*buf = append(*buf, 0)
	case 'a':
		*buf = append(*buf, '\a')
	case 'e':
		*buf = append(*buf, '\x1b')
	case 'u':
		return readCodePointEscape(r, buf, 4)
	case 'x':
		return readCodePointEscape(r, buf, 2)
	case 'U':
		return readCodePointEscape(r, buf, 8)
	case '\r':
		// line continuation; also consume a following \n.
		r.ReadOne('\n')
	case '\n', lineSeparator, paragraphSeparator:
		// line continuation.
	default:
		*buf = append(*buf, ru)
	}
	return nil
}

// readCodePointEscape decodes a fixed-width hex code point escape and
// opportunistically pairs an unpaired high surrogate with an immediately
// following \u/\x/\U low-surrogate escape.
func readCodePointEscape(r *runeio.Reader, buf *[]rune, width int) error {
	cp, err := readHexDigits(r, width)
	if err != nil {
		return err
	}
	if isHighSurrogate(cp) {
		if low, ok := tryLowSurrogateEscape(r); ok {
			*buf = append(*buf, combineSurrogates(cp, low))
			return nil
		}
	}
	if !utf8.ValidRune(cp) {
		return fmt.Errorf("%w: invalid code point U+%04X (surrogate half)", ErrSemantic, cp)
	}
	*buf = append(*buf, cp)
	return nil
}
