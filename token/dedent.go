package token

import (
	"io"

	"github.com/mcvoid/jsonh/internal/runeio"
)

// dedent applies the multi-quoted string whitespace-stripping algorithm of
// spec section 4.2.1 to the already-unescaped body text collected between
// a multi-quoted string's opening and closing quote runs:
//
//  1. If the body starts with optional non-newline whitespace followed by a
//     newline, drop everything up to and including that newline.
//  2. If the body ends with a newline followed by optional non-newline
//     whitespace, drop everything from that newline to the end, and
//     remember the whitespace run's length T.
//  3. If step 2 matched and T > 0, strip up to T leading non-newline
//     whitespace runes from the start of every remaining line.
func dedent(body string) string {
	data := []byte(body)

	start, hasLeading := leadingBlankLine(data)
	end, indent, hasTrailing := trailingBlankLine(data)
	if !hasTrailing {
		end = len(data)
	}
	if !hasLeading {
		start = 0
	}
	if start > end {
		return ""
	}

	trimmed := data[start:end]
	if hasTrailing && indent > 0 {
		trimmed = stripCommonIndent(trimmed, indent)
	}
	return string(trimmed)
}

// leadingBlankLine reports the byte offset just past a leading newline, if
// the body begins with (optional non-newline whitespace) + newline.
func leadingBlankLine(data []byte) (offset int, ok bool) {
	r := runeio.New(data)
	for {
		c, found := r.Peek()
		if !found {
			return 0, false
		}
		if isNewline(c) {
			r.Read()
			consumeCRLF(r, c)
			return r.Position(), true
		}
		if isWhitespace(c) {
			r.Read()
			continue
		}
		return 0, false
	}
}

// trailingBlankLine reports the byte offset of a trailing newline and the
// count of non-newline whitespace runes following it, if the body ends
// with newline + (optional non-newline whitespace).
func trailingBlankLine(data []byte) (offset int, whitespaceCount int, ok bool) {
	r := runeio.New(data)
	r.Seek(0, io.SeekEnd)
	count := 0
	for {
		c, found := r.PeekReverse()
		if !found {
			return 0, 0, false
		}
		if isNewline(c) {
			r.ReadReverse()
			consumeCRLFReverse(r, c)
			return r.Position(), count, true
		}
		if isWhitespace(c) {
			r.ReadReverse()
			count++
			continue
		}
		return 0, 0, false
	}
}

// consumeCRLF folds a \r\n pair into a single newline when reading forward.
func consumeCRLF(r *runeio.Reader, first rune) {
	if first == '\r' {
		r.ReadOne('\n')
	}
}

// consumeCRLFReverse folds a \r\n pair into a single newline when reading
// backward: having just consumed the '\n', also consume a preceding '\r'.
func consumeCRLFReverse(r *runeio.Reader, last rune) {
	if last == '\n' {
		r.ReadOneReverse('\r')
	}
}

// stripCommonIndent removes up to n leading non-newline whitespace runes
// from the start of every line in data, stopping short for lines with
// fewer than n whitespace runes before their first non-whitespace rune.
func stripCommonIndent(data []byte, n int) []byte {
	var out []byte
	i := 0
	for i < len(data) {
		lineEnd := nextLineBoundary(data, i)
		out = append(out, stripLeadingWhitespace(data[i:lineEnd], n)...)
		i = lineEnd
	}
	return out
}

// nextLineBoundary returns the offset just past the next newline at or
// after start, or len(data) if none remains.
func nextLineBoundary(data []byte, start int) int {
	r := runeio.New(data)
	r.Seek(start, io.SeekStart)
	for {
		c, ok := r.Read()
		if !ok {
			return len(data)
		}
		if isNewline(c) {
			consumeCRLF(r, c)
			return r.Position()
		}
	}
}

// stripLeadingWhitespace removes up to n leading non-newline whitespace
// runes from line.
func stripLeadingWhitespace(line []byte, n int) []byte {
	r := runeio.New(line)
	removed := 0
	for removed < n {
		c, ok := r.Peek()
		if !ok || isNewline(c) || !isWhitespace(c) {
			break
		}
		r.Read()
		removed++
	}
	return line[r.Position():]
}
