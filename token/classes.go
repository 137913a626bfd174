package token

// isReservedV1 reports whether r is a reserved rune under the v1 grammar:
// backslash, comma, colon, brackets, braces, slash, hash, and both quotes.
func isReservedV1(r rune) bool {
	switch r {
	case '\\', ',', ':', '[', ']', '{', '}', '/', '#', '"', '\'':
		return true
	}
	return false
}

// isReserved reports whether r is reserved under opts' grammar version. v2
// additionally reserves '@' for verbatim strings.
func isReserved(r rune, opts Options) bool {
	if isReservedV1(r) {
		return true
	}
	return opts.SupportsVersion(V2) && r == '@'
}

// Newline runes recognised by the grammar, by code point: LF (0x0A), CR
// (0x0D), LINE SEPARATOR (0x2028), PARAGRAPH SEPARATOR (0x2029).
const (
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

// isNewline reports whether r is one of the four newline runes the
// tokenizer treats specially.
func isNewline(r rune) bool {
	switch r {
	case '\n', '\r', lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// whitespaceCodePoints are the Unicode space separators named in the
// grammar, beyond the ASCII whitespace handled separately in isWhitespace:
// NEL (0x85), NBSP (0xA0), OGHAM SPACE MARK (0x1680), the EN QUAD..HAIR
// SPACE run (0x2000-0x200A), LINE/PARAGRAPH SEPARATOR (0x2028/0x2029),
// NARROW NBSP (0x202F), MEDIUM MATHEMATICAL SPACE (0x205F), IDEOGRAPHIC
// SPACE (0x3000). Listed by code point rather than literal glyph so the
// set is unambiguous in source.
var whitespaceCodePoints = []rune{
	0x85, 0xA0, 0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x2028, 0x2029, 0x202F, 0x205F, 0x3000,
}

var whitespaceRunes = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(whitespaceCodePoints))
	for _, r := range whitespaceCodePoints {
		m[r] = struct{}{}
	}
	return m
}()

// isWhitespace reports whether r is in the whitespace set the tokenizer
// skips between tokens.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	_, ok := whitespaceRunes[r]
	return ok
}

// isQuote reports whether r opens a single/double/multi-quoted string.
func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
