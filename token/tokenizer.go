// Package token implements the JSONH tokenizer: it turns UTF-8 source text
// into a flat, left-to-right sequence of lexical Tokens, per spec section
// 4.2. It builds on the rune-accurate internal/runeio reader and does not
// itself assemble a tree; see package tree for that.
package token

import (
	"io"
	"strings"

	"github.com/mcvoid/jsonh/internal/runeio"
)

// Tokenizer scans JSONH source into a Token slice. A Tokenizer is
// single-use: construct one per input with New or NewString.
type Tokenizer struct {
	r     *runeio.Reader
	opts  Options
	depth int
}

// New constructs a Tokenizer over data using opts.
func New(data []byte, opts Options) *Tokenizer {
	return &Tokenizer{r: runeio.New(data), opts: opts}
}

// NewString constructs a Tokenizer over s using opts.
func NewString(s string, opts Options) *Tokenizer {
	return New([]byte(s), opts)
}

// Tokenize runs the tokenizer to completion. On success it returns every
// token produced. On failure it returns the tokens produced before the
// error, together with the error describing the terminal failure; the
// caller must treat the partial slice as not well-formed on its own.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var toks []Token
	if err := t.parseTopLevelElement(&toks); err != nil {
		return toks, err
	}
	if t.opts.ParseSingleElement {
		if err := t.skipCommentsAndWhitespace(&toks); err != nil {
			return toks, err
		}
		if _, ok := t.r.Peek(); ok {
			return toks, newError(t.r.Position(), ErrConfig, "trailing content after single element")
		}
	}
	return toks, nil
}

// FindPropertyValue implements spec section 6's streaming field lookup. It
// scans the object at the tokenizer's current position (braced or
// braceless) for a depth-1 property named name, discarding every other
// property's value by tokenizing and dropping it rather than retaining it.
// On a match it leaves the reader positioned immediately after the
// property's ':' and returns true; the caller can then resume with
// TokenizeElement to read just that value. It returns false, with a nil
// error, if the top level isn't an object, the object ends, or no property
// matches; it returns false with the tokenizer's own error if the scan
// itself fails partway through.
func (t *Tokenizer) FindPropertyValue(name string) (bool, error) {
	var discard []Token
	if err := t.skipCommentsAndWhitespace(&discard); err != nil {
		return false, err
	}
	r, ok := t.r.Peek()
	if !ok {
		return false, nil
	}

	if r == '{' {
		t.r.Read()
		if err := t.enter(); err != nil {
			return false, err
		}
		defer t.leave()
		return t.scanProperties(name, '}')
	}
	if r == '[' {
		// an array can never promote to an object.
		return false, nil
	}

	if err := t.enter(); err != nil {
		return false, err
	}
	defer t.leave()

	savePos := t.r.Position()
	prim, err := t.parsePrimitiveElement()
	if err != nil {
		return false, err
	}
	if prim.Kind != String {
		return false, nil
	}
	if err := t.skipCommentsAndWhitespace(&discard); err != nil {
		return false, err
	}
	if cr, ok := t.r.Peek(); !ok || cr != ':' {
		t.r.Seek(savePos, io.SeekStart)
		return false, nil
	}
	t.r.Read() // ':'
	if prim.Value == name {
		return true, nil
	}
	if err := t.skipValueAndSeparator(); err != nil {
		return false, err
	}
	return t.scanProperties(name, 0)
}

// scanProperties scans zero or more depth-1 properties for name, stopping
// at closer (a '}' for a braced object, or the zero rune for a braceless
// object running to end of input). For a braced object this handles every
// property; for a braceless one, FindPropertyValue has already consumed
// and rejected the first property itself (since deciding whether the top
// level is an object at all requires parsing that first property name).
func (t *Tokenizer) scanProperties(name string, closer rune) (bool, error) {
	var discard []Token
	for {
		if err := t.skipCommentsAndWhitespace(&discard); err != nil {
			return false, err
		}
		discard = discard[:0]
		r, ok := t.r.Peek()
		if !ok {
			if closer != 0 && !t.opts.IncompleteInputs {
				return false, newError(t.r.Position(), ErrStructural, "unexpected end of input, expected '%c'", closer)
			}
			return false, nil
		}
		if closer != 0 && r == closer {
			return false, nil
		}

		nameTok, err := t.parsePrimitiveElement()
		if err != nil {
			return false, err
		}
		if nameTok.Kind != String {
			return false, newError(t.r.Position(), ErrStructural, "expected a property name")
		}
		if err := t.skipCommentsAndWhitespace(&discard); err != nil {
			return false, err
		}
		if !t.r.ReadOne(':') {
			return false, newError(t.r.Position(), ErrStructural, "expected ':' after property name")
		}
		if nameTok.Value == name {
			return true, nil
		}
		if err := t.skipValueAndSeparator(); err != nil {
			return false, err
		}
	}
}

// skipValueAndSeparator discards one property value (tokenizing it into a
// throwaway slice, so nested containers are still consumed correctly) and
// the whitespace/comma that may follow it.
func (t *Tokenizer) skipValueAndSeparator() error {
	var discard []Token
	if err := t.skipCommentsAndWhitespace(&discard); err != nil {
		return err
	}
	discard = discard[:0]
	if err := t.parseElement(&discard); err != nil {
		return err
	}
	return t.afterPropertyValue(&discard)
}

// TokenizeElement parses a single element (object, array, or primitive)
// starting at the tokenizer's current position and returns its tokens. It
// is meant to be called after FindPropertyValue locates a property whose
// value the caller now wants to materialize.
func (t *Tokenizer) TokenizeElement() ([]Token, error) {
	var toks []Token
	if err := t.parseElement(&toks); err != nil {
		return toks, err
	}
	return toks, nil
}

func (t *Tokenizer) enter() error {
	t.depth++
	if t.depth > t.opts.maxDepth() {
		return newError(t.r.Position(), ErrSemantic, "max nesting depth exceeded")
	}
	return nil
}

func (t *Tokenizer) leave() {
	t.depth--
}

// parseTopLevelElement parses the single top-level production: an object,
// an array, a primitive, or (when the primitive is a string immediately
// followed by ':') a braceless object.
func (t *Tokenizer) parseTopLevelElement(toks *[]Token) error {
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	r, ok := t.r.Peek()
	if !ok {
		return newError(t.r.Position(), ErrLexical, "unexpected end of input")
	}
	switch r {
	case '{':
		return t.parseObject(toks)
	case '[':
		return t.parseArray(toks)
	default:
		return t.parsePrimitiveOrPromote(toks, true)
	}
}

// parseElement parses one value in a context where a braceless object may
// never be promoted: an array item or a property value.
func (t *Tokenizer) parseElement(toks *[]Token) error {
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	r, ok := t.r.Peek()
	if !ok {
		return newError(t.r.Position(), ErrLexical, "unexpected end of input")
	}
	switch r {
	case '{':
		return t.parseObject(toks)
	case '[':
		return t.parseArray(toks)
	default:
		return t.parsePrimitiveOrPromote(toks, false)
	}
}

// parsePrimitiveOrPromote parses one primitive element. If it is a string
// immediately followed (after whitespace/comments) by ':', and allowBraceless
// is set, the whole remainder of the input is parsed as a braceless object
// whose first property uses that string as its name. If allowBraceless is
// unset, the same shape is a structural error (a braceless object may not
// appear nested inside an array or a property value).
func (t *Tokenizer) parsePrimitiveOrPromote(toks *[]Token, allowBraceless bool) error {
	prim, err := t.parsePrimitiveElement()
	if err != nil {
		return err
	}
	if prim.Kind != String {
		*toks = append(*toks, prim)
		return nil
	}

	savePos := t.r.Position()
	var lookahead []Token
	if err := t.skipCommentsAndWhitespace(&lookahead); err != nil {
		return err
	}
	r, ok := t.r.Peek()
	if !ok || r != ':' {
		t.r.Seek(savePos, io.SeekStart)
		*toks = append(*toks, prim)
		return nil
	}
	if !allowBraceless {
		return newError(t.r.Position(), ErrStructural, "braceless object is not allowed here")
	}
	t.r.Read()
	*toks = append(*toks, lookahead...)
	return t.parseBracelessObject(toks, prim.Value)
}

// parseObject parses a brace-delimited object: '{' properties... '}'.
func (t *Tokenizer) parseObject(toks *[]Token) error {
	if err := t.enter(); err != nil {
		return err
	}
	defer t.leave()

	t.r.Read() // '{'
	*toks = append(*toks, Token{Kind: StartObject})
	if err := t.parsePropertiesUntil(toks, '}'); err != nil {
		return err
	}
	if !t.consumeClose('}') {
		return newError(t.r.Position(), ErrStructural, "expected '}'")
	}
	*toks = append(*toks, Token{Kind: EndObject})
	return nil
}

// parseBracelessObject continues a braceless object whose first property
// name (firstName) and separating ':' have already been consumed; it parses
// that property's value, then further properties until end of input.
func (t *Tokenizer) parseBracelessObject(toks *[]Token, firstName string) error {
	if err := t.enter(); err != nil {
		return err
	}
	defer t.leave()

	*toks = append(*toks, Token{Kind: StartObject}, Token{Kind: PropertyName, Value: firstName})
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	if err := t.parseElement(toks); err != nil {
		return err
	}
	if err := t.afterPropertyValue(toks); err != nil {
		return err
	}
	if err := t.parsePropertiesUntil(toks, 0); err != nil {
		return err
	}
	*toks = append(*toks, Token{Kind: EndObject})
	return nil
}

// parsePropertiesUntil parses zero or more properties, stopping when it
// sees closer (a '}' for a braced object) or, if closer is the zero rune,
// runs until end of input (a braceless object).
func (t *Tokenizer) parsePropertiesUntil(toks *[]Token, closer rune) error {
	for {
		if err := t.skipCommentsAndWhitespace(toks); err != nil {
			return err
		}
		r, ok := t.r.Peek()
		if !ok {
			if closer != 0 && !t.opts.IncompleteInputs {
				return newError(t.r.Position(), ErrStructural, "unexpected end of input, expected '%c'", closer)
			}
			return nil
		}
		if closer != 0 && r == closer {
			return nil
		}
		if err := t.parseProperty(toks); err != nil {
			return err
		}
		if err := t.afterPropertyValue(toks); err != nil {
			return err
		}
	}
}

// afterPropertyValue skips trailing whitespace/comments and an optional
// comma following a property's value or an array item.
func (t *Tokenizer) afterPropertyValue(toks *[]Token) error {
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	t.r.ReadOne(',')
	return nil
}

// parseProperty parses one "name: value" pair. The name is a quoted,
// quoteless, or verbatim string; quoteless names follow the same scanning
// rule as quoteless string elements, stopping at ':' (which is reserved).
func (t *Tokenizer) parseProperty(toks *[]Token) error {
	name, err := t.parsePrimitiveElement()
	if err != nil {
		return err
	}
	if name.Kind != String {
		return newError(t.r.Position(), ErrStructural, "expected a property name")
	}
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	if !t.r.ReadOne(':') {
		return newError(t.r.Position(), ErrStructural, "expected ':' after property name")
	}
	*toks = append(*toks, Token{Kind: PropertyName, Value: name.Value})
	if err := t.skipCommentsAndWhitespace(toks); err != nil {
		return err
	}
	return t.parseElement(toks)
}

// parseArray parses a bracket-delimited array: '[' elements... ']'.
func (t *Tokenizer) parseArray(toks *[]Token) error {
	if err := t.enter(); err != nil {
		return err
	}
	defer t.leave()

	t.r.Read() // '['
	*toks = append(*toks, Token{Kind: StartArray})
	for {
		if err := t.skipCommentsAndWhitespace(toks); err != nil {
			return err
		}
		r, ok := t.r.Peek()
		if !ok {
			if !t.opts.IncompleteInputs {
				return newError(t.r.Position(), ErrStructural, "unexpected end of input, expected ']'")
			}
			break
		}
		if r == ']' {
			break
		}
		if err := t.parseElement(toks); err != nil {
			return err
		}
		if err := t.afterPropertyValue(toks); err != nil {
			return err
		}
	}
	if !t.consumeClose(']') {
		return newError(t.r.Position(), ErrStructural, "expected ']'")
	}
	*toks = append(*toks, Token{Kind: EndArray})
	return nil
}

// consumeClose consumes the closer rune if present; under IncompleteInputs
// it also accepts end-of-input as an implicit closer.
func (t *Tokenizer) consumeClose(closer rune) bool {
	if t.r.ReadOne(closer) {
		return true
	}
	if t.opts.IncompleteInputs {
		if _, ok := t.r.Peek(); !ok {
			return true
		}
	}
	return false
}

// parsePrimitiveElement dispatches on the next rune to a number, a quoted
// or verbatim string, or a quoteless string (which may resolve to a named
// literal: null, true, false).
func (t *Tokenizer) parsePrimitiveElement() (Token, error) {
	r, ok := t.r.Peek()
	if !ok {
		return Token{}, newError(t.r.Position(), ErrLexical, "unexpected end of input")
	}
	switch {
	case r == '@' && t.opts.SupportsVersion(V2):
		t.r.Read()
		return t.parseVerbatim()
	case isQuote(r):
		return t.parseQuoted(false)
	case isDigit(r) || r == '-' || r == '+' || r == '.':
		return t.parseNumberOrQuoteless()
	default:
		return t.parseQuoteless("", false)
	}
}

// parseVerbatim handles the v2 '@' prefix: '@' must be immediately
// followed by a string, quoted or quoteless, with no escape processing.
func (t *Tokenizer) parseVerbatim() (Token, error) {
	r, ok := t.r.Peek()
	if !ok || isWhitespace(r) || r == '#' || r == '/' {
		return Token{}, newError(t.r.Position(), ErrConfig, "expected a string to immediately follow '@'")
	}
	if isQuote(r) {
		return t.parseQuoted(true)
	}
	return t.parseQuoteless("", true)
}

// parseQuoted handles '"'/'\'' strings: empty, single-line, and
// multi-quoted forms, selected by counting the run of identical opening
// quote runes.
func (t *Tokenizer) parseQuoted(verbatim bool) (Token, error) {
	q, _ := t.r.Read()
	n := 1
	for t.r.ReadOne(q) {
		n++
	}
	switch {
	case n == 2:
		return Token{Kind: String, Value: ""}, nil
	case n == 1:
		return t.readSingleLineString(q, verbatim)
	default:
		return t.readMultiQuotedString(q, n, verbatim)
	}
}

func (t *Tokenizer) readSingleLineString(q rune, verbatim bool) (Token, error) {
	var buf []rune
	for {
		r, ok := t.r.Read()
		if !ok {
			return Token{}, newError(t.r.Position(), ErrLexical, "unterminated string")
		}
		if r == q {
			return Token{Kind: String, Value: string(buf)}, nil
		}
		if r == '\\' && !verbatim {
			if err := readEscape(t.r, &buf); err != nil {
				return Token{}, err
			}
			continue
		}
		buf = append(buf, r)
	}
}

func (t *Tokenizer) readMultiQuotedString(q rune, n int, verbatim bool) (Token, error) {
	var buf []rune
	run := 0
	flush := func() {
		for i := 0; i < run; i++ {
			buf = append(buf, q)
		}
		run = 0
	}
	for {
		r, ok := t.r.Read()
		if !ok {
			return Token{}, newError(t.r.Position(), ErrLexical, "unterminated string")
		}
		if r == q {
			run++
			if run == n {
				return Token{Kind: String, Value: dedent(string(buf))}, nil
			}
			continue
		}
		flush()
		if r == '\\' && !verbatim {
			if err := readEscape(t.r, &buf); err != nil {
				return Token{}, err
			}
			continue
		}
		buf = append(buf, r)
	}
}

// parseNumberOrQuoteless lexes a numeric literal and then disambiguates it
// from a quoteless string per spec section 4.2.4: if, after any same-line
// whitespace, the following rune would continue a quoteless string (a
// backslash, or any non-reserved, non-newline rune), the whole thing is
// re-read as a quoteless string seeded with the numeric text.
func (t *Tokenizer) parseNumberOrQuoteless() (Token, error) {
	start := t.r.Position()
	text, ok := lexNumber(t.r)
	if !ok {
		t.r.Seek(start, io.SeekStart)
		return t.parseQuoteless("", false)
	}

	savePos := t.r.Position()
	var ws []rune
	for {
		r, ok := t.r.Peek()
		if !ok || isNewline(r) || !isWhitespace(r) {
			break
		}
		t.r.Read()
		ws = append(ws, r)
	}
	r, ok := t.r.Peek()
	continues := ok && !isNewline(r) && (r == '\\' || !isReserved(r, t.opts))
	if continues {
		return t.parseQuoteless(text+string(ws), false)
	}
	t.r.Seek(savePos, io.SeekStart)
	return Token{Kind: Number, Value: text}, nil
}

// parseQuoteless scans a quoteless string starting from seed (already
// lexed text, e.g. a reinterpreted number), reading until a reserved rune
// other than backslash, a newline, or end of input. Backslash escapes are
// processed unless verbatim is set, in which case backslashes are literal.
// The result is trimmed of leading/trailing whitespace; if that leaves
// nothing, an "empty quoteless string" error is returned. If the trimmed
// text is null/true/false and neither an escape nor verbatim was involved,
// a Null/TrueBool/FalseBool token is produced instead of a String.
func (t *Tokenizer) parseQuoteless(seed string, verbatim bool) (Token, error) {
	buf := []rune(seed)
	hadEscape := false
	for {
		r, ok := t.r.Peek()
		if !ok || isNewline(r) || (r != '\\' && isReserved(r, t.opts)) {
			break
		}
		t.r.Read()
		if r == '\\' && !verbatim {
			hadEscape = true
			if err := readEscape(t.r, &buf); err != nil {
				return Token{}, err
			}
			continue
		}
		buf = append(buf, r)
	}
	text := trimWhitespace(string(buf))
	if text == "" {
		return Token{}, newError(t.r.Position(), ErrLexical, "empty quoteless string")
	}
	if !hadEscape && !verbatim {
		switch text {
		case "null":
			return Token{Kind: Null, Value: text}, nil
		case "true":
			return Token{Kind: TrueBool, Value: text}, nil
		case "false":
			return Token{Kind: FalseBool, Value: text}, nil
		}
	}
	return Token{Kind: String, Value: text}, nil
}

// trimWhitespace trims leading and trailing runes matching isWhitespace,
// independent of unicode.IsSpace, so quoteless-string trimming stays
// exactly consistent with the tokenizer's own whitespace set.
func trimWhitespace(s string) string {
	return strings.TrimFunc(s, isWhitespace)
}

// skipCommentsAndWhitespace consumes runs of whitespace and hash/line/block/
// nestable-block comments, appending a Comment token for each comment
// encountered, until neither remains.
func (t *Tokenizer) skipCommentsAndWhitespace(toks *[]Token) error {
	for {
		for {
			r, ok := t.r.Peek()
			if !ok || !isWhitespace(r) {
				break
			}
			t.r.Read()
		}
		r, ok := t.r.Peek()
		if ok && r == '#' {
			t.r.Read()
			*toks = append(*toks, Token{Kind: Comment, Value: t.readLineComment()})
			continue
		}
		if !ok || r != '/' {
			return nil
		}
		matched, err := t.tryComment(toks)
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
	}
}

// tryComment attempts to parse a comment starting at the current '/'. It
// returns a lexical error if what follows '/' is none of '/', '*', or (v2)
// '='; for a (v2) '=' run that does not form a nestable-comment opener it
// returns matched=false, having consumed nothing.
func (t *Tokenizer) tryComment(toks *[]Token) (bool, error) {
	start := t.r.Position()
	t.r.Read() // '/'
	r, ok := t.r.Peek()
	switch {
	case ok && r == '/':
		t.r.Read()
		*toks = append(*toks, Token{Kind: Comment, Value: t.readLineComment()})
		return true, nil
	case ok && r == '*':
		t.r.Read()
		body, err := t.readBlockComment()
		if err != nil {
			return false, err
		}
		*toks = append(*toks, Token{Kind: Comment, Value: body})
		return true, nil
	case ok && r == '=' && t.opts.SupportsVersion(V2):
		body, matched, err := t.readNestableBlockComment()
		if err != nil {
			return false, err
		}
		if !matched {
			t.r.Seek(start, io.SeekStart)
			return false, nil
		}
		*toks = append(*toks, Token{Kind: Comment, Value: body})
		return true, nil
	default:
		return false, newError(t.r.Position(), ErrLexical, "unexpected character after '/'")
	}
}

func (t *Tokenizer) readLineComment() string {
	var buf []rune
	for {
		r, ok := t.r.Peek()
		if !ok || isNewline(r) {
			break
		}
		t.r.Read()
		buf = append(buf, r)
	}
	return string(buf)
}

func (t *Tokenizer) readBlockComment() (string, error) {
	var buf []rune
	for {
		r, ok := t.r.Read()
		if !ok {
			return "", newError(t.r.Position(), ErrLexical, "unterminated block comment")
		}
		if r == '*' && t.r.ReadOne('/') {
			return string(buf), nil
		}
		buf = append(buf, r)
	}
}

// readNestableBlockComment handles the v2 '/==* ... *==/' form, for any
// run of n>=1 '=' signs on the opener. The closer must carry the same
// count n; a run of '=' that doesn't resolve to a matching opener or
// closer is literal text. Matching openers of the same n nest.
func (t *Tokenizer) readNestableBlockComment() (string, bool, error) {
	n := 0
	for {
		r, ok := t.r.Peek()
		if ok && r == '=' {
			t.r.Read()
			n++
			continue
		}
		break
	}
	if n == 0 || !t.r.ReadOne('*') {
		return "", false, nil
	}

	var buf []rune
	nest := 1
	for {
		r, ok := t.r.Read()
		if !ok {
			return "", false, newError(t.r.Position(), ErrLexical, "unterminated block comment")
		}
		switch r {
		case '/':
			if text, matched := t.matchDelimiterRun(n, '*'); matched {
				nest++
				buf = append(buf, '/')
				buf = append(buf, text...)
				continue
			}
			buf = append(buf, r)
		case '*':
			if text, matched := t.matchDelimiterRun(n, '/'); matched {
				nest--
				if nest == 0 {
					return string(buf), true, nil
				}
				buf = append(buf, '*')
				buf = append(buf, text...)
				continue
			}
			buf = append(buf, r)
		default:
			buf = append(buf, r)
		}
	}
}

// matchDelimiterRun speculatively matches exactly n '=' signs followed by
// trailer (either '*' for an opener or '/' for a closer). On success it
// returns the consumed text (the '=' run plus trailer) and true. On
// failure it rewinds and returns false, so the caller treats the runes it
// peeked at as literal comment body text.
func (t *Tokenizer) matchDelimiterRun(n int, trailer rune) ([]rune, bool) {
	pos := t.r.Position()
	m := 0
	for {
		r, ok := t.r.Peek()
		if ok && r == '=' {
			t.r.Read()
			m++
			continue
		}
		break
	}
	if m == n && t.r.ReadOne(trailer) {
		buf := make([]rune, 0, m+1)
		for i := 0; i < m; i++ {
			buf = append(buf, '=')
		}
		buf = append(buf, trailer)
		return buf, true
	}
	t.r.Seek(pos, io.SeekStart)
	return nil, false
}
