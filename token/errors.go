package token

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per spec error-taxonomy bucket, so callers can
// errors.Is against a category instead of matching message strings.
var (
	// ErrLexical covers malformed literal text: empty quoteless strings,
	// empty numbers, bad separator placement, wrong hex-digit counts,
	// unterminated strings/comments, stray characters after '/'.
	ErrLexical = errors.New("jsonh: lexical error")
	// ErrStructural covers grammar violations above the literal level:
	// missing ':', missing '}'/']', braceless objects in illegal
	// positions.
	ErrStructural = errors.New("jsonh: structural error")
	// ErrSemantic covers values whose lexical form is fine but whose
	// meaning is not: invalid surrogate code points, digits outside the
	// declared base, exceeded max depth.
	ErrSemantic = errors.New("jsonh: semantic error")
	// ErrConfig covers violations of a caller-supplied option:
	// parse-single-element trailing data, a verbatim prefix with no
	// following string.
	ErrConfig = errors.New("jsonh: configuration error")
)

// SyntaxError reports a tokenizer or tree-builder failure together with
// the byte offset (into the original input) at which it was detected.
type SyntaxError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newError(offset int, class error, format string, args ...any) *SyntaxError {
	msg := class.Error() + ": " + fmt.Sprintf(format, args...)
	return &SyntaxError{Offset: offset, Msg: msg, Err: class}
}
