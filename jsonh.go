// Package jsonh implements JSONH ("JSON for Humans"), a JSON superset
// adding quoteless and multi-quoted strings, comments, flexible numeric
// literals, and braceless top-level objects. See spec section 1 for the
// full grammar this package implements.
package jsonh

import (
	"fmt"
	"io"

	"github.com/mcvoid/jsonh/token"
	"github.com/mcvoid/jsonh/tree"
)

// ErrParse wraps every error Parse/ParseString/ParseBytes/Read produce, so
// callers can errors.Is(err, ErrParse) without caring which of the
// tokenizer's or tree builder's finer-grained sentinels fired.
var ErrParse = fmt.Errorf("jsonh: parse error")

// Parse tokenizes and builds data under opts, returning the root Value.
func Parse(data []byte, opts ReaderOptions) (*Value, error) {
	toks, err := token.New(data, opts).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	v, err := tree.Build(toks, valueSink{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v.(*Value), nil
}

// ParseString is Parse over a string source.
func ParseString(s string, opts ReaderOptions) (*Value, error) {
	return Parse([]byte(s), opts)
}

// ParseBytes is Parse under DefaultReaderOptions.
func ParseBytes(data []byte) (*Value, error) {
	return Parse(data, DefaultReaderOptions())
}

// Read parses the entirety of r under opts.
func Read(r io.Reader, opts ReaderOptions) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Parse(data, opts)
}

// FindPropertyValue looks up name among v's top-level object members,
// reporting whether it was present. It is a free function (rather than
// only the Value.FindPropertyValue method) so callers can pass a possibly-
// nil Value returned from a failed parse without a nil check.
//
// This is a post-parse convenience over an already-built tree, not spec
// section 6's streaming lookup operation, which never materializes the
// whole document; for that, use token.Tokenizer's FindPropertyValue.
func FindPropertyValue(v *Value, name string) (*Value, bool) {
	if v == nil {
		return nil, false
	}
	return v.FindPropertyValue(name)
}
