package jsonh

import "github.com/mcvoid/jsonh/token"

// Version selects which JSONH grammar extensions a parse accepts. It is a
// type alias for token.Version so callers never need to import the token
// package just to set an option.
type Version = token.Version

const (
	V1     = token.V1
	V2     = token.V2
	Latest = token.Latest
)

// ReaderOptions governs parsing behavior; see spec section 3 "Reader
// options". It is a type alias for token.Options, which both the
// tokenizer and tree builder consume directly.
type ReaderOptions = token.Options

// DefaultMaxDepth is the recommended container-nesting limit when
// ReaderOptions.MaxDepth is left at zero.
const DefaultMaxDepth = token.DefaultMaxDepth

// DefaultReaderOptions returns latest-grammar options with no special
// handling of incomplete or multi-element input.
func DefaultReaderOptions() ReaderOptions {
	return token.DefaultOptions()
}

// Option mutates a ReaderOptions in place, for building one up via
// WithVersion/WithIncompleteInputs/WithParseSingleElement/WithMaxDepth.
type Option func(*ReaderOptions)

// NewReaderOptions builds a ReaderOptions starting from DefaultReaderOptions
// and applying opts in order.
func NewReaderOptions(opts ...Option) ReaderOptions {
	o := DefaultReaderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithVersion sets the grammar version.
func WithVersion(v Version) Option {
	return func(o *ReaderOptions) { o.Version = v }
}

// WithIncompleteInputs toggles synthesising a missing closing '}'/']' at
// end of input instead of failing.
func WithIncompleteInputs(b bool) Option {
	return func(o *ReaderOptions) { o.IncompleteInputs = b }
}

// WithParseSingleElement toggles requiring exactly one top-level element.
func WithParseSingleElement(b bool) Option {
	return func(o *ReaderOptions) { o.ParseSingleElement = b }
}

// WithMaxDepth sets the container-nesting limit; zero restores the default.
func WithMaxDepth(n int) Option {
	return func(o *ReaderOptions) { o.MaxDepth = n }
}
