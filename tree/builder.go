// Package tree assembles a token.Tokenizer's flat token stream into a
// caller-defined tree, per spec section 4.3. It knows nothing about the
// shape of the tree it builds; callers supply a Sink that manufactures and
// mutates whatever container type they want (concretely, jsonh.Value),
// which keeps this package free of an import cycle back to jsonh.
package tree

import (
	"fmt"

	"github.com/mcvoid/jsonh/token"
)

// Sink receives construction events from Build and manufactures a tree of
// the caller's own container type. Every method is expected to succeed;
// Sink implementations hold no error state of their own because every
// value Build feeds them has already passed lexical and structural
// validation in the tokenizer.
type Sink interface {
	// NewObject returns a fresh, empty object container.
	NewObject() any
	// NewArray returns a fresh, empty array container.
	NewArray() any
	// SetProperty stores value under name in an object container
	// previously returned by NewObject.
	SetProperty(object any, name string, value any)
	// AppendItem appends value to an array container previously returned
	// by NewArray.
	AppendItem(array any, value any)
	// NewString, NewNumber, NewBool, and NewNull wrap primitive token
	// values into the sink's tree representation.
	NewString(s string) any
	NewNumber(f float64) any
	NewBool(b bool) any
	NewNull() any
}

// frame is one entry of the builder's container stack: the container
// itself, whether it is an object or an array, and (for objects) the
// pending property name set by the most recent PropertyName token.
type frame struct {
	container   any
	isObject    bool
	pendingName string
	hasPending  bool
}

// Build consumes toks and returns the single root value they describe.
// Comment tokens are ignored. If opts.ParseSingleElement is set, any
// comment/whitespace-only tail is fine but any further content is an
// error (this mirrors the tokenizer's own check, and is redundant with it
// for Tokens produced by token.Tokenizer; it matters for callers that
// assemble a token stream some other way).
func Build(toks []token.Token, sink Sink, opts token.Options) (any, error) {
	b := &builder{sink: sink, maxDepth: opts.MaxDepth, singleElement: opts.ParseSingleElement}
	if b.maxDepth <= 0 {
		b.maxDepth = token.DefaultMaxDepth
	}
	for _, tok := range toks {
		if err := b.feed(tok); err != nil {
			return nil, err
		}
	}
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("%w: unterminated container at end of token stream", token.ErrStructural)
	}
	if !b.haveRoot {
		return nil, fmt.Errorf("%w: empty token stream", token.ErrStructural)
	}
	return b.root, nil
}

type builder struct {
	sink     Sink
	stack    []frame
	root     any
	haveRoot bool
	maxDepth int
	// singleElement rejects any value after the root; otherwise later
	// root-level values are ignored.
	singleElement bool
}

func (b *builder) feed(tok token.Token) error {
	switch tok.Kind {
	case token.Comment:
		return nil
	case token.StartObject:
		return b.push(b.sink.NewObject(), true)
	case token.StartArray:
		return b.push(b.sink.NewArray(), false)
	case token.EndObject, token.EndArray:
		return b.pop()
	case token.PropertyName:
		return b.setPendingName(tok.Value)
	case token.String:
		return b.submit(b.sink.NewString(tok.Value))
	case token.Number:
		f, err := token.ParseNumber(tok.Value)
		if err != nil {
			return err
		}
		return b.submit(b.sink.NewNumber(f))
	case token.TrueBool:
		return b.submit(b.sink.NewBool(true))
	case token.FalseBool:
		return b.submit(b.sink.NewBool(false))
	case token.Null:
		return b.submit(b.sink.NewNull())
	default:
		return fmt.Errorf("%w: unexpected token kind %v", token.ErrStructural, tok.Kind)
	}
}

func (b *builder) push(container any, isObject bool) error {
	if len(b.stack)+1 > b.maxDepth {
		return fmt.Errorf("%w: exceeded max depth", token.ErrSemantic)
	}
	b.stack = append(b.stack, frame{container: container, isObject: isObject})
	return nil
}

func (b *builder) pop() error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: unmatched close token", token.ErrStructural)
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.submit(top.container)
}

func (b *builder) setPendingName(name string) error {
	if len(b.stack) == 0 || !b.stack[len(b.stack)-1].isObject {
		return fmt.Errorf("%w: property name outside an object", token.ErrStructural)
	}
	top := &b.stack[len(b.stack)-1]
	top.pendingName = name
	top.hasPending = true
	return nil
}

// submit delivers a fully-built value (primitive or popped container) to
// its destination: the enclosing object's pending property, the enclosing
// array, or the tree's root if the stack is empty.
func (b *builder) submit(value any) error {
	if len(b.stack) == 0 {
		if b.haveRoot {
			if !b.singleElement {
				return nil
			}
			return fmt.Errorf("%w: expected end of elements", token.ErrConfig)
		}
		b.root = value
		b.haveRoot = true
		return nil
	}
	top := &b.stack[len(b.stack)-1]
	if top.isObject {
		if !top.hasPending {
			return fmt.Errorf("%w: object value without a preceding property name", token.ErrStructural)
		}
		b.sink.SetProperty(top.container, top.pendingName, value)
		top.hasPending = false
		return nil
	}
	b.sink.AppendItem(top.container, value)
	return nil
}
