package jsonh

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrType reports that a Value was asked for a Go type it doesn't hold.
var ErrType = errors.New("jsonh: type error")

// Kind is the type tag of a Value. Unlike the teacher's JSON package,
// JSONH's data model has no separate Integer kind: every number is a
// 64-bit float, per spec section 3.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindArray
	KindObject
	numKinds
)

var kindStrings = [numKinds]string{
	"<null>", "<number>", "<string>", "<boolean>", "<array>", "<object>",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Value is a generic JSON(H) value: the tree builder's output container
// and the unit every Parse* entry point returns.
type Value struct {
	kind    Kind
	number  float64
	str     string
	boolean bool
	array   []*Value
	object  []member
}

type member struct {
	name  string
	value *Value
}

// Kind reports v's type tag.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// AsNull reports whether v holds null. It returns ErrType otherwise.
func (v *Value) AsNull() error {
	if v.Kind() == KindNull {
		return nil
	}
	return fmt.Errorf("%w: value is not null (%v)", ErrType, v)
}

// AsNumber extracts v's float64 value. Returns ErrType if v is not a
// number.
func (v *Value) AsNumber() (float64, error) {
	if v.Kind() == KindNumber {
		return v.number, nil
	}
	return 0, fmt.Errorf("%w: value is not a number (%v)", ErrType, v)
}

// AsString extracts v's string value. Returns ErrType if v is not a
// string.
func (v *Value) AsString() (string, error) {
	if v.Kind() == KindString {
		return v.str, nil
	}
	return "", fmt.Errorf("%w: value is not a string (%v)", ErrType, v)
}

// AsBoolean extracts v's boolean value. Returns ErrType if v is not a
// boolean.
func (v *Value) AsBoolean() (bool, error) {
	if v.Kind() == KindBoolean {
		return v.boolean, nil
	}
	return false, fmt.Errorf("%w: value is not a boolean (%v)", ErrType, v)
}

// AsArray extracts v's element slice. Returns ErrType if v is not an
// array.
func (v *Value) AsArray() ([]*Value, error) {
	if v.Kind() == KindArray {
		return v.array, nil
	}
	return nil, fmt.Errorf("%w: value is not an array (%v)", ErrType, v)
}

// AsObject extracts v's members as a map, discarding duplicate-name
// ordering. Returns ErrType if v is not an object.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.Kind() != KindObject {
		return nil, fmt.Errorf("%w: value is not an object (%v)", ErrType, v)
	}
	m := make(map[string]*Value, len(v.object))
	for _, mem := range v.object {
		m[mem.name] = mem.value
	}
	return m, nil
}

// Index is a fluent array accessor: it returns a null Value, never an
// error, for an out-of-range index or a non-array receiver.
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.array) {
		return &Value{}
	}
	return v.array[i]
}

// Key is a fluent object accessor: it returns a null Value, never an
// error, for a missing key or a non-object receiver. When an object has
// duplicate property names (legal per spec section 3), Key returns the
// last one written, matching FindPropertyValue.
func (v *Value) Key(name string) *Value {
	if v.Kind() != KindObject {
		return &Value{}
	}
	for i := len(v.object) - 1; i >= 0; i-- {
		if v.object[i].name == name {
			return v.object[i].value
		}
	}
	return &Value{}
}

// FindPropertyValue looks up name in v's object members and reports
// whether it was present. Unlike Key, it distinguishes "missing" from "a
// property whose value is null." Like the package-level FindPropertyValue,
// this works over an already-built tree; it is not spec section 6's
// streaming lookup (see token.Tokenizer.FindPropertyValue for that).
func (v *Value) FindPropertyValue(name string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	for i := len(v.object) - 1; i >= 0; i-- {
		if v.object[i].name == name {
			return v.object[i].value, true
		}
	}
	return nil, false
}

// String renders v as JSON text. It is a debugging aid, not a codec: it
// is not guaranteed to round-trip through Parse and carries no
// quoteless/multi-quoted formatting choices from the source.
func (v *Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindNumber:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBoolean:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindArray:
		s := "["
		for i, item := range v.array {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case KindObject:
		s := "{"
		for i, mem := range v.object {
			if i > 0 {
				s += ", "
			}
			s += strconv.Quote(mem.name) + ": " + mem.value.String()
		}
		return s + "}"
	default:
		return "<unknown>"
	}
}
