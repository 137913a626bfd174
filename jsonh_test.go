package jsonh_test

import (
	"testing"

	"github.com/mcvoid/jsonh"
)

func TestUsage(t *testing.T) {
	// ParseString (and Parse, ParseBytes, Read) take JSONH text, a superset
	// of JSON: quoteless strings, comments, and a braceless top level are
	// all valid.
	val, err := jsonh.ParseString(`
		# a top-level object doesn't need braces
		name: The Beatles
		type: band
		members: [
			{name: John, role: guitar}
			{name: Paul, role: bass}
			{name: George, role: guitar}
			{name: Ringo, role: drums}
		]
	`, jsonh.DefaultReaderOptions())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if val.Kind() != jsonh.KindObject {
		t.Fatal("expected top-level object")
	}

	// Key and Index give a fluent interface for drilling down; missing
	// keys or out-of-range indices just propagate a null Value instead of
	// an error.
	name, _ := val.Key("members").Index(2).Key("name").AsString()
	if name != "George" {
		t.Errorf("expected George got %v", name)
	}

	if null := val.Key("something").Index(-1).Key(""); null.Kind() != jsonh.KindNull {
		t.Errorf("expected null, got %v", null.Kind())
	}

	// Trailing commas are accepted, same as omitted commas between
	// newline-separated elements.
	list, err := jsonh.ParseString(`[
		1,
		2,
		3,
	]`, jsonh.DefaultReaderOptions())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	items, _ := list.AsArray()
	if len(items) != 3 {
		t.Errorf("expected 3 items got %v", len(items))
	}
}
