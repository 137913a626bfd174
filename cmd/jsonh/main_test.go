package main

import (
	"testing"

	"github.com/mcvoid/jsonh"
)

func TestParseVersion(t *testing.T) {
	for _, test := range []struct {
		input   string
		want    jsonh.Version
		wantErr bool
	}{
		{"v1", jsonh.V1, false},
		{"v2", jsonh.V2, false},
		{"latest", jsonh.Latest, false},
		{"", jsonh.Latest, false},
		{"v3", 0, true},
	} {
		got, err := parseVersion(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got none", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("%q: expected %v got %v", test.input, test.want, got)
		}
	}
}

func TestJSONOf(t *testing.T) {
	val, err := jsonh.ParseString(`{a: 1, b: [true, null, "x"]}`, jsonh.DefaultReaderOptions())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	out, ok := jsonOf(val).(map[string]any)
	if !ok {
		t.Fatalf("expected a map, got %T", jsonOf(val))
	}
	if out["a"] != 1.0 {
		t.Errorf("expected a=1 got %v", out["a"])
	}
	arr, ok := out["b"].([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected a 3-element array, got %v", out["b"])
	}
	if arr[0] != true || arr[1] != nil || arr[2] != "x" {
		t.Errorf("unexpected array contents: %v", arr)
	}
}
