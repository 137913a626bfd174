package jsonh

import (
	"fmt"
	"testing"
)

func TestKindStrings(t *testing.T) {
	for _, test := range []struct {
		input    Kind
		expected string
	}{
		{KindNull, kindStrings[KindNull]},
		{KindArray, kindStrings[KindArray]},
		{KindObject, kindStrings[KindObject]},
		{KindBoolean, kindStrings[KindBoolean]},
		{KindNumber, kindStrings[KindNumber]},
		{KindString, kindStrings[KindString]},
		{numKinds, "<unknown>"},
		{1000, "<unknown>"},
		{-1, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestNilValueKind(t *testing.T) {
	var v *Value
	if v.Kind() != KindNull {
		t.Errorf("expected KindNull for nil Value, got %v", v.Kind())
	}
}

func TestAsNull(t *testing.T) {
	if err := (&Value{}).AsNull(); err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if err := (&Value{kind: KindBoolean, boolean: true}).AsNull(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsNumber(t *testing.T) {
	n, err := (&Value{kind: KindNumber, number: 5}).AsNumber()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 got %v", n)
	}
	if _, err := (&Value{kind: KindBoolean}).AsNumber(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsString(t *testing.T) {
	s, err := (&Value{kind: KindString, str: "5"}).AsString()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if s != "5" {
		t.Errorf("expected 5 got %v", s)
	}
	if _, err := (&Value{kind: KindBoolean}).AsString(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsBoolean(t *testing.T) {
	b, err := (&Value{kind: KindBoolean, boolean: true}).AsBoolean()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if !b {
		t.Errorf("expected true got %v", b)
	}
	if _, err := (&Value{}).AsBoolean(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsArray(t *testing.T) {
	v := &Value{kind: KindArray, array: []*Value{{}}}
	a, err := v.AsArray()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if a[0].Kind() != KindNull {
		t.Errorf("expected null element got %v", a[0])
	}
	if _, err := (&Value{}).AsArray(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsObject(t *testing.T) {
	v := &Value{kind: KindObject, object: []member{{"a", &Value{}}}}
	o, err := v.AsObject()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if o["a"].Kind() != KindNull {
		t.Errorf("expected null member got %v", o["a"])
	}
	if _, err := (&Value{}).AsObject(); err == nil {
		t.Error("expected error got none")
	}
}

func TestValueString(t *testing.T) {
	for _, test := range []struct {
		input    *Value
		expected string
	}{
		{&Value{}, "null"},
		{&Value{kind: KindNumber, number: -5}, "-5"},
		{&Value{kind: KindNumber, number: -5.12}, "-5.12"},
		{&Value{kind: KindString, str: "-5.12"}, `"-5.12"`},
		{&Value{kind: KindBoolean, boolean: true}, "true"},
		{&Value{kind: KindBoolean, boolean: false}, "false"},
		{&Value{kind: KindArray, array: []*Value{
			{},
			{kind: KindNumber, number: -5},
			{kind: KindBoolean, boolean: true},
		}}, `[null, -5, true]`},
		{&Value{kind: KindObject, object: []member{
			{"a", &Value{}},
			{"b", &Value{kind: KindNumber, number: -5}},
			{"c", &Value{kind: KindBoolean, boolean: true}},
		}}, `{"a": null, "b": -5, "c": true}`},
		{&Value{kind: numKinds}, "<unknown>"},
	} {
		t.Run(test.expected, func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	val, err := ParseString(`[[[true, false]]]`, DefaultReaderOptions())
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	for _, test := range []struct {
		actual   *Value
		expected Kind
	}{
		{val.Index(0).Index(0).Index(0), KindBoolean},
		{val.Index(0).Index(0).Index(1), KindBoolean},
		{val.Index(0).Index(0).Index(2), KindNull},
		{val.Index(0).Index(1).Index(2), KindNull},
		{val.Index(-1).Index(1).Index(2), KindNull},
	} {
		if test.actual.Kind() != test.expected {
			t.Errorf("expected kind %v got %v", test.expected, test.actual.Kind())
		}
	}
}

func TestKey(t *testing.T) {
	val, err := ParseString(`{a: {b: {c: true, d: false}}}`, DefaultReaderOptions())
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	for _, test := range []struct {
		actual   *Value
		expected Kind
	}{
		{val.Key("a").Key("b").Key("c"), KindBoolean},
		{val.Key("a").Key("b").Key("e"), KindNull},
		{val.Key("e").Key("b").Key("d"), KindNull},
	} {
		if test.actual.Kind() != test.expected {
			t.Errorf("expected kind %v got %v", test.expected, test.actual.Kind())
		}
	}
}

func TestFindPropertyValue(t *testing.T) {
	val, err := ParseString(`{a: null}`, DefaultReaderOptions())
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if _, ok := val.FindPropertyValue("a"); !ok {
		t.Error("expected property 'a' to be found")
	}
	if _, ok := val.FindPropertyValue("missing"); ok {
		t.Error("expected property 'missing' to be absent")
	}
}
