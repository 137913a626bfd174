package jsonh

// valueSink implements tree.Sink by building *Value containers directly,
// so the tree package never needs to import this one.
type valueSink struct{}

func (valueSink) NewObject() any { return &Value{kind: KindObject} }
func (valueSink) NewArray() any  { return &Value{kind: KindArray} }

func (valueSink) SetProperty(object any, name string, value any) {
	obj := object.(*Value)
	obj.object = append(obj.object, member{name: name, value: value.(*Value)})
}

func (valueSink) AppendItem(array any, value any) {
	arr := array.(*Value)
	arr.array = append(arr.array, value.(*Value))
}

func (valueSink) NewString(s string) any { return &Value{kind: KindString, str: s} }
func (valueSink) NewNumber(f float64) any { return &Value{kind: KindNumber, number: f} }
func (valueSink) NewBool(b bool) any      { return &Value{kind: KindBoolean, boolean: b} }
func (valueSink) NewNull() any            { return &Value{kind: KindNull} }
