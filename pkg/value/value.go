package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the JSON null.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindFloat is an IEEE-754 double.
	KindFloat
	// KindString is a UTF-8 string.
	KindString
	// KindList is an ordered sequence of values.
	KindList
	// KindObject is a string-keyed mapping of values.
	KindObject
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON-like value.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []*Value
	obj  map[string]*Value
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, b: v}
}

// Int returns an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, i: v}
}

// Float returns a floating-point value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, f: v}
}

// String returns a string value.
func String(v string) *Value {
	return &Value{kind: KindString, s: v}
}

// List returns a list value holding the given items in order.
func List(items ...*Value) *Value {
	return &Value{kind: KindList, list: items}
}

// Object returns an object value holding the given fields.
func Object(fields map[string]*Value) *Value {
	if fields == nil {
		fields = map[string]*Value{}
	}
	return &Value{kind: KindObject, obj: fields}
}

// Kind returns the variant of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// BoolVal returns the boolean payload. Valid only for KindBool.
func (v *Value) BoolVal() bool {
	return v.b
}

// IntVal returns the integer payload. Valid only for KindInt.
func (v *Value) IntVal() int64 {
	return v.i
}

// FloatVal returns the float payload. Valid only for KindFloat.
func (v *Value) FloatVal() float64 {
	return v.f
}

// StringVal returns the string payload. Valid only for KindString.
func (v *Value) StringVal() string {
	return v.s
}

// ListVal returns the list items. Valid only for KindList.
// The returned slice is shared; callers must not modify it.
func (v *Value) ListVal() []*Value {
	return v.list
}

// ObjectVal returns the object fields. Valid only for KindObject.
// The returned map is shared; callers must not modify it.
func (v *Value) ObjectVal() map[string]*Value {
	return v.obj
}

// Equal reports structural equality. Object field order is irrelevant, list
// order is significant, and int and float are distinct kinds.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, vv := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Native converts the value into the plain Go representation ojg works with:
// nil, bool, int64, float64, string, []interface{}, map[string]interface{}.
func (v *Value) Native() interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]interface{}, len(v.list))
		for i, item := range v.list {
			out[i] = item.Native()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Native()
		}
		return out
	default:
		return nil
	}
}

// JSON serializes the value to canonical JSON text (object keys sorted).
func (v *Value) JSON() string {
	return oj.JSON(v.Native(), &ojg.Options{Sort: true})
}

// Parse decodes JSON text into a Value.
func Parse(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("parse json: empty input")
	}
	native, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return From(native)
}

// From converts a native Go value into a Value. Supported inputs are the types
// ojg produces plus the usual literals test code passes: nil, bool, all int and
// uint widths, float32/float64, string, []interface{}, map[string]interface{},
// and *Value (returned as-is).
func From(native interface{}) (*Value, error) {
	switch t := native.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: json.Number %q", ErrUnsupportedType, string(t))
		}
		return Float(f), nil
	case string:
		return String(t), nil
	case []interface{}:
		items := make([]*Value, len(t))
		for i, item := range t {
			v, err := From(item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return List(items...), nil
	case map[string]interface{}:
		fields := make(map[string]*Value, len(t))
		for k, item := range t {
			v, err := From(item)
			if err != nil {
				return nil, err
			}
			fields[k] = v
		}
		return Object(fields), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, native)
	}
}

// fromUint keeps values inside the int64 range integral and widens the rest to
// float, matching how JSON parsers treat out-of-range magnitudes.
func fromUint(u uint64) *Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Float(float64(u))
}

// MustFrom is From for literals known to be convertible; it panics otherwise.
// Intended for test fixtures and builder call sites with constant input.
func MustFrom(native interface{}) *Value {
	v, err := From(native)
	if err != nil {
		panic(err)
	}
	return v
}
