package match

import (
	"fmt"

	"github.com/getmockd/wsmock/pkg/value"
)

type jsonKind int

const (
	jsonNull jsonKind = iota
	jsonBool
	jsonString
	jsonInt
	jsonFloat
	jsonList
	jsonObject
)

// JSONMatcher is a compiled predicate over an optional JSON value. Scalar
// variants delegate to the scalar matcher of the same kind; list and object
// variants gate on every child matching and sum the children's scores.
type JSONMatcher struct {
	kind   jsonKind
	boolm  *BoolMatcher
	text   *TextMatcher
	intm   *IntMatcher
	floatm *FloatMatcher
	list   []*JSONMatcher
	object map[string]*JSONMatcher
}

// JSONNull matches the JSON null value.
func JSONNull() *JSONMatcher {
	return &JSONMatcher{kind: jsonNull}
}

// JSONBool matches a boolean value with the given matcher.
func JSONBool(m *BoolMatcher) *JSONMatcher {
	return &JSONMatcher{kind: jsonBool, boolm: m}
}

// JSONString matches a string value with the given matcher.
func JSONString(m *TextMatcher) *JSONMatcher {
	return &JSONMatcher{kind: jsonString, text: m}
}

// JSONInt matches an integer value with the given matcher.
func JSONInt(m *IntMatcher) *JSONMatcher {
	return &JSONMatcher{kind: jsonInt, intm: m}
}

// JSONFloat matches a float value with the given matcher.
func JSONFloat(m *FloatMatcher) *JSONMatcher {
	return &JSONMatcher{kind: jsonFloat, floatm: m}
}

// JSONList matches a list value element by element. The list lengths must be
// equal; every element must match its matcher.
func JSONList(items ...*JSONMatcher) *JSONMatcher {
	return &JSONMatcher{kind: jsonList, list: items}
}

// JSONObject matches an object value field by field. Every configured key is
// looked up and its matcher scored against the optional field value, so None
// matchers can require a field to be absent. Keys present in the value but not
// configured are ignored.
func JSONObject(fields map[string]*JSONMatcher) *JSONMatcher {
	if fields == nil {
		fields = map[string]*JSONMatcher{}
	}
	return &JSONMatcher{kind: jsonObject, object: fields}
}

// JSONEq builds a matcher requiring structural equality with v: scalars become
// their Eq matchers, lists and objects recurse. As with JSONObject, object keys
// present in the value but not in v are ignored.
func JSONEq(v *value.Value) *JSONMatcher {
	switch v.Kind() {
	case value.KindNull:
		return JSONNull()
	case value.KindBool:
		return JSONBool(BoolEq(v.BoolVal()))
	case value.KindString:
		return JSONString(TextEq(v.StringVal()))
	case value.KindInt:
		return JSONInt(IntEq(v.IntVal()))
	case value.KindFloat:
		return JSONFloat(FloatEq(v.FloatVal()))
	case value.KindList:
		items := make([]*JSONMatcher, len(v.ListVal()))
		for i, item := range v.ListVal() {
			items[i] = JSONEq(item)
		}
		return JSONList(items...)
	case value.KindObject:
		fields := make(map[string]*JSONMatcher, len(v.ObjectVal()))
		for k, item := range v.ObjectVal() {
			fields[k] = JSONEq(item)
		}
		return JSONObject(fields)
	default:
		return JSONNull()
	}
}

// ParseJSONEq parses JSON text and builds the structural equality matcher for
// it.
func ParseJSONEq(text string) (*JSONMatcher, error) {
	v, err := value.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return JSONEq(v), nil
}

// Score evaluates the matcher against an optional JSON value.
func (m *JSONMatcher) Score(v *value.Value) int {
	if v == nil {
		// Only the scalar families carry None semantics; structure
		// matchers require a present value.
		switch m.kind {
		case jsonBool:
			return m.boolm.Score(nil)
		case jsonString:
			return m.text.Score(nil)
		case jsonInt:
			return m.intm.Score(nil)
		case jsonFloat:
			return m.floatm.Score(nil)
		default:
			return 0
		}
	}

	switch m.kind {
	case jsonNull:
		if v.Kind() == value.KindNull {
			return ScoreJSONNull
		}
	case jsonBool:
		if v.Kind() == value.KindBool {
			b := v.BoolVal()
			return m.boolm.Score(&b)
		}
	case jsonString:
		if v.Kind() == value.KindString {
			s := v.StringVal()
			return m.text.Score(&s)
		}
	case jsonInt:
		if v.Kind() == value.KindInt {
			i := v.IntVal()
			return m.intm.Score(&i)
		}
	case jsonFloat:
		if v.Kind() == value.KindFloat {
			f := v.FloatVal()
			return m.floatm.Score(&f)
		}
	case jsonList:
		if v.Kind() != value.KindList {
			return 0
		}
		items := v.ListVal()
		if len(items) != len(m.list) {
			return 0
		}
		total := 0
		for i, child := range m.list {
			s := child.Score(items[i])
			if s == 0 {
				return 0
			}
			total += s
		}
		return total
	case jsonObject:
		if v.Kind() != value.KindObject {
			return 0
		}
		fields := v.ObjectVal()
		total := 0
		for k, child := range m.object {
			s := child.Score(fields[k])
			if s == 0 {
				return 0
			}
			total += s
		}
		return total
	}
	return 0
}
