package match

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/getmockd/wsmock/pkg/value"
)

// pathCondition is one compiled JSONPath condition.
type pathCondition struct {
	expr     jp.Expr
	path     string
	expected interface{}
}

// PathPayload matches a JSON payload against JSONPath conditions. Every
// condition must be satisfied by at least one value selected by its path;
// each satisfied condition contributes ScorePathCondition. Paths compile
// eagerly and an invalid path is a construction-time error.
func PathPayload(conditions map[string]interface{}) (*BodyMatcher, error) {
	if len(conditions) == 0 {
		return nil, ErrNoConditions
	}

	paths := make([]*pathCondition, 0, len(conditions))
	for path, expected := range conditions {
		expr, err := jp.ParseString(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, path, err)
		}
		paths = append(paths, &pathCondition{expr: expr, path: path, expected: expected})
	}
	return &BodyMatcher{kind: bodyPath, paths: paths}, nil
}

// scorePaths evaluates all path conditions against a JSON payload.
func (m *BodyMatcher) scorePaths(b *value.Body) int {
	if b.Kind() != value.BodyJSON {
		return 0
	}

	data := b.JSON().Native()
	total := 0
	for _, cond := range m.paths {
		if !cond.matches(data) {
			return 0
		}
		total += ScorePathCondition
	}
	return total
}

// matches reports whether any value selected by the path equals the expected
// value.
func (c *pathCondition) matches(data interface{}) bool {
	for _, got := range c.expr.Get(data) {
		if looseEqual(got, c.expected) {
			return true
		}
	}
	return false
}

// looseEqual compares a selected JSON value with an expected literal,
// coercing numeric widths so 30, int64(30), and 30.0 all compare equal.
func looseEqual(actual, expected interface{}) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	if af, aok := asFloat(actual); aok {
		ef, eok := asFloat(expected)
		return eok && af == ef
	}

	switch a := actual.(type) {
	case string:
		e, ok := expected.(string)
		return ok && a == e
	case bool:
		e, ok := expected.(bool)
		return ok && a == e
	default:
		return false
	}
}

// asFloat widens any numeric type to float64.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
