package match

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression matchers build Fn-variant matchers from expr-lang programs
// instead of Go closures, so test code can state predicates declaratively.
// The program sees the candidate as `value` and returns either an int (used
// as the score directly) or a bool (true scores 1).

// TextExpr compiles an expression into a text matcher.
//
//	m, err := match.TextExpr(`len(value) > 4 && value startsWith "user-"`)
func TextExpr(src string) (*TextMatcher, error) {
	prog, err := compileExpr(src)
	if err != nil {
		return nil, err
	}
	return TextFn(func(v string) int {
		return runExpr(prog, v)
	}), nil
}

// IntExpr compiles an expression into an integer matcher.
func IntExpr(src string) (*IntMatcher, error) {
	prog, err := compileExpr(src)
	if err != nil {
		return nil, err
	}
	return IntFn(func(v int64) int {
		return runExpr(prog, v)
	}), nil
}

// FloatExpr compiles an expression into a float matcher.
func FloatExpr(src string) (*FloatMatcher, error) {
	prog, err := compileExpr(src)
	if err != nil {
		return nil, err
	}
	return FloatFn(func(v float64) int {
		return runExpr(prog, v)
	}), nil
}

func compileExpr(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return prog, nil
}

// runExpr evaluates a program against the candidate value and converts the
// result to a score. Errors and unsupported result types score 0.
func runExpr(prog *vm.Program, v interface{}) int {
	out, err := expr.Run(prog, map[string]interface{}{"value": v})
	if err != nil {
		return 0
	}
	switch r := out.(type) {
	case bool:
		if r {
			return ScorePresent
		}
	case int:
		if r > 0 {
			return r
		}
	case int64:
		if r > 0 {
			return int(r)
		}
	case float64:
		if r > 0 {
			return int(r)
		}
	}
	return 0
}
