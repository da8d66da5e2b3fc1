package match

import "errors"

// Common errors for the match package.
var (
	// ErrInvalidPattern indicates a regex pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidExpression indicates an expression that does not compile.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrInvalidPath indicates a JSONPath expression that does not parse.
	ErrInvalidPath = errors.New("invalid json path")
	// ErrNoConditions indicates a path matcher built without conditions.
	ErrNoConditions = errors.New("no conditions")
	// ErrInvalidJSON indicates matcher input that is not valid JSON.
	ErrInvalidJSON = errors.New("invalid json")
)
