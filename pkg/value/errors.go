package value

import "errors"

// Common errors for the value package.
var (
	// ErrUnsupportedType indicates a native Go value with no Value representation.
	ErrUnsupportedType = errors.New("unsupported value type")
)
