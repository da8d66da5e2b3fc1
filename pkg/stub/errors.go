package stub

import "errors"

// Common errors for the stub package.
var (
	// ErrNoResponses indicates a periodical stub built without responses.
	ErrNoResponses = errors.New("no responses")
)
