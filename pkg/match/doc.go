// Package match provides the scored predicate families stubs are built from.
//
// Every matcher evaluates an optional value of its kind and returns a
// non-negative score: 0 means no match, larger means a more specific match.
// The ranks are fixed constants (see scores.go) so ordering across a
// heterogeneous set of matchers is total and predictable. The None variants
// match only absent values, the Any variants only present ones, and the Fn
// variants delegate scoring to a user-supplied function.
//
// Matchers are immutable after construction and safe for concurrent use.
// Anything that can fail — regex patterns, JSONPath expressions, expression
// programs — is compiled eagerly and reported as a construction-time error.
package match
