// Package value defines the dynamic data model shared by matchers and stubs.
//
// A Value is a JSON-like tagged variant: null, bool, int, float, string, list,
// or object. A Body is a message payload in one of three encodings: plain text,
// binary, or JSON. Both are immutable once built.
//
// JSON parsing and serialization go through github.com/ohler55/ojg, which keeps
// integral numbers as int64 so the int/float distinction survives a round-trip.
package value
