package match

import (
	"fmt"
	"regexp"
	"strings"
)

type textKind int

const (
	textEq textKind = iota
	textRegex
	textContains
	textNotContains
	textLenEq
	textLenGreater
	textLenLess
	textNone
	textAny
	textFn
)

// TextMatcher is a compiled predicate over an optional string.
type TextMatcher struct {
	kind   textKind
	value  string
	length int
	re     *regexp.Regexp
	fn     func(string) int
}

// TextEq matches a string equal to value.
func TextEq(value string) *TextMatcher {
	return &TextMatcher{kind: textEq, value: value}
}

// TextRegex matches a string against a regex pattern. The pattern compiles
// eagerly; an invalid pattern is a construction-time error.
func TextRegex(pattern string) (*TextMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &TextMatcher{kind: textRegex, value: pattern, re: re}, nil
}

// TextContains matches a string containing value.
func TextContains(value string) *TextMatcher {
	return &TextMatcher{kind: textContains, value: value}
}

// TextNotContains matches a present string that does not contain value.
func TextNotContains(value string) *TextMatcher {
	return &TextMatcher{kind: textNotContains, value: value}
}

// TextLenEq matches a string of exactly length bytes.
func TextLenEq(length int) *TextMatcher {
	return &TextMatcher{kind: textLenEq, length: length}
}

// TextLenGreater matches a string longer than length bytes.
func TextLenGreater(length int) *TextMatcher {
	return &TextMatcher{kind: textLenGreater, length: length}
}

// TextLenLess matches a string shorter than length bytes.
func TextLenLess(length int) *TextMatcher {
	return &TextMatcher{kind: textLenLess, length: length}
}

// TextNone matches only an absent string.
func TextNone() *TextMatcher {
	return &TextMatcher{kind: textNone}
}

// TextAny matches any present string.
func TextAny() *TextMatcher {
	return &TextMatcher{kind: textAny}
}

// TextFn matches with a user-supplied scoring function. The function's return
// value is the score; 0 means no match.
func TextFn(fn func(string) int) *TextMatcher {
	return &TextMatcher{kind: textFn, fn: fn}
}

// Score evaluates the matcher against an optional string. A nil pointer means
// the value is absent.
func (m *TextMatcher) Score(v *string) int {
	if v == nil {
		if m.kind == textNone {
			return ScoreAbsent
		}
		return 0
	}

	switch m.kind {
	case textEq:
		if *v == m.value {
			return ScoreTextEquals
		}
	case textRegex:
		if m.re.MatchString(*v) {
			return ScoreTextPattern
		}
	case textContains:
		if strings.Contains(*v, m.value) {
			return ScoreTextContains
		}
	case textNotContains:
		if !strings.Contains(*v, m.value) {
			return ScoreTextNotContains
		}
	case textLenEq:
		if len(*v) == m.length {
			return ScoreTextLenEquals
		}
	case textLenGreater:
		if len(*v) > m.length {
			return ScoreTextLenGreater
		}
	case textLenLess:
		if len(*v) < m.length {
			return ScoreTextLenLess
		}
	case textAny:
		return ScorePresent
	case textFn:
		if s := m.fn(*v); s > 0 {
			return s
		}
	}
	return 0
}
