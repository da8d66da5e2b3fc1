package match

import "github.com/getmockd/wsmock/pkg/value"

type bodyKind int

const (
	bodyText bodyKind = iota
	bodyBinary
	bodyJSON
	bodyPath
)

// BodyMatcher is a compiled predicate over an optional message payload. It
// dispatches on the payload encoding: a matcher for one encoding scores 0
// against any other.
type BodyMatcher struct {
	kind   bodyKind
	text   *TextMatcher
	binary *BinaryMatcher
	json   *JSONMatcher
	paths  []*pathCondition
}

// TextPayload matches a plain text payload with the given matcher.
func TextPayload(m *TextMatcher) *BodyMatcher {
	return &BodyMatcher{kind: bodyText, text: m}
}

// BinaryPayload matches a binary payload with the given matcher.
func BinaryPayload(m *BinaryMatcher) *BodyMatcher {
	return &BodyMatcher{kind: bodyBinary, binary: m}
}

// JSONPayload matches a JSON payload with the given matcher.
func JSONPayload(m *JSONMatcher) *BodyMatcher {
	return &BodyMatcher{kind: bodyJSON, json: m}
}

// Score evaluates the matcher against an optional payload.
func (m *BodyMatcher) Score(b *value.Body) int {
	if b == nil {
		return 0
	}

	switch m.kind {
	case bodyText:
		if b.Kind() != value.BodyText {
			return 0
		}
		s := b.Text()
		return m.text.Score(&s)
	case bodyBinary:
		if b.Kind() != value.BodyBinary {
			return 0
		}
		return m.binary.Score(b.Binary())
	case bodyJSON:
		if b.Kind() != value.BodyJSON {
			return 0
		}
		return m.json.Score(b.JSON())
	case bodyPath:
		return m.scorePaths(b)
	}
	return 0
}
