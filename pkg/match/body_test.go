package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/wsmock/pkg/value"
)

func TestBodyMatcherDispatch(t *testing.T) {
	text := TextPayload(TextEq("ping"))
	binary := BinaryPayload(BinaryEq([]byte{0xCA, 0xFE}))
	jsonm := JSONPayload(JSONEq(parseValue(t, `{"op":1}`)))

	textBody := value.TextBody("ping")
	binaryBody := value.BinaryBody([]byte{0xCA, 0xFE})
	jsonBody := value.JSONBody(parseValue(t, `{"op":1}`))

	tests := []struct {
		name    string
		matcher *BodyMatcher
		body    *value.Body
		want    int
	}{
		{"text on text", text, textBody, ScoreTextEquals},
		{"text on binary", text, binaryBody, 0},
		{"text on json", text, jsonBody, 0},
		{"binary on binary", binary, binaryBody, ScoreBinaryEquals},
		{"binary on text", binary, textBody, 0},
		{"json on json", jsonm, jsonBody, ScoreNumberEquals},
		{"json on text", jsonm, textBody, 0},
		{"nil body", text, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Score(tt.body))
		})
	}
}

func TestPathPayload(t *testing.T) {
	m, err := PathPayload(map[string]interface{}{
		"$.action":    "subscribe",
		"$.params.id": 42,
	})
	require.NoError(t, err)

	body := value.JSONBody(parseValue(t, `{"action":"subscribe","params":{"id":42}}`))
	assert.Equal(t, 2*ScorePathCondition, m.Score(body))

	assert.Zero(t, m.Score(value.JSONBody(parseValue(t, `{"action":"subscribe","params":{"id":41}}`))))
	assert.Zero(t, m.Score(value.JSONBody(parseValue(t, `{"action":"subscribe"}`))))
	assert.Zero(t, m.Score(value.TextBody("subscribe")))
}

func TestPathPayloadNumericCoercion(t *testing.T) {
	m, err := PathPayload(map[string]interface{}{"$.n": 30.0})
	require.NoError(t, err)

	assert.Positive(t, m.Score(value.JSONBody(parseValue(t, `{"n":30}`))))
}

func TestPathPayloadWildcard(t *testing.T) {
	m, err := PathPayload(map[string]interface{}{"$.items[*].sku": "abc"})
	require.NoError(t, err)

	assert.Positive(t, m.Score(value.JSONBody(parseValue(t, `{"items":[{"sku":"xyz"},{"sku":"abc"}]}`))))
	assert.Zero(t, m.Score(value.JSONBody(parseValue(t, `{"items":[{"sku":"xyz"}]}`))))
}

func TestPathPayloadErrors(t *testing.T) {
	_, err := PathPayload(nil)
	assert.ErrorIs(t, err, ErrNoConditions)

	_, err = PathPayload(map[string]interface{}{"$.[": 1})
	assert.ErrorIs(t, err, ErrInvalidPath)
}
