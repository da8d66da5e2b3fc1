package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/wsmock/pkg/match"
	"github.com/getmockd/wsmock/pkg/value"
)

func TestConnectStubScore(t *testing.T) {
	bare := OnConnect().ReturningText("hi")
	gated := OnConnect().
		WithHeader("Authorization", match.TextEq("AAABBBCCCDDD")).
		ReturningText("hi")

	tests := []struct {
		name    string
		s       *Stub
		headers map[string]string
		want    int
	}{
		{"no matchers", bare, map[string]string{}, 1},
		{"no matchers ignores headers", bare, map[string]string{"x": "y"}, 1},
		{"header match", gated, map[string]string{"authorization": "AAABBBCCCDDD"}, 1 + match.ScoreTextEquals},
		{"header mismatch", gated, map[string]string{"authorization": "nope"}, 0},
		{"header absent", gated, map[string]string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Score(nil, tt.headers))
		})
	}
}

func TestMessageStubScore(t *testing.T) {
	s := OnMessage().
		WithHeader("authorization", match.TextEq("tok")).
		WithTextLike(match.TextEq("ping")).
		ReturningText("pong")

	headers := map[string]string{"authorization": "tok"}

	got := s.Score(value.TextBody("ping"), headers)
	assert.Equal(t, 1+match.ScoreTextEquals+match.ScoreTextEquals, got)

	assert.Zero(t, s.Score(value.TextBody("pong"), headers), "payload mismatch gates to 0")
	assert.Zero(t, s.Score(value.TextBody("ping"), map[string]string{}), "missing header gates to 0")
	assert.Zero(t, s.Score(nil, headers), "payload matcher against no payload gates to 0")
}

func TestMessageStubWithoutPayloadMatcher(t *testing.T) {
	s := OnMessage().ReturningText("any")

	assert.Equal(t, 1, s.Score(value.TextBody("whatever"), nil))
	assert.Equal(t, 1, s.Score(nil, nil))
}

func TestHeaderNoneMatcher(t *testing.T) {
	s := OnConnect().
		WithHeader("x-debug", match.TextNone()).
		ReturningText("prod")

	assert.Equal(t, 1+match.ScoreAbsent, s.Score(nil, map[string]string{}))
	assert.Zero(t, s.Score(nil, map[string]string{"x-debug": "1"}))
}

func TestMoreConstraintsScoreHigher(t *testing.T) {
	one := OnConnect().
		WithHeader("authorization", match.TextEq("X")).
		ReturningText("A")
	two := OnConnect().
		WithHeader("authorization", match.TextEq("X")).
		WithHeader("dummy-header", match.TextContains("mm")).
		ReturningText("B")
	three := OnConnect().
		WithHeader("authorization", match.TextEq("X")).
		WithHeader("dummy-header", match.TextEq("Dummy")).
		ReturningText("C")

	headers := map[string]string{"authorization": "X", "dummy-header": "Dummy"}

	s1 := one.Score(nil, headers)
	s2 := two.Score(nil, headers)
	s3 := three.Score(nil, headers)
	assert.Greater(t, s2, s1)
	assert.Greater(t, s3, s2)
}

func TestBuilderLowercasesHeaderKeys(t *testing.T) {
	s := OnConnect().
		WithHeader("Authorization", match.TextEq("tok")).
		ReturningText("ok")

	assert.Positive(t, s.Score(nil, map[string]string{"authorization": "tok"}))
}

func TestJSONBodyEq(t *testing.T) {
	s := OnMessage().
		WithJSONBodyEq(map[string]interface{}{
			"name": "John",
			"age":  30,
			"tags": []interface{}{"dev", "rust", "json"},
		}).
		ReturningText("ok")

	doc, err := value.Parse([]byte(`{"name":"John","age":30,"tags":["dev","rust","json"]}`))
	require.NoError(t, err)
	assert.Positive(t, s.Score(value.JSONBody(doc), nil))

	other, err := value.Parse([]byte(`{"name":"Jane","age":30,"tags":["dev","rust","json"]}`))
	require.NoError(t, err)
	assert.Zero(t, s.Score(value.JSONBody(other), nil))
	assert.Zero(t, s.Score(value.TextBody("not json"), nil))
}

func TestJSONBodyLike(t *testing.T) {
	s := OnMessage().
		WithJSONBodyLike(match.JSONObject(map[string]*match.JSONMatcher{
			"name": match.JSONString(match.TextLenEq(4)),
			"age":  match.JSONInt(match.IntGreaterThan(20)),
		})).
		ReturningText("ok")

	doc, err := value.Parse([]byte(`{"name":"John","age":30,"tags":["dev","rust","json"]}`))
	require.NoError(t, err)
	assert.Positive(t, s.Score(value.JSONBody(doc), nil))

	young, err := value.Parse([]byte(`{"name":"John","age":18}`))
	require.NoError(t, err)
	assert.Zero(t, s.Score(value.JSONBody(young), nil))
}

func TestPeriodicalBuild(t *testing.T) {
	s, err := OnPeriodical().
		ReturningText("m1").
		ReturningText("m2").
		Build()
	require.NoError(t, err)

	assert.Equal(t, KindPeriodical, s.Kind())
	assert.Equal(t, 2, s.ResponseCount())
	assert.Len(t, s.ID(), 16)
}

func TestPeriodicalBuildKeepsExplicitID(t *testing.T) {
	s, err := OnPeriodical().
		WithID("ticker").
		ReturningText("tick").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "ticker", s.ID())
}

func TestPeriodicalBuildRequiresResponses(t *testing.T) {
	_, err := OnPeriodical().WithID("empty").Build()
	assert.ErrorIs(t, err, ErrNoResponses)
}
