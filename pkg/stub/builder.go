package stub

import (
	"strings"
	"time"

	"github.com/getmockd/wsmock/internal/id"
	"github.com/getmockd/wsmock/pkg/match"
	"github.com/getmockd/wsmock/pkg/value"
)

// Header matcher keys are lowercased at build time to line up with the
// lowercased header map a session captures at handshake.

// responseBody converts a builder argument into a response body: a *value.Body
// passes through, a *value.Value becomes a JSON body, and anything else must
// be a JSON-representable literal. Panics on unrepresentable input, like
// regexp.MustCompile does for programmer errors.
func responseBody(v interface{}) *value.Body {
	switch t := v.(type) {
	case *value.Body:
		return t
	case *value.Value:
		return value.JSONBody(t)
	default:
		return value.JSONBody(value.MustFrom(v))
	}
}

// ConnectBuilder assembles a connect stub.
type ConnectBuilder struct {
	headers map[string]*match.TextMatcher
}

// OnConnect starts a connect stub.
func OnConnect() *ConnectBuilder {
	return &ConnectBuilder{}
}

// WithHeader gates the stub on a handshake header.
func (b *ConnectBuilder) WithHeader(key string, m *match.TextMatcher) *ConnectBuilder {
	if b.headers == nil {
		b.headers = make(map[string]*match.TextMatcher)
	}
	b.headers[strings.ToLower(key)] = m
	return b
}

// ReturningText finishes the stub with a plain text response.
func (b *ConnectBuilder) ReturningText(text string) *Stub {
	return b.returning(value.TextBody(text))
}

// ReturningJSON finishes the stub with a JSON response.
func (b *ConnectBuilder) ReturningJSON(v interface{}) *Stub {
	return b.returning(responseBody(v))
}

// ReturningBinary finishes the stub with a binary response.
func (b *ConnectBuilder) ReturningBinary(data []byte) *Stub {
	return b.returning(value.BinaryBody(data))
}

func (b *ConnectBuilder) returning(body *value.Body) *Stub {
	return &Stub{
		kind:      KindConnect,
		headers:   b.headers,
		responses: []*value.Body{body},
	}
}

// MessageBuilder assembles a message stub.
type MessageBuilder struct {
	headers map[string]*match.TextMatcher
	payload *match.BodyMatcher
	delay   Delay
}

// OnMessage starts a message stub.
func OnMessage() *MessageBuilder {
	return &MessageBuilder{}
}

// WithHeader gates the stub on a handshake header.
func (b *MessageBuilder) WithHeader(key string, m *match.TextMatcher) *MessageBuilder {
	if b.headers == nil {
		b.headers = make(map[string]*match.TextMatcher)
	}
	b.headers[strings.ToLower(key)] = m
	return b
}

// WithTextLike gates the stub on a plain text payload.
func (b *MessageBuilder) WithTextLike(m *match.TextMatcher) *MessageBuilder {
	b.payload = match.TextPayload(m)
	return b
}

// WithBinaryLike gates the stub on a binary payload.
func (b *MessageBuilder) WithBinaryLike(m *match.BinaryMatcher) *MessageBuilder {
	b.payload = match.BinaryPayload(m)
	return b
}

// WithJSONBodyEq gates the stub on structural equality with a JSON document,
// given as a *value.Value or a JSON-representable literal.
func (b *MessageBuilder) WithJSONBodyEq(v interface{}) *MessageBuilder {
	b.payload = match.JSONPayload(match.JSONEq(value.MustFrom(v)))
	return b
}

// WithJSONBodyLike gates the stub on a JSON shape matcher.
func (b *MessageBuilder) WithJSONBodyLike(m *match.JSONMatcher) *MessageBuilder {
	b.payload = match.JSONPayload(m)
	return b
}

// WithPayload gates the stub on an arbitrary payload matcher, e.g. one built
// with match.PathPayload.
func (b *MessageBuilder) WithPayload(m *match.BodyMatcher) *MessageBuilder {
	b.payload = m
	return b
}

// WithFixedDelay holds the response for exactly d.
func (b *MessageBuilder) WithFixedDelay(d time.Duration) *MessageBuilder {
	b.delay = FixedDelay(d)
	return b
}

// WithDelayIntervalIn holds the response for a random duration in [lo, hi).
func (b *MessageBuilder) WithDelayIntervalIn(lo, hi time.Duration) *MessageBuilder {
	b.delay = IntervalDelay(lo, hi)
	return b
}

// ReturningText finishes the stub with a plain text response.
func (b *MessageBuilder) ReturningText(text string) *Stub {
	return b.returning(value.TextBody(text))
}

// ReturningJSON finishes the stub with a JSON response.
func (b *MessageBuilder) ReturningJSON(v interface{}) *Stub {
	return b.returning(responseBody(v))
}

// ReturningBinary finishes the stub with a binary response.
func (b *MessageBuilder) ReturningBinary(data []byte) *Stub {
	return b.returning(value.BinaryBody(data))
}

func (b *MessageBuilder) returning(body *value.Body) *Stub {
	return &Stub{
		kind:      KindMessage,
		headers:   b.headers,
		payload:   b.payload,
		delay:     b.delay,
		responses: []*value.Body{body},
	}
}

// PeriodicalBuilder assembles a periodical stub.
type PeriodicalBuilder struct {
	id      string
	headers map[string]*match.TextMatcher
	delay   Delay
	bodies  []*value.Body
}

// OnPeriodical starts a periodical stub.
func OnPeriodical() *PeriodicalBuilder {
	return &PeriodicalBuilder{}
}

// WithID sets the stub's identifier. A random 16-character alphanumeric id is
// generated when absent.
func (b *PeriodicalBuilder) WithID(s string) *PeriodicalBuilder {
	b.id = s
	return b
}

// WithHeader gates the stub on a handshake header.
func (b *PeriodicalBuilder) WithHeader(key string, m *match.TextMatcher) *PeriodicalBuilder {
	if b.headers == nil {
		b.headers = make(map[string]*match.TextMatcher)
	}
	b.headers[strings.ToLower(key)] = m
	return b
}

// WithFixedDelay separates successive responses by exactly d.
func (b *PeriodicalBuilder) WithFixedDelay(d time.Duration) *PeriodicalBuilder {
	b.delay = FixedDelay(d)
	return b
}

// WithDelayIntervalIn separates successive responses by a random duration in
// [lo, hi).
func (b *PeriodicalBuilder) WithDelayIntervalIn(lo, hi time.Duration) *PeriodicalBuilder {
	b.delay = IntervalDelay(lo, hi)
	return b
}

// ReturningText appends a plain text response to the sequence.
func (b *PeriodicalBuilder) ReturningText(text string) *PeriodicalBuilder {
	b.bodies = append(b.bodies, value.TextBody(text))
	return b
}

// ReturningJSON appends a JSON response to the sequence.
func (b *PeriodicalBuilder) ReturningJSON(v interface{}) *PeriodicalBuilder {
	b.bodies = append(b.bodies, responseBody(v))
	return b
}

// ReturningBinary appends a binary response to the sequence.
func (b *PeriodicalBuilder) ReturningBinary(data []byte) *PeriodicalBuilder {
	b.bodies = append(b.bodies, value.BinaryBody(data))
	return b
}

// Build finishes the stub. At least one response is required.
func (b *PeriodicalBuilder) Build() (*Stub, error) {
	if len(b.bodies) == 0 {
		return nil, ErrNoResponses
	}
	sid := b.id
	if sid == "" {
		sid = id.Alphanumeric(16)
	}
	return &Stub{
		kind:      KindPeriodical,
		id:        sid,
		headers:   b.headers,
		delay:     b.delay,
		responses: b.bodies,
	}, nil
}
