package stub

import (
	"github.com/getmockd/wsmock/pkg/match"
	"github.com/getmockd/wsmock/pkg/value"
)

// Kind identifies the trigger of a stub.
type Kind int

const (
	// KindConnect fires once when a client completes its handshake.
	KindConnect Kind = iota
	// KindMessage answers an inbound frame.
	KindMessage
	// KindPeriodical emits an ordered message sequence over a session.
	KindPeriodical
)

// String returns the string representation of the stub kind.
func (k Kind) String() string {
	switch k {
	case KindConnect:
		return "connect"
	case KindMessage:
		return "message"
	case KindPeriodical:
		return "periodical"
	default:
		return "unknown"
	}
}

// Stub is an immutable rule binding a trigger to one or more responses.
// Build stubs with OnConnect, OnMessage, and OnPeriodical.
type Stub struct {
	kind      Kind
	id        string
	headers   map[string]*match.TextMatcher
	payload   *match.BodyMatcher
	delay     Delay
	responses []*value.Body
}

// Kind returns the trigger of the stub.
func (s *Stub) Kind() Kind {
	return s.kind
}

// ID returns the stub's identifier. Only periodical stubs carry one.
func (s *Stub) ID() string {
	return s.id
}

// ResponseCount returns how many responses the stub can emit.
func (s *Stub) ResponseCount() int {
	return len(s.responses)
}

// Score rates how well the stub fits an input. The base score of 1 grows by
// every satisfied matcher's score; any matcher scoring 0 gates the whole stub
// to 0. Header matchers see the optional header value for their key, so a
// None matcher can require a header to be absent. A payload matcher against
// an absent payload scores 0.
func (s *Stub) Score(payload *value.Body, headers map[string]string) int {
	total := 1

	for key, m := range s.headers {
		var hv *string
		if v, ok := headers[key]; ok {
			hv = &v
		}
		hs := m.Score(hv)
		if hs == 0 {
			return 0
		}
		total += hs
	}

	if s.kind == KindMessage && s.payload != nil {
		ps := s.payload.Score(payload)
		if ps == 0 {
			return 0
		}
		total += ps
	}

	return total
}
