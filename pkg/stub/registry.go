package stub

import (
	"sync"
	"time"

	"github.com/getmockd/wsmock/pkg/value"
)

// Cursors tracks, per periodical stub id, how many responses a session has
// consumed. Each session owns its own map, so every connection receives the
// full sequence independently of the others.
type Cursors map[string]int

// NewCursors returns an empty cursor map for a fresh session.
func NewCursors() Cursors {
	return make(Cursors)
}

// Registry is the shared, append-only collection of stubs, partitioned by
// trigger. It is owned by the server and read by every session; registration
// appends, existing entries are never mutated or removed.
type Registry struct {
	mu           sync.RWMutex
	onConnect    []*Stub
	onMessage    []*Stub
	onPeriodical []*Stub
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a stub to the collection for its kind.
func (r *Registry) Register(s *Stub) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch s.kind {
	case KindConnect:
		r.onConnect = append(r.onConnect, s)
	case KindMessage:
		r.onMessage = append(r.onMessage, s)
	case KindPeriodical:
		r.onPeriodical = append(r.onPeriodical, s)
	}
}

// Len reports how many stubs of the given kind are registered.
func (r *Registry) Len(k Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch k {
	case KindConnect:
		return len(r.onConnect)
	case KindMessage:
		return len(r.onMessage)
	case KindPeriodical:
		return len(r.onPeriodical)
	default:
		return 0
	}
}

// selectBest returns the stub with the strictly greatest score for the input;
// ties keep the earliest registered stub. A zero-scoring population yields
// nil.
func selectBest(stubs []*Stub, payload *value.Body, headers map[string]string) *Stub {
	best := 0
	var found *Stub
	for _, s := range stubs {
		if score := s.Score(payload, headers); score > best {
			best = score
			found = s
		}
	}
	return found
}

// OnConnect materializes the response of the best-matching connect stub, or
// nil when none matches. Connect responses carry no delay.
func (r *Registry) OnConnect(headers map[string]string) *Msg {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := selectBest(r.onConnect, nil, headers)
	if s == nil {
		return nil
	}
	return newMsg(s.responses[0], time.Now())
}

// OnMessage materializes the response of the best-matching message stub for
// an inbound payload, or nil when none matches. The message becomes
// deliverable after the stub's delay.
func (r *Registry) OnMessage(headers map[string]string, payload *value.Body) *Msg {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := selectBest(r.onMessage, payload, headers)
	if s == nil {
		return nil
	}
	return newMsg(s.responses[0], time.Now().Add(s.delay.Wait()))
}

// OnPeriodical materializes the full periodical schedule for one session:
// it repeatedly selects the best-matching stub that still has responses left
// for the session's cursors, emits one message, and advances that cursor,
// until every matching stub is exhausted. Successive messages from one stub
// stack their delays, so a fixed 200ms stub with two responses lands at
// ~200ms and ~400ms.
func (r *Registry) OnPeriodical(headers map[string]string, cursors Cursors) []*Msg {
	r.mu.RLock()
	stubs := make([]*Stub, len(r.onPeriodical))
	copy(stubs, r.onPeriodical)
	r.mu.RUnlock()

	now := time.Now()
	base := make(map[string]time.Time, len(stubs))
	var out []*Msg

	for {
		best := 0
		var found *Stub
		for _, s := range stubs {
			if cursors[s.id] >= len(s.responses) {
				continue
			}
			if score := s.Score(nil, headers); score > best {
				best = score
				found = s
			}
		}
		if found == nil {
			return out
		}

		at, ok := base[found.id]
		if !ok {
			at = now
		}
		at = at.Add(found.delay.Wait())
		base[found.id] = at

		out = append(out, newMsg(found.responses[cursors[found.id]], at))
		cursors[found.id]++
	}
}
