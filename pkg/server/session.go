package server

import (
	"context"
	"log/slog"
	"time"

	ws "github.com/coder/websocket"

	"github.com/getmockd/wsmock/pkg/stub"
	"github.com/getmockd/wsmock/pkg/value"
)

// idlePoll bounds how long a session waits for inbound traffic when its
// outbound queue is empty.
const idlePoll = time.Second

// session drives one accepted WebSocket connection from the shared registry.
// The scheduler goroutine owns the queue and the write side; a reader
// goroutine feeds inbound frames through a channel, so the scheduler's only
// suspension point is a select bounded by the queue head.
type session struct {
	id       string
	conn     *ws.Conn
	headers  map[string]string
	registry *stub.Registry
	cursors  stub.Cursors
	queue    *msgQueue
	log      *slog.Logger
}

func newSession(id string, conn *ws.Conn, headers map[string]string, registry *stub.Registry, log *slog.Logger) *session {
	return &session{
		id:       id,
		conn:     conn,
		headers:  headers,
		registry: registry,
		cursors:  stub.NewCursors(),
		queue:    newMsgQueue(),
		log:      log.With("session", id),
	}
}

// run executes the session loop until the client disconnects, a write fails,
// or ctx is cancelled. The derived context unblocks the reader when the
// scheduler leaves first.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close(ws.StatusNormalClosure, "")

	if msg := s.registry.OnConnect(s.headers); msg != nil {
		s.queue.push(msg)
	}
	for _, msg := range s.registry.OnPeriodical(s.headers, s.cursors) {
		s.queue.push(msg)
	}

	frames := make(chan *value.Body)
	go s.readLoop(ctx, frames)

	timer := time.NewTimer(idlePoll)
	defer timer.Stop()

	for {
		if !s.flush(ctx) {
			return
		}

		wait := idlePoll
		if head := s.queue.peek(); head != nil {
			wait = time.Until(head.AvailableAt)
			if wait < 0 {
				wait = 0
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			// Queue head became due; loop back to flush.
		case body, ok := <-frames:
			if !ok {
				// Reader finished: close or protocol error.
				return
			}
			if msg := s.registry.OnMessage(s.headers, body); msg != nil {
				s.queue.push(msg)
			}
		}
	}
}

// flush sends every due message in availability order. Returns false when a
// write fails and the session must end.
func (s *session) flush(ctx context.Context) bool {
	for {
		head := s.queue.peek()
		if head == nil || head.AvailableAt.After(time.Now()) {
			return true
		}
		s.queue.pop()

		if err := s.conn.Write(ctx, frameType(head.Type), head.Data); err != nil {
			s.log.Debug("send failed, closing session", "error", err)
			return false
		}
	}
}

// readLoop reads inbound frames and hands their decoded bodies to the
// scheduler. Text frames are JSON if they parse as JSON, plain text
// otherwise; binary frames stay binary. Control frames are handled inside
// the websocket library. Closing the channel signals the scheduler that the
// connection is done.
func (s *session) readLoop(ctx context.Context, frames chan<- *value.Body) {
	defer close(frames)

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			if status := ws.CloseStatus(err); status != -1 {
				s.log.Debug("client closed connection", "status", status)
			} else if ctx.Err() == nil {
				s.log.Debug("read failed, closing session", "error", err)
			}
			return
		}

		var body *value.Body
		switch typ {
		case ws.MessageBinary:
			body = value.BinaryBody(data)
		default:
			body = value.DecodeText(data)
		}

		select {
		case frames <- body:
		case <-ctx.Done():
			return
		}
	}
}

// frameType converts a stub message type to the wire frame type.
func frameType(t stub.MessageType) ws.MessageType {
	if t == stub.MessageBinary {
		return ws.MessageBinary
	}
	return ws.MessageText
}
