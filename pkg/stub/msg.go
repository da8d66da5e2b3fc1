package stub

import (
	"time"

	"github.com/getmockd/wsmock/pkg/value"
)

// MessageType represents the type of WebSocket message.
type MessageType int

const (
	// MessageText indicates a UTF-8 encoded text message.
	MessageText MessageType = 1
	// MessageBinary indicates a binary message.
	MessageBinary MessageType = 2
)

// String returns the string representation of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageText:
		return "text"
	case MessageBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Msg is a materialized outbound frame paired with the instant it becomes
// deliverable. Text and JSON bodies become text frames (JSON serialized
// canonically), binary bodies become binary frames.
type Msg struct {
	// Type is the frame kind to send.
	Type MessageType
	// Data is the frame payload.
	Data []byte
	// AvailableAt is when the message may be delivered.
	AvailableAt time.Time
}

// newMsg frames a response body for delivery at the given instant.
func newMsg(b *value.Body, at time.Time) *Msg {
	switch b.Kind() {
	case value.BodyBinary:
		return &Msg{Type: MessageBinary, Data: b.Binary(), AvailableAt: at}
	case value.BodyJSON:
		return &Msg{Type: MessageText, Data: []byte(b.JSON().JSON()), AvailableAt: at}
	default:
		return &Msg{Type: MessageText, Data: []byte(b.Text()), AvailableAt: at}
	}
}
