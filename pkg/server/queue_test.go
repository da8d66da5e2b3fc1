package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/wsmock/pkg/stub"
)

func msgAt(data string, at time.Time) *stub.Msg {
	return &stub.Msg{Type: stub.MessageText, Data: []byte(data), AvailableAt: at}
}

func TestMsgQueueOrdersByAvailableAt(t *testing.T) {
	now := time.Now()
	q := newMsgQueue()
	q.push(msgAt("third", now.Add(3*time.Second)))
	q.push(msgAt("first", now.Add(1*time.Second)))
	q.push(msgAt("second", now.Add(2*time.Second)))

	require.Equal(t, 3, q.len())
	assert.Equal(t, "first", string(q.pop().Data))
	assert.Equal(t, "second", string(q.pop().Data))
	assert.Equal(t, "third", string(q.pop().Data))
	assert.Nil(t, q.pop())
}

func TestMsgQueuePeekDoesNotRemove(t *testing.T) {
	now := time.Now()
	q := newMsgQueue()
	assert.Nil(t, q.peek())

	q.push(msgAt("only", now))
	assert.Equal(t, "only", string(q.peek().Data))
	assert.Equal(t, 1, q.len())
}

func TestMsgQueueInterleavedPushPop(t *testing.T) {
	now := time.Now()
	q := newMsgQueue()
	q.push(msgAt("late", now.Add(time.Hour)))
	q.push(msgAt("soon", now.Add(time.Minute)))

	assert.Equal(t, "soon", string(q.pop().Data))

	// A later-arriving message with a shorter deadline overtakes.
	q.push(msgAt("overtaker", now.Add(time.Second)))
	assert.Equal(t, "overtaker", string(q.pop().Data))
	assert.Equal(t, "late", string(q.pop().Data))
}

func TestMsgQueueDrainIsNonDecreasing(t *testing.T) {
	now := time.Now()
	q := newMsgQueue()
	offsets := []int{7, 3, 9, 1, 4, 8, 2, 6, 5}
	for _, o := range offsets {
		q.push(msgAt("x", now.Add(time.Duration(o)*time.Millisecond)))
	}

	prev := q.pop()
	for q.len() > 0 {
		next := q.pop()
		assert.False(t, next.AvailableAt.Before(prev.AvailableAt))
		prev = next
	}
}
