package canvas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EventQueue(t *testing.T) {
	t.Parallel()
	q := newEventQueue()
	ctx := context.Background()
	for i := range uint32(3) {
		q.push(NewEvent(ResizeEvent{Width: i}, nil))
	}
	for i := range uint32(3) {
		ev, err := q.pop(ctx)
		require.NoError(t, err)
		assert.Equal(t, ResizeEvent{Width: i}, ev.Variant())
	}

	tctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err := q.pop(tctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	got := make(chan *Event)
	go func() {
		ev, _ := q.pop(ctx)
		got <- ev
	}()
	q.push(NewEvent(ResizeEvent{Width: 42}, nil))
	select {
	case ev := <-got:
		assert.Equal(t, ResizeEvent{Width: 42}, ev.Variant())
	case <-time.After(time.Second):
		t.Fatal("event is not received")
	}

	q.close()
	q.close()
	q.push(NewEvent(ResizeEvent{}, nil))
	_, err = q.pop(ctx)
	assert.ErrorIs(t, err, ErrHostClosed)
}

func Test_EventDone(t *testing.T) {
	t.Parallel()
	var calls []bool
	ev := NewEvent(ResizeEvent{}, func(p bool) { calls = append(calls, p) })
	ev.Done(false)
	ev.Done(true)
	assert.Equal(t, []bool{false}, calls)

	// Events without a callback are allowed.
	NewEvent(ResizeEvent{}, nil).Done(true)
}
