package canvas

import (
	"context"
	"errors"
	"sync"
)

// ErrHostClosed is returned when the host is closed.
var ErrHostClosed = errors.New("canvas host is closed")

// eventQueue is an unbounded FIFO of events.
// Pushing never blocks, so producers may hold their own locks.
type eventQueue struct {
	mx     sync.Mutex
	items  []*Event
	ready  chan struct{}
	closed bool
}

func newEventQueue() *eventQueue {
	return &eventQueue{ready: make(chan struct{}, 1)}
}

func (q *eventQueue) push(e *Event) {
	q.mx.Lock()
	defer q.mx.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, e)
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pop(ctx context.Context) (*Event, error) {
	for {
		q.mx.Lock()
		if len(q.items) > 0 {
			e := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mx.Unlock()
			return e, nil
		}
		closed := q.closed
		q.mx.Unlock()
		if closed {
			return nil, ErrHostClosed
		}

		select {
		case <-q.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (q *eventQueue) close() {
	q.mx.Lock()
	defer q.mx.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ready)
}
