package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/containerd/errdefs"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// HandledEvent is a record of an event finished by the client.
type HandledEvent struct {
	Variant   EventVariant
	Propagate bool
}

// host implements the parts of [Client] shared by all hosts.
// Embedding types provide the terminal size and the rendering.
type host struct {
	mx          sync.Mutex
	store       *Store
	screen      *Screen
	queue       *eventQueue
	subs        map[SubscriptionKind]uint32
	suppressors map[uint64]Suppressor
	acquired    int
	handled     []HandledEvent
	lastID      atomic.Uint64
}

func newHost(store *Store, width, height uint32) *host {
	h := &host{
		store:       store,
		screen:      NewScreen(width, height),
		queue:       newEventQueue(),
		subs:        make(map[SubscriptionKind]uint32),
		suppressors: make(map[uint64]Suppressor),
	}
	store.OnChange(h.emit)
	return h
}

func (h *host) Get(_ context.Context, label string, d Discriminator) (json.RawMessage, error) {
	return h.store.Get(label, d)
}

func (h *host) Watch(_ context.Context, label string, d Discriminator) error {
	h.store.Watch(label, d)
	return nil
}

func (h *host) Set(_ context.Context, label string, d Discriminator, value any) error {
	return h.store.Set(label, d, value)
}

func (h *host) Subscribe(_ context.Context, sub Subscription) error {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.subs[sub.Kind] = sub.Priority
	return nil
}

func (h *host) Recv(ctx context.Context) (*Event, error) {
	return h.queue.pop(ctx)
}

// emit queues an event if the client is interested in it.
func (h *host) emit(v EventVariant) {
	kind := v.eventKind()
	h.mx.Lock()
	_, subscribed := h.subs[kind]
	_, everything := h.subs[SubscribeEverything]
	h.mx.Unlock()
	// Value events are requested with Watch, the store filters them.
	if kind != SubscribeValueChanges && !subscribed && !everything {
		return
	}
	h.queue.push(NewEvent(v, func(propagate bool) {
		h.mx.Lock()
		defer h.mx.Unlock()
		h.handled = append(h.handled, HandledEvent{Variant: v, Propagate: propagate})
	}))
}

func (h *host) ClearAll() {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.screen.Clear()
}

func (h *host) SetChar(x, y uint32, c rune) {
	h.SetCharColoured(x, y, c, ColourReset, ColourReset)
}

func (h *host) SetCharColoured(x, y uint32, c rune, fg, bg Colour) {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.screen.Set(x, y, Cell{Char: c, Fg: fg, Bg: bg})
}

// resize updates the screen area and notifies the client.
func (h *host) resize(width, height uint32) {
	h.mx.Lock()
	h.screen.Resize(width, height)
	h.mx.Unlock()
	h.emit(ResizeEvent{Width: width, Height: height})
}

func (h *host) Suppress(_ context.Context, sub Subscription, priority uint32, d Discriminator) (Suppressor, error) {
	h.mx.Lock()
	defer h.mx.Unlock()
	s := NewSuppressor(h.lastID.Add(1))
	h.suppressors[s.ID()] = s
	h.acquired++
	sizeguard.Log().Debug("suppression acquired", "id", s.ID(), "kind", sub.Kind, "priority", priority, "discrim", d.String())
	return s, nil
}

func (h *host) Unsuppress(_ context.Context, s Suppressor) error {
	h.mx.Lock()
	defer h.mx.Unlock()
	if _, ok := h.suppressors[s.ID()]; !ok {
		return fmt.Errorf("suppressor %d: %w", s.ID(), errdefs.ErrNotFound)
	}
	delete(h.suppressors, s.ID())
	sizeguard.Log().Debug("suppression released", "id", s.ID())
	return nil
}

// Suppressed checks if any suppression is held.
func (h *host) Suppressed() bool {
	h.mx.Lock()
	defer h.mx.Unlock()
	return len(h.suppressors) > 0
}

// Suppressions returns how many suppressions were acquired since the start.
func (h *host) Suppressions() int {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.acquired
}

// Handled returns the events finished by the client in order.
func (h *host) Handled() []HandledEvent {
	h.mx.Lock()
	defer h.mx.Unlock()
	return append([]HandledEvent(nil), h.handled...)
}

// Store returns the shared value store of the host.
func (h *host) Store() *Store {
	return h.store
}

func (h *host) close() {
	h.store.OnChange(nil)
	h.queue.close()
}
