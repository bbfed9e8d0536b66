package canvas

import (
	"context"
)

// Headless is a host without a terminal. It keeps rendered frames in memory,
// the terminal size is changed with [Headless.Resize].
type Headless struct {
	*host
	frames []*Screen
}

// NewHeadless creates a headless host of the size.
func NewHeadless(store *Store, width, height uint32) *Headless {
	return &Headless{host: newHost(store, width, height)}
}

// TermSize implements [Client] interface.
func (h *Headless) TermSize(_ context.Context) (uint32, uint32, error) {
	h.mx.Lock()
	defer h.mx.Unlock()
	w, ht := h.screen.Size()
	return w, ht, nil
}

// Resize simulates a terminal resize.
func (h *Headless) Resize(width, height uint32) {
	h.resize(width, height)
}

// RenderAll implements [Client] interface, the canvas is saved as a frame.
func (h *Headless) RenderAll(_ context.Context) error {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.frames = append(h.frames, h.screen.Clone())
	return nil
}

// Frames returns all rendered frames.
func (h *Headless) Frames() []*Screen {
	h.mx.Lock()
	defer h.mx.Unlock()
	return append([]*Screen(nil), h.frames...)
}

// Screen returns a copy of the current canvas, rendered or not.
func (h *Headless) Screen() *Screen {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.screen.Clone()
}

// Close implements [Client] interface.
func (h *Headless) Close() error {
	h.close()
	return nil
}
