// Package canvas holds the contract of a canvas host and its implementations.
//
// A host owns the screen, delivers events to its clients in order, stores
// shared values scoped by [Discriminator] and grants exclusive rendering by
// suppressing other clients.
package canvas

import (
	"context"
	"encoding/json"
)

// Client defines the canvas host services available to a client.
type Client interface {
	// Get returns a shared value. An error matching errdefs.IsNotFound is returned if it is absent.
	Get(ctx context.Context, label string, d Discriminator) (json.RawMessage, error)
	// Watch requests [ValueUpdatedEvent] and [ValueRemovedEvent] for the label.
	Watch(ctx context.Context, label string, d Discriminator) error
	// Set stores a shared value encoded as json.
	Set(ctx context.Context, label string, d Discriminator, value any) error
	// TermSize returns the current terminal width and height.
	TermSize(ctx context.Context) (width, height uint32, err error)
	// Subscribe requests events of a kind with a priority.
	Subscribe(ctx context.Context, sub Subscription) error
	// Recv blocks until the next event is available.
	Recv(ctx context.Context) (*Event, error)

	// ClearAll blanks every cell of the client canvas.
	ClearAll()
	// SetChar plots a character with default colours.
	SetChar(x, y uint32, c rune)
	// SetCharColoured plots a character with foreground and background colours.
	SetCharColoured(x, y uint32, c rune, fg, bg Colour)
	// RenderAll flushes the canvas to the terminal.
	RenderAll(ctx context.Context) error

	// Suppress prevents clients with a lower priority from receiving events and rendering.
	Suppress(ctx context.Context, sub Subscription, priority uint32, d Discriminator) (Suppressor, error)
	// Unsuppress releases a suppression acquired with Suppress.
	Unsuppress(ctx context.Context, s Suppressor) error

	// Close releases the host resources.
	Close() error
}
