package canvas

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, c Client) *Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := c.Recv(ctx)
	require.NoError(t, err)
	return ev
}

func Test_Headless(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, err := New(TypeHeadless, Options{Width: 20, Height: 3})
	require.NoError(t, err)
	h := c.(*Headless)
	defer h.Close()

	w, ht, err := h.TermSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, [2]uint32{20, 3}, [2]uint32{w, ht})

	// Resizes are delivered to subscribers only.
	h.Resize(10, 2)
	require.NoError(t, h.Subscribe(ctx, SubscribeScreenResize.WithPriority(10)))
	h.Resize(30, 4)
	ev := recv(t, h)
	assert.Equal(t, ResizeEvent{Width: 30, Height: 4}, ev.Variant())
	ev.Done(false)
	assert.Equal(t, []HandledEvent{{Variant: ResizeEvent{Width: 30, Height: 4}, Propagate: false}}, h.Handled())

	// Value changes are delivered when watched.
	require.NoError(t, h.Watch(ctx, "label", Master()))
	require.NoError(t, h.Set(ctx, "label", Master(), "value"))
	ev = recv(t, h)
	assert.IsType(t, ValueUpdatedEvent{}, ev.Variant())
	raw, err := h.Get(ctx, "label", Master())
	require.NoError(t, err)
	assert.Equal(t, `"value"`, string(raw))

	// Rendering saves a frame.
	h.SetChar(1, 0, 'a')
	h.SetCharColoured(2, 1, 'b', ColourLightRed, ColourReset)
	assert.Empty(t, h.Frames())
	require.NoError(t, h.RenderAll(ctx))
	h.ClearAll()
	assert.Equal(t, 0, h.Screen().Len())
	frames := h.Frames()
	require.Len(t, frames, 1)
	lines := frames[0].Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, " a", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "  b", strings.TrimRight(lines[1], " "))
	cell, ok := frames[0].Cell(2, 1)
	require.True(t, ok)
	assert.Equal(t, Cell{Char: 'b', Fg: ColourLightRed, Bg: ColourReset}, cell)
	assert.Equal(t, []Point{{1, 0}, {2, 1}}, frames[0].Visible())

	// Suppression tokens.
	assert.False(t, h.Suppressed())
	s1, err := h.Suppress(ctx, SubscribeEverything.WithPriority(10), 10, Master())
	require.NoError(t, err)
	s2, err := h.Suppress(ctx, SubscribeEverything.WithPriority(10), 10, Master())
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
	require.NoError(t, h.Unsuppress(ctx, s1))
	assert.True(t, h.Suppressed())
	assert.True(t, errdefs.IsNotFound(h.Unsuppress(ctx, s1)))
	require.NoError(t, h.Unsuppress(ctx, s2))
	assert.False(t, h.Suppressed())

	require.NoError(t, h.Close())
	_, err = h.Recv(ctx)
	assert.ErrorIs(t, err, ErrHostClosed)
}

func Test_HostFactory(t *testing.T) {
	t.Parallel()
	_, err := New("remote", Options{})
	assert.Error(t, err)
}
