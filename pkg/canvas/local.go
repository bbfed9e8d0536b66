package canvas

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// ErrNotTerminal is returned when the local host output is not a terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

// Escape sequences used by the local host.
const (
	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
	escCursorHide   = "\x1b[?25l"
	escCursorShow   = "\x1b[?25h"
	escClear        = "\x1b[H\x1b[2J"
)

var fgColours = [...]pterm.Color{
	ColourReset:        pterm.FgDefault,
	ColourBlack:        pterm.FgBlack,
	ColourRed:          pterm.FgRed,
	ColourGreen:        pterm.FgGreen,
	ColourYellow:       pterm.FgYellow,
	ColourBlue:         pterm.FgBlue,
	ColourMagenta:      pterm.FgMagenta,
	ColourCyan:         pterm.FgCyan,
	ColourWhite:        pterm.FgWhite,
	ColourLightBlack:   pterm.FgDarkGray,
	ColourLightRed:     pterm.FgLightRed,
	ColourLightGreen:   pterm.FgLightGreen,
	ColourLightYellow:  pterm.FgLightYellow,
	ColourLightBlue:    pterm.FgLightBlue,
	ColourLightMagenta: pterm.FgLightMagenta,
	ColourLightCyan:    pterm.FgLightCyan,
	ColourLightWhite:   pterm.FgLightWhite,
}

var bgColours = [...]pterm.Color{
	ColourReset:        pterm.BgDefault,
	ColourBlack:        pterm.BgBlack,
	ColourRed:          pterm.BgRed,
	ColourGreen:        pterm.BgGreen,
	ColourYellow:       pterm.BgYellow,
	ColourBlue:         pterm.BgBlue,
	ColourMagenta:      pterm.BgMagenta,
	ColourCyan:         pterm.BgCyan,
	ColourWhite:        pterm.BgWhite,
	ColourLightBlack:   pterm.BgDarkGray,
	ColourLightRed:     pterm.BgLightRed,
	ColourLightGreen:   pterm.BgLightGreen,
	ColourLightYellow:  pterm.BgLightYellow,
	ColourLightBlue:    pterm.BgLightBlue,
	ColourLightMagenta: pterm.BgLightMagenta,
	ColourLightCyan:    pterm.BgLightCyan,
	ColourLightWhite:   pterm.BgLightWhite,
}

func colourStyle(fg, bg Colour) *pterm.Style {
	if int(fg) >= len(fgColours) {
		fg = ColourReset
	}
	if int(bg) >= len(bgColours) {
		bg = ColourReset
	}
	return pterm.NewStyle(fgColours[fg], bgColours[bg])
}

// Local is a host drawing directly to the controlling terminal.
// Resize events come from the terminal, shared values may be persisted in a state file.
type Local struct {
	*host
	streams sizeguard.Streams

	watchOnce  sync.Once
	stopResize func()
	opened     bool
}

// NewLocal creates a host on the terminal of the streams.
func NewLocal(streams sizeguard.Streams, store *Store) (*Local, error) {
	out := streams.Out()
	if !out.IsTerminal() {
		return nil, ErrNotTerminal
	}
	w, h := out.GetTtySize()
	l := &Local{
		host:       newHost(store, uint32(w), uint32(h)),
		streams:    streams,
		stopResize: func() {},
	}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Local) open() error {
	if err := l.streams.In().DisableEcho(); err != nil {
		sizeguard.Log().Debug("can't disable terminal echo", "error", err)
	}
	if _, err := l.streams.Out().Write([]byte(escAltScreenOn + escCursorHide + escClear)); err != nil {
		l.streams.In().RestoreTerminal()
		return err
	}
	l.opened = true
	return nil
}

// TermSize implements [Client] interface.
func (l *Local) TermSize(_ context.Context) (uint32, uint32, error) {
	w, h := l.streams.Out().GetTtySize()
	return uint32(w), uint32(h), nil
}

// Subscribe implements [Client] interface. Terminal size is watched after the first resize subscription.
func (l *Local) Subscribe(ctx context.Context, sub Subscription) error {
	if err := l.host.Subscribe(ctx, sub); err != nil {
		return err
	}
	if sub.Matches(SubscribeScreenResize) {
		l.watchOnce.Do(func() {
			l.stopResize = watchTtySize(l.streams.Out(), l.resize)
		})
	}
	return nil
}

// RenderAll implements [Client] interface.
func (l *Local) RenderAll(_ context.Context) error {
	l.mx.Lock()
	frame := l.frame()
	l.mx.Unlock()
	_, err := l.streams.Out().Write([]byte(frame))
	return err
}

// frame builds the screen output. It must be called with the lock held.
func (l *Local) frame() string {
	b := &strings.Builder{}
	b.WriteString(escClear)
	lastY, lastX := int64(-1), int64(-1)
	for _, p := range l.screen.Visible() {
		if int64(p.Y) != lastY || int64(p.X) != lastX+1 {
			b.WriteString("\x1b[" + strconv.FormatUint(uint64(p.Y)+1, 10) + ";" + strconv.FormatUint(uint64(p.X)+1, 10) + "H")
		}
		c, _ := l.screen.Cell(p.X, p.Y)
		if c.Fg == ColourReset && c.Bg == ColourReset {
			b.WriteRune(c.Char)
		} else {
			b.WriteString(colourStyle(c.Fg, c.Bg).Sprint(string(c.Char)))
		}
		lastY, lastX = int64(p.Y), int64(p.X)
	}
	return b.String()
}

// Unsuppress implements [Client] interface.
// There are no other clients on a local terminal, so the screen is handed back blank.
func (l *Local) Unsuppress(ctx context.Context, s Suppressor) error {
	if err := l.host.Unsuppress(ctx, s); err != nil {
		return err
	}
	l.ClearAll()
	return l.RenderAll(ctx)
}

// Close implements [Client] interface and restores the terminal.
func (l *Local) Close() error {
	l.stopResize()
	l.close()
	if !l.opened {
		return nil
	}
	l.opened = false
	_, err := l.streams.Out().Write([]byte(escCursorShow + escAltScreenOff))
	l.streams.In().RestoreTerminal()
	return err
}
