package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is a colour of the basic terminal palette.
type Colour uint8

// Available colours. [ColourReset] keeps the terminal default.
const (
	ColourReset Colour = iota
	ColourBlack
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMagenta
	ColourCyan
	ColourWhite
	ColourLightBlack
	ColourLightRed
	ColourLightGreen
	ColourLightYellow
	ColourLightBlue
	ColourLightMagenta
	ColourLightCyan
	ColourLightWhite
)

var colourNames = [...]string{
	"reset", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"light-black", "light-red", "light-green", "light-yellow", "light-blue", "light-magenta", "light-cyan", "light-white",
}

// String implements [fmt.Stringer] interface.
func (c Colour) String() string {
	if int(c) < len(colourNames) {
		return colourNames[c]
	}
	return "colour(" + strconv.Itoa(int(c)) + ")"
}

// Discriminator is a path identifying the owner of a value or a lock.
type Discriminator []uint32

// Master returns the discriminator of the authoritative scope.
func Master() Discriminator {
	return Discriminator{1}
}

// String implements [fmt.Stringer] interface, for example "1/4".
func (d Discriminator) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, "/")
}

// ParseDiscriminator parses a discriminator from its string form.
func ParseDiscriminator(s string) (Discriminator, error) {
	if s == "" {
		return Discriminator{}, nil
	}
	parts := strings.Split(s, "/")
	d := make(Discriminator, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid discriminator %q: %w", s, err)
		}
		d[i] = uint32(v)
	}
	return d, nil
}

// SubscriptionKind is a kind of events a client is interested in.
type SubscriptionKind string

// Subscription kinds.
const (
	SubscribeEverything   SubscriptionKind = "everything"    // SubscribeEverything matches all events.
	SubscribeScreenResize SubscriptionKind = "screen_resize" // SubscribeScreenResize matches terminal resizes.
)

// WithPriority creates a [Subscription] of the kind.
func (k SubscriptionKind) WithPriority(p uint32) Subscription {
	return Subscription{Kind: k, Priority: p}
}

// Subscription is a request for events of a kind.
// Clients with a higher priority receive an event first.
type Subscription struct {
	Kind     SubscriptionKind
	Priority uint32
}

// Matches checks if the subscription includes events of kind k.
func (s Subscription) Matches(k SubscriptionKind) bool {
	return s.Kind == SubscribeEverything || s.Kind == k
}

// Suppressor is an opaque token of an exclusive render lock granted by the host.
type Suppressor struct {
	id uint64
}

// NewSuppressor creates a token. It is meant for hosts and tests.
func NewSuppressor(id uint64) Suppressor {
	return Suppressor{id: id}
}

// ID returns the host identifier of the token.
func (s Suppressor) ID() uint64 {
	return s.id
}
