package canvas

import (
	"fmt"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// Type defines implemented host types.
type Type string

// Available host types.
const (
	TypeLocal    Type = "local"    // TypeLocal draws on the controlling terminal.
	TypeHeadless Type = "headless" // TypeHeadless keeps the screen in memory.
)

// Options configure a host.
type Options struct {
	Streams sizeguard.Streams // Streams are the terminal of a local host.
	Store   *Store            // Store keeps shared values, a memory store is used if nil.
	Width   uint32            // Width is the initial width of a headless host.
	Height  uint32            // Height is the initial height of a headless host.
}

// New creates a new host based on a type.
// Changes of the store state file made by other processes are delivered to the host.
func New(t Type, opts Options) (Client, error) {
	var newHost func() (Client, error)
	switch t {
	case TypeLocal:
		newHost = func() (Client, error) {
			l, err := NewLocal(opts.Streams, opts.Store)
			if err != nil {
				return nil, err
			}
			return l, nil
		}
	case TypeHeadless:
		newHost = func() (Client, error) { return NewHeadless(opts.Store, opts.Width, opts.Height), nil }
	default:
		return nil, fmt.Errorf("canvas host %q is not implemented", t)
	}
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	if err := opts.Store.WatchStateFile(); err != nil {
		return nil, err
	}
	return newHost()
}
