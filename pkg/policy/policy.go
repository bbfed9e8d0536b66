// Package policy holds the minimum terminal size required by the guard.
package policy

import (
	"fmt"
)

// LabelDimensions is the label of the shared value with the minimum size.
const LabelDimensions = "!ccanvas-saver-dimensions"

// MinimumSize is the smallest terminal size acceptable for normal rendering.
// The zero value is always acceptable.
type MinimumSize struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Default returns the minimum size used when none is configured.
func Default() MinimumSize {
	return MinimumSize{}
}

// Violated checks if a terminal of the size is too small.
func (m MinimumSize) Violated(width, height uint32) bool {
	return width < m.Width || height < m.Height
}

// IsDefault checks if no minimum is enforced.
func (m MinimumSize) IsDefault() bool {
	return m == Default()
}

// String implements [fmt.Stringer] interface.
func (m MinimumSize) String() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Store keeps the current minimum size. Decode failures never surface,
// they degrade to the previous or the default value.
// Store is not safe for concurrent use.
type Store struct {
	current MinimumSize
}

// NewStore creates a store holding the default minimum size.
func NewStore() *Store {
	return &Store{current: Default()}
}

// Current returns the stored minimum size.
func (s *Store) Current() MinimumSize {
	return s.current
}

// ApplyUpdate replaces the stored value with the decoded raw value.
// A malformed value is ignored and the previous one is kept.
// It returns true if the value was applied.
func (s *Store) ApplyUpdate(raw []byte) bool {
	m, err := Decode(raw)
	if err != nil {
		logRejected(err)
		return false
	}
	s.current = m
	return true
}

// ApplyRemoval resets the stored value to the default.
func (s *Store) ApplyRemoval() {
	s.current = Default()
}

// InitialLoad sets the value read at startup. A read error,
// including an absent value, or a malformed value resets it to the default.
func (s *Store) InitialLoad(raw []byte, err error) {
	if err != nil {
		s.current = Default()
		return
	}
	m, err := Decode(raw)
	if err != nil {
		logRejected(err)
	}
	s.current = m
}
