package canvas

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/containerd/errdefs"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

type storeKey struct {
	discrim string
	label   string
}

func newStoreKey(label string, d Discriminator) storeKey {
	return storeKey{discrim: d.String(), label: label}
}

func (k storeKey) discriminator() Discriminator {
	d, err := ParseDiscriminator(k.discrim)
	if err != nil {
		// Keys are always created from a valid discriminator.
		panic(err)
	}
	return d
}

// Store keeps shared values scoped by discriminators and notifies about changes of watched ones.
// Values are persisted to a [StateFile] if one is given.
type Store struct {
	mx       sync.Mutex
	values   map[storeKey]json.RawMessage
	watched  map[storeKey]struct{}
	notifyFn func(EventVariant)
	state    *StateFile
}

// NewMemoryStore creates a store without persistence.
func NewMemoryStore() *Store {
	return &Store{
		values:  make(map[storeKey]json.RawMessage),
		watched: make(map[storeKey]struct{}),
	}
}

// NewStore creates a store persisted to the state file and loads its values.
func NewStore(state *StateFile) (*Store, error) {
	s := NewMemoryStore()
	s.state = state
	values, err := state.Load()
	if err != nil {
		return nil, err
	}
	s.values = values
	return s, nil
}

// StateFile returns the state file of the store, it may be nil.
func (s *Store) StateFile() *StateFile {
	return s.state
}

// OnChange sets a callback receiving changes of watched values.
// The callback is called without the store lock held.
func (s *Store) OnChange(fn func(EventVariant)) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.notifyFn = fn
}

// Watch starts notifying about changes of the value.
func (s *Store) Watch(label string, d Discriminator) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.watched[newStoreKey(label, d)] = struct{}{}
}

// Get returns a stored value.
func (s *Store) Get(label string, d Discriminator) (json.RawMessage, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	v, ok := s.values[newStoreKey(label, d)]
	if !ok {
		return nil, fmt.Errorf("value %q in %q: %w", label, d, errdefs.ErrNotFound)
	}
	return bytes.Clone(v), nil
}

// Set encodes and stores a value.
func (s *Store) Set(label string, d Discriminator, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return fmt.Errorf("value %q can't be encoded: %w", label, errdefs.ErrInvalidArgument)
	}
	return s.update(func(values map[storeKey]json.RawMessage) {
		values[newStoreKey(label, d)] = raw
	})
}

// encodeValue encodes a value the way it is read back from a state file, with object keys sorted.
func encodeValue(value any) (json.RawMessage, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var v any
	if err = json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Remove deletes a value. Removing an absent value is not an error.
func (s *Store) Remove(label string, d Discriminator) error {
	return s.update(func(values map[storeKey]json.RawMessage) {
		delete(values, newStoreKey(label, d))
	})
}

// Reload reads the state file again and notifies about the values changed outside.
func (s *Store) Reload() error {
	if s.state == nil {
		return nil
	}
	// Hold the lock while reading, so a concurrent update is not reverted.
	s.mx.Lock()
	values, err := s.state.Load()
	if err != nil {
		s.mx.Unlock()
		return err
	}
	events := s.diff(s.values, values)
	s.values = values
	fn := s.notifyFn
	s.mx.Unlock()
	s.notify(fn, events)
	return nil
}

// WatchStateFile reloads the store every time the state file is changed by another process.
// The state file is created if it is missing.
func (s *Store) WatchStateFile() error {
	if s.state == nil {
		return nil
	}
	if err := s.state.EnsureExists(); err != nil {
		return err
	}
	return s.state.Watch(func() {
		if err := s.Reload(); err != nil {
			sizeguard.Log().Warn("failed to reload state file", "file", s.state.Path(), "error", err)
		}
	})
}

// update changes the values. With a state file the change is applied to the values on disk,
// changes made there by other processes are picked up on the way.
func (s *Store) update(fn func(map[storeKey]json.RawMessage)) error {
	s.mx.Lock()
	var next map[storeKey]json.RawMessage
	if s.state != nil {
		var err error
		if next, err = s.state.Update(fn); err != nil {
			s.mx.Unlock()
			return err
		}
	} else {
		next = maps.Clone(s.values)
		fn(next)
	}
	events := s.diff(s.values, next)
	s.values = next
	notifyFn := s.notifyFn
	s.mx.Unlock()
	s.notify(notifyFn, events)
	return nil
}

// diff returns events for changed watched values ordered by key.
func (s *Store) diff(prev, next map[storeKey]json.RawMessage) []EventVariant {
	keys := slices.AppendSeq(slices.Collect(maps.Keys(prev)), maps.Keys(next))
	slices.SortFunc(keys, func(a, b storeKey) int {
		if c := cmp.Compare(a.discrim, b.discrim); c != 0 {
			return c
		}
		return cmp.Compare(a.label, b.label)
	})
	keys = slices.Compact(keys)

	var events []EventVariant
	for _, k := range keys {
		if _, ok := s.watched[k]; !ok {
			continue
		}
		old, existed := prev[k]
		v, exists := next[k]
		switch {
		case !exists:
			events = append(events, ValueRemovedEvent{Label: k.label, Discrim: k.discriminator()})
		case !existed || !bytes.Equal(old, v):
			events = append(events, ValueUpdatedEvent{Label: k.label, Discrim: k.discriminator(), New: bytes.Clone(v), Old: bytes.Clone(old)})
		}
	}
	return events
}

func (s *Store) notify(fn func(EventVariant), events []EventVariant) {
	if fn == nil {
		return
	}
	for _, ev := range events {
		sizeguard.Log().Debug("shared value changed", "event", fmt.Sprintf("%T", ev))
		fn(ev)
	}
}
