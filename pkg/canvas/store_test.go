package canvas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLabel = "!ccanvas-saver-dimensions"

type recorder struct {
	events []EventVariant
}

func (r *recorder) add(ev EventVariant) { r.events = append(r.events, ev) }

func Test_Store(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	rec := &recorder{}
	s.OnChange(rec.add)

	_, err := s.Get(testLabel, Master())
	assert.True(t, errdefs.IsNotFound(err))

	// Changes of values not watched are silent.
	require.NoError(t, s.Set("other", Master(), 1))
	assert.Empty(t, rec.events)

	s.Watch(testLabel, Master())
	require.NoError(t, s.Set(testLabel, Master(), map[string]int{"width": 10, "height": 5}))
	v, err := s.Get(testLabel, Master())
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":10,"height":5}`, string(v))
	require.Len(t, rec.events, 1)
	upd := rec.events[0].(ValueUpdatedEvent)
	assert.Equal(t, testLabel, upd.Label)
	assert.Equal(t, Master(), upd.Discrim)
	assert.Nil(t, upd.Old)

	// The same value is not a change.
	require.NoError(t, s.Set(testLabel, Master(), map[string]int{"width": 10, "height": 5}))
	assert.Len(t, rec.events, 1)

	// Other discriminators are separate values.
	require.NoError(t, s.Set(testLabel, Discriminator{1, 2}, true))
	assert.Len(t, rec.events, 1)

	require.NoError(t, s.Remove(testLabel, Master()))
	require.Len(t, rec.events, 2)
	assert.Equal(t, ValueRemovedEvent{Label: testLabel, Discrim: Master()}, rec.events[1])
	_, err = s.Get(testLabel, Master())
	assert.True(t, errdefs.IsNotFound(err))

	// Removing an absent value is silent.
	require.NoError(t, s.Remove(testLabel, Master()))
	assert.Len(t, rec.events, 2)

	err = s.Set(testLabel, Master(), make(chan int))
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func Test_StoreStateFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state", "state.yaml")
	state := NewStateFile(path)
	require.NoError(t, state.EnsureExists())
	assert.FileExists(t, path)

	s, err := NewStore(state)
	require.NoError(t, err)
	assert.Equal(t, state, s.StateFile())
	require.NoError(t, s.Set(testLabel, Master(), map[string]int{"width": 100, "height": 50}))
	require.NoError(t, s.Set("!ccanvas-saver-ison", Master(), true))

	// Another process sees the values.
	other, err := NewStore(NewStateFile(path))
	require.NoError(t, err)
	v, err := other.Get(testLabel, Master())
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":100,"height":50}`, string(v))
	v, err = other.Get("!ccanvas-saver-ison", Master())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("true"), v)

	// Reload notifies about changes made by another process.
	rec := &recorder{}
	s.OnChange(rec.add)
	s.Watch(testLabel, Master())
	require.NoError(t, s.Reload())
	assert.Empty(t, rec.events)

	require.NoError(t, other.Set(testLabel, Master(), map[string]int{"width": 80, "height": 20}))
	require.NoError(t, s.Reload())
	require.Len(t, rec.events, 1)
	upd := rec.events[0].(ValueUpdatedEvent)
	assert.JSONEq(t, `{"width":80,"height":20}`, string(upd.New))
	assert.JSONEq(t, `{"width":100,"height":50}`, string(upd.Old))

	require.NoError(t, other.Remove(testLabel, Master()))
	require.NoError(t, s.Reload())
	require.Len(t, rec.events, 2)
	assert.IsType(t, ValueRemovedEvent{}, rec.events[1])
}

func Test_StateFileLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	values, err := NewStateFile(filepath.Join(dir, "missing.yaml")).Load()
	require.NoError(t, err)
	assert.Empty(t, values)

	path := filepath.Join(dir, "state.yaml")
	data := `values:
  "1":
    "!ccanvas-saver-dimensions":
      width: 100
      height: 50
  "1/4":
    flag: true
  invalid:
    flag: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	values, err = NewStateFile(path).Load()
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.JSONEq(t, `{"width":100,"height":50}`, string(values[newStoreKey(testLabel, Master())]))
	assert.Equal(t, json.RawMessage("true"), values[newStoreKey("flag", Discriminator{1, 4})])

	require.NoError(t, os.WriteFile(path, []byte("values: [1, 2]\n"), 0600))
	_, err = NewStateFile(path).Load()
	assert.Error(t, err)
}

func Test_StoreStateFileConcurrentWriters(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, NewStateFile(path).EnsureExists())

	// Both stores are loaded before any value is written.
	guardStore, err := NewStore(NewStateFile(path))
	require.NoError(t, err)
	cliStore, err := NewStore(NewStateFile(path))
	require.NoError(t, err)

	require.NoError(t, guardStore.Set("!ccanvas-saver-ison", Master(), true))
	require.NoError(t, cliStore.Set(testLabel, Master(), map[string]int{"width": 100, "height": 50}))

	// The value written by another store is kept and picked up.
	v, err := cliStore.Get("!ccanvas-saver-ison", Master())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("true"), v)

	reopened, err := NewStore(NewStateFile(path))
	require.NoError(t, err)
	v, err = reopened.Get("!ccanvas-saver-ison", Master())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("true"), v)
	v, err = reopened.Get(testLabel, Master())
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":100,"height":50}`, string(v))

	// Removal keeps the values of others too.
	require.NoError(t, guardStore.Remove(testLabel, Master()))
	values, err := NewStateFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, map[storeKey]json.RawMessage{
		newStoreKey("!ccanvas-saver-ison", Master()): json.RawMessage("true"),
	}, values)
}

func Test_StateFileUpdate(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.yaml")
	state := NewStateFile(path)

	// Nothing is written without changes.
	values, err := state.Update(func(map[storeKey]json.RawMessage) {})
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NoFileExists(t, path)

	key := newStoreKey("flag", Master())
	values, err = state.Update(func(v map[storeKey]json.RawMessage) { v[key] = json.RawMessage("false") })
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("false"), values[key])
	assert.FileExists(t, path)
}
