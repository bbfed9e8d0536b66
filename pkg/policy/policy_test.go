package policy

import (
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode(t *testing.T) {
	t.Parallel()
	type testCase struct {
		name string
		raw  string
		exp  MinimumSize
		err  bool
	}
	tts := []testCase{
		{"valid", `{"width": 100, "height": 50}`, MinimumSize{100, 50}, false},
		{"zero", `{"width": 0, "height": 0}`, MinimumSize{}, false},
		{"max", `{"width": 4294967295, "height": 1}`, MinimumSize{4294967295, 1}, false},
		{"extra properties", `{"width": 10, "height": 5, "colour": "red"}`, MinimumSize{10, 5}, false},
		{"empty", ``, Default(), true},
		{"spaces", "  \n", Default(), true},
		{"not json", `100x50`, Default(), true},
		{"missing height", `{"width": 100}`, Default(), true},
		{"string width", `{"width": "100", "height": 50}`, Default(), true},
		{"negative", `{"width": -1, "height": 50}`, Default(), true},
		{"overflow", `{"width": 4294967296, "height": 50}`, Default(), true},
		{"fraction", `{"width": 10.5, "height": 50}`, Default(), true},
		{"array", `[100, 50]`, Default(), true},
		{"null", `null`, Default(), true},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Decode([]byte(tt.raw))
			assert.Equal(t, tt.exp, m)
			if tt.err {
				assert.ErrorIs(t, err, ErrMalformed)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.exp, DecodeOrDefault([]byte(tt.raw)))
		})
	}
}

func Test_DecodeMessage(t *testing.T) {
	t.Parallel()
	_, err := Decode([]byte(`{"width": "wide"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/width")
}

func Test_Violated(t *testing.T) {
	t.Parallel()
	m := MinimumSize{Width: 100, Height: 50}
	assert.True(t, m.Violated(80, 24))
	assert.True(t, m.Violated(100, 49))
	assert.True(t, m.Violated(99, 50))
	assert.False(t, m.Violated(100, 50))
	assert.False(t, m.Violated(120, 60))

	d := Default()
	assert.True(t, d.IsDefault())
	assert.False(t, d.Violated(0, 0))
	assert.Equal(t, "100x50", m.String())
}

func Test_Store(t *testing.T) {
	t.Parallel()
	s := NewStore()
	assert.Equal(t, Default(), s.Current())

	assert.True(t, s.ApplyUpdate([]byte(`{"width": 100, "height": 50}`)))
	assert.Equal(t, MinimumSize{100, 50}, s.Current())

	// A malformed update keeps the previous value.
	assert.False(t, s.ApplyUpdate([]byte(`{"width": 1}`)))
	assert.Equal(t, MinimumSize{100, 50}, s.Current())

	s.ApplyRemoval()
	assert.Equal(t, Default(), s.Current())

	s.InitialLoad([]byte(`{"width": 20, "height": 10}`), nil)
	assert.Equal(t, MinimumSize{20, 10}, s.Current())
	s.InitialLoad(nil, errdefs.ErrNotFound)
	assert.Equal(t, Default(), s.Current())
	s.InitialLoad([]byte(`{"width": 20, "height": 10}`), nil)
	s.InitialLoad([]byte(`broken`), nil)
	assert.Equal(t, Default(), s.Current())
}
