package guardcmd

import (
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchrctl/sizeguard/pkg/canvas"
	"github.com/launchrctl/sizeguard/pkg/guard"
	"github.com/launchrctl/sizeguard/pkg/policy"
)

func Test_ParseMinimumSize(t *testing.T) {
	t.Parallel()
	m, err := parseMinimumSize("100", "50")
	require.NoError(t, err)
	assert.Equal(t, policy.MinimumSize{Width: 100, Height: 50}, m)

	for _, args := range [][2]string{{"-1", "50"}, {"100", "x"}, {"4294967296", "1"}} {
		_, err = parseMinimumSize(args[0], args[1])
		assert.True(t, errdefs.IsInvalidArgument(err), args)
	}
}

func Test_ReadStoredValues(t *testing.T) {
	t.Parallel()
	store := canvas.NewMemoryStore()

	m, err := readMinimumSize(store)
	require.NoError(t, err)
	assert.Equal(t, policy.Default(), m)
	active, err := readActive(store)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.Set(policy.LabelDimensions, canvas.Master(), policy.MinimumSize{Width: 10, Height: 5}))
	require.NoError(t, store.Set(guard.LabelActive, canvas.Master(), true))
	m, err = readMinimumSize(store)
	require.NoError(t, err)
	assert.Equal(t, policy.MinimumSize{Width: 10, Height: 5}, m)
	active, err = readActive(store)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.Set(policy.LabelDimensions, canvas.Master(), "10x5"))
	require.NoError(t, store.Set(guard.LabelActive, canvas.Master(), "yes"))
	m, err = readMinimumSize(store)
	assert.ErrorIs(t, err, policy.ErrMalformed)
	assert.Equal(t, policy.Default(), m)
	_, err = readActive(store)
	assert.Error(t, err)
}
