//go:build unix

package sizeguard

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StopSignals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []os.Signal{syscall.SIGINT, syscall.SIGTERM}, stopSignals())
	assert.Equal(t, "TERM", SignalName(syscall.SIGTERM))
	assert.Equal(t, "INT", SignalName(os.Interrupt))
}
