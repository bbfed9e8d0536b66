package sizeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EarlyPeek(t *testing.T) {
	t.Parallel()
	type testCase struct {
		name    string
		args    []string
		version bool
	}
	tts := []testCase{
		{"no args", nil, false},
		{"version", []string{"--version"}, true},
		{"version with flags", []string{"-v", "--version"}, true},
		{"command", []string{"min", "show"}, false},
		{"command with version flag", []string{"min", "--version"}, false},
		{"unknown flags", []string{"--log-format", "json", "status"}, false},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := earlyPeek(tt.args)
			assert.Equal(t, tt.version, res.IsVersion)
			assert.Equal(t, tt.args, res.Args)
		})
	}
}
