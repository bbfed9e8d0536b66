package sizeguard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LogLevelFromString(t *testing.T) {
	t.Parallel()
	for l, name := range logLevelNames {
		assert.Equal(t, l, LogLevelFromString(name))
		assert.Equal(t, name, l.String())
	}
	assert.Equal(t, LogLevelDisabled, LogLevelFromString("verbose"))
	assert.Equal(t, "NONE", LogLevel(42).String())
}

func Test_Loggers(t *testing.T) {
	t.Parallel()
	type testCase struct {
		name string
		new  func(buf *bytes.Buffer) *Logger
		exp  string
	}
	tts := []testCase{
		{"text", func(buf *bytes.Buffer) *Logger { return NewTextHandlerLogger(buf) }, "msg=\"guard started\""},
		{"json", func(buf *bytes.Buffer) *Logger { return NewJSONHandlerLogger(buf) }, `"msg":"guard started"`},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := tt.new(&buf)
			assert.Equal(t, LogLevelDisabled, l.Level())
			l.Error("guard started")
			assert.Empty(t, buf.String())

			l.SetLevel(LogLevelInfo)
			l.Debug("guard started")
			assert.Empty(t, buf.String())
			l.Info("guard started", "terminal", "80x24")
			assert.Contains(t, buf.String(), tt.exp)
			assert.Contains(t, buf.String(), "80x24")

			var other bytes.Buffer
			l.SetOutput(&other)
			l.Warn("guard started")
			assert.Contains(t, other.String(), tt.exp)
		})
	}
}

func Test_ConsoleLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf)
	l.SetLevel(LogLevelWarn)
	assert.Equal(t, LogLevelWarn, l.Level())
	l.Info("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func Test_EnvVar(t *testing.T) {
	assert.True(t, strings.HasSuffix(EnvVarConfigDir.String(), "_CONFIG_DIR"))
	assert.Equal(t, EnvVarLogLevel.String()+"=DEBUG", EnvVarLogLevel.EnvString("DEBUG"))
	require.NoError(t, EnvVarQuietMode.Set("1"))
	assert.Equal(t, "1", EnvVarQuietMode.Get())
	require.NoError(t, EnvVarQuietMode.Unset())
	assert.Empty(t, EnvVarQuietMode.Get())
}

func Test_Cleanup(t *testing.T) {
	var order []int
	RegisterCleanupFn(func() error { order = append(order, 1); return nil })
	RegisterCleanupFn(func() error { order = append(order, 2); return nil })
	require.NoError(t, Cleanup())
	assert.Equal(t, []int{2, 1}, order)
	require.NoError(t, Cleanup())
	assert.Equal(t, []int{2, 1}, order)
}
