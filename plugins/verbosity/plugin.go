// Package verbosity is a plugin of sizeguard to configure log level of the app.
package verbosity

import (
	"errors"
	"math"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

func init() {
	sizeguard.RegisterPlugin(&Plugin{})
}

// Plugin is [sizeguard.Plugin] to set verbosity of the application.
type Plugin struct{}

// PluginInfo implements [sizeguard.Plugin] interface.
func (p Plugin) PluginInfo() sizeguard.PluginInfo {
	return sizeguard.PluginInfo{
		Weight: math.MinInt, // Ensure to be run first.
	}
}

// LogFormat is a enum type for log output format.
type LogFormat string

const (
	LogFormatPretty LogFormat = "pretty" // LogFormatPretty is a default logger output format.
	LogFormatPlain  LogFormat = "plain"  // LogFormatPlain is a plain logger output format.
	LogFormatJSON   LogFormat = "json"   // LogFormatJSON is a json logger output format.
)

// String implements [fmt.Stringer] interface.
func (e *LogFormat) String() string {
	return string(*e)
}

// Set implements [github.com/spf13/pflag.Value] interface.
func (e *LogFormat) Set(v string) error {
	lf := LogFormat(v)
	switch lf {
	case LogFormatPlain, LogFormatJSON, LogFormatPretty:
		*e = lf
		return nil
	default:
		return errors.New(`must be one of "pretty", "plain" or "json"`)
	}
}

// Type implements [github.com/spf13/pflag.Value] interface.
func (e *LogFormat) Type() string {
	return "LogFormat"
}

// OnAppInit implements [sizeguard.OnAppInitPlugin] interface.
func (p Plugin) OnAppInit(app sizeguard.App) error {
	verbosity := 0
	quiet := false
	var logFormat LogFormat

	// Assert we are able to access internal functionality.
	appInternal, ok := app.(sizeguard.AppInternal)
	if !ok {
		return nil
	}
	// Define verbosity flags.
	cmd := appInternal.RootCmd()
	pflags := cmd.PersistentFlags()
	// Make sure not to fail on unknown flags because we are parsing early.
	unkFlagsBkp := pflags.ParseErrorsWhitelist.UnknownFlags
	pflags.ParseErrorsWhitelist.UnknownFlags = true
	pflags.CountVarP(&verbosity, "verbose", "v", "log verbosity level, use -vvvv DEBUG, -vvv INFO, -vv WARN, -v ERROR")
	pflags.VarP(&logFormat, "log-format", "", "log format, may be pretty, plain or json (default pretty)")
	pflags.BoolVarP(&quiet, "quiet", "q", false, "disable output to the console")

	// Parse available flags.
	err := pflags.Parse(appInternal.CmdEarlyParsed().Args)
	if sizeguard.IsCommandErrHelp(err) {
		return nil
	}
	if err != nil {
		return err
	}
	pflags.ParseErrorsWhitelist.UnknownFlags = unkFlagsBkp

	// Flags take precedence over the environment.
	if !pflags.Changed("quiet") && sizeguard.EnvVarQuietMode.Get() != "" {
		quiet = true
	}
	if !pflags.Changed("log-format") {
		if err = logFormat.Set(sizeguard.EnvVarLogFormat.Get()); err != nil {
			logFormat = LogFormatPretty
		}
	}
	level := logLevelFlagInt(verbosity)
	if !pflags.Changed("verbose") {
		level = sizeguard.LogLevelFromString(sizeguard.EnvVarLogLevel.Get())
	}

	sizeguard.Term().EnableOutput()
	if quiet {
		sizeguard.Term().DisableOutput()
		app.SetStreams(sizeguard.NoopStreams())
	}

	streams := app.Streams()
	// Set terminal output.
	sizeguard.Term().SetOutput(streams.Out())
	// Enable logger. Stdout may be owned by the canvas, logs go to stderr.
	if level != sizeguard.LogLevelDisabled {
		var logger *sizeguard.Logger
		switch logFormat {
		case LogFormatPlain:
			logger = sizeguard.NewTextHandlerLogger(streams.Err())
		case LogFormatJSON:
			logger = sizeguard.NewJSONHandlerLogger(streams.Err())
		default:
			logger = sizeguard.NewConsoleLogger(streams.Err())
		}
		sizeguard.SetLogger(logger)
	}
	sizeguard.Log().SetLevel(level)
	cmd.SetOut(streams.Out())
	cmd.SetErr(streams.Err())
	return nil
}

func logLevelFlagInt(v int) sizeguard.LogLevel {
	switch v {
	case 0:
		return sizeguard.LogLevelDisabled
	case 1:
		return sizeguard.LogLevelError
	case 2:
		return sizeguard.LogLevelWarn
	case 3:
		return sizeguard.LogLevelInfo
	default:
		return sizeguard.LogLevelDebug
	}
}
