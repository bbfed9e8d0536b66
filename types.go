// Package sizeguard has application implementation.
package sizeguard

import (
	"io"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// PkgPath is a main module path.
const PkgPath = sizeguard.PkgPath

// Log levels.
const (
	LogLevelDisabled = sizeguard.LogLevelDisabled // LogLevelDisabled does never print.
	LogLevelDebug    = sizeguard.LogLevelDebug    // LogLevelDebug is the log level for debug.
	LogLevelInfo     = sizeguard.LogLevelInfo     // LogLevelInfo is the log level for info.
	LogLevelWarn     = sizeguard.LogLevelWarn     // LogLevelWarn is the log level for warnings.
	LogLevelError    = sizeguard.LogLevelError    // LogLevelError is the log level for errors.
)

// Variables for version provided by ldflags.
var (
	name    = "sizeguard"
	version = "dev"
)

// Application environment variables.
const (
	// EnvVarConfigDir overrides the directory holding config.yaml and the state file.
	EnvVarConfigDir = sizeguard.EnvVarConfigDir
	// EnvVarLogLevel defines currently set log level.
	EnvVarLogLevel = sizeguard.EnvVarLogLevel
	// EnvVarLogFormat defines currently set log format, see --log-format flag.
	EnvVarLogFormat = sizeguard.EnvVarLogFormat
	// EnvVarQuietMode defines if the application should output anything, see --quiet flag.
	EnvVarQuietMode = sizeguard.EnvVarQuietMode
)

// Re-export types aliases for usage by external modules.
type (
	// App stores global application state.
	App = sizeguard.App
	// AppVersion stores application version.
	AppVersion = sizeguard.AppVersion
	// Command is an application command to execute.
	Command = sizeguard.Command

	// Logger is a logger and its config holder struct.
	Logger = sizeguard.Logger
	// LogLevel is the importance or severity of a log event.
	LogLevel = sizeguard.LogLevel

	// Terminal prints formatted text to the console.
	Terminal = sizeguard.Terminal
	// Streams is an interface which exposes the standard input and output streams.
	Streams = sizeguard.Streams

	// PluginInfo provides information about the plugin and is used as a unique data to identify a plugin.
	PluginInfo = sizeguard.PluginInfo
	// Plugin is a common interface for sizeguard plugins.
	Plugin = sizeguard.Plugin
	// OnAppInitPlugin is an interface to implement a plugin for app initialisation.
	OnAppInitPlugin = sizeguard.OnAppInitPlugin
	// CobraPlugin is an interface to implement a plugin for cobra.
	CobraPlugin = sizeguard.CobraPlugin
	// PluginManager handles plugins.
	PluginManager = sizeguard.PluginManager
	// ServiceInfo provides service info for its initialization.
	ServiceInfo = sizeguard.ServiceInfo
	// Service is a common interface for a service to register.
	Service = sizeguard.Service
	// Config handles application configuration.
	Config = sizeguard.Config

	// ExitError is an error holding an error code of executed command.
	ExitError = sizeguard.ExitError
	// EnvVar defines an environment variable prefixed with the app name.
	EnvVar = sizeguard.EnvVar
)

// Version provides app version info.
func Version() *AppVersion { return sizeguard.Version() }

// RegisterPlugin add a plugin to global pull.
func RegisterPlugin(p Plugin) { sizeguard.RegisterPlugin(p) }

// Term returns default [Terminal] to print application messages to the console.
func Term() *Terminal { return sizeguard.Term() }

// StandardStreams sets a cli in, out and err streams with the standard streams.
func StandardStreams() Streams { return sizeguard.StandardStreams() }

// Log returns the default logger.
func Log() *Logger { return sizeguard.Log() }

// SetLogger sets the default logger.
func SetLogger(l *Logger) { sizeguard.SetLogger(l) }

// NewConsoleLogger creates a default console logger.
func NewConsoleLogger(w io.Writer) *Logger { return sizeguard.NewConsoleLogger(w) }

// NewExitError creates a new ExitError.
func NewExitError(code int, msg string) error { return sizeguard.NewExitError(code, msg) }

// RegisterCleanupFn saves a function to be executed on Cleanup.
// It is run on the termination of the application.
func RegisterCleanupFn(fn func() error) { sizeguard.RegisterCleanupFn(fn) }

// MustAbs returns absolute filepath and panics on error.
func MustAbs(path string) string { return sizeguard.MustAbs(path) }
