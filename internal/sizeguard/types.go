// Package sizeguard provides common app functionality.
package sizeguard

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// PkgPath is a main module path.
const PkgPath = "github.com/launchrctl/sizeguard"

// Command is a type alias for [cobra.Command].
// to reduce direct dependency on cobra in packages.
type Command = cobra.Command

// Positional arguments validators of [Command].
var (
	NoArgs    = cobra.NoArgs
	ExactArgs = cobra.ExactArgs
)

// App stores global application state.
type App interface {
	// Name returns app name.
	Name() string
	// Streams returns application cli.
	Streams() Streams
	// SetStreams sets application streams.
	SetStreams(s Streams)
	// AddService registers a service in the app.
	// Panics if a service is not unique.
	AddService(s Service)
	// GetService retrieves a service of type [v] and assigns it to [v].
	// Panics if a service is not found.
	GetService(v any)
}

// AppInternal is an extension to access cobra related functionality of the app.
// It is intended for internal use only to prevent coupling on volatile functionality.
type AppInternal interface {
	App
	RootCmd() *Command
	CmdEarlyParsed() CmdEarlyParsed
}

// CmdEarlyParsed holds the arguments of the command line available before cobra runs.
type CmdEarlyParsed struct {
	Args      []string // Args are the os arguments without the binary name.
	IsVersion bool     // IsVersion is true when only the version is requested.
}

// PluginInfo provides information about the plugin and is used as a unique data to identify a plugin.
type PluginInfo struct {
	// Weight defines the order of plugins calling, lower is earlier.
	Weight   int
	pkgPath  string
	typeName string
}

func (p PluginInfo) String() string {
	return p.pkgPath + "." + p.typeName
}

// InitPluginInfo sets private fields for internal usage only.
func InitPluginInfo(pi *PluginInfo, p Plugin) {
	pi.pkgPath, pi.typeName = GetTypePkgPathName(p)
}

// PluginsMap is a type alias for plugins map.
type PluginsMap = map[PluginInfo]Plugin

// Plugin is a common interface for sizeguard plugins.
type Plugin interface {
	// PluginInfo requests a type to provide information about the plugin.
	PluginInfo() PluginInfo
}

// OnAppInitPlugin is an interface to implement a plugin for app initialisation.
type OnAppInitPlugin interface {
	Plugin
	// OnAppInit is hook function called on application initialisation.
	// Plugins may save app global object, retrieve or provide services here.
	OnAppInit(app App) error
}

// CobraPlugin is an interface to implement a plugin for cobra.
type CobraPlugin interface {
	Plugin
	// CobraAddCommands is a hook called when cobra root command is available.
	// Plugins may register its command line commands here.
	CobraAddCommands(root *Command) error
}

// registeredPlugins is a store for plugins on init.
var registeredPlugins = make(PluginsMap)

// RegisterPlugin add a plugin to global pull.
func RegisterPlugin(p Plugin) {
	info := p.PluginInfo()
	InitPluginInfo(&info, p)
	if _, ok := registeredPlugins[info]; ok {
		panic(fmt.Errorf("plugin %q already registered, please, review the build", info))
	}
	registeredPlugins[info] = p
}

// PluginManager handles plugins.
type PluginManager interface {
	Service
	All() PluginsMap
}

// NewPluginManagerWithRegistered creates [PluginManager] with registered plugins.
func NewPluginManagerWithRegistered() PluginManager {
	return pluginManagerMap(registeredPlugins)
}

type pluginManagerMap PluginsMap

func (m pluginManagerMap) ServiceInfo() ServiceInfo { return ServiceInfo{} }
func (m pluginManagerMap) All() PluginsMap          { return m }

// MapItem is a helper struct used to return an ordered map as a slice.
type MapItem[K, V any] struct {
	K K // K is a key of the map item.
	V V // V is a value of the map item.
}

// GetPluginByType returns plugins implementing T ordered by weight.
func GetPluginByType[T Plugin](mngr PluginManager) []MapItem[PluginInfo, T] {
	res := make([]MapItem[PluginInfo, T], 0, 4)
	for info, p := range mngr.All() {
		if v, ok := p.(T); ok {
			res = append(res, MapItem[PluginInfo, T]{K: info, V: v})
		}
	}
	slices.SortFunc(res, func(a, b MapItem[PluginInfo, T]) int {
		if c := cmp.Compare(a.K.Weight, b.K.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.K.String(), b.K.String())
	})
	return res
}

// ExitError is an error holding an error code of executed command.
type ExitError struct {
	code int
	msg  string
}

// NewExitError creates a new ExitError.
func NewExitError(code int, msg string) error {
	return ExitError{code, msg}
}

// Error implements error interface.
func (e ExitError) Error() string {
	return e.msg
}

// ExitCode returns the exit code.
func (e ExitError) ExitCode() int {
	return e.code
}
