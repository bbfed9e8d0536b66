package sizeguard

import (
	"fmt"
	"runtime"
	"runtime/debug"
	_ "unsafe" // Use unsafe to have linked variables from the main package.
)

// Link variables to the main package to get the values from ldflags.
var (
	//go:linkname name github.com/launchrctl/sizeguard.name
	name string
	//go:linkname version github.com/launchrctl/sizeguard.version
	version    string
	appVersion *AppVersion
)

// AppVersion stores application version.
type AppVersion struct {
	Name      string
	Version   string
	OS        string
	Arch      string
	GoVersion string
}

// Version provides app version info.
func Version() *AppVersion {
	if appVersion == nil {
		appVersion = NewVersion(name, version)
	}
	return appVersion
}

// NewVersion creates version info. The module version is used if ver is not set by ldflags.
func NewVersion(name, ver string) *AppVersion {
	v := &AppVersion{
		Name:    name,
		Version: ver,
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		v.GoVersion = bi.GoVersion
		if (ver == "" || ver == "dev") && bi.Main.Path == PkgPath && bi.Main.Version != "(devel)" && bi.Main.Version != "" {
			v.Version = bi.Main.Version
		}
	}
	return v
}

// String implements [fmt.Stringer] interface.
func (v *AppVersion) String() string {
	return v.Full()
}

// Short outputs a short version string.
func (v *AppVersion) Short() string {
	return fmt.Sprintf("%s version %s %s/%s", v.Name, v.Version, v.OS, v.Arch)
}

// Full outputs version string in a full format.
func (v *AppVersion) Full() string {
	if v.GoVersion == "" {
		return v.Short() + "\n"
	}
	return fmt.Sprintf("%s\nBuilt with %s\n", v.Short(), v.GoVersion)
}
