package sizeguard

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"

	flag "github.com/spf13/pflag"
)

// EnsurePath creates all directories in the path.
func EnsurePath(parts ...string) error {
	p := filepath.Clean(filepath.Join(parts...))
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return os.MkdirAll(p, 0750)
	}
	return nil
}

// MustAbs returns absolute filepath and panics on error.
func MustAbs(path string) string {
	abs, err := filepath.Abs(filepath.Clean(filepath.FromSlash(path)))
	if err != nil {
		panic(err)
	}
	return abs
}

// GetTypePkgPathName returns type package path and name for internal usage.
func GetTypePkgPathName(v any) (string, string) {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath(), t.Name()
}

// IsCommandErrHelp checks if an error is a flag help err used for intercommunication.
func IsCommandErrHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
