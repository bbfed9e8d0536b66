package sizeguard

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"regexp"
	"sync"

	"github.com/knadh/koanf"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	fsprovider "github.com/knadh/koanf/providers/fs"
)

var configRegex = regexp.MustCompile(`^config\.(yaml|yml)$`)

// Common errors.
var (
	ErrNoConfigFile = errors.New("config file is not found") // ErrNoConfigFile when config file doesn't exist in FS.
)

// Config keys.
const (
	ConfigKeyHost  = "host"  // ConfigKeyHost holds [HostConfig].
	ConfigKeyGuard = "guard" // ConfigKeyGuard holds [GuardConfig].
)

// HostConfig defines which canvas host the guard connects to.
type HostConfig struct {
	Driver    string `yaml:"driver"`     // Driver is a host type, "local" or "headless".
	StateFile string `yaml:"state_file"` // StateFile persists shared values, relative to the config dir.
}

// GuardConfig tunes the guard itself.
type GuardConfig struct {
	Priority uint32 `yaml:"priority"` // Priority of the resize subscription and the suppression.
}

// Config is a sizeguard global config service.
type Config = *config

type cachedProps = map[string]reflect.Value
type config struct {
	mx       sync.Mutex   // mx is a mutex to read/cache values.
	root     fs.FS        // root is a base dir filesystem.
	fname    fs.DirEntry  // fname is a file storing the config.
	rootPath string       // rootPath is a base dir path.
	cached   cachedProps  // cached is a map of cached properties read from a file.
	koanf    *koanf.Koanf // koanf is the driver to read the yaml config.
}

func findConfigFile(root fs.FS) fs.DirEntry {
	dir, err := fs.ReadDir(root, ".")
	if err != nil {
		return nil
	}
	for _, f := range dir {
		if !f.IsDir() && configRegex.MatchString(f.Name()) {
			return f
		}
	}
	return nil
}

// ConfigFromFS parses sizeguard config directory and its content.
// rootPath is the real location of root, used to resolve relative paths.
func ConfigFromFS(root fs.FS, rootPath string) Config {
	return &config{
		root:     root,
		rootPath: rootPath,
		cached:   make(cachedProps),
		fname:    findConfigFile(root),
	}
}

func (cfg *config) ServiceInfo() ServiceInfo {
	return ServiceInfo{}
}

// DirPath returns an absolute path to config directory.
func (cfg *config) DirPath() string {
	return cfg.rootPath
}

// Path provides an absolute path inside the config directory.
// Absolute parts are returned as is.
func (cfg *config) Path(parts ...string) string {
	p := filepath.Join(parts...)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(cfg.rootPath, p))
}

// Get returns a value by key to a parameter v. Parameter v must be a pointer to a value.
// v is left untouched if the key is not defined. Error may be returned on decode.
func (cfg *config) Get(key string, v any) error {
	cfg.mx.Lock()
	defer cfg.mx.Unlock()
	var err error
	if cached, ok := cfg.cached[key]; ok {
		if err, ok = cached.Interface().(error); ok {
			return err
		}
		reflect.ValueOf(v).Elem().Set(cached)
		return nil
	}

	if cfg.fname != nil && cfg.koanf == nil {
		if err = cfg.parse(); err != nil {
			return err
		}
	}
	if cfg.koanf == nil || !cfg.koanf.Exists(key) {
		return nil
	}
	defer func() {
		// Save error result to prevent parsing twice.
		if err != nil {
			cfg.cached[key] = reflect.ValueOf(err)
		}
	}()
	vcopy := reflect.ValueOf(v).Elem()
	prev := reflect.New(vcopy.Type()).Elem()
	prev.Set(vcopy)
	err = cfg.koanf.UnmarshalWithConf(key, v, koanf.UnmarshalConf{Tag: "yaml"})
	if err != nil {
		// Restore the value not to leak partial parsing.
		vcopy.Set(prev)
		return err
	}
	cfg.cached[key] = reflect.ValueOf(v).Elem()
	return nil
}

func (cfg *config) parse() error {
	if cfg.fname == nil {
		return ErrNoConfigFile
	}
	k := koanf.New(".")
	if err := k.Load(fsprovider.Provider(cfg.root, cfg.fname.Name()), yamlparser.Parser()); err != nil {
		return err
	}
	cfg.koanf = k
	return nil
}

// Host returns the host configuration with defaults applied.
func (cfg *config) Host() (HostConfig, error) {
	hc := HostConfig{Driver: "local", StateFile: "state.yaml"}
	err := cfg.Get(ConfigKeyHost, &hc)
	return hc, err
}

// Guard returns the guard configuration with defaults applied.
func (cfg *config) Guard() (GuardConfig, error) {
	gc := GuardConfig{Priority: 10}
	err := cfg.Get(ConfigKeyGuard, &gc)
	return gc, err
}
