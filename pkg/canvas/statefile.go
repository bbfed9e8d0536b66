package canvas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/knadh/koanf"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"gopkg.in/yaml.v3"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// stateKeyDelim is a koanf key delimiter. It never appears in labels or discriminators,
// so stored values are read back unsplit.
const stateKeyDelim = "\x1f"

const stateKeyValues = "values"

// stateDocument is the yaml layout of a state file:
//
//	values:
//	  "1":
//	    "!ccanvas-saver-dimensions": {width: 100, height: 50}
type stateDocument struct {
	Values map[string]map[string]any `yaml:"values"`
}

// StateFile persists shared values between processes.
// Writers replace the file atomically under an exclusive lock of a sibling ".lock" file.
type StateFile struct {
	path string
}

// NewStateFile creates a state file handle.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

func (sf *StateFile) lock() (*sizeguard.LockedFile, error) {
	lf := sizeguard.NewLockedFile(sf.path + ".lock")
	if err := lf.Open(os.O_RDWR|os.O_CREATE, 0600); err != nil {
		return nil, fmt.Errorf("can't lock state file: %w", err)
	}
	return lf, nil
}

// Load reads all values. A missing file has no values.
func (sf *StateFile) Load() (map[storeKey]json.RawMessage, error) {
	lf, err := sf.lock()
	if err != nil {
		return nil, err
	}
	defer lf.Close()
	return sf.load()
}

// Update reads the values, changes them with fn and saves the result under one lock,
// so values written by other processes in between are kept.
// The file is not written if fn changes nothing. The resulting values are returned.
func (sf *StateFile) Update(fn func(map[storeKey]json.RawMessage)) (map[storeKey]json.RawMessage, error) {
	lf, err := sf.lock()
	if err != nil {
		return nil, err
	}
	defer lf.Close()

	current, err := sf.load()
	if err != nil {
		return nil, err
	}
	next := maps.Clone(current)
	fn(next)
	if maps.EqualFunc(current, next, bytes.Equal) {
		return next, nil
	}
	if err = sf.save(next); err != nil {
		return nil, err
	}
	return next, nil
}

func (sf *StateFile) load() (map[storeKey]json.RawMessage, error) {
	values := make(map[storeKey]json.RawMessage)
	k := koanf.New(stateKeyDelim)
	err := k.Load(file.Provider(sf.path), yamlparser.Parser())
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read state file %q: %w", sf.path, err)
	}
	var doc stateDocument
	if err = k.UnmarshalWithConf(stateKeyValues, &doc.Values, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("state file %q is malformed: %w", sf.path, err)
	}
	for discrim, labels := range doc.Values {
		if _, err = ParseDiscriminator(discrim); err != nil {
			sizeguard.Log().Warn("skipping values of an invalid discriminator", "file", sf.path, "error", err)
			continue
		}
		for label, v := range labels {
			raw, err := json.Marshal(v)
			if err != nil {
				sizeguard.Log().Warn("skipping a value not representable in json", "file", sf.path, "label", label, "error", err)
				continue
			}
			values[storeKey{discrim: discrim, label: label}] = raw
		}
	}
	return values, nil
}

// save replaces all values, the lock must be held.
func (sf *StateFile) save(values map[storeKey]json.RawMessage) error {
	var err error
	doc := stateDocument{Values: make(map[string]map[string]any)}
	for k, raw := range values {
		var v any
		if err = json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("value %q is not valid json: %w", k.label, err)
		}
		if doc.Values[k.discrim] == nil {
			doc.Values[k.discrim] = make(map[string]any)
		}
		doc.Values[k.discrim][k.label] = v
	}

	tmp, err := os.CreateTemp(filepath.Dir(sf.path), filepath.Base(sf.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	enc := yaml.NewEncoder(tmp)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = enc.Close(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), sf.path)
}

// EnsureExists creates an empty state file if it is missing.
func (sf *StateFile) EnsureExists() error {
	if err := sizeguard.EnsurePath(filepath.Dir(sf.path)); err != nil {
		return err
	}
	lf, err := sf.lock()
	if err != nil {
		return err
	}
	defer lf.Close()
	if _, err = os.Stat(sf.path); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return sf.save(nil)
}

// Watch calls onChange every time the file is changed on disk.
// The file must exist.
func (sf *StateFile) Watch(onChange func()) error {
	return file.Provider(sf.path).Watch(func(_ any, err error) {
		if err != nil {
			sizeguard.Log().Warn("state file watcher stopped", "file", sf.path, "error", err)
			return
		}
		onChange()
	})
}
