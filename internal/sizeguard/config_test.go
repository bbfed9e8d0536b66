package sizeguard

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fsmy map[string]string

func (f fsmy) MapFS() fstest.MapFS {
	m := make(fstest.MapFS)
	for k, v := range f {
		m[k] = &fstest.MapFile{Data: []byte(v)}
	}
	return m
}

func Test_ConfigFromFS(t *testing.T) {
	t.Parallel()

	type testYamlFieldSub struct {
		Field1 string `yaml:"field1"`
		Field2 int    `yaml:"field2"`
	}

	type expValType struct {
		Struct    testYamlFieldSub
		StructErr string
		Ptr       *testYamlFieldSub
		Primitive testYamlFieldSub
	}
	type testCase struct {
		name   string
		fs     fsmy
		expVal expValType
	}

	expValid := expValType{
		Struct:    testYamlFieldSub{"str", 1},
		Ptr:       &testYamlFieldSub{"str3", 3},
		Primitive: testYamlFieldSub{"str2", 2},
	}
	var expEmpty expValType
	expInvalid := expValType{
		StructErr: "error(s) decoding",
	}
	var errCheck = func(t *testing.T, err error, errStr string) {
		if errStr == "" {
			assert.NoError(t, err)
		} else {
			assert.ErrorContains(t, err, errStr)
		}
	}

	tts := []testCase{
		{"valid config yaml", fsmy{"config.yaml": yamlValid}, expValid},
		{"valid empty config yml", fsmy{"config.yml": ""}, expEmpty},
		{"unknown data", fsmy{"config.yml": "na: str"}, expEmpty},
		{"empty dir", fsmy{}, expEmpty},
		{"no config", fsmy{"config.yaml.bkp": yamlValid, "my.config.yaml": yamlValid}, expEmpty},
		{"invalid config", fsmy{"config.yaml": yamlInvalid}, expInvalid},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ConfigFromFS(tt.fs.MapFS(), "/cfg")
			assert.NotNil(t, cfg)
			var err error
			var val1, val1c testYamlFieldSub
			var val1ptr *testYamlFieldSub
			// Check struct.
			err = cfg.Get("test_perm", &val1)
			errCheck(t, err, tt.expVal.StructErr)
			assert.Equal(t, tt.expVal.Struct, val1)

			// Check cache works.
			err = cfg.Get("test_perm", &val1c)
			errCheck(t, err, tt.expVal.StructErr)
			assert.Equal(t, val1, val1c)
			// Check pointer to a struct.
			err = cfg.Get("test_ptr", &val1ptr)
			assert.NoError(t, err)
			assert.Equal(t, tt.expVal.Ptr, val1ptr)

			// Check primitives.
			var val2s string
			var val2int int
			_ = cfg.Get("field1", &val2s)
			_ = cfg.Get("field2", &val2int)
			assert.Equal(t, tt.expVal.Primitive.Field1, val2s)
			assert.Equal(t, tt.expVal.Primitive.Field2, val2int)
		})
	}
}

func Test_ConfigSections(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromFS(fsmy{}.MapFS(), filepath.FromSlash("/cfg"))
	host, err := cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, HostConfig{Driver: "local", StateFile: "state.yaml"}, host)
	guard, err := cfg.Guard()
	require.NoError(t, err)
	assert.Equal(t, GuardConfig{Priority: 10}, guard)
	assert.Equal(t, filepath.FromSlash("/cfg/state.yaml"), cfg.Path(host.StateFile))
	assert.Equal(t, filepath.FromSlash("/var/state.yaml"), cfg.Path(filepath.FromSlash("/var/state.yaml")))

	cfg = ConfigFromFS(fsmy{"config.yaml": yamlSections}.MapFS(), "/cfg")
	host, err = cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, HostConfig{Driver: "headless", StateFile: "state.yaml"}, host)
	guard, err = cfg.Guard()
	require.NoError(t, err)
	assert.Equal(t, GuardConfig{Priority: 20}, guard)
}

const yamlValid = `
field1: str2
field2: 2
test_perm:
  field1: str
  field2: 1
test_ptr:
  field1: str3
  field2: 3
`

const yamlInvalid = `
test_perm:
  field1: str
  field2: [1, 2]
field2: [3, 4]
`

const yamlSections = `
host:
  driver: headless
guard:
  priority: 20
`
