package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// ErrMalformed is returned when a value is not a minimum size.
var ErrMalformed = errors.New("malformed minimum size")

const schemaID = "https://launchrctl.github.io/sizeguard/minimum-size.schema.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["width", "height"],
  "properties": {
    "width": {"type": "integer", "minimum": 0, "maximum": 4294967295},
    "height": {"type": "integer", "minimum": 0, "maximum": 4294967295}
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err = c.AddResource(schemaID, doc); err != nil {
		return nil, err
	}
	return c.Compile(schemaID)
})

// Decode parses a json encoded minimum size, for example {"width": 100, "height": 50}.
// Unknown properties are ignored.
func Decode(raw []byte) (MinimumSize, error) {
	var m MinimumSize
	if len(bytes.TrimSpace(raw)) == 0 {
		return Default(), fmt.Errorf("%w: empty value", ErrMalformed)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	sch, err := compiledSchema()
	if err != nil {
		// The schema is static, it must compile.
		panic(err)
	}
	if err = sch.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return Default(), fmt.Errorf("%w: %s", ErrMalformed, strings.Join(validationMessages(verr), "; "))
		}
		return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err = json.Unmarshal(raw, &m); err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return m, nil
}

// DecodeOrDefault parses a minimum size and returns the default one on any error.
func DecodeOrDefault(raw []byte) MinimumSize {
	m, err := Decode(raw)
	if err != nil {
		return Default()
	}
	return m
}

// validationMessages flattens nested validation errors to sorted "/path: message" strings.
func validationMessages(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		return []string{"/" + strings.Join(err.InstanceLocation, "/") + ": " + err.ErrorKind.LocalizedString(sizeguard.DefaultTextPrinter)}
	}
	var res []string
	for _, c := range err.Causes {
		res = append(res, validationMessages(c)...)
	}
	sort.Strings(res)
	return res
}

func logRejected(err error) {
	sizeguard.Log().Debug("minimum size value is rejected", "error", err)
}
