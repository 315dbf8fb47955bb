// internal/appconfig/schema.go
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "dataDir":        { "type": "string" },
    "imgDir":         { "type": "string" },
    "logFile":        { "type": "string" },
    "debug":          { "type": "boolean" },
    "workers":        { "type": "integer", "minimum": 0 },
    "groupBy":        { "type": "string" },
    "format":         { "type": "string", "enum": ["", "png", "svg", "pdf"] },
    "scale":          { "type": "number", "minimum": 0 },
    "analysisOutput": { "type": "string" }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// Validate checks a JSON config document against the config schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("invalid config JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("config does not match schema: %s", strings.Join(msgs, "; "))
}

// ValidateFile validates the config file at path. A missing file is not an
// error since every setting has a default.
func ValidateFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
