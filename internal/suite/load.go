// internal/suite/load.go
package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// suiteSchema is the JSON Schema every suite document must satisfy before
// decoding. Validating at this boundary lets the formatter trust scenario
// shapes downstream instead of null-checking every field.
const suiteSchema = `{
  "type": "object",
  "required": ["scenarios", "system"],
  "properties": {
    "scenarios": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "run_times", "run_time_statistics"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "input": {"type": "string"},
          "run_times": {"type": "array", "items": {"type": "number"}},
          "run_time_statistics": {"$ref": "#/definitions/stats"},
          "memory_statistics": {"$ref": "#/definitions/stats"}
        }
      }
    },
    "system": {
      "type": "object",
      "properties": {
        "os": {"type": "string"},
        "cpu": {"type": "string"},
        "cpu_count": {"type": "integer"},
        "available_memory": {"type": "string"},
        "tool_version": {"type": "string"}
      }
    }
  },
  "definitions": {
    "stats": {
      "type": "object",
      "required": ["average", "sample_size"],
      "properties": {
        "average": {"type": "number"},
        "ips": {"type": "number"},
        "std_dev": {"type": "number"},
        "std_dev_ratio": {"type": "number"},
        "median": {"type": "number"},
        "percentile_99": {"type": "number"},
        "minimum": {"type": "number"},
        "maximum": {"type": "number"},
        "sample_size": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

// Load reads a suite JSON document from r, validates it against the suite
// schema, and decodes it.
func Load(r io.Reader) (*Suite, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read suite JSON: %w", err)
	}
	return parse(raw)
}

// LoadFile reads and decodes the suite JSON file at path.
func LoadFile(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read suite file %s: %w", path, err)
	}
	su, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse suite file %s: %w", path, err)
	}
	return su, nil
}

func parse(raw []byte) (*Suite, error) {
	schemaLoader := gojsonschema.NewStringLoader(suiteSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("suite JSON failed validation: %s", strings.Join(details, "; "))
	}

	var su Suite
	if err := json.Unmarshal(raw, &su); err != nil {
		return nil, fmt.Errorf("unable to decode suite JSON: %w", err)
	}
	return &su, nil
}
