package imports

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// descriptorSchema validates the JSON manifest of an import app.
const descriptorSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "name",
    "slug",
    "version"
  ],
  "properties": {
    "name": {
      "type": "string",
      "minLength": 1,
      "description": "Display name of the import app."
    },
    "slug": {
      "type": "string",
      "pattern": "^[a-z0-9][a-z0-9-]*$",
      "description": "URL-safe identifier of the import app."
    },
    "version": {
      "type": "string",
      "pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+$",
      "description": "Semantic version of the import app."
    },
    "description": {
      "type": "string",
      "description": "Optional one-line summary shown in listings."
    },
    "path_required": {
      "type": "boolean",
      "description": "Whether the app needs an input path to run."
    }
  },
  "additionalProperties": false
}`

var descriptorSchemaLoader = gojsonschema.NewStringLoader(descriptorSchema)

// Descriptor is the declarative manifest of an import app: how the app is
// listed and whether it needs an input path. Apps importing from sources
// outside the platform set PathRequired to false.
type Descriptor struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Version      string `json:"version"`
	Description  string `json:"description,omitempty"`
	PathRequired bool   `json:"path_required"`
}

// LoadDescriptor reads and validates an app manifest.
func LoadDescriptor(path string) (*Descriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}

	if err := validateDescriptor(content); err != nil {
		return nil, err
	}

	var descriptor Descriptor
	if err := json.Unmarshal(content, &descriptor); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}

	return &descriptor, nil
}

// Validate checks the descriptor against the manifest schema.
func (d *Descriptor) Validate() error {
	content, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize descriptor: %w", err)
	}
	return validateDescriptor(content)
}

func validateDescriptor(content []byte) error {
	result, err := gojsonschema.Validate(descriptorSchemaLoader, gojsonschema.NewBytesLoader(content))
	if err != nil {
		return fmt.Errorf("failed to validate descriptor: %w", err)
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, issue.String())
		}
		return fmt.Errorf("invalid descriptor: %s", strings.Join(issues, "; "))
	}

	return nil
}
