package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://topic-catalog.json"

// documentSchema constrains the shape of a catalog document.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"topics"},
	"properties": map[string]any{
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"$ref": "#/$defs/topic"},
		},
	},
	"$defs": map[string]any{
		"topic": map[string]any{
			"type":                 "object",
			"required":             []any{"keyword", "explanations", "mcqs"},
			"additionalProperties": false,
			"properties": map[string]any{
				"keyword": map[string]any{
					"type":    "string",
					"pattern": "^[a-z]+$",
				},
				"name": map[string]any{"type": "string"},
				"explanations": map[string]any{
					"type":                 "object",
					"required":             []any{"standard"},
					"additionalProperties": false,
					"properties": map[string]any{
						"standard": map[string]any{"type": "string", "minLength": 1},
						"advanced": map[string]any{"type": "string"},
						"refined":  map[string]any{"type": "string"},
					},
				},
				"mcqs": map[string]any{
					"type":     "array",
					"minItems": 3,
					"maxItems": 3,
					"items":    map[string]any{"$ref": "#/$defs/mcq"},
				},
			},
		},
		"mcq": map[string]any{
			"type":                 "object",
			"required":             []any{"question", "options", "answer"},
			"additionalProperties": false,
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":        "array",
					"minItems":    4,
					"maxItems":    4,
					"uniqueItems": true,
					"items":       map[string]any{"type": "string", "minLength": 1},
				},
				"answer": map[string]any{"type": "string", "minLength": 1},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles documentSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the Go literal through encoding/json.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks a raw YAML document against documentSchema.
func validateSchema(data []byte) error {
	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	// yaml.v3 yields Go ints and map[string]any; normalise to the JSON
	// value model the validator expects.
	raw, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("normalise catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("normalise catalog: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	return nil
}
