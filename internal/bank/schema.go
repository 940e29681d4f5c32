package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every bank file must satisfy before it is
// decoded. Per-question semantic checks (answer among options) happen after
// decoding via quiz.Question.Valid.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"chapter":  map[string]any{"type": "string"},
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"answer": map[string]any{"type": "string"},
				},
				"required": []any{"id", "question", "options", "answer"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBank checks raw bank bytes against bankSchema.
func validateBank(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return compileErr
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
