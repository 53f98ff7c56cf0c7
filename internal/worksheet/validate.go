package worksheet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://worksheet.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// InvalidWorksheetError reports JSON that does not match the worksheet
// schema.
type InvalidWorksheetError struct {
	Content []byte
	Err     error
}

func (e *InvalidWorksheetError) Error() string {
	return fmt.Sprintf("invalid worksheet: %v", e.Err)
}

func (e *InvalidWorksheetError) Unwrap() error {
	return e.Err
}

// Validate checks raw JSON against the worksheet schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidWorksheetError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := worksheetSchema()
	if err != nil {
		return fmt.Errorf("compile worksheet schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return &InvalidWorksheetError{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func worksheetSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not bytes.
		var def any
		if compileErr = json.Unmarshal(schemaJSON, &def); compileErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource(schemaURL, def); compileErr != nil {
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
