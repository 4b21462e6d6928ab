package openapi

import (
	_ "embed"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed openapi.schema.json
var structuralSchema string

// documentSchema is compiled once at process start; the embedded resource is
// under our control, so a compile failure is a programming error.
var documentSchema = mustCompileDocumentSchema()

func mustCompileDocumentSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource("openapi.schema.json", strings.NewReader(structuralSchema)); err != nil {
		panic(fmt.Sprintf("add openapi structural schema: %v", err))
	}
	return compiler.MustCompile("openapi.schema.json")
}

// validateDocument checks a decoded document against the structural schema
// before any table derivation happens. The value must follow encoding/json
// conventions (map[string]interface{}, []interface{}, float64, ...).
func validateDocument(doc any) error {
	if err := documentSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return nil
}
