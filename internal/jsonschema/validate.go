package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentURL is the in-memory location the validated document is registered under
const documentURL = "https://modelgen.local/schemas/document.json"

// ValidationError is one problem found while meta-validating a schema
type ValidationError struct {
	Message          string `json:"message"`
	KeywordLocation  string `json:"keywordLocation,omitempty"`
	InstanceLocation string `json:"instanceLocation,omitempty"`
}

// ValidationResult summarises a validation run. Errors is empty when Valid is true.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// Validate checks that doc is a well-formed JSON Schema by compiling it against
// the meta-schema of its draft (2020-12 when $schema is absent). doc may be raw
// JSON bytes or any value that marshals to JSON. It never fails: every problem,
// including a fault inside the validator, is reported in the result.
func Validate(doc any) ValidationResult {
	switch v := doc.(type) {
	case []byte:
		return ValidateJSON(v)
	case json.RawMessage:
		return ValidateJSON(v)
	case nil:
		return invalid("schema document is empty")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return invalid(fmt.Sprintf("schema document is not JSON serialisable: %v", err))
	}
	return ValidateJSON(data)
}

// ValidateJSON is Validate for a raw JSON document
func ValidateJSON(data []byte) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = invalid(fmt.Sprintf("schema validation failed: %v", r))
		}
	}()

	if len(bytes.TrimSpace(data)) == 0 {
		return invalid("schema document is empty")
	}

	compiler := jsonschemav5.NewCompiler()
	compiler.Draft = jsonschemav5.Draft2020

	if err := compiler.AddResource(documentURL, bytes.NewReader(data)); err != nil {
		return invalid(fmt.Sprintf("invalid JSON: %v", err))
	}
	if _, err := compiler.Compile(documentURL); err != nil {
		return fromCompileError(err)
	}

	return ValidationResult{Valid: true, Errors: []ValidationError{}}
}

func fromCompileError(err error) ValidationResult {
	var verr *jsonschemav5.ValidationError
	if !errors.As(err, &verr) {
		return invalid(err.Error())
	}

	basic := verr.BasicOutput()
	result := ValidationResult{Valid: false, Errors: make([]ValidationError, 0, len(basic.Errors))}
	for _, e := range basic.Errors {
		if e.Error == "" {
			continue
		}
		result.Errors = append(result.Errors, ValidationError{
			Message:          e.Error,
			KeywordLocation:  e.KeywordLocation,
			InstanceLocation: e.InstanceLocation,
		})
	}
	if len(result.Errors) == 0 {
		result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
	}
	return result
}

func invalid(message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Message: message}},
	}
}
