package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/normalizer"
	"github.com/modelgen/modelgen/pkg/model"
)

func TestValidate_GeneratedDocumentIsValid(t *testing.T) {
	m := normalizer.Normalize(&model.Model{
		Entities: []model.Entity{
			{Name: "user", TableName: "users", Fields: []model.Field{
				{Name: "email", Type: "email", Required: true, Constraints: &model.Constraints{Unique: true}},
				{Name: "age", Type: "integer", Constraints: &model.Constraints{Minimum: ptr(0.0)}},
				{Name: "tags", Type: "array"},
				{Name: "profile", Type: "json"},
				{Name: "joined", Type: "date"},
			}},
		},
		Relationships: []model.Relationship{{From: "user", To: "user", Type: "oneToOne"}},
	})

	doc, err := newGenerator().Generate(m)
	require.NoError(t, err)

	result := jsonschema.Validate(doc)
	assert.True(t, result.Valid, "%v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		doc   any
		valid bool
	}{
		{
			name:  "minimal object schema",
			doc:   []byte(`{"type": "object", "properties": {"a": {"type": "string"}}}`),
			valid: true,
		},
		{
			name:  "map input",
			doc:   map[string]any{"type": "string", "maxLength": 3},
			valid: true,
		},
		{
			name:  "type is not a string",
			doc:   []byte(`{"type": 12}`),
			valid: false,
		},
		{
			name:  "negative minLength",
			doc:   []byte(`{"properties": {"a": {"minLength": -1}}}`),
			valid: false,
		},
		{
			name:  "malformed JSON",
			doc:   []byte(`{"type": `),
			valid: false,
		},
		{
			name:  "empty input",
			doc:   []byte(``),
			valid: false,
		},
		{
			name:  "nil input",
			doc:   nil,
			valid: false,
		},
		{
			name:  "not serialisable",
			doc:   map[string]any{"bad": make(chan int)},
			valid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := jsonschema.Validate(tc.doc)
			assert.Equal(t, tc.valid, result.Valid)
			assert.NotNil(t, result.Errors)
			if !tc.valid {
				require.NotEmpty(t, result.Errors)
				assert.NotEmpty(t, result.Errors[0].Message)
			}
		})
	}
}
