package model_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen/modelgen/pkg/model"
)

func TestConstraints_JSON(t *testing.T) {
	input := `{"primary":true,"maxLength":20,"minimum":0.5,"enum":["a","b"],"index":"btree","references":{"table":"users"}}`

	var c model.Constraints
	require.NoError(t, json.Unmarshal([]byte(input), &c))

	assert.True(t, c.Primary)
	require.NotNil(t, c.MaxLength)
	assert.Equal(t, 20, *c.MaxLength)
	require.NotNil(t, c.Minimum)
	assert.InDelta(t, 0.5, *c.Minimum, 1e-9)
	assert.Equal(t, []string{"a", "b"}, c.Enum)
	assert.Len(t, c.Extra, 2)
	assert.JSONEq(t, `"btree"`, string(c.Extra["index"]))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestConstraints_KeepsSourceObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "explicit false flags", input: `{"unique":false,"primary":false,"maxLength":5}`},
		{name: "zero bounds", input: `{"minimum":0,"minLength":0,"pattern":""}`},
		{name: "empty enum", input: `{"enum":[]}`},
		{name: "indented with nested extra", input: "{\n  \"references\": {\"table\": \"users\"},\n  \"unique\": true\n}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c model.Constraints
			require.NoError(t, json.Unmarshal([]byte(tc.input), &c))

			out, err := json.Marshal(c)
			require.NoError(t, err)
			assert.JSONEq(t, tc.input, string(out))

			cloned, err := json.Marshal(c.Clone())
			require.NoError(t, err)
			assert.Equal(t, string(out), string(cloned))
		})
	}
}

func TestConstraints_EditedAfterDecode(t *testing.T) {
	var c model.Constraints
	require.NoError(t, json.Unmarshal([]byte(`{"unique":false,"maxLength":5}`), &c))

	c.Unique = true
	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unique":true,"maxLength":5}`, string(out))

	*c.MaxLength = 8
	out, err = json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unique":true,"maxLength":8}`, string(out))
}

func TestConstraints_MarshalWithoutExtra(t *testing.T) {
	c := model.Constraints{Unique: true, Pattern: "^[a-z]+$"}

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unique":true,"pattern":"^[a-z]+$"}`, string(out))
}

func TestConstraints_Clone(t *testing.T) {
	maxLength := 10
	original := &model.Constraints{
		MaxLength: &maxLength,
		Enum:      []string{"x"},
		Items:     map[string]any{"type": "string"},
		Extra:     map[string]json.RawMessage{"note": json.RawMessage(`"n"`)},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.MaxLength = 99
	clone.Enum[0] = "y"
	clone.Items["type"] = "number"
	clone.Extra["note"][1] = 'm'

	assert.Equal(t, 10, *original.MaxLength)
	assert.Equal(t, []string{"x"}, original.Enum)
	assert.Equal(t, "string", original.Items["type"])
	assert.Equal(t, `"n"`, string(original.Extra["note"]))

	var nilConstraints *model.Constraints
	assert.Nil(t, nilConstraints.Clone())
}

func TestParseRelationType(t *testing.T) {
	tests := []struct {
		token    string
		expected model.RelationType
	}{
		{"oneToOne", model.RelationOneToOne},
		{"oneToMany", model.RelationOneToMany},
		{"manyToOne", model.RelationManyToOne},
		{"manyToMany", model.RelationManyToMany},
		{"OneToMany", model.RelationUnknown},
		{"friendsWith", model.RelationUnknown},
		{"", model.RelationUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.expected, model.ParseRelationType(tc.token))
		})
	}
}

func TestRelationship_Label(t *testing.T) {
	assert.Equal(t, "writes", model.Relationship{Type: "oneToMany", Description: "writes"}.Label())
	assert.Equal(t, "oneToMany", model.Relationship{Type: "oneToMany"}.Label())
}

func TestField_ConstraintFlags(t *testing.T) {
	plain := model.Field{Name: "title"}
	assert.False(t, plain.IsPrimary())
	assert.False(t, plain.IsUnique())
	assert.False(t, plain.IsAutoIncrement())

	key := model.Field{Name: "id", Constraints: &model.Constraints{Primary: true, Unique: true, AutoIncrement: true}}
	assert.True(t, key.IsPrimary())
	assert.True(t, key.IsUnique())
	assert.True(t, key.IsAutoIncrement())
}

func TestModel_ResolvedRelationships(t *testing.T) {
	m := &model.Model{
		Entities: []model.Entity{
			{Name: "author", TableName: "authors"},
			{Name: "book", TableName: "books"},
		},
		Relationships: []model.Relationship{
			{From: "author", To: "book", Type: "oneToMany"},
			{From: "author", To: "ghost", Type: "oneToOne"},
			{From: "book", To: "author", Type: "manyToOne"},
		},
	}

	resolved := m.ResolvedRelationships()
	require.Len(t, resolved, 2)
	assert.Equal(t, "authors", resolved[0].FromEntity.TableName)
	assert.Equal(t, "books", resolved[0].ToEntity.TableName)
	assert.Equal(t, model.RelationManyToOne, resolved[1].Kind())

	assert.Nil(t, m.EntityByName("ghost"))
	assert.Same(t, &m.Entities[1], m.EntityByName("book"))
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("boom")
	err := model.NewGenerationError(model.GeneratorAPI, "cannot build paths", cause)

	assert.Equal(t, "api generation failed: cannot build paths: boom", err.Error())
	assert.ErrorIs(t, err, model.ErrGeneration)
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("request failed: %w", err)
	var genErr *model.GenerationError
	require.ErrorAs(t, wrapped, &genErr)
	assert.Equal(t, model.GeneratorAPI, genErr.Generator)

	bare := model.NewGenerationError(model.GeneratorSchema, "model is nil", nil)
	assert.Equal(t, "schema generation failed: model is nil", bare.Error())
	assert.ErrorIs(t, bare, model.ErrGeneration)
}

func TestRecoveredError(t *testing.T) {
	cause := errors.New("index out of range")
	fromErr := model.RecoveredError(model.GeneratorDiagram, cause)
	assert.ErrorIs(t, fromErr, cause)
	assert.Equal(t, model.GeneratorDiagram, fromErr.Generator)

	fromValue := model.RecoveredError(model.GeneratorConversion, 42)
	assert.Equal(t, "conversion generation failed: unexpected internal fault: 42", fromValue.Error())
	assert.NoError(t, errors.Unwrap(fromValue))
}

func TestFormatTimestamp(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 1, 14, 0, 0, 7_000_000, zone)

	assert.Equal(t, "2024-03-01T12:00:00.007Z", model.FormatTimestamp(ts))
}
