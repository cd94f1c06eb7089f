package jsonschema_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/normalizer"
	"github.com/modelgen/modelgen/pkg/model"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func keysOf[V any](m *orderedmap.OrderedMap[string, V]) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func newGenerator() *jsonschema.Generator {
	return jsonschema.NewGenerator(jsonschema.WithClock(func() time.Time { return fixedTime }))
}

func bookModel() *model.Model {
	return normalizer.Normalize(&model.Model{
		Entities: []model.Entity{
			{
				Name:        "book",
				TableName:   "books",
				Description: "Books",
				Fields: []model.Field{
					{Name: "title", Type: "string", Required: true, Description: "Title"},
				},
			},
		},
	})
}

func ptr[T any](v T) *T { return &v }

func TestGenerate_BookScenario(t *testing.T) {
	doc, err := newGenerator().Generate(bookModel())
	require.NoError(t, err)

	assert.Equal(t, jsonschema.SchemaURI, doc.Schema)
	assert.Equal(t, "object", doc.Type)
	assert.Equal(t, []string{"book"}, keysOf(doc.Definitions))

	book, ok := doc.Definitions.Get("book")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "title"}, book.Required)
	assert.Equal(t, []string{"id", "title"}, keysOf(book.Properties))
	assert.False(t, book.AdditionalProperties)
	assert.Equal(t, "books", book.Metadata.TableName)
	assert.Equal(t, "book", book.Metadata.Entity)

	id, _ := book.Properties.Get("id")
	assert.Equal(t, "number", id.Type)
	assert.Equal(t, "number", id.Metadata.OriginalType)
	require.NotNil(t, id.Metadata.Constraints)
	assert.True(t, id.Metadata.Constraints.Primary)
	assert.True(t, id.Metadata.Constraints.AutoIncrement)

	assert.Equal(t, 1, doc.Metadata.TotalEntities)
	assert.Equal(t, 0, doc.Metadata.TotalRelationships)
	assert.NotNil(t, doc.Relationships)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", doc.Metadata.GeneratedAt)
}

func TestBuildProperty(t *testing.T) {
	tests := []struct {
		name     string
		field    model.Field
		expected func(t *testing.T, p *jsonschema.Property)
	}{
		{
			name: "decimal with minimum",
			field: model.Field{
				Name: "price", Type: "decimal", Required: true,
				Constraints: &model.Constraints{Minimum: ptr(0.0)},
			},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "number", p.Type)
				require.NotNil(t, p.Minimum)
				assert.Equal(t, 0.0, *p.Minimum)
				assert.Nil(t, p.MaxLength)
			},
		},
		{
			name:  "email gets format",
			field: model.Field{Name: "email", Type: "email"},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "string", p.Type)
				assert.Equal(t, "email", p.Format)
			},
		},
		{
			name:  "url gets uri format",
			field: model.Field{Name: "homepage", Type: "URL"},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "uri", p.Format)
			},
		},
		{
			name:  "datetime gets date-time format",
			field: model.Field{Name: "created", Type: "datetime"},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "string", p.Type)
				assert.Equal(t, "date-time", p.Format)
			},
		},
		{
			name: "string length and pattern",
			field: model.Field{
				Name: "code", Type: "string",
				Constraints: &model.Constraints{MaxLength: ptr(10), MinLength: ptr(2), Pattern: "^[A-Z]+$"},
			},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, 10, *p.MaxLength)
				assert.Equal(t, 2, *p.MinLength)
				assert.Equal(t, "^[A-Z]+$", p.Pattern)
			},
		},
		{
			name: "length constraints ignored on numbers",
			field: model.Field{
				Name: "qty", Type: "integer",
				Constraints: &model.Constraints{MaxLength: ptr(10), Maximum: ptr(5.0)},
			},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "integer", p.Type)
				assert.Nil(t, p.MaxLength)
				assert.Equal(t, 5.0, *p.Maximum)
			},
		},
		{
			name: "enum and default",
			field: model.Field{
				Name: "status", Type: "string",
				Constraints: &model.Constraints{Enum: []string{"open", "closed"}, Default: "open"},
			},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, []string{"open", "closed"}, p.Enum)
				assert.Equal(t, "open", p.Default)
			},
		},
		{
			name:  "array defaults to string items",
			field: model.Field{Name: "tags", Type: "array"},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "array", p.Type)
				assert.Equal(t, map[string]any{"type": "string"}, p.Items)
			},
		},
		{
			name: "array with items constraint",
			field: model.Field{
				Name: "scores", Type: "array",
				Constraints: &model.Constraints{Items: map[string]any{"type": "number"}},
			},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, map[string]any{"type": "number"}, p.Items)
			},
		},
		{
			name:  "unknown type falls back to string",
			field: model.Field{Name: "weird", Type: "bogus", Description: "Odd"},
			expected: func(t *testing.T, p *jsonschema.Property) {
				assert.Equal(t, "string", p.Type)
				assert.Empty(t, p.Format)
				assert.Equal(t, "Odd", p.Description)
				assert.Equal(t, "bogus", p.Metadata.OriginalType)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expected(t, jsonschema.BuildProperty(tc.field))
		})
	}
}

func TestGenerate_PreservesOrderInJSON(t *testing.T) {
	m := normalizer.Normalize(&model.Model{
		Entities: []model.Entity{
			{Name: "zebra", TableName: "zebras", Fields: []model.Field{
				{Name: "stripes", Type: "integer"},
				{Name: "age", Type: "integer"},
			}},
			{Name: "aardvark", TableName: "aardvarks"},
		},
	})

	doc, err := newGenerator().Generate(m)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	out := string(data)

	assert.Less(t, strings.Index(out, `"zebra"`), strings.Index(out, `"aardvark"`))
	assert.Less(t, strings.Index(out, `"stripes"`), strings.Index(out, `"age"`))
	assert.Less(t, strings.Index(out, `"id"`), strings.Index(out, `"stripes"`))
}

func TestGenerate_Idempotent(t *testing.T) {
	m := bookModel()
	m.Relationships = []model.Relationship{{From: "book", To: "author", Type: "manyToOne"}}

	first, err := newGenerator().Generate(m)
	require.NoError(t, err)
	second, err := newGenerator().Generate(m)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, 1, first.Metadata.TotalRelationships)
}

func TestGenerate_HardFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *model.Model
	}{
		{name: "nil model", model: nil},
		{name: "duplicate entity", model: &model.Model{Entities: []model.Entity{{Name: "a"}, {Name: "a"}}}},
		{name: "unnamed field", model: &model.Model{Entities: []model.Entity{{Name: "a", Fields: []model.Field{{Type: "string"}}}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := newGenerator().Generate(tc.model)
			assert.Nil(t, doc)
			require.ErrorIs(t, err, model.ErrGeneration)

			var genErr *model.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, model.GeneratorSchema, genErr.Generator)
		})
	}
}

func TestGenerate_ConstraintsRoundTripVerbatim(t *testing.T) {
	var field model.Field
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "sku", "type": "string", "required": true,
		"constraints": {"unique": true, "maxLength": 12, "indexed": true}
	}`), &field))

	prop := jsonschema.BuildProperty(field)
	data, err := json.Marshal(prop.Metadata.Constraints)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unique": true, "maxLength": 12, "indexed": true}`, string(data))
}

func TestGenerate_ConstraintsKeepExplicitFalse(t *testing.T) {
	var field model.Field
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "code", "type": "string",
		"constraints": {"unique": false, "primary": false, "maxLength": 5}
	}`), &field))

	m := normalizer.Normalize(&model.Model{Entities: []model.Entity{
		{Name: "coupon", TableName: "coupons", Fields: []model.Field{field}},
	}})
	doc, err := newGenerator().Generate(m)
	require.NoError(t, err)

	coupon, ok := doc.Definitions.Get("coupon")
	require.True(t, ok)
	code, ok := coupon.Properties.Get("code")
	require.True(t, ok)
	require.NotNil(t, code.MaxLength)
	assert.Equal(t, 5, *code.MaxLength)

	data, err := json.Marshal(code.Metadata.Constraints)
	require.NoError(t, err)
	assert.Equal(t, `{"unique":false,"primary":false,"maxLength":5}`, string(data))
}
