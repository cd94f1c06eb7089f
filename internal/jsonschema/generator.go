// Package jsonschema projects the canonical model into a JSON Schema document and
// validates arbitrary JSON Schema documents against their meta-schema.
package jsonschema

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/internal/validators"
	"github.com/modelgen/modelgen/pkg/model"
)

// Generator builds JSON Schema documents. It holds no mutable state and is safe
// for concurrent use.
type Generator struct {
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock overrides the clock used for metadata.generatedAt
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a new JSON Schema generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the JSON Schema document for m. It returns a *model.GenerationError
// and no document if the model is structurally unusable.
func (g *Generator) Generate(m *model.Model) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, model.RecoveredError(model.GeneratorSchema, r)
		}
	}()

	if m == nil {
		return nil, model.NewGenerationError(model.GeneratorSchema, "model is nil", nil)
	}
	if err := validators.ValidateModel(m); err != nil {
		return nil, model.NewGenerationError(model.GeneratorSchema, "invalid model", err)
	}

	relationships := make([]model.Relationship, 0, len(m.Relationships))
	relationships = append(relationships, m.Relationships...)

	doc = &Document{
		Schema:        SchemaURI,
		Title:         DocumentTitle,
		Description:   DocumentDescription,
		Type:          typemap.JSONObject,
		Definitions:   orderedmap.New[string, *Definition](len(m.Entities)),
		Relationships: relationships,
		Metadata: DocumentMetadata{
			GeneratedAt:        model.FormatTimestamp(g.now()),
			TotalEntities:      len(m.Entities),
			TotalRelationships: len(m.Relationships),
		},
	}

	for _, entity := range m.Entities {
		doc.Definitions.Set(entity.Name, BuildDefinition(entity))
	}

	return doc, nil
}

// BuildDefinition returns the object schema of one entity
func BuildDefinition(entity model.Entity) *Definition {
	def := &Definition{
		Type:                 typemap.JSONObject,
		Description:          entity.Description,
		Properties:           orderedmap.New[string, *Property](len(entity.Fields)),
		Required:             []string{},
		AdditionalProperties: false,
		Metadata: &DefinitionMetadata{
			TableName: entity.TableName,
			Entity:    entity.Name,
		},
	}

	for _, field := range entity.Fields {
		def.Properties.Set(field.Name, BuildProperty(field))
		if field.Required {
			def.Required = append(def.Required, field.Name)
		}
	}
	return def
}

// BuildProperty returns the schema of one field. Constraints are only rendered
// where they make sense for the mapped type: lengths and patterns on strings,
// bounds on numbers, items on arrays.
func BuildProperty(field model.Field) *Property {
	typ := typemap.Parse(field.Type)
	mapped := typemap.ToJSONSchema(field.Type)

	prop := &Property{
		Type:        mapped.Type,
		Description: field.Description,
		Format:      mapped.Format,
		Metadata: &PropertyMetadata{
			FieldName:    field.Name,
			OriginalType: field.Type,
			Constraints:  field.Constraints.Clone(),
		},
	}

	c := field.Constraints
	if typ == typemap.Array {
		prop.Items = map[string]any{"type": typemap.JSONString}
		if c != nil && len(c.Items) > 0 {
			prop.Items = c.Items
		}
	}
	if c == nil {
		return prop
	}

	if typ.IsStringLike() {
		prop.MaxLength = c.MaxLength
		prop.MinLength = c.MinLength
		prop.Pattern = c.Pattern
	}
	if typ.IsNumeric() {
		prop.Minimum = c.Minimum
		prop.Maximum = c.Maximum
	}
	if len(c.Enum) > 0 {
		prop.Enum = append([]string(nil), c.Enum...)
	}
	prop.Default = c.Default

	return prop
}
