package jsonschema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/modelgen/modelgen/pkg/model"
)

// Fixed document header values
const (
	SchemaURI           = "https://json-schema.org/draft/2020-12/schema"
	DocumentTitle       = "Generated Database Schema"
	DocumentDescription = "JSON Schema generated from a natural language data description"
)

// Document is the generated JSON Schema. Definitions are keyed by entity name in
// entity order; Relationships is the canonical relationship list verbatim.
type Document struct {
	Schema        string                                      `json:"$schema"`
	Title         string                                      `json:"title"`
	Description   string                                      `json:"description"`
	Type          string                                      `json:"type"`
	Definitions   *orderedmap.OrderedMap[string, *Definition] `json:"definitions"`
	Relationships []model.Relationship                        `json:"relationships"`
	Metadata      DocumentMetadata                            `json:"metadata"`
}

// DocumentMetadata carries counts and the generation time
type DocumentMetadata struct {
	GeneratedAt        string `json:"generatedAt,omitempty"`
	TotalEntities      int    `json:"totalEntities"`
	TotalRelationships int    `json:"totalRelationships"`
}

// Definition is the object schema of one entity
type Definition struct {
	Type                 string                                    `json:"type"`
	Description          string                                    `json:"description,omitempty"`
	Properties           *orderedmap.OrderedMap[string, *Property] `json:"properties"`
	Required             []string                                  `json:"required"`
	AdditionalProperties bool                                      `json:"additionalProperties"`
	Metadata             *DefinitionMetadata                       `json:"metadata,omitempty"`
}

// DefinitionMetadata lets the format converter recover the storage name of an entity
type DefinitionMetadata struct {
	TableName string `json:"tableName,omitempty"`
	Entity    string `json:"entity,omitempty"`
}

// Property is the schema of one field
type Property struct {
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description"`
	Format      string            `json:"format,omitempty"`
	MaxLength   *int              `json:"maxLength,omitempty"`
	MinLength   *int              `json:"minLength,omitempty"`
	Pattern     string            `json:"pattern,omitempty"`
	Minimum     *float64          `json:"minimum,omitempty"`
	Maximum     *float64          `json:"maximum,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Default     any               `json:"default,omitempty"`
	Items       map[string]any    `json:"items,omitempty"`
	Metadata    *PropertyMetadata `json:"metadata,omitempty"`
}

// PropertyMetadata preserves the abstract type and raw constraints of a field,
// which JSON Schema has no keyword for (primary key, auto increment, integer vs float)
type PropertyMetadata struct {
	FieldName    string             `json:"fieldName"`
	OriginalType string             `json:"originalType"`
	Constraints  *model.Constraints `json:"constraints,omitempty"`
}

// IsRequired reports whether name is listed in the definition's required list
func (d *Definition) IsRequired(name string) bool {
	for _, r := range d.Required {
		if r == name {
			return true
		}
	}
	return false
}
