package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

const (
	schemaRefPrefix   = "#/components/schemas/"
	responseRefPrefix = "#/components/responses/"

	// Shared component responses
	ResponseNotFound        = "NotFound"
	ResponseValidationError = "ValidationError"
)

// EntitySchema builds the component schema of one entity with the given example
func EntitySchema(entity model.Entity, example Example) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Description = entity.Description
	schema.Properties = make(openapi3.Schemas, len(entity.Fields))
	schema.Required = []string{}

	for _, field := range entity.Fields {
		schema.Properties[field.Name] = openapi3.NewSchemaRef("", PropertySchema(field))
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	schema.Example = example

	return schema
}

// PropertySchema maps one field onto the OpenAPI type vocabulary
func PropertySchema(field model.Field) *openapi3.Schema {
	typ := typemap.Parse(field.Type)
	schema := schemaOf(typemap.ToJSONSchema(field.Type))
	schema.Description = field.Description

	c := field.Constraints
	if typ == typemap.Array {
		itemType := typemap.JSONString
		if c != nil {
			if t, ok := c.Items["type"].(string); ok && t != "" {
				itemType = t
			}
		}
		schema.Items = openapi3.NewSchemaRef("", schemaOf(typemap.ToJSONSchema(itemType)))
	}
	if c == nil {
		return schema
	}

	if typ.IsStringLike() {
		if c.MaxLength != nil && *c.MaxLength >= 0 {
			schema.WithMaxLength(int64(*c.MaxLength))
		}
		if c.MinLength != nil && *c.MinLength >= 0 {
			schema.WithMinLength(int64(*c.MinLength))
		}
		schema.Pattern = c.Pattern
	}
	if typ.IsNumeric() {
		schema.Min = c.Minimum
		schema.Max = c.Maximum
	}
	for _, option := range c.Enum {
		schema.Enum = append(schema.Enum, option)
	}
	schema.Default = c.Default

	return schema
}

func schemaOf(st typemap.SchemaType) *openapi3.Schema {
	return &openapi3.Schema{
		Type:   &openapi3.Types{st.Type},
		Format: st.Format,
	}
}

func schemaRef(entity model.Entity, schema *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef(schemaRefPrefix+entity.Name, schema)
}

// sharedResponses are the reusable error responses referenced by every path
func sharedResponses() openapi3.ResponseBodies {
	notFound := openapi3.NewResponse().
		WithDescription("Resource not found").
		WithJSONSchema(openapi3.NewObjectSchema().
			WithProperty("error", openapi3.NewStringSchema()).
			WithProperty("message", openapi3.NewStringSchema()))

	validation := openapi3.NewResponse().
		WithDescription("Validation error").
		WithJSONSchema(openapi3.NewObjectSchema().
			WithProperty("error", openapi3.NewStringSchema()).
			WithProperty("details", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())))

	return openapi3.ResponseBodies{
		ResponseNotFound:        &openapi3.ResponseRef{Value: notFound},
		ResponseValidationError: &openapi3.ResponseRef{Value: validation},
	}
}

func responseRef(components *openapi3.Components, name string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Ref:   responseRefPrefix + name,
		Value: components.Responses[name].Value,
	}
}
