// Package openapi projects the canonical model into an OpenAPI 3.0 document with
// CRUD paths, synthesised examples and client code snippets.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/modelgen/modelgen/internal/validators"
	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

// Generator builds OpenAPI artifacts. It is safe for concurrent use.
type Generator struct {
	opts Options
}

// NewGenerator creates a new OpenAPI generator
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Generate builds the OpenAPI document, summary and code examples for m.
// Dangling relationships are skipped; structural problems return a
// *model.GenerationError and no artifact.
func (g *Generator) Generate(m *model.Model) (artifact *apiv0.OpenAPIArtifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact, err = nil, model.RecoveredError(model.GeneratorAPI, r)
		}
	}()

	if m == nil {
		return nil, model.NewGenerationError(model.GeneratorAPI, "model is nil", nil)
	}
	if err := validators.ValidateModel(m); err != nil {
		return nil, model.NewGenerationError(model.GeneratorAPI, "invalid model", err)
	}

	now := g.opts.Now()
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       g.opts.Title,
			Description: g.opts.Description,
			Version:     g.opts.Version,
		},
		Servers: openapi3.Servers{
			{URL: g.opts.ServerURL, Description: g.opts.ServerDescription},
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas:   make(openapi3.Schemas, len(m.Entities)),
			Responses: sharedResponses(),
		},
		Tags: make(openapi3.Tags, 0, len(m.Entities)),
	}

	order := apiv0.DocumentOrder{
		Paths:      make([]string, 0, 2*len(m.Entities)+len(m.Relationships)),
		Schemas:    make([]string, 0, len(m.Entities)),
		Properties: make(map[string][]string, len(m.Entities)),
	}
	addPath := func(path string, item *openapi3.PathItem) {
		doc.Paths.Set(path, item)
		order.Paths = append(order.Paths, path)
	}

	refs := make(map[string]*openapi3.SchemaRef, len(m.Entities))
	codeExamples := make(map[string]apiv0.EntityCodeExamples, len(m.Entities))
	entities := make([]string, 0, len(m.Entities))

	for _, entity := range m.Entities {
		example := ExampleObject(entity, now)
		schema := EntitySchema(entity, example)
		doc.Components.Schemas[entity.Name] = openapi3.NewSchemaRef("", schema)
		refs[entity.Name] = schemaRef(entity, schema)
		order.Schemas = append(order.Schemas, entity.Name)
		order.Properties[entity.Name] = fieldNames(entity)

		description := entity.Description
		if description == "" {
			description = entity.Name
		}
		doc.Tags = append(doc.Tags, &openapi3.Tag{
			Name:        entity.Name,
			Description: description + " operations",
		})

		collection, item := crudPaths(entity, refs[entity.Name], doc.Components)
		addPath(collectionPath(entity), collection)
		addPath(itemPath(entity), item)

		examples, err := CodeExamples(entity, example, g.opts.ServerURL)
		if err != nil {
			return nil, model.NewGenerationError(model.GeneratorAPI,
				fmt.Sprintf("rendering code examples for %q", entity.Name), err)
		}
		codeExamples[entity.Name] = examples
		entities = append(entities, entity.Name)
	}

	for _, rel := range m.ResolvedRelationships() {
		path := relationPath(*rel.FromEntity, *rel.ToEntity)
		if doc.Paths.Value(path) != nil {
			continue
		}
		addPath(path, relationPathItem(rel, refs[rel.ToEntity.Name], doc.Components))
	}

	return &apiv0.OpenAPIArtifact{
		Spec: &apiv0.OpenAPIDocument{T: doc, Order: order},
		Summary: apiv0.OpenAPISummary{
			TotalEndpoints: doc.Paths.Len(),
			TotalSchemas:   len(doc.Components.Schemas),
			Entities:       entities,
			GeneratedAt:    model.FormatTimestamp(now),
		},
		CodeExamples: codeExamples,
	}, nil
}

func fieldNames(entity model.Entity) []string {
	names := make([]string, 0, len(entity.Fields))
	for _, field := range entity.Fields {
		names = append(names, field.Name)
	}
	return names
}
