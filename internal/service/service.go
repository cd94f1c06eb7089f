package service

import (
	"context"

	"github.com/modelgen/modelgen/internal/converter"
	"github.com/modelgen/modelgen/internal/jsonschema"
	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

// ModelService defines the interface for model generation operations
type ModelService interface {
	// Generate normalizes a model and builds the JSON Schema, OpenAPI and diagram artifacts
	Generate(ctx context.Context, m *model.Model) (*apiv0.GenerationResult, error)
	// Convert renders a generated JSON Schema document in another notation
	Convert(ctx context.Context, schema []byte, format converter.Format) (*apiv0.ConversionResult, error)
	// Validate meta-validates an arbitrary JSON Schema document
	Validate(schema []byte) jsonschema.ValidationResult
}

// SchemaGenerator builds the JSON Schema artifact
type SchemaGenerator interface {
	Generate(m *model.Model) (*jsonschema.Document, error)
}

// APIGenerator builds the OpenAPI artifact
type APIGenerator interface {
	Generate(m *model.Model) (*apiv0.OpenAPIArtifact, error)
}

// DiagramGenerator builds the diagram artifacts
type DiagramGenerator interface {
	Generate(m *model.Model) (*apiv0.DiagramBundle, error)
	GenerateAlternatives(m *model.Model) (*apiv0.AlternativeDiagrams, error)
}
