package service_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/modelgen/modelgen/internal/jsonschema"
	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

// MockSchemaGenerator is a mock implementation of the SchemaGenerator interface
type MockSchemaGenerator struct {
	mock.Mock
}

func (m *MockSchemaGenerator) Generate(in *model.Model) (*jsonschema.Document, error) {
	args := m.Called(in)
	doc, _ := args.Get(0).(*jsonschema.Document)
	return doc, args.Error(1)
}

// MockAPIGenerator is a mock implementation of the APIGenerator interface
type MockAPIGenerator struct {
	mock.Mock
}

func (m *MockAPIGenerator) Generate(in *model.Model) (*apiv0.OpenAPIArtifact, error) {
	args := m.Called(in)
	artifact, _ := args.Get(0).(*apiv0.OpenAPIArtifact)
	return artifact, args.Error(1)
}

// MockDiagramGenerator is a mock implementation of the DiagramGenerator interface
type MockDiagramGenerator struct {
	mock.Mock
}

func (m *MockDiagramGenerator) Generate(in *model.Model) (*apiv0.DiagramBundle, error) {
	args := m.Called(in)
	bundle, _ := args.Get(0).(*apiv0.DiagramBundle)
	return bundle, args.Error(1)
}

func (m *MockDiagramGenerator) GenerateAlternatives(in *model.Model) (*apiv0.AlternativeDiagrams, error) {
	args := m.Called(in)
	alt, _ := args.Get(0).(*apiv0.AlternativeDiagrams)
	return alt, args.Error(1)
}
