package v0

import (
	"github.com/modelgen/modelgen/internal/jsonschema"
)

// GenerationResult is the bundle of artifacts produced for one model
type GenerationResult struct {
	ID                  string               `json:"id"`
	JSONSchema          *jsonschema.Document `json:"jsonSchema"`
	OpenAPI             *OpenAPIArtifact     `json:"openapi"`
	Diagrams            *DiagramBundle       `json:"diagrams"`
	AlternativeDiagrams *AlternativeDiagrams `json:"alternativeDiagrams,omitempty"`
	GeneratedAt         string               `json:"generatedAt"`
}

// OpenAPIArtifact is the OpenAPI document together with its summary and client snippets
type OpenAPIArtifact struct {
	Spec         *OpenAPIDocument              `json:"spec"`
	Summary      OpenAPISummary                `json:"summary"`
	CodeExamples map[string]EntityCodeExamples `json:"codeExamples"`
}

// OpenAPISummary describes the size of a generated OpenAPI document
type OpenAPISummary struct {
	TotalEndpoints int      `json:"totalEndpoints"`
	TotalSchemas   int      `json:"totalSchemas"`
	Entities       []string `json:"entities"`
	GeneratedAt    string   `json:"generatedAt"`
}

// EntityCodeExamples holds ready-to-paste client snippets for one entity
type EntityCodeExamples struct {
	JavaScript string `json:"javascript"`
	Python     string `json:"python"`
	Curl       string `json:"curl"`
}

// DiagramBundle holds the three textual renderings of a model
type DiagramBundle struct {
	Mermaid  string          `json:"mermaid"`
	PlantUML string          `json:"plantuml"`
	Text     string          `json:"text"`
	Metadata DiagramMetadata `json:"metadata"`
}

// DiagramMetadata accompanies a DiagramBundle
type DiagramMetadata struct {
	TotalEntities      int    `json:"totalEntities"`
	TotalRelationships int    `json:"totalRelationships"`
	GeneratedAt        string `json:"generatedAt"`
	DiagramType        string `json:"diagramType"`
}

// AlternativeDiagrams holds secondary Mermaid renderings
type AlternativeDiagrams struct {
	Flowchart    string `json:"flowchart"`
	ClassDiagram string `json:"classDiagram"`
	Mindmap      string `json:"mindmap"`
}

// ConversionResult is the output of converting a JSON Schema document
type ConversionResult struct {
	Format string `json:"format"`
	Output string `json:"output"`
}
