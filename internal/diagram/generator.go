// Package diagram renders the canonical model as entity-relationship diagrams
// and a plain-text description.
package diagram

import (
	"time"

	"github.com/modelgen/modelgen/internal/validators"
	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

// DiagramType labels the primary rendering in bundle metadata
const DiagramType = "entity-relationship"

// Generator builds diagram bundles. It is safe for concurrent use.
type Generator struct {
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock overrides the clock used for generatedAt
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a new diagram generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the Mermaid ER diagram, the PlantUML diagram and the text
// description of m. Relationships with an unknown endpoint are left out of all
// three and of the relationship count.
func (g *Generator) Generate(m *model.Model) (bundle *apiv0.DiagramBundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			bundle, err = nil, model.RecoveredError(model.GeneratorDiagram, r)
		}
	}()

	if err := g.check(m); err != nil {
		return nil, err
	}

	generatedAt := model.FormatTimestamp(g.now())
	return &apiv0.DiagramBundle{
		Mermaid:  Mermaid(m),
		PlantUML: PlantUML(m),
		Text:     Text(m, generatedAt),
		Metadata: apiv0.DiagramMetadata{
			TotalEntities:      len(m.Entities),
			TotalRelationships: len(m.ResolvedRelationships()),
			GeneratedAt:        generatedAt,
			DiagramType:        DiagramType,
		},
	}, nil
}

// GenerateAlternatives renders the flowchart, class diagram and mindmap of m
func (g *Generator) GenerateAlternatives(m *model.Model) (alt *apiv0.AlternativeDiagrams, err error) {
	defer func() {
		if r := recover(); r != nil {
			alt, err = nil, model.RecoveredError(model.GeneratorDiagram, r)
		}
	}()

	if err := g.check(m); err != nil {
		return nil, err
	}

	return &apiv0.AlternativeDiagrams{
		Flowchart:    Flowchart(m),
		ClassDiagram: ClassDiagram(m),
		Mindmap:      Mindmap(m),
	}, nil
}

func (g *Generator) check(m *model.Model) error {
	if m == nil {
		return model.NewGenerationError(model.GeneratorDiagram, "model is nil", nil)
	}
	if err := validators.ValidateModel(m); err != nil {
		return model.NewGenerationError(model.GeneratorDiagram, "invalid model", err)
	}
	return nil
}
