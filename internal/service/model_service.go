package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/modelgen/modelgen/internal/config"
	"github.com/modelgen/modelgen/internal/converter"
	"github.com/modelgen/modelgen/internal/diagram"
	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/normalizer"
	"github.com/modelgen/modelgen/internal/openapi"
	"github.com/modelgen/modelgen/internal/telemetry"
	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

// Generators bundles the three artifact generators
type Generators struct {
	Schema  SchemaGenerator
	API     APIGenerator
	Diagram DiagramGenerator
}

// DefaultGenerators builds the standard generators from configuration
func DefaultGenerators(cfg *config.Config) Generators {
	return Generators{
		Schema:  jsonschema.NewGenerator(),
		API:     openapi.NewGenerator(cfg.ToOpenAPIOptions()),
		Diagram: diagram.NewGenerator(),
	}
}

// Option configures the model service
type Option func(*modelServiceImpl)

// WithMetrics records generator runs on m
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *modelServiceImpl) {
		s.metrics = m
	}
}

// WithParallel runs the generators concurrently when enabled
func WithParallel(enabled bool) Option {
	return func(s *modelServiceImpl) {
		s.parallel = enabled
	}
}

// WithClock overrides the clock used for the bundle timestamp
func WithClock(now func() time.Time) Option {
	return func(s *modelServiceImpl) {
		s.now = now
	}
}

// WithIDGenerator overrides how request IDs are minted
func WithIDGenerator(newID func() string) Option {
	return func(s *modelServiceImpl) {
		s.newID = newID
	}
}

// modelServiceImpl implements the ModelService interface
type modelServiceImpl struct {
	gens     Generators
	metrics  *telemetry.Metrics
	parallel bool
	now      func() time.Time
	newID    func() string
}

// NewModelService creates a new model service around the given generators
//
//nolint:ireturn // Factory function intentionally returns interface for dependency injection
func NewModelService(gens Generators, opts ...Option) ModelService {
	s := &modelServiceImpl{
		gens:     gens,
		parallel: true,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate normalizes m and runs every generator over the normalized copy.
// If any generator fails, its error is returned and no partial result.
func (s *modelServiceImpl) Generate(ctx context.Context, m *model.Model) (*apiv0.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := normalizer.Normalize(m)
	result := &apiv0.GenerationResult{ID: s.newID()}

	tasks := []func() error{
		s.timed(ctx, model.GeneratorSchema, func() (err error) {
			result.JSONSchema, err = s.gens.Schema.Generate(normalized)
			return err
		}),
		s.timed(ctx, model.GeneratorAPI, func() (err error) {
			result.OpenAPI, err = s.gens.API.Generate(normalized)
			return err
		}),
		s.timed(ctx, model.GeneratorDiagram, func() (err error) {
			result.Diagrams, err = s.gens.Diagram.Generate(normalized)
			return err
		}),
		s.timed(ctx, model.GeneratorDiagram, func() (err error) {
			result.AlternativeDiagrams, err = s.gens.Diagram.GenerateAlternatives(normalized)
			return err
		}),
	}

	var err error
	if s.parallel {
		err = runParallel(ctx, tasks)
	} else {
		err = runSequential(ctx, tasks)
	}
	if err != nil {
		log.Printf("generation %s failed: %v", result.ID, err)
		return nil, err
	}

	result.GeneratedAt = model.FormatTimestamp(s.now())
	return result, nil
}

// Convert renders a JSON Schema document in the requested format
func (s *modelServiceImpl) Convert(ctx context.Context, schema []byte, format converter.Format) (*apiv0.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out string
	err := s.timed(ctx, model.GeneratorConversion, func() (err error) {
		out, err = converter.ConvertJSON(schema, format)
		return err
	})()
	if err != nil {
		log.Printf("conversion to %s failed: %v", format, err)
		return nil, err
	}

	return &apiv0.ConversionResult{Format: string(format), Output: out}, nil
}

// Validate meta-validates schema. It never fails.
func (s *modelServiceImpl) Validate(schema []byte) jsonschema.ValidationResult {
	return jsonschema.ValidateJSON(schema)
}

// timed wraps a generator run so that its duration and outcome are recorded
func (s *modelServiceImpl) timed(ctx context.Context, gen model.Generator, run func() error) func() error {
	return func() error {
		start := time.Now()
		err := run()
		s.metrics.Record(ctx, string(gen), time.Since(start), err)
		return err
	}
}

func runParallel(ctx context.Context, tasks []func() error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task()
		})
	}
	return g.Wait()
}

func runSequential(ctx context.Context, tasks []func() error) error {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(); err != nil {
			return err
		}
	}
	return nil
}
