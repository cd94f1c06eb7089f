package model

import (
	"errors"
	"fmt"
)

// Generator identifies which generator produced a GenerationError
type Generator string

const (
	GeneratorSchema     Generator = "schema"
	GeneratorAPI        Generator = "api"
	GeneratorDiagram    Generator = "diagram"
	GeneratorConversion Generator = "conversion"
)

// ErrGeneration is matched by every GenerationError via errors.Is
var ErrGeneration = errors.New("generation failed")

// GenerationError is the single failure kind a generator signals when it cannot
// produce a complete artifact. Soft conditions (unknown types, dangling relationships)
// never produce one.
type GenerationError struct {
	Generator Generator
	Message   string
	Err       error
}

// NewGenerationError creates a GenerationError for the given generator
func NewGenerationError(gen Generator, message string, err error) *GenerationError {
	return &GenerationError{
		Generator: gen,
		Message:   message,
		Err:       err,
	}
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation failed: %s: %v", e.Generator, e.Message, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Generator, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports ErrGeneration as a match so callers need not know the concrete type
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// RecoveredError converts a recovered panic value into a GenerationError
func RecoveredError(gen Generator, recovered any) *GenerationError {
	if err, ok := recovered.(error); ok {
		return NewGenerationError(gen, "unexpected internal fault", err)
	}
	return NewGenerationError(gen, fmt.Sprintf("unexpected internal fault: %v", recovered), nil)
}
