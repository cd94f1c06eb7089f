// Package converter projects a generated JSON Schema document into TypeScript
// interfaces, mongoose schemas or SQL DDL. It reads only the document and its
// metadata side-channels, never the canonical model.
package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/pkg/model"
)

// Format names a conversion target
type Format string

// Supported conversion targets
const (
	FormatTypeScript Format = "typescript"
	FormatMongoose   Format = "mongoose"
	FormatSQL        Format = "sql"
)

// ErrUnsupportedFormat is wrapped when a format token has no renderer
var ErrUnsupportedFormat = errors.New("unsupported format")

// Renderer turns a JSON Schema document into text in one target notation
type Renderer interface {
	Render(doc *jsonschema.Document) string
}

var renderers = map[Format]Renderer{
	FormatTypeScript: TypeScriptRenderer{},
	FormatMongoose:   MongooseRenderer{},
	FormatSQL:        SQLRenderer{},
}

// Formats returns the supported format tokens, sorted
func Formats() []Format {
	formats := make([]Format, 0, len(renderers))
	for f := range renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// GetRenderer returns the renderer for format
func GetRenderer(format Format) (Renderer, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return r, nil
}

// Convert renders doc in the requested format. Failures, including unknown
// formats, are returned as a *model.GenerationError of the conversion kind.
func Convert(doc *jsonschema.Document, format Format) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", model.RecoveredError(model.GeneratorConversion, r)
		}
	}()

	renderer, err := GetRenderer(format)
	if err != nil {
		return "", model.NewGenerationError(model.GeneratorConversion, "no renderer", err)
	}
	if doc == nil {
		return "", model.NewGenerationError(model.GeneratorConversion, "schema document is nil", nil)
	}
	return renderer.Render(doc), nil
}

// ConvertJSON decodes a JSON Schema document and renders it in the requested format
func ConvertJSON(data []byte, format Format) (string, error) {
	var doc jsonschema.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", model.NewGenerationError(model.GeneratorConversion, "decoding schema document", err)
	}
	return Convert(&doc, format)
}

// tableName is the metadata table name of a definition, or the entity name plus "s"
func tableName(name string, def *jsonschema.Definition) string {
	if def.Metadata != nil && def.Metadata.TableName != "" {
		return def.Metadata.TableName
	}
	return name + "s"
}

func constraintsOf(prop *jsonschema.Property) *model.Constraints {
	if prop.Metadata == nil || prop.Metadata.Constraints == nil {
		return &model.Constraints{}
	}
	return prop.Metadata.Constraints
}
