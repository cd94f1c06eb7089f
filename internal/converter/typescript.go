package converter

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// TypeScriptRenderer emits one exported interface per definition
type TypeScriptRenderer struct{}

// Render implements Renderer
func (TypeScriptRenderer) Render(doc *jsonschema.Document) string {
	var sb strings.Builder

	rendered := 0
	for def := doc.Definitions.Oldest(); def != nil; def = def.Next() {
		if def.Value == nil {
			continue
		}
		if rendered > 0 {
			sb.WriteString("\n")
		}
		rendered++
		sb.WriteString(fmt.Sprintf("export interface %s {\n", model.PascalCase(def.Key)))
		for prop := def.Value.Properties.Oldest(); prop != nil; prop = prop.Next() {
			if prop.Value == nil {
				continue
			}
			optional := "?"
			if def.Value.IsRequired(prop.Key) {
				optional = ""
			}
			sb.WriteString(fmt.Sprintf("  %s%s: %s;\n", prop.Key, optional, propertyType(prop.Value)))
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}

func propertyType(prop *jsonschema.Property) string {
	if prop.Type == typemap.JSONArray {
		return itemsType(prop.Items) + "[]"
	}
	return typemap.TypeScriptType(prop.Type)
}

// itemsType resolves the element type of an array schema, recursing into nested arrays
func itemsType(items map[string]any) string {
	if items == nil {
		return typemap.TypeScriptAny
	}
	typ, _ := items["type"].(string)
	if typ == typemap.JSONArray {
		nested, _ := items["items"].(map[string]any)
		return itemsType(nested) + "[]"
	}
	if typ == "" {
		return typemap.TypeScriptAny
	}
	return typemap.TypeScriptType(typ)
}
