package converter

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// MongooseRenderer emits one mongoose schema and model per definition.
// The id property is skipped since MongoDB manages _id itself.
type MongooseRenderer struct{}

// Render implements Renderer
func (MongooseRenderer) Render(doc *jsonschema.Document) string {
	if doc.Definitions.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("const mongoose = require('mongoose');\n")

	for def := doc.Definitions.Oldest(); def != nil; def = def.Next() {
		if def.Value == nil {
			continue
		}
		typeName := model.PascalCase(def.Key)
		schemaVar := model.LowerFirst(typeName) + "Schema"

		sb.WriteString(fmt.Sprintf("\nconst %s = new mongoose.Schema({\n", schemaVar))
		for prop := def.Value.Properties.Oldest(); prop != nil; prop = prop.Next() {
			if prop.Key == model.PrimaryKeyName || prop.Value == nil {
				continue
			}
			options := "type: " + typemap.MongooseType(prop.Value.Type)
			if def.Value.IsRequired(prop.Key) {
				options += ", required: true"
			}
			sb.WriteString(fmt.Sprintf("  %s: { %s },\n", prop.Key, options))
		}
		sb.WriteString("}, { timestamps: true });\n\n")
		sb.WriteString(fmt.Sprintf("const %s = mongoose.model('%s', %s);\n", typeName, typeName, schemaVar))
	}

	return sb.String()
}
