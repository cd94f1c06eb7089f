package converter

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/jsonschema"
	"github.com/modelgen/modelgen/internal/typemap"
)

// SQLRenderer emits one CREATE TABLE statement per definition
type SQLRenderer struct{}

// Render implements Renderer
func (SQLRenderer) Render(doc *jsonschema.Document) string {
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

		columns := make([]string, 0, def.Value.Properties.Len())
		for prop := def.Value.Properties.Oldest(); prop != nil; prop = prop.Next() {
			if prop.Value == nil {
				continue
			}
			columns = append(columns, "  "+column(prop.Key, prop.Value, def.Value.IsRequired(prop.Key)))
		}

		sb.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", tableName(def.Key, def.Value)))
		sb.WriteString(strings.Join(columns, ",\n"))
		if len(columns) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(");\n")
	}

	return sb.String()
}

// column renders one column definition. Auto-increment columns are always INT.
func column(name string, prop *jsonschema.Property, required bool) string {
	c := constraintsOf(prop)

	sqlType := typemap.SQLType(prop.Type, prop.MaxLength)
	if c.AutoIncrement {
		sqlType = typemap.SQLType(typemap.JSONInteger, nil)
	}

	def := name + " " + sqlType
	if required {
		def += " NOT NULL"
	}
	if c.Primary {
		def += " PRIMARY KEY"
	}
	if c.AutoIncrement {
		def += " AUTO_INCREMENT"
	}
	return def
}
