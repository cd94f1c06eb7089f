package diagram

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// KeyIndicator marks a field line in the PlantUML entity block
func KeyIndicator(field model.Field) string {
	switch {
	case field.IsPrimary():
		return "* "
	case field.IsUnique():
		return "+ "
	case field.Required:
		return "- "
	default:
		return "  "
	}
}

// PlantUML renders the model as PlantUML entities
func PlantUML(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("@startuml\n")

	for _, entity := range m.Entities {
		sb.WriteString(fmt.Sprintf("entity %q as %s {\n", entity.TableName, entity.Name))
		for _, field := range entity.Fields {
			sb.WriteString(fmt.Sprintf("  %s%s : %s\n",
				KeyIndicator(field), field.Name, typemap.ToUMLDiagram(field.Type)))
		}
		sb.WriteString("}\n\n")
	}

	for _, rel := range m.ResolvedRelationships() {
		sb.WriteString(fmt.Sprintf("%s %s %s : %s\n",
			rel.From, CardinalitySymbol(rel.Kind()), rel.To, rel.Label()))
	}

	sb.WriteString("@enduml\n")
	return sb.String()
}
