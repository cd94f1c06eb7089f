package diagram

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// ConstraintTags returns the ER attribute tags of a field in fixed order
func ConstraintTags(field model.Field) []string {
	var tags []string
	if field.IsPrimary() {
		tags = append(tags, "PK")
	}
	if field.IsUnique() {
		tags = append(tags, "UK")
	}
	if field.Required {
		tags = append(tags, "NOT NULL")
	}
	if field.IsAutoIncrement() {
		tags = append(tags, "AUTO_INCREMENT")
	}
	return tags
}

// Mermaid renders the model as a Mermaid erDiagram
func Mermaid(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")

	for _, entity := range m.Entities {
		sb.WriteString(fmt.Sprintf("    %s {\n", strings.ToUpper(entity.TableName)))
		for _, field := range entity.Fields {
			line := fmt.Sprintf("        %s %s", typemap.ToERDiagram(field.Type), field.Name)
			if tags := ConstraintTags(field); len(tags) > 0 {
				line += " " + quoteLabel(strings.Join(tags, ", "))
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("    }\n")
	}

	relationships := m.ResolvedRelationships()
	if len(relationships) > 0 {
		sb.WriteString("\n")
	}
	for _, rel := range relationships {
		sb.WriteString(fmt.Sprintf("    %s %s %s : %s\n",
			strings.ToUpper(rel.FromEntity.TableName),
			CardinalitySymbol(rel.Kind()),
			strings.ToUpper(rel.ToEntity.TableName),
			quoteLabel(rel.Label())))
	}

	return sb.String()
}

// labelEscaper rewrites characters that end a Mermaid label into entity codes
var labelEscaper = strings.NewReplacer(`"`, "#quot;", "|", "#124;", "\r\n", " ", "\n", " ", "\r", " ")

// quoteLabel wraps s in double quotes for use as a Mermaid label
func quoteLabel(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
